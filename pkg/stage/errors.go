/*
Copyright 2026 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package stage

import (
	"errors"
	"fmt"
)

// IsMissingSourceArtifact returns true if the supplied error is of the type
// MissingSourceArtifactErr otherwise it returns false.
func IsMissingSourceArtifact(err error) bool {
	var e MissingSourceArtifactErr
	return errors.As(err, &e)
}

// MissingSourceArtifactErr is returned when an artifact to stage is not
// present in the working directory.
type MissingSourceArtifactErr struct {
	Path string
	err  error
}

func (e MissingSourceArtifactErr) Error() string {
	return fmt.Sprintf("missing source artifact %s: %v", e.Path, e.err)
}

func (e MissingSourceArtifactErr) Unwrap() error {
	return e.err
}

// IsDirectoryCreation returns true if the supplied error is of the type
// DirectoryCreationErr otherwise it returns false.
func IsDirectoryCreation(err error) bool {
	var e DirectoryCreationErr
	return errors.As(err, &e)
}

// DirectoryCreationErr is returned when the output directory is missing and
// cannot be created.
type DirectoryCreationErr struct {
	Path string
	err  error
}

func (e DirectoryCreationErr) Error() string {
	return fmt.Sprintf("creating output directory %s: %v", e.Path, e.err)
}

func (e DirectoryCreationErr) Unwrap() error {
	return e.err
}

// IsCopy returns true if the supplied error is of the type CopyErr
// otherwise it returns false.
func IsCopy(err error) bool {
	var e CopyErr
	return errors.As(err, &e)
}

// CopyErr is returned when a source artifact exists but could not be copied
// to, or verified at, its destination.
type CopyErr struct {
	Source      string
	Destination string
	err         error
}

func (e CopyErr) Error() string {
	return fmt.Sprintf("copying %s to %s: %v", e.Source, e.Destination, e.err)
}

func (e CopyErr) Unwrap() error {
	return e.err
}
