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
// Package stage copies prebuilt executor server binaries into the output
// directory that packaging picks them up from.
package stage

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/criyle/prebuild/pkg/config"
	"github.com/criyle/prebuild/pkg/constants"
	"github.com/criyle/prebuild/pkg/digest"
	"github.com/criyle/prebuild/pkg/timing"
	"github.com/criyle/prebuild/pkg/util"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Artifact is a prebuilt file in the working directory. It is staged under
// the same name.
type Artifact struct {
	Name string
}

// Stager stages Artifacts, in order, into OutputDir. A nil Fs is the OS
// filesystem.
type Stager struct {
	Fs afero.Fs
	// OutputDir is relative to the working directory
	OutputDir string
	Artifacts []Artifact
	// Verify compares each copy with its source after it is written
	Verify bool
}

// StagedArtifact describes one completed copy.
type StagedArtifact struct {
	Source      string
	Destination string
	Size        int64
	// Digest is only set when the copy was verified
	Digest string
}

// Result lists the artifacts staged by a run. On failure it holds the
// copies that completed before the error.
type Result struct {
	OutputDir string
	Staged    []StagedArtifact
}

// DefaultArtifacts returns the executor server binaries.
func DefaultArtifacts() []Artifact {
	artifacts := make([]Artifact, 0, len(constants.DefaultArtifacts))
	for _, name := range constants.DefaultArtifacts {
		artifacts = append(artifacts, Artifact{Name: name})
	}
	return artifacts
}

// New returns a Stager on the OS filesystem configured from opts.
func New(opts *config.StageOptions) *Stager {
	s := &Stager{
		Fs:        afero.NewOsFs(),
		OutputDir: opts.OutputDirName(),
		Verify:    opts.Verify,
	}
	for _, name := range opts.ArtifactNames() {
		s.Artifacts = append(s.Artifacts, Artifact{Name: name})
	}
	return s
}

// Stage copies executorserver and executorserver.exe from workDir into
// workDir/file.
func Stage(workDir string) (*Result, error) {
	s := &Stager{
		Fs:        afero.NewOsFs(),
		OutputDir: constants.OutputDir,
		Artifacts: DefaultArtifacts(),
	}
	return s.Stage(workDir)
}

// ValidateName checks that name is a single path element, as both artifact
// names and the output directory must be.
func ValidateName(name string) error {
	switch {
	case name == "":
		return errors.New("name is empty")
	case name == "." || name == "..":
		return errors.Errorf("%q is not a file name", name)
	case strings.ContainsAny(name, `/\`):
		return errors.Errorf("%q must not contain a path separator", name)
	}
	return nil
}

// Stage makes sure the output directory exists under workDir, then copies
// every artifact into it, overwriting earlier copies. It stops at the first
// failure and leaves completed copies in place.
func (s *Stager) Stage(workDir string) (*Result, error) {
	outputDir := filepath.Join(workDir, s.outputDir())
	result := &Result{OutputDir: outputDir}

	var created bool
	err := timing.DefaultRun.Time(constants.MkdirCategory, func() (err error) {
		created, err = util.MkdirIfNotExist(s.fs(), outputDir, constants.OutputDirMode)
		return err
	})
	if err != nil {
		return result, DirectoryCreationErr{Path: outputDir, err: err}
	}
	if created {
		logrus.Debugf("Created output directory %s", outputDir)
	} else {
		logrus.Debugf("Output directory %s already exists", outputDir)
	}

	for _, a := range s.Artifacts {
		staged, err := s.stageArtifact(workDir, outputDir, a)
		if err != nil {
			return result, err
		}
		logrus.Infof("Staged %s to %s", staged.Source, staged.Destination)
		result.Staged = append(result.Staged, *staged)
	}
	return result, nil
}

func (s *Stager) fs() afero.Fs {
	if s.Fs == nil {
		return afero.NewOsFs()
	}
	return s.Fs
}

func (s *Stager) outputDir() string {
	if s.OutputDir == "" {
		return constants.OutputDir
	}
	return s.OutputDir
}

func (s *Stager) stageArtifact(workDir, outputDir string, a Artifact) (*StagedArtifact, error) {
	src := filepath.Join(workDir, a.Name)
	dest := filepath.Join(outputDir, filepath.Base(a.Name))

	if _, err := s.fs().Stat(src); err != nil {
		if os.IsNotExist(err) {
			return nil, MissingSourceArtifactErr{Path: src, err: err}
		}
		return nil, CopyErr{Source: src, Destination: dest, err: err}
	}

	staged := &StagedArtifact{Source: src, Destination: dest}
	err := timing.DefaultRun.Time(constants.CopyCategory, func() (err error) {
		staged.Size, err = util.CopyFile(s.fs(), src, dest)
		return err
	})
	if err != nil {
		return nil, CopyErr{Source: src, Destination: dest, err: err}
	}

	if !s.Verify {
		return staged, nil
	}
	err = timing.DefaultRun.Time(constants.VerifyCategory, func() error {
		equal, d, err := digest.Equal(s.fs(), src, dest)
		if err != nil {
			return err
		}
		if !equal {
			return errors.Errorf("contents of %s differ from %s after copy", dest, src)
		}
		logrus.Debugf("Verified %s, digest %s", dest, d)
		staged.Digest = d
		return nil
	})
	if err != nil {
		return nil, CopyErr{Source: src, Destination: dest, err: err}
	}
	return staged, nil
}
