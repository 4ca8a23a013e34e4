/*
Copyright 2018 Google LLC

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
package config

import "github.com/criyle/prebuild/pkg/constants"

// StageOptions are options that are set by command line arguments
type StageOptions struct {
	// WorkDir holds the source artifacts and the output directory
	WorkDir   string
	OutputDir string
	Artifacts multiArg
	Verify    bool
}

// ArtifactNames returns the artifacts to stage, falling back to the
// executor server pair when none were given
func (o *StageOptions) ArtifactNames() []string {
	if len(o.Artifacts) == 0 {
		return append([]string{}, constants.DefaultArtifacts...)
	}
	return append([]string{}, o.Artifacts...)
}

// OutputDirName returns the configured output directory name or the default
func (o *StageOptions) OutputDirName() string {
	if o.OutputDir == "" {
		return constants.OutputDir
	}
	return o.OutputDir
}
