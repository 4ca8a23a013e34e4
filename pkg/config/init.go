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

import (
	"os"
	"path/filepath"

	"github.com/criyle/prebuild/pkg/constants"
	"github.com/pkg/errors"
)

// For testing
var executable = os.Executable

// DefaultWorkDir is the directory artifacts are staged from when no
// --workdir is given. $PREBUILD_WORKDIR wins, otherwise it is the
// directory holding the running binary.
func DefaultWorkDir() (string, error) {
	if wd, ok := os.LookupEnv(constants.WorkDirEnv); ok && wd != "" {
		return filepath.Clean(wd), nil
	}
	exe, err := executable()
	if err != nil {
		return "", errors.Wrap(err, "locating executable")
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}
