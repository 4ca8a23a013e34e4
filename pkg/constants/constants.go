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

package constants

const (
	// DefaultLogLevel is the default log level
	DefaultLogLevel = "info"

	// OutputDir is the name of the directory, relative to the working
	// directory, that staged artifacts are copied into
	OutputDir = "file"

	// ExecutorServer is the native executor server binary
	ExecutorServer = "executorserver"

	// ExecutorServerWindows is the Windows build of the executor server
	ExecutorServerWindows = "executorserver.exe"

	// WorkDirEnv overrides the default working directory of the CLI
	WorkDirEnv = "PREBUILD_WORKDIR"

	// BenchmarkFileEnv names a file the timing summary is written to as JSON.
	// "false" turns it off.
	BenchmarkFileEnv = "BENCHMARK_FILE"

	// OutputDirMode is the permission used when creating the output directory
	OutputDirMode = 0755
)

// Timing categories
const (
	MkdirCategory  = "Creating output directory"
	CopyCategory   = "Copying artifacts"
	VerifyCategory = "Verifying artifacts"
)

// DefaultArtifacts are staged, in order, when no artifacts are given
var DefaultArtifacts = []string{ExecutorServer, ExecutorServerWindows}
