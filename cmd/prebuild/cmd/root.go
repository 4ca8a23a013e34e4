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
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/criyle/prebuild/pkg/config"
	"github.com/criyle/prebuild/pkg/constants"
	"github.com/criyle/prebuild/pkg/logging"
	"github.com/criyle/prebuild/pkg/stage"
	"github.com/criyle/prebuild/pkg/timing"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	opts         = &config.StageOptions{}
	logLevel     string
	logFormat    string
	logTimestamp bool
)

func init() {
	RootCmd.PersistentFlags().StringVarP(&logLevel, "verbosity", "v", logging.DefaultLevel, "Log level (trace, debug, info, warn, error, fatal, panic)")
	RootCmd.PersistentFlags().StringVar(&logFormat, "log-format", logging.FormatColor, "Log format (text, color, json)")
	RootCmd.PersistentFlags().BoolVar(&logTimestamp, "log-timestamp", logging.DefaultLogTimestamp, "Timestamp in log output")
	addStageOptionsFlags(RootCmd)
}

// RootCmd stages the executor server binaries for packaging
var RootCmd = &cobra.Command{
	Use:   "prebuild",
	Short: "Copy prebuilt executor server binaries into the packaging directory",
	Args:  cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Configure(logLevel, logFormat, logTimestamp)
	},
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if err := validateFlags(); err != nil {
			return errors.Wrap(err, "invalid flags")
		}
		return resolveWorkDir()
	},
	Run: func(cmd *cobra.Command, args []string) {
		if err := runStage(); err != nil {
			exit(errors.Wrap(err, "error staging artifacts"))
		}

		benchmarkFile := os.Getenv(constants.BenchmarkFileEnv)
		// false is a keyword for integration tests to turn off benchmarking
		if benchmarkFile != "" && benchmarkFile != "false" {
			if err := writeBenchmarkFile(benchmarkFile); err != nil {
				logrus.Warnf("Unable to write benchmark file %s: %s", benchmarkFile, err)
			}
		}
	},
}

// addStageOptionsFlags configures opts
func addStageOptionsFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&opts.WorkDir, "workdir", "w", "", fmt.Sprintf("Directory holding the prebuilt artifacts. Defaults to $%s, then the directory of this binary.", constants.WorkDirEnv))
	cmd.Flags().StringVarP(&opts.OutputDir, "output-dir", "", constants.OutputDir, "Name of the directory, inside the working directory, artifacts are copied into.")
	cmd.Flags().VarP(&opts.Artifacts, "artifact", "a", "Artifact to stage. Set it repeatedly for multiple artifacts. Defaults to executorserver and executorserver.exe.")
	cmd.Flags().BoolVarP(&opts.Verify, "verify", "", true, "Compare every copy with its source after writing it.")
}

// validateFlags makes sure every name given is a plain file name and
// artifacts are not repeated
func validateFlags() error {
	if err := stage.ValidateName(opts.OutputDirName()); err != nil {
		return errors.Wrap(err, "--output-dir")
	}
	for _, name := range opts.ArtifactNames() {
		if err := stage.ValidateName(name); err != nil {
			return errors.Wrap(err, "--artifact")
		}
	}
	if dups := opts.Artifacts.Duplicates(); len(dups) > 0 {
		return errors.Errorf("--artifact given more than once for %v", dups)
	}
	return nil
}

// resolveWorkDir fills in the default working directory and makes it absolute
func resolveWorkDir() error {
	if opts.WorkDir == "" {
		wd, err := config.DefaultWorkDir()
		if err != nil {
			return errors.Wrap(err, "resolving working directory")
		}
		opts.WorkDir = wd
	}
	abs, err := filepath.Abs(opts.WorkDir)
	if err != nil {
		return errors.Wrap(err, "getting absolute path for working directory")
	}
	opts.WorkDir = abs
	logrus.Debugf("Working directory is %s", opts.WorkDir)
	return nil
}

func runStage() error {
	result, err := stage.New(opts).Stage(opts.WorkDir)
	if err != nil {
		return err
	}
	logrus.Infof("Staged %d artifacts into %s", len(result.Staged), result.OutputDir)
	logrus.Debugf("Timings:\n%s", timing.Summary())
	return nil
}

func writeBenchmarkFile(path string) error {
	s, err := timing.JSON()
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteString(s)
	return err
}

func exit(err error) {
	fmt.Println(err)
	os.Exit(1)
}
