/*
Copyright 2020 Google LLC

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
package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/criyle/prebuild/testutil"
	"github.com/sirupsen/logrus"
)

func TestConfigure(t *testing.T) {
	tests := []struct {
		description string
		level       string
		format      string
		shouldErr   bool
		wantLevel   logrus.Level
	}{
		{
			description: "defaults",
			level:       DefaultLevel,
			format:      FormatColor,
			wantLevel:   logrus.InfoLevel,
		},
		{
			description: "debug json",
			level:       "debug",
			format:      FormatJSON,
			wantLevel:   logrus.DebugLevel,
		},
		{
			description: "bad level",
			level:       "loud",
			format:      FormatText,
			shouldErr:   true,
		},
		{
			description: "bad format",
			level:       "info",
			format:      "yaml",
			shouldErr:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			defer logrus.SetLevel(logrus.GetLevel())
			err := Configure(tt.level, tt.format, false)
			testutil.CheckError(t, tt.shouldErr, err)
			if !tt.shouldErr {
				testutil.CheckDeepEqual(t, tt.wantLevel, logrus.GetLevel())
			}
		})
	}
}

func TestConfigure_Output(t *testing.T) {
	var buf bytes.Buffer
	old := Output
	Output = &buf
	defer func() {
		Output = old
		logrus.SetOutput(old)
	}()

	testutil.CheckNoError(t, Configure("info", FormatText, false))
	logrus.Info("Staged executorserver")
	if !strings.Contains(buf.String(), "Staged executorserver") {
		t.Errorf("expected log line in output, got %q", buf.String())
	}
}
