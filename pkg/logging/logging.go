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
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	// Default log level
	DefaultLevel = "info"
	// Default timestamp in logs
	DefaultLogTimestamp = false

	// Text format
	FormatText = "text"
	// Colored text format
	FormatColor = "color"
	// JSON format
	FormatJSON = "json"
)

// Output is where log lines go. Staging runs as a build hook whose stdout
// may be captured, so logs go to stderr.
var Output io.Writer = os.Stderr

// Configure sets the logrus logging level, formatter and output
func Configure(level, format string, logTimestamp bool) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrap(err, "parsing log level")
	}

	formatter, err := newFormatter(format, logTimestamp)
	if err != nil {
		return err
	}
	logrus.SetLevel(lvl)
	logrus.SetFormatter(formatter)
	logrus.SetOutput(Output)
	return nil
}

func newFormatter(format string, logTimestamp bool) (logrus.Formatter, error) {
	switch format {
	case FormatText:
		return &logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: logTimestamp,
		}, nil
	case FormatColor:
		return &logrus.TextFormatter{
			ForceColors:   true,
			FullTimestamp: logTimestamp,
		}, nil
	case FormatJSON:
		return &logrus.JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("not a valid log format: %q. Please specify one of (text, color, json)", format)
	}
}
