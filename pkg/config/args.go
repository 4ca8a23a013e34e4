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
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

var _ pflag.Value = (*multiArg)(nil)

// multiArg collects the values of a repeatable flag
type multiArg []string

func (b *multiArg) String() string {
	return strings.Join(*b, ",")
}

// Set appends value; every occurrence of the flag adds one entry
func (b *multiArg) Set(value string) error {
	logrus.Debugf("appending to multi args %s", value)
	*b = append(*b, value)
	return nil
}

func (b *multiArg) Type() string {
	return "multi-arg type"
}

func (b *multiArg) Contains(v string) bool {
	for _, s := range *b {
		if s == v {
			return true
		}
	}
	return false
}

// Duplicates returns every value that appears more than once, in first-seen order
func (b *multiArg) Duplicates() []string {
	seen := map[string]int{}
	var dups []string
	for _, s := range *b {
		seen[s]++
		if seen[s] == 2 {
			dups = append(dups, s)
		}
	}
	return dups
}
