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
package digest

import (
	"strings"
	"testing"

	"github.com/criyle/prebuild/testutil"
	"github.com/spf13/afero"
)

func setup(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	if err := testutil.SetupFilesFs(fs, "/w", files); err != nil {
		t.Fatalf("err setting up files: %v", err)
	}
	return fs
}

func TestFile(t *testing.T) {
	fs := setup(t, map[string]string{"a": "AAAA", "b": "AAAA", "c": "BBBB"})

	da, err := File(fs, "/w/a")
	testutil.CheckNoError(t, err)
	db, err := File(fs, "/w/b")
	testutil.CheckNoError(t, err)
	dc, err := File(fs, "/w/c")
	testutil.CheckNoError(t, err)

	testutil.CheckDeepEqual(t, da, db)
	if da == dc {
		t.Errorf("expected different digests for different contents, both %s", da)
	}
	// 256 bit sum, hex encoded
	testutil.CheckDeepEqual(t, 64, len(da))

	fromReader, err := Reader(strings.NewReader("AAAA"))
	testutil.CheckErrorAndDeepEqual(t, false, err, da, fromReader)

	_, err = File(fs, "/w/missing")
	testutil.CheckError(t, true, err)
}

func TestEqual(t *testing.T) {
	tests := []struct {
		description string
		files       map[string]string
		a, b        string
		expected    bool
		shouldErr   bool
	}{
		{
			description: "identical",
			files:       map[string]string{"executorserver": "AAAA", "file/executorserver": "AAAA"},
			a:           "/w/executorserver",
			b:           "/w/file/executorserver",
			expected:    true,
		},
		{
			description: "different",
			files:       map[string]string{"executorserver": "AAAA", "file/executorserver": "ZZZZ"},
			a:           "/w/executorserver",
			b:           "/w/file/executorserver",
		},
		{
			description: "prefix only",
			files:       map[string]string{"executorserver": "AAAA", "file/executorserver": "AAA"},
			a:           "/w/executorserver",
			b:           "/w/file/executorserver",
		},
		{
			description: "one side missing",
			files:       map[string]string{"executorserver": "AAAA"},
			a:           "/w/executorserver",
			b:           "/w/file/executorserver",
			shouldErr:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			fs := setup(t, tt.files)
			equal, _, err := Equal(fs, tt.a, tt.b)
			testutil.CheckErrorAndDeepEqual(t, tt.shouldErr, err, tt.expected, equal)
		})
	}
}
