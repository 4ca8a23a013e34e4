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
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
)

// SetupFiles creates files at path
func SetupFiles(path string, files map[string]string) error {
	return SetupFilesFs(afero.NewOsFs(), path, files)
}

// SetupFilesFs creates files at path on fs
func SetupFilesFs(fs afero.Fs, path string, files map[string]string) error {
	for p, c := range files {
		path := filepath.Join(path, p)
		if err := fs.MkdirAll(filepath.Dir(path), 0750); err != nil {
			return err
		}
		if err := afero.WriteFile(fs, path, []byte(c), 0644); err != nil {
			return err
		}
	}
	return nil
}

// CheckFileContents fails the test unless the file at path holds exactly expected
func CheckFileContents(t *testing.T, fs afero.Fs, path, expected string) {
	t.Helper()
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Errorf("reading %s: %s", path, err)
		return
	}
	if got := string(b); got != expected {
		t.Errorf("%s contents differ: got %q, want %q", path, got, expected)
	}
}

// CheckNotExist fails the test if path exists on fs
func CheckNotExist(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	if _, err := fs.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected %s not to exist, stat returned %v", path, err)
	}
}

func CheckErrorAndDeepEqual(t *testing.T, shouldErr bool, err error, expected, actual interface{}) {
	t.Helper()
	if err := checkErr(shouldErr, err); err != nil {
		t.Error(err)
		return
	}
	if !reflect.DeepEqual(expected, actual) {
		diff := cmp.Diff(actual, expected)
		t.Errorf("%T differ (-got, +want): %s", expected, diff)
		return
	}
}

func CheckDeepEqual(t *testing.T, expected, actual interface{}) {
	t.Helper()
	if diff := cmp.Diff(actual, expected); diff != "" {
		t.Errorf("%T differ (-got, +want): %s", expected, diff)
	}
}

func CheckError(t *testing.T, shouldErr bool, err error) {
	t.Helper()
	if err := checkErr(shouldErr, err); err != nil {
		t.Error(err)
	}
}

func CheckNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("%+v", err)
	}
}

func checkErr(shouldErr bool, err error) error {
	if err == nil && shouldErr {
		return fmt.Errorf("Expected error, but returned none")
	}
	if err != nil && !shouldErr {
		return fmt.Errorf("Unexpected error: %s", err)
	}
	return nil
}
