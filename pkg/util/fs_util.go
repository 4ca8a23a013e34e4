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
package util

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// ErrNotDirectory is returned when a directory is expected at a path that
// holds something else
var ErrNotDirectory = errors.New("not a directory")

// FilepathExists returns true if the path exists. Symlinks are not followed
// when the filesystem supports it.
func FilepathExists(fs afero.Fs, path string) bool {
	var err error
	if lstater, ok := fs.(afero.Lstater); ok {
		_, _, err = lstater.LstatIfPossible(path)
	} else {
		_, err = fs.Stat(path)
	}
	return !os.IsNotExist(err)
}

// IsDir checks if path is a directory
func IsDir(fs afero.Fs, path string) (bool, error) {
	fi, err := fs.Stat(path)
	if err != nil {
		return false, err
	}
	return fi.IsDir(), nil
}

// MkdirIfNotExist creates the directory at path unless one is already there.
// Only the last path element is created: a missing parent is reported as
// an error matching os.ErrNotExist. It returns whether a directory was created.
func MkdirIfNotExist(fs afero.Fs, path string, mode os.FileMode) (bool, error) {
	fi, err := fs.Stat(path)
	if err == nil {
		if !fi.IsDir() {
			return false, &os.PathError{Op: "mkdir", Path: path, Err: ErrNotDirectory}
		}
		logrus.Tracef("Directory %s already exists", path)
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, errors.Wrapf(err, "error calling stat on %s", path)
	}

	// afero.MemMapFs creates missing parents on Mkdir, check them here so
	// every filesystem behaves like mkdir(2)
	parent := filepath.Dir(path)
	if ok, err := IsDir(fs, parent); err != nil {
		return false, err
	} else if !ok {
		return false, &os.PathError{Op: "mkdir", Path: path, Err: ErrNotDirectory}
	}

	if err := fs.Mkdir(path, mode); err != nil {
		return false, err
	}
	return true, nil
}

// CopyFile copies the regular file at src to dest, replacing dest if it
// exists. dest gets the permission bits of src. It returns the number of
// bytes written.
func CopyFile(fs afero.Fs, src, dest string) (int64, error) {
	fi, err := fs.Stat(src)
	if err != nil {
		return 0, err
	}
	if fi.IsDir() {
		return 0, errors.Errorf("%s is a directory", src)
	}
	logrus.Debugf("Copying file %s to %s", src, dest)
	srcFile, err := fs.Open(src)
	if err != nil {
		return 0, err
	}
	defer srcFile.Close()
	return CreateFile(fs, dest, srcFile, fi.Mode().Perm())
}

// CreateFile writes everything from reader to path, truncating any existing
// file, and sets perm on it. The parent directory must already exist.
func CreateFile(fs afero.Fs, path string, reader io.Reader, perm os.FileMode) (int64, error) {
	dest, err := fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return 0, errors.Wrap(err, "creating file")
	}
	n, err := io.Copy(dest, reader)
	if err != nil {
		dest.Close()
		return n, errors.Wrap(err, "copying file")
	}
	if err := dest.Close(); err != nil {
		return n, errors.Wrap(err, "closing file")
	}
	// OpenFile leaves the mode of an existing file alone and applies umask
	// to a new one
	if err := fs.Chmod(path, perm); err != nil {
		return n, errors.Wrap(err, "setting file mode")
	}
	return n, nil
}
