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
// Package digest hashes staged artifacts so copies can be checked against
// their sources.
package digest

import (
	"encoding/hex"
	"io"

	"github.com/minio/highwayhash"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// highwayhash needs a key; digests only have to agree with each other
var key = make([]byte, highwayhash.Size)

// File returns the hex encoded highwayhash-256 of the contents of path.
func File(fs afero.Fs, path string) (string, error) {
	f, err := fs.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return Reader(f)
}

// Reader returns the hex encoded highwayhash-256 of everything read from r.
func Reader(r io.Reader) (string, error) {
	h, err := highwayhash.New(key)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Pair hashes a and b concurrently.
func Pair(fs afero.Fs, a, b string) (string, string, error) {
	var da, db string
	var g errgroup.Group
	g.Go(func() (err error) {
		da, err = File(fs, a)
		return errors.Wrapf(err, "hashing %s", a)
	})
	g.Go(func() (err error) {
		db, err = File(fs, b)
		return errors.Wrapf(err, "hashing %s", b)
	})
	if err := g.Wait(); err != nil {
		return "", "", err
	}
	return da, db, nil
}

// Equal reports whether a and b have the same contents. The digest of b is
// returned alongside.
func Equal(fs afero.Fs, a, b string) (bool, string, error) {
	da, db, err := Pair(fs, a, b)
	if err != nil {
		return false, "", err
	}
	return da == db, db, nil
}
