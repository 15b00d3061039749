/* Copyright 2025 Dnote Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package utils

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// FileExists checks if the file exists at the given path
func FileExists(fs afero.Fs, path string) (bool, error) {
	_, err := fs.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}

	return false, errors.Wrap(err, "getting file info")
}

// EnsureDir creates a directory, and any missing parents, if it doesn't exist.
func EnsureDir(fs afero.Fs, path string) error {
	ok, err := afero.DirExists(fs, path)
	if err != nil {
		return errors.Wrapf(err, "checking if dir exists at %s", path)
	}
	if ok {
		return nil
	}

	if err := fs.MkdirAll(path, 0755); err != nil {
		return errors.Wrapf(err, "creating directory at %s", path)
	}

	return nil
}

// WriteFileAtomic writes data to a temporary file in the destination
// directory and renames it over path, so readers never observe a partially
// written file.
func WriteFileAtomic(fs afero.Fs, path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := EnsureDir(fs, dir); err != nil {
		return errors.Wrap(err, "preparing the parent directory")
	}

	tmp, err := afero.TempFile(fs, dir, ".hackmd-tmp-*")
	if err != nil {
		return errors.Wrap(err, "creating a temporary file")
	}
	tmpName := tmp.Name()

	cleanup := func() {
		tmp.Close()
		fs.Remove(tmpName)
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return errors.Wrap(err, "writing the temporary file")
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return errors.Wrap(err, "flushing the temporary file")
	}
	if err := tmp.Close(); err != nil {
		fs.Remove(tmpName)
		return errors.Wrap(err, "closing the temporary file")
	}
	if err := fs.Chmod(tmpName, perm); err != nil {
		fs.Remove(tmpName)
		return errors.Wrap(err, "setting file permission")
	}
	if err := fs.Rename(tmpName, path); err != nil {
		fs.Remove(tmpName)
		return errors.Wrapf(err, "renaming into %s", path)
	}

	return nil
}
