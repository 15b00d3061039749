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

package repo

import (
	"path/filepath"

	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/consts"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/utils"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// NoteStore reads and writes note content as <canonical name>.md files in
// the working directory. Nothing is cached between calls.
type NoteStore struct {
	fs      afero.Fs
	workDir string
}

// NewNoteStore returns a note store rooted at workDir
func NewNoteStore(fs afero.Fs, workDir string) *NoteStore {
	return &NoteStore{
		fs:      fs,
		workDir: workDir,
	}
}

// Path returns the file path for the note with the given name
func (s *NoteStore) Path(name string) string {
	return filepath.Join(s.workDir, Normalize(name)+consts.NoteFileExt)
}

// Exists reports whether the note file is present
func (s *NoteStore) Exists(name string) (bool, error) {
	return utils.FileExists(s.fs, s.Path(name))
}

// Read returns the content of the note file
func (s *NoteStore) Read(name string) (string, error) {
	path := s.Path(name)

	ok, err := s.Exists(name)
	if err != nil {
		return "", errors.Wrapf(err, "checking %s", path)
	}
	if !ok {
		return "", &NotFoundError{Kind: KindNote, Name: Normalize(name)}
	}

	b, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", path)
	}

	return string(b), nil
}

// Write replaces the content of the note file and returns its path
func (s *NoteStore) Write(name, content string) (string, error) {
	path := s.Path(name)

	if err := utils.WriteFileAtomic(s.fs, path, []byte(content), 0644); err != nil {
		return path, errors.Wrapf(err, "writing %s", path)
	}

	return path, nil
}
