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
	"bytes"
	"encoding/json"
	"path/filepath"
	"sort"
	"time"

	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/consts"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/utils"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/clock"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Binding records that a local name tracks a remote note
type Binding struct {
	NoteID  string    `json:"noteId"`
	AddedAt time.Time `json:"addedAt"`
}

// UnmarshalJSON accepts both the object form and a bare note id string
func (b *Binding) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*b = Binding{NoteID: id}
		return nil
	}

	type binding Binding
	var v binding
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*b = Binding(v)

	return nil
}

type remotesFile struct {
	Remotes map[string]Binding `json:"remotes"`
}

// RemoteStore persists remote bindings inside the repository marker
// directory of a working directory. Every mutation rewrites the whole file.
type RemoteStore struct {
	fs      afero.Fs
	workDir string
	clock   clock.Clock
}

// NewRemoteStore returns a remote store for the repository rooted at workDir
func NewRemoteStore(fs afero.Fs, workDir string, c clock.Clock) *RemoteStore {
	return &RemoteStore{
		fs:      fs,
		workDir: workDir,
		clock:   c,
	}
}

// Dir returns the repository marker directory
func (s *RemoteStore) Dir() string {
	return filepath.Join(s.workDir, consts.RepoDirName)
}

// Path returns the path to the remote store file
func (s *RemoteStore) Path() string {
	return filepath.Join(s.Dir(), consts.RemotesFilename)
}

// Initialized reports whether the repository marker exists
func (s *RemoteStore) Initialized() (bool, error) {
	ok, err := afero.DirExists(s.fs, s.Dir())
	if err != nil {
		return false, errors.Wrap(err, "checking the repository directory")
	}

	return ok, nil
}

// Init creates the repository marker and an empty remote store
func (s *RemoteStore) Init() error {
	ok, err := s.Initialized()
	if err != nil {
		return err
	}
	if ok {
		return &AlreadyExistsError{What: "repository"}
	}

	if err := s.fs.Mkdir(s.Dir(), 0755); err != nil {
		return errors.Wrap(err, "creating the repository directory")
	}
	if err := s.write(map[string]Binding{}); err != nil {
		return errors.Wrap(err, "creating the remote store")
	}

	return nil
}

func (s *RemoteStore) requireInitialized() error {
	ok, err := s.Initialized()
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotInitialized
	}

	return nil
}

// read returns the stored bindings. A missing file reads as an empty store.
func (s *RemoteStore) read() (map[string]Binding, error) {
	b, err := afero.ReadFile(s.fs, s.Path())
	if err != nil {
		if ok, _ := utils.FileExists(s.fs, s.Path()); !ok {
			return map[string]Binding{}, nil
		}
		return nil, errors.Wrap(err, "reading the remote store")
	}

	var f remotesFile
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", s.Path())
	}
	if f.Remotes == nil {
		f.Remotes = map[string]Binding{}
	}

	return f.Remotes, nil
}

func (s *RemoteStore) write(remotes map[string]Binding) error {
	b, err := json.MarshalIndent(remotesFile{Remotes: remotes}, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshalling remotes")
	}

	if err := utils.WriteFileAtomic(s.fs, s.Path(), append(b, '\n'), 0644); err != nil {
		return errors.Wrap(err, "writing the remote store")
	}

	return nil
}

// Add binds the canonical form of name to noteID and returns the canonical name
func (s *RemoteStore) Add(name, noteID string) (string, error) {
	canonical := Normalize(name)
	if canonical == "" {
		return "", errors.Errorf("invalid remote name '%s'", name)
	}

	if err := s.requireInitialized(); err != nil {
		return canonical, err
	}

	remotes, err := s.read()
	if err != nil {
		return canonical, err
	}
	if _, ok := remotes[canonical]; ok {
		return canonical, &AlreadyExistsError{What: "remote", Name: canonical}
	}

	remotes[canonical] = Binding{
		NoteID:  noteID,
		AddedAt: s.clock.Now(),
	}
	if err := s.write(remotes); err != nil {
		return canonical, err
	}

	return canonical, nil
}

// Remove deletes the binding of name and returns the canonical name
func (s *RemoteStore) Remove(name string) (string, error) {
	canonical := Normalize(name)

	if err := s.requireInitialized(); err != nil {
		return canonical, err
	}

	remotes, err := s.read()
	if err != nil {
		return canonical, err
	}
	if _, ok := remotes[canonical]; !ok {
		return canonical, &NotFoundError{Kind: KindRemote, Name: canonical}
	}

	delete(remotes, canonical)
	if err := s.write(remotes); err != nil {
		return canonical, err
	}

	return canonical, nil
}

// Get returns the binding of name
func (s *RemoteStore) Get(name string) (Binding, error) {
	canonical := Normalize(name)

	remotes, err := s.read()
	if err != nil {
		return Binding{}, err
	}

	b, ok := remotes[canonical]
	if !ok {
		return Binding{}, &NotFoundError{Kind: KindRemote, Name: canonical}
	}

	return b, nil
}

// List returns every binding keyed by canonical name
func (s *RemoteStore) List() (map[string]Binding, error) {
	return s.read()
}

// Names returns the canonical names of every binding in sorted order
func (s *RemoteStore) Names() ([]string, error) {
	remotes, err := s.read()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(remotes))
	for name := range remotes {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}
