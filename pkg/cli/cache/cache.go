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

// Package cache persists the summaries of notes last seen on the remote.
// Content is never cached.
package cache

import (
	"encoding/json"

	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/client"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/utils"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Summary is the cached projection of a remote note
type Summary struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	LastChangeAt client.Timestamp `json:"lastChangeAt"`
}

// NewSummary projects a note into a summary
func NewSummary(n client.Note) Summary {
	return Summary{
		ID:           n.ID,
		Title:        n.Title,
		LastChangeAt: n.LastChangedAt,
	}
}

// Cache is a JSON file holding note summaries
type Cache struct {
	fs   afero.Fs
	path string
}

// New returns a cache backed by the file at path
func New(fs afero.Fs, path string) *Cache {
	return &Cache{
		fs:   fs,
		path: path,
	}
}

// Path returns the path of the cache file
func (c *Cache) Path() string {
	return c.path
}

// GetNotes returns the cached summaries in stored order. A missing cache
// file reads as an empty cache.
func (c *Cache) GetNotes() ([]Summary, error) {
	ok, err := utils.FileExists(c.fs, c.path)
	if err != nil {
		return nil, errors.Wrap(err, "checking the cache file")
	}
	if !ok {
		return []Summary{}, nil
	}

	b, err := afero.ReadFile(c.fs, c.path)
	if err != nil {
		return nil, errors.Wrap(err, "reading the cache file")
	}

	var ret []Summary
	if err := json.Unmarshal(b, &ret); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", c.path)
	}
	if ret == nil {
		ret = []Summary{}
	}

	return ret, nil
}

// SaveNotes replaces the cache with the summaries of notes. When an id
// appears more than once the first occurrence is kept.
func (c *Cache) SaveNotes(notes []client.Note) error {
	seen := map[string]bool{}
	summaries := make([]Summary, 0, len(notes))
	for _, n := range notes {
		if seen[n.ID] {
			continue
		}
		seen[n.ID] = true

		summaries = append(summaries, NewSummary(n))
	}

	return c.write(summaries)
}

// MergeOne replaces the summary with the same id as note, or appends it
func (c *Cache) MergeOne(note client.Note) error {
	summaries, err := c.GetNotes()
	if err != nil {
		return err
	}

	summaries = without(summaries, note.ID)
	summaries = append(summaries, NewSummary(note))

	return c.write(summaries)
}

// Remove drops the summary with the given id. Removing an absent id is a no-op.
func (c *Cache) Remove(id string) error {
	summaries, err := c.GetNotes()
	if err != nil {
		return err
	}

	return c.write(without(summaries, id))
}

// Find returns the summary with the given id
func (c *Cache) Find(id string) (Summary, bool, error) {
	summaries, err := c.GetNotes()
	if err != nil {
		return Summary{}, false, err
	}

	for _, s := range summaries {
		if s.ID == id {
			return s, true, nil
		}
	}

	return Summary{}, false, nil
}

func without(summaries []Summary, id string) []Summary {
	ret := make([]Summary, 0, len(summaries))
	for _, s := range summaries {
		if s.ID != id {
			ret = append(ret, s)
		}
	}

	return ret
}

func (c *Cache) write(summaries []Summary) error {
	b, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshalling summaries")
	}

	if err := utils.WriteFileAtomic(c.fs, c.path, b, 0644); err != nil {
		return errors.Wrap(err, "writing the cache file")
	}

	return nil
}
