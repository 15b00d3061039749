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

package cache

import (
	"strings"
	"testing"
	"time"

	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/assert"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/client"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const testPath = "/cache/hackmd/notes.json"

func ts(day int) client.Timestamp {
	return client.NewTimestamp(time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC))
}

func ids(summaries []Summary) []string {
	ret := []string{}
	for _, s := range summaries {
		ret = append(ret, s.ID)
	}

	return ret
}

func TestGetNotesMissing(t *testing.T) {
	c := New(afero.NewMemMapFs(), testPath)

	notes, err := c.GetNotes()
	assert.Equal(t, err, nil, "getting notes")
	assert.Equal(t, len(notes), 0, "notes count mismatch")
}

func TestGetNotesCorrupt(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, testPath, []byte("[{"), 0644); err != nil {
		t.Fatal(errors.Wrap(err, "writing cache"))
	}

	_, err := New(fs, testPath).GetNotes()
	assert.NotEqual(t, err, nil, "expected an error")
}

func TestSaveNotes(t *testing.T) {
	fs := afero.NewMemMapFs()
	c := New(fs, testPath)

	notes := []client.Note{
		{ID: "a", Title: "A", Content: "secret", LastChangedAt: ts(1)},
		{ID: "b", Title: "B", LastChangedAt: ts(2)},
		{ID: "a", Title: "A again", LastChangedAt: ts(3)},
	}
	assert.Equal(t, c.SaveNotes(notes), nil, "saving")

	got, err := c.GetNotes()
	assert.Equal(t, err, nil, "getting notes")
	assert.DeepEqual(t, ids(got), []string{"a", "b"}, "ids mismatch")
	assert.Equal(t, got[0].Title, "A", "first occurrence should win")
	assert.Equal(t, got[0].LastChangeAt.Equal(ts(1).Time), true, "timestamp mismatch")

	b, err := afero.ReadFile(fs, testPath)
	assert.Equal(t, err, nil, "reading cache file")
	assert.Equal(t, strings.Contains(string(b), "secret"), false, "content must not be cached")

	assert.Equal(t, c.SaveNotes([]client.Note{{ID: "c", LastChangedAt: ts(4)}}), nil, "saving again")
	got, err = c.GetNotes()
	assert.Equal(t, err, nil, "getting notes again")
	assert.DeepEqual(t, ids(got), []string{"c"}, "save should overwrite")
}

func TestMergeOne(t *testing.T) {
	c := New(afero.NewMemMapFs(), testPath)
	if err := c.SaveNotes([]client.Note{
		{ID: "a", Title: "A", LastChangedAt: ts(1)},
		{ID: "b", Title: "B", LastChangedAt: ts(1)},
	}); err != nil {
		t.Fatal(errors.Wrap(err, "seeding"))
	}

	assert.Equal(t, c.MergeOne(client.Note{ID: "a", Title: "A2", LastChangedAt: ts(5)}), nil, "merging existing")
	assert.Equal(t, c.MergeOne(client.Note{ID: "c", Title: "C", LastChangedAt: ts(5)}), nil, "merging new")

	got, err := c.GetNotes()
	assert.Equal(t, err, nil, "getting notes")
	assert.DeepEqual(t, ids(got), []string{"b", "a", "c"}, "ids mismatch")

	s, ok, err := c.Find("a")
	assert.Equal(t, err, nil, "finding")
	assert.Equal(t, ok, true, "a not found")
	assert.Equal(t, s.Title, "A2", "title mismatch")
	assert.Equal(t, s.LastChangeAt.Equal(ts(5).Time), true, "timestamp mismatch")
}

func TestRemove(t *testing.T) {
	c := New(afero.NewMemMapFs(), testPath)
	if err := c.SaveNotes([]client.Note{
		{ID: "a", LastChangedAt: ts(1)},
		{ID: "b", LastChangedAt: ts(1)},
	}); err != nil {
		t.Fatal(errors.Wrap(err, "seeding"))
	}

	assert.Equal(t, c.Remove("a"), nil, "removing")
	assert.Equal(t, c.Remove("missing"), nil, "removing missing")

	got, err := c.GetNotes()
	assert.Equal(t, err, nil, "getting notes")
	assert.DeepEqual(t, ids(got), []string{"b"}, "ids mismatch")

	_, ok, err := c.Find("a")
	assert.Equal(t, err, nil, "finding")
	assert.Equal(t, ok, false, "a should be gone")
}
