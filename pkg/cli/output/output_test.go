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

package output

import (
	"bytes"
	"testing"
	"time"

	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/assert"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/client"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/repo"
	"github.com/pkg/errors"
)

func TestFormatTime(t *testing.T) {
	assert.Equal(t, FormatTime(time.Time{}), "-", "zero time")

	ts := time.Date(2024, 1, 2, 3, 4, 0, 0, time.UTC)
	assert.Equal(t, FormatTime(ts), ts.Local().Format(TimeFormat), "formatted time")
}

func TestNoteInfo(t *testing.T) {
	disableColor(t)

	var buf bytes.Buffer
	NoteInfo(&buf, client.Note{
		ID:                "n1",
		Title:             "Weekly",
		ReadPermission:    "guest",
		WritePermission:   "owner",
		CommentPermission: "disabled",
		User:              &client.NoteUser{Name: "alice"},
	})

	out := buf.String()
	assert.Contains(t, out, "Weekly\n", "title")
	assert.Contains(t, out, "  ID: n1\n", "id")
	assert.Contains(t, out, "  Author: alice\n", "author")
	assert.Contains(t, out, "  Read Permission: guest\n", "read permission")
	assert.Contains(t, out, "  Comment Permission: disabled\n", "comment permission")
}

func TestRemotes(t *testing.T) {
	disableColor(t)

	entries := []RemoteEntry{
		{
			Name:    "meeting",
			Binding: repo.Binding{NoteID: "id-1"},
			Note:    &client.Note{Title: "Meeting notes"},
		},
		{
			Name:    "broken",
			Binding: repo.Binding{NoteID: "id-2"},
			Err:     errors.New("response 404"),
		},
	}

	var buf bytes.Buffer
	Remotes(&buf, entries)

	out := buf.String()
	assert.Contains(t, out, "meeting\n  Note ID: id-1\n  Added: -\n  Title: Meeting notes\n", "verbose entry")
	assert.Contains(t, out, "broken\n  Note ID: id-2\n  Added: -\n  Error: response 404\n", "failed entry")
}
