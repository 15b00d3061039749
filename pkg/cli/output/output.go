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

// Package output provides functions to print informations on the terminal
// in a consistent manner
package output

import (
	"fmt"
	"io"
	"time"

	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/client"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/log"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/repo"
)

// TimeFormat is the layout used for every timestamp shown to the user
const TimeFormat = "Jan 2, 2006 3:04pm (MST)"

// FormatTime formats t in the local time zone
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}

	return t.Local().Format(TimeFormat)
}

func field(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %s %s\n", log.ColorGray.Sprintf("%s:", label), value)
}

// NoteInfo prints the metadata of a note
func NoteInfo(w io.Writer, n client.Note) {
	fmt.Fprintln(w, log.ColorCyan.Sprint(n.Title))
	field(w, "ID", n.ID)
	field(w, "Author", n.Author())
	field(w, "Created", FormatTime(n.CreatedAt.Time))
	field(w, "Last Modified", FormatTime(n.LastChangedAt.Time))
	field(w, "Read Permission", n.ReadPermission)
	field(w, "Write Permission", n.WritePermission)
	field(w, "Comment Permission", n.CommentPermission)
	if n.PublishLink != "" {
		field(w, "Link", n.PublishLink)
	}
}

// User prints the account an API token belongs to
func User(w io.Writer, u client.User) {
	fmt.Fprintln(w, log.ColorCyan.Sprint(u.Name))
	field(w, "ID", u.ID)
	if u.Email != "" {
		field(w, "Email", u.Email)
	}
	field(w, "User path", u.UserPath)
	for _, t := range u.Teams {
		field(w, "Team", fmt.Sprintf("%s (%s)", t.Name, t.Path))
	}
}

// RemoteEntry is one tracked note in a remote listing
type RemoteEntry struct {
	Name    string
	Binding repo.Binding
	// Note and Err are only set by a verbose listing
	Note *client.Note
	Err  error
}

// Remotes prints tracked notes in the given order
func Remotes(w io.Writer, entries []RemoteEntry) {
	for _, e := range entries {
		fmt.Fprintln(w, log.ColorCyan.Sprint(e.Name))
		field(w, "Note ID", e.Binding.NoteID)
		field(w, "Added", FormatTime(e.Binding.AddedAt))

		if e.Err != nil {
			field(w, "Error", log.ColorRed.Sprint(e.Err.Error()))
		} else if e.Note != nil {
			field(w, "Title", e.Note.Title)
			field(w, "Last Modified", FormatTime(e.Note.LastChangedAt.Time))
		}
	}
}
