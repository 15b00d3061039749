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

package ui

import (
	"fmt"

	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/cache"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/validate"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
)

// ErrNoCachedNotes is returned when there is nothing to select from
var ErrNoCachedNotes = errors.New(`No cached notes found. Please run "hackmd fetch --all" first.`)

// manualEntry is the option value that switches to typing an id
const manualEntry = "\x00manual"

func theme() *huh.Theme {
	t := huh.ThemeBase()
	t.Focused.Title = t.Focused.Title.Foreground(lipgloss.Color("6")).Bold(true)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(lipgloss.Color("2"))

	return t
}

func run(fields ...huh.Field) error {
	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(theme()).Run()
}

// noteOptions returns one option per cached note followed by the manual
// entry option
func noteOptions(notes []cache.Summary) []huh.Option[string] {
	ret := make([]huh.Option[string], 0, len(notes)+1)
	for _, n := range notes {
		ret = append(ret, huh.NewOption(fmt.Sprintf("%s (%s)", n.Title, n.ID), n.ID))
	}
	ret = append(ret, huh.NewOption("Enter ID manually", manualEntry))

	return ret
}

// SelectNote asks the user to pick one of the cached notes and returns its id
func SelectNote(notes []cache.Summary, title string) (string, error) {
	if len(notes) == 0 {
		return "", ErrNoCachedNotes
	}

	var id string
	err := run(huh.NewSelect[string]().
		Title(title).
		Options(noteOptions(notes)...).
		Value(&id))
	if err != nil {
		return "", errors.Wrap(err, "selecting a note")
	}

	if id != manualEntry {
		return id, nil
	}

	id = ""
	err = run(huh.NewInput().
		Title("Note ID").
		Value(&id).
		Validate(validate.NoteID))
	if err != nil {
		return "", errors.Wrap(err, "reading the note id")
	}

	return id, nil
}

// NoteFields are the editable properties of a note
type NoteFields struct {
	Title             string
	ReadPermission    string
	WritePermission   string
	CommentPermission string
}

func permissionOptions(levels []string) []huh.Option[string] {
	return huh.NewOptions(levels...)
}

// PromptNoteFields asks for a title and permission levels, starting from
// the values already in fields
func PromptNoteFields(fields *NoteFields) error {
	err := run(
		huh.NewInput().
			Title("Title").
			Value(&fields.Title).
			Validate(validate.Title),
		huh.NewSelect[string]().
			Title("Read permission").
			Options(permissionOptions(validate.ReadPermissions)...).
			Value(&fields.ReadPermission),
		huh.NewSelect[string]().
			Title("Write permission").
			Options(permissionOptions(validate.WritePermissions)...).
			Value(&fields.WritePermission),
		huh.NewSelect[string]().
			Title("Comment permission").
			Options(permissionOptions(validate.CommentPermissions)...).
			Value(&fields.CommentPermission),
	)
	if err != nil {
		return errors.Wrap(err, "reading note fields")
	}

	return nil
}
