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

// Package validate checks user input before it reaches a store or the API
package validate

import (
	"regexp"
	"strings"

	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/client"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/repo"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pkg/errors"
)

// ErrRemoteNameEmpty is an error for an empty remote name
var ErrRemoteNameEmpty = errors.New("The remote name is empty")

// ErrRemoteNameMultiline is an error for a remote name that has linebreaks
var ErrRemoteNameMultiline = errors.New("The remote name contains multiple lines")

// ErrRemoteNameInvalid is an error for a remote name that normalizes to nothing usable
var ErrRemoteNameInvalid = errors.New("The remote name does not contain a file name")

// ErrNoteIDEmpty is an error for an empty note id
var ErrNoteIDEmpty = errors.New("The note id is empty")

// ErrNoteIDInvalid is an error for a note id with characters an id never has
var ErrNoteIDInvalid = errors.New("The note id is malformed")

// ErrTitleMultiline is an error for a title that has linebreaks
var ErrTitleMultiline = errors.New("The title contains multiple lines")

// Permission levels accepted by the API
var (
	ReadPermissions    = []string{"owner", "signed_in", "guest"}
	WritePermissions   = []string{"owner", "signed_in", "guest"}
	CommentPermissions = []string{"disabled", "owner", "signed_in", "guest"}
)

// ExportFormats are the formats a note can be exported to
var ExportFormats = []string{client.FormatMarkdown, client.FormatHTML, client.FormatPDF}

var noteIDRegexp = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

func isMultiline(s string) bool {
	return strings.ContainsAny(s, "\r\n")
}

// RemoteName validates a name used to track a remote note
func RemoteName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrRemoteNameEmpty
	}

	if isMultiline(name) {
		return ErrRemoteNameMultiline
	}

	canonical := repo.Normalize(name)
	if strings.TrimSpace(canonical) == "" || canonical == "." || canonical == ".." {
		return ErrRemoteNameInvalid
	}

	return nil
}

// NoteID validates a note id
func NoteID(id string) error {
	if err := validation.Validate(id, validation.Required); err != nil {
		return ErrNoteIDEmpty
	}
	if err := validation.Validate(id, validation.Match(noteIDRegexp)); err != nil {
		return ErrNoteIDInvalid
	}

	return nil
}

// Title validates a note title. An empty title lets the API derive one.
func Title(title string) error {
	if isMultiline(title) {
		return ErrTitleMultiline
	}

	return nil
}

func oneOf(choices []string) validation.InRule {
	vals := make([]interface{}, len(choices))
	for i, c := range choices {
		vals[i] = c
	}

	return validation.In(vals...)
}

func permissionRule(kind string, levels []string) validation.Rule {
	return oneOf(levels).Error(kind + " permission must be one of " + strings.Join(levels, ", "))
}

// Permissions validates the permission levels of a note. Empty levels are
// left unchanged and are always valid.
func Permissions(read, write, comment string) error {
	if err := validation.Validate(read, permissionRule("read", ReadPermissions)); err != nil {
		return err
	}
	if err := validation.Validate(write, permissionRule("write", WritePermissions)); err != nil {
		return err
	}
	if err := validation.Validate(comment, permissionRule("comment", CommentPermissions)); err != nil {
		return err
	}

	return nil
}

// ExportFormat validates the format of an export
func ExportFormat(format string) error {
	return validation.Validate(format,
		validation.Required.Error("the export format is empty"),
		oneOf(ExportFormats).Error("the export format must be one of "+strings.Join(ExportFormats, ", ")),
	)
}
