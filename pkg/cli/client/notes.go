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

package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"

	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/context"
	"github.com/pkg/errors"
)

// Team is a team the user belongs to
type Team struct {
	ID          string `json:"id"`
	OwnerID     string `json:"ownerId"`
	Name        string `json:"name"`
	Path        string `json:"path"`
	Description string `json:"description"`
	Visibility  string `json:"visibility"`
}

// User is the authenticated user
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	UserPath string `json:"userPath"`
	Photo    string `json:"photo"`
	Teams    []Team `json:"teams"`
}

// NoteUser is a user attached to a note
type NoteUser struct {
	Name      string `json:"name"`
	UserPath  string `json:"userPath"`
	Photo     string `json:"photo"`
	Biography string `json:"biography"`
}

// Note is a note as returned by the API. List endpoints leave Content empty.
type Note struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Content           string    `json:"content,omitempty"`
	Tags              []string  `json:"tags"`
	CreatedAt         Timestamp `json:"createdAt"`
	LastChangedAt     Timestamp `json:"lastChangedAt"`
	ReadPermission    string    `json:"readPermission"`
	WritePermission   string    `json:"writePermission"`
	CommentPermission string    `json:"commentPermission"`
	PublishType       string    `json:"publishType"`
	PublishLink       string    `json:"publishLink"`
	ShortID           string    `json:"shortId"`
	Permalink         string    `json:"permalink"`
	UserPath          string    `json:"userPath"`
	TeamPath          string    `json:"teamPath"`
	LastChangeUser    *NoteUser `json:"lastChangeUser"`
	User              *NoteUser `json:"user,omitempty"`
}

// Author returns the display name of the note's author, falling back to the
// last editor
func (n Note) Author() string {
	if n.User != nil && n.User.Name != "" {
		return n.User.Name
	}
	if n.LastChangeUser != nil && n.LastChangeUser.Name != "" {
		return n.LastChangeUser.Name
	}

	return "Anonymous"
}

// CreateNotePayload is a payload for creating a note
type CreateNotePayload struct {
	Title             string `json:"title,omitempty"`
	Content           string `json:"content,omitempty"`
	ReadPermission    string `json:"readPermission,omitempty"`
	WritePermission   string `json:"writePermission,omitempty"`
	CommentPermission string `json:"commentPermission,omitempty"`
}

// UpdateNotePayload is a payload for updating a note. Nil fields are left
// unchanged on the server.
type UpdateNotePayload struct {
	Title             *string `json:"title,omitempty"`
	Content           *string `json:"content,omitempty"`
	ReadPermission    string  `json:"readPermission,omitempty"`
	WritePermission   string  `json:"writePermission,omitempty"`
	CommentPermission string  `json:"commentPermission,omitempty"`
}

func notePath(noteID string) string {
	return fmt.Sprintf("/notes/%s", url.PathEscape(noteID))
}

// GetMe returns the user the API token belongs to
func GetMe(ctx context.HackMDCtx) (User, error) {
	var ret User

	res, err := doAuthorizedReq(ctx, "GET", "/me", "", nil)
	if err != nil {
		return ret, errors.Wrap(err, "getting the user")
	}

	if err := decodeResp(res, &ret); err != nil {
		return ret, errors.Wrap(err, "decoding payload")
	}

	return ret, nil
}

// GetNotes returns every note of the user. The notes carry no content.
func GetNotes(ctx context.HackMDCtx) ([]Note, error) {
	ret := []Note{}

	res, err := doAuthorizedReq(ctx, "GET", "/notes", "", nil)
	if err != nil {
		return nil, errors.Wrap(err, "getting notes")
	}

	if err := decodeResp(res, &ret); err != nil {
		return nil, errors.Wrap(err, "decoding payload")
	}

	return ret, nil
}

// GetNote returns a single note with its content
func GetNote(ctx context.HackMDCtx, noteID string) (Note, error) {
	var ret Note

	res, err := doAuthorizedReq(ctx, "GET", notePath(noteID), "", nil)
	if err != nil {
		return ret, errors.Wrapf(err, "getting note %s", noteID)
	}

	if err := decodeResp(res, &ret); err != nil {
		return ret, errors.Wrap(err, "decoding payload")
	}

	return ret, nil
}

// CreateNote creates a note
func CreateNote(ctx context.HackMDCtx, payload CreateNotePayload) (Note, error) {
	var ret Note

	b, err := json.Marshal(payload)
	if err != nil {
		return ret, errors.Wrap(err, "marshaling payload")
	}

	res, err := doAuthorizedReq(ctx, "POST", "/notes", string(b), nil)
	if err != nil {
		return ret, errors.Wrap(err, "creating a note")
	}

	if err := decodeResp(res, &ret); err != nil {
		return ret, errors.Wrap(err, "decoding payload")
	}

	return ret, nil
}

// UpdateNote updates a note. The API may accept the update without
// returning the note, in which case the returned note is empty.
func UpdateNote(ctx context.HackMDCtx, noteID string, payload UpdateNotePayload) (Note, error) {
	var ret Note

	b, err := json.Marshal(payload)
	if err != nil {
		return ret, errors.Wrap(err, "marshaling payload")
	}

	res, err := doAuthorizedReq(ctx, "PATCH", notePath(noteID), string(b), nil)
	if err != nil {
		return ret, errors.Wrapf(err, "updating note %s", noteID)
	}

	if err := decodeResp(res, &ret); err != nil {
		return ret, errors.Wrap(err, "decoding payload")
	}

	return ret, nil
}

// DeleteNote deletes a note
func DeleteNote(ctx context.HackMDCtx, noteID string) error {
	res, err := doAuthorizedReq(ctx, "DELETE", notePath(noteID), "", nil)
	if err != nil {
		return errors.Wrapf(err, "deleting note %s", noteID)
	}
	res.Body.Close()

	return nil
}

// Export formats. Markdown is the note content itself; the others are
// rendered by the API.
const (
	FormatMarkdown = "md"
	FormatHTML     = "html"
	FormatPDF      = "pdf"
)

// ErrUnsupportedFormat is an error for a format the API cannot render
var ErrUnsupportedFormat = errors.New("unsupported export format")

var renderedContentTypes = map[string]string{
	FormatHTML: "text/html",
	FormatPDF:  "application/pdf",
}

// RenderNote returns a note rendered by the API in the given format
func RenderNote(ctx context.HackMDCtx, noteID, format string) ([]byte, error) {
	contentType, ok := renderedContentTypes[format]
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedFormat, "'%s'", format)
	}

	res, err := doAuthorizedReq(ctx, "POST", fmt.Sprintf("%s/%s", notePath(noteID), format), "", &requestOptions{
		ExpectedContentType: &contentType,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "rendering note %s as %s", noteID, format)
	}
	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading the response body")
	}

	return b, nil
}
