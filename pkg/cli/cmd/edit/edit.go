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

package edit

import (
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/client"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/cmd/create"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/context"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/infra"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/log"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/ui"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/validate"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var titleFlag string
var contentFlag string
var fileFlag string
var readFlag string
var writeFlag string
var commentFlag string

var example = `
  * Pick a cached note and edit it interactively
  hackmd edit

  * Edit a note in your editor
  hackmd edit 4Bp2xZgbRgaWvEhl0Wbd9A

  * Rename a note without launching an editor
  hackmd edit 4Bp2xZgbRgaWvEhl0Wbd9A -t "Weekly sync"

  * Replace the content with a file and let signed in users write
  hackmd edit 4Bp2xZgbRgaWvEhl0Wbd9A -f meeting.md --write signed_in
`

// NewCmd returns a new edit command
func NewCmd(ctx context.HackMDCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "edit [note id|url]",
		Short:   "Edit a note",
		Aliases: []string{"e"},
		Example: example,
		PreRunE: preRun,
		RunE:    newRun(ctx),
	}

	f := cmd.Flags()
	f.StringVarP(&titleFlag, "title", "t", "", "a new title for the note")
	f.StringVarP(&contentFlag, "content", "c", "", "a new content for the note")
	f.StringVarP(&fileFlag, "file", "f", "", "read the new content from a file")
	f.StringVar(&readFlag, "read", "", "read permission (owner, signed_in, guest)")
	f.StringVar(&writeFlag, "write", "", "write permission (owner, signed_in, guest)")
	f.StringVar(&commentFlag, "comment", "", "comment permission (disabled, owner, signed_in, guest)")

	return cmd
}

func preRun(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return errors.New("Incorrect number of argument")
	}

	return nil
}

// Do applies the payload to a note and refreshes its cached metadata
func Do(ctx context.HackMDCtx, noteID string, payload client.UpdateNotePayload) (client.Note, error) {
	if payload.Title != nil {
		if err := validate.Title(*payload.Title); err != nil {
			return client.Note{}, err
		}
	}
	if err := validate.Permissions(payload.ReadPermission, payload.WritePermission, payload.CommentPermission); err != nil {
		return client.Note{}, err
	}

	if _, err := client.UpdateNote(ctx, noteID, payload); err != nil {
		return client.Note{}, errors.Wrap(err, "updating the note")
	}

	note, err := client.GetNote(ctx, noteID)
	if err != nil {
		return client.Note{}, errors.Wrap(err, "getting the updated note")
	}

	if err := infra.Cache(ctx).MergeOne(note); err != nil {
		return note, errors.Wrap(err, "caching the note")
	}

	return note, nil
}

func getNoteID(ctx context.HackMDCtx, args []string) (string, error) {
	if len(args) == 1 {
		return client.ParseNoteID(args[0])
	}

	notes, err := infra.Cache(ctx).GetNotes()
	if err != nil {
		return "", errors.Wrap(err, "reading the cache")
	}

	return ui.SelectNote(notes, "Select a note to edit")
}

// payloadFromFlags returns the payload described by the flags. The bool is
// false when no flag was given.
func payloadFromFlags(ctx context.HackMDCtx) (client.UpdateNotePayload, bool, error) {
	ret := client.UpdateNotePayload{
		ReadPermission:    readFlag,
		WritePermission:   writeFlag,
		CommentPermission: commentFlag,
	}
	given := readFlag != "" || writeFlag != "" || commentFlag != ""

	if titleFlag != "" {
		title := titleFlag
		ret.Title = &title
		given = true
	}

	content, ok, err := create.ReadContent(ctx, contentFlag, fileFlag)
	if err != nil {
		return ret, false, err
	}
	if ok {
		ret.Content = &content
		given = true
	}

	return ret, given, nil
}

// payloadFromPrompt asks for the fields and the content of the note
func payloadFromPrompt(ctx context.HackMDCtx, noteID string) (client.UpdateNotePayload, error) {
	note, err := client.GetNote(ctx, noteID)
	if err != nil {
		return client.UpdateNotePayload{}, errors.Wrapf(err, "getting note %s", noteID)
	}

	fields := ui.NoteFields{
		Title:             note.Title,
		ReadPermission:    note.ReadPermission,
		WritePermission:   note.WritePermission,
		CommentPermission: note.CommentPermission,
	}
	if err := ui.PromptNoteFields(&fields); err != nil {
		return client.UpdateNotePayload{}, err
	}

	content, err := ui.GetEditorInput(ctx, note.Content)
	if err != nil {
		return client.UpdateNotePayload{}, errors.Wrap(err, "getting editor input")
	}

	return newPayload(note, fields, content), nil
}

// newPayload returns a payload holding only what differs from note
func newPayload(note client.Note, fields ui.NoteFields, content string) client.UpdateNotePayload {
	var ret client.UpdateNotePayload

	if fields.Title != note.Title {
		ret.Title = &fields.Title
	}
	if content != note.Content {
		ret.Content = &content
	}
	if fields.ReadPermission != note.ReadPermission {
		ret.ReadPermission = fields.ReadPermission
	}
	if fields.WritePermission != note.WritePermission {
		ret.WritePermission = fields.WritePermission
	}
	if fields.CommentPermission != note.CommentPermission {
		ret.CommentPermission = fields.CommentPermission
	}

	return ret
}

func isEmpty(p client.UpdateNotePayload) bool {
	return p.Title == nil && p.Content == nil && p.ReadPermission == "" && p.WritePermission == "" && p.CommentPermission == ""
}

func newRun(ctx context.HackMDCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		noteID, err := getNoteID(ctx, args)
		if err != nil {
			return err
		}

		payload, given, err := payloadFromFlags(ctx)
		if err != nil {
			return err
		}
		if !given {
			payload, err = payloadFromPrompt(ctx, noteID)
			if err != nil {
				return err
			}
		}

		if isEmpty(payload) {
			log.Info("nothing changed\n")
			return nil
		}

		note, err := Do(ctx, noteID, payload)
		if err != nil {
			return err
		}

		log.Successf("updated %s (%s)\n", note.Title, note.ID)

		return nil
	}
}
