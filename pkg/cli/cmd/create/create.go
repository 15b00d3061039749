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

package create

import (
	"path/filepath"

	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/client"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/context"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/infra"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/log"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/output"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/ui"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/validate"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var example = `
  * Write a new note in your editor
  hackmd new

  * Create a note from a file
  hackmd new -t "Meeting notes" -f meeting.md

  * Create a note readable by anyone
  hackmd new -c "# Hello" --read guest --write owner

  * Create a note from stdin
  echo "# Hello" | hackmd new`

var titleFlag string
var contentFlag string
var fileFlag string
var readFlag string
var writeFlag string
var commentFlag string

// NewCmd returns a new command that creates a note
func NewCmd(ctx context.HackMDCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "new",
		Aliases: []string{"create", "n"},
		Short:   "Create a note",
		Example: example,
		Args:    cobra.NoArgs,
		RunE:    newRun(ctx),
	}

	f := cmd.Flags()
	f.StringVarP(&titleFlag, "title", "t", "", "the title of the note")
	f.StringVarP(&contentFlag, "content", "c", "", "the content of the note")
	f.StringVarP(&fileFlag, "file", "f", "", "read the content from a file")
	f.StringVar(&readFlag, "read", "", "read permission (owner, signed_in, guest)")
	f.StringVar(&writeFlag, "write", "", "write permission (owner, signed_in, guest)")
	f.StringVar(&commentFlag, "comment", "", "comment permission (disabled, owner, signed_in, guest)")

	return cmd
}

// ReadContent returns the content given by a flag or read from a file. The
// bool is false when neither was given.
func ReadContent(ctx context.HackMDCtx, content, file string) (string, bool, error) {
	if content != "" && file != "" {
		return "", false, errors.New("pass either --content or --file, not both")
	}

	if content != "" {
		return content, true, nil
	}
	if file == "" {
		return "", false, nil
	}

	path := file
	if !filepath.IsAbs(path) {
		path = filepath.Join(ctx.WorkDir, path)
	}

	b, err := afero.ReadFile(ctx.Fs, path)
	if err != nil {
		return "", false, errors.Wrapf(err, "reading %s", file)
	}

	return string(b), true, nil
}

// Do validates the payload, creates the note and caches its metadata
func Do(ctx context.HackMDCtx, payload client.CreateNotePayload) (client.Note, error) {
	if err := validate.Title(payload.Title); err != nil {
		return client.Note{}, err
	}
	if err := validate.Permissions(payload.ReadPermission, payload.WritePermission, payload.CommentPermission); err != nil {
		return client.Note{}, err
	}

	note, err := client.CreateNote(ctx, payload)
	if err != nil {
		return client.Note{}, errors.Wrap(err, "creating the note")
	}

	if err := infra.Cache(ctx).MergeOne(note); err != nil {
		return note, errors.Wrap(err, "caching the note")
	}

	return note, nil
}

func getContent(ctx context.HackMDCtx) (string, error) {
	content, ok, err := ReadContent(ctx, contentFlag, fileFlag)
	if err != nil {
		return "", err
	}
	if ok {
		return content, nil
	}

	if ui.IsStdinPiped() {
		content, err = ui.ReadStdInput()
		if err != nil {
			return "", errors.Wrap(err, "reading stdin")
		}
		return content, nil
	}

	content, err = ui.GetEditorInput(ctx, "")
	if err != nil {
		return "", errors.Wrap(err, "getting editor input")
	}

	return content, nil
}

func newRun(ctx context.HackMDCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		content, err := getContent(ctx)
		if err != nil {
			return err
		}

		note, err := Do(ctx, client.CreateNotePayload{
			Title:             titleFlag,
			Content:           content,
			ReadPermission:    readFlag,
			WritePermission:   writeFlag,
			CommentPermission: commentFlag,
		})
		if err != nil {
			return err
		}

		log.Successf("created %s\n", note.ID)
		output.NoteInfo(log.Output, note)

		return nil
	}
}
