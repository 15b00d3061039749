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

package remove

import (
	"fmt"

	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/client"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/context"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/infra"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/log"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/output"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/ui"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var yesFlag bool

var example = `
  * Pick a cached note and delete it
  hackmd delete

  * Delete a note by id
  hackmd delete 4Bp2xZgbRgaWvEhl0Wbd9A

  * Skip the confirmation
  hackmd delete 4Bp2xZgbRgaWvEhl0Wbd9A -y`

func preRun(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return errors.New("Incorrect number of argument")
	}

	return nil
}

// NewCmd returns a new delete command
func NewCmd(ctx context.HackMDCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete [note id|url]",
		Short:   "Delete a note",
		Aliases: []string{"d", "remove"},
		Example: example,
		PreRunE: preRun,
		RunE:    newRun(ctx),
	}

	f := cmd.Flags()
	f.BoolVarP(&yesFlag, "yes", "y", false, "delete without confirmation")

	return cmd
}

// Do deletes a note and drops it from the cache
func Do(ctx context.HackMDCtx, noteID string) error {
	if err := client.DeleteNote(ctx, noteID); err != nil {
		return errors.Wrap(err, "deleting the note")
	}

	if err := infra.Cache(ctx).Remove(noteID); err != nil {
		return errors.Wrap(err, "updating the cache")
	}

	return nil
}

func getNoteID(ctx context.HackMDCtx, args []string) (string, error) {
	if len(args) == 1 {
		return client.ParseNoteID(args[0])
	}

	notes, err := infra.Cache(ctx).GetNotes()
	if err != nil {
		return "", errors.Wrap(err, "reading the cache")
	}

	return ui.SelectNote(notes, "Select a note to delete")
}

func newRun(ctx context.HackMDCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		noteID, err := getNoteID(ctx, args)
		if err != nil {
			return err
		}

		note, err := client.GetNote(ctx, noteID)
		if err != nil {
			return errors.Wrapf(err, "getting note %s", noteID)
		}

		if !yesFlag {
			output.NoteInfo(log.Output, note)

			ok, err := ui.Confirm(fmt.Sprintf("Are you sure you want to delete note '%s'?", note.Title), false)
			if err != nil {
				return errors.Wrap(err, "getting confirmation")
			}
			if !ok {
				log.Warnf("aborted by user\n")
				return nil
			}
		}

		if err := Do(ctx, noteID); err != nil {
			return err
		}

		log.Successf("deleted %s\n", noteID)

		return nil
	}
}
