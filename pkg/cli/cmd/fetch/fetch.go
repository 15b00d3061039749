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

package fetch

import (
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/client"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/context"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/infra"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/log"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/output"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var example = `
  * Refresh the cached list of every note
  hackmd fetch --all

  * Fetch one note and show its details
  hackmd fetch 4Bp2xZgbRgaWvEhl0Wbd9A`

var allFlag bool

// NewCmd returns a new fetch command
func NewCmd(ctx context.HackMDCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "fetch [note id|url]",
		Short:   "Refresh the note metadata cache",
		Example: example,
		PreRunE: preRun,
		RunE:    newRun(ctx),
	}

	f := cmd.Flags()
	f.BoolVarP(&allFlag, "all", "a", false, "fetch every note")

	return cmd
}

func preRun(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return errors.New("Incorrect number of argument")
	}
	if allFlag == (len(args) == 1) {
		return errors.New("Pass either a note id or --all")
	}

	return nil
}

// All replaces the cache with every note and returns them
func All(ctx context.HackMDCtx) ([]client.Note, error) {
	notes, err := client.GetNotes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "getting notes")
	}

	if err := infra.Cache(ctx).SaveNotes(notes); err != nil {
		return nil, errors.Wrap(err, "saving the cache")
	}

	return notes, nil
}

// One fetches a note and merges it into the cache
func One(ctx context.HackMDCtx, arg string) (client.Note, error) {
	noteID, err := client.ParseNoteID(arg)
	if err != nil {
		return client.Note{}, err
	}

	note, err := client.GetNote(ctx, noteID)
	if err != nil {
		return client.Note{}, errors.Wrapf(err, "getting note %s", noteID)
	}

	if err := infra.Cache(ctx).MergeOne(note); err != nil {
		return note, errors.Wrap(err, "saving the cache")
	}

	return note, nil
}

func newRun(ctx context.HackMDCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		if allFlag {
			notes, err := All(ctx)
			if err != nil {
				return err
			}

			log.Successf("cached %d notes\n", len(notes))
			return nil
		}

		note, err := One(ctx, args[0])
		if err != nil {
			return err
		}

		output.NoteInfo(log.Output, note)

		return nil
	}
}
