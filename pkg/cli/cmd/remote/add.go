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

package remote

import (
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/client"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/context"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/infra"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/log"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/repo"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/validate"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newAddCmd(ctx context.HackMDCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name> <note id|url>",
		Short: "Track a note under a local name",
		Args:  cobra.ExactArgs(2),
		RunE:  newAddRun(ctx),
	}

	return cmd
}

// Add verifies that the note exists and binds name to it. It returns the
// canonical name and the note.
func Add(ctx context.HackMDCtx, name, noteArg string) (string, client.Note, error) {
	if err := validate.RemoteName(name); err != nil {
		return "", client.Note{}, err
	}

	noteID, err := client.ParseNoteID(noteArg)
	if err != nil {
		return "", client.Note{}, err
	}
	if err := validate.NoteID(noteID); err != nil {
		return "", client.Note{}, err
	}

	remotes := infra.RemoteStore(ctx)

	ok, err := remotes.Initialized()
	if err != nil {
		return "", client.Note{}, err
	}
	if !ok {
		return "", client.Note{}, repo.ErrNotInitialized
	}

	note, err := client.GetNote(ctx, noteID)
	if err != nil {
		return "", client.Note{}, errors.Wrapf(err, "verifying note %s", noteID)
	}

	canonical, err := remotes.Add(name, noteID)
	if err != nil {
		return canonical, note, err
	}

	return canonical, note, nil
}

func newAddRun(ctx context.HackMDCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		canonical, note, err := Add(ctx, args[0], args[1])
		if err != nil {
			return errors.Wrap(err, "adding a remote")
		}

		log.Successf("tracking '%s' as %s\n", note.Title, canonical)

		return nil
	}
}
