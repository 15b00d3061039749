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
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/output"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// lookupLimit caps the number of concurrent note lookups of a verbose listing
const lookupLimit = 4

var verboseFlag bool

func newListCmd(ctx context.HackMDCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tracked notes",
		Args:    cobra.NoArgs,
		RunE:    newListRun(ctx),
	}

	f := cmd.Flags()
	f.BoolVarP(&verboseFlag, "verbose", "v", false, "fetch the title and the last change of every note")

	return cmd
}

// List returns the bindings in name order. When verbose, each entry also
// carries the live note or the error of looking it up.
func List(ctx context.HackMDCtx, verbose bool) ([]output.RemoteEntry, error) {
	remotes := infra.RemoteStore(ctx)

	bindings, err := remotes.List()
	if err != nil {
		return nil, errors.Wrap(err, "reading remotes")
	}
	names, err := remotes.Names()
	if err != nil {
		return nil, errors.Wrap(err, "reading remotes")
	}

	entries := make([]output.RemoteEntry, len(names))
	for i, name := range names {
		entries[i] = output.RemoteEntry{Name: name, Binding: bindings[name]}
	}

	if verbose {
		lookup(ctx, entries)
	}

	return entries, nil
}

// lookup fetches the note of every entry. Each goroutine only writes its
// own entry.
func lookup(ctx context.HackMDCtx, entries []output.RemoteEntry) {
	var g errgroup.Group
	g.SetLimit(lookupLimit)

	for i := range entries {
		e := &entries[i]
		g.Go(func() error {
			note, err := client.GetNote(ctx, e.Binding.NoteID)
			if err != nil {
				e.Err = err
				return nil
			}

			e.Note = &note
			return nil
		})
	}

	g.Wait()
}

func newListRun(ctx context.HackMDCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		entries, err := List(ctx, verboseFlag)
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			log.Info("no tracked notes\n")
			return nil
		}

		output.Remotes(log.Output, entries)

		return nil
	}
}
