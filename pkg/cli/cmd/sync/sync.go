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

package sync

import (
	"fmt"
	"io"

	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/cache"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/client"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/consts"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/context"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/database"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/infra"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var example = `
  * Show what changed on HackMD since the last pull
  hackmd sync

  * Show changes and update the local cache
  hackmd sync --pull

  * Only look at one tracked note
  hackmd sync --remote meeting`

var pullFlag bool
var remoteFlag string

// NewCmd returns a new sync command
func NewCmd(ctx context.HackMDCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sync",
		Aliases: []string{"s"},
		Short:   "Compare the cached note list with HackMD",
		Example: example,
		Args:    cobra.NoArgs,
		RunE:    newRun(ctx),
	}

	f := cmd.Flags()
	f.BoolVar(&pullFlag, "pull", false, "update the local cache with the changes")
	f.StringVar(&remoteFlag, "remote", "", "only compare the note tracked by this name")

	return cmd
}

// Options configures a sync
type Options struct {
	// Remote restricts the comparison to the note bound to this name
	Remote string
	// Pull applies the changes to the cache
	Pull bool
}

func filterNotes(notes []client.Note, id string) []client.Note {
	ret := []client.Note{}
	for _, n := range notes {
		if n.ID == id {
			ret = append(ret, n)
		}
	}

	return ret
}

func filterSummaries(summaries []cache.Summary, id string) []cache.Summary {
	ret := []cache.Summary{}
	for _, s := range summaries {
		if s.ID == id {
			ret = append(ret, s)
		}
	}

	return ret
}

// apply writes a change set into the cache. A scoped change set only
// touches its own entries.
func apply(c *cache.Cache, remote []client.Note, cs ChangeSet, scoped bool) error {
	if !scoped {
		return c.SaveNotes(remote)
	}

	for _, n := range cs.New {
		if err := c.MergeOne(n); err != nil {
			return err
		}
	}
	for _, n := range cs.Modified {
		if err := c.MergeOne(n); err != nil {
			return err
		}
	}
	for _, s := range cs.Deleted {
		if err := c.Remove(s.ID); err != nil {
			return err
		}
	}

	return nil
}

func updateLastSyncAt(db *database.DB, val int64) error {
	tx, err := db.Begin()
	if err != nil {
		return errors.Wrap(err, "beginning a transaction")
	}

	if err := database.UpsertSystem(tx, consts.SystemLastSyncAt, val); err != nil {
		tx.Rollback()
		return errors.Wrapf(err, "updating %s", consts.SystemLastSyncAt)
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "committing the transaction")
	}

	return nil
}

// Do compares the cache with the notes on HackMD and, if requested, brings
// the cache up to date
func Do(ctx context.HackMDCtx, opts Options) (ChangeSet, error) {
	c := infra.Cache(ctx)

	local, err := c.GetNotes()
	if err != nil {
		return ChangeSet{}, errors.Wrap(err, "reading the cache")
	}

	remote, err := client.GetNotes(ctx)
	if err != nil {
		return ChangeSet{}, errors.Wrap(err, "getting notes")
	}

	scoped := opts.Remote != ""
	if scoped {
		b, err := infra.RemoteStore(ctx).Get(opts.Remote)
		if err != nil {
			return ChangeSet{}, err
		}

		local = filterSummaries(local, b.NoteID)
		remote = filterNotes(remote, b.NoteID)
	}

	cs, err := Diff(local, remote)
	if err != nil {
		return ChangeSet{}, errors.Wrap(err, "comparing notes")
	}

	if !opts.Pull {
		return cs, nil
	}

	if err := apply(c, remote, cs, scoped); err != nil {
		return cs, errors.Wrap(err, "updating the cache")
	}
	if err := updateLastSyncAt(ctx.DB, ctx.Clock.Now().Unix()); err != nil {
		return cs, err
	}

	return cs, nil
}

// Print writes a change set, one note per line
func Print(w io.Writer, cs ChangeSet) {
	for _, n := range cs.New {
		fmt.Fprintf(w, "  %s %s (%s)\n", log.ColorGreen.Sprint("+"), n.Title, n.ID)
	}
	for _, n := range cs.Modified {
		fmt.Fprintf(w, "  %s %s (%s)\n", log.ColorYellow.Sprint("*"), n.Title, n.ID)
	}
	for _, s := range cs.Deleted {
		fmt.Fprintf(w, "  %s %s (%s)\n", log.ColorRed.Sprint("-"), s.Title, s.ID)
	}
}

func newRun(ctx context.HackMDCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		cs, err := Do(ctx, Options{Remote: remoteFlag, Pull: pullFlag})
		if err != nil {
			return errors.Wrap(err, "syncing")
		}

		if cs.Empty() {
			log.Success("already up to date\n")
			return nil
		}

		log.Infof("%d new, %d modified, %d deleted\n", len(cs.New), len(cs.Modified), len(cs.Deleted))
		Print(log.Output, cs)

		if pullFlag {
			log.Success("cache updated\n")
		} else {
			log.Plain("run with --pull to update the cache\n")
		}

		return nil
	}
}
