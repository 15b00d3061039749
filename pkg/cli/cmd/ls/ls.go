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

package ls

import (
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/cache"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/client"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/context"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/infra"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/log"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/output"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var example = `
  * List notes with their title and id
  hackmd list

  * Show who wrote each note and when it changed
  hackmd list --author --modified

  * Show every column
  hackmd list -v

  * List the cached notes without calling the API
  hackmd list --cached`

// ColumnFlags selects the columns of the table
type ColumnFlags struct {
	Title    bool
	ID       bool
	Author   bool
	Created  bool
	Modified bool
	Read     bool
	Write    bool
	Comment  bool
}

var cachedFlag bool
var verboseFlag bool
var columnFlags ColumnFlags

// NewCmd returns a new list command
func NewCmd(ctx context.HackMDCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List notes",
		Example: example,
		Args:    cobra.NoArgs,
		RunE:    newRun(ctx),
	}

	f := cmd.Flags()
	f.BoolVar(&cachedFlag, "cached", false, "list the cached notes instead of fetching them")
	f.BoolVarP(&verboseFlag, "verbose", "v", false, "show every column")
	f.BoolVar(&columnFlags.Title, "title", false, "show the title column")
	f.BoolVar(&columnFlags.ID, "id", false, "show the id column")
	f.BoolVar(&columnFlags.Author, "author", false, "show the author column")
	f.BoolVar(&columnFlags.Created, "created", false, "show the creation time column")
	f.BoolVar(&columnFlags.Modified, "modified", false, "show the last change time column")
	f.BoolVar(&columnFlags.Read, "read", false, "show the read permission column")
	f.BoolVar(&columnFlags.Write, "write", false, "show the write permission column")
	f.BoolVar(&columnFlags.Comment, "comment", false, "show the comment permission column")

	return cmd
}

// Columns returns the requested columns in display order. Without any
// request the default columns are returned.
func Columns(flags ColumnFlags, verbose bool) []output.Column {
	if verbose {
		return output.AllColumns()
	}

	pairs := []struct {
		on     bool
		column output.Column
	}{
		{flags.Title, output.ColumnTitle},
		{flags.ID, output.ColumnID},
		{flags.Author, output.ColumnAuthor},
		{flags.Created, output.ColumnCreated},
		{flags.Modified, output.ColumnModified},
		{flags.Read, output.ColumnRead},
		{flags.Write, output.ColumnWrite},
		{flags.Comment, output.ColumnComment},
	}

	ret := []output.Column{}
	for _, p := range pairs {
		if p.on {
			ret = append(ret, p.column)
		}
	}
	if len(ret) == 0 {
		return output.DefaultColumns()
	}

	return ret
}

func fromSummaries(summaries []cache.Summary) []client.Note {
	ret := make([]client.Note, 0, len(summaries))
	for _, s := range summaries {
		ret = append(ret, client.Note{
			ID:            s.ID,
			Title:         s.Title,
			LastChangedAt: s.LastChangeAt,
		})
	}

	return ret
}

// GetNotes returns the notes to list, from the cache or from the API
func GetNotes(ctx context.HackMDCtx, cached bool) ([]client.Note, error) {
	if cached {
		summaries, err := infra.Cache(ctx).GetNotes()
		if err != nil {
			return nil, errors.Wrap(err, "reading the cache")
		}

		return fromSummaries(summaries), nil
	}

	notes, err := client.GetNotes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "getting notes")
	}

	return notes, nil
}

func newRun(ctx context.HackMDCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		notes, err := GetNotes(ctx, cachedFlag)
		if err != nil {
			return err
		}

		if len(notes) == 0 {
			log.Info("no notes\n")
			return nil
		}

		output.Table(log.Output, notes, Columns(columnFlags, verboseFlag))

		return nil
	}
}
