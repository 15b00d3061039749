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

package export

import (
	"path/filepath"
	"strings"

	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/client"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/context"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/infra"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/log"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/ui"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/utils"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/validate"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var outputFlag string
var formatFlag string

var example = `
  * Export a note into a file named after its title
  hackmd export 4Bp2xZgbRgaWvEhl0Wbd9A

  * Export a note into a given file
  hackmd export 4Bp2xZgbRgaWvEhl0Wbd9A -o notes/meeting.md

  * Export a note rendered as HTML or PDF
  hackmd export 4Bp2xZgbRgaWvEhl0Wbd9A -f html
  hackmd export 4Bp2xZgbRgaWvEhl0Wbd9A -f pdf -o meeting.pdf`

// NewCmd returns a new export command
func NewCmd(ctx context.HackMDCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "export [note id|url]",
		Short:   "Save a note to a file as markdown, HTML or PDF",
		Example: example,
		Args:    cobra.MaximumNArgs(1),
		RunE:    newRun(ctx),
	}

	f := cmd.Flags()
	f.StringVarP(&outputFlag, "output", "o", "", "the file to write (defaults to the note title)")
	f.StringVarP(&formatFlag, "format", "f", client.FormatMarkdown, "the export format: md, html or pdf")

	return cmd
}

// DefaultPath returns the file a note is exported to when no path is given
func DefaultPath(note client.Note, format string) string {
	return utils.SafeFilename(note.Title, "untitled") + "." + format
}

// Do writes a note in the given format to path, relative to the working
// directory, and returns the path written
func Do(ctx context.HackMDCtx, noteID, format, path string) (string, error) {
	if err := validate.ExportFormat(format); err != nil {
		return "", err
	}

	note, err := client.GetNote(ctx, noteID)
	if err != nil {
		return "", errors.Wrapf(err, "getting note %s", noteID)
	}

	content := []byte(note.Content)
	if format != client.FormatMarkdown {
		content, err = client.RenderNote(ctx, noteID, format)
		if err != nil {
			return "", err
		}
	}

	if path == "" {
		path = DefaultPath(note, format)
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(ctx.WorkDir, path)
	}

	if err := utils.WriteFileAtomic(ctx.Fs, path, content, 0644); err != nil {
		return "", errors.Wrapf(err, "writing %s", path)
	}

	return path, nil
}

func getNoteID(ctx context.HackMDCtx, args []string) (string, error) {
	if len(args) == 1 {
		return client.ParseNoteID(args[0])
	}

	notes, err := infra.Cache(ctx).GetNotes()
	if err != nil {
		return "", errors.Wrap(err, "reading the cache")
	}

	return ui.SelectNote(notes, "Select a note to export")
}

func newRun(ctx context.HackMDCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		format := strings.ToLower(formatFlag)
		if err := validate.ExportFormat(format); err != nil {
			return err
		}

		noteID, err := getNoteID(ctx, args)
		if err != nil {
			return err
		}

		path, err := Do(ctx, noteID, format, outputFlag)
		if err != nil {
			return err
		}

		log.Successf("exported %s to %s\n", noteID, path)

		return nil
	}
}
