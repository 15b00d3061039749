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

// Package push implements the push command
package push

import (
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/cmd/pull"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/context"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/infra"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/log"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/transfer"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var example = `
  * Push every tracked note that has a local file
  hackmd push

  * Push one tracked note
  hackmd push meeting.md`

// NewCmd returns a new push command
func NewCmd(ctx context.HackMDCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "push [name]",
		Short:   "Upload local files to the notes they track",
		Example: example,
		Args:    cobra.MaximumNArgs(1),
		RunE:    newRun(ctx),
	}

	return cmd
}

func printOutcome(o transfer.Outcome) {
	if o.Err != nil {
		log.Errorf("%s: %s\n", o.Name, o.Err.Error())
		return
	}

	log.Successf("pushed %s to %s\n", o.Name, o.NoteID)
}

func newRun(ctx context.HackMDCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		t, err := pull.NewTransfer(ctx, transfer.NewAPI(ctx))
		if err != nil {
			return errors.Wrap(err, "pushing")
		}

		if len(args) == 1 {
			o := t.Push(args[0])
			if o.Err != nil {
				return o.Err
			}

			printOutcome(o)
			return nil
		}

		t.OnItem = printOutcome
		report, err := t.PushAll()
		if err != nil {
			return errors.Wrap(err, "pushing")
		}

		for _, name := range report.Skipped {
			log.Printf("skipped %s: no local file\n", name)
		}
		if len(report.Items) == 0 && len(report.Skipped) == 0 {
			log.Info("no tracked notes\n")
		}

		return report.Err()
	}
}
