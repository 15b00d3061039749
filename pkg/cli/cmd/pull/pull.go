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

// Package pull implements the pull command
package pull

import (
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/context"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/infra"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/log"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/repo"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/transfer"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var example = `
  * Pull every tracked note
  hackmd pull

  * Pull one tracked note
  hackmd pull meeting`

// NewCmd returns a new pull command
func NewCmd(ctx context.HackMDCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pull [name]",
		Short:   "Download tracked notes into local files",
		Example: example,
		Args:    cobra.MaximumNArgs(1),
		RunE:    newRun(ctx),
	}

	return cmd
}

// NewTransfer returns a Transfer for the repository in the working
// directory after checking that it is initialized
func NewTransfer(ctx context.HackMDCtx, api transfer.NoteAPI) (*transfer.Transfer, error) {
	remotes := infra.RemoteStore(ctx)

	ok, err := remotes.Initialized()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, repo.ErrNotInitialized
	}

	return transfer.New(api, remotes, infra.NoteStore(ctx)), nil
}

func printOutcome(o transfer.Outcome) {
	if o.Err != nil {
		log.Errorf("%s: %s\n", o.Name, o.Err.Error())
		return
	}

	log.Successf("pulled %s into %s\n", o.Name, o.Path)
}

func newRun(ctx context.HackMDCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		t, err := NewTransfer(ctx, transfer.NewAPI(ctx))
		if err != nil {
			return errors.Wrap(err, "pulling")
		}

		if len(args) == 1 {
			o := t.Pull(args[0])
			if o.Err != nil {
				return o.Err
			}

			printOutcome(o)
			return nil
		}

		t.OnItem = printOutcome
		report, err := t.PullAll()
		if err != nil {
			return errors.Wrap(err, "pulling")
		}
		if len(report.Items) == 0 {
			log.Info("no tracked notes\n")
			return nil
		}

		return report.Err()
	}
}
