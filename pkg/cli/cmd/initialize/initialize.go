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

// Package initialize implements the init command, which marks the working
// directory as a repository of tracked notes
package initialize

import (
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/context"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/infra"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var example = `
  mkdir notes && cd notes
  hackmd init`

// NewCmd returns a new init command
func NewCmd(ctx context.HackMDCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "init",
		Short:   "Start tracking notes in the current directory",
		Example: example,
		Args:    cobra.NoArgs,
		RunE:    newRun(ctx),
	}

	return cmd
}

func newRun(ctx context.HackMDCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		remotes := infra.RemoteStore(ctx)

		if err := remotes.Init(); err != nil {
			return errors.Wrap(err, "initializing the repository")
		}

		log.Successf("initialized an empty repository in %s\n", remotes.Dir())

		return nil
	}
}
