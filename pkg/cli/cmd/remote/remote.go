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

// Package remote implements the commands that bind local note names to
// HackMD notes
package remote

import (
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/context"
	"github.com/spf13/cobra"
)

var example = `
  * Track a note as "meeting"
  hackmd remote add meeting 4Bp2xZgbRgaWvEhl0Wbd9A

  * Track a note by its URL
  hackmd remote add design https://hackmd.io/@team/4Bp2xZgbRgaWvEhl0Wbd9A

  * Show tracked notes with their live titles
  hackmd remote list -v

  * Stop tracking a note
  hackmd remote rm meeting`

// NewCmd returns a new remote command
func NewCmd(ctx context.HackMDCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remote",
		Short:   "Manage tracked notes",
		Example: example,
	}

	cmd.AddCommand(newAddCmd(ctx))
	cmd.AddCommand(newRemoveCmd(ctx))
	cmd.AddCommand(newListCmd(ctx))

	return cmd
}
