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

package version

import (
	"fmt"
	"io"
	"runtime"

	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/context"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/log"
	"github.com/spf13/cobra"
)

var verbose bool

// NewCmd returns a new version command
func NewCmd(ctx context.HackMDCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number of hackmd",
		Long:  "Print the version number of hackmd",
		Run: func(cmd *cobra.Command, args []string) {
			Print(log.Output, ctx, verbose)
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&verbose, "verbose", "v", false, "also print the build platform and the API endpoint")

	return cmd
}

// Print writes the version line, followed by build and endpoint details
// when verbose is set.
func Print(w io.Writer, ctx context.HackMDCtx, verbose bool) {
	fmt.Fprintf(w, "hackmd %s\n", ctx.Version)
	if !verbose {
		return
	}

	fmt.Fprintf(w, "  go:       %s\n", runtime.Version())
	fmt.Fprintf(w, "  platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(w, "  endpoint: %s\n", ctx.APIEndpoint)
}
