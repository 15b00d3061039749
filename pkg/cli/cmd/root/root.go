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

package root

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// dbPathFlag is only declared for help output. main reads it from the raw
// arguments since the database is opened before the commands run.
var dbPathFlag string
var noColorFlag bool

var root = &cobra.Command{
	Use:           "hackmd",
	Short:         "hackmd - track, sync and edit HackMD notes from the command line",
	SilenceErrors: true,
	SilenceUsage:  true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColorFlag || os.Getenv("NO_COLOR") != "" {
			color.NoColor = true
		}
	},
}

func init() {
	f := root.PersistentFlags()
	f.StringVar(&dbPathFlag, "dbPath", "", "the path to the database file (defaults to standard location)")
	f.BoolVar(&noColorFlag, "no-color", false, "disable colored output")
}

// Register adds a new command
func Register(cmd *cobra.Command) {
	root.AddCommand(cmd)
}

// Execute runs the main command
func Execute() error {
	return root.Execute()
}
