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

package main

import (
	"os"
	"strings"

	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/client"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/infra"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/log"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/repo"
	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	// commands
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/cmd/create"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/cmd/edit"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/cmd/export"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/cmd/fetch"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/cmd/initialize"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/cmd/login"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/cmd/logout"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/cmd/ls"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/cmd/pull"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/cmd/push"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/cmd/remote"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/cmd/remove"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/cmd/root"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/cmd/sync"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/cmd/version"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/cmd/whoami"
)

// apiEndpoint and versionTag are populated during link time
var apiEndpoint string
var versionTag = "master"

// parseDBPath extracts --dbPath flag value from command line arguments
// regardless of where it appears (before or after subcommand).
// Returns empty string if not found.
func parseDBPath(args []string) string {
	for i, arg := range args {
		if strings.HasPrefix(arg, "--dbPath=") {
			return strings.TrimPrefix(arg, "--dbPath=")
		}
		if arg == "--dbPath" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

// loadEnvFile reads HACKMD_* variables from a .env file in the working
// directory. Variables already set in the environment win.
func loadEnvFile() error {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(errors.Cause(err)) {
		return err
	}

	return nil
}

// hint returns a command that helps recover from err, if there is one
func hint(err error) string {
	var h repo.Hinter
	if errors.As(err, &h) {
		return h.Hint()
	}

	if errors.Is(err, client.ErrNoToken) {
		return "hackmd login"
	}

	var httpErr *client.HTTPError
	if errors.As(err, &httpErr) && httpErr.IsUnauthorized() {
		return "hackmd login"
	}

	return ""
}

func printError(err error) {
	log.Errorf("%s\n", err.Error())

	if h := hint(err); h != "" {
		log.Hint(h)
	}
}

func main() {
	if err := loadEnvFile(); err != nil {
		log.Errorf("%s\n", errors.Wrap(err, "loading .env").Error())
		os.Exit(1)
	}

	// --dbPath can appear after the subcommand, which root.ParseFlags does
	// not see, and the database is needed before cobra runs.
	dbPath := parseDBPath(os.Args[1:])

	ctx, err := infra.Init(versionTag, apiEndpoint, dbPath)
	if err != nil {
		panic(errors.Wrap(err, "initializing context"))
	}
	defer ctx.DB.Close()

	root.Register(initialize.NewCmd(*ctx))
	root.Register(remote.NewCmd(*ctx))
	root.Register(pull.NewCmd(*ctx))
	root.Register(push.NewCmd(*ctx))
	root.Register(sync.NewCmd(*ctx))
	root.Register(login.NewCmd(*ctx))
	root.Register(logout.NewCmd(*ctx))
	root.Register(whoami.NewCmd(*ctx))
	root.Register(ls.NewCmd(*ctx))
	root.Register(fetch.NewCmd(*ctx))
	root.Register(create.NewCmd(*ctx))
	root.Register(edit.NewCmd(*ctx))
	root.Register(remove.NewCmd(*ctx))
	root.Register(export.NewCmd(*ctx))
	root.Register(version.NewCmd(*ctx))

	if err := root.Execute(); err != nil {
		printError(err)
		ctx.DB.Close()
		os.Exit(1)
	}
}
