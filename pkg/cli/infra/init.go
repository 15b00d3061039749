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

// Package infra provides operations and definitions for the
// local infrastructure of the CLI
package infra

import (
	"os"
	"path/filepath"

	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/client"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/config"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/consts"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/context"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/database"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/log"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/ui"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/utils"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/clock"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/dirs"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// RunEFunc is a function type of hackmd commands
type RunEFunc func(*cobra.Command, []string) error

func getDBPath(paths context.Paths, customPath string) string {
	if customPath != "" {
		return customPath
	}

	return filepath.Join(paths.DataDir(), consts.DBFileName)
}

// newBaseCtx creates a minimal context with paths, the filesystem and the
// database connection. It is enriched with config values by setupCtx.
func newBaseCtx(versionTag, customDBPath string) (context.HackMDCtx, error) {
	paths := context.Paths{
		Home:   dirs.Home,
		Config: dirs.ConfigHome,
		Data:   dirs.DataHome,
		Cache:  dirs.CacheHome,
	}

	db, err := database.Open(getDBPath(paths, customDBPath))
	if err != nil {
		return context.HackMDCtx{}, errors.Wrap(err, "connecting to db")
	}

	wd, err := os.Getwd()
	if err != nil {
		return context.HackMDCtx{}, errors.Wrap(err, "getting the working directory")
	}

	ctx := context.HackMDCtx{
		Paths:   paths,
		Version: versionTag,
		DB:      db,
		Fs:      afero.NewOsFs(),
		WorkDir: wd,
	}

	return ctx, nil
}

// Init initializes the local environment and returns a new context.
// apiEndpoint, if not empty, is used for a new config file and overrides the
// configured endpoint (e.g., from ldflags during tests).
func Init(versionTag, apiEndpoint, dbPath string) (*context.HackMDCtx, error) {
	ctx, err := newBaseCtx(versionTag, dbPath)
	if err != nil {
		return nil, errors.Wrap(err, "initializing a context")
	}

	if err := initFiles(ctx, apiEndpoint); err != nil {
		return nil, errors.Wrap(err, "initializing files")
	}

	n, err := database.Migrate(ctx.DB)
	if err != nil {
		return nil, errors.Wrap(err, "running migration")
	}
	log.Debug("applied %d migrations\n", n)

	ctx, err = setupCtx(ctx, apiEndpoint)
	if err != nil {
		return nil, errors.Wrap(err, "setting up the context")
	}

	log.Debug("context: %+v\n", context.Redact(ctx))

	return &ctx, nil
}

// setupCtx enriches the base context with values from the config file, the
// database and the environment. The environment takes precedence.
func setupCtx(ctx context.HackMDCtx, apiEndpoint string) (context.HackMDCtx, error) {
	cf, err := config.Read(ctx)
	if err != nil {
		return ctx, errors.Wrap(err, "reading config")
	}

	if apiEndpoint != "" {
		cf.APIEndpoint = apiEndpoint
	}
	if v := os.Getenv(consts.EnvAPIEndpoint); v != "" {
		cf.APIEndpoint = v
	}
	if err := cf.Validate(); err != nil {
		return ctx, errors.Wrapf(err, "invalid config at %s", config.GetPath(ctx))
	}

	token := os.Getenv(consts.EnvAPIToken)
	if token == "" {
		err := database.GetSystem(ctx.DB, consts.SystemAPIToken, &token)
		if err != nil && !errors.Is(err, database.ErrSystemKeyNotFound) {
			return ctx, errors.Wrap(err, "finding the api token")
		}
	}

	ret := ctx
	ret.APIEndpoint = cf.APIEndpoint
	ret.Editor = cf.Editor
	ret.APIToken = token
	ret.Clock = clock.New()
	ret.HTTPClient = client.NewRateLimitedHTTPClient()

	return ret, nil
}

// initConfigFile populates a new config file if it does not exist yet
func initConfigFile(ctx context.HackMDCtx, apiEndpoint string) error {
	path := config.GetPath(ctx)
	ok, err := utils.FileExists(ctx.Fs, path)
	if err != nil {
		return errors.Wrap(err, "checking if config exists")
	}
	if ok {
		return nil
	}

	endpoint := apiEndpoint
	if endpoint == "" {
		endpoint = consts.DefaultAPIEndpoint
	}

	cf := config.Config{
		Editor:      ui.GetEditorCommand(),
		APIEndpoint: endpoint,
	}

	if err := config.Write(ctx, cf); err != nil {
		return errors.Wrap(err, "writing config")
	}

	return nil
}

// initFiles creates, if necessary, the hackmd directories and files inside
func initFiles(ctx context.HackMDCtx, apiEndpoint string) error {
	if err := context.InitDirs(ctx.Fs, ctx.Paths); err != nil {
		return errors.Wrap(err, "creating the hackmd dirs")
	}
	if err := initConfigFile(ctx, apiEndpoint); err != nil {
		return errors.Wrap(err, "generating the config file")
	}

	return nil
}
