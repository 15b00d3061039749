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

// Package context defines the runtime context handed to every command
package context

import (
	"net/http"
	"path/filepath"

	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/consts"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/database"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/clock"
	"github.com/spf13/afero"
)

// Paths contain directory definitions
type Paths struct {
	Home   string
	Config string
	Data   string
	Cache  string
}

// ConfigDir is the directory holding the config file
func (p Paths) ConfigDir() string {
	return filepath.Join(p.Config, consts.DirName)
}

// DataDir is the directory holding the database
func (p Paths) DataDir() string {
	return filepath.Join(p.Data, consts.DirName)
}

// CacheDir is the directory holding the note metadata cache
func (p Paths) CacheDir() string {
	return filepath.Join(p.Cache, consts.DirName)
}

// HackMDCtx is a context holding the information of the current runtime
type HackMDCtx struct {
	Paths       Paths
	APIEndpoint string
	Version     string
	DB          *database.DB
	APIToken    string
	Editor      string
	Clock       clock.Clock
	HTTPClient  *http.Client
	// Fs backs every repository, note and cache file access
	Fs afero.Fs
	// WorkDir is the directory holding the repository marker and note files
	WorkDir string
}

// NoteCachePath returns the path to the note metadata cache file
func (ctx HackMDCtx) NoteCachePath() string {
	return filepath.Join(ctx.Paths.CacheDir(), consts.NoteCacheFilename)
}

// Redact replaces private information from the context with a set of
// placeholder values.
func Redact(ctx HackMDCtx) HackMDCtx {
	if ctx.APIToken != "" {
		ctx.APIToken = "1"
	} else {
		ctx.APIToken = "0"
	}

	return ctx
}
