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

package infra

import (
	"path/filepath"
	"testing"

	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/assert"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/config"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/consts"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/context"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/database"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/dirs"
	"github.com/pkg/errors"
)

func clearEnv(t *testing.T) {
	t.Setenv(consts.EnvAPIToken, "")
	t.Setenv(consts.EnvAPIEndpoint, "")
}

func writeConfig(t *testing.T, ctx context.HackMDCtx, cf config.Config) {
	if err := config.Write(ctx, cf); err != nil {
		t.Fatal(errors.Wrap(err, "writing config"))
	}
}

func TestSetupCtx(t *testing.T) {
	t.Run("token from database", func(t *testing.T) {
		clearEnv(t)
		ctx := context.InitTestCtx(t)
		writeConfig(t, ctx, config.Config{Editor: "vim", APIEndpoint: "https://api.example.com/v1"})
		database.MustExec(t, "inserting token", ctx.DB, "INSERT INTO system (key, value) VALUES (?, ?)", consts.SystemAPIToken, "db-token")

		got, err := setupCtx(ctx, "")
		if err != nil {
			t.Fatal(errors.Wrap(err, "executing"))
		}

		assert.Equal(t, got.APIToken, "db-token", "token mismatch")
		assert.Equal(t, got.APIEndpoint, "https://api.example.com/v1", "endpoint mismatch")
		assert.Equal(t, got.Editor, "vim", "editor mismatch")
		assert.NotEqual(t, got.HTTPClient, nil, "http client is missing")
		assert.Equal(t, got.WorkDir, ctx.WorkDir, "work dir mismatch")
	})

	t.Run("no token", func(t *testing.T) {
		clearEnv(t)
		ctx := context.InitTestCtx(t)
		writeConfig(t, ctx, config.Config{APIEndpoint: consts.DefaultAPIEndpoint})

		got, err := setupCtx(ctx, "")
		if err != nil {
			t.Fatal(errors.Wrap(err, "executing"))
		}

		assert.Equal(t, got.APIToken, "", "token mismatch")
	})

	t.Run("environment overrides", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(consts.EnvAPIToken, "env-token")
		t.Setenv(consts.EnvAPIEndpoint, "http://127.0.0.1:9999")

		ctx := context.InitTestCtx(t)
		writeConfig(t, ctx, config.Config{APIEndpoint: consts.DefaultAPIEndpoint})
		database.MustExec(t, "inserting token", ctx.DB, "INSERT INTO system (key, value) VALUES (?, ?)", consts.SystemAPIToken, "db-token")

		got, err := setupCtx(ctx, "http://127.0.0.1:3001")
		if err != nil {
			t.Fatal(errors.Wrap(err, "executing"))
		}

		assert.Equal(t, got.APIToken, "env-token", "token mismatch")
		assert.Equal(t, got.APIEndpoint, "http://127.0.0.1:9999", "endpoint mismatch")
	})

	t.Run("invalid endpoint", func(t *testing.T) {
		clearEnv(t)
		ctx := context.InitTestCtx(t)
		writeConfig(t, ctx, config.Config{APIEndpoint: "ftp://example.com"})

		_, err := setupCtx(ctx, "")
		assert.NotEqual(t, err, nil, "expected an error")
	})
}

func TestInit_APIEndpointChange(t *testing.T) {
	clearEnv(t)
	tmpDir := t.TempDir()

	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(tmpDir, "data"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(tmpDir, "cache"))
	dirs.Reload()
	t.Cleanup(dirs.Reload)

	endpoint1 := "http://127.0.0.1:3001"
	ctx, err := Init("test-version", endpoint1, "")
	if err != nil {
		t.Fatal(errors.Wrap(err, "initializing"))
	}
	defer ctx.DB.Close()
	assert.Equal(t, ctx.APIEndpoint, endpoint1, "should use endpoint1 API endpoint")

	cf, err := config.Read(*ctx)
	if err != nil {
		t.Fatal(errors.Wrap(err, "reading config"))
	}
	assert.Equal(t, cf.APIEndpoint, endpoint1, "config should be written with endpoint1")

	endpoint2 := "http://127.0.0.1:3002"
	ctx2, err := Init("test-version", endpoint2, "")
	if err != nil {
		t.Fatal(errors.Wrap(err, "initializing with override"))
	}
	defer ctx2.DB.Close()
	assert.Equal(t, ctx2.APIEndpoint, endpoint2, "should use endpoint2 API endpoint")

	cf2, err := config.Read(*ctx2)
	if err != nil {
		t.Fatal(errors.Wrap(err, "reading config after override"))
	}
	assert.Equal(t, cf2.APIEndpoint, cf.APIEndpoint, "config should still have original endpoint, not endpoint2")
}

func TestGetDBPath(t *testing.T) {
	paths := context.Paths{Data: "/data"}

	assert.Equal(t, getDBPath(paths, ""), "/data/hackmd/hackmd.db", "default path mismatch")
	assert.Equal(t, getDBPath(paths, "/custom.db"), "/custom.db", "custom path mismatch")
}
