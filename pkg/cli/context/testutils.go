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

package context

import (
	"testing"

	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/database"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/clock"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// TestWorkDir is the working directory of contexts built by InitTestCtx
const TestWorkDir = "/work"

// InitTestCtx initializes a test context with an in-memory database, an
// in-memory filesystem and a mock clock
func InitTestCtx(t *testing.T) HackMDCtx {
	fs := afero.NewMemMapFs()
	paths := Paths{
		Home:   "/home/test",
		Config: "/home/test/.config",
		Data:   "/home/test/.local/share",
		Cache:  "/home/test/.cache",
	}

	if err := InitDirs(fs, paths); err != nil {
		t.Fatal(errors.Wrap(err, "creating test directories"))
	}
	if err := fs.MkdirAll(TestWorkDir, 0755); err != nil {
		t.Fatal(errors.Wrap(err, "creating the work dir"))
	}

	return HackMDCtx{
		DB:       database.InitTestMemoryDB(t),
		Paths:    paths,
		Clock:    clock.NewMock(),
		Fs:       fs,
		WorkDir:  TestWorkDir,
		APIToken: "test-token",
		Version:  "test",
	}
}
