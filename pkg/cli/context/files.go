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
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/utils"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// InitDirs creates the config, data and cache directories if they don't
// already exist. Empty base paths are skipped.
func InitDirs(fs afero.Fs, paths Paths) error {
	dirs := []struct {
		base string
		path string
		name string
	}{
		{paths.Config, paths.ConfigDir(), "config"},
		{paths.Data, paths.DataDir(), "data"},
		{paths.Cache, paths.CacheDir(), "cache"},
	}

	for _, d := range dirs {
		if d.base == "" {
			continue
		}
		if err := utils.EnsureDir(fs, d.path); err != nil {
			return errors.Wrapf(err, "initializing %s dir", d.name)
		}
	}

	return nil
}
