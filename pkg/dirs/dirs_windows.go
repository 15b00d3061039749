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

//go:build windows

package dirs

import (
	"path/filepath"
)

// XDG variables are still honored on windows so that tests can isolate state
const (
	envConfigHome = "XDG_CONFIG_HOME"
	envDataHome   = "XDG_DATA_HOME"
	envCacheHome  = "XDG_CACHE_HOME"
)

func appData(getenv func(string) string, name, home, fallback string) string {
	if dir := getenv(name); dir != "" {
		return dir
	}

	return filepath.Join(home, fallback)
}

func defaultConfigHome(getenv func(string) string, home string) string {
	return appData(getenv, "APPDATA", home, filepath.Join("AppData", "Roaming"))
}

func defaultDataHome(getenv func(string) string, home string) string {
	return appData(getenv, "LOCALAPPDATA", home, filepath.Join("AppData", "Local"))
}

func defaultCacheHome(getenv func(string) string, home string) string {
	return filepath.Join(appData(getenv, "LOCALAPPDATA", home, filepath.Join("AppData", "Local")), "cache")
}
