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

// Package dirs provides base directory definitions for the system
package dirs

import (
	"os"
	"os/user"

	"github.com/pkg/errors"
)

// Dirs is a set of base directories
type Dirs struct {
	// Home is the home directory of the user
	Home string
	// ConfigHome is where user-specific configurations are written
	ConfigHome string
	// DataHome is where user-specific data files are written
	DataHome string
	// CacheHome is where user-specific non-essential data is written
	CacheHome string
}

var (
	// Home is the home directory of the user
	Home string
	// ConfigHome is the full path to the configuration base directory
	ConfigHome string
	// DataHome is the full path to the data base directory
	DataHome string
	// CacheHome is the full path to the cache base directory
	CacheHome string
)

func init() {
	Reload()
}

// Reload re-reads the environment and resets the package level directories
func Reload() {
	d := Resolve(os.Getenv, getHomeDir())

	Home = d.Home
	ConfigHome = d.ConfigHome
	DataHome = d.DataHome
	CacheHome = d.CacheHome
}

// Resolve computes the base directories for the given home directory,
// letting the environment override each of them.
func Resolve(getenv func(string) string, home string) Dirs {
	return Dirs{
		Home:       home,
		ConfigHome: readPath(getenv, envConfigHome, defaultConfigHome(getenv, home)),
		DataHome:   readPath(getenv, envDataHome, defaultDataHome(getenv, home)),
		CacheHome:  readPath(getenv, envCacheHome, defaultCacheHome(getenv, home)),
	}
}

func getHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return home
	}

	usr, err := user.Current()
	if err != nil {
		panic(errors.Wrap(err, "getting home dir"))
	}

	return usr.HomeDir
}

func readPath(getenv func(string) string, envName, defaultPath string) string {
	if dir := getenv(envName); dir != "" {
		return dir
	}

	return defaultPath
}
