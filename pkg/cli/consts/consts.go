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

// Package consts provides definitions of constants
package consts

var (
	// DirName is the name of the directory under the XDG base directories
	DirName = "hackmd"
	// DBFileName is a filename for the local SQLite database
	DBFileName = "hackmd.db"
	// ConfigFilename is the name of the config file
	ConfigFilename = "hackmdrc"
	// NoteCacheFilename is the name of the note metadata cache file
	NoteCacheFilename = "notes.json"
	// TmpContentFileBase is the base for the filename for a temporary content
	TmpContentFileBase = "HACKMD_TMPCONTENT"
	// TmpContentFileExt is the extension for the temporary content file
	TmpContentFileExt = "md"

	// RepoDirName is the marker directory of a working-directory repository
	RepoDirName = ".hackmd"
	// RemotesFilename is the name of the remote store file inside the marker directory
	RemotesFilename = "remotes.json"
	// NoteFileExt is the extension of local note files
	NoteFileExt = ".md"

	// DefaultAPIEndpoint is the API base URL written to a fresh config
	DefaultAPIEndpoint = "https://api.hackmd.io/v1"

	// EnvAPIToken overrides the stored API token
	EnvAPIToken = "HACKMD_API_TOKEN"
	// EnvAPIEndpoint overrides the configured API endpoint
	EnvAPIEndpoint = "HACKMD_API_ENDPOINT"

	// SystemAPIToken is the key for the API token in the system table
	SystemAPIToken = "api_token"
	// SystemTokenVerifiedAt is the unix time at which the token last passed verification
	SystemTokenVerifiedAt = "token_verified_at"
	// SystemLastSyncAt is the unix time of the last sync that updated the cache
	SystemLastSyncAt = "last_sync_at"
)
