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

// Package repo implements the working-directory repository: the remote
// store that maps local names to note ids, and the local note files.
package repo

import (
	"strings"
)

var separatorReplacer = strings.NewReplacer("/", "_", "\\", "_")

// extension returns the trailing ".ext" of name. A leading dot, as in
// ".env", does not start an extension.
func extension(name string) string {
	i := strings.LastIndex(name, ".")
	if i <= 0 {
		return ""
	}

	return name[i:]
}

// Normalize returns the canonical name for a user supplied name or file
// path: the last path segment, without extensions, with any remaining
// separators replaced by underscores. Extensions are stripped until none is
// left so that Normalize(Normalize(s)) == Normalize(s).
func Normalize(input string) string {
	base := strings.TrimRight(input, "/")
	if i := strings.LastIndex(base, "/"); i >= 0 {
		base = base[i+1:]
	}

	for ext := extension(base); ext != ""; ext = extension(base) {
		base = strings.TrimSuffix(base, ext)
	}

	return separatorReplacer.Replace(base)
}
