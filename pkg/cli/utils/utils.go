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

package utils

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// GenerateUUID returns a uuid v4 in string
func GenerateUUID() (string, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return "", errors.Wrap(err, "generating uuid")
	}

	return u.String(), nil
}

var regexUnsafeFilenameChar = regexp.MustCompile(`[^\p{L}\p{N}]`)

// SafeFilename turns a note title into a filename stem. Anything that is not
// a letter or a digit becomes an underscore. An empty result falls back to
// the given default.
func SafeFilename(title, fallback string) string {
	s := regexUnsafeFilenameChar.ReplaceAllString(strings.TrimSpace(title), "_")
	if strings.Trim(s, "_") == "" {
		return fallback
	}

	return s
}
