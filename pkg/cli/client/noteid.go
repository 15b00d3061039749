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

package client

import (
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidNoteID is returned when an argument cannot be read as a note id
var ErrInvalidNoteID = errors.New("invalid note id")

// noteURLModes are trailing path segments that select a view of a note
var noteURLModes = map[string]bool{
	"edit":    true,
	"view":    true,
	"both":    true,
	"publish": true,
}

// ParseNoteID accepts a bare note id or a note URL such as
// https://hackmd.io/<id>, https://hackmd.io/@user/<id> or
// https://hackmd.io/<id>/edit, and returns the note id.
func ParseNoteID(arg string) (string, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return "", errors.Wrap(ErrInvalidNoteID, "empty")
	}

	if !strings.Contains(arg, "://") {
		if strings.ContainsAny(arg, "/\\ \t?#") {
			return "", errors.Wrapf(ErrInvalidNoteID, "'%s'", arg)
		}
		return arg, nil
	}

	u, err := url.Parse(arg)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return "", errors.Wrapf(ErrInvalidNoteID, "'%s'", arg)
	}

	var segments []string
	for _, s := range strings.Split(u.Path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	if n := len(segments); n > 0 && noteURLModes[segments[n-1]] {
		segments = segments[:n-1]
	}
	if len(segments) == 0 {
		return "", errors.Wrapf(ErrInvalidNoteID, "no note in '%s'", arg)
	}

	id := segments[len(segments)-1]
	if strings.HasPrefix(id, "@") {
		return "", errors.Wrapf(ErrInvalidNoteID, "'%s' points at a profile, not a note", arg)
	}

	return id, nil
}
