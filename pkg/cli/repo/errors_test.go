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

package repo

import (
	"testing"

	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/assert"
	"github.com/pkg/errors"
)

func TestErrorHints(t *testing.T) {
	testCases := []struct {
		name    string
		err     error
		message string
		hint    string
	}{
		{
			name:    "remote",
			err:     &NotFoundError{Kind: KindRemote, Name: "meeting"},
			message: "no remote found for 'meeting'",
			hint:    "hackmd remote add meeting <note-id>",
		},
		{
			name:    "note",
			err:     &NotFoundError{Kind: KindNote, Name: "meeting"},
			message: "note 'meeting' not found locally",
			hint:    "hackmd pull meeting",
		},
		{
			name:    "not initialized",
			err:     errors.Wrap(ErrNotInitialized, "adding remote"),
			message: "adding remote: not a hackmd repository",
			hint:    "hackmd init",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.err.Error(), tc.message, "message mismatch")

			var h Hinter
			assert.Equal(t, errors.As(tc.err, &h), true, "expected a hint")
			assert.Equal(t, h.Hint(), tc.hint, "hint mismatch")
		})
	}
}

func TestAlreadyExistsError(t *testing.T) {
	err := errors.Wrap(&AlreadyExistsError{What: "remote", Name: "meeting"}, "adding")

	assert.Equal(t, err.Error(), "adding: remote 'meeting' already exists", "message mismatch")
	assert.ErrorIs(t, err, ErrAlreadyExists, "is mismatch")
}
