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
	"testing"

	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/assert"
)

func TestParseNoteID(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
		valid    bool
	}{
		{input: "aBcD1234", expected: "aBcD1234", valid: true},
		{input: "  aBcD1234 ", expected: "aBcD1234", valid: true},
		{input: "https://hackmd.io/aBcD1234", expected: "aBcD1234", valid: true},
		{input: "https://hackmd.io/aBcD1234/edit", expected: "aBcD1234", valid: true},
		{input: "https://hackmd.io/@alice/aBcD1234?both", expected: "aBcD1234", valid: true},
		{input: "http://md.example.com/aBcD1234#heading", expected: "aBcD1234", valid: true},
		{input: "https://hackmd.io/@alice", valid: false},
		{input: "https://hackmd.io/", valid: false},
		{input: "ftp://hackmd.io/aBcD1234", valid: false},
		{input: "a/b", valid: false},
		{input: "", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseNoteID(tc.input)
			if !tc.valid {
				assert.ErrorIs(t, err, ErrInvalidNoteID, "error mismatch")
				return
			}

			assert.Equal(t, err, nil, "error mismatch")
			assert.Equal(t, got, tc.expected, "id mismatch")
		})
	}
}
