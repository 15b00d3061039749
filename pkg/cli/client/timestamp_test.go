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
	"encoding/json"
	"testing"
	"time"

	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/assert"
	"github.com/pkg/errors"
)

func TestTimestampUnmarshal(t *testing.T) {
	jan2 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{name: "epoch millis", input: `1704153600000`, expected: jan2},
		{name: "epoch millis string", input: `"1704153600000"`, expected: jan2},
		{name: "rfc3339", input: `"2024-01-02T00:00:00Z"`, expected: jan2},
		{name: "rfc3339 with offset", input: `"2024-01-02T08:00:00+08:00"`, expected: jan2},
		{name: "epoch millis in exponent form", input: `1.7041536e12`, expected: jan2},
		{name: "null", input: `null`, expected: time.Time{}},
		{name: "empty string", input: `""`, expected: time.Time{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var ts Timestamp
			if err := json.Unmarshal([]byte(tc.input), &ts); err != nil {
				t.Fatal(err)
			}
			assert.Equal(t, ts.Equal(tc.expected), true, "time mismatch")
		})
	}
}

func TestTimestampUnmarshal_invalid(t *testing.T) {
	for _, input := range []string{`"yesterday"`, `true`, `"2024-13-45"`, `1e30`, `-1e30`, `9.3e18`} {
		t.Run(input, func(t *testing.T) {
			var ts Timestamp
			err := json.Unmarshal([]byte(input), &ts)
			assert.ErrorIs(t, err, ErrInvalidTimestamp, "error mismatch")
		})
	}
}

func TestTimestampMarshal(t *testing.T) {
	b, err := json.Marshal(NewTimestamp(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	if err != nil {
		t.Fatal(errors.Wrap(err, "marshalling"))
	}
	assert.Equal(t, string(b), `"2024-01-01T00:00:00Z"`, "encoded mismatch")

	b, err = json.Marshal(Timestamp{})
	if err != nil {
		t.Fatal(errors.Wrap(err, "marshalling zero"))
	}
	assert.Equal(t, string(b), `null`, "zero should encode as null")
}
