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
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidTimestamp is returned when a timestamp can be neither parsed as
// epoch milliseconds nor as RFC 3339
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// Timestamp is a point in time as exchanged with the API. The API sends
// epoch milliseconds; cached data stores RFC 3339 strings. Both decode, and
// encoding always produces RFC 3339.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC()}
}

// ParseTimestamp parses either form
func ParseTimestamp(s string) (Timestamp, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Timestamp{}, nil
	}

	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return NewTimestamp(time.UnixMilli(ms)), nil
	}

	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return Timestamp{}, errors.Wrapf(ErrInvalidTimestamp, "'%s'", s)
	}

	return NewTimestamp(t), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*t = Timestamp{}
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return errors.Wrap(err, "decoding timestamp string")
		}

		ts, err := ParseTimestamp(s)
		if err != nil {
			return err
		}
		*t = ts
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return errors.Wrapf(ErrInvalidTimestamp, "'%s'", string(b))
	}
	if ms, err := n.Int64(); err == nil {
		*t = NewTimestamp(time.UnixMilli(ms))
		return nil
	}
	f, err := n.Float64()
	if err != nil || f < math.MinInt64 || f >= math.MaxInt64 {
		return errors.Wrapf(ErrInvalidTimestamp, "'%s'", string(b))
	}
	*t = NewTimestamp(time.UnixMilli(int64(f)))

	return nil
}

// MarshalJSON implements json.Marshaler
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}

	return json.Marshal(t.UTC().Format(time.RFC3339Nano))
}
