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

package assert

import (
	"bufio"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// scanUntil reads stdout one byte at a time until the accumulated output
// contains the expected text. Prompts are not newline terminated, so a line
// scanner would block forever on them.
func scanUntil(stdout io.Reader, expected string) (bool, error) {
	reader := bufio.NewReader(stdout)
	var buf strings.Builder

	for {
		b, err := reader.ReadByte()
		if err != nil {
			return false, err
		}

		buf.WriteByte(b)
		if strings.HasSuffix(buf.String(), expected) {
			return true, nil
		}
	}
}

// WaitForPrompt waits for an expected prompt to appear in stdout. It gives up
// after the timeout.
func WaitForPrompt(stdout io.Reader, expectedPrompt string, timeout time.Duration) error {
	type result struct {
		found bool
		err   error
	}
	ch := make(chan result, 1)

	go func() {
		found, err := scanUntil(stdout, expectedPrompt)
		ch <- result{found: found, err: err}
	}()

	select {
	case res := <-ch:
		if res.err != nil && res.err != io.EOF {
			return errors.Wrap(res.err, "reading stdout")
		}
		if !res.found {
			return errors.Errorf("expected prompt '%s' not found in stdout", expectedPrompt)
		}
		return nil
	case <-time.After(timeout):
		return errors.Errorf("timeout waiting for prompt '%s'", expectedPrompt)
	}
}

// RespondToPrompt waits for a prompt and writes the response to stdin.
func RespondToPrompt(stdout io.Reader, stdin io.WriteCloser, expectedPrompt, response string, timeout time.Duration) error {
	if err := WaitForPrompt(stdout, expectedPrompt, timeout); err != nil {
		return err
	}

	if _, err := io.WriteString(stdin, response); err != nil {
		return errors.Wrap(err, "writing response to stdin")
	}

	return nil
}
