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

package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/log"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/prompt"
	"github.com/pkg/errors"
	"golang.org/x/crypto/ssh/terminal"
)

// readLine reads one line from r without the line ending. A last line
// without a newline is accepted.
func readLine(r io.Reader) (string, error) {
	input, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !(err == io.EOF && input != "") {
		return "", errors.Wrap(err, "reading stdin")
	}

	return strings.TrimRight(input, "\r\n"), nil
}

// PromptPassword prompts for a secret and saves it to the destination. On a
// terminal the input is not echoed. Piped input is read as a single line.
func PromptPassword(message string, dest *string) error {
	if IsStdinPiped() {
		line, err := readLine(os.Stdin)
		if err != nil {
			return errors.Wrap(err, "getting user input")
		}

		*dest = line
		return nil
	}

	log.Askf(message, true)

	password, err := terminal.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return errors.Wrap(err, "getting user input")
	}

	fmt.Fprintln(log.Output)

	*dest = string(password)

	return nil
}

// Confirm prompts for user input to confirm a choice
func Confirm(question string, optimistic bool) (bool, error) {
	message := prompt.FormatQuestion(question, optimistic)

	log.Askf(message, false)

	confirmed, err := prompt.ReadYesNo(os.Stdin, optimistic)
	if err != nil {
		return false, errors.Wrap(err, "getting user input")
	}

	return confirmed, nil
}

// IsStdinPiped reports whether stdin is a pipe or a file rather than a terminal
func IsStdinPiped() bool {
	return !terminal.IsTerminal(int(os.Stdin.Fd()))
}

// ReadStdInput reads all of stdin as is
func ReadStdInput() (string, error) {
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", errors.Wrap(err, "reading pipe")
	}

	return string(b), nil
}
