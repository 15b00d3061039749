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

// Package testutils provides utilities used in tests
package testutils

import (
	"bytes"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/assert"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/consts"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/context"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/database"
	"github.com/pkg/errors"
)

// Prompts for user input
const (
	PromptDeleteNote = "Are you sure you want to delete note"
)

// Timeout for waiting for prompts in tests
const promptTimeout = 10 * time.Second

// Login simulates a logged in user by storing a token in the local database
func Login(t *testing.T, ctx *context.HackMDCtx, token string) {
	database.MustExec(t, "inserting api token", ctx.DB, "INSERT INTO system (key, value) VALUES (?, ?)", consts.SystemAPIToken, token)

	ctx.APIToken = token
}

// WriteFile writes a file with the given content and filename inside dir
func WriteFile(t *testing.T, dir, filename, content string) {
	if err := os.WriteFile(filepath.Join(dir, filename), []byte(content), 0644); err != nil {
		t.Fatal(errors.Wrapf(err, "writing %s", filename))
	}
}

// ReadFile reads the content of the file with the given name in dir
func ReadFile(t *testing.T, dir, filename string) string {
	b, err := os.ReadFile(filepath.Join(dir, filename))
	if err != nil {
		t.Fatal(errors.Wrapf(err, "reading %s", filename))
	}

	return string(b)
}

// RunHackMDCmdOptions is an option for RunHackMDCmd
type RunHackMDCmdOptions struct {
	Env []string
	// Dir is the working directory of the command
	Dir string
}

// NewHackMDCmd returns a new hackmd command and pointers to its stderr and stdout
func NewHackMDCmd(opts RunHackMDCmdOptions, binaryName string, arg ...string) (*exec.Cmd, *bytes.Buffer, *bytes.Buffer, error) {
	var stderr, stdout bytes.Buffer

	binaryPath, err := filepath.Abs(binaryName)
	if err != nil {
		return &exec.Cmd{}, &stderr, &stdout, errors.Wrap(err, "getting the absolute path to the test binary")
	}

	cmd := exec.Command(binaryPath, arg...)
	cmd.Stderr = &stderr
	cmd.Stdout = &stdout
	cmd.Env = append(opts.Env, "HACKMD_DEBUG=1")
	cmd.Dir = opts.Dir

	return cmd, &stderr, &stdout, nil
}

// TryHackMDCmd runs a hackmd command and returns its output and error
// without failing the test. Use it for commands expected to fail.
func TryHackMDCmd(t *testing.T, opts RunHackMDCmdOptions, binaryName string, arg ...string) (string, error) {
	t.Logf("running: %s %s", binaryName, strings.Join(arg, " "))

	cmd, stderr, stdout, err := NewHackMDCmd(opts, binaryName, arg...)
	if err != nil {
		return "", errors.Wrap(err, "getting command")
	}

	err = cmd.Run()
	t.Logf("\n%s", stdout)
	if err != nil {
		return stdout.String(), errors.Wrapf(err, "running command %s", stderr.String())
	}

	return stdout.String(), nil
}

// RunHackMDCmd runs a hackmd command and fails the test if it fails
func RunHackMDCmd(t *testing.T, opts RunHackMDCmdOptions, binaryName string, arg ...string) string {
	out, err := TryHackMDCmd(t, opts, binaryName, arg...)
	if err != nil {
		t.Fatal(err)
	}

	return out
}

// WaitHackMDCmd runs a hackmd command and passes stdout to the callback.
func WaitHackMDCmd(t *testing.T, opts RunHackMDCmdOptions, runFunc func(io.Reader, io.WriteCloser) error, binaryName string, arg ...string) (string, error) {
	t.Logf("running: %s %s", binaryName, strings.Join(arg, " "))

	binaryPath, err := filepath.Abs(binaryName)
	if err != nil {
		return "", errors.Wrap(err, "getting absolute path to test binary")
	}

	cmd := exec.Command(binaryPath, arg...)
	cmd.Env = opts.Env
	cmd.Dir = opts.Dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return "", errors.Wrap(err, "getting stdout pipe")
	}

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return "", errors.Wrap(err, "getting stdin")
	}
	defer stdin.Close()

	if err = cmd.Start(); err != nil {
		return "", errors.Wrap(err, "starting command")
	}

	var output bytes.Buffer
	tee := io.TeeReader(stdout, &output)

	err = runFunc(tee, stdin)
	if err != nil {
		t.Logf("\n%s", output.String())
		return output.String(), errors.Wrap(err, "running callback")
	}

	io.Copy(&output, stdout)

	if err := cmd.Wait(); err != nil {
		t.Logf("\n%s", output.String())
		return output.String(), errors.Wrapf(err, "command failed: %s", stderr.String())
	}

	t.Logf("\n%s", output.String())
	return output.String(), nil
}

// MustWaitHackMDCmd is WaitHackMDCmd that fails the test on error
func MustWaitHackMDCmd(t *testing.T, opts RunHackMDCmdOptions, runFunc func(io.Reader, io.WriteCloser) error, binaryName string, arg ...string) string {
	output, err := WaitHackMDCmd(t, opts, runFunc, binaryName, arg...)
	if err != nil {
		t.Fatal(err)
	}

	return output
}

// ConfirmDeleteNote waits for the prompt for deleting a note and confirms.
func ConfirmDeleteNote(stdout io.Reader, stdin io.WriteCloser) error {
	return assert.RespondToPrompt(stdout, stdin, PromptDeleteNote, "y\n", promptTimeout)
}

// CancelDeleteNote waits for the prompt for deleting a note and declines.
func CancelDeleteNote(stdout io.Reader, stdin io.WriteCloser) error {
	return assert.RespondToPrompt(stdout, stdin, PromptDeleteNote, "n\n", promptTimeout)
}

// UserContent simulates content from the user by writing to stdin.
// This is used for piped input where no prompt is shown.
func UserContent(content string) func(io.Reader, io.WriteCloser) error {
	return func(stdout io.Reader, stdin io.WriteCloser) error {
		if _, err := io.WriteString(stdin, content); err != nil {
			return errors.Wrap(err, "writing content to stdin")
		}

		// stdin needs to close so stdin reader knows to stop reading
		// otherwise test case would wait until test timeout
		return stdin.Close()
	}
}
