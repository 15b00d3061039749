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

// Package ui provides the user interface for the program
package ui

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/consts"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/context"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/utils"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// ErrNoEditor is returned when no editor command is configured
var ErrNoEditor = errors.New("no editor is configured")

// GetTmpContentPath returns the path to a new temporary file for content
// being written or edited
func GetTmpContentPath(ctx context.HackMDCtx) (string, error) {
	for {
		id, err := utils.GenerateUUID()
		if err != nil {
			return "", err
		}

		filename := fmt.Sprintf("%s_%s.%s", consts.TmpContentFileBase, id, consts.TmpContentFileExt)
		candidate := filepath.Join(ctx.Paths.CacheDir(), filename)

		ok, err := utils.FileExists(ctx.Fs, candidate)
		if err != nil {
			return "", errors.Wrapf(err, "checking if file exists at %s", candidate)
		}
		if !ok {
			return candidate, nil
		}
	}
}

// GetEditorCommand returns the system's editor command with appropriate flags,
// if necessary, to make the command wait until editor is close to exit.
func GetEditorCommand() string {
	editor := os.Getenv("EDITOR")

	var ret string

	switch editor {
	case "atom":
		ret = "atom -w"
	case "subl":
		ret = "subl -n -w"
	case "mate":
		ret = "mate -w"
	case "code":
		ret = "code -w"
	case "":
		ret = "vi"
	default:
		ret = editor
	}

	return ret
}

func newEditorCmd(ctx context.HackMDCtx, fpath string) (*exec.Cmd, error) {
	args := strings.Fields(ctx.Editor)
	if len(args) == 0 {
		return nil, ErrNoEditor
	}
	args = append(args, fpath)

	return exec.Command(args[0], args[1:]...), nil
}

// GetEditorInput writes initial to a temporary file, launches the editor on
// it and returns what the file holds once the editor exits
func GetEditorInput(ctx context.HackMDCtx, initial string) (string, error) {
	fpath, err := GetTmpContentPath(ctx)
	if err != nil {
		return "", errors.Wrap(err, "getting temporarily content file path")
	}

	if err := afero.WriteFile(ctx.Fs, fpath, []byte(initial), 0600); err != nil {
		return "", errors.Wrap(err, "creating a temporary content file")
	}
	defer ctx.Fs.Remove(fpath)

	cmd, err := newEditorCmd(ctx, fpath)
	if err != nil {
		return "", errors.Wrap(err, "creating an editor command")
	}

	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return "", errors.Wrapf(err, "launching an editor")
	}
	if err := cmd.Wait(); err != nil {
		return "", errors.Wrap(err, "waiting for the editor")
	}

	b, err := afero.ReadFile(ctx.Fs, fpath)
	if err != nil {
		return "", errors.Wrap(err, "reading the temporary content file")
	}

	return string(b), nil
}
