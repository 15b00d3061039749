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

package main

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/assert"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/consts"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/testutils"
	"github.com/pkg/errors"
)

var binaryName = "test-hackmd"

// setupTestEnv isolates the XDG directories and the working directory of a
// test and points the binary at api
func setupTestEnv(t *testing.T, api *testutils.FakeAPI) (string, testutils.RunHackMDCmdOptions) {
	homeDir := t.TempDir()
	workDir := t.TempDir()

	opts := testutils.RunHackMDCmdOptions{
		Env: []string{
			fmt.Sprintf("XDG_CONFIG_HOME=%s", filepath.Join(homeDir, "config")),
			fmt.Sprintf("XDG_DATA_HOME=%s", filepath.Join(homeDir, "data")),
			fmt.Sprintf("XDG_CACHE_HOME=%s", filepath.Join(homeDir, "cache")),
			fmt.Sprintf("HOME=%s", homeDir),
			fmt.Sprintf("%s=%s", consts.EnvAPIEndpoint, api.URL()),
			fmt.Sprintf("%s=%s", consts.EnvAPIToken, api.Token),
		},
		Dir: workDir,
	}

	return workDir, opts
}

// withoutToken returns opts without the token environment variable
func withoutToken(opts testutils.RunHackMDCmdOptions) testutils.RunHackMDCmdOptions {
	ret := opts
	ret.Env = []string{}
	for _, e := range opts.Env {
		if !strings.HasPrefix(e, consts.EnvAPIToken+"=") {
			ret.Env = append(ret.Env, e)
		}
	}

	return ret
}

func TestMain(m *testing.M) {
	if err := exec.Command("go", "build", "-o", binaryName).Run(); err != nil {
		log.Print(errors.Wrap(err, "building a binary").Error())
		os.Exit(1)
	}

	code := m.Run()
	os.Remove(binaryName)
	os.Exit(code)
}

func TestInit(t *testing.T) {
	api := testutils.NewFakeAPI(t, "test-token")
	workDir, opts := setupTestEnv(t, api)

	testutils.RunHackMDCmd(t, opts, binaryName, "init")

	got := testutils.ReadFile(t, filepath.Join(workDir, consts.RepoDirName), consts.RemotesFilename)
	assert.Equal(t, got, "{\n  \"remotes\": {}\n}\n", "remotes file mismatch")

	_, err := testutils.TryHackMDCmd(t, opts, binaryName, "init")
	assert.NotEqual(t, err, nil, "a second init should fail")
}

func TestNotInitialized(t *testing.T) {
	api := testutils.NewFakeAPI(t, "test-token")
	n := api.AddNote(testutils.FakeNote{Title: "Meeting"})
	_, opts := setupTestEnv(t, api)

	out, err := testutils.TryHackMDCmd(t, opts, binaryName, "remote", "add", "meeting", n.ID)
	assert.NotEqual(t, err, nil, "expected a failure")
	assert.Contains(t, out, "not a hackmd repository", "error mismatch")
	assert.Contains(t, out, "hackmd init", "hint mismatch")
}

func TestPullPush(t *testing.T) {
	api := testutils.NewFakeAPI(t, "test-token")
	n := api.AddNote(testutils.FakeNote{Title: "Meeting", Content: "# Meeting\n"})
	workDir, opts := setupTestEnv(t, api)

	testutils.RunHackMDCmd(t, opts, binaryName, "init")
	testutils.RunHackMDCmd(t, opts, binaryName, "remote", "add", "meeting.md", n.ID)

	testutils.RunHackMDCmd(t, opts, binaryName, "pull", "meeting")
	assert.Equal(t, testutils.ReadFile(t, workDir, "meeting.md"), "# Meeting\n", "pulled content mismatch")

	testutils.WriteFile(t, workDir, "meeting.md", "# Meeting\n\n- agenda\n")
	testutils.RunHackMDCmd(t, opts, binaryName, "push", "meeting.md")

	stored, _ := api.Note(n.ID)
	assert.Equal(t, stored.Content, "# Meeting\n\n- agenda\n", "pushed content mismatch")
}

func TestPullUnknownRemote(t *testing.T) {
	api := testutils.NewFakeAPI(t, "test-token")
	_, opts := setupTestEnv(t, api)

	testutils.RunHackMDCmd(t, opts, binaryName, "init")

	out, err := testutils.TryHackMDCmd(t, opts, binaryName, "pull", "missing")
	assert.NotEqual(t, err, nil, "expected a failure")
	assert.Contains(t, out, "no remote found for 'missing'", "error mismatch")
	assert.Contains(t, out, "hackmd remote add missing <note-id>", "hint mismatch")
}

func TestPullAll_partialFailure(t *testing.T) {
	api := testutils.NewFakeAPI(t, "test-token")
	a := api.AddNote(testutils.FakeNote{Title: "A", Content: "a"})
	b := api.AddNote(testutils.FakeNote{Title: "B", Content: "b"})
	workDir, opts := setupTestEnv(t, api)

	testutils.RunHackMDCmd(t, opts, binaryName, "init")
	testutils.RunHackMDCmd(t, opts, binaryName, "remote", "add", "a", a.ID)
	testutils.RunHackMDCmd(t, opts, binaryName, "remote", "add", "b", b.ID)
	api.RemoveNote(a.ID)

	out, err := testutils.TryHackMDCmd(t, opts, binaryName, "pull")
	assert.NotEqual(t, err, nil, "a failed item should fail the batch")
	assert.Contains(t, out, "1 of 2 failed", "summary mismatch")

	assert.Equal(t, testutils.ReadFile(t, workDir, "b.md"), "b", "the remaining item should be pulled")
}

func TestPushAll_skipsMissingFiles(t *testing.T) {
	api := testutils.NewFakeAPI(t, "test-token")
	a := api.AddNote(testutils.FakeNote{Title: "A", Content: "a"})
	b := api.AddNote(testutils.FakeNote{Title: "B", Content: "b"})
	workDir, opts := setupTestEnv(t, api)

	testutils.RunHackMDCmd(t, opts, binaryName, "init")
	testutils.RunHackMDCmd(t, opts, binaryName, "remote", "add", "a", a.ID)
	testutils.RunHackMDCmd(t, opts, binaryName, "remote", "add", "b", b.ID)
	testutils.WriteFile(t, workDir, "a.md", "a2")

	out := testutils.RunHackMDCmd(t, opts, binaryName, "push")
	assert.Contains(t, out, "skipped b", "skip mismatch")

	stored, _ := api.Note(a.ID)
	assert.Equal(t, stored.Content, "a2", "pushed content mismatch")
	stored, _ = api.Note(b.ID)
	assert.Equal(t, stored.Content, "b", "skipped note should be untouched")
}

func TestRemoteList(t *testing.T) {
	api := testutils.NewFakeAPI(t, "test-token")
	a := api.AddNote(testutils.FakeNote{Title: "Alpha"})
	_, opts := setupTestEnv(t, api)

	testutils.RunHackMDCmd(t, opts, binaryName, "init")
	testutils.RunHackMDCmd(t, opts, binaryName, "remote", "add", "alpha", a.ID)

	out := testutils.RunHackMDCmd(t, opts, binaryName, "remote", "list", "-v")
	assert.Contains(t, out, "alpha", "name mismatch")
	assert.Contains(t, out, a.ID, "id mismatch")
	assert.Contains(t, out, "Alpha", "title mismatch")

	testutils.RunHackMDCmd(t, opts, binaryName, "remote", "rm", "alpha")

	out = testutils.RunHackMDCmd(t, opts, binaryName, "remote", "list")
	assert.Contains(t, out, "no tracked notes", "list should be empty")
}

func TestSync(t *testing.T) {
	api := testutils.NewFakeAPI(t, "test-token")
	a := api.AddNote(testutils.FakeNote{Title: "Alpha"})
	b := api.AddNote(testutils.FakeNote{Title: "Beta"})
	_, opts := setupTestEnv(t, api)

	out := testutils.RunHackMDCmd(t, opts, binaryName, "sync", "--pull")
	assert.Contains(t, out, fmt.Sprintf("+ Alpha (%s)", a.ID), "new note mismatch")
	assert.Contains(t, out, fmt.Sprintf("+ Beta (%s)", b.ID), "new note mismatch")

	out = testutils.RunHackMDCmd(t, opts, binaryName, "sync")
	assert.Contains(t, out, "already up to date", "second sync should find nothing")

	api.EditNote(a.ID, "changed")
	api.RemoveNote(b.ID)

	out = testutils.RunHackMDCmd(t, opts, binaryName, "sync")
	assert.Contains(t, out, fmt.Sprintf("* Alpha (%s)", a.ID), "modified note mismatch")
	assert.Contains(t, out, fmt.Sprintf("- Beta (%s)", b.ID), "deleted note mismatch")
}

func TestLoginLogout(t *testing.T) {
	api := testutils.NewFakeAPI(t, "test-token")
	_, envOpts := setupTestEnv(t, api)
	opts := withoutToken(envOpts)

	out, err := testutils.TryHackMDCmd(t, opts, binaryName, "whoami")
	assert.NotEqual(t, err, nil, "whoami should fail without a token")
	assert.Contains(t, out, "hackmd login", "hint mismatch")

	_, err = testutils.TryHackMDCmd(t, opts, binaryName, "login", "--token", "wrong")
	assert.NotEqual(t, err, nil, "login should reject a bad token")

	testutils.RunHackMDCmd(t, opts, binaryName, "login", "--token", "test-token")

	out = testutils.RunHackMDCmd(t, opts, binaryName, "whoami")
	assert.Contains(t, out, "Test User", "user mismatch")

	testutils.RunHackMDCmd(t, opts, binaryName, "logout")

	_, err = testutils.TryHackMDCmd(t, opts, binaryName, "whoami")
	assert.NotEqual(t, err, nil, "whoami should fail after logout")
}

func TestNoteLifecycle(t *testing.T) {
	api := testutils.NewFakeAPI(t, "test-token")
	workDir, opts := setupTestEnv(t, api)

	testutils.RunHackMDCmd(t, opts, binaryName, "new", "-t", "Draft", "-c", "# Draft\n", "--read", "guest")

	// the fake API numbers notes in creation order
	id := "note0001"
	stored, ok := api.Note(id)
	assert.Equalf(t, ok, true, "note should be created")
	assert.Equal(t, stored.ReadPermission, "guest", "read permission mismatch")

	testutils.RunHackMDCmd(t, opts, binaryName, "edit", id, "-t", "Final")
	stored, _ = api.Note(id)
	assert.Equal(t, stored.Title, "Final", "title mismatch")
	assert.Equal(t, stored.Content, "# Draft\n", "content should be unchanged")

	out := testutils.RunHackMDCmd(t, opts, binaryName, "list", "--cached")
	assert.Contains(t, out, "Final", "cached title mismatch")

	testutils.RunHackMDCmd(t, opts, binaryName, "export", id)
	assert.Equal(t, testutils.ReadFile(t, workDir, "Final.md"), "# Draft\n", "export mismatch")

	testutils.RunHackMDCmd(t, opts, binaryName, "export", id, "-f", "html")
	assert.Equal(t, testutils.ReadFile(t, workDir, "Final.html"), testutils.Rendered(stored, "html"), "html export mismatch")

	testutils.MustWaitHackMDCmd(t, opts, testutils.CancelDeleteNote, binaryName, "delete", id)
	_, ok = api.Note(id)
	assert.Equal(t, ok, true, "declining should keep the note")

	testutils.MustWaitHackMDCmd(t, opts, testutils.ConfirmDeleteNote, binaryName, "delete", id)
	_, ok = api.Note(id)
	assert.Equal(t, ok, false, "note should be deleted")

	out = testutils.RunHackMDCmd(t, opts, binaryName, "list", "--cached")
	assert.Contains(t, out, "no notes", "cache should be empty")
}

func TestNewFromStdin(t *testing.T) {
	api := testutils.NewFakeAPI(t, "test-token")
	_, opts := setupTestEnv(t, api)

	testutils.MustWaitHackMDCmd(t, opts, testutils.UserContent("# Piped\n\nbody\n"), binaryName, "new", "-t", "Piped")

	stored, ok := api.Note("note0001")
	assert.Equalf(t, ok, true, "note should be created")
	assert.Equal(t, stored.Title, "Piped", "title mismatch")
	assert.Equal(t, stored.Content, "# Piped\n\nbody\n", "content mismatch")
}
