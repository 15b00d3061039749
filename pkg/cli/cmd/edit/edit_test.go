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

package edit

import (
	"testing"

	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/assert"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/client"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/context"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/infra"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/testutils"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/ui"
	"github.com/pkg/errors"
)

func strPtr(s string) *string {
	return &s
}

func TestDo(t *testing.T) {
	api := testutils.NewFakeAPI(t, "test-token")

	t.Run("updates and refreshes the cache", func(t *testing.T) {
		ctx := context.InitTestCtx(t)
		ctx.APIEndpoint = api.URL()

		n := api.AddNote(testutils.FakeNote{Title: "Old", Content: "old"})
		if err := infra.Cache(ctx).SaveNotes([]client.Note{{ID: n.ID, Title: "Old"}}); err != nil {
			t.Fatal(errors.Wrap(err, "seeding the cache"))
		}

		note, err := Do(ctx, n.ID, client.UpdateNotePayload{
			Title:           strPtr("New"),
			Content:         strPtr("new"),
			WritePermission: "signed_in",
		})
		if err != nil {
			t.Fatal(errors.Wrap(err, "executing"))
		}
		assert.Equal(t, note.Title, "New", "returned title mismatch")

		stored, _ := api.Note(n.ID)
		assert.Equal(t, stored.Title, "New", "title mismatch")
		assert.Equal(t, stored.Content, "new", "content mismatch")
		assert.Equal(t, stored.WritePermission, "signed_in", "write permission mismatch")
		assert.Equal(t, stored.ReadPermission, "owner", "read permission should be unchanged")

		s, ok, err := infra.Cache(ctx).Find(n.ID)
		if err != nil {
			t.Fatal(errors.Wrap(err, "finding the cached note"))
		}
		assert.Equal(t, ok, true, "note should be cached")
		assert.Equal(t, s.Title, "New", "cached title mismatch")
		assert.Equal(t, s.LastChangeAt.UnixMilli(), stored.LastChangedAt, "cached last change mismatch")
	})

	t.Run("invalid permission", func(t *testing.T) {
		ctx := context.InitTestCtx(t)
		ctx.APIEndpoint = api.URL()
		n := api.AddNote(testutils.FakeNote{Title: "Note"})
		before := len(api.Requests)

		_, err := Do(ctx, n.ID, client.UpdateNotePayload{CommentPermission: "anyone"})
		assert.NotEqual(t, err, nil, "expected an error")
		assert.Equal(t, len(api.Requests), before, "no request should be made")
	})

	t.Run("missing note", func(t *testing.T) {
		ctx := context.InitTestCtx(t)
		ctx.APIEndpoint = api.URL()

		_, err := Do(ctx, "missing", client.UpdateNotePayload{Title: strPtr("x")})
		assert.NotEqual(t, err, nil, "expected an error")
	})
}

func TestNewPayload(t *testing.T) {
	note := client.Note{
		Title:             "Title",
		Content:           "content",
		ReadPermission:    "owner",
		WritePermission:   "owner",
		CommentPermission: "disabled",
	}
	unchanged := ui.NoteFields{
		Title:             "Title",
		ReadPermission:    "owner",
		WritePermission:   "owner",
		CommentPermission: "disabled",
	}

	t.Run("nothing changed", func(t *testing.T) {
		p := newPayload(note, unchanged, "content")
		assert.Equal(t, isEmpty(p), true, "payload should be empty")
	})

	t.Run("some fields changed", func(t *testing.T) {
		fields := unchanged
		fields.Title = "Renamed"
		fields.ReadPermission = "guest"

		p := newPayload(note, fields, "content")

		assert.Equalf(t, p.Title != nil, true, "title should be set")
		assert.Equal(t, *p.Title, "Renamed", "title mismatch")
		assert.Equal(t, p.Content == nil, true, "content should be unset")
		assert.Equal(t, p.ReadPermission, "guest", "read permission mismatch")
		assert.Equal(t, p.WritePermission, "", "write permission should be unset")
		assert.Equal(t, p.CommentPermission, "", "comment permission should be unset")
	})

	t.Run("content changed", func(t *testing.T) {
		p := newPayload(note, unchanged, "new content")

		assert.Equalf(t, p.Content != nil, true, "content should be set")
		assert.Equal(t, *p.Content, "new content", "content mismatch")
		assert.Equal(t, p.Title == nil, true, "title should be unset")
	})
}
