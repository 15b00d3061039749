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

package fetch

import (
	"testing"

	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/assert"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/cache"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/client"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/context"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/infra"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/testutils"
	"github.com/pkg/errors"
)

func setup(t *testing.T) (context.HackMDCtx, *testutils.FakeAPI) {
	api := testutils.NewFakeAPI(t, "test-token")

	ctx := context.InitTestCtx(t)
	ctx.APIEndpoint = api.URL()

	return ctx, api
}

func getCache(t *testing.T, ctx context.HackMDCtx) []cache.Summary {
	notes, err := infra.Cache(ctx).GetNotes()
	if err != nil {
		t.Fatal(errors.Wrap(err, "reading the cache"))
	}

	return notes
}

func TestAll(t *testing.T) {
	ctx, api := setup(t)
	a := api.AddNote(testutils.FakeNote{Title: "A"})
	b := api.AddNote(testutils.FakeNote{Title: "B"})

	if err := infra.Cache(ctx).SaveNotes([]client.Note{{ID: "stale", Title: "Stale"}}); err != nil {
		t.Fatal(errors.Wrap(err, "seeding the cache"))
	}

	notes, err := All(ctx)
	if err != nil {
		t.Fatal(errors.Wrap(err, "executing"))
	}
	assert.Equal(t, len(notes), 2, "notes length mismatch")

	got := getCache(t, ctx)
	assert.Equal(t, len(got), 2, "cache length mismatch")
	assert.Equal(t, got[0].ID, a.ID, "cache 0 id mismatch")
	assert.Equal(t, got[1].ID, b.ID, "cache 1 id mismatch")
	assert.Equal(t, got[1].Title, "B", "cache 1 title mismatch")
}

func TestOne(t *testing.T) {
	t.Run("merges into the cache", func(t *testing.T) {
		ctx, api := setup(t)
		a := api.AddNote(testutils.FakeNote{Title: "A"})

		if err := infra.Cache(ctx).SaveNotes([]client.Note{{ID: a.ID, Title: "Old"}, {ID: "other", Title: "Other"}}); err != nil {
			t.Fatal(errors.Wrap(err, "seeding the cache"))
		}

		note, err := One(ctx, "https://hackmd.io/"+a.ID)
		if err != nil {
			t.Fatal(errors.Wrap(err, "executing"))
		}
		assert.Equal(t, note.Title, "A", "title mismatch")

		got := getCache(t, ctx)
		assert.Equal(t, len(got), 2, "cache length mismatch")
		assert.Equal(t, got[0].ID, "other", "cache 0 id mismatch")
		assert.Equal(t, got[1].ID, a.ID, "cache 1 id mismatch")
		assert.Equal(t, got[1].Title, "A", "cache 1 title mismatch")
	})

	t.Run("missing note", func(t *testing.T) {
		ctx, _ := setup(t)

		_, err := One(ctx, "missing")
		assert.NotEqual(t, err, nil, "expected an error")
		assert.Equal(t, len(getCache(t, ctx)), 0, "cache should be untouched")
	})
}
