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
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/assert"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/context"
	"github.com/pkg/errors"
)

func newTestCtx(t *testing.T, handler http.HandlerFunc) context.HackMDCtx {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return context.HackMDCtx{
		APIEndpoint: srv.URL + "/v1",
		APIToken:    "test-token",
		Version:     "test",
		HTTPClient:  srv.Client(),
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func TestGetNote(t *testing.T) {
	ctx := newTestCtx(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, r.Method, "GET", "method mismatch")
		assert.Equal(t, r.URL.Path, "/v1/notes/abc", "path mismatch")
		assert.Equal(t, r.Header.Get("Authorization"), "Bearer test-token", "authorization mismatch")

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"id":             "abc",
			"title":          "Hello",
			"content":        "# Hello",
			"lastChangedAt":  1704153600000,
			"createdAt":      "2024-01-01T00:00:00Z",
			"readPermission": "owner",
			"lastChangeUser": map[string]string{"name": "alice"},
		})
	})

	note, err := GetNote(ctx, "abc")
	if err != nil {
		t.Fatal(errors.Wrap(err, "getting note"))
	}

	assert.Equal(t, note.ID, "abc", "id mismatch")
	assert.Equal(t, note.Content, "# Hello", "content mismatch")
	assert.Equal(t, note.Author(), "alice", "author mismatch")
	assert.Equal(t, note.LastChangedAt.Equal(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)), true, "lastChangedAt mismatch")
	assert.Equal(t, note.CreatedAt.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)), true, "createdAt mismatch")
}

func TestHTTPErrors(t *testing.T) {
	testCases := []struct {
		status   int
		body     string
		expected string
	}{
		{
			status:   http.StatusUnauthorized,
			body:     "",
			expected: "Invalid or expired API token",
		},
		{
			status:   http.StatusForbidden,
			body:     `{"message":"team note"}`,
			expected: `You don't have permission to perform this action "team note"`,
		},
		{
			status:   http.StatusNotFound,
			body:     `{"error":"Note not found"}`,
			expected: `The requested resource was not found "Note not found"`,
		},
		{
			status:   http.StatusInternalServerError,
			body:     "boom\n",
			expected: `response 500 "boom"`,
		},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("status %d", tc.status), func(t *testing.T) {
			ctx := newTestCtx(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				io.WriteString(w, tc.body)
			})

			_, err := GetNote(ctx, "abc")

			var httpErr *HTTPError
			if !errors.As(err, &httpErr) {
				t.Fatalf("expected an HTTPError, got %v", err)
			}
			assert.Equal(t, httpErr.StatusCode, tc.status, "status mismatch")
			assert.Equal(t, httpErr.Error(), tc.expected, "message mismatch")
		})
	}
}

func TestNoToken(t *testing.T) {
	ctx := newTestCtx(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be made")
	})
	ctx.APIToken = ""

	_, err := GetNotes(ctx)
	assert.Equal(t, errors.Cause(err), ErrNoToken, "error mismatch")
}

func TestContentTypeMismatch(t *testing.T) {
	ctx := newTestCtx(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		io.WriteString(w, "<html></html>")
	})

	_, err := GetNotes(ctx)
	assert.Equal(t, errors.Cause(err), ErrContentTypeMismatch, "error mismatch")
}

func TestUpdateNote_accepted(t *testing.T) {
	var got map[string]interface{}
	ctx := newTestCtx(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, r.Method, "PATCH", "method mismatch")
		assert.Equal(t, r.Header.Get("Content-Type"), "application/json", "content type mismatch")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatal(err)
		}
		w.WriteHeader(http.StatusAccepted)
	})

	content := "new body"
	note, err := UpdateNote(ctx, "abc", UpdateNotePayload{Content: &content})
	if err != nil {
		t.Fatal(errors.Wrap(err, "updating note"))
	}

	assert.Equal(t, note.ID, "", "empty reply should give an empty note")
	assert.DeepEqual(t, got, map[string]interface{}{"content": "new body"}, "payload mismatch")
}

func TestCreateNote(t *testing.T) {
	ctx := newTestCtx(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, r.Method, "POST", "method mismatch")
		assert.Equal(t, r.URL.Path, "/v1/notes", "path mismatch")

		var p CreateNotePayload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			t.Fatal(err)
		}
		writeJSON(w, http.StatusCreated, Note{ID: "new", Title: p.Title, ReadPermission: p.ReadPermission})
	})

	note, err := CreateNote(ctx, CreateNotePayload{Title: "T", ReadPermission: "guest"})
	if err != nil {
		t.Fatal(errors.Wrap(err, "creating note"))
	}

	assert.Equal(t, note.ID, "new", "id mismatch")
	assert.Equal(t, note.Title, "T", "title mismatch")
	assert.Equal(t, note.ReadPermission, "guest", "permission mismatch")
}

func TestDeleteNote(t *testing.T) {
	var called bool
	ctx := newTestCtx(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, r.Method, "DELETE", "method mismatch")
		assert.Equal(t, r.URL.Path, "/v1/notes/abc", "path mismatch")
		w.WriteHeader(http.StatusNoContent)
	})

	if err := DeleteNote(ctx, "abc"); err != nil {
		t.Fatal(errors.Wrap(err, "deleting note"))
	}
	assert.Equal(t, called, true, "server should be called")
}

func TestGetMe(t *testing.T) {
	ctx := newTestCtx(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, r.URL.Path, "/v1/me", "path mismatch")
		writeJSON(w, http.StatusOK, User{ID: "u1", Name: "alice", Teams: []Team{{Name: "core", Path: "core"}}})
	})

	me, err := GetMe(ctx)
	if err != nil {
		t.Fatal(errors.Wrap(err, "getting me"))
	}

	assert.Equal(t, me.Name, "alice", "name mismatch")
	assert.Equal(t, len(me.Teams), 1, "team count mismatch")
}

func TestRenderNote(t *testing.T) {
	testCases := []struct {
		format      string
		contentType string
		body        string
	}{
		{
			format:      FormatHTML,
			contentType: "text/html; charset=utf-8",
			body:        "<h1>Hello</h1>",
		},
		{
			format:      FormatPDF,
			contentType: "application/pdf",
			body:        "%PDF-1.4\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.format, func(t *testing.T) {
			ctx := newTestCtx(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, r.Method, "POST", "method mismatch")
				assert.Equal(t, r.URL.Path, "/v1/notes/abc/"+tc.format, "path mismatch")
				assert.Equal(t, r.Header.Get("Accept"), renderedContentTypes[tc.format], "accept mismatch")

				w.Header().Set("Content-Type", tc.contentType)
				io.WriteString(w, tc.body)
			})

			b, err := RenderNote(ctx, "abc", tc.format)
			if err != nil {
				t.Fatal(errors.Wrap(err, "rendering note"))
			}
			assert.Equal(t, string(b), tc.body, "body mismatch")
		})
	}

	t.Run("content type mismatch", func(t *testing.T) {
		ctx := newTestCtx(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"id": "abc"})
		})

		_, err := RenderNote(ctx, "abc", FormatHTML)
		assert.Equal(t, errors.Cause(err), ErrContentTypeMismatch, "error mismatch")
	})

	t.Run("markdown is not rendered", func(t *testing.T) {
		var called bool
		ctx := newTestCtx(t, func(w http.ResponseWriter, r *http.Request) {
			called = true
		})

		_, err := RenderNote(ctx, "abc", FormatMarkdown)
		assert.Equal(t, errors.Cause(err), ErrUnsupportedFormat, "error mismatch")
		assert.Equal(t, called, false, "no request expected")
	})
}
