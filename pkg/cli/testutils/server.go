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

package testutils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
)

// FakeNote is a note held by FakeAPI. Timestamps are epoch milliseconds,
// as the real API sends them.
type FakeNote struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Content           string `json:"content,omitempty"`
	CreatedAt         int64  `json:"createdAt"`
	LastChangedAt     int64  `json:"lastChangedAt"`
	ReadPermission    string `json:"readPermission"`
	WritePermission   string `json:"writePermission"`
	CommentPermission string `json:"commentPermission"`
}

// FakeUser is the account FakeAPI answers /me with
var FakeUser = map[string]interface{}{
	"id":       "user-1",
	"name":     "Test User",
	"email":    "test@example.com",
	"userPath": "test-user",
	"teams":    []interface{}{},
}

// Route represents a single route
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// FakeAPI is an in-memory HackMD API for tests
type FakeAPI struct {
	Server *httptest.Server
	Token  string

	mu       sync.Mutex
	notes    map[string]FakeNote
	order    []string
	failures map[string]int
	now      int64
	seq      int
	// Requests records "METHOD /path" for every request
	Requests []string
}

// NewFakeAPI starts a fake API that accepts the given token. It is closed
// when the test finishes.
func NewFakeAPI(t *testing.T, token string) *FakeAPI {
	f := &FakeAPI{
		Token:    token,
		notes:    map[string]FakeNote{},
		failures: map[string]int{},
		now:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli(),
	}

	router := mux.NewRouter()
	for _, route := range f.routes() {
		router.Handle(route.Pattern, f.auth(route.Handler)).Methods(route.Method)
	}

	f.Server = httptest.NewServer(router)
	t.Cleanup(f.Server.Close)

	return f
}

func (f *FakeAPI) routes() []Route {
	return []Route{
		{"GET", "/me", f.getMe},
		{"GET", "/notes", f.getNotes},
		{"POST", "/notes", f.createNote},
		{"GET", "/notes/{noteID}", f.getNote},
		{"PATCH", "/notes/{noteID}", f.updateNote},
		{"DELETE", "/notes/{noteID}", f.deleteNote},
		{"POST", "/notes/{noteID}/{format:html|pdf}", f.renderNote},
	}
}

// URL returns the base URL of the fake API
func (f *FakeAPI) URL() string {
	return f.Server.URL
}

// tick advances the fake clock so that every change gets a later timestamp
func (f *FakeAPI) tick() int64 {
	f.now += int64(time.Minute / time.Millisecond)
	return f.now
}

// AddNote stores a note. Missing timestamps and permissions are filled in.
func (f *FakeAPI) AddNote(n FakeNote) FakeNote {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.put(n)
}

func (f *FakeAPI) put(n FakeNote) FakeNote {
	if n.ID == "" {
		f.seq++
		n.ID = fmt.Sprintf("note%04d", f.seq)
	}
	if n.LastChangedAt == 0 {
		n.LastChangedAt = f.tick()
	}
	if n.CreatedAt == 0 {
		n.CreatedAt = n.LastChangedAt
	}
	if n.ReadPermission == "" {
		n.ReadPermission = "owner"
	}
	if n.WritePermission == "" {
		n.WritePermission = "owner"
	}
	if n.CommentPermission == "" {
		n.CommentPermission = "disabled"
	}

	if _, ok := f.notes[n.ID]; !ok {
		f.order = append(f.order, n.ID)
	}
	f.notes[n.ID] = n

	return n
}

// EditNote replaces the content of a note and bumps its last change time
func (f *FakeAPI) EditNote(id, content string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := f.notes[id]
	n.Content = content
	n.LastChangedAt = f.tick()
	f.notes[id] = n
}

// RemoveNote deletes a note behind the client's back
func (f *FakeAPI) RemoveNote(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.remove(id)
}

func (f *FakeAPI) remove(id string) {
	delete(f.notes, id)
	for i, v := range f.order {
		if v == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
}

// Note returns a stored note
func (f *FakeAPI) Note(id string) (FakeNote, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	n, ok := f.notes[id]
	return n, ok
}

// FailOn makes requests matching the method and path answer with status
func (f *FakeAPI) FailOn(method, path string, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.failures[method+" "+path] = status
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}

func (f *FakeAPI) auth(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path

		f.mu.Lock()
		f.Requests = append(f.Requests, key)
		status, fail := f.failures[key]
		f.mu.Unlock()

		if strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ") != f.Token {
			respondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if fail {
			respondError(w, status, http.StatusText(status))
			return
		}

		next(w, r)
	})
}

func (f *FakeAPI) getMe(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, FakeUser)
}

func (f *FakeAPI) getNotes(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	ret := make([]FakeNote, 0, len(f.order))
	for _, id := range f.order {
		n := f.notes[id]
		n.Content = ""
		ret = append(ret, n)
	}
	f.mu.Unlock()

	respondJSON(w, http.StatusOK, ret)
}

func (f *FakeAPI) getNote(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["noteID"]

	n, ok := f.Note(id)
	if !ok {
		respondError(w, http.StatusNotFound, "Not Found")
		return
	}

	respondJSON(w, http.StatusOK, n)
}

type notePayload struct {
	Title             *string `json:"title"`
	Content           *string `json:"content"`
	ReadPermission    string  `json:"readPermission"`
	WritePermission   string  `json:"writePermission"`
	CommentPermission string  `json:"commentPermission"`
}

func decodePayload(w http.ResponseWriter, r *http.Request) (notePayload, bool) {
	var p notePayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return p, false
	}

	return p, true
}

func (f *FakeAPI) createNote(w http.ResponseWriter, r *http.Request) {
	p, ok := decodePayload(w, r)
	if !ok {
		return
	}

	n := FakeNote{
		ReadPermission:    p.ReadPermission,
		WritePermission:   p.WritePermission,
		CommentPermission: p.CommentPermission,
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.Title != nil {
		n.Title = *p.Title
	}
	if n.Title == "" {
		n.Title = "Untitled"
	}

	f.mu.Lock()
	n = f.put(n)
	f.mu.Unlock()

	respondJSON(w, http.StatusCreated, n)
}

func (f *FakeAPI) updateNote(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["noteID"]

	p, ok := decodePayload(w, r)
	if !ok {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	n, ok := f.notes[id]
	if !ok {
		respondError(w, http.StatusNotFound, "Not Found")
		return
	}

	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.ReadPermission != "" {
		n.ReadPermission = p.ReadPermission
	}
	if p.WritePermission != "" {
		n.WritePermission = p.WritePermission
	}
	if p.CommentPermission != "" {
		n.CommentPermission = p.CommentPermission
	}
	n.LastChangedAt = f.tick()
	f.notes[id] = n

	w.WriteHeader(http.StatusAccepted)
}

func (f *FakeAPI) deleteNote(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["noteID"]

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.notes[id]; !ok {
		respondError(w, http.StatusNotFound, "Not Found")
		return
	}
	f.remove(id)

	w.WriteHeader(http.StatusNoContent)
}

// Rendered returns what FakeAPI answers when n is rendered as format
func Rendered(n FakeNote, format string) string {
	if format == "pdf" {
		return fmt.Sprintf("%%PDF-1.4\n%%%% %s\n%s", n.Title, n.Content)
	}

	return fmt.Sprintf("<h1>%s</h1>\n<pre>%s</pre>\n", n.Title, n.Content)
}

func (f *FakeAPI) renderNote(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	n, ok := f.Note(vars["noteID"])
	if !ok {
		respondError(w, http.StatusNotFound, "Not Found")
		return
	}

	contentType := "text/html; charset=utf-8"
	if vars["format"] == "pdf" {
		contentType = "application/pdf"
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, Rendered(n, vars["format"]))
}
