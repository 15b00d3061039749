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

// Package transfer moves note content between tracked remote notes and the
// local note files of a repository.
package transfer

import (
	"fmt"

	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/client"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/context"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/repo"
	"github.com/pkg/errors"
)

//go:generate mockgen -destination=mock_transfer/mock_transfer.go github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/transfer NoteAPI

// ErrBatchFailed is returned when at least one item of a batch failed
var ErrBatchFailed = errors.New("batch failed")

// NoteAPI is the subset of the API that transfers need
type NoteAPI interface {
	GetNote(noteID string) (client.Note, error)
	UpdateNote(noteID string, payload client.UpdateNotePayload) (client.Note, error)
}

type api struct {
	ctx context.HackMDCtx
}

// NewAPI returns a NoteAPI backed by the HTTP client
func NewAPI(ctx context.HackMDCtx) NoteAPI {
	return api{ctx: ctx}
}

func (a api) GetNote(noteID string) (client.Note, error) {
	return client.GetNote(a.ctx, noteID)
}

func (a api) UpdateNote(noteID string, payload client.UpdateNotePayload) (client.Note, error) {
	return client.UpdateNote(a.ctx, noteID, payload)
}

// Outcome is the result of transferring one tracked note
type Outcome struct {
	Name   string
	NoteID string
	Path   string
	Err    error
}

// Report collects the outcomes of a batch
type Report struct {
	Items []Outcome
	// Skipped holds the names that had nothing to transfer
	Skipped []string
}

// Failed returns the outcomes that carry an error
func (r Report) Failed() []Outcome {
	ret := []Outcome{}
	for _, o := range r.Items {
		if o.Err != nil {
			ret = append(ret, o)
		}
	}

	return ret
}

// Err returns ErrBatchFailed if any item failed
func (r Report) Err() error {
	n := len(r.Failed())
	if n == 0 {
		return nil
	}

	return errors.Wrap(ErrBatchFailed, fmt.Sprintf("%d of %d failed", n, len(r.Items)))
}

// Transfer pulls and pushes tracked notes
type Transfer struct {
	api     NoteAPI
	remotes *repo.RemoteStore
	notes   *repo.NoteStore

	// OnItem, if set, is called after each item of a batch
	OnItem func(Outcome)
}

// New returns a Transfer
func New(api NoteAPI, remotes *repo.RemoteStore, notes *repo.NoteStore) *Transfer {
	return &Transfer{
		api:     api,
		remotes: remotes,
		notes:   notes,
	}
}

func (t *Transfer) notify(o Outcome) {
	if t.OnItem != nil {
		t.OnItem(o)
	}
}

// Pull fetches the note bound to name and writes it to the local note file
func (t *Transfer) Pull(name string) Outcome {
	canonical := repo.Normalize(name)
	ret := Outcome{Name: canonical}

	binding, err := t.remotes.Get(canonical)
	if err != nil {
		ret.Err = err
		return ret
	}
	ret.NoteID = binding.NoteID

	note, err := t.api.GetNote(binding.NoteID)
	if err != nil {
		ret.Err = errors.Wrapf(err, "fetching '%s'", canonical)
		return ret
	}

	path, err := t.notes.Write(canonical, note.Content)
	ret.Path = path
	if err != nil {
		ret.Err = err
		return ret
	}

	return ret
}

// PullAll pulls every tracked note in name order. A failure does not stop
// the remaining items.
func (t *Transfer) PullAll() (Report, error) {
	names, err := t.remotes.Names()
	if err != nil {
		return Report{}, errors.Wrap(err, "listing remotes")
	}

	ret := Report{Items: []Outcome{}, Skipped: []string{}}
	for _, name := range names {
		o := t.Pull(name)
		ret.Items = append(ret.Items, o)
		t.notify(o)
	}

	return ret, nil
}

// push uploads the local content of name. The returned bool is false when
// there was no local file to push.
func (t *Transfer) push(name string) (Outcome, bool) {
	canonical := repo.Normalize(name)
	ret := Outcome{Name: canonical, Path: t.notes.Path(canonical)}

	content, err := t.notes.Read(canonical)
	if err != nil {
		ret.Err = err
		return ret, !repo.IsNotFound(err, repo.KindNote)
	}

	binding, err := t.remotes.Get(canonical)
	if err != nil {
		ret.Err = err
		return ret, true
	}
	ret.NoteID = binding.NoteID

	if _, err := t.api.UpdateNote(binding.NoteID, client.UpdateNotePayload{Content: &content}); err != nil {
		ret.Err = errors.Wrapf(err, "updating '%s'", canonical)
		return ret, true
	}

	return ret, true
}

// Push uploads the local note file of name to the note it is bound to
func (t *Transfer) Push(name string) Outcome {
	o, _ := t.push(name)
	return o
}

// PushAll pushes every tracked note in name order. Names without a local
// file are skipped and never count as failures.
func (t *Transfer) PushAll() (Report, error) {
	names, err := t.remotes.Names()
	if err != nil {
		return Report{}, errors.Wrap(err, "listing remotes")
	}

	ret := Report{Items: []Outcome{}, Skipped: []string{}}
	for _, name := range names {
		o, ok := t.push(name)
		if !ok {
			ret.Skipped = append(ret.Skipped, o.Name)
			continue
		}

		ret.Items = append(ret.Items, o)
		t.notify(o)
	}

	return ret, nil
}
