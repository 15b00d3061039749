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

package sync

import (
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/cache"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/client"
	"github.com/pkg/errors"
)

// ChangeSet classifies the remote notes against the cached snapshot
type ChangeSet struct {
	New      []client.Note
	Modified []client.Note
	Deleted  []cache.Summary
}

// Empty reports whether nothing changed
func (c ChangeSet) Empty() bool {
	return len(c.New) == 0 && len(c.Modified) == 0 && len(c.Deleted) == 0
}

// Diff compares the cached summaries with the live remote notes. A remote
// note is modified only if its last change is strictly after the cached one.
// Each list keeps the order of the input it was taken from.
func Diff(local []cache.Summary, remote []client.Note) (ChangeSet, error) {
	ret := ChangeSet{
		New:      []client.Note{},
		Modified: []client.Note{},
		Deleted:  []cache.Summary{},
	}

	localByID := map[string]cache.Summary{}
	for _, s := range local {
		if _, ok := localByID[s.ID]; !ok {
			localByID[s.ID] = s
		}
	}

	remoteIDs := map[string]bool{}
	for _, n := range remote {
		if remoteIDs[n.ID] {
			continue
		}
		remoteIDs[n.ID] = true

		s, ok := localByID[n.ID]
		if !ok {
			ret.New = append(ret.New, n)
			continue
		}

		if s.LastChangeAt.IsZero() {
			return ChangeSet{}, errors.Wrapf(client.ErrInvalidTimestamp, "cached note %s has no last change time", n.ID)
		}
		if n.LastChangedAt.IsZero() {
			return ChangeSet{}, errors.Wrapf(client.ErrInvalidTimestamp, "remote note %s has no last change time", n.ID)
		}

		if n.LastChangedAt.After(s.LastChangeAt.Time) {
			ret.Modified = append(ret.Modified, n)
		}
	}

	seen := map[string]bool{}
	for _, s := range local {
		if remoteIDs[s.ID] || seen[s.ID] {
			continue
		}
		seen[s.ID] = true

		ret.Deleted = append(ret.Deleted, s)
	}

	return ret, nil
}
