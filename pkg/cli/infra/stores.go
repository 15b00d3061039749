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

package infra

import (
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/cache"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/context"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/repo"
)

// RemoteStore returns the remote store of the repository in the working
// directory
func RemoteStore(ctx context.HackMDCtx) *repo.RemoteStore {
	return repo.NewRemoteStore(ctx.Fs, ctx.WorkDir, ctx.Clock)
}

// NoteStore returns the store of the note files in the working directory
func NoteStore(ctx context.HackMDCtx) *repo.NoteStore {
	return repo.NewNoteStore(ctx.Fs, ctx.WorkDir)
}

// Cache returns the note metadata cache
func Cache(ctx context.HackMDCtx) *cache.Cache {
	return cache.New(ctx.Fs, ctx.NoteCachePath())
}
