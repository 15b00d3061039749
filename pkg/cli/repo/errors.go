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

package repo

import (
	"fmt"

	"github.com/pkg/errors"
)

// Hinter is implemented by errors that know a command the user can run to
// recover from them
type Hinter interface {
	Hint() string
}

type hintedError struct {
	msg  string
	hint string
}

func (e *hintedError) Error() string { return e.msg }
func (e *hintedError) Hint() string  { return e.hint }

var (
	// ErrNotInitialized is returned when the working directory has no repository marker
	ErrNotInitialized error = &hintedError{
		msg:  "not a hackmd repository",
		hint: "hackmd init",
	}
	// ErrAlreadyExists is matched by every AlreadyExistsError
	ErrAlreadyExists = errors.New("already exists")
	// ErrNotFound is matched by every NotFoundError
	ErrNotFound = errors.New("not found")
)

// AlreadyExistsError is returned when creating something that is already present
type AlreadyExistsError struct {
	What string
	Name string
}

func (e *AlreadyExistsError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s already exists", e.What)
	}

	return fmt.Sprintf("%s '%s' already exists", e.What, e.Name)
}

// Is lets errors.Is match ErrAlreadyExists
func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// Kind tells which store a lookup missed
type Kind int

const (
	// KindRemote is a missing remote binding
	KindRemote Kind = iota
	// KindNote is a missing local note file
	KindNote
)

// NotFoundError is returned when a name is absent from a store
type NotFoundError struct {
	Kind Kind
	Name string
}

func (e *NotFoundError) Error() string {
	if e.Kind == KindNote {
		return fmt.Sprintf("note '%s' not found locally", e.Name)
	}

	return fmt.Sprintf("no remote found for '%s'", e.Name)
}

// Is lets errors.Is match ErrNotFound
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Hint returns the command that creates what was missing
func (e *NotFoundError) Hint() string {
	if e.Kind == KindNote {
		return fmt.Sprintf("hackmd pull %s", e.Name)
	}

	return fmt.Sprintf("hackmd remote add %s <note-id>", e.Name)
}

// IsNotFound reports whether err is a NotFoundError of the given kind
func IsNotFound(err error, kind Kind) bool {
	var nf *NotFoundError
	return errors.As(err, &nf) && nf.Kind == kind
}
