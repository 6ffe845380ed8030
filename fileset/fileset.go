// Copyright 2026 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package fileset implements lazily evaluated collections of files.
//
// Nothing in this package touches the file system when a collection is built.
// Files are listed when a consumer calls Files, and every call lists them
// again, so a collection assembled early in a configuration pass observes
// files and upstream changes made after it was assembled.
package fileset

import (
	"errors"
	"fmt"

	"github.com/google/shadowsrc/pathtools"
)

// ErrFinalized is returned when adding to a Collection that another party has
// already finalized.
var ErrFinalized = errors.New("file collection is finalized")

// A Source produces a list of files on demand.
type Source interface {
	Files() ([]string, error)
}

// Paths is a Source of literal file paths.
type Paths []string

func (p Paths) Files() ([]string, error) {
	return pathtools.SortedUniquePaths(p), nil
}

// A Collection is the union of a list of Sources.  The list can grow until the
// Collection is finalized.
type Collection struct {
	name      string
	from      []Source
	finalized bool
}

// New returns a Collection containing the given sources.
func New(from ...Source) *Collection {
	c := &Collection{}
	c.from = appendSources(c.from, from)
	return c
}

// Named returns an empty Collection whose String method reports name.
func Named(name string) *Collection {
	return &Collection{name: name}
}

// From appends sources to the collection.  It fails with ErrFinalized once
// Finalize has been called, in which case nothing is appended.
func (c *Collection) From(sources ...Source) error {
	if c.finalized {
		return fmt.Errorf("%s: %w", c, ErrFinalized)
	}
	c.from = appendSources(c.from, sources)
	return nil
}

// Finalize prevents further changes to the list of sources.  The sources
// themselves are still evaluated lazily.
func (c *Collection) Finalize() {
	c.finalized = true
}

func (c *Collection) Finalized() bool {
	return c.finalized
}

// IsEmpty reports whether no source was ever added to the collection.  It says
// nothing about whether the sources produce any files.
func (c *Collection) IsEmpty() bool {
	return len(c.from) == 0
}

// Files evaluates every source and returns the sorted union of their files.
func (c *Collection) Files() ([]string, error) {
	var files []string
	for _, source := range c.from {
		more, err := source.Files()
		if err != nil {
			return nil, err
		}
		files = append(files, more...)
	}
	return pathtools.SortedUniquePaths(files), nil
}

func (c *Collection) String() string {
	if c.name != "" {
		return c.name
	}
	return "file collection"
}

func appendSources(list []Source, sources []Source) []Source {
	for _, source := range sources {
		if source != nil {
			list = append(list, source)
		}
	}
	return list
}

// Deferred is a Source whose underlying Source is itself computed when files
// are requested.  A nil Source from the Thunk produces no files.
type Deferred struct {
	thunk *Thunk[Source]
}

// Defer returns a Deferred that calls compute every time files are requested.
func Defer(compute func() (Source, error)) Deferred {
	return Deferred{thunk: NewThunk(compute)}
}

func (d Deferred) Files() ([]string, error) {
	source, err := d.thunk.Get()
	if err != nil {
		return nil, err
	}
	if source == nil {
		return nil, nil
	}
	return source.Files()
}
