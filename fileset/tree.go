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

package fileset

import (
	"path/filepath"

	"github.com/google/shadowsrc/pathtools"
)

// A Tree expands the paths produced by its roots into the files beneath them.
// Directory roots are walked recursively, file roots are kept as they are and
// roots that do not exist are ignored.  Include patterns are matched against
// each file's path relative to its root, or against the file name for file
// roots.
type Tree struct {
	fs       pathtools.FileSystem
	roots    Source
	includes []string
}

// NewTree returns a Tree over the paths produced by roots.
func NewTree(fs pathtools.FileSystem, roots Source) *Tree {
	return &Tree{fs: fs, roots: roots}
}

// DirTree returns a Tree rooted at a single directory.
func DirTree(fs pathtools.FileSystem, dir string) *Tree {
	return NewTree(fs, Paths{dir})
}

// Matching returns a copy of t restricted to files matching at least one of
// the given doublestar patterns, in addition to any patterns t already has.
func (t *Tree) Matching(patterns ...string) *Tree {
	includes := make([]string, 0, len(t.includes)+len(patterns))
	includes = append(includes, t.includes...)
	includes = append(includes, patterns...)
	return &Tree{fs: t.fs, roots: t.roots, includes: includes}
}

func (t *Tree) Files() ([]string, error) {
	roots, err := t.roots.Files()
	if err != nil {
		return nil, err
	}

	var files []string
	for _, root := range roots {
		exists, isDir, err := t.fs.Exists(root)
		if err != nil {
			return nil, err
		}
		if !exists {
			continue
		}

		if !isDir {
			match, err := pathtools.MatchAny(t.includes, filepath.Base(root))
			if err != nil {
				return nil, err
			}
			if match {
				files = append(files, root)
			}
			continue
		}

		contents, err := t.fs.ListFilesRecursive(root)
		if err != nil {
			return nil, err
		}
		for _, f := range contents {
			rel, err := filepath.Rel(root, f)
			if err != nil {
				return nil, err
			}
			match, err := pathtools.MatchAny(t.includes, rel)
			if err != nil {
				return nil, err
			}
			if match {
				files = append(files, f)
			}
		}
	}

	return pathtools.SortedUniquePaths(files), nil
}
