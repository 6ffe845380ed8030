// Copyright 2016 Google Inc. All rights reserved.
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

package pathtools

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Based on Andrew Gerrand's "10 things you (probably) dont' know about Go"

var OsFs FileSystem = osFs{}

// MockFs returns a FileSystem containing exactly the given files.  Every parent
// directory of a file is implicitly present.
func MockFs(files map[string][]byte) FileSystem {
	fs := &mockFs{
		files: make(map[string][]byte, len(files)),
		dirs:  make(map[string]bool),
	}

	for f, b := range files {
		fs.files[filepath.Clean(f)] = b
		dir := filepath.Dir(f)
		for dir != "." && dir != "/" {
			fs.dirs[dir] = true
			dir = filepath.Dir(dir)
		}
		fs.dirs[dir] = true
	}

	for f := range fs.files {
		fs.all = append(fs.all, f)
	}

	sort.Strings(fs.all)

	return fs
}

type FileSystem interface {
	// Exists reports whether name exists and whether it is a directory.
	Exists(name string) (exists bool, isDir bool, err error)
	// ListFilesRecursive returns every regular file below the directory name,
	// sorted.  Directories whose name starts with '.' are not descended into.
	// A missing directory has no files.
	ListFilesRecursive(name string) (files []string, err error)
}

// osFs implements FileSystem using the local disk.
type osFs struct{}

func (osFs) Exists(name string) (bool, bool, error) {
	stat, err := os.Stat(name)
	if err == nil {
		return true, stat.IsDir(), nil
	} else if os.IsNotExist(err) {
		return false, false, nil
	} else {
		return false, false, err
	}
}

func (osFs) ListFilesRecursive(name string) (files []string, err error) {
	err = filepath.WalkDir(name, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == name {
				return filepath.SkipDir
			}
			return err
		}

		if d.IsDir() {
			if path != name && isHidden(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})

	sort.Strings(files)
	return files, err
}

type mockFs struct {
	files map[string][]byte
	dirs  map[string]bool
	all   []string
}

func (m *mockFs) Exists(name string) (bool, bool, error) {
	name = filepath.Clean(name)
	if _, ok := m.files[name]; ok {
		return ok, false, nil
	}
	if _, ok := m.dirs[name]; ok {
		return ok, true, nil
	}
	return false, false, nil
}

func (m *mockFs) ListFilesRecursive(name string) (files []string, err error) {
	name = filepath.Clean(name)
	if !m.dirs[name] {
		return nil, nil
	}

	prefix := name + "/"
	if name == "." {
		prefix = ""
	} else if name == "/" {
		prefix = "/"
	}

	for _, f := range m.all {
		if !strings.HasPrefix(f, prefix) ||
			strings.HasPrefix(f, "/") != strings.HasPrefix(prefix, "/") {
			continue
		}
		if inHiddenDir(strings.TrimPrefix(f, prefix)) {
			continue
		}
		files = append(files, f)
	}

	return files, nil
}

func isHidden(name string) bool {
	return name[0] == '.' && name != "." && name != ".."
}

// inHiddenDir reports whether any directory component of the relative path
// rel is hidden.
func inHiddenDir(rel string) bool {
	parts := strings.Split(rel, "/")
	for _, dir := range parts[:len(parts)-1] {
		if dir != "" && isHidden(dir) {
			return true
		}
	}
	return false
}
