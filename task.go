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

package shadowsrc

import (
	"fmt"

	"github.com/google/shadowsrc/fileset"
)

// A CompileTask compiles the C++ sources of exactly one binary.  Only its
// input is modelled here; running the compiler is left to the build engine.
type CompileTask struct {
	name   string
	binary *Binary
	source *fileset.Collection
}

func newCompileTask(binary *Binary, name string) *CompileTask {
	t := &CompileTask{
		name:   name,
		binary: binary,
	}
	t.source = fileset.Named(fmt.Sprintf("source of %s", t))
	return t
}

func (t *CompileTask) Name() string    { return t.name }
func (t *CompileTask) Binary() *Binary { return t.binary }

func (t *CompileTask) String() string {
	return fmt.Sprintf("task ':%s'", t.name)
}

// Source returns the input sources of the task.  Once finalized, From on it
// fails with fileset.ErrFinalized.
func (t *CompileTask) Source() *fileset.Collection {
	return t.source
}

// Files lists the files the task would compile right now.
func (t *CompileTask) Files() ([]string, error) {
	return t.source.Files()
}
