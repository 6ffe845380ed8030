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
	"github.com/google/shadowsrc/pathtools"
)

// A Binary is one compiled variant of a component, for example its debug
// executable or its release shared library.
type Binary struct {
	component *Component
	name      string
	source    *fileset.Collection
	task      *CompileTask
}

// A BinaryOption customizes a binary before configuration logic sees it.
type BinaryOption func(*Binary) error

// WithSource adds binary-specific sources.
func WithSource(sources ...fileset.Source) BinaryOption {
	return func(b *Binary) error {
		return b.source.From(sources...)
	}
}

// WithFinalizedCompileInput finalizes the input of the binary's compile task
// right after the task is created, as an extension that takes over the wiring
// of the task's sources would.
func WithFinalizedCompileInput() BinaryOption {
	return func(b *Binary) error {
		b.task.source.Finalize()
		return nil
	}
}

func newBinary(component *Component, name string) *Binary {
	b := &Binary{
		component: component,
		name:      name,
	}
	b.source = fileset.Named(fmt.Sprintf("declared source of %s", b))
	return b
}

func (b *Binary) Name() string            { return b.name }
func (b *Binary) Component() *Component   { return b.component }
func (b *Binary) Context() *Context       { return b.component.ctx }
func (b *Binary) CompileTaskName() string { return b.task.name }

func (b *Binary) String() string {
	return fmt.Sprintf("binary '%s:%s'", b.component.name, b.name)
}

// Source returns the binary-specific declared sources.
func (b *Binary) Source() *fileset.Collection {
	return b.source
}

// CppSource returns the built-in C++ sources of the binary: the files with one
// of the PrimaryExtensions below its declared sources.  Declared directories
// are expanded to the files beneath them.
func (b *Binary) CppSource() fileset.Source {
	patterns := pathtools.ExtensionPatterns(PrimaryExtensions)
	return fileset.NewTree(b.component.ctx.fs, b.source).Matching(patterns...)
}

// CompileTask looks up the binary's compile task by name.
func (b *Binary) CompileTask() (*CompileTask, error) {
	return b.component.ctx.Task(b, b.task.name)
}
