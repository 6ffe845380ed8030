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
	"path/filepath"

	"github.com/google/shadowsrc/fileset"
	"github.com/google/shadowsrc/pathtools"
)

// PrimaryExtensions are the file extensions of the sources a component compiles
// on its own, given without the leading dot.
var PrimaryExtensions = []string{"cpp", "c++", "cc"}

// A Component is a named C++ library or application of a project, before it is
// split into binaries.
type Component struct {
	ctx      *Context
	name     string
	source   *fileset.Collection
	binaries *DomainSet[*Binary]
}

func newComponent(ctx *Context, name string) *Component {
	c := &Component{
		ctx:  ctx,
		name: name,
	}
	c.source = fileset.Named(fmt.Sprintf("declared source of %s", c))
	c.binaries = newDomainSet[*Binary](func(err error) {
		ctx.addError(&ComponentError{Component: name, Err: err})
	})
	return c
}

// A ComponentError is a configuration error raised while configuring one of
// the binaries of a component.
type ComponentError struct {
	Component string
	Err       error
}

func (e *ComponentError) Error() string {
	return fmt.Sprintf("component '%s': %s", e.Component, e.Err)
}

func (e *ComponentError) Unwrap() error {
	return e.Err
}

func (c *Component) Name() string      { return c.name }
func (c *Component) Context() *Context { return c.ctx }

func (c *Component) String() string {
	return fmt.Sprintf("component '%s'", c.name)
}

// Source returns the declared sources of the component: files
// or directories whose contents are compiled.  When nothing is declared the
// component falls back to its convention directory.
func (c *Component) Source() *fileset.Collection {
	return c.source
}

// ConventionDir returns the directory scanned when no source is declared,
// src/<name>/cpp below the project directory.
func (c *Component) ConventionDir() string {
	return c.ctx.Path(filepath.Join("src", c.name, "cpp"))
}

// CppSource returns the built-in C++ sources of the component: the files with
// one of the PrimaryExtensions below its declared source, or below its
// convention directory when no source is declared.  Which of the two is used
// is decided each time files are listed.
func (c *Component) CppSource() fileset.Source {
	patterns := pathtools.ExtensionPatterns(PrimaryExtensions)
	return fileset.Defer(func() (fileset.Source, error) {
		if c.source.IsEmpty() {
			return fileset.DirTree(c.ctx.fs, c.ConventionDir()).Matching(patterns...), nil
		}
		return fileset.NewTree(c.ctx.fs, c.source).Matching(patterns...), nil
	})
}

// Binaries returns the live set of binaries of the component.
func (c *Component) Binaries() *DomainSet[*Binary] {
	return c.binaries
}

// AddBinary registers a binary of the component together with its compile
// task, then runs every action registered with Binaries().ConfigureEach on
// it.  The task's input starts out as the binary's built-in CppSource.
func (c *Component) AddBinary(name string, opts ...BinaryOption) (*Binary, error) {
	taskName, err := CompileTaskName(name)
	if err != nil {
		return nil, err
	}

	b := newBinary(c, name)
	b.task = newCompileTask(b, taskName)
	if err := b.task.source.From(b.CppSource()); err != nil {
		return nil, err
	}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}
	if err := c.ctx.registerTask(b.task); err != nil {
		return nil, err
	}

	c.binaries.add(b)
	return b, nil
}
