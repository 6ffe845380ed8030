// Copyright 2014 Google Inc. All rights reserved.
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
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/google/shadowsrc/pathtools"
)

// A Context contains all the state of one configuration pass over a project.
// Configuration is single threaded: components, binaries and tasks are
// registered and configured in program order, and a Context must not be used
// from more than one goroutine.
type Context struct {
	name   string
	dir    string
	fs     pathtools.FileSystem
	logger *log.Logger

	nameInterface NameInterface
	components    *DomainSet[*Component]
	tasks         []*CompileTask

	errs []error
}

// A ContextOption customizes a Context created by NewContext.
type ContextOption func(*Context)

// WithName sets the project name used in diagnostics.  It defaults to the
// base name of the project directory.
func WithName(name string) ContextOption {
	return func(c *Context) { c.name = name }
}

// WithFileSystem replaces the local disk, typically with pathtools.MockFs.
func WithFileSystem(fs pathtools.FileSystem) ContextOption {
	return func(c *Context) { c.fs = fs }
}

// WithLogger sets the diagnostics sink.
func WithLogger(logger *log.Logger) ContextOption {
	return func(c *Context) { c.logger = logger }
}

// WithNameInterface replaces the SimpleNameInterface.
func WithNameInterface(i NameInterface) ContextOption {
	return func(c *Context) { c.nameInterface = i }
}

// NewContext creates a new Context for the project rooted at dir.
func NewContext(dir string, opts ...ContextOption) *Context {
	c := &Context{
		dir:           filepath.Clean(dir),
		fs:            pathtools.OsFs,
		nameInterface: NewSimpleNameInterface(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.name == "" {
		if abs, err := filepath.Abs(c.dir); err == nil {
			c.name = filepath.Base(abs)
		} else {
			c.name = filepath.Base(c.dir)
		}
	}
	if c.logger == nil {
		c.logger = log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "shadowsrc",
			Level:  log.WarnLevel,
		})
	}

	c.components = newDomainSet[*Component](c.addError)
	return c
}

func (c *Context) Name() string                     { return c.name }
func (c *Context) Dir() string                      { return c.dir }
func (c *Context) FileSystem() pathtools.FileSystem { return c.fs }
func (c *Context) Logger() *log.Logger              { return c.logger }

func (c *Context) String() string {
	return fmt.Sprintf("project '%s'", c.name)
}

// Path returns rel resolved against the project directory.  Absolute paths are
// returned cleaned.
func (c *Context) Path(rel string) string {
	if filepath.IsAbs(rel) {
		return filepath.Clean(rel)
	}
	return filepath.Join(c.dir, rel)
}

// Components returns the live set of components of the project.
func (c *Context) Components() *DomainSet[*Component] {
	return c.components
}

// AddComponent registers a new component and runs every action registered with
// Components().ConfigureEach on it.
func (c *Context) AddComponent(name string) (*Component, error) {
	if err := checkName("component", name); err != nil {
		return nil, err
	}

	component := newComponent(c, name)
	if err := c.nameInterface.NewComponent(component); err != nil {
		return nil, err
	}

	c.components.add(component)
	return component, nil
}

// Component returns the component with the given name.
func (c *Context) Component(name string) (*Component, bool) {
	return c.nameInterface.ComponentFromName(name)
}

// Task returns the compile task with the given name, on behalf of requester.
func (c *Context) Task(requester fmt.Stringer, name string) (*CompileTask, error) {
	task, found := c.nameInterface.TaskFromName(name)
	if !found {
		return nil, c.nameInterface.MissingTaskError(requester, name)
	}
	return task, nil
}

// Tasks returns every compile task in registration order.
func (c *Context) Tasks() []*CompileTask {
	return append([]*CompileTask(nil), c.tasks...)
}

func (c *Context) registerTask(task *CompileTask) error {
	if err := c.nameInterface.NewTask(task); err != nil {
		return err
	}
	c.tasks = append(c.tasks, task)
	return nil
}

// Errs returns the errors reported by configuration logic so far.
func (c *Context) Errs() []error {
	return append([]error(nil), c.errs...)
}

func (c *Context) addError(err error) {
	c.errs = append(c.errs, err)
}
