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

// Package projectfile reads TOML project descriptions and registers the
// components and binaries they list with a shadowsrc.Context.
//
// A project file looks like:
//
//	name = "demo"
//	dir = "."
//
//	[[components]]
//	name = "app"
//	source = ["lib"]
//
//	  [[components.binaries]]
//	  name = "mainDebug"
//	  source = ["debug/hooks.cpp"]
//	  finalized = false
//
// Source paths and dir are relative to the directory holding the file.
package projectfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/google/shadowsrc"
	"github.com/google/shadowsrc/fileset"
	"github.com/google/shadowsrc/pathtools"
)

// DefaultFileName is the project file looked up when none is given.
const DefaultFileName = "project.toml"

// A File is a decoded project description.
type File struct {
	Name       string      `toml:"name"`
	Dir        string      `toml:"dir"`
	Components []Component `toml:"components"`
}

// A Component describes a component and its binaries.
type Component struct {
	Name     string   `toml:"name"`
	Source   []string `toml:"source"`
	Binaries []Binary `toml:"binaries"`
}

// A Binary describes one binary of a component.
type Binary struct {
	Name   string   `toml:"name"`
	Source []string `toml:"source"`
	// Finalized locks the compile task input as soon as the task exists.
	Finalized bool `toml:"finalized"`
}

// Parse decodes a project description.  Unknown keys are errors.
func Parse(r io.Reader) (*File, error) {
	var f File
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&f); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("unknown keys in project description:\n%s", strict.String())
		}
		return nil, err
	}
	return &f, nil
}

// Load reads the project description at path.  The project directory is
// resolved against the directory holding the file.
func Load(path string) (*File, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	f, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	f.Dir = pathtools.PrefixPaths([]string{f.Dir}, filepath.Dir(path))[0]
	return f, nil
}

// NewContext creates a Context for the described project.  opts are applied
// after the project name, so they may override it.
func (f *File) NewContext(opts ...shadowsrc.ContextOption) *shadowsrc.Context {
	dir := f.Dir
	if dir == "" {
		dir = "."
	}

	var all []shadowsrc.ContextOption
	if f.Name != "" {
		all = append(all, shadowsrc.WithName(f.Name))
	}
	all = append(all, opts...)
	return shadowsrc.NewContext(dir, all...)
}

// Populate registers the components and binaries of f with ctx, in file
// order.  Source paths are resolved against ctx.Dir().  It stops at the
// first registration error.
func (f *File) Populate(ctx *shadowsrc.Context) error {
	for _, fc := range f.Components {
		c, err := ctx.AddComponent(fc.Name)
		if err != nil {
			return err
		}
		if len(fc.Source) > 0 {
			if err := c.Source().From(sourcePaths(ctx, fc.Source)); err != nil {
				return fmt.Errorf("%s: %w", c, err)
			}
		}

		for _, fb := range fc.Binaries {
			var opts []shadowsrc.BinaryOption
			if len(fb.Source) > 0 {
				opts = append(opts, shadowsrc.WithSource(sourcePaths(ctx, fb.Source)))
			}
			if fb.Finalized {
				opts = append(opts, shadowsrc.WithFinalizedCompileInput())
			}
			if _, err := c.AddBinary(fb.Name, opts...); err != nil {
				return fmt.Errorf("%s: %w", c, err)
			}
		}
	}
	return nil
}

func sourcePaths(ctx *shadowsrc.Context, paths []string) fileset.Paths {
	return fileset.Paths(pathtools.PrefixPaths(paths, ctx.Dir()))
}
