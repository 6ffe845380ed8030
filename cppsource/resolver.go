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

// Package cppsource makes the C++ sources of components and binaries
// overridable and additive.
//
// The host model reads a component's C++ sources from a fixed accessor.  The
// Resolver keeps a shadow copy of those sources in an override slot, extends
// it with the files of additional extensions (".cxx" by default), and appends
// the result to the input of every binary's compile task.  Later readers of
// the slot, including later resolutions, build on the shadow copy instead of
// the built-in accessor.
//
// All sources are lazy: the override slot captures which collection to read,
// but the collection is only listed when the compile task's input is.
package cppsource

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/shadowsrc"
	"github.com/google/shadowsrc/fileset"
	"github.com/google/shadowsrc/pathtools"
)

const (
	// DefaultConventionDir is scanned for components without declared
	// source.  "{name}" is replaced by the component name.
	DefaultConventionDir = "src/{name}/cpp"

	namePlaceholder = "{name}"
)

// DefaultExtensions are the extensions added on top of the host's own.
var DefaultExtensions = []string{"cxx"}

// ErrComponentNotResolved is returned when a binary is resolved before its
// component.
var ErrComponentNotResolved = errors.New("component source not resolved")

// Options parameterize a Resolver.  Zero fields take their defaults.
type Options struct {
	// Extensions kept by the directory scan, without the leading dot.
	Extensions []string
	// Label of the override slot, used in diagnostics.
	Label string
	// ConventionDir is the project-relative directory scanned for components
	// without declared source.  It must contain "{name}".
	ConventionDir string
}

func DefaultOptions() Options {
	return Options{
		Extensions:    append([]string(nil), DefaultExtensions...),
		Label:         DefaultLabel,
		ConventionDir: DefaultConventionDir,
	}
}

// WireResult tells what Republish did with a binary's compile task.
type WireResult int

const (
	// WireFailed accompanies a non-nil error.
	WireFailed WireResult = iota
	// Wired means the shadowed source was appended to the task input.
	Wired
	// InputFinalized means the task input was already finalized by someone
	// else, so the shadowed source was not wired.
	InputFinalized
)

func (r WireResult) String() string {
	switch r {
	case Wired:
		return "wired"
	case InputFinalized:
		return "input finalized"
	default:
		return "failed"
	}
}

// A Resolver computes and publishes shadowed C++ sources.  It is used by a
// single configuration pass and, like the Context, is not safe for concurrent
// use.
type Resolver struct {
	extensions    []string
	patterns      []string
	conventionDir string
	overrides     *Overrides
}

// NewResolver validates opts and returns a Resolver with an empty override
// table.
func NewResolver(opts Options) (*Resolver, error) {
	defaults := DefaultOptions()
	if len(opts.Extensions) == 0 {
		opts.Extensions = defaults.Extensions
	}
	if opts.Label == "" {
		opts.Label = defaults.Label
	}
	if opts.ConventionDir == "" {
		opts.ConventionDir = defaults.ConventionDir
	}

	extensions := make([]string, len(opts.Extensions))
	for i, ext := range opts.Extensions {
		ext = strings.TrimPrefix(ext, ".")
		if ext == "" || strings.ContainsAny(ext, "/\\") {
			return nil, fmt.Errorf("invalid source extension %q", opts.Extensions[i])
		}
		extensions[i] = ext
	}
	if !strings.Contains(opts.ConventionDir, namePlaceholder) {
		return nil, fmt.Errorf("convention directory %q does not contain %s",
			opts.ConventionDir, namePlaceholder)
	}

	patterns := pathtools.ExtensionPatterns(extensions)
	if err := pathtools.ValidatePatterns(patterns); err != nil {
		return nil, err
	}

	return &Resolver{
		extensions:    extensions,
		patterns:      patterns,
		conventionDir: opts.ConventionDir,
		overrides:     NewOverrides(opts.Label),
	}, nil
}

// Overrides returns the override table of r.
func (r *Resolver) Overrides() *Overrides {
	return r.overrides
}

// Extensions returns the extensions kept by the directory scan.
func (r *Resolver) Extensions() []string {
	return append([]string(nil), r.extensions...)
}

// ConventionDir returns the directory scanned for c when it declares no
// source.
func (r *Resolver) ConventionDir(c *shadowsrc.Component) string {
	return c.Context().Path(strings.ReplaceAll(r.conventionDir, namePlaceholder, c.Name()))
}

// sourceView lists the files of c with one of r's extensions: below the
// declared source tree, or below the convention directory when nothing is
// declared.  The choice is made each time files are listed.
func (r *Resolver) sourceView(c *shadowsrc.Component) fileset.Source {
	fs := c.Context().FileSystem()
	return fileset.Defer(func() (fileset.Source, error) {
		var tree *fileset.Tree
		if c.Source().IsEmpty() {
			tree = fileset.DirTree(fs, r.ConventionDir(c))
		} else {
			tree = fileset.NewTree(fs, c.Source())
		}
		return tree.Matching(r.patterns...), nil
	})
}

// ResolveComponentSource returns the union of the current C++ source of c
// (its override, or else its built-in source) and the scan of its directory
// tree for r's extensions, and stores the union as the new override of c.
//
// Which source is current is decided now; the files of both parts are listed
// only when the returned collection is.
func (r *Resolver) ResolveComponentSource(c *shadowsrc.Component) *fileset.Collection {
	resolved := fileset.New(r.overrides.ComponentSource(c), r.sourceView(c))
	r.overrides.SetComponent(c, resolved)
	return resolved
}

// ResolveBinarySource returns the union of the override of b's component and
// the current C++ source of b (its override, or else its built-in source), and
// stores the union as the new override of b.  The component must have been
// resolved first.
func (r *Resolver) ResolveBinarySource(b *shadowsrc.Binary) (*fileset.Collection, error) {
	component, ok := r.overrides.Component(b.Component())
	if !ok {
		return nil, fmt.Errorf("resolving %s: %s: %w", b, b.Component(), ErrComponentNotResolved)
	}

	resolved := fileset.New(component, r.overrides.BinarySource(b))
	r.overrides.SetBinary(b, resolved)
	return resolved, nil
}

// Republish appends the override of b, read when the task's input is listed,
// to the input of b's compile task.
//
// A compile task whose input was already finalized is left alone: only one
// extension can own the final wiring of a task, and this one yields.  That is
// logged at info level and reported as InputFinalized with a nil error.  A
// missing compile task is an error.
func (r *Resolver) Republish(b *shadowsrc.Binary) (WireResult, error) {
	task, err := b.CompileTask()
	if err != nil {
		return WireFailed, err
	}

	shadowed := fileset.Defer(func() (fileset.Source, error) {
		return r.overrides.BinarySource(b), nil
	})

	err = task.Source().From(shadowed)
	if errors.Is(err, fileset.ErrFinalized) {
		ctx := b.Context()
		ctx.Logger().Info(fmt.Sprintf("Could not wire shadowed '%s' from %s in %s to %s.",
			r.overrides.Label(), b.Component(), ctx, task),
			"binary", b.Name())
		return InputFinalized, nil
	} else if err != nil {
		return WireFailed, err
	}

	return Wired, nil
}
