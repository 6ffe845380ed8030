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

package cppsource

import (
	"github.com/google/shadowsrc"
	"github.com/google/shadowsrc/fileset"
)

// DefaultLabel is the label of the override slot holding C++ sources.
const DefaultLabel = "cppSource"

// Overrides is a side table holding, per component and per binary, the
// source that replaces its built-in C++ source.  A missing entry means the
// built-in source applies.  Entries live as long as the table, normally one
// configuration pass.
type Overrides struct {
	label      string
	components map[*shadowsrc.Component]fileset.Source
	binaries   map[*shadowsrc.Binary]fileset.Source
}

func NewOverrides(label string) *Overrides {
	if label == "" {
		label = DefaultLabel
	}
	return &Overrides{
		label:      label,
		components: make(map[*shadowsrc.Component]fileset.Source),
		binaries:   make(map[*shadowsrc.Binary]fileset.Source),
	}
}

// Label names the slot in diagnostics.
func (o *Overrides) Label() string {
	return o.label
}

func (o *Overrides) Component(c *shadowsrc.Component) (fileset.Source, bool) {
	source, ok := o.components[c]
	return source, ok
}

func (o *Overrides) SetComponent(c *shadowsrc.Component, source fileset.Source) {
	o.components[c] = source
}

func (o *Overrides) Binary(b *shadowsrc.Binary) (fileset.Source, bool) {
	source, ok := o.binaries[b]
	return source, ok
}

func (o *Overrides) SetBinary(b *shadowsrc.Binary, source fileset.Source) {
	o.binaries[b] = source
}

// ComponentSource returns the override of c, or its built-in C++ source.
func (o *Overrides) ComponentSource(c *shadowsrc.Component) fileset.Source {
	if source, ok := o.components[c]; ok {
		return source
	}
	return c.CppSource()
}

// BinarySource returns the override of b, or its built-in C++ source.
func (o *Overrides) BinarySource(b *shadowsrc.Binary) fileset.Source {
	if source, ok := o.binaries[b]; ok {
		return source
	}
	return b.CppSource()
}
