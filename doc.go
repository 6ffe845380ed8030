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

// Package shadowsrc models the configuration phase of a native build: the C++
// components of one project, the binaries (variants) produced from each
// component, and the compile task that turns a binary's sources into objects.
//
// A Context holds everything registered during one configuration pass.  Each
// collection on it is live: logic registered with ConfigureEach runs for every
// element already present and for every element added later in the same pass,
// in registration order.  This lets extensions describe "for every component,
// and for every binary of it" without caring about the order in which the
// project description registers them.
//
// Source files are never listed during configuration.  Components, binaries
// and compile tasks carry fileset Collections that are evaluated only when a
// consumer asks for their files, for example just before compilation.
//
//	ctx := shadowsrc.NewContext("path/to/project")
//	ctx.Components().ConfigureEach(func(c *shadowsrc.Component) error {
//	    c.Binaries().ConfigureEach(func(b *shadowsrc.Binary) error {
//	        ...
//	    })
//	    return nil
//	})
//	app, _ := ctx.AddComponent("app")
//	app.AddBinary("mainDebug")
//
// Errors that extensions return from configuration logic are collected on the
// Context and reported together by Errs once the pass is over.
package shadowsrc
