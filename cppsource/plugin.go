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
)

// An Entry records how one binary was wired.
type Entry struct {
	Binary *shadowsrc.Binary
	Task   string
	Result WireResult
}

// A Report lists the binaries handled by Apply, in the order they were
// configured.  It grows as binaries are added to the Context.
type Report struct {
	entries []Entry
}

func (r *Report) Entries() []Entry {
	return append([]Entry(nil), r.entries...)
}

// Skipped returns the entries whose compile task input was already
// finalized.
func (r *Report) Skipped() []Entry {
	var skipped []Entry
	for _, e := range r.entries {
		if e.Result == InputFinalized {
			skipped = append(skipped, e)
		}
	}
	return skipped
}

// Apply registers r with ctx: every component, present or added later, gets
// its source resolved, and then every binary of it, present or added later,
// gets its source resolved and republished to its compile task.  Errors are
// reported through ctx.Errs.
func Apply(ctx *shadowsrc.Context, r *Resolver) *Report {
	report := &Report{}

	ctx.Components().ConfigureEach(func(c *shadowsrc.Component) error {
		r.ResolveComponentSource(c)

		c.Binaries().ConfigureEach(func(b *shadowsrc.Binary) error {
			if _, err := r.ResolveBinarySource(b); err != nil {
				return err
			}

			result, err := r.Republish(b)
			if err != nil {
				return err
			}

			report.entries = append(report.entries, Entry{
				Binary: b,
				Task:   b.CompileTaskName(),
				Result: result,
			})
			return nil
		})
		return nil
	})

	return report
}
