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

// A DomainSet is a live, insertion-ordered set of configuration objects of one
// kind.  Actions registered with ConfigureEach run once for every element, no
// matter whether the element was added before or after the action was
// registered.  For a given element, actions run in registration order.
//
// Errors returned by actions do not stop other actions or elements; they are
// handed to the owning Context, which reports them from Errs.
type DomainSet[T any] struct {
	elems   []T
	actions []func(T) error
	report  func(error)
}

func newDomainSet[T any](report func(error)) *DomainSet[T] {
	return &DomainSet[T]{report: report}
}

// ConfigureEach registers action for every current and future element.
func (s *DomainSet[T]) ConfigureEach(action func(T) error) {
	s.actions = append(s.actions, action)

	// Elements added while action runs are covered by add, so only visit the
	// ones present now.
	n := len(s.elems)
	for i := 0; i < n; i++ {
		s.run(action, s.elems[i])
	}
}

// All returns the elements added so far, in insertion order.
func (s *DomainSet[T]) All() []T {
	return append([]T(nil), s.elems...)
}

func (s *DomainSet[T]) add(elem T) {
	s.elems = append(s.elems, elem)

	// Actions registered by these actions already visited elem.
	n := len(s.actions)
	for i := 0; i < n; i++ {
		s.run(s.actions[i], elem)
	}
}

func (s *DomainSet[T]) run(action func(T) error, elem T) {
	if err := action(elem); err != nil {
		s.report(err)
	}
}
