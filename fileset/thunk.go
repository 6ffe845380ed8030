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

package fileset

// A Thunk describes a value that is computed only when it is read.  Every
// call to Get runs the computation again, so the value reflects whatever state
// the computation observes at that moment.  A memoized Thunk keeps the first
// successful result instead; failed computations are never cached.
type Thunk[T any] struct {
	compute func() (T, error)

	memoize bool
	done    bool
	value   T
}

// NewThunk returns a Thunk that runs compute on every Get.
func NewThunk[T any](compute func() (T, error)) *Thunk[T] {
	return &Thunk[T]{compute: compute}
}

// Memoize makes t cache its first successful result and returns t.
func (t *Thunk[T]) Memoize() *Thunk[T] {
	t.memoize = true
	return t
}

// Get forces the computation.
func (t *Thunk[T]) Get() (T, error) {
	if t.done {
		return t.value, nil
	}

	value, err := t.compute()
	if err != nil {
		var zero T
		return zero, err
	}

	if t.memoize {
		t.value = value
		t.done = true
	}
	return value, nil
}
