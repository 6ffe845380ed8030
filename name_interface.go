// Copyright 2017 Google Inc. All rights reserved.
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
	"sort"
)

// This file exposes the logic of locating a component or a compile task by
// name, to enable other projects to override it if desired.  The default
// implementation, SimpleNameInterface, does a simple map lookup.

// A NameInterface tells how to register and locate components and compile
// tasks by name.  There is one NameInterface per Context.
type NameInterface interface {
	// Gets called when a new component is created
	NewComponent(component *Component) error

	// Finds the component with the given name
	ComponentFromName(name string) (component *Component, found bool)

	// Gets called when a binary registers its compile task
	NewTask(task *CompileTask) error

	// Finds the compile task with the given name
	TaskFromName(name string) (task *CompileTask, found bool)

	// Returns an error indicating that the given task could not be found.
	MissingTaskError(requester fmt.Stringer, name string) error

	// Returns all components in a deterministic order.
	AllComponents() []*Component
}

// a SimpleNameInterface just stores all components and tasks in maps based on
// name
type SimpleNameInterface struct {
	components map[string]*Component
	tasks      map[string]*CompileTask
}

func NewSimpleNameInterface() *SimpleNameInterface {
	return &SimpleNameInterface{
		components: make(map[string]*Component),
		tasks:      make(map[string]*CompileTask),
	}
}

func (s *SimpleNameInterface) NewComponent(component *Component) error {
	name := component.Name()
	if _, present := s.components[name]; present {
		return fmt.Errorf("component %q already defined", name)
	}
	s.components[name] = component
	return nil
}

func (s *SimpleNameInterface) ComponentFromName(name string) (*Component, bool) {
	component, found := s.components[name]
	return component, found
}

func (s *SimpleNameInterface) NewTask(task *CompileTask) error {
	name := task.Name()
	if existing, present := s.tasks[name]; present {
		// seven characters at the start of the second line to align with the string "error: "
		return fmt.Errorf("task %q of %s already defined\n"+
			"       by %s <-- previous definition here", name, task.Binary(), existing.Binary())
	}
	s.tasks[name] = task
	return nil
}

func (s *SimpleNameInterface) TaskFromName(name string) (*CompileTask, bool) {
	task, found := s.tasks[name]
	return task, found
}

func (s *SimpleNameInterface) MissingTaskError(requester fmt.Stringer, name string) error {
	return fmt.Errorf("%s requested undefined task %q", requester, name)
}

func (s *SimpleNameInterface) AllComponents() []*Component {
	components := make([]*Component, 0, len(s.components))
	for _, component := range s.components {
		components = append(components, component)
	}
	sort.Slice(components, func(i, j int) bool {
		return components[i].Name() < components[j].Name()
	})
	return components
}
