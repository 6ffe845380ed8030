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
	"strings"
	"unicode/utf8"
)

const (
	mainBinaryPrefix       = "main"
	executableBinarySuffix = "Executable"
)

// A NameError describes a component or binary name that does not follow the
// naming convention.
type NameError struct {
	Kind   string // "component" or "binary"
	Name   string
	Reason string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("invalid %s name %q: %s", e.Kind, e.Name, e.Reason)
}

// checkName accepts non-empty names made of ASCII letters, digits and '_'.
func checkName(kind, name string) error {
	if name == "" {
		return &NameError{Kind: kind, Name: name, Reason: "name is empty"}
	}
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		default:
			return &NameError{Kind: kind, Name: name,
				Reason: fmt.Sprintf("unexpected character %q at offset %d", r, i)}
		}
	}
	return nil
}

// QualifyingName returns the part of a binary name that distinguishes its
// tasks from those of the component's other binaries.  The role prefix "main"
// and the type suffix "Executable" are dropped, and the first remaining
// character is lower-cased:
//
//	mainExecutable       -> ""
//	mainDebug            -> "debug"
//	testRunnerExecutable -> "testRunner"
func QualifyingName(binaryName string) (string, error) {
	if err := checkName("binary", binaryName); err != nil {
		return "", err
	}

	name := strings.TrimPrefix(binaryName, mainBinaryPrefix)
	name = strings.TrimSuffix(name, executableBinarySuffix)
	return uncapitalize(name), nil
}

// CompileTaskName returns the name of the task compiling the C++ sources of
// the binary called binaryName, "compile" + QualifyingName + "Cpp".
func CompileTaskName(binaryName string) (string, error) {
	qualifier, err := QualifyingName(binaryName)
	if err != nil {
		return "", err
	}
	return "compile" + capitalize(qualifier) + "Cpp", nil
}

func uncapitalize(s string) string {
	if s == "" {
		return s
	}
	r, n := utf8.DecodeRuneInString(s)
	return strings.ToLower(string(r)) + s[n:]
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, n := utf8.DecodeRuneInString(s)
	return strings.ToUpper(string(r)) + s[n:]
}
