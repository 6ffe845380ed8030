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

package pathtools

import (
	"reflect"
	"testing"
)

var matchTestCases = []struct {
	pattern string
	path    string
	match   bool
}{
	{"**/*.cxx", "a.cxx", true},
	{"**/*.cxx", "x/y/a.cxx", true},
	{"**/*.cxx", "a.cpp", false},
	{"**/*.cxx", "a.cxx.bak", false},
	{"*.cxx", "x/a.cxx", false},
	{"**/*.c++", "x/a.c++", true},
	{"sub/**", "sub/a/b", true},
	{"**/*.{cc,cxx}", "x/a.cc", true},
}

func TestMatch(t *testing.T) {
	for _, test := range matchTestCases {
		t.Run(test.pattern+" "+test.path, func(t *testing.T) {
			match, err := Match(test.pattern, test.path)
			if err != nil {
				t.Fatal(err)
			}
			if match != test.match {
				t.Errorf("Match(%q, %q) = %v; want: %v", test.pattern, test.path, match, test.match)
			}
		})
	}
}

func TestMatch_badPattern(t *testing.T) {
	if _, err := Match("[a", "a"); err == nil {
		t.Error("expected error for unterminated class")
	}
	if err := ValidatePatterns([]string{"**/*.cxx", "[a"}); err == nil {
		t.Error("expected ValidatePatterns to reject \"[a\"")
	}
	if err := ValidatePatterns([]string{"**/*.cxx"}); err != nil {
		t.Errorf("unexpected error: %s", err)
	}
}

func TestMatchAny(t *testing.T) {
	patterns := ExtensionPatterns([]string{"cxx", ".cc"})
	if want := []string{"**/*.cxx", "**/*.cc"}; !reflect.DeepEqual(patterns, want) {
		t.Fatalf("ExtensionPatterns = %q; want: %q", patterns, want)
	}

	for path, want := range map[string]bool{
		"a.cxx":   true,
		"b/c.cc":  true,
		"b/c.cpp": false,
	} {
		got, err := MatchAny(patterns, path)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("MatchAny(%q) = %v; want: %v", path, got, want)
		}
	}

	if got, _ := MatchAny(nil, "anything"); !got {
		t.Error("empty pattern list should match everything")
	}
}
