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
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Match reports whether path matches the doublestar pattern.  "**" matches
// any number of directories, including none, so "**/*.cxx" matches both
// "a.cxx" and "x/y/a.cxx".
func Match(pattern, path string) (bool, error) {
	if !doublestar.ValidatePattern(pattern) {
		return false, fmt.Errorf("bad pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}
	matched, err := doublestar.Match(pattern, filepath.ToSlash(path))
	if err != nil {
		return false, fmt.Errorf("bad pattern %q: %w", pattern, err)
	}
	return matched, nil
}

// MatchAny reports whether path matches at least one of patterns.  An empty
// pattern list matches everything.
func MatchAny(patterns []string, path string) (bool, error) {
	if len(patterns) == 0 {
		return true, nil
	}
	for _, pattern := range patterns {
		matched, err := Match(pattern, path)
		if err != nil {
			return false, err
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}

// ValidatePatterns returns an error naming the first pattern that is not a
// valid doublestar pattern.
func ValidatePatterns(patterns []string) error {
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("bad pattern %q: %w", pattern, doublestar.ErrBadPattern)
		}
	}
	return nil
}

// ExtensionPatterns returns one "**/*.<ext>" pattern per extension.
// Extensions are given without the leading dot.
func ExtensionPatterns(extensions []string) []string {
	patterns := make([]string, len(extensions))
	for i, ext := range extensions {
		patterns[i] = "**/*." + strings.TrimPrefix(ext, ".")
	}
	return patterns
}
