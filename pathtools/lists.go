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
	"path/filepath"
	"sort"
)

// PrefixPaths returns a list of paths consisting of prefix joined with each
// element of paths.  The resulting paths are "clean" in the filepath.Clean
// sense.  Absolute paths are cleaned but not prefixed.
func PrefixPaths(paths []string, prefix string) []string {
	result := make([]string, len(paths))
	for i, path := range paths {
		if filepath.IsAbs(path) {
			result[i] = filepath.Clean(path)
		} else {
			result[i] = filepath.Join(prefix, path)
		}
	}
	return result
}

// SortedUniquePaths returns the cleaned paths sorted with duplicates removed.
// The input is not modified.
func SortedUniquePaths(paths []string) []string {
	if len(paths) == 0 {
		return nil
	}

	result := make([]string, len(paths))
	for i, path := range paths {
		result[i] = filepath.Clean(path)
	}
	sort.Strings(result)

	k := 1
	for i := 1; i < len(result); i++ {
		if result[i] != result[k-1] {
			result[k] = result[i]
			k++
		}
	}
	return result[:k]
}
