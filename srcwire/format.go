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

package main

import (
	"encoding/json"
	"io"

	"github.com/fatih/color"

	"github.com/google/shadowsrc/cppsource"
)

// fatih/color disables these when stdout is not a terminal.
var (
	taskColor    = color.New(color.FgBlue, color.Bold)
	wiredColor   = color.New(color.FgGreen)
	skippedColor = color.New(color.FgYellow)
	labelColor   = color.New(color.Bold)
	dimColor     = color.New(color.FgHiBlack)
)

func resultColor(r cppsource.WireResult) *color.Color {
	if r == cppsource.Wired {
		return wiredColor
	}
	return skippedColor
}

func printLabelValue(w io.Writer, label, value string) {
	_, _ = labelColor.Fprintf(w, "%s: ", label)
	_, _ = io.WriteString(w, value+"\n")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
