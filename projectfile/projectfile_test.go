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

package projectfile

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/shadowsrc"
	"github.com/google/shadowsrc/cppsource"
	"github.com/google/shadowsrc/pathtools"
)

const demoProject = `
name = "demo"

[[components]]
name = "app"

  [[components.binaries]]
  name = "mainDebug"

  [[components.binaries]]
  name = "testRunnerExecutable"
  source = ["test/runner.cpp"]

[[components]]
name = "core"
source = ["lib"]

  [[components.binaries]]
  name = "coreExecutable"
  finalized = true
`

func TestParse(t *testing.T) {
	f, err := Parse(strings.NewReader(demoProject))
	require.NoError(t, err)

	assert.Equal(t, &File{
		Name: "demo",
		Components: []Component{
			{
				Name: "app",
				Binaries: []Binary{
					{Name: "mainDebug"},
					{Name: "testRunnerExecutable", Source: []string{"test/runner.cpp"}},
				},
			},
			{
				Name:     "core",
				Source:   []string{"lib"},
				Binaries: []Binary{{Name: "coreExecutable", Finalized: true}},
			},
		},
	}, f)
}

func TestParse_errors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown key", "name = \"demo\"\nversion = 2\n", "unknown keys"},
		{"unknown nested key", "[[components]]\nname = \"app\"\nsrc = []\n", "unknown keys"},
		{"syntax", "name = \n", ""},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(test.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.want)
		})
	}
}

func TestLoad_resolvesDir(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("dir = \"native\"\n"), 0666))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "native"), f.Dir)

	ctx := f.NewContext()
	assert.Equal(t, filepath.Join(root, "native"), ctx.Dir())
	assert.Equal(t, "native", ctx.Name())

	_, err = Load(filepath.Join(root, "missing.toml"))
	assert.Error(t, err)
}

func TestPopulate(t *testing.T) {
	f, err := Parse(strings.NewReader(demoProject))
	require.NoError(t, err)

	ctx := f.NewContext(
		shadowsrc.WithFileSystem(pathtools.MockFs(map[string][]byte{
			"src/app/cpp/a.cxx":  nil,
			"src/app/cpp/b.cpp":  nil,
			"src/core/cpp/x.cxx": nil,
			"lib/core.cxx":       nil,
			"lib/core.cc":        nil,
			"test/runner.cpp":    nil,
		})),
		shadowsrc.WithLogger(log.New(io.Discard)))
	assert.Equal(t, "demo", ctx.Name())

	r, err := cppsource.NewResolver(cppsource.DefaultOptions())
	require.NoError(t, err)
	report := cppsource.Apply(ctx, r)

	require.NoError(t, f.Populate(ctx))
	require.Empty(t, ctx.Errs())

	taskFiles := func(name string) []string {
		task, err := ctx.Task(ctx, name)
		require.NoError(t, err)
		files, err := task.Files()
		require.NoError(t, err)
		return files
	}

	assert.Equal(t, []string{"src/app/cpp/a.cxx", "src/app/cpp/b.cpp"}, taskFiles("compileDebugCpp"))
	assert.Equal(t, []string{"src/app/cpp/a.cxx", "src/app/cpp/b.cpp", "test/runner.cpp"},
		taskFiles("compileTestRunnerCpp"))
	assert.Empty(t, taskFiles("compileCoreCpp"), "finalized input keeps only the binary's own source")

	core, ok := ctx.Component("core")
	require.True(t, ok)
	resolved, ok := r.Overrides().Component(core)
	require.True(t, ok)
	files, err := resolved.Files()
	require.NoError(t, err)
	assert.Equal(t, []string{"lib/core.cc", "lib/core.cxx"}, files)

	require.Len(t, report.Entries(), 3)
	require.Len(t, report.Skipped(), 1)
	assert.Equal(t, "compileCoreCpp", report.Skipped()[0].Task)
}

func TestPopulate_binaryDirectory(t *testing.T) {
	f, err := Parse(strings.NewReader(`
[[components]]
name = "app"

  [[components.binaries]]
  name = "mainDebug"
  source = ["extra"]
`))
	require.NoError(t, err)

	ctx := f.NewContext(
		shadowsrc.WithFileSystem(pathtools.MockFs(map[string][]byte{
			"extra/x.cpp":     nil,
			"extra/y.cxx":     nil,
			"extra/notes.txt": nil,
		})),
		shadowsrc.WithLogger(log.New(io.Discard)))
	require.NoError(t, f.Populate(ctx))

	task, err := ctx.Task(ctx, "compileDebugCpp")
	require.NoError(t, err)
	files, err := task.Files()
	require.NoError(t, err)
	assert.Equal(t, []string{"extra/x.cpp"}, files)
}

func TestPopulate_duplicates(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{
			name:    "component",
			content: "[[components]]\nname = \"app\"\n[[components]]\nname = \"app\"\n",
		},
		{
			name: "task",
			content: "[[components]]\nname = \"app\"\n" +
				"[[components.binaries]]\nname = \"mainDebug\"\n" +
				"[[components.binaries]]\nname = \"debugExecutable\"\n",
		},
		{
			name:    "malformed binary",
			content: "[[components]]\nname = \"app\"\n[[components.binaries]]\nname = \"main-debug\"\n",
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			f, err := Parse(strings.NewReader(test.content))
			require.NoError(t, err)

			ctx := f.NewContext(
				shadowsrc.WithFileSystem(pathtools.MockFs(nil)),
				shadowsrc.WithLogger(log.New(io.Discard)))
			assert.Error(t, f.Populate(ctx))
		})
	}
}
