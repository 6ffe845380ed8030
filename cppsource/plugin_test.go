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
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/shadowsrc"
	"github.com/google/shadowsrc/fileset"
)

func taskFiles(t *testing.T, ctx *shadowsrc.Context, name string) []string {
	t.Helper()
	task, err := ctx.Task(ctx, name)
	require.NoError(t, err)
	return files(t, task.Source())
}

func TestApply(t *testing.T) {
	ctx := newContext(io.Discard,
		"src/app/cpp/a.cxx",
		"src/app/cpp/main.cpp",
		"src/app/cpp/b.txt",
		"test/runner.cpp")

	report := Apply(ctx, newResolver(t))

	app, err := ctx.AddComponent("app")
	require.NoError(t, err)
	_, err = app.AddBinary("mainDebug")
	require.NoError(t, err)
	_, err = app.AddBinary("testRunnerExecutable", shadowsrc.WithSource(fileset.Paths{"test/runner.cpp"}))
	require.NoError(t, err)
	require.Empty(t, ctx.Errs())

	assert.Equal(t, []string{"src/app/cpp/a.cxx", "src/app/cpp/main.cpp"},
		taskFiles(t, ctx, "compileDebugCpp"))
	assert.Equal(t, []string{"src/app/cpp/a.cxx", "src/app/cpp/main.cpp", "test/runner.cpp"},
		taskFiles(t, ctx, "compileTestRunnerCpp"))

	entries := report.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "compileDebugCpp", entries[0].Task)
	assert.Equal(t, Wired, entries[0].Result)
	assert.Equal(t, "compileTestRunnerCpp", entries[1].Task)
	assert.Empty(t, report.Skipped())
}

func TestApply_existingAndLateRegistrations(t *testing.T) {
	ctx := newContext(io.Discard, "src/early/cpp/e.cxx", "src/late/cpp/l.cxx")

	early, _ := ctx.AddComponent("early")
	_, err := early.AddBinary("earlyExecutable")
	require.NoError(t, err)

	report := Apply(ctx, newResolver(t))

	// Registered after the component was first configured.
	_, err = early.AddBinary("earlyToolExecutable")
	require.NoError(t, err)

	late, _ := ctx.AddComponent("late")
	_, err = late.AddBinary("lateExecutable")
	require.NoError(t, err)
	require.Empty(t, ctx.Errs())

	assert.Equal(t, []string{"src/early/cpp/e.cxx"}, taskFiles(t, ctx, "compileEarlyCpp"))
	assert.Equal(t, []string{"src/early/cpp/e.cxx"}, taskFiles(t, ctx, "compileEarlyToolCpp"))
	assert.Equal(t, []string{"src/late/cpp/l.cxx"}, taskFiles(t, ctx, "compileLateCpp"))

	var tasks []string
	for _, e := range report.Entries() {
		tasks = append(tasks, e.Task)
	}
	assert.Equal(t, []string{"compileEarlyCpp", "compileEarlyToolCpp", "compileLateCpp"}, tasks)
}

func TestApply_finalizedInputDoesNotAffectOthers(t *testing.T) {
	var logs bytes.Buffer
	ctx := newContext(&logs, "src/app/cpp/a.cxx")
	report := Apply(ctx, newResolver(t))

	app, _ := ctx.AddComponent("app")
	_, err := app.AddBinary("mainDebug")
	require.NoError(t, err)
	_, err = app.AddBinary("mainRelease", shadowsrc.WithFinalizedCompileInput())
	require.NoError(t, err)
	_, err = app.AddBinary("mainProfile")
	require.NoError(t, err)

	assert.Empty(t, ctx.Errs(), "contention is not reported as an error")
	assert.Equal(t, []string{"src/app/cpp/a.cxx"}, taskFiles(t, ctx, "compileDebugCpp"))
	assert.Empty(t, taskFiles(t, ctx, "compileReleaseCpp"))
	assert.Equal(t, []string{"src/app/cpp/a.cxx"}, taskFiles(t, ctx, "compileProfileCpp"))

	skipped := report.Skipped()
	require.Len(t, skipped, 1)
	assert.Equal(t, "mainRelease", skipped[0].Binary.Name())
	assert.Equal(t, InputFinalized, skipped[0].Result)
	assert.Contains(t, logs.String(), "to task ':compileReleaseCpp'")
	assert.NotContains(t, logs.String(), "compileDebugCpp")
}

func TestApply_binaryDirectorySource(t *testing.T) {
	ctx := newContext(io.Discard, "src/app/cpp/a.cxx", "extra/x.cpp", "extra/y.cxx")
	Apply(ctx, newResolver(t))

	app, _ := ctx.AddComponent("app")
	_, err := app.AddBinary("mainDebug", shadowsrc.WithSource(fileset.Paths{"extra"}))
	require.NoError(t, err)
	require.Empty(t, ctx.Errs())

	assert.Equal(t, []string{"extra/x.cpp", "src/app/cpp/a.cxx"}, taskFiles(t, ctx, "compileDebugCpp"),
		"a declared directory contributes the files beneath it, not itself")
}

func TestApply_declaredSourceAfterRegistration(t *testing.T) {
	ctx := newContext(io.Discard, "src/app/cpp/ignored.cxx", "vendor/v.cxx", "vendor/v.cpp")
	Apply(ctx, newResolver(t))

	app, _ := ctx.AddComponent("app")
	_, err := app.AddBinary("mainDebug")
	require.NoError(t, err)

	require.NoError(t, app.Source().From(fileset.Paths{"vendor"}))

	assert.Equal(t, []string{"vendor/v.cpp", "vendor/v.cxx"}, taskFiles(t, ctx, "compileDebugCpp"))
}
