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
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/google/shadowsrc"
	"github.com/google/shadowsrc/cppsource"
	"github.com/google/shadowsrc/projectfile"
)

// taskResult is one line of the resolve output.
type taskResult struct {
	Task      string   `json:"task"`
	Component string   `json:"component"`
	Binary    string   `json:"binary"`
	Result    string   `json:"result"`
	Files     []string `json:"files"`

	wire cppsource.WireResult
}

func newResolveCmd(opts *globalOptions) *cobra.Command {
	var (
		projectPath string
		jsonOutput  bool
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve and print the inputs of every compile task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := resolve(cmd.ErrOrStderr(), opts, projectPath)
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), results)
			}
			printResults(cmd.OutOrStdout(), results)
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectPath, "project", "p", projectfile.DefaultFileName, "project description")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	return cmd
}

// resolve loads the project, applies the resolver before any component is
// registered and lists the input of every compile task.  Logs go to logOut.
func resolve(logOut io.Writer, opts *globalOptions, projectPath string) ([]taskResult, error) {
	settings, configFile, err := opts.settings()
	if err != nil {
		return nil, err
	}
	logger := opts.logger(logOut, settings)
	if configFile != "" {
		logger.Debug("loaded settings", "file", configFile)
	}

	f, err := projectfile.Load(projectPath)
	if err != nil {
		return nil, err
	}
	ctx := f.NewContext(shadowsrc.WithLogger(logger))

	r, err := cppsource.NewResolver(settings.ResolverOptions())
	if err != nil {
		return nil, err
	}
	report := cppsource.Apply(ctx, r)

	if err := f.Populate(ctx); err != nil {
		return nil, err
	}
	if errs := ctx.Errs(); len(errs) > 0 {
		for _, err := range errs {
			logger.Error(err)
		}
		return nil, fmt.Errorf("%s: %d configuration error(s)", ctx, len(errs))
	}

	var results []taskResult
	for _, e := range report.Entries() {
		task, err := e.Binary.CompileTask()
		if err != nil {
			return nil, err
		}
		files, err := task.Files()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", task, err)
		}
		logger.Debug("resolved", "task", task.Name(), "files", len(files))

		results = append(results, taskResult{
			Task:      e.Task,
			Component: e.Binary.Component().Name(),
			Binary:    e.Binary.Name(),
			Result:    e.Result.String(),
			Files:     relativePaths(ctx.Dir(), files),
			wire:      e.Result,
		})
	}
	return results, nil
}

// relativePaths shortens paths below dir.  Paths outside of it are kept.
func relativePaths(dir string, paths []string) []string {
	rel := make([]string, len(paths))
	for i, p := range paths {
		if r, err := filepath.Rel(dir, p); err == nil && filepath.IsLocal(r) {
			rel[i] = r
		} else {
			rel[i] = p
		}
	}
	return rel
}

func printResults(w io.Writer, results []taskResult) {
	for _, res := range results {
		_, _ = taskColor.Fprintf(w, "%s", res.Task)
		_, _ = dimColor.Fprintf(w, " (%s:%s) ", res.Component, res.Binary)
		_, _ = resultColor(res.wire).Fprintln(w, res.Result)
		for _, file := range res.Files {
			fmt.Fprintf(w, "  %s\n", file)
		}
	}
}
