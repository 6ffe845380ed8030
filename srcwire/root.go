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
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/google/shadowsrc/config"
)

// globalOptions are the flags shared by every command.
type globalOptions struct {
	configPath string
	verbose    bool
	debug      bool
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "srcwire",
		Short: "Wire shadowed C++ sources into compile tasks",
		Long: `srcwire loads a project description, resolves the shadowed C++ sources of
every component and binary, and republishes them to the compile tasks.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "settings file (default ./"+config.FileName+"."+config.FileType+" if present)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log at info level")
	flags.BoolVar(&opts.debug, "debug", false, "log at debug level")

	cmd.AddCommand(
		newResolveCmd(opts),
		newTaskNameCmd(),
		newConfigCmd(opts),
	)
	return cmd
}

// settings loads the effective settings, honoring --config.
func (o *globalOptions) settings() (*config.Settings, string, error) {
	return config.Load(o.configPath)
}

// logger returns the diagnostics sink for w.  The level comes from the
// settings unless --verbose or --debug ask for more.
func (o *globalOptions) logger(w io.Writer, s *config.Settings) *log.Logger {
	level := s.Level()
	if o.verbose && level > log.InfoLevel {
		level = log.InfoLevel
	}
	if o.debug {
		level = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		Prefix: "srcwire",
		Level:  level,
	})
}
