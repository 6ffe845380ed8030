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

// Package config loads the settings of the source resolver.
//
// Settings come from, in increasing priority: built-in defaults, a TOML
// config file, and SHADOWSRC_* environment variables.  Without an explicit
// path the file is looked up as shadowsrc.toml in the working directory, and
// a missing file is not an error.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"github.com/google/shadowsrc/cppsource"
)

const (
	// FileName is the config file name without extension.
	FileName = "shadowsrc"
	// FileType is the config file format.
	FileType = "toml"
	// EnvPrefix prefixes the environment variables overriding settings.
	EnvPrefix = "SHADOWSRC"
)

// Settings are the effective resolver settings.
type Settings struct {
	// Extensions added on top of the host's own, without the leading dot.
	Extensions []string `mapstructure:"extensions" json:"extensions"`
	// Label of the override slot.
	Label string `mapstructure:"label" json:"label"`
	// ConventionDir is scanned for components without declared source.
	ConventionDir string `mapstructure:"convention_dir" json:"convention_dir"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level" json:"log_level"`
}

// Default returns the built-in settings.
func Default() Settings {
	opts := cppsource.DefaultOptions()
	return Settings{
		Extensions:    opts.Extensions,
		Label:         opts.Label,
		ConventionDir: opts.ConventionDir,
		LogLevel:      log.WarnLevel.String(),
	}
}

// Load reads the settings.  An empty path searches the working directory for
// shadowsrc.toml; an explicit path must exist.  The returned string is the
// config file used, or empty when there was none.
func Load(path string) (*Settings, string, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault("extensions", defaults.Extensions)
	v.SetDefault("label", defaults.Label)
	v.SetDefault("convention_dir", defaults.ConventionDir)
	v.SetDefault("log_level", defaults.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigType(FileType)
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, "", fmt.Errorf("failed to read config: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, "", fmt.Errorf("invalid config %s: %w", v.ConfigFileUsed(), err)
	}

	return &s, v.ConfigFileUsed(), nil
}

// Validate checks s without applying defaults.
func (s *Settings) Validate() error {
	if len(s.Extensions) == 0 {
		return errors.New("extensions: at least one extension is required")
	}
	for _, ext := range s.Extensions {
		if ext == "" || strings.ContainsAny(ext, "./\\") {
			return fmt.Errorf("extensions: %q is not a bare file extension", ext)
		}
	}
	if !strings.Contains(s.ConventionDir, "{name}") {
		return fmt.Errorf("convention_dir: %q does not contain {name}", s.ConventionDir)
	}
	if _, err := log.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// Level returns the parsed log level.
func (s *Settings) Level() log.Level {
	level, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		return log.WarnLevel
	}
	return level
}

// ResolverOptions converts s into cppsource.Options.
func (s *Settings) ResolverOptions() cppsource.Options {
	return cppsource.Options{
		Extensions:    append([]string(nil), s.Extensions...),
		Label:         s.Label,
		ConventionDir: s.ConventionDir,
	}
}
