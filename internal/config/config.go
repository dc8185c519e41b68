// Copyright 2023 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package config loads the renderer configuration for the mdrtf command.
//
// Settings are resolved from, in increasing order of precedence:
// built-in defaults, a YAML configuration file,
// MDRTF_* environment variables, and command-line flags
// (applied by the caller).
package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
	"zombiezen.com/go/mdrtf"
)

const appName = "mdrtf"

// configFileNames are the file names searched for in the configuration directory,
// in order of preference.
var configFileNames = []string{"config.yaml", "config.yml"}

// LoadOptions controls configuration loading.
type LoadOptions struct {
	// ExplicitPath is a configuration file given with --config.
	// If set, the file must exist and discovery is skipped.
	ExplicitPath string

	// ConfigHome overrides the base configuration directory.
	// If empty, $XDG_CONFIG_HOME or ~/.config is used.
	ConfigHome string

	// Getenv looks up environment variables.
	// If nil, os.Getenv is used.
	Getenv func(string) string
}

// Result is the resolved configuration.
type Result struct {
	Config mdrtf.Config
	// LoadedFrom is the path of the configuration file that was read
	// or the empty string if only defaults and the environment were used.
	LoadedFrom string
}

// Load resolves the configuration.
// The returned configuration has been validated.
func Load(ctx context.Context, opts LoadOptions) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	result := &Result{Config: mdrtf.DefaultConfig()}
	path := opts.ExplicitPath
	if path == "" {
		path = discover(opts.ConfigHome, getenv)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		if err := Decode(&result.Config, data); err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
		result.LoadedFrom = path
	}
	if err := ApplyEnv(&result.Config, getenv); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := result.Config.Validate(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return result, nil
}

// discover returns the path of the first configuration file found
// in the user's configuration directory or the empty string.
func discover(configHome string, getenv func(string) string) string {
	if configHome == "" {
		configHome = getenv("XDG_CONFIG_HOME")
	}
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	for _, name := range configFileNames {
		path := filepath.Join(configHome, appName, name)
		if _, err := os.Stat(path); err == nil {
			return path
		} else if !errors.Is(err, fs.ErrNotExist) {
			// Let the read report the problem.
			return path
		}
	}
	return ""
}

// Decode overlays YAML configuration data onto cfg.
// Keys that are absent from data leave cfg unchanged.
// Unknown keys are an error.
func Decode(cfg *mdrtf.Config, data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Encode returns cfg as YAML.
func Encode(cfg mdrtf.Config) ([]byte, error) {
	buf := new(bytes.Buffer)
	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}
