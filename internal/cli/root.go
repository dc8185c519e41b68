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

// Package cli provides the Cobra command structure for mdrtf.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"zombiezen.com/go/mdrtf"
	"zombiezen.com/go/mdrtf/internal/config"
	"zombiezen.com/go/mdrtf/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalOptions holds the values of the persistent flags.
type globalOptions struct {
	debug      bool
	configPath string
}

// NewRootCommand creates the root mdrtf command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	opts := new(globalOptions)
	rootCmd := &cobra.Command{
		Use:   "mdrtf",
		Short: "Convert Markdown to rich text",
		Long: `mdrtf converts a small subset of Markdown into RTF
that can be displayed by any rich text control.

It understands headings, nested ordered and unordered lists,
emphasis, strong emphasis, code spans, and inline links.
Malformed constructs are kept as literal text.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if opts.debug {
				logging.SetLevel("debug")
			}
			cmd.SetContext(logging.WithLogger(cmd.Context(), logging.Default()))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config file")

	rootCmd.AddCommand(newRenderCommand(opts))
	rootCmd.AddCommand(newTreeCommand())
	rootCmd.AddCommand(newConfigCommand(opts))
	rootCmd.AddCommand(newVersionCommand(info))
	return rootCmd
}

// loadConfig resolves the renderer configuration for a command.
func (opts *globalOptions) loadConfig(ctx context.Context) (mdrtf.Config, error) {
	result, err := config.Load(ctx, config.LoadOptions{ExplicitPath: opts.configPath})
	if err != nil {
		return mdrtf.Config{}, err
	}
	if result.LoadedFrom != "" {
		logging.FromContext(ctx).Debug("Loaded configuration", logging.FieldConfig, result.LoadedFrom)
	}
	return result.Config, nil
}

// parseInput parses the Markdown file named by args
// or standard input if args is empty.
func parseInput(cmd *cobra.Command, args []string) (*mdrtf.Document, error) {
	var r io.Reader = cmd.InOrStdin()
	name := "-"
	if len(args) > 0 && args[0] != "-" {
		name = args[0]
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	doc, err := mdrtf.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	logging.FromContext(cmd.Context()).Debug("Parsed input",
		logging.FieldInput, name,
		logging.FieldNodes, countNodes(doc),
	)
	return doc, nil
}

func countNodes(doc *mdrtf.Document) int {
	n := 0
	mdrtf.Walk(doc.AsNode(), &mdrtf.WalkOptions{
		Pre: func(*mdrtf.Cursor) bool {
			n++
			return true
		},
	})
	return n
}
