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

package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"zombiezen.com/go/mdrtf"
	"zombiezen.com/go/mdrtf/format"
	"zombiezen.com/go/mdrtf/internal/logging"
)

// Output formats accepted by --format.
const (
	formatRTF      = "rtf"
	formatHTML     = "html"
	formatMarkdown = "markdown"
)

func newRenderCommand(opts *globalOptions) *cobra.Command {
	var (
		outputFormat string
		outputPath   string
		font         string
	)
	cmd := &cobra.Command{
		Use:   "render [FILE]",
		Short: "Render a Markdown file",
		Long: `Render a Markdown file as RTF, HTML, or normalized Markdown.

If FILE is omitted or "-", Markdown is read from standard input.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			if font != "" {
				cfg.Font = font
			}
			doc, err := parseInput(cmd, args)
			if err != nil {
				return err
			}

			buf := new(bytes.Buffer)
			switch outputFormat {
			case formatRTF:
				err = mdrtf.RenderRTF(buf, doc, cfg)
			case formatHTML:
				err = mdrtf.RenderHTML(buf, doc)
			case formatMarkdown:
				err = format.Format(buf, doc)
			default:
				return fmt.Errorf("unknown format %q (want %s, %s, or %s)", outputFormat, formatRTF, formatHTML, formatMarkdown)
			}
			if err != nil {
				return err
			}

			n, err := writeOutput(cmd.OutOrStdout(), outputPath, buf.Bytes())
			if err != nil {
				return err
			}
			logging.FromContext(cmd.Context()).Debug("Rendered document",
				logging.FieldFormat, outputFormat,
				logging.FieldOutput, outputPathName(outputPath),
				logging.FieldBytes, n,
			)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputFormat, "format", "f", formatRTF, "output format: rtf, html, or markdown")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write output to `FILE` instead of standard output")
	cmd.Flags().StringVar(&font, "font", "", "body text font (overrides configuration)")
	return cmd
}

// writeOutput writes data to the file at path
// or to stdout if path is empty or "-".
func writeOutput(stdout io.Writer, path string, data []byte) (int, error) {
	if path == "" || path == "-" {
		return stdout.Write(data)
	}
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	n, err := f.Write(data)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return n, fmt.Errorf("write %s: %w", path, err)
	}
	return n, nil
}

func outputPathName(path string) string {
	if path == "" {
		return "-"
	}
	return path
}
