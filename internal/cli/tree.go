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
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newTreeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tree [FILE]",
		Short: "Print the parse tree of a Markdown file",
		Long: `Print the parse tree of a Markdown file, one node per line,
indented by depth.

If FILE is omitted or "-", Markdown is read from standard input.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := parseInput(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			listing := doc.String()
			if isTerminal(out) {
				listing = newTreeStyles().render(listing)
			}
			_, err = io.WriteString(out, listing)
			return err
		},
	}
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// treeStyles holds the styles for parse tree listings.
type treeStyles struct {
	block  lipgloss.Style
	inline lipgloss.Style
	text   lipgloss.Style
}

func newTreeStyles() *treeStyles {
	return &treeStyles{
		block:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		inline: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		text:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	}
}

// inlineLabels are the node labels of inline nodes.
var inlineLabels = []string{"[Text", "[Emphasis", "[Link"}

// render styles each line of a listing produced by [mdrtf.Document.String].
func (s *treeStyles) render(listing string) string {
	sb := new(strings.Builder)
	for _, line := range strings.SplitAfter(listing, "\n") {
		body := strings.TrimLeft(line, " ")
		indent := line[:len(line)-len(body)]
		body, newline := strings.CutSuffix(body, "\n")
		end := strings.IndexByte(body, ']')
		if end < 0 {
			sb.WriteString(line)
			continue
		}
		label, rest := body[:end+1], body[end+1:]
		style := s.block
		for _, prefix := range inlineLabels {
			if strings.HasPrefix(label, prefix) {
				style = s.inline
				break
			}
		}
		sb.WriteString(indent)
		sb.WriteString(style.Render(label))
		if rest != "" {
			sb.WriteString(s.text.Render(rest))
		}
		if newline {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
