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

// Package mdrtf converts a small subset of Markdown into rich text.
//
// Parsing happens in two phases,
// following the [CommonMark parsing strategy]:
//
//  1. Block-level parsing breaks the input lines into headings,
//     list items, paragraph breaks, and spans of formatted text.
//  2. Span-level parsing tokenizes the text of each span
//     and builds inline nodes for emphasis, code, and links.
//
// Both phases use the same continuation protocol:
// each unit of input (a line or a token) is first offered
// to the last open child of a node.
// If the child refuses it, the child is closed
// and a new child is opened for the unit.
//
// The supported syntax is:
//
//   - ATX headings ("# Title"), up to level 6
//   - ordered ("1. ") and unordered ("- ", "* ", "+ ") list items,
//     nested by indentation
//   - *emphasis*, _emphasis_, **strong emphasis**, and `code`
//   - [inline links](https://example.com)
//
// A paragraph ends only at a blank line,
// so a heading or list item must be preceded by a blank line
// unless it follows a heading or list item.
// In particular, nested list items start after a blank line:
//
//	- item
//
//	  - nested item
//
// The parser never fails on malformed input:
// unmatched delimiters are kept as literal text.
//
// [CommonMark parsing strategy]: https://spec.commonmark.org/0.30/#appendix-a-parsing-strategy
package mdrtf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Parse reads Markdown from r until EOF and returns its document tree.
// The only errors returned are errors from reading r.
func Parse(r io.Reader) (*Document, error) {
	var readErr error
	doc := ParseLines(func(yield func(string) bool) {
		br := bufio.NewReader(r)
		for {
			line, err := br.ReadString('\n')
			if line != "" && !yield(strings.TrimSuffix(line, "\n")) {
				return
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					readErr = err
				}
				return
			}
		}
	})
	if readErr != nil {
		return nil, fmt.Errorf("parse markdown: %w", readErr)
	}
	return doc, nil
}

// ParseString returns the document tree for the given Markdown source.
func ParseString(markdown string) *Document {
	doc, err := Parse(strings.NewReader(markdown))
	if err != nil {
		// strings.Reader never fails.
		panic(err)
	}
	return doc
}

// ParseLines returns the document tree for a sequence of lines.
// The lines should not contain line feeds.
func ParseLines(lines iter.Seq[string]) *Document {
	doc := &Document{Block: Block{kind: DocumentKind}}
	for line := range lines {
		doc.consume(normalizeLine(line))
	}
	finishBlocks(&doc.Block)
	return doc
}

// normalizeLine strips carriage returns,
// replaces NUL bytes with the Unicode replacement character,
// and converts the line to Unicode Normalization Form C.
func normalizeLine(line string) string {
	if strings.IndexByte(line, '\r') >= 0 {
		line = strings.ReplaceAll(line, "\r", "")
	}
	if strings.IndexByte(line, 0) >= 0 {
		line = strings.ReplaceAll(line, "\x00", "\ufffd")
	}
	return norm.NFC.String(line)
}
