// Copyright 2024 Ross Light
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

// Package format provides a function to format a Markdown document
// that is equivalent to the original Markdown.
package format

import (
	"io"
	"strconv"
	"strings"

	"zombiezen.com/go/mdrtf"
)

// Format writes the given document as normalized Markdown to the given writer.
// Each span is written on a single line,
// list item continuations are indented to their item's marker,
// and headings use a single space after the '#' run.
func Format(w io.Writer, doc *mdrtf.Document) error {
	ww := &errWriter{w: w}
	indents := make(map[mdrtf.Node]string)
	mdrtf.Walk(doc.AsNode(), &mdrtf.WalkOptions{
		Pre: func(c *mdrtf.Cursor) bool {
			if b := c.Node().Block(); b != nil {
				parentIndent := indents[c.Parent()]
				newIndent, ok := preBlock(ww, parentIndent, c)
				indents[c.Node()] = parentIndent + newIndent
				return ok
			}
			visitInline(ww, c.Node().Inline())
			return false
		},
		Post: func(c *mdrtf.Cursor) bool {
			if c.Node().Block().Kind() == mdrtf.SpanKind {
				ww.WriteString("\n")
			}
			return true
		},
	})
	return ww.err
}

func preBlock(w *errWriter, indent string, cursor *mdrtf.Cursor) (childrenIndent string, descend bool) {
	curr := cursor.Node().Block()
	if k := curr.Kind(); k != mdrtf.DocumentKind && k != mdrtf.ParagraphBreakKind && !continuesMarkerLine(cursor) {
		w.WriteString(indent)
	}
	switch curr.Kind() {
	case mdrtf.DocumentKind, mdrtf.SpanKind:
		return "", true
	case mdrtf.ParagraphBreakKind:
		w.WriteString("\n")
		return "", false
	case mdrtf.HeadingKind:
		// Always write the space so that empty headings stay headings.
		w.WriteString(strings.Repeat("#", curr.HeadingLevel()))
		w.WriteString(" ")
		w.WriteString(curr.Text())
		w.WriteString("\n")
		return "", false
	case mdrtf.OrderedListItemKind:
		n := curr.ListItemNumber()
		if n < 0 {
			n = 1
		}
		marker := strconv.Itoa(n) + ". "
		w.WriteString(marker)
		return strings.Repeat(" ", len(marker)), true
	case mdrtf.UnorderedListItemKind:
		w.WriteString(string(curr.Bullet()))
		w.WriteString(" ")
		return "  ", true
	default:
		return "", false
	}
}

// continuesMarkerLine reports whether the cursor is at the first child
// of a list item, which is written on the same line as the item's marker.
func continuesMarkerLine(cursor *mdrtf.Cursor) bool {
	if cursor.Index() != 0 {
		return false
	}
	switch cursor.Parent().Block().Kind() {
	case mdrtf.OrderedListItemKind, mdrtf.UnorderedListItemKind:
		return true
	default:
		return false
	}
}

func visitInline(w *errWriter, inline *mdrtf.Inline) {
	switch inline.Kind() {
	case mdrtf.TextKind:
		w.WriteString(inline.Text())
	case mdrtf.EmphasisKind:
		w.WriteString(inline.Delimiter())
		w.WriteString(inline.Text())
		w.WriteString(inline.Delimiter())
	case mdrtf.LinkKind:
		w.WriteString("[")
		for i := 0; i < inline.ChildCount(); i++ {
			visitInline(w, inline.Child(i))
		}
		w.WriteString("](")
		w.WriteString(inline.Href())
		w.WriteString(")")
	}
}

type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) WriteString(s string) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	n, w.err = io.WriteString(w.w, s)
	return n, w.err
}
