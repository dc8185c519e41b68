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

package mdrtf

import (
	"fmt"
	"io"
	"strconv"

	"golang.org/x/net/html/atom"
)

// An HTMLRenderer converts parsed Markdown documents into HTML.
// It produces the same structure as [RTFRenderer]:
// consecutive list items of the same kind are grouped into a list,
// and list items without paragraph breaks are rendered tight.
type HTMLRenderer struct{}

// RenderHTML writes the given document to the given writer as HTML
// using the default options for [HTMLRenderer].
func RenderHTML(w io.Writer, doc *Document) error {
	return (&HTMLRenderer{}).Render(w, doc)
}

// Render writes the given document to the given writer as HTML.
// It returns a [*FormatError] if w or doc is nil.
// Otherwise, it will return the first error encountered while writing, if any.
func (r *HTMLRenderer) Render(w io.Writer, doc *Document) error {
	if w == nil {
		return &FormatError{Field: "writer", Reason: "nil writer"}
	}
	if doc == nil {
		return &FormatError{Field: "document", Reason: "nil document"}
	}
	if _, err := w.Write(r.AppendDocument(nil, doc)); err != nil {
		return fmt.Errorf("render markdown to html: %w", err)
	}
	return nil
}

// AppendDocument appends the rendered HTML of a parsed document to dst
// and returns the resulting byte slice.
func (r *HTMLRenderer) AppendDocument(dst []byte, doc *Document) []byte {
	state := &htmlState{dst: dst}
	state.blocks(doc.Root().blockChildren, false)
	return state.dst
}

type htmlState struct {
	dst []byte
}

func (r *htmlState) openTag(name atom.Atom) {
	r.dst = append(r.dst, '<')
	r.dst = append(r.dst, name.String()...)
	r.dst = append(r.dst, '>')
}

func (r *htmlState) closeTag(name atom.Atom) {
	r.dst = append(r.dst, "</"...)
	r.dst = append(r.dst, name.String()...)
	r.dst = append(r.dst, '>')
}

// blocks renders a run of sibling blocks.
// If tight is true, spans are not wrapped in paragraphs.
func (r *htmlState) blocks(children []*Block, tight bool) {
	for i := 0; i < len(children); {
		c := children[i]
		switch k := c.Kind(); k {
		case OrderedListItemKind, UnorderedListItemKind:
			end := i + 1
			for end < len(children) && children[end].Kind() == k {
				end++
			}
			r.list(children[i:end])
			i = end
			continue
		case HeadingKind:
			tagName := headingAtoms[c.HeadingLevel()-1]
			r.openTag(tagName)
			r.dst = escapeHTML(r.dst, c.Text())
			r.closeTag(tagName)
			r.dst = append(r.dst, '\n')
		case SpanKind:
			if tight {
				r.inlines(c.inlineChildren)
				if i+1 < len(children) {
					r.dst = append(r.dst, '\n')
				}
			} else {
				r.openTag(atom.P)
				r.inlines(c.inlineChildren)
				r.closeTag(atom.P)
				r.dst = append(r.dst, '\n')
			}
		}
		i++
	}
}

var headingAtoms = [maxHeadingLevel]atom.Atom{
	atom.H1,
	atom.H2,
	atom.H3,
	atom.H4,
	atom.H5,
	atom.H6,
}

// list renders a run of list items of the same kind.
func (r *htmlState) list(items []*Block) {
	tagName := atom.Ul
	if items[0].Kind() == OrderedListItemKind {
		tagName = atom.Ol
		r.dst = append(r.dst, "<ol"...)
		if n := items[0].ListItemNumber(); n >= 0 && n != 1 {
			r.dst = append(r.dst, ` start="`...)
			r.dst = strconv.AppendInt(r.dst, int64(n), 10)
			r.dst = append(r.dst, `"`...)
		}
		r.dst = append(r.dst, ">\n"...)
	} else {
		r.openTag(tagName)
		r.dst = append(r.dst, '\n')
	}
	for _, item := range items {
		tight := isTightListItem(item)
		r.openTag(atom.Li)
		if !tight {
			r.dst = append(r.dst, '\n')
		}
		r.blocks(item.blockChildren, tight)
		r.closeTag(atom.Li)
		r.dst = append(r.dst, '\n')
	}
	r.closeTag(tagName)
	r.dst = append(r.dst, '\n')
}

// isTightListItem reports whether a list item has no paragraph breaks
// between its children.
// Trailing paragraph breaks do not count.
func isTightListItem(item *Block) bool {
	children := item.blockChildren
	for len(children) > 0 && children[len(children)-1].Kind() == ParagraphBreakKind {
		children = children[:len(children)-1]
	}
	for _, c := range children {
		if c.Kind() == ParagraphBreakKind {
			return false
		}
	}
	return true
}

func (r *htmlState) inlines(children []*Inline) {
	for _, c := range children {
		r.inline(c)
	}
}

func (r *htmlState) inline(inline *Inline) {
	switch inline.Kind() {
	case TextKind:
		r.dst = escapeHTML(r.dst, inline.Text())
	case EmphasisKind:
		tagName := atom.Em
		switch {
		case inline.IsCode():
			tagName = atom.Code
		case inline.IsStrong():
			tagName = atom.Strong
		}
		r.openTag(tagName)
		r.dst = escapeHTML(r.dst, inline.Text())
		r.closeTag(tagName)
	case LinkKind:
		r.dst = append(r.dst, "<a href=\""...)
		r.dst = escapeHTML(r.dst, NormalizeURI(inline.Href()))
		r.dst = append(r.dst, "\">"...)
		r.inlines(inline.children)
		r.closeTag(atom.A)
	}
}

// escapeHTML appends the HTML-escaped version of a string to a byte slice.
func escapeHTML(dst []byte, src string) []byte {
	verbatimStart := 0
	for i, b := range src {
		switch b {
		case '&':
			dst = append(dst, src[verbatimStart:i]...)
			dst = append(dst, "&amp;"...)
			verbatimStart = i + 1
		case '\'':
			dst = append(dst, src[verbatimStart:i]...)
			// "&#39;" is shorter than "&apos;" and apos was not in HTML until HTML5.
			dst = append(dst, "&#39;"...)
			verbatimStart = i + 1
		case '<':
			dst = append(dst, src[verbatimStart:i]...)
			dst = append(dst, "&lt;"...)
			verbatimStart = i + 1
		case '>':
			dst = append(dst, src[verbatimStart:i]...)
			dst = append(dst, "&gt;"...)
			verbatimStart = i + 1
		case '"':
			dst = append(dst, src[verbatimStart:i]...)
			dst = append(dst, "&quot;"...)
			verbatimStart = i + 1
		}
	}
	if verbatimStart < len(src) {
		dst = append(dst, src[verbatimStart:]...)
	}
	return dst
}
