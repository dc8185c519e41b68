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

	"zombiezen.com/go/mdrtf/rtf"
)

// Font table indices.
const (
	textFontIndex = iota
	codeFontIndex
	symbolFontIndex
)

// Color table indices.
const (
	backgroundColorIndex = iota
	textColorIndex
	linkColorIndex
)

const (
	codeFontName   = "Courier New"
	symbolFontName = "Symbol"

	bodyFontSize = 10

	paragraphSpacing rtf.Twips = 100
	listItemSpacing  rtf.Twips = 50

	// firstLineIndent pulls the bullet or number of a list item
	// to the left of the item's text.
	firstLineIndent rtf.Twips = -270
	// blockIndent is the left indent added per list nesting level.
	blockIndent rtf.Twips = 360
)

// headingFontSizes is indexed by heading level minus one.
var headingFontSizes = [maxHeadingLevel]int{16, 14, 13, 12, 11, 10}

// An RTFRenderer converts parsed Markdown documents into RTF.
type RTFRenderer struct {
	// Config holds the fonts and colors of the output.
	// The zero value means [DefaultConfig].
	Config Config
}

// RenderRTF writes the given document to the given writer as RTF
// using the given configuration.
func RenderRTF(w io.Writer, doc *Document, cfg Config) error {
	return (&RTFRenderer{Config: cfg}).Render(w, doc)
}

// Render writes the given document to the given writer as RTF.
// It returns a [*FormatError] if w or doc is nil
// or the renderer's configuration is invalid.
// Otherwise, it will return the first error encountered while writing, if any.
func (r *RTFRenderer) Render(w io.Writer, doc *Document) error {
	if w == nil {
		return &FormatError{Field: "writer", Reason: "nil writer"}
	}
	if doc == nil {
		return &FormatError{Field: "document", Reason: "nil document"}
	}
	if err := r.config().Validate(); err != nil {
		return err
	}
	rw := new(rtf.Writer)
	r.writeDocument(rw, doc)
	if _, err := rw.WriteTo(w); err != nil {
		return fmt.Errorf("render markdown to rtf: %w", err)
	}
	return nil
}

// AppendDocument appends the rendered RTF of a parsed document to dst
// and returns the resulting byte slice.
// Unlike [*RTFRenderer.Render], it does not validate the configuration.
func (r *RTFRenderer) AppendDocument(dst []byte, doc *Document) []byte {
	w := rtf.NewWriter(dst)
	r.writeDocument(w, doc)
	return w.Bytes()
}

func (r *RTFRenderer) writeDocument(w *rtf.Writer, doc *Document) {
	cfg := r.config()
	v := &rtfVisitor{
		w:          w,
		nextNumber: 1,
	}
	v.w.StartDocument()
	v.w.FontTable([]rtf.Font{
		textFontIndex:   {Name: cfg.Font, Family: rtf.FamilySwiss, Charset: rtf.CharsetANSI},
		codeFontIndex:   {Name: codeFontName, Family: rtf.FamilyModern, Charset: rtf.CharsetANSI},
		symbolFontIndex: {Name: symbolFontName, Family: rtf.FamilyTech, Charset: rtf.CharsetSymbol},
	})
	v.w.ColorTable([]rtf.Color{
		backgroundColorIndex: cfg.Colors.Background,
		textColorIndex:       cfg.Colors.Foreground,
		linkColorIndex:       cfg.Colors.Link,
	})
	v.children(doc.Root())

	// An empty paragraph at the end keeps the last list item
	// from hanging into whatever follows the document.
	v.startParagraph(bodyFontSize, paragraphSpacing)
	v.endParagraph()
	v.w.EndDocument()
}

func (r *RTFRenderer) config() Config {
	if r.Config == (Config{}) {
		return DefaultConfig()
	}
	return r.Config
}

// rtfVisitor holds the rendering state for one level of list nesting.
// List items are rendered by a fresh visitor one level deeper.
type rtfVisitor struct {
	w           *rtf.Writer
	level       int
	inParagraph bool
	// nextNumber is the number of the next ordered list item
	// among the children currently being visited.
	nextNumber int
}

func (v *rtfVisitor) endParagraph() {
	if v.inParagraph {
		v.inParagraph = false
		v.w.EndParagraph()
	}
}

func (v *rtfVisitor) startParagraph(fontSize int, space rtf.Twips) {
	v.endParagraph()
	v.inParagraph = true
	v.w.StartParagraph()
	v.w.SetSpaceBefore(space)
	v.w.SetSpaceAfter(space)
	v.w.SetFontSize(fontSize)
	v.w.SetFontColor(textColorIndex)
}

// continueParagraph starts a body paragraph if none is open.
// Paragraphs inside list items stay aligned with the item's text.
func (v *rtfVisitor) continueParagraph() {
	if v.inParagraph {
		return
	}
	v.startParagraph(bodyFontSize, paragraphSpacing)
	if v.level > 0 {
		v.w.SetIndent(0, rtf.Twips(v.level)*blockIndent)
	}
}

func (v *rtfVisitor) children(parent *Block) {
	for _, c := range parent.blockChildren {
		if c.Kind() != OrderedListItemKind {
			v.nextNumber = 1
			v.block(c, 0)
			continue
		}
		n := v.nextNumber
		v.nextNumber++
		v.block(c, n)
	}
	for _, c := range parent.inlineChildren {
		v.inline(c)
	}
}

// block renders b.
// number is the list number to use if b is an ordered list item.
func (v *rtfVisitor) block(b *Block, number int) {
	switch b.Kind() {
	case HeadingKind:
		v.startParagraph(headingFontSizes[b.HeadingLevel()-1], paragraphSpacing)
		v.w.SetBold(true)
		v.w.Text(b.Text())
		v.w.SetBold(false)
		v.endParagraph()
	case ParagraphBreakKind:
		v.endParagraph()
	case SpanKind:
		v.children(b)
	case OrderedListItemKind, UnorderedListItemKind:
		v.endParagraph()
		item := &rtfVisitor{
			w:          v.w,
			level:      v.level + 1,
			nextNumber: 1,
		}
		item.startParagraph(bodyFontSize, listItemSpacing)
		indent := rtf.Twips(item.level) * blockIndent
		if b.Kind() == OrderedListItemKind {
			v.w.OrderedListItem(firstLineIndent, indent, number)
		} else {
			v.w.UnorderedListItem(firstLineIndent, indent, symbolFontIndex)
		}
		item.children(b)
		item.endParagraph()
	}
}

func (v *rtfVisitor) inline(inline *Inline) {
	v.continueParagraph()
	switch inline.Kind() {
	case TextKind:
		v.w.Text(inline.Text())
	case EmphasisKind:
		switch {
		case inline.IsCode():
			v.w.SetFont(codeFontIndex)
			v.w.Text(inline.Text())
			v.w.SetFont(textFontIndex)
		case inline.IsStrong():
			v.w.SetBold(true)
			v.w.Text(inline.Text())
			v.w.SetBold(false)
		default:
			v.w.SetItalic(true)
			v.w.Text(inline.Text())
			v.w.SetItalic(false)
		}
	case LinkKind:
		v.w.StartHyperlink(NormalizeURI(inline.Href()))
		v.w.SetUnderline(true)
		v.w.SetFontColor(linkColorIndex)
		for _, c := range inline.children {
			v.inline(c)
		}
		v.w.SetFontColor(textColorIndex)
		v.w.SetUnderline(false)
		v.w.EndHyperlink()
	}
}
