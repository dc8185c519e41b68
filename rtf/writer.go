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

// Package rtf provides a low-level writer for the [Rich Text Format].
//
// A [Writer] emits control words and escaped text
// but does not check that groups, paragraphs, or toggles are balanced.
// Keeping the output well-formed is the caller's responsibility.
//
// [Rich Text Format]: https://en.wikipedia.org/wiki/Rich_Text_Format
package rtf

import (
	"io"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/bytereplacer"
	"golang.org/x/text/encoding/charmap"
)

// Twips is the native RTF length unit: 1/20 of a point.
type Twips int

var textEscaper = bytereplacer.New(
	`\`, `\\`,
	`{`, `\{`,
	`}`, `\}`,
	"\n", `\line `,
	"\t", `\tab `,
)

var fieldEscaper = bytereplacer.New(
	`\`, `\\`,
	`{`, `\{`,
	`}`, `\}`,
	`"`, `%22`,
	"\n", "",
	"\t", "",
)

// Writer accumulates RTF output in memory.
// The zero value is an empty writer ready to use.
type Writer struct {
	dst []byte
}

// NewWriter returns a writer that appends to dst.
func NewWriter(dst []byte) *Writer {
	return &Writer{dst: dst}
}

// Bytes returns the output accumulated so far.
// The slice aliases the writer's buffer.
func (w *Writer) Bytes() []byte {
	return w.dst
}

// WriteTo writes the accumulated output to dst.
func (w *Writer) WriteTo(dst io.Writer) (int64, error) {
	n, err := dst.Write(w.dst)
	return int64(n), err
}

func (w *Writer) controlWord(word string) {
	w.dst = append(w.dst, '\\')
	w.dst = append(w.dst, word...)
	w.dst = append(w.dst, ' ')
}

func (w *Writer) controlWordN(word string, n int) {
	w.dst = append(w.dst, '\\')
	w.dst = append(w.dst, word...)
	w.dst = strconv.AppendInt(w.dst, int64(n), 10)
	w.dst = append(w.dst, ' ')
}

// StartDocument opens the document group and declares the character set.
func (w *Writer) StartDocument() {
	w.dst = append(w.dst, `{\rtf1\ansi\ansicpg1252\deff0\deflang1033`...)
	w.dst = append(w.dst, '\n')
}

// EndDocument closes the document group.
func (w *Writer) EndDocument() {
	w.dst = append(w.dst, '}')
}

// FontTable writes the font table.
// Fonts are referenced by their index in the slice.
func (w *Writer) FontTable(fonts []Font) {
	w.dst = append(w.dst, `{\fonttbl`...)
	for i, f := range fonts {
		w.dst = append(w.dst, `{\f`...)
		w.dst = strconv.AppendInt(w.dst, int64(i), 10)
		w.dst = append(w.dst, `\f`...)
		w.dst = append(w.dst, f.Family.String()...)
		w.dst = append(w.dst, `\fcharset`...)
		w.dst = strconv.AppendInt(w.dst, int64(f.Charset), 10)
		w.dst = append(w.dst, ' ')
		w.dst = appendEscaped(w.dst, f.Name)
		w.dst = append(w.dst, ";}"...)
	}
	w.dst = append(w.dst, "}\n"...)
}

// ColorTable writes the color table.
// Colors are referenced by their index in the slice,
// so the first color has index 0.
func (w *Writer) ColorTable(colors []Color) {
	w.dst = append(w.dst, `{\colortbl`...)
	for _, c := range colors {
		w.dst = append(w.dst, `\red`...)
		w.dst = strconv.AppendUint(w.dst, uint64(c.R), 10)
		w.dst = append(w.dst, `\green`...)
		w.dst = strconv.AppendUint(w.dst, uint64(c.G), 10)
		w.dst = append(w.dst, `\blue`...)
		w.dst = strconv.AppendUint(w.dst, uint64(c.B), 10)
		w.dst = append(w.dst, ';')
	}
	w.dst = append(w.dst, "}\n"...)
}

// StartParagraph resets paragraph formatting.
func (w *Writer) StartParagraph() {
	w.controlWord("pard")
}

// EndParagraph ends the current paragraph.
func (w *Writer) EndParagraph() {
	w.dst = append(w.dst, `\par`...)
	w.dst = append(w.dst, '\n')
}

// SetSpaceBefore sets the space above the current paragraph.
func (w *Writer) SetSpaceBefore(space Twips) {
	w.controlWordN("sb", int(space))
}

// SetSpaceAfter sets the space below the current paragraph.
func (w *Writer) SetSpaceAfter(space Twips) {
	w.controlWordN("sa", int(space))
}

// SetIndent sets the first-line and left indent of the current paragraph.
// A negative first-line indent produces a hanging indent.
func (w *Writer) SetIndent(firstLine, left Twips) {
	w.controlWordN("fi", int(firstLine))
	w.controlWordN("li", int(left))
}

// SetFontSize sets the font size in points.
func (w *Writer) SetFontSize(points int) {
	// RTF font sizes are in half-points.
	w.controlWordN("fs", points*2)
}

// SetFont switches to the font at the given font table index.
func (w *Writer) SetFont(index int) {
	w.controlWordN("f", index)
}

// SetFontColor switches the foreground to the color at the given color table index.
func (w *Writer) SetFontColor(index int) {
	w.controlWordN("cf", index)
}

// SetBold toggles bold text.
func (w *Writer) SetBold(on bool) {
	if on {
		w.controlWord("b")
	} else {
		w.controlWord("b0")
	}
}

// SetItalic toggles italic text.
func (w *Writer) SetItalic(on bool) {
	if on {
		w.controlWord("i")
	} else {
		w.controlWord("i0")
	}
}

// SetUnderline toggles underlined text.
func (w *Writer) SetUnderline(on bool) {
	if on {
		w.controlWord("ul")
	} else {
		w.controlWord("ulnone")
	}
}

// StartHyperlink opens a HYPERLINK field pointing at target.
// The text written until [*Writer.EndHyperlink] becomes the field result,
// that is, the clickable text.
func (w *Writer) StartHyperlink(target string) {
	w.dst = append(w.dst, `{\field{\*\fldinst{HYPERLINK "`...)
	w.dst = append(w.dst, fieldEscaper.Replace([]byte(target))...)
	w.dst = append(w.dst, `"}}{\fldrslt{`...)
}

// EndHyperlink closes the field opened by [*Writer.StartHyperlink].
func (w *Writer) EndHyperlink() {
	w.dst = append(w.dst, "}}}"...)
}

// UnorderedListItem writes a bullet for the current paragraph.
// The bullet glyph is taken from the font at symbolFont,
// which is expected to be the Symbol font.
func (w *Writer) UnorderedListItem(firstLineIndent, blockIndent Twips, symbolFont int) {
	font := strconv.Itoa(symbolFont)
	w.dst = append(w.dst, `{\pntext\f`...)
	w.dst = append(w.dst, font...)
	w.dst = append(w.dst, `\'B7\tab}{\*\pn\pnlvlblt\pnf`...)
	w.dst = append(w.dst, font...)
	w.dst = append(w.dst, `\pnindent0{\pntxtb\'B7}}`...)
	w.SetIndent(firstLineIndent, blockIndent)
}

// OrderedListItem writes a decimal list number for the current paragraph.
func (w *Writer) OrderedListItem(firstLineIndent, blockIndent Twips, number int) {
	w.dst = append(w.dst, `{\pntext `...)
	w.dst = strconv.AppendInt(w.dst, int64(number), 10)
	w.dst = append(w.dst, `.\tab}{\*\pn\pnlvlbody\pnindent0\pnstart`...)
	w.dst = strconv.AppendInt(w.dst, int64(number), 10)
	w.dst = append(w.dst, `\pndec{\pntxta.}}`...)
	w.SetIndent(firstLineIndent, blockIndent)
}

// Text writes s as document text.
// Characters that are significant to RTF are escaped,
// line feeds become line breaks,
// and non-ASCII characters are written as Unicode escapes.
func (w *Writer) Text(s string) {
	w.dst = appendEscaped(w.dst, s)
}

func appendEscaped(dst []byte, s string) []byte {
	verbatimStart := 0
	for i := 0; i < len(s); {
		if s[i] < utf8.RuneSelf {
			i++
			continue
		}
		c, n := utf8.DecodeRuneInString(s[i:])
		dst = append(dst, textEscaper.Replace([]byte(s[verbatimStart:i]))...)
		dst = appendUnicode(dst, c)
		i += n
		verbatimStart = i
	}
	if verbatimStart < len(s) {
		dst = append(dst, textEscaper.Replace([]byte(s[verbatimStart:]))...)
	}
	return dst
}

// appendUnicode appends a \u escape for c
// followed by a one-byte fallback for readers that do not understand it.
func appendUnicode(dst []byte, c rune) []byte {
	fallback := "?"
	if b, ok := charmap.Windows1252.EncodeRune(c); ok {
		fallback = `\'` + string([]byte{hexDigit(b >> 4), hexDigit(b & 0x0f)})
	}
	units := []rune{c}
	if c > 0xffff {
		r1, r2 := utf16.EncodeRune(c)
		units = []rune{r1, r2}
	}
	for _, u := range units {
		// \u takes a signed 16-bit value.
		v := int64(u)
		if v > 0x7fff {
			v -= 0x10000
		}
		dst = append(dst, `\u`...)
		dst = strconv.AppendInt(dst, v, 10)
		dst = append(dst, fallback...)
	}
	return dst
}

func hexDigit(x byte) byte {
	switch {
	case x < 0xa:
		return '0' + x
	case x < 0x10:
		return 'a' + x - 0xa
	default:
		panic("out of bounds")
	}
}
