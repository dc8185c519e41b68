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

package rtf

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "Empty", text: "", want: ""},
		{name: "Plain", text: "Hello, World!", want: "Hello, World!"},
		{name: "Braces", text: `a{b}\c`, want: `a\{b\}\\c`},
		{name: "LineBreak", text: "one\ntwo", want: `one\line two`},
		{name: "Tab", text: "a\tb", want: `a\tab b`},
		{name: "Latin1", text: "café", want: `caf\u233\'e9`},
		{name: "Euro", text: "5€", want: `5\u8364\'80`},
		{name: "CJK", text: "中", want: `\u20013?`},
		{name: "Astral", text: "\U0001F600", want: `\u-10179?\u-8704?`},
		{name: "Mixed", text: "{ü}", want: `\{\u252\'fc\}`},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			w := new(Writer)
			w.Text(test.text)
			if diff := cmp.Diff(test.want, string(w.Bytes())); diff != "" {
				t.Errorf("Text(%q) (-want +got):\n%s", test.text, diff)
			}
		})
	}
}

func TestControlWords(t *testing.T) {
	tests := []struct {
		name  string
		write func(w *Writer)
		want  string
	}{
		{
			name:  "Paragraph",
			write: func(w *Writer) { w.StartParagraph(); w.Text("x"); w.EndParagraph() },
			want:  "\\pard x\\par\n",
		},
		{
			name: "Spacing",
			write: func(w *Writer) {
				w.SetSpaceBefore(100)
				w.SetSpaceAfter(50)
			},
			want: `\sb100 \sa50 `,
		},
		{
			name:  "FontSize",
			write: func(w *Writer) { w.SetFontSize(10) },
			want:  `\fs20 `,
		},
		{
			name: "Toggles",
			write: func(w *Writer) {
				w.SetBold(true)
				w.SetItalic(true)
				w.SetUnderline(true)
				w.SetUnderline(false)
				w.SetItalic(false)
				w.SetBold(false)
			},
			want: `\b \i \ul \ulnone \i0 \b0 `,
		},
		{
			name: "FontAndColor",
			write: func(w *Writer) {
				w.SetFont(1)
				w.SetFontColor(2)
			},
			want: `\f1 \cf2 `,
		},
		{
			name: "Hyperlink",
			write: func(w *Writer) {
				w.StartHyperlink(`http://x/"a"`)
				w.Text("x")
				w.EndHyperlink()
			},
			want: `{\field{\*\fldinst{HYPERLINK "http://x/%22a%22"}}{\fldrslt{x}}}`,
		},
		{
			name:  "OrderedListItem",
			write: func(w *Writer) { w.OrderedListItem(-270, 360, 3) },
			want:  `{\pntext 3.\tab}{\*\pn\pnlvlbody\pnindent0\pnstart3\pndec{\pntxta.}}\fi-270 \li360 `,
		},
		{
			name:  "UnorderedListItem",
			write: func(w *Writer) { w.UnorderedListItem(-270, 720, 2) },
			want:  `{\pntext\f2\'B7\tab}{\*\pn\pnlvlblt\pnf2\pnindent0{\pntxtb\'B7}}\fi-270 \li720 `,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			w := new(Writer)
			test.write(w)
			if diff := cmp.Diff(test.want, string(w.Bytes())); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestTables(t *testing.T) {
	w := NewWriter(nil)
	w.StartDocument()
	w.FontTable([]Font{
		{Name: "Segoe UI", Family: FamilySwiss, Charset: CharsetANSI},
		{Name: "Symbol", Family: FamilyTech, Charset: CharsetSymbol},
	})
	w.ColorTable([]Color{RGB(255, 255, 255), RGB(0, 0, 139)})
	w.EndDocument()

	const want = "{\\rtf1\\ansi\\ansicpg1252\\deff0\\deflang1033\n" +
		"{\\fonttbl{\\f0\\fswiss\\fcharset0 Segoe UI;}{\\f1\\ftech\\fcharset2 Symbol;}}\n" +
		"{\\colortbl\\red255\\green255\\blue255;\\red0\\green0\\blue139;}\n" +
		"}"
	if diff := cmp.Diff(want, string(w.Bytes())); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestWriteTo(t *testing.T) {
	w := NewWriter([]byte("prefix:"))
	w.Text("{}")
	buf := new(bytes.Buffer)
	n, err := w.WriteTo(buf)
	if err != nil {
		t.Fatal("WriteTo:", err)
	}
	const want = `prefix:\{\}`
	if got := buf.String(); got != want {
		t.Errorf("WriteTo wrote %q; want %q", got, want)
	}
	if n != int64(len(want)) {
		t.Errorf("WriteTo = %d; want %d", n, len(want))
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		s       string
		want    Color
		wantErr bool
	}{
		{s: "#ffffff", want: RGB(255, 255, 255)},
		{s: "2F4F4F", want: RGB(47, 79, 79)},
		{s: " #00008b ", want: RGB(0, 0, 139)},
		{s: "#fff", wantErr: true},
		{s: "#gg0000", wantErr: true},
		{s: "", wantErr: true},
	}
	for _, test := range tests {
		got, err := ParseColor(test.s)
		if err != nil {
			if !test.wantErr {
				t.Errorf("ParseColor(%q): %v", test.s, err)
			}
			continue
		}
		if test.wantErr {
			t.Errorf("ParseColor(%q) = %v, <nil>; want error", test.s, got)
			continue
		}
		if got != test.want {
			t.Errorf("ParseColor(%q) = %v; want %v", test.s, got, test.want)
		}
		if s := got.String(); s != "#"+lowerHex(test.want) {
			t.Errorf("%v.String() = %q", got, s)
		}
	}
}

func lowerHex(c Color) string {
	const digits = "0123456789abcdef"
	b := []byte{
		digits[c.R>>4], digits[c.R&0xf],
		digits[c.G>>4], digits[c.G&0xf],
		digits[c.B>>4], digits[c.B&0xf],
	}
	return string(b)
}
