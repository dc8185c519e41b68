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
	"bytes"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const (
	defaultHeader = `{\rtf1\ansi\ansicpg1252\deff0\deflang1033` + "\n" +
		`{\fonttbl{\f0\fswiss\fcharset0 Segoe UI;}{\f1\fmodern\fcharset0 Courier New;}{\f2\ftech\fcharset2 Symbol;}}` + "\n" +
		`{\colortbl\red255\green255\blue255;\red47\green79\blue79;\red0\green0\blue139;}` + "\n"
	defaultFooter = `\pard \sb100 \sa100 \fs20 \cf1 \par` + "\n" + `}`
)

func TestRenderRTF(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		// want is the document body between the tables and the trailing paragraph.
		want string
	}{
		{
			name:     "Empty",
			markdown: "",
			want:     "",
		},
		{
			name:     "Heading",
			markdown: "# H",
			want:     `\pard \sb100 \sa100 \fs32 \cf1 \b H\b0 \par` + "\n",
		},
		{
			name:     "HeadingSizes",
			markdown: "## a\n###### b",
			want: `\pard \sb100 \sa100 \fs28 \cf1 \b a\b0 \par` + "\n" +
				`\pard \sb100 \sa100 \fs20 \cf1 \b b\b0 \par` + "\n",
		},
		{
			name:     "Strong",
			markdown: "Some **bold** text",
			want:     `\pard \sb100 \sa100 \fs20 \cf1 Some \b bold\b0  text\par` + "\n",
		},
		{
			name:     "Simple",
			markdown: "*it*",
			want:     `\pard \sb100 \sa100 \fs20 \cf1 \i it\i0 \par` + "\n",
		},
		{
			name:     "Code",
			markdown: "`c`",
			want:     `\pard \sb100 \sa100 \fs20 \cf1 \f1 c\f0 \par` + "\n",
		},
		{
			name:     "Link",
			markdown: "[x](http://y)",
			want: `\pard \sb100 \sa100 \fs20 \cf1 ` +
				`{\field{\*\fldinst{HYPERLINK "http://y"}}{\fldrslt{\ul \cf2 x\cf1 \ulnone }}}\par` + "\n",
		},
		{
			name:     "ParagraphBreaks",
			markdown: "a\n\n\nb",
			want: `\pard \sb100 \sa100 \fs20 \cf1 a\par` + "\n" +
				`\pard \sb100 \sa100 \fs20 \cf1 b\par` + "\n",
		},
		{
			name:     "Escaping",
			markdown: `a\b {c}`,
			want:     `\pard \sb100 \sa100 \fs20 \cf1 a\\b \{c\}\par` + "\n",
		},
		{
			name:     "UnorderedListItem",
			markdown: "- a",
			want: `\pard \sb50 \sa50 \fs20 \cf1 ` +
				`{\pntext\f2\'B7\tab}{\*\pn\pnlvlblt\pnf2\pnindent0{\pntxtb\'B7}}\fi-270 \li360 ` +
				`a\par` + "\n",
		},
		{
			name:     "NestedListItem",
			markdown: "1. a\n\n   - b",
			want: `\pard \sb50 \sa50 \fs20 \cf1 ` +
				`{\pntext 1.\tab}{\*\pn\pnlvlbody\pnindent0\pnstart1\pndec{\pntxta.}}\fi-270 \li360 ` +
				`a\par` + "\n" +
				`\pard \sb50 \sa50 \fs20 \cf1 ` +
				`{\pntext\f2\'B7\tab}{\*\pn\pnlvlblt\pnf2\pnindent0{\pntxtb\'B7}}\fi-270 \li720 ` +
				`b\par` + "\n",
		},
		{
			name:     "ListItemContinuationParagraph",
			markdown: "- a\n\n  b",
			want: `\pard \sb50 \sa50 \fs20 \cf1 ` +
				`{\pntext\f2\'B7\tab}{\*\pn\pnlvlblt\pnf2\pnindent0{\pntxtb\'B7}}\fi-270 \li360 ` +
				`a\par` + "\n" +
				`\pard \sb100 \sa100 \fs20 \cf1 \fi0 \li360 b\par` + "\n",
		},
		{
			name:     "HeadingLineInsideListItem",
			markdown: "- a\n  # b",
			want: `\pard \sb50 \sa50 \fs20 \cf1 ` +
				`{\pntext\f2\'B7\tab}{\*\pn\pnlvlblt\pnf2\pnindent0{\pntxtb\'B7}}\fi-270 \li360 ` +
				`a # b\par` + "\n",
		},
		{
			name:     "ParagraphContinuesWithListLine",
			markdown: "a\n- b",
			want:     `\pard \sb100 \sa100 \fs20 \cf1 a - b\par` + "\n",
		},
		{
			name:     "ParagraphBeforeList",
			markdown: "a\n\n- b",
			want: `\pard \sb100 \sa100 \fs20 \cf1 a\par` + "\n" +
				`\pard \sb50 \sa50 \fs20 \cf1 ` +
				`{\pntext\f2\'B7\tab}{\*\pn\pnlvlblt\pnf2\pnindent0{\pntxtb\'B7}}\fi-270 \li360 ` +
				`b\par` + "\n",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			if err := RenderRTF(buf, ParseString(test.markdown), DefaultConfig()); err != nil {
				t.Fatal("RenderRTF:", err)
			}
			want := defaultHeader + test.want + defaultFooter
			if diff := cmp.Diff(want, buf.String()); diff != "" {
				t.Errorf("Input:\n%s\nOutput (-want +got):\n%s", test.markdown, diff)
			}
		})
	}
}

func TestOrderedListNumbering(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		want     []int
	}{
		{
			name:     "Sequential",
			markdown: "1. a\n1. b\n1. c",
			want:     []int{1, 2, 3},
		},
		{
			name:     "ResetByText",
			markdown: "1. a\n2. b\n\ntext\n\n1. c",
			want:     []int{1, 2, 1},
		},
		{
			name:     "ResetByUnorderedItem",
			markdown: "1. a\n- b\n1. c",
			want:     []int{1, 1},
		},
		{
			name:     "NestedListsNumberedIndependently",
			markdown: "1. a\n\n   1. x\n   2. y\n2. b",
			want:     []int{1, 1, 2, 2},
		},
	}
	pntextRE := regexp.MustCompile(`\{\\pntext ([0-9]+)\.\\tab\}`)
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			if err := RenderRTF(buf, ParseString(test.markdown), DefaultConfig()); err != nil {
				t.Fatal("RenderRTF:", err)
			}
			var got []int
			for _, m := range pntextRE.FindAllStringSubmatch(buf.String(), -1) {
				n, err := strconv.Atoi(m[1])
				if err != nil {
					t.Fatal(err)
				}
				got = append(got, n)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("Input:\n%s\nNumbers (-want +got):\n%s", test.markdown, diff)
			}
		})
	}
}

func TestRTFRendererConfig(t *testing.T) {
	cfg := Config{
		Font: "Georgia",
		Colors: ColorScheme{
			Background: Color{R: 1, G: 2, B: 3},
			Foreground: Color{R: 4, G: 5, B: 6},
			Link:       Color{R: 7, G: 8, B: 9},
		},
	}
	r := &RTFRenderer{Config: cfg}
	got := string(r.AppendDocument(nil, ParseString("x")))
	for _, want := range []string{
		`{\f0\fswiss\fcharset0 Georgia;}`,
		`{\colortbl\red1\green2\blue3;\red4\green5\blue6;\red7\green8\blue9;}`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("AppendDocument(...) = %q; want to contain %q", got, want)
		}
	}

	zero := string(new(RTFRenderer).AppendDocument(nil, ParseString("x")))
	if !strings.HasPrefix(zero, defaultHeader) {
		t.Errorf("zero RTFRenderer header = %q; want %q", zero, defaultHeader)
	}
}

func TestRTFRendererErrors(t *testing.T) {
	doc := ParseString("x")
	tests := []struct {
		name      string
		buf       *bytes.Buffer
		doc       *Document
		cfg       Config
		wantField string
	}{
		{name: "NilWriter", doc: doc, cfg: DefaultConfig(), wantField: "writer"},
		{name: "NilDocument", buf: new(bytes.Buffer), cfg: DefaultConfig(), wantField: "document"},
		{
			name:      "EmptyFont",
			buf:       new(bytes.Buffer),
			doc:       doc,
			cfg:       Config{Colors: DefaultConfig().Colors},
			wantField: "font",
		},
		{
			name:      "FontWithSemicolon",
			buf:       new(bytes.Buffer),
			doc:       doc,
			cfg:       Config{Font: "Evil;Font"},
			wantField: "font",
		},
		{
			name:      "FontWithBrace",
			buf:       new(bytes.Buffer),
			doc:       doc,
			cfg:       Config{Font: "Evil}"},
			wantField: "font",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var err error
			if test.buf == nil {
				err = RenderRTF(nil, test.doc, test.cfg)
			} else {
				err = RenderRTF(test.buf, test.doc, test.cfg)
				if test.buf.Len() > 0 {
					t.Errorf("wrote %q; want no output", test.buf)
				}
			}
			var formatErr *FormatError
			if !errors.As(err, &formatErr) {
				t.Fatalf("RenderRTF(...) = %v; want *FormatError", err)
			}
			if formatErr.Field != test.wantField {
				t.Errorf("FormatError.Field = %q; want %q", formatErr.Field, test.wantField)
			}
		})
	}
}

func TestRTFRendererWriteError(t *testing.T) {
	errBoom := errors.New("boom")
	err := RenderRTF(&errorWriter{err: errBoom}, ParseString("x"), DefaultConfig())
	if !errors.Is(err, errBoom) {
		t.Errorf("RenderRTF(...) = %v; want %v", err, errBoom)
	}
	var formatErr *FormatError
	if errors.As(err, &formatErr) {
		t.Errorf("RenderRTF(...) = %v; want a write error, not *FormatError", err)
	}
}

type errorWriter struct {
	err error
}

func (w *errorWriter) Write(p []byte) (int, error) {
	return 0, w.err
}
