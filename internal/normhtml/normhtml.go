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

// Package normhtml normalizes HTML produced by the Markdown renderers
// so that tests can compare documents while ignoring whitespace
// between block elements, attribute order, and entity spelling.
package normhtml

import (
	"bytes"
	"regexp"
	"slices"
	"strings"
	"unicode"

	"go4.org/bytereplacer"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var whitespaceRE = regexp.MustCompile(`\s+`)

var htmlEscaper = bytereplacer.New(
	"&", "&amp;",
	`'`, "&apos;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
)

type attribute struct {
	key   string
	value string
}

// NormalizeHTML strips insignificant output differences from HTML.
// Runs of whitespace collapse to a single space,
// whitespace next to block tags is removed,
// and attributes are sorted by name.
func NormalizeHTML(b []byte) []byte {
	tok := html.NewTokenizerFragment(bytes.NewReader(b), "div")
	var output []byte
	last := html.StartTagToken
	var lastTag atom.Atom
	for {
		tt := tok.Next()
		switch tt {
		case html.ErrorToken:
			return bytes.TrimRightFunc(output, unicode.IsSpace)
		case html.TextToken:
			data := whitespaceRE.ReplaceAll(tok.Text(), []byte(" "))
			if isBlockTag(lastTag) {
				switch last {
				case html.StartTagToken:
					data = bytes.TrimLeftFunc(data, unicode.IsSpace)
				case html.EndTagToken:
					data = bytes.TrimSpace(data)
				}
			}
			output = append(output, htmlEscaper.Replace(data)...)
		case html.EndTagToken:
			name, _ := tok.TagName()
			tag := atom.Lookup(name)
			if isBlockTag(tag) {
				output = bytes.TrimRightFunc(output, unicode.IsSpace)
			}
			output = append(output, "</"...)
			output = append(output, name...)
			output = append(output, '>')
			lastTag = tag
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := tok.TagName()
			tag := atom.Lookup(name)
			if isBlockTag(tag) {
				output = bytes.TrimRightFunc(output, unicode.IsSpace)
			}
			output = append(output, '<')
			output = append(output, name...)
			var attrs []attribute
			for hasAttr {
				var k, v []byte
				k, v, hasAttr = tok.TagAttr()
				attrs = append(attrs, attribute{string(k), string(v)})
			}
			slices.SortFunc(attrs, func(a, b attribute) int {
				return strings.Compare(a.key, b.key)
			})
			for _, attr := range attrs {
				output = append(output, ' ')
				output = append(output, attr.key...)
				if attr.value != "" {
					output = append(output, `="`...)
					output = append(output, html.EscapeString(attr.value)...)
					output = append(output, '"')
				}
			}
			output = append(output, '>')
			lastTag = tag
		}

		last = tt
		if tt == html.SelfClosingTagToken {
			last = html.EndTagToken
		}
	}
}

func isBlockTag(tag atom.Atom) bool {
	switch tag {
	case atom.P, atom.Ul, atom.Ol, atom.Li, atom.Div, atom.Br,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return true
	default:
		return false
	}
}
