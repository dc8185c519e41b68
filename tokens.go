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
	"iter"
	"slices"
)

// A Token is a unit of span-level input:
// either a run of text or a delimiter.
// Delimiters may start formatting (for example, emphasis or a link)
// or may turn out to be literal text, depending on their context.
// Tokens are compared with ==.
type Token struct {
	Kind  TokenKind
	Value string
}

// TokenKind is an enumeration of token types.
type TokenKind uint8

const (
	TextToken TokenKind = 1 + iota
	DelimiterToken
)

// String returns "Text" or "Delimiter".
func (kind TokenKind) String() string {
	switch kind {
	case TextToken:
		return "Text"
	case DelimiterToken:
		return "Delimiter"
	default:
		return "TokenKind(?)"
	}
}

// Text returns a [TextToken] with the given value.
func Text(s string) Token {
	return Token{Kind: TextToken, Value: s}
}

// Delimiter returns a [DelimiterToken] with the given value.
func Delimiter(s string) Token {
	return Token{Kind: DelimiterToken, Value: s}
}

// String formats the token as "Kind: value".
func (tok Token) String() string {
	return tok.Kind.String() + ": " + tok.Value
}

func (tok Token) isDelimiter(value string) bool {
	return tok.Kind == DelimiterToken && tok.Value == value
}

// Tokens returns the sequence of tokens in a single line of text.
// A run of two asterisks is a single "**" delimiter.
// The characters _ ` [ ] ( ) are always single-character delimiters.
// All other characters accumulate into text tokens,
// so delimiters never appear inside a text token.
//
// The sequence is computed lazily and may be iterated more than once.
func Tokens(line string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		textStart := -1
		flush := func(end int) bool {
			if textStart < 0 || end <= textStart {
				return true
			}
			tok := Text(line[textStart:end])
			textStart = -1
			return yield(tok)
		}
		for i := 0; i < len(line); i++ {
			switch c := line[i]; c {
			case '*':
				if !flush(i) {
					return
				}
				value := "*"
				if i+1 < len(line) && line[i+1] == '*' {
					value = "**"
					i++
				}
				if !yield(Delimiter(value)) {
					return
				}
			case '_', '`', '[', ']', '(', ')':
				if !flush(i) {
					return
				}
				if !yield(Delimiter(line[i : i+1])) {
					return
				}
			default:
				if textStart < 0 {
					textStart = i
				}
			}
		}
		flush(len(line))
	}
}

// Tokenize returns the tokens in a single line of text
// as described in [Tokens].
func Tokenize(line string) []Token {
	return slices.Collect(Tokens(line))
}
