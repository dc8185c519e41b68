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

import "strconv"

// Inline represents span-level content like text, links, or emphasis.
type Inline struct {
	kind  InlineKind
	text  string // text or emphasis body
	delim string // emphasis delimiter
	href  string // link destination

	// Emphasis: closing delimiter seen.
	// Link: closing parenthesis seen.
	closed bool
	// Link: closing bracket seen, accumulating the destination.
	inHref bool
	// Link: opening parenthesis of the destination seen.
	openParen bool

	children []*Inline
}

// Kind returns the type of inline node
// or zero if the node is nil.
func (inline *Inline) Kind() InlineKind {
	if inline == nil {
		return 0
	}
	return inline.kind
}

// Text returns the literal content of a [TextKind] node
// or the body of an [EmphasisKind] node.
// It returns the empty string for other nodes.
func (inline *Inline) Text() string {
	switch inline.Kind() {
	case TextKind, EmphasisKind:
		return inline.text
	default:
		return ""
	}
}

// Delimiter returns the delimiter that opened an [EmphasisKind] node
// ("*", "_", "**", or "`") or the empty string for other nodes.
func (inline *Inline) Delimiter() string {
	if inline.Kind() != EmphasisKind {
		return ""
	}
	return inline.delim
}

// IsStrong reports whether the node is strong emphasis.
func (inline *Inline) IsStrong() bool {
	return inline.Kind() == EmphasisKind && inline.delim == "**"
}

// IsCode reports whether the node is a code span.
func (inline *Inline) IsCode() bool {
	return inline.Kind() == EmphasisKind && inline.delim == "`"
}

// Href returns the destination of a [LinkKind] node
// or the empty string for other nodes.
func (inline *Inline) Href() string {
	if inline.Kind() != LinkKind {
		return ""
	}
	return inline.href
}

// ChildCount returns the number of children the node has.
// Calling ChildCount on nil returns 0.
func (inline *Inline) ChildCount() int {
	if inline == nil {
		return 0
	}
	return len(inline.children)
}

// Child returns the i'th child of the node.
func (inline *Inline) Child(i int) *Inline {
	return inline.children[i]
}

// AsNode converts the inline node to a [Node] pointer.
func (inline *Inline) AsNode() Node {
	if inline == nil {
		return Node{}
	}
	return Node{inline: inline}
}

// InlineKind is an enumeration of values returned by [*Inline.Kind].
type InlineKind uint16

const (
	TextKind InlineKind = 1 + iota
	EmphasisKind
	LinkKind
)

// String returns the name of the kind, e.g. "Emphasis".
func (kind InlineKind) String() string {
	switch kind {
	case TextKind:
		return "Text"
	case EmphasisKind:
		return "Emphasis"
	case LinkKind:
		return "Link"
	default:
		return "InlineKind(" + strconv.Itoa(int(kind)) + ")"
	}
}

func newSpanBlock(line string) *Block {
	b := &Block{kind: SpanKind}
	b.consumeSpanLine(line)
	return b
}

// consumeSpanLine tokenizes a line and feeds the tokens
// to the span's inline children.
// Once the span has content, blank lines are refused
// and any other line is joined to it with a single space,
// even if the line looks like the start of another block.
func (b *Block) consumeSpanLine(line string) bool {
	if len(b.inlineChildren) > 0 {
		if isBlankLine(line) {
			return false
		}
		line = " " + line
	}
	for tokens := Tokenize(line); len(tokens) > 0; tokens = tokens[1:] {
		offer(&b.inlineChildren, tokens, openInline)
	}
	return true
}

// consume implements the token continuation protocol.
// tokens[0] is the token to consume
// and the rest of the slice is the remainder of the line,
// available for lookahead.
func (inline *Inline) consume(tokens []Token) bool {
	tok := tokens[0]
	switch inline.kind {
	case TextKind:
		if tok.Kind != TextToken {
			return false
		}
		inline.text += tok.Value
		return true
	case EmphasisKind:
		switch {
		case inline.closed:
			return false
		case tok.isDelimiter(inline.delim):
			inline.closed = true
			return true
		case tok.Kind == TextToken:
			inline.text += tok.Value
			return true
		default:
			return false
		}
	case LinkKind:
		switch {
		case inline.closed:
			return false
		case inline.inHref:
			switch {
			case !inline.openParen && inline.href == "" && tok.isDelimiter("("):
				inline.openParen = true
			case tok.isDelimiter(")"):
				inline.closed = true
			default:
				inline.href += tok.Value
			}
			return true
		case tok.isDelimiter("]") && !inline.hasOpenLink():
			inline.inHref = true
			return true
		default:
			return offer(&inline.children, tokens, openInline)
		}
	default:
		return false
	}
}

// hasOpenLink reports whether the last child of a link body
// is a link that has not seen its closing parenthesis.
// Such a child receives tokens before the body's own "]".
func (inline *Inline) hasOpenLink() bool {
	if len(inline.children) == 0 {
		return false
	}
	last := inline.children[len(inline.children)-1]
	return last.kind == LinkKind && !last.closed
}

// openInline creates the inline node for a token
// that the last child refused.
// Delimiters that cannot start formatting become text.
func openInline(tokens []Token) (*Inline, bool) {
	tok, rest := tokens[0], tokens[1:]
	if tok.Kind == TextToken {
		return &Inline{kind: TextKind, text: tok.Value}, true
	}
	switch tok.Value {
	case "_", "*", "**", "`":
		// Emphasis must be followed immediately by text,
		// so that "a * b" keeps its asterisk.
		if len(rest) > 0 && rest[0].Kind == TextToken && rest[0].Value != "" && !isSpaceOrTab(rest[0].Value[0]) {
			return &Inline{kind: EmphasisKind, delim: tok.Value}, true
		}
	case "[":
		if hasLinkTail(rest) {
			return &Inline{kind: LinkKind}, true
		}
	}
	return &Inline{kind: TextKind, text: tok.Value}, true
}

// hasLinkTail reports whether the first "]" in tokens
// is immediately followed by "(".
func hasLinkTail(tokens []Token) bool {
	for i, tok := range tokens {
		if tok.isDelimiter("]") {
			return i+1 < len(tokens) && tokens[i+1].isDelimiter("(")
		}
	}
	return false
}

// finishInlines rewrites spans that were still open when parsing ended.
// Emphasis without a closing delimiter
// and links without a closing parenthesis
// are turned back into literal text.
func finishInlines(children []*Inline) []*Inline {
	result := make([]*Inline, 0, len(children))
	for _, c := range children {
		switch {
		case c.kind == EmphasisKind && !c.closed:
			result = append(result, &Inline{kind: TextKind, text: c.delim + c.text})
		case c.kind == LinkKind && !c.closed:
			result = append(result, &Inline{kind: TextKind, text: "["})
			result = append(result, finishInlines(c.children)...)
			if c.inHref {
				tail := "]"
				if c.openParen {
					tail += "("
				}
				result = append(result, &Inline{kind: TextKind, text: tail + c.href})
			}
		case c.kind == LinkKind:
			c.children = finishInlines(c.children)
			result = append(result, c)
		default:
			result = append(result, c)
		}
	}
	return result
}

// finishBlocks applies [finishInlines] to every span in the tree.
func finishBlocks(b *Block) {
	if b.kind == SpanKind {
		b.inlineChildren = finishInlines(b.inlineChildren)
		return
	}
	for _, c := range b.blockChildren {
		finishBlocks(c)
	}
}
