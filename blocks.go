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
	"strconv"
	"strings"
)

// maxHeadingLevel is the deepest heading level.
// Longer runs of '#' are clamped to it.
const maxHeadingLevel = 6

// A Block is a structural element in a Markdown document.
// Blocks of [SpanKind] hold inline children;
// all other blocks hold block children.
type Block struct {
	kind   BlockKind
	text   string // heading text
	level  int    // heading level
	marker string // list item bullet or number
	indent int    // list item continuation indent

	blockChildren  []*Block
	inlineChildren []*Inline
}

// Kind returns the type of block node
// or zero if the node is nil.
func (b *Block) Kind() BlockKind {
	if b == nil {
		return 0
	}
	return b.kind
}

// ChildCount returns the number of children the node has.
// Calling ChildCount on nil returns 0.
func (b *Block) ChildCount() int {
	if b == nil {
		return 0
	}
	return len(b.blockChildren) + len(b.inlineChildren)
}

// Child returns the i'th child of the node.
func (b *Block) Child(i int) Node {
	if len(b.inlineChildren) > 0 {
		return b.inlineChildren[i].AsNode()
	}
	return b.blockChildren[i].AsNode()
}

// AsNode converts the block node to a [Node] pointer.
func (b *Block) AsNode() Node {
	if b == nil {
		return Node{}
	}
	return Node{block: b}
}

// HeadingLevel returns the 1-based level for a [HeadingKind] block
// or zero otherwise.
func (b *Block) HeadingLevel() int {
	if b.Kind() != HeadingKind {
		return 0
	}
	return b.level
}

// Text returns the text of a [HeadingKind] block
// or the empty string otherwise.
func (b *Block) Text() string {
	if b.Kind() != HeadingKind {
		return ""
	}
	return b.text
}

// Indent returns the number of columns a continuation line
// of a list item must be indented by,
// or zero if the block is not a list item.
func (b *Block) Indent() int {
	switch b.Kind() {
	case OrderedListItemKind, UnorderedListItemKind:
		return b.indent
	default:
		return 0
	}
}

// Bullet returns the bullet character of an [UnorderedListItemKind] block
// or zero otherwise.
func (b *Block) Bullet() byte {
	if b.Kind() != UnorderedListItemKind {
		return 0
	}
	return b.marker[0]
}

// ListItemNumber returns the number written in the source
// for an [OrderedListItemKind] block
// or -1 if the block is not an ordered list item
// or the number does not fit in an int.
func (b *Block) ListItemNumber() int {
	if b.Kind() != OrderedListItemKind {
		return -1
	}
	n, err := strconv.Atoi(b.marker)
	if err != nil {
		return -1
	}
	return n
}

// consume implements the line continuation protocol.
func (b *Block) consume(line string) bool {
	switch b.kind {
	case HeadingKind, ParagraphBreakKind:
		return false
	case SpanKind:
		return b.consumeSpanLine(line)
	case OrderedListItemKind, UnorderedListItemKind:
		if isBlankLine(line) {
			// Blank lines end the current paragraph of the item,
			// but the item itself continues.
			b.blockChildren = append(b.blockChildren, &Block{kind: ParagraphBreakKind})
			return true
		}
		if !hasIndent(line, b.indent) {
			// No lazy continuation lines.
			return false
		}
		line = line[b.indent:]
	}
	return offer(&b.blockChildren, line, b.open)
}

// open creates the child block for a line
// that the last child refused.
// Blank lines produce a paragraph break and are not consumed.
func (b *Block) open(line string) (*Block, bool) {
	if isBlankLine(line) {
		return &Block{kind: ParagraphBreakKind}, false
	}
	for _, start := range blockStarts {
		if !b.kind.canContain(start.kind) {
			continue
		}
		if child := start.open(line); child != nil {
			return child, true
		}
	}
	return newSpanBlock(line), true
}

// blockStart is a rule for opening a new block.
type blockStart struct {
	kind BlockKind
	open func(line string) *Block
}

// blockStarts is the list of rules tried, in order,
// when a line does not continue the last open block.
// Lines that match none of them start a [SpanKind] block.
var blockStarts = []blockStart{
	{HeadingKind, openHeading},
	{OrderedListItemKind, openOrderedListItem},
	{UnorderedListItemKind, openUnorderedListItem},
}

func openHeading(line string) *Block {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n == 0 {
		return nil
	}
	rest := line[n:]
	hasSpace := len(rest) > 0 && isSpaceOrTab(rest[0])
	if !hasSpace && n <= maxHeadingLevel {
		return nil
	}
	return &Block{
		kind:  HeadingKind,
		level: min(n, maxHeadingLevel),
		text:  strings.TrimSpace(rest),
	}
}

func openOrderedListItem(line string) *Block {
	dot := strings.IndexByte(line, '.')
	if dot <= 0 || dot >= len(line)-1 || line[dot+1] != ' ' {
		return nil
	}
	for i := 0; i < dot; i++ {
		if !isASCIIDigit(line[i]) {
			return nil
		}
	}
	indent := dot + 1
	for indent < len(line) && line[indent] == ' ' {
		indent++
	}
	return &Block{
		kind:          OrderedListItemKind,
		marker:        line[:dot],
		indent:        indent,
		blockChildren: []*Block{newSpanBlock(line[indent:])},
	}
}

func openUnorderedListItem(line string) *Block {
	if len(line) < 3 || !isBullet(line[0]) || !isSpaceOrTab(line[1]) {
		return nil
	}
	indent := 1
	for indent < len(line) && isSpaceOrTab(line[indent]) {
		indent++
	}
	return &Block{
		kind:          UnorderedListItemKind,
		marker:        line[:1],
		indent:        indent,
		blockChildren: []*Block{newSpanBlock(line[indent:])},
	}
}

// BlockKind is an enumeration of values returned by [*Block.Kind].
type BlockKind uint16

const (
	// SpanKind is a block of formatted text, such as a paragraph.
	// Its children are [Inline] nodes.
	SpanKind BlockKind = 1 + iota
	HeadingKind
	OrderedListItemKind
	UnorderedListItemKind
	// ParagraphBreakKind marks the end of a paragraph,
	// typically created by a blank line.
	ParagraphBreakKind
	// DocumentKind is the kind of the root block.
	DocumentKind
)

// canContain reports whether a block of this kind
// may open a child block of the given kind.
// Spans and other leaf kinds are not listed:
// every container falls back to opening a span.
func (kind BlockKind) canContain(childKind BlockKind) bool {
	switch kind {
	case DocumentKind:
		return true
	case OrderedListItemKind, UnorderedListItemKind:
		return childKind != HeadingKind
	default:
		return false
	}
}

// String returns the name of the kind, e.g. "Heading".
func (kind BlockKind) String() string {
	switch kind {
	case SpanKind:
		return "Span"
	case HeadingKind:
		return "Heading"
	case OrderedListItemKind:
		return "OrderedListItem"
	case UnorderedListItemKind:
		return "UnorderedListItem"
	case ParagraphBreakKind:
		return "ParagraphBreak"
	case DocumentKind:
		return "Document"
	default:
		return "BlockKind(" + strconv.Itoa(int(kind)) + ")"
	}
}

func hasIndent(line string, n int) bool {
	if len(line) < n {
		return false
	}
	for i := 0; i < n; i++ {
		if line[i] != ' ' {
			return false
		}
	}
	return true
}

func isBlankLine(line string) bool {
	return strings.TrimSpace(line) == ""
}

func isSpaceOrTab(c byte) bool {
	return c == ' ' || c == '\t'
}

func isBullet(c byte) bool {
	return c == '*' || c == '-' || c == '+'
}

func isASCIIDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
