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
	"strings"
)

// Node is a pointer to a [Block] or an [Inline].
// Nodes can be compared for equality using the == operator.
type Node struct {
	block  *Block
	inline *Inline
}

// Block returns the referenced block
// or nil if the pointer does not reference a block.
func (n Node) Block() *Block {
	return n.block
}

// Inline returns the referenced inline
// or nil if the pointer does not reference an inline.
func (n Node) Inline() *Inline {
	return n.inline
}

// IsZero reports whether n references nothing.
func (n Node) IsZero() bool {
	return n.block == nil && n.inline == nil
}

// ChildCount returns the number of children the node has.
// Calling ChildCount on the zero value returns 0.
func (n Node) ChildCount() int {
	if n.block != nil {
		return n.block.ChildCount()
	}
	return n.inline.ChildCount()
}

// Child returns the i'th child of the node.
func (n Node) Child(i int) Node {
	if n.block != nil {
		return n.block.Child(i)
	}
	if n.inline != nil {
		return n.inline.Child(i).AsNode()
	}
	panic("Child on nil Node")
}

// summary returns a one-line description of the node
// used by [Document.String].
func (n Node) summary() string {
	if b := n.Block(); b != nil {
		switch b.Kind() {
		case HeadingKind:
			return fmt.Sprintf("[Heading level=%d] %s", b.HeadingLevel(), b.Text())
		case OrderedListItemKind:
			return fmt.Sprintf("[OrderedListItem indent=%d]", b.Indent())
		case UnorderedListItemKind:
			return fmt.Sprintf("[UnorderedListItem bullet=%c indent=%d]", b.Bullet(), b.Indent())
		default:
			return "[" + b.Kind().String() + "]"
		}
	}
	if in := n.Inline(); in != nil {
		switch in.Kind() {
		case TextKind:
			return "[Text] " + in.Text()
		case EmphasisKind:
			return fmt.Sprintf("[Emphasis delimiter=%s] %s", in.Delimiter(), in.Text())
		case LinkKind:
			return "[Link href=" + in.Href() + "]"
		}
	}
	return "[]"
}

// A Document is the root of a parsed Markdown tree.
type Document struct {
	Block
}

// Root returns the document's root block.
// Its kind is [DocumentKind].
func (doc *Document) Root() *Block {
	if doc == nil {
		return nil
	}
	return &doc.Block
}

// String returns a depth-first listing of the document tree,
// one node per line, indented by one space per level.
func (doc *Document) String() string {
	sb := new(strings.Builder)
	Walk(doc.AsNode(), &WalkOptions{
		Pre: func(c *Cursor) bool {
			sb.WriteString(strings.Repeat(" ", c.Depth()))
			sb.WriteString(c.Node().summary())
			sb.WriteByte('\n')
			return true
		},
	})
	return sb.String()
}

// consumer is implemented by nodes that take part in the continuation protocol.
// consume reports whether the node accepted the unit;
// a node that refuses is closed and its parent must handle the unit instead.
type consumer[U any] interface {
	consume(unit U) bool
}

// offer gives unit to the last of children first.
// If the last child refuses (or there are no children),
// open creates a new child that is appended.
// offer returns the result reported by open for new children.
func offer[N consumer[U], U any](children *[]N, unit U, open func(U) (N, bool)) bool {
	if n := len(*children); n > 0 && (*children)[n-1].consume(unit) {
		return true
	}
	child, consumed := open(unit)
	*children = append(*children, child)
	return consumed
}
