// Copyright 2024 Ross Light
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

// A Cursor describes a [Node] encountered during [Walk].
type Cursor struct {
	node   Node
	parent Node
	index  int
	depth  int
}

// Node returns the current [Node].
func (c *Cursor) Node() Node {
	return c.node
}

// Parent returns the parent of the current [Node]
// (as returned by [*Cursor.Node])
// or the zero Node for the root.
func (c *Cursor) Parent() Node {
	return c.parent
}

// Index returns the position of the current [Node]
// among its parent's children.
// The root has index 0.
func (c *Cursor) Index() int {
	return c.index
}

// Depth returns the number of ancestors of the current [Node]
// below the root passed to [Walk].
func (c *Cursor) Depth() int {
	return c.depth
}

// WalkOptions is the set of parameters to [Walk].
type WalkOptions struct {
	// If Pre is not nil, it is called for each node before the node's children are traversed (pre-order).
	// If Pre returns false, no children are traversed, and Post is not called for that node.
	Pre func(c *Cursor) bool
	// If Post is not nil, it is called for each node after the node's children are traversed (post-order).
	// If Post returns false, traversal is terminated and Walk returns immediately.
	Post func(c *Cursor) bool
}

// Walk traverses a [Node] depth-first, starting with root,
// and calling [WalkOptions.Pre] and [WalkOptions.Post].
// Children are visited in document order.
// Walking the zero Node calls neither function.
func Walk(root Node, opts *WalkOptions) {
	if root.IsZero() {
		return
	}
	type walkFrame struct {
		cursor Cursor
		post   bool
	}

	stack := []walkFrame{{cursor: Cursor{node: root}}}
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cursor := curr.cursor
		if curr.post {
			if opts.Post != nil && !opts.Post(&cursor) {
				break
			}
			continue
		}

		if opts.Pre != nil && !opts.Pre(&cursor) {
			continue
		}
		curr.post = true
		stack = append(stack, curr)
		for i := curr.cursor.node.ChildCount() - 1; i >= 0; i-- {
			stack = append(stack, walkFrame{cursor: Cursor{
				node:   curr.cursor.node.Child(i),
				parent: curr.cursor.node,
				index:  i,
				depth:  curr.cursor.depth + 1,
			}})
		}
	}
}
