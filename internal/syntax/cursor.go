// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package syntax

import (
	"go/token"
	"iter"
	"slices"
)

// Cursor is a position in a [Tree]. The zero Cursor is invalid.
type Cursor struct {
	tree  *Tree
	index NodeIndex
}

// Valid reports whether the cursor points to a node.
func (c Cursor) Valid() bool {
	return c.tree != nil && c.index.Valid()
}

// Tree returns the tree of the cursor.
func (c Cursor) Tree() *Tree { return c.tree }

// Index returns the [NodeIndex] of the current node.
func (c Cursor) Index() NodeIndex { return c.index }

// Node returns the content of the current node.
func (c Cursor) Node() Node { return c.tree.nodes[c.index].Node }

// Kind returns the kind of the current node.
func (c Cursor) Kind() Kind { return c.tree.nodes[c.index].Kind }

// Name returns the identifier of the current node, if any.
func (c Cursor) Name() string { return c.tree.nodes[c.index].Name }

// Pos returns the start position of the current node.
func (c Cursor) Pos() token.Pos { return c.tree.nodes[c.index].Pos }

// End returns the position immediately after the current node.
func (c Cursor) End() token.Pos { return c.tree.nodes[c.index].End }

// Parent returns the parent of the current node. The parent of the root is invalid.
func (c Cursor) Parent() Cursor {
	return Cursor{c.tree, c.tree.nodes[c.index].parent}
}

// Contains reports whether d is c or one of its descendants.
func (c Cursor) Contains(d Cursor) bool {
	return c.tree == d.tree && c.index <= d.index && d.index < c.tree.nodes[c.index].last
}

// Children yields the direct children of the current node.
func (c Cursor) Children() iter.Seq[Cursor] {
	return func(yield func(Cursor) bool) {
		nodes := c.tree.nodes
		for i := c.index + 1; i < nodes[c.index].last; i = nodes[i].last {
			if !yield(Cursor{c.tree, i}) {
				return
			}
		}
	}
}

// FirstChild returns the first direct child of the given kind.
func (c Cursor) FirstChild(kind Kind) (Cursor, bool) {
	for ch := range c.Children() {
		if ch.Kind() == kind {
			return ch, true
		}
	}

	return Cursor{}, false
}

// Preorder yields the current node and all its descendants in depth-first order,
// restricted to the given kinds when any are specified.
func (c Cursor) Preorder(kinds ...Kind) iter.Seq[Cursor] {
	return func(yield func(Cursor) bool) {
		nodes := c.tree.nodes
		for i := c.index; i < nodes[c.index].last; i++ {
			if len(kinds) > 0 && !slices.Contains(kinds, nodes[i].Kind) {
				continue
			}

			if !yield(Cursor{c.tree, i}) {
				return
			}
		}
	}
}

// Inspect visits the current node and its descendants in depth-first order.
// When f returns false, the descendants of that node are skipped.
func (c Cursor) Inspect(f func(Cursor) bool) {
	nodes := c.tree.nodes
	for i := c.index; i < nodes[c.index].last; {
		if f(Cursor{c.tree, i}) {
			i++
		} else {
			i = nodes[i].last
		}
	}
}
