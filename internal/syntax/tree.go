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
	"slices"
)

// NodeIndex is the preorder index of a node in its [Tree].
type NodeIndex int32

// InvalidNode represents an invalid node index.
const InvalidNode NodeIndex = -1

// Valid checks if this index is valid.
func (n NodeIndex) Valid() bool {
	return n != InvalidNode
}

// Node is the content of a single tree node.
type Node struct {
	Kind  Kind
	Param ParamKind // only meaningful for [Param] nodes
	Name  string    // identifier of [Param], [LocalVar], [LocalWrite] and [Shorthand] nodes, method name of [Block] nodes
	Pos   token.Pos
	End   token.Pos
}

type node struct {
	Node
	parent NodeIndex
	last   NodeIndex // one past the last descendant
}

// Comment is a source comment, including its leading '#'.
type Comment struct {
	Pos  token.Pos
	End  token.Pos
	Text string
}

// Tree is an immutable syntax tree of one source file.
type Tree struct {
	file     *token.File
	src      []byte
	nodes    []node
	comments []Comment
}

// File returns the [token.File] the tree positions refer to.
func (t *Tree) File() *token.File { return t.file }

// Source returns the source the tree was built from.
func (t *Tree) Source() []byte { return t.src }

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int { return len(t.nodes) }

// Root returns a [Cursor] at the root node.
func (t *Tree) Root() Cursor { return Cursor{t, 0} }

// At returns a [Cursor] at the node with the given index.
func (t *Tree) At(i NodeIndex) Cursor {
	if i < 0 || int(i) >= len(t.nodes) {
		panic("syntax: node index out of range")
	}

	return Cursor{t, i}
}

// Comments returns all comments of the file, ordered by position.
func (t *Tree) Comments() []Comment { return t.comments }

// Line returns the 1-based line of pos.
func (t *Tree) Line(pos token.Pos) int {
	return t.file.PositionFor(pos, false).Line
}

// Text returns the source text between pos and end.
func (t *Tree) Text(pos, end token.Pos) string {
	return string(t.src[t.file.Offset(pos):t.file.Offset(end)])
}

// ByteAt returns the source byte at pos and whether pos is inside the source.
func (t *Tree) ByteAt(pos token.Pos) (byte, bool) {
	off := int(pos) - t.file.Base()
	if !pos.IsValid() || off < 0 || off >= len(t.src) {
		return 0, false
	}

	return t.src[off], true
}

// CommentAfter returns the index of the first comment starting at or after pos.
func (t *Tree) CommentAfter(pos token.Pos) int {
	i, _ := slices.BinarySearchFunc(t.comments, pos,
		func(c Comment, p token.Pos) int { return int(c.Pos - p) })

	return i
}
