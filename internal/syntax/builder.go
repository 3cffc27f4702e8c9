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
	"errors"
	"fmt"
	"go/token"
	"slices"
)

// ErrUnbalanced is returned by [Builder.Finish] when opened nodes have not been closed.
var ErrUnbalanced = errors.New("unbalanced tree")

// Builder constructs a [Tree] in preorder.
type Builder struct {
	tree *Tree
	open []NodeIndex
}

// NewBuilder starts a tree for the given file and source, with an open [Root] node spanning the source.
func NewBuilder(file *token.File, src []byte) *Builder {
	b := &Builder{tree: &Tree{file: file, src: src}}
	b.Open(Node{Kind: Root, Pos: file.Pos(0), End: file.Pos(len(src))})

	return b
}

// Open appends a node as the last child of the innermost open node and opens it.
func (b *Builder) Open(n Node) {
	parent := InvalidNode
	if len(b.open) > 0 {
		parent = b.open[len(b.open)-1]
	}

	index := NodeIndex(len(b.tree.nodes))
	b.tree.nodes = append(b.tree.nodes, node{Node: n, parent: parent})
	b.open = append(b.open, index)
}

// Close closes the innermost open node.
func (b *Builder) Close() {
	if len(b.open) == 0 {
		panic("syntax: Close without Open")
	}

	index := b.open[len(b.open)-1]
	b.open = b.open[:len(b.open)-1]
	b.tree.nodes[index].last = NodeIndex(len(b.tree.nodes))
}

// Add appends a leaf node.
func (b *Builder) Add(n Node) {
	b.Open(n)
	b.Close()
}

// Comment records a source comment.
func (b *Builder) Comment(c Comment) {
	b.tree.comments = append(b.tree.comments, c)
}

// Finish closes the root node and returns the completed tree.
func (b *Builder) Finish() (*Tree, error) {
	if len(b.open) != 1 {
		return nil, fmt.Errorf("syntax: %d open nodes: %w", len(b.open)-1, ErrUnbalanced)
	}

	b.Close()

	slices.SortFunc(b.tree.comments, func(x, y Comment) int { return int(x.Pos - y.Pos) })

	t := b.tree
	b.tree = nil

	return t, nil
}
