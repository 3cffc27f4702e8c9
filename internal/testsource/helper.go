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

// Package testsource provides utilities for parsing Ruby source code in tests.
//
// It is designed to simplify testing of the numberedparams analyzer by handling common
// boilerplate code for setting up file sets and syntax trees of Ruby source fragments.
package testsource

import (
	"go/token"
	"strings"
	"testing"

	"fillmore-labs.com/numberedparams/internal/parse"
	"fillmore-labs.com/numberedparams/internal/syntax"
)

const filename = "test.rb"

// Parse parses a Ruby source code fragment into a syntax tree.
//
// Returns:
//   - *token.FileSet: The file set containing the single source file.
//   - *syntax.Tree: The parsed syntax tree of the source file.
func Parse(tb testing.TB, src string) (*token.FileSet, *syntax.Tree) {
	tb.Helper()

	fset := token.NewFileSet()
	data := []byte(src)

	file := fset.AddFile(filename, -1, len(data))
	file.SetLinesForContent(data)

	tree, err := parse.Parse(tb.Context(), file, data)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return fset, tree
}

// Blocks returns all block constructs of the tree in source order.
func Blocks(tree *syntax.Tree) []syntax.BlockNode {
	var blocks []syntax.BlockNode

	for c := range tree.Root().Preorder(syntax.Block) {
		if b, ok := syntax.AsBlock(c); ok {
			blocks = append(blocks, b)
		}
	}

	return blocks
}

// Block returns the first block construct whose source text starts with prefix.
func Block(tb testing.TB, tree *syntax.Tree, prefix string) syntax.BlockNode {
	tb.Helper()

	for _, b := range Blocks(tree) {
		if strings.HasPrefix(tree.Text(b.Pos(), b.End()), prefix) {
			return b
		}
	}

	tb.Fatalf("Can't find block %q", prefix)

	return syntax.BlockNode{}
}
