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

// Package parse converts Ruby sources into [syntax.Tree] values using the tree-sitter Ruby grammar.
package parse

import (
	"context"
	"errors"
	"fmt"
	"go/token"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/ruby"

	"fillmore-labs.com/numberedparams/internal/syntax"
)

// ErrSyntax is wrapped by errors of sources that do not parse.
var ErrSyntax = errors.New("syntax error")

// SyntaxError describes the first syntax error of a source.
type SyntaxError struct {
	Pos token.Pos
	End token.Pos
	Msg string
}

func (e *SyntaxError) Error() string { return e.Msg }

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// Parse parses the Ruby source of file.
//
// file must have been created for src, with its line table set.
func Parse(ctx context.Context, file *token.File, src []byte) (*syntax.Tree, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(ruby.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", file.Name(), err)
	}
	defer tree.Close()

	c := converter{file: file, src: src}

	root := tree.RootNode()
	if root.HasError() {
		return nil, c.syntaxError(root)
	}

	c.b = syntax.NewBuilder(file, src)
	c.children(root)

	return c.b.Finish()
}

type converter struct {
	b    *syntax.Builder
	file *token.File
	src  []byte
}

func (c *converter) span(n *sitter.Node) (pos, end token.Pos) {
	return c.file.Pos(int(n.StartByte())), c.file.Pos(int(n.EndByte()))
}

func (c *converter) open(kind syntax.Kind, n *sitter.Node) {
	c.openNamed(kind, n, "")
}

func (c *converter) openNamed(kind syntax.Kind, n *sitter.Node, name string) {
	pos, end := c.span(n)
	c.b.Open(syntax.Node{Kind: kind, Name: name, Pos: pos, End: end})
}

func (c *converter) leaf(kind syntax.Kind, n *sitter.Node) {
	pos, end := c.span(n)
	c.b.Add(syntax.Node{Kind: kind, Name: n.Content(c.src), Pos: pos, End: end})
}

func (c *converter) param(n *sitter.Node, kind syntax.ParamKind, name string) {
	pos, end := c.span(n)
	c.b.Add(syntax.Node{Kind: syntax.Param, Param: kind, Name: name, Pos: pos, End: end})
}

// node converts n and its subtree.
func (c *converter) node(n *sitter.Node) {
	switch n.Type() {
	case "comment":
		pos, end := c.span(n)
		c.b.Comment(syntax.Comment{Pos: pos, End: end, Text: n.Content(c.src)})

	case "identifier":
		c.leaf(syntax.LocalVar, n)

	case "call", "method_call":
		c.call(n)

	case "lambda":
		c.lambda(n)

	case "assignment", "operator_assignment":
		c.assignment(n)

	case "pair":
		c.pair(n)

	case "scope_resolution":
		c.generic(syntax.Other, n, n.ChildByFieldName("name"))

	case "method", "singleton_method", "class", "singleton_class", "module":
		c.generic(syntax.ScopeGate, n, nil)

	default:
		if !n.IsNamed() && n.ChildCount() == 0 {
			return // punctuation and keywords
		}

		c.generic(syntax.Other, n, nil)
	}
}

// children converts all children of n.
func (c *converter) children(n *sitter.Node) {
	for i := range int(n.ChildCount()) {
		c.node(n.Child(i))
	}
}

// generic converts n as a node of the given kind. An identifier child equal to name is not a variable reference.
func (c *converter) generic(kind syntax.Kind, n, name *sitter.Node) {
	c.open(kind, n)

	for i := range int(n.ChildCount()) {
		ch := n.Child(i)
		if name != nil && same(ch, name) && ch.Type() == "identifier" {
			c.leaf(syntax.Other, ch)

			continue
		}

		c.node(ch)
	}

	c.b.Close()
}

// call converts a method call, which is a block construct when it has a block literal attached.
func (c *converter) call(n *sitter.Node) {
	blk := n.ChildByFieldName("block")
	if blk == nil || (blk.Type() != "block" && blk.Type() != "do_block") {
		c.generic(syntax.Other, n, n.ChildByFieldName("method"))

		return
	}

	method := n.ChildByFieldName("method")

	var name string
	if method != nil {
		name = method.Content(c.src)
	}

	c.openNamed(syntax.Block, n, name)

	for i := range int(n.ChildCount()) {
		ch := n.Child(i)

		switch {
		case same(ch, blk):
			continue

		case method != nil && same(ch, method) && ch.Type() == "identifier":
			c.leaf(syntax.Other, ch)

		default:
			c.node(ch)
		}
	}

	c.literal(blk, true)

	c.b.Close()
}

// lambda converts a lambda literal `->(x) { ... }`.
func (c *converter) lambda(n *sitter.Node) {
	params, body := n.ChildByFieldName("parameters"), n.ChildByFieldName("body")

	c.openNamed(syntax.Block, n, syntax.LambdaName)

	if params != nil {
		c.params(params)
	}

	if body != nil {
		c.literal(body, params == nil)
	}

	c.b.Close()
}

// literal converts the parameters and body of a `{ ... }` or `do ... end` block.
func (c *converter) literal(blk *sitter.Node, withParams bool) {
	params, body := blk.ChildByFieldName("parameters"), blk.ChildByFieldName("body")

	if params != nil && withParams {
		c.params(params)
	}

	if body != nil {
		c.open(syntax.Body, body)
		c.children(body)
		c.b.Close()

		return
	}

	// Grammars without a body field list the statements directly.
	var stmts []*sitter.Node

	for i := range int(blk.ChildCount()) {
		ch := blk.Child(i)

		switch {
		case params != nil && same(ch, params):
			continue

		case ch.Type() == "comment":
			c.node(ch)

		case ch.IsNamed():
			stmts = append(stmts, ch)
		}
	}

	if len(stmts) == 0 {
		return
	}

	pos, _ := c.span(stmts[0])
	_, end := c.span(stmts[len(stmts)-1])
	c.b.Open(syntax.Node{Kind: syntax.Body, Pos: pos, End: end})

	for _, stmt := range stmts {
		c.node(stmt)
	}

	c.b.Close()
}

// params converts `block_parameters` or `lambda_parameters`.
func (c *converter) params(n *sitter.Node) {
	c.open(syntax.Params, n)

	shadow := false

	// `|a,|` destructures its argument like `|a, *|`.
	last := trailingComma(n)

	for i := range int(n.ChildCount()) {
		ch := n.Child(i)

		switch ch.Type() {
		case ";":
			shadow = true

		case "identifier":
			kind := syntax.Simple
			switch {
			case shadow:
				kind = syntax.Shadow
			case i == last:
				kind = syntax.Destructured
			}

			c.param(ch, kind, ch.Content(c.src))

		case "destructured_parameter":
			c.param(ch, syntax.Destructured, ch.Content(c.src))

		case "splat_parameter", "forward_parameter":
			c.param(ch, syntax.Rest, c.fieldContent(ch, "name"))

		case "hash_splat_parameter", "hash_splat_nil":
			c.param(ch, syntax.KeywordRest, c.fieldContent(ch, "name"))

		case "block_parameter":
			c.param(ch, syntax.BlockCapture, c.fieldContent(ch, "name"))

		case "optional_parameter":
			c.param(ch, syntax.Optional, c.fieldContent(ch, "name"))

		case "keyword_parameter":
			c.param(ch, syntax.Keyword, c.fieldContent(ch, "name"))

		case "comment":
			c.node(ch)

		default:
			if ch.IsNamed() {
				// Unknown parameter forms are never rewritten.
				c.param(ch, syntax.Destructured, ch.Content(c.src))
			}
		}
	}

	c.b.Close()
}

// trailingComma returns the child index of the parameter followed by a
// trailing comma, or -1.
func trailingComma(n *sitter.Node) int {
	prev := -1

	for i := int(n.ChildCount()) - 1; i >= 0; i-- {
		switch t := n.Child(i).Type(); t {
		case "|", ")":
			continue

		case ",":
			prev = i - 1

		default:
			if prev == i {
				return i
			}

			return -1
		}
	}

	return -1
}

func (c *converter) fieldContent(n *sitter.Node, field string) string {
	if f := n.ChildByFieldName(field); f != nil {
		return f.Content(c.src)
	}

	return ""
}

// pair converts a hash pair. The value-less form `x:` reads the local binding x.
func (c *converter) pair(n *sitter.Node) {
	key := n.ChildByFieldName("key")
	if n.ChildByFieldName("value") != nil || key == nil || key.Type() != "hash_key_symbol" {
		c.generic(syntax.Other, n, nil)

		return
	}

	pos, end := c.span(n)
	c.b.Add(syntax.Node{Kind: syntax.Shorthand, Name: key.Content(c.src), Pos: pos, End: end})
}

// assignment converts an assignment, marking local variable targets.
func (c *converter) assignment(n *sitter.Node) {
	left := n.ChildByFieldName("left")

	c.open(syntax.Other, n)

	for i := range int(n.ChildCount()) {
		ch := n.Child(i)
		if left != nil && same(ch, left) {
			c.target(ch)

			continue
		}

		c.node(ch)
	}

	c.b.Close()
}

func (c *converter) target(n *sitter.Node) {
	switch n.Type() {
	case "identifier":
		c.leaf(syntax.LocalWrite, n)

	case "left_assignment_list", "destructured_left_assignment", "rest_assignment":
		c.open(syntax.Other, n)

		for i := range int(n.ChildCount()) {
			c.target(n.Child(i))
		}

		c.b.Close()

	default:
		c.node(n)
	}
}

// syntaxError locates the first erroneous node below n.
func (c *converter) syntaxError(n *sitter.Node) error {
	bad := firstError(n)
	if bad == nil {
		bad = n
	}

	pos, end := c.span(bad)

	var msg string
	switch {
	case bad.IsMissing():
		msg = "missing " + bad.Type()

	default:
		text := bad.Content(c.src)
		if len(text) > 20 {
			text = text[:20] + "..."
		}

		msg = fmt.Sprintf("unexpected %q", text)
	}

	return &SyntaxError{Pos: pos, End: end, Msg: msg}
}

func firstError(n *sitter.Node) *sitter.Node {
	if n.Type() == "ERROR" || n.IsMissing() {
		return n
	}

	if !n.HasError() {
		return nil
	}

	for i := range int(n.ChildCount()) {
		if bad := firstError(n.Child(i)); bad != nil {
			return bad
		}
	}

	return nil
}

func same(a, b *sitter.Node) bool {
	return a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte() && a.Type() == b.Type()
}
