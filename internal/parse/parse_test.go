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

package parse_test

import (
	"errors"
	"go/token"
	"slices"
	"testing"

	. "fillmore-labs.com/numberedparams/internal/parse"
	"fillmore-labs.com/numberedparams/internal/syntax"
)

func parse(tb testing.TB, src string) (*syntax.Tree, error) {
	tb.Helper()

	fset := token.NewFileSet()
	data := []byte(src)

	file := fset.AddFile("test.rb", -1, len(data))
	file.SetLinesForContent(data)

	return Parse(tb.Context(), file, data)
}

func mustParse(tb testing.TB, src string) *syntax.Tree {
	tb.Helper()

	tree, err := parse(tb, src)
	if err != nil {
		tb.Fatalf("Parse failed: %v", err)
	}

	return tree
}

func names(tree *syntax.Tree, kind syntax.Kind) []string {
	var result []string
	for c := range tree.Root().Preorder(kind) {
		result = append(result, c.Name())
	}

	return result
}

func TestParseBlock(t *testing.T) {
	t.Parallel()

	const src = "users.map { |user| user.name }"

	tree := mustParse(t, src)

	var blocks []syntax.BlockNode
	for c := range tree.Root().Preorder(syntax.Block) {
		b, ok := syntax.AsBlock(c)
		if !ok {
			t.Fatal("Block node without block view")
		}

		blocks = append(blocks, b)
	}

	if len(blocks) != 1 {
		t.Fatalf("Got %d blocks, want 1", len(blocks))
	}

	b := blocks[0]

	if got := tree.Text(b.Pos(), b.End()); got != src {
		t.Errorf("Got block text %q, want the whole construct", got)
	}

	if got := tree.Text(b.Params().Pos(), b.Params().End()); got != "|user|" {
		t.Errorf("Got parameter clause %q", got)
	}

	if b.Name() != "map" || b.Lambda() || !b.SingleLine() {
		t.Errorf("Unexpected block %q", b.Name())
	}

	params := b.Parameters()
	if len(params) != 1 || params[0].Name != "user" || params[0].Kind != syntax.Simple {
		t.Errorf("Unexpected parameters %+v", params)
	}

	body, ok := b.Body()
	if !ok || tree.Text(body.Pos(), body.End()) != "user.name" {
		t.Error("Unexpected body")
	}

	if got := names(tree, syntax.LocalVar); !slices.Equal(got, []string{"users", "user"}) {
		t.Errorf("Got references %q, method names must not be references", got)
	}
}

func TestParseParameterKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src  string
		want []syntax.ParamKind
	}{
		{"a.each { |x, y| x }", []syntax.ParamKind{syntax.Simple, syntax.Simple}},
		{"a.each { |(x, y)| x }", []syntax.ParamKind{syntax.Destructured}},
		{"a.each { |*x| x }", []syntax.ParamKind{syntax.Rest}},
		{"a.each { |&x| x }", []syntax.ParamKind{syntax.BlockCapture}},
		{"a.each { |x; y| x }", []syntax.ParamKind{syntax.Simple, syntax.Shadow}},
		{"a.each { |x = 1| x }", []syntax.ParamKind{syntax.Optional}},
		{"a.each { |x:| x }", []syntax.ParamKind{syntax.Keyword}},
		{"a.each { |**x| x }", []syntax.ParamKind{syntax.KeywordRest}},
		{"a.each { |x,| x }", []syntax.ParamKind{syntax.Destructured}},
		{"a.each { |x, y,| x }", []syntax.ParamKind{syntax.Simple, syntax.Destructured}},
		{"->(x) { x }", []syntax.ParamKind{syntax.Simple}},
	}

	for _, tt := range tests {
		tree := mustParse(t, tt.src)

		var got []syntax.ParamKind
		for c := range tree.Root().Preorder(syntax.Param) {
			got = append(got, c.Node().Param)
		}

		if !slices.Equal(got, tt.want) {
			t.Errorf("Got kinds %v for %q, want %v", got, tt.src, tt.want)
		}
	}
}

func TestParseShorthand(t *testing.T) {
	t.Parallel()

	tree := mustParse(t, "items.each { |x| foo(x:, y: x) }")

	c, ok := tree.Root().FirstChild(syntax.Block)
	if !ok {
		t.Fatal("Block not found")
	}

	var got []string
	for s := range c.Preorder(syntax.Shorthand) {
		got = append(got, tree.Text(s.Pos(), s.End()))
	}

	if want := []string{"x:"}; !slices.Equal(got, want) {
		t.Errorf("Got shorthand pairs %q, want %q", got, want)
	}

	if got := names(tree, syntax.LocalVar); !slices.Equal(got, []string{"items", "x"}) {
		t.Errorf("Got references %q, hash keys must not be references", got)
	}
}

func TestParseLambda(t *testing.T) {
	t.Parallel()

	tree := mustParse(t, "double = ->(x) { x * 2 }")

	c, ok := tree.Root().FirstChild(syntax.Other)
	if !ok {
		t.Fatal("Assignment not found")
	}

	if got := names(tree, syntax.LocalWrite); !slices.Equal(got, []string{"double"}) {
		t.Errorf("Got writes %q", got)
	}

	for b := range c.Preorder(syntax.Block) {
		blk, _ := syntax.AsBlock(b)
		if !blk.Lambda() {
			t.Error("Expected lambda")
		}

		if got := tree.Text(blk.Params().Pos(), blk.Params().End()); got != "(x)" {
			t.Errorf("Got parameter clause %q", got)
		}
	}
}

func TestParseScopeGate(t *testing.T) {
	t.Parallel()

	tree := mustParse(t, "class User\n  def name\n    @name\n  end\nend\n")

	if n := len(slices.Collect(tree.Root().Preorder(syntax.ScopeGate))); n != 2 {
		t.Errorf("Got %d scope gates, want 2", n)
	}
}

func TestParseEmptyBody(t *testing.T) {
	t.Parallel()

	tree := mustParse(t, "items.each { |item| }")

	for c := range tree.Root().Preorder(syntax.Block) {
		b, _ := syntax.AsBlock(c)
		if _, ok := b.Body(); ok {
			t.Error("Expected empty body")
		}
	}
}

func TestParseComments(t *testing.T) {
	t.Parallel()

	tree := mustParse(t, "# leading\nx = 1 # trailing\n")

	comments := tree.Comments()
	if len(comments) != 2 || comments[0].Text != "# leading" || comments[1].Text != "# trailing" {
		t.Errorf("Unexpected comments %+v", comments)
	}
}

func TestParseSyntaxError(t *testing.T) {
	t.Parallel()

	_, err := parse(t, "users.map { |user| user.name\n")
	if !errors.Is(err, ErrSyntax) {
		t.Fatalf("Got error %v, want %v", err, ErrSyntax)
	}

	var serr *SyntaxError
	if !errors.As(err, &serr) || !serr.Pos.IsValid() {
		t.Errorf("Expected syntax error with position, got %v", err)
	}
}
