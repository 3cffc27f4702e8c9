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

import "go/token"

// LambdaName is the name of [Block] nodes of lambda literals.
const LambdaName = "->"

// BlockNode is a view of a [Block] node.
type BlockNode struct {
	Cursor
	params Cursor
	body   Cursor
}

// Parameter is one formal parameter of a block construct.
type Parameter struct {
	Name string
	Kind ParamKind
	Pos  token.Pos
	End  token.Pos
}

// AsBlock returns the [BlockNode] view of c, if c is a [Block] node.
func AsBlock(c Cursor) (BlockNode, bool) {
	if !c.Valid() || c.Kind() != Block {
		return BlockNode{}, false
	}

	b := BlockNode{Cursor: c}

	for ch := range c.Children() {
		switch ch.Kind() {
		case Params:
			b.params = ch

		case Body:
			b.body = ch
		}
	}

	return b, true
}

// SingleLine reports whether the whole construct, including its receiver call, is on one line.
func (b BlockNode) SingleLine() bool {
	return b.tree.Line(b.Pos()) == b.tree.Line(b.End())
}

// Lambda reports whether the construct is a lambda literal. Lambdas check their arity strictly.
func (b BlockNode) Lambda() bool {
	return b.Name() == LambdaName
}

// Params returns the formal parameter clause. It is invalid when the block declares none.
func (b BlockNode) Params() Cursor { return b.params }

// Parameters returns the formal parameters in declaration order.
func (b BlockNode) Parameters() []Parameter {
	if !b.params.Valid() {
		return nil
	}

	var params []Parameter

	for p := range b.params.Children() {
		if p.Kind() != Param {
			continue
		}

		n := p.Node()
		params = append(params, Parameter{Name: n.Name, Kind: n.Param, Pos: n.Pos, End: n.End})
	}

	return params
}

// Body returns the body of the block construct, if it is not empty.
func (b BlockNode) Body() (Cursor, bool) {
	return b.body, b.body.Valid()
}
