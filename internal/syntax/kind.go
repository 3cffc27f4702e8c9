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

// Kind classifies the nodes of a [Tree].
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// Other is any node without a dedicated kind.
	Other Kind = iota // other

	// Root spans the whole file.
	Root // root

	// Block is a block construct, spanning its receiver call or lambda literal.
	// Children are the receiver and argument subtrees, then the optional [Params] and [Body] nodes.
	Block // block

	// Params is the formal parameter clause of a block construct, including its delimiters.
	Params // params

	// Param is one formal parameter.
	Param // param

	// Body is the body of a block construct.
	Body // body

	// LocalVar is a read of a local binding by name.
	LocalVar // lvar

	// LocalWrite is the target of an assignment to a local binding.
	LocalWrite // lvasgn

	// ScopeGate is a method, class or module definition. Local bindings do not cross it.
	ScopeGate // scope

	// Shorthand is a value-less hash pair `name:`, reading the local binding name.
	// It spans the whole pair.
	Shorthand // shorthand
)

// ParamKind classifies a formal parameter.
type ParamKind uint8

//go:generate go tool stringer -type ParamKind -linecomment
const (
	// Simple is a plain named parameter, as in |a|.
	Simple ParamKind = iota // arg

	// Destructured decomposes a composite argument, as in |(a, b)|.
	Destructured // mlhs

	// Rest collects excess positional arguments, as in |*a|.
	Rest // restarg

	// BlockCapture receives a block passed to the block, as in |&b|.
	BlockCapture // blockarg

	// Shadow declares a block-local variable, as in |a; b|.
	Shadow // shadowarg

	// Optional has a default value, as in |a = 1|.
	Optional // optarg

	// Keyword is a keyword parameter, as in |k:| or |k: 1|.
	Keyword // kwarg

	// KeywordRest collects excess keyword arguments, as in |**opts|.
	KeywordRest // kwrestarg
)
