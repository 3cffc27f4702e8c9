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

package report

import (
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/numberedparams/internal/candidate"
	"fillmore-labs.com/numberedparams/internal/syntax"
)

// ErrInvariantViolation is returned when a correction is requested for a block that can't be rewritten.
var ErrInvariantViolation = errors.New("invariant violation")

// ErrInvalidRewrite is returned when the rewritten block would not be valid Ruby.
var ErrInvalidRewrite = errors.New("invalid rewrite")

// Correction creates the text edits rewriting a block to numbered parameters.
//
// Every reference to the i-th parameter in the body is replaced by _i; a name declared twice
// maps to its first ordinal. A shorthand pair `x:` becomes `x: _i`. The parameter clause is deleted
// together with one following blank. Replacements come first, followed by the single deletion.
// All edits are disjoint and lie inside the block construct.
func Correction(b syntax.BlockNode) ([]analysis.TextEdit, error) {
	if status := candidate.Check(b, candidate.Unlimited); !status.Eligible() {
		return nil, fmt.Errorf("%w: can't rewrite block (%s)", ErrInvariantViolation, status)
	}

	if err := validRewrite(b); err != nil {
		return nil, err
	}

	body, _ := b.Body()

	var edits []analysis.TextEdit

	for i, refs := range references(b.Parameters(), body) {
		placeholder := "_" + strconv.Itoa(i+1)

		for _, ref := range refs {
			text := placeholder
			if ref.Kind() == syntax.Shorthand {
				text = ref.Name() + ": " + placeholder
			}

			edits = append(edits, analysis.TextEdit{Pos: ref.Pos(), End: ref.End(), NewText: []byte(text)})
		}
	}

	clause := b.Params()
	end := clause.End()

	if c, ok := b.Tree().ByteAt(end); ok && (c == ' ' || c == '\t') {
		end++
	}

	edits = append(edits, analysis.TextEdit{Pos: clause.Pos(), End: end})

	return edits, nil
}

// Fixable reports whether the block can be rewritten without changing its behavior.
func Fixable(b syntax.BlockNode) bool {
	return validRewrite(b) == nil && PreservesArity(b)
}

// validRewrite checks that numbered parameters are allowed where the block's parameters are used.
func validRewrite(b syntax.BlockNode) error {
	body, ok := b.Body()
	if !ok {
		return nil
	}

	if name, ok := reassigned(b.Parameters(), body); ok {
		return fmt.Errorf("%w: parameter %q is reassigned", ErrInvalidRewrite, name)
	}

	if name, ok := outerNumbered(b); ok {
		return fmt.Errorf("%w: %s is already used in an outer block", ErrInvalidRewrite, name)
	}

	return nil
}

// reassigned returns the first parameter the body assigns to. Numbered parameters are read-only.
func reassigned(params []syntax.Parameter, body syntax.Cursor) (string, bool) {
	names := make(map[string]struct{}, len(params))
	for _, p := range params {
		names[p.Name] = struct{}{}
	}

	var name string

	body.Inspect(func(c syntax.Cursor) bool {
		switch c.Kind() {
		case syntax.ScopeGate:
			return false

		case syntax.LocalWrite:
			if _, ok := names[c.Name()]; ok {
				name = c.Name()
			}
		}

		return name == ""
	})

	return name, name != ""
}

// outerNumbered returns the implicit parameter used by an enclosing block without a parameter clause.
// Ruby allows implicit parameters in only one block of a nesting.
func outerNumbered(b syntax.BlockNode) (string, bool) {
	for c := b.Parent(); c.Valid(); c = c.Parent() {
		switch c.Kind() {
		case syntax.ScopeGate:
			return "", false

		case syntax.Block:
			outer, _ := syntax.AsBlock(c)
			if outer.Params().Valid() {
				continue
			}

			if body, ok := outer.Body(); ok {
				if name, ok := implicitParameter(body); ok {
					return name, true
				}
			}
		}
	}

	return "", false
}

// implicitParameter returns the first numbered parameter or `it` read in body.
func implicitParameter(body syntax.Cursor) (string, bool) {
	var name string

	body.Inspect(func(c syntax.Cursor) bool {
		switch c.Kind() {
		case syntax.ScopeGate:
			return false

		case syntax.LocalVar:
			if n := c.Name(); n == "it" || (len(n) == 2 && n[0] == '_' && '1' <= n[1] && n[1] <= '9') {
				name = n
			}
		}

		return name == ""
	})

	return name, name != ""
}

// PreservesArity reports whether the rewritten block accepts the same arguments as the original.
//
// A block's arity is the highest numbered parameter used, so the last parameter must be referenced
// when there is more than one. Lambdas need every parameter referenced.
func PreservesArity(b syntax.BlockNode) bool {
	params := b.Parameters()
	if len(params) == 0 {
		return false
	}

	body, ok := b.Body()
	if !ok {
		return false
	}

	refs := references(params, body)

	if b.Lambda() {
		for _, r := range refs {
			if len(r) == 0 {
				return false
			}
		}

		return true
	}

	return len(params) == 1 || len(refs[len(refs)-1]) > 0
}

// references collects the references of each parameter in body, in document order, including shorthand pairs.
// Names declared more than once only collect references for their first declaration.
func references(params []syntax.Parameter, body syntax.Cursor) [][]syntax.Cursor {
	refs := make([][]syntax.Cursor, len(params))

	ordinal := make(map[string]int, len(params))
	for i, p := range params {
		if _, ok := ordinal[p.Name]; !ok {
			ordinal[p.Name] = i
		}
	}

	body.Inspect(func(c syntax.Cursor) bool {
		switch c.Kind() {
		case syntax.ScopeGate:
			return false // method and class bodies start a new local scope

		case syntax.LocalVar, syntax.Shorthand:
			if i, ok := ordinal[c.Name()]; ok {
				refs[i] = append(refs[i], c)
			}
		}

		return true
	})

	return refs
}
