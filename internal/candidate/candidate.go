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

// Package candidate decides which block constructs should use numbered parameters.
package candidate

import (
	"math"

	"fillmore-labs.com/numberedparams/internal/syntax"
)

// Unlimited disables the parameter count check.
const Unlimited = math.MaxInt

// IsEligible reports whether the block should use numbered parameters.
func IsEligible(b syntax.BlockNode, maxArguments int) bool {
	return Check(b, maxArguments).Eligible()
}

// Check classifies the block, returning the first rule it fails.
func Check(b syntax.BlockNode, maxArguments int) Status {
	if !b.SingleLine() {
		return MultiLine
	}

	params := b.Parameters()
	switch {
	case len(params) == 0:
		return NoParameters

	case len(params) > maxArguments:
		return TooManyParameters
	}

	body, ok := b.Body()
	if !ok {
		return EmptyBody
	}

	for _, p := range params {
		if p.Kind != syntax.Simple {
			return SpecialParameter
		}
	}

	for range body.Preorder(syntax.Block) {
		return InnerBlock
	}

	return Eligible
}
