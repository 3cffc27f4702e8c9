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

package candidate

// Status indicates whether a block construct can use numbered parameters and why not.
type Status uint8

//go:generate go tool stringer -type Status -linecomment
const (
	// Eligible indicates the block can be rewritten.
	Eligible Status = iota // eligible

	// MultiLine indicates the construct spans more than one line.
	MultiLine // multi-line

	// NoParameters indicates the block declares no parameters.
	NoParameters // no-parameters

	// TooManyParameters indicates the block declares more parameters than configured.
	TooManyParameters // too-many-parameters

	// EmptyBody indicates the block has no body.
	EmptyBody // empty-body

	// SpecialParameter indicates a destructured, rest, block, shadow, optional or keyword parameter.
	SpecialParameter // special-parameter

	// InnerBlock indicates another block construct inside the body.
	// Numbering the outer block would clash with the inner one.
	InnerBlock // inner-block
)

// Eligible indicates the block can be rewritten.
func (i Status) Eligible() bool { return i == Eligible }
