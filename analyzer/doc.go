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

// Package analyzer implements the numberedparams static analysis pass for Ruby sources.
//
// # Overview
//
// NumberedParams finds single-line Ruby blocks with few named parameters and suggests
// Ruby's numbered parameters instead, like RuboCop's Style/PreferNumberedParameter.
//
// # Example
//
// Before:
//
//	users.map { |user| user.name }
//	hash.each { |key, value| puts "#{key}: #{value}" }
//
// After applying numberedparams' suggested fix with -max-arguments=2:
//
//	users.map { _1.name }
//	hash.each { puts "#{_1}: #{_2}" }
//
// # Skipped Blocks
//
// Blocks are left alone when they:
//
//   - span more than one line
//   - declare no parameters, or more than -max-arguments
//   - have an empty body
//   - declare destructured, splat, block, shadow, optional or keyword parameters
//   - contain another block or lambda
//
// Offenses are still reported, but no fix is suggested, when the rewrite would change the
// arity of the block, when the block assigns to one of its parameters, or when an enclosing
// block already uses `_1` or `it`. A shorthand argument `foo(x:)` is rewritten to `foo(x: _1)`.
//
// # Suppressions
//
// A trailing `# nolint:numberedparams` or `# rubocop:disable Style/PreferNumberedParameter`
// comment silences the line, a `# rubocop:disable` comment on its own line silences
// everything up to the matching `# rubocop:enable`.
package analyzer
