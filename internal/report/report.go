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

// Package report emits offenses for blocks that should use numbered parameters.
package report

import (
	"context"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/numberedparams/internal/astutil"
	"fillmore-labs.com/numberedparams/internal/candidate"
	"fillmore-labs.com/numberedparams/internal/config"
	"fillmore-labs.com/numberedparams/internal/syntax"
)

const (
	// Category is the category of reported diagnostics.
	Category = "Style/PreferNumberedParameter"

	// Message is the message of reported diagnostics.
	Message = "Use numbered parameters (_1, _2, ...) instead of named block arguments for single-line blocks."

	fixMessage = "Use numbered parameters"
)

// ProcessBlock reports an offense when the block should use numbered parameters.
//
// The diagnostic covers the whole construct including its receiver call. When auto-correct is enabled,
// the file is not generated and the block is [Fixable], the diagnostic carries the rewrite as suggested fix.
// ProcessBlock reports whether an offense was emitted.
func ProcessBlock(ctx context.Context, p *analysis.Pass, currentFile astutil.CurrentFile, block syntax.BlockNode, maxArguments int, behavior config.Behaviors) bool {
	if !candidate.IsEligible(block, maxArguments) {
		return false
	}

	if currentFile.NoLintComment(block.Pos()) {
		return false
	}

	defer trace.StartRegion(ctx, "ReportBlock").End()

	diagnostic := analysis.Diagnostic{
		Pos:      block.Pos(),
		End:      block.End(),
		Category: Category,
		Message:  Message,
	}

	if behavior.Enabled(config.AutoCorrect) && !currentFile.Generated() && Fixable(block) {
		edits, err := Correction(block)
		if err != nil {
			astutil.InternalError(p, block, "Can't rewrite block: %v", err)

			return false
		}

		diagnostic.SuggestedFixes = []analysis.SuggestedFix{{Message: fixMessage, TextEdits: edits}}
	}

	p.Report(diagnostic)

	return true
}
