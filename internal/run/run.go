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

// Package run drives the numberedparams analysis of a pass.
package run

import (
	"context"
	"errors"
	"fmt"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/numberedparams/internal/astutil"
	"fillmore-labs.com/numberedparams/internal/config"
	"fillmore-labs.com/numberedparams/internal/parse"
	"fillmore-labs.com/numberedparams/internal/report"
	"fillmore-labs.com/numberedparams/internal/syntax"
)

var (
	// ErrResultMissing is returned when a required analyzer result is missing.
	// This typically indicates a configuration error where the analyzer's
	// Requires field is not properly set.
	ErrResultMissing = errors.New("analyzer result missing")

	// ErrMaxArguments is returned for a non-positive maximum number of arguments.
	ErrMaxArguments = errors.New("max arguments must be positive")
)

// Run executes the numberedparams analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	if r.MaxArguments < 1 {
		return nil, fmt.Errorf("numberedparams: %w, got %d", ErrMaxArguments, r.MaxArguments)
	}

	// Retrieves the parsed Ruby files from the pass results.
	res, ok := p.ResultOf[parse.Analyzer].(*parse.Result)
	if !ok {
		return nil, fmt.Errorf("numberedparams: %s %w", parse.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "NumberedParams")
	defer task.End()

	// Loop over all files
	for _, tree := range res.Trees {
		currentFile := astutil.NewCurrentFile(tree)
		if !currentFile.Valid() {
			continue
		}

		trace.Log(ctx, "file", tree.File().Name())

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Visit every block construct, outer before inner
		for c := range tree.Root().Preorder(syntax.Block) {
			block, ok := syntax.AsBlock(c)
			if !ok {
				astutil.InternalError(p, c, "Block node without block view")

				continue
			}

			report.ProcessBlock(ctx, p, currentFile, block, r.MaxArguments, r.Behavior)
		}
	}

	return nil, nil
}
