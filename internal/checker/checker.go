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

// Package checker runs an analyzer over individual Ruby files and applies its suggested fixes.
package checker

import (
	"cmp"
	"context"
	"fmt"
	"go/token"
	"log/slog"
	"runtime"
	"runtime/trace"
	"slices"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/analysis"
)

// Options configure a [Run].
type Options struct {
	// Parallel is the maximum number of files checked concurrently; non-positive means GOMAXPROCS.
	Parallel int

	// Fix applies suggested fixes to the checked files.
	Fix bool

	// Logger receives debug events; nil discards them.
	Logger *slog.Logger
}

// Offense is a diagnostic of a checked file.
type Offense struct {
	analysis.Diagnostic

	// Corrected is true when the suggested fix of the diagnostic was applied.
	Corrected bool
}

// Correctable reports whether the offense carries a suggested fix.
func (o Offense) Correctable() bool { return len(o.SuggestedFixes) > 0 }

// FileResult holds the offenses of one file, ordered by position.
type FileResult struct {
	Name     string
	Source   []byte // content before fixes were applied
	Offenses []Offense
}

// Corrected returns the number of corrected offenses.
func (f FileResult) Corrected() int {
	n := 0

	for _, o := range f.Offenses {
		if o.Corrected {
			n++
		}
	}

	return n
}

// Result is the outcome of a [Run].
type Result struct {
	// Fset holds the positions of all offenses.
	Fset *token.FileSet

	// Files are the results in the order of the checked files.
	Files []FileResult
}

// Offenses returns the total number of offenses.
func (r *Result) Offenses() int {
	n := 0
	for _, f := range r.Files {
		n += len(f.Offenses)
	}

	return n
}

// Corrected returns the total number of corrected offenses.
func (r *Result) Corrected() int {
	n := 0
	for _, f := range r.Files {
		n += f.Corrected()
	}

	return n
}

// Run runs the analyzer and its prerequisites on every file, one [analysis.Pass] per file.
func Run(ctx context.Context, a *analysis.Analyzer, files []string, opts Options) (*Result, error) {
	if err := analysis.Validate([]*analysis.Analyzer{a}); err != nil {
		return nil, fmt.Errorf("invalid analyzer: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	parallel := opts.Parallel
	if parallel <= 0 {
		parallel = runtime.GOMAXPROCS(0)
	}

	ctx, task := trace.NewTask(ctx, "Check")
	defer task.End()

	res := &Result{
		Fset:  token.NewFileSet(),
		Files: make([]FileResult, len(files)),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for i, name := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			c := fileChecker{fset: res.Fset, name: name, logger: logger.With(slog.String("file", name))}

			r, err := c.check(ctx, a, opts.Fix)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}

			res.Files[i] = r

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return res, nil
}

// fileChecker analyzes a single file.
type fileChecker struct {
	fset   *token.FileSet
	name   string
	logger *slog.Logger

	src         []byte
	results     map[*analysis.Analyzer]any
	diagnostics []analysis.Diagnostic
}

func (c *fileChecker) check(ctx context.Context, a *analysis.Analyzer, fix bool) (FileResult, error) {
	defer trace.StartRegion(ctx, "CheckFile").End()

	src, err := readFile(c.name)
	if err != nil {
		return FileResult{}, err
	}

	c.src = src
	c.results = make(map[*analysis.Analyzer]any)

	if _, err := c.analyze(a); err != nil {
		return FileResult{}, err
	}

	slices.SortStableFunc(c.diagnostics, func(a, b analysis.Diagnostic) int {
		return cmp.Or(cmp.Compare(a.Pos, b.Pos), cmp.Compare(a.End, b.End))
	})

	offenses := make([]Offense, len(c.diagnostics))
	for i, d := range c.diagnostics {
		offenses[i] = Offense{Diagnostic: d}
	}

	c.logger.Debug("Checked file", slog.Int("offenses", len(offenses)))

	if fix {
		if err := c.fix(ctx, offenses); err != nil {
			return FileResult{}, err
		}
	}

	return FileResult{Name: c.name, Source: src, Offenses: offenses}, nil
}

// analyze runs a and its prerequisites, each at most once.
func (c *fileChecker) analyze(a *analysis.Analyzer) (any, error) {
	if res, ok := c.results[a]; ok {
		return res, nil
	}

	resultOf := make(map[*analysis.Analyzer]any, len(a.Requires))

	for _, req := range a.Requires {
		res, err := c.analyze(req)
		if err != nil {
			return nil, err
		}

		resultOf[req] = res
	}

	pass := &analysis.Pass{
		Analyzer:   a,
		Fset:       c.fset,
		OtherFiles: []string{c.name},
		ResultOf:   resultOf,
		Report:     func(d analysis.Diagnostic) { c.diagnostics = append(c.diagnostics, d) },
		ReadFile:   c.readFile,
	}

	res, err := a.Run(pass)
	if err != nil {
		return nil, fmt.Errorf("analyzer %s failed: %w", a.Name, err)
	}

	c.results[a] = res

	return res, nil
}

// readFile serves the checked file from memory, so all analyzers and fixes see the same content.
func (c *fileChecker) readFile(name string) ([]byte, error) {
	if name == c.name {
		return c.src, nil
	}

	return readFile(name)
}
