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

package parse

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/numberedparams/internal/source"
	"fillmore-labs.com/numberedparams/internal/syntax"
)

// SyntaxCategory is the diagnostic category of unparsable sources.
const SyntaxCategory = "Lint/Syntax"

// Result is the result of [Analyzer]: the syntax trees of all parsable Ruby sources of a pass.
type Result struct {
	Trees []*syntax.Tree
}

// Analyzer parses the Ruby sources of a pass.
//
// Ruby sources are the Ruby entries of [analysis.Pass.OtherFiles] and, when the pass has Go files,
// the Ruby files in their directories. Sources that do not parse are reported and skipped.
var Analyzer = &analysis.Analyzer{
	Name:             "rubyparse",
	Doc:              "parse Ruby sources into syntax trees",
	Run:              run,
	RunDespiteErrors: true,
	ResultType:       reflect.TypeFor[*Result](),
}

func run(p *analysis.Pass) (any, error) {
	ctx, task := trace.NewTask(context.Background(), "RubyParse")
	defer task.End()

	res := &Result{}

	for _, src := range Sources(p) {
		content, err := src.read()
		if err != nil {
			return nil, fmt.Errorf("rubyparse: %w", err)
		}

		file := p.Fset.AddFile(src.name, -1, len(content))
		file.SetLinesForContent(content)

		tree, err := Parse(ctx, file, content)

		var serr *SyntaxError
		if errors.As(err, &serr) {
			p.Report(analysis.Diagnostic{Pos: serr.Pos, End: serr.End, Category: SyntaxCategory, Message: serr.Msg})

			continue
		}

		if err != nil {
			return nil, fmt.Errorf("rubyparse: %w", err)
		}

		res.Trees = append(res.Trees, tree)
	}

	return res, nil
}

// Source is a Ruby source of a pass.
type Source struct {
	name string
	read func() ([]byte, error)
}

// Name returns the file name of the source.
func (s Source) Name() string { return s.name }

// Sources returns the Ruby sources of a pass.
func Sources(p *analysis.Pass) []Source {
	var (
		sources []Source
		seen    = make(map[string]struct{})
	)

	add := func(name string, readFile func(string) ([]byte, error)) {
		if _, ok := seen[name]; ok {
			return
		}

		seen[name] = struct{}{}
		sources = append(sources, Source{name: name, read: func() ([]byte, error) { return readFile(name) }})
	}

	readFile := p.ReadFile
	if readFile == nil {
		readFile = os.ReadFile
	}

	for _, name := range p.OtherFiles {
		if source.IsRuby(name) {
			add(name, readFile)
		}
	}

	dirs := make(map[string]struct{})

	for _, f := range p.Files {
		tf := p.Fset.File(f.FileStart)
		if tf == nil {
			continue
		}

		dir := filepath.Dir(tf.Name())
		if _, ok := dirs[dir]; ok {
			continue
		}

		dirs[dir] = struct{}{}

		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}

		for _, e := range entries {
			if !e.IsDir() && source.IsRuby(e.Name()) {
				// Siblings are not part of the package, so the pass can't read them.
				add(filepath.Join(dir, e.Name()), os.ReadFile)
			}
		}
	}

	return sources
}
