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

package parse_test

import (
	"go/ast"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/tools/go/analysis"

	. "fillmore-labs.com/numberedparams/internal/parse"
)

func TestAnalyzer(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	files := map[string]string{
		"good.rb":   "users.map { |user| user.name }\n",
		"bad.rb":    "users.map { |user|\n",
		"notes.txt": "not ruby",
	}

	var others []string

	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("Can't write %s: %v", name, err)
		}

		others = append(others, path)
	}

	var diagnostics []analysis.Diagnostic

	p := &analysis.Pass{
		Analyzer:   Analyzer,
		Fset:       token.NewFileSet(),
		OtherFiles: others,
		Report:     func(d analysis.Diagnostic) { diagnostics = append(diagnostics, d) },
	}

	res, err := Analyzer.Run(p)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	trees := res.(*Result).Trees
	if len(trees) != 1 || trees[0].File().Name() != filepath.Join(dir, "good.rb") {
		t.Errorf("Expected exactly the parsable Ruby file, got %d trees", len(trees))
	}

	if len(diagnostics) != 1 || diagnostics[0].Category != SyntaxCategory {
		t.Errorf("Expected one syntax diagnostic, got %+v", diagnostics)
	}
}

func TestSourcesSiblings(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	for _, name := range []string{"main.go", "task.rb", "Rakefile", "README.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatalf("Can't write %s: %v", name, err)
		}
	}

	fset := token.NewFileSet()
	tf := fset.AddFile(filepath.Join(dir, "main.go"), -1, 1)

	p := &analysis.Pass{
		Fset:       fset,
		Files:      []*ast.File{{FileStart: tf.Pos(0)}},
		OtherFiles: []string{filepath.Join(dir, "task.rb")},
	}

	sources := Sources(p)

	got := make(map[string]int)
	for _, s := range sources {
		got[filepath.Base(s.Name())]++
	}

	if len(sources) != 2 || got["task.rb"] != 1 || got["Rakefile"] != 1 {
		t.Errorf("Got sources %v, want task.rb and Rakefile once", got)
	}
}
