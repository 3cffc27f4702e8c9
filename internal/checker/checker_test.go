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

package checker_test

import (
	"os"
	"path/filepath"
	"testing"

	"fillmore-labs.com/numberedparams/analyzer"
	. "fillmore-labs.com/numberedparams/internal/checker"
	"fillmore-labs.com/numberedparams/internal/parse"
)

func writeFiles(tb testing.TB, files map[string]string) string {
	tb.Helper()

	dir := tb.TempDir()

	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o640); err != nil {
			tb.Fatalf("Can't write %s: %v", name, err)
		}
	}

	return dir
}

func TestRunFix(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{
		"a.rb": "users.map { |user| user.name }\nhash.each { |k, v| v }\n",
		"b.rb": "rows.map { |row| row.map { |cell| cell.strip } }\n",
	})

	files := []string{filepath.Join(dir, "a.rb"), filepath.Join(dir, "b.rb")}

	res, err := Run(t.Context(), analyzer.New(), files, Options{Parallel: 2, Fix: true})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(res.Files) != 2 || res.Files[0].Name != files[0] || res.Files[1].Name != files[1] {
		t.Fatalf("Results not in input order: %+v", res.Files)
	}

	if got, want := res.Offenses(), 2; got != want {
		t.Errorf("Got %d offenses, want %d", got, want)
	}

	if got, want := res.Corrected(), 2; got != want {
		t.Errorf("Got %d corrected offenses, want %d", got, want)
	}

	want := map[string]string{
		"a.rb": "users.map { _1.name }\nhash.each { |k, v| v }\n",
		"b.rb": "rows.map { |row| row.map { _1.strip } }\n",
	}

	for name, content := range want {
		path := filepath.Join(dir, name)

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("Can't read %s: %v", name, err)
		}

		if string(got) != content {
			t.Errorf("Got %s content %q, want %q", name, got, content)
		}

		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("Can't stat %s: %v", name, err)
		}

		if perm := info.Mode().Perm(); perm != 0o640 {
			t.Errorf("Got %s mode %v, want %v", name, perm, os.FileMode(0o640))
		}
	}
}

func TestRunFixKeepsValidRuby(t *testing.T) {
	t.Parallel()

	const src = "items.each { _1.map { |x| x.name } }\ncounts.map { |n| n += 1 }\nitems.each { |x| foo(x:) }\n"

	dir := writeFiles(t, map[string]string{"a.rb": src})
	path := filepath.Join(dir, "a.rb")

	res, err := Run(t.Context(), analyzer.New(), []string{path}, Options{Fix: true})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if got, want := res.Offenses(), 3; got != want {
		t.Errorf("Got %d offenses, want %d", got, want)
	}

	if got, want := res.Corrected(), 1; got != want {
		t.Errorf("Got %d corrected offenses, want %d", got, want)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Can't read a.rb: %v", err)
	}

	want := "items.each { _1.map { |x| x.name } }\ncounts.map { |n| n += 1 }\nitems.each { foo(x: _1) }\n"
	if string(got) != want {
		t.Errorf("Got content %q, want %q", got, want)
	}
}

func TestRunReportOnly(t *testing.T) {
	t.Parallel()

	const src = "users.map { |user| user.name }\n"

	dir := writeFiles(t, map[string]string{"a.rb": src})
	path := filepath.Join(dir, "a.rb")

	res, err := Run(t.Context(), analyzer.Analyzer, []string{path}, Options{})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	offenses := res.Files[0].Offenses
	if len(offenses) != 1 || !offenses[0].Correctable() || offenses[0].Corrected {
		t.Fatalf("Unexpected offenses %+v", offenses)
	}

	pos := res.Fset.Position(offenses[0].Pos)
	if pos.Line != 1 || pos.Column != 1 {
		t.Errorf("Got offense at %s, want line 1 column 1", pos)
	}

	if got, _ := os.ReadFile(path); string(got) != src {
		t.Errorf("File modified without fix: %q", got)
	}
}

func TestRunSyntaxError(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{"broken.rb": "users.map { |user| user.name\n"})

	res, err := Run(t.Context(), analyzer.Analyzer, []string{filepath.Join(dir, "broken.rb")}, Options{Fix: true})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	offenses := res.Files[0].Offenses
	if len(offenses) != 1 || offenses[0].Category != parse.SyntaxCategory {
		t.Errorf("Got offenses %+v, want one syntax error", offenses)
	}
}

func TestRunMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := Run(t.Context(), analyzer.Analyzer, []string{filepath.Join(t.TempDir(), "missing.rb")}, Options{}); err == nil {
		t.Error("Expected error for missing file")
	}
}
