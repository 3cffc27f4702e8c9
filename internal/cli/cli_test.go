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

package cli_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "fillmore-labs.com/numberedparams/internal/cli"
	"fillmore-labs.com/numberedparams/internal/config"
)

func setup(tb testing.TB, files map[string]string) string {
	tb.Helper()

	dir := tb.TempDir()

	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			tb.Fatalf("Can't create directory for %s: %v", name, err)
		}

		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			tb.Fatalf("Can't write %s: %v", name, err)
		}
	}

	return dir
}

func execute(tb testing.TB, args ...string) (string, error) {
	tb.Helper()

	cmd := NewCommand()
	cmd.SetArgs(args)

	var out, errOut strings.Builder
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.ExecuteContext(tb.Context())

	return out.String(), err
}

func TestReport(t *testing.T) {
	t.Parallel()

	dir := setup(t, map[string]string{
		"app/user.rb":         "users.map { |user| user.name }\n",
		"app/clean.rb":        "users.map { _1.name }\n",
		"vendor/bundle.rb":    "users.map { |user| user.name }\n",
		"lib/tasks/x.rake":    "names.each { |name| puts name }\n",
		"db/schema.rb":        "tables.each { |table| table }\n",
		"config/.rubocop.yml": "AllCops:\n  Exclude:\n    - 'db/**/*'\n",
	})

	out, err := execute(t, "--no-color", "--config", filepath.Join(dir, "config", ".rubocop.yml"), dir)
	if !errors.Is(err, ErrOffenses) {
		t.Fatalf("Got error %v, want %v", err, ErrOffenses)
	}

	for _, want := range []string{
		"user.rb:1:1: C: [Correctable] Style/PreferNumberedParameter:",
		"x.rake:1:1: C: [Correctable]",
		"3 files inspected, 2 offenses detected, 2 offenses autocorrectable",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Missing %q in output:\n%s", want, out)
		}
	}

	if strings.Contains(out, "bundle.rb") || strings.Contains(out, "schema.rb") {
		t.Errorf("Excluded files reported:\n%s", out)
	}
}

func TestAutoCorrect(t *testing.T) {
	t.Parallel()

	dir := setup(t, map[string]string{
		"app.rb": "hash.each { |key, value| puts \"#{key}: #{value}\" }\n",
	})

	out, err := execute(t, "--no-color", "-a", "--max-arguments=2", dir)
	if err != nil {
		t.Fatalf("Execute failed: %v\n%s", err, out)
	}

	got, err := os.ReadFile(filepath.Join(dir, "app.rb"))
	if err != nil {
		t.Fatalf("Can't read corrected file: %v", err)
	}

	if want := "hash.each { puts \"#{_1}: #{_2}\" }\n"; string(got) != want {
		t.Errorf("Got %q, want %q", got, want)
	}

	if !strings.Contains(out, "1 offense corrected") {
		t.Errorf("Missing corrected summary in:\n%s", out)
	}
}

func TestSummaryFormat(t *testing.T) {
	t.Parallel()

	dir := setup(t, map[string]string{"app.rb": "users.map { |user| user.name }\n"})

	out, err := execute(t, "--no-color", "-f", "summary", dir)
	if !errors.Is(err, ErrOffenses) {
		t.Fatalf("Got error %v, want %v", err, ErrOffenses)
	}

	if !strings.Contains(out, "TOTAL FILES 1") {
		t.Errorf("Missing table footer in:\n%s", out)
	}
}

func TestDisabledByConfig(t *testing.T) {
	t.Parallel()

	dir := setup(t, map[string]string{
		"app.rb":       "users.map { |user| user.name }\n",
		".rubocop.yml": "AllCops:\n  TargetRubyVersion: 2.6\n",
	})

	out, err := execute(t, "--config", filepath.Join(dir, ".rubocop.yml"), dir)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if out != "" {
		t.Errorf("Got output %q for disabled rule", out)
	}
}

func TestErrors(t *testing.T) {
	t.Parallel()

	dir := setup(t, map[string]string{
		"app.rb":       "users.map { |user| user.name }\n",
		".rubocop.yml": "Style/PreferNumberedParameter:\n  MaxArguments: 0\n",
	})

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"InvalidConfig", []string{"-c", filepath.Join(dir, ".rubocop.yml"), dir}, config.ErrInvalid},
		{"InvalidFlag", []string{"--max-arguments=0", filepath.Join(dir, "app.rb")}, config.ErrInvalid},
		{"MissingConfig", []string{"-c", filepath.Join(dir, "missing.yml"), dir}, os.ErrNotExist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := execute(t, tt.args...); !errors.Is(err, tt.want) {
				t.Errorf("Got error %v, want %v", err, tt.want)
			}
		})
	}
}

func TestUnknownFormat(t *testing.T) {
	t.Parallel()

	if _, err := execute(t, "--format", "json", t.TempDir()); err == nil {
		t.Error("Expected error for unknown format")
	}
}

func TestExecuteExitCode(t *testing.T) {
	t.Parallel()

	if code := Execute(t.Context(), []string{"--format", "json", t.TempDir()}); code != 2 {
		t.Errorf("Got exit code %d, want 2", code)
	}
}
