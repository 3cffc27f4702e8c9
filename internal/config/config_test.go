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

package config_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"testing"

	. "fillmore-labs.com/numberedparams/internal/config"
)

func TestSettings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
		want Settings
	}{
		{
			name: "Empty",
			yaml: ``,
			want: Default(),
		},
		{
			name: "OtherCops",
			yaml: "Style/StringLiterals:\n  EnforcedStyle: double_quotes\n",
			want: Default(),
		},
		{
			name: "MaxArguments",
			yaml: "Style/PreferNumberedParameter:\n  MaxArguments: 2\n",
			want: Settings{Enabled: true, AutoCorrect: true, MaxArguments: 2},
		},
		{
			name: "Disabled",
			yaml: "Style/PreferNumberedParameter:\n  Enabled: false\n",
			want: Settings{Enabled: false, AutoCorrect: true, MaxArguments: 1},
		},
		{
			name: "Pending",
			yaml: "Style/PreferNumberedParameter:\n  Enabled: pending\n",
			want: Settings{Enabled: false, AutoCorrect: true, MaxArguments: 1},
		},
		{
			name: "AutoCorrectDisabled",
			yaml: "Style/PreferNumberedParameter:\n  AutoCorrect: disabled\n",
			want: Settings{Enabled: true, AutoCorrect: false, MaxArguments: 1},
		},
		{
			name: "OldRuby",
			yaml: "AllCops:\n  TargetRubyVersion: 2.6\n",
			want: Settings{Enabled: false, AutoCorrect: true, MaxArguments: 1},
		},
		{
			name: "NewRuby",
			yaml: "AllCops:\n  TargetRubyVersion: '3.3'\n",
			want: Default(),
		},
		{
			name: "Exclude",
			yaml: "AllCops:\n  Exclude:\n    - 'db/**/*'\nStyle/PreferNumberedParameter:\n  Exclude:\n    - 'spec/**/*'\n",
			want: Settings{Enabled: true, AutoCorrect: true, MaxArguments: 1, Exclude: []string{"db/**/*", "spec/**/*"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, err := Parse([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			got, err := f.Settings()
			if err != nil {
				t.Fatalf("Settings failed: %v", err)
			}

			if got.Enabled != tt.want.Enabled || got.AutoCorrect != tt.want.AutoCorrect ||
				got.MaxArguments != tt.want.MaxArguments || !slices.Equal(got.Exclude, tt.want.Exclude) {
				t.Errorf("Got settings %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSettingsInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
	}{
		{"ZeroMaxArguments", "Style/PreferNumberedParameter:\n  MaxArguments: 0\n"},
		{"NegativeMaxArguments", "Style/PreferNumberedParameter:\n  MaxArguments: -3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, err := Parse([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if _, err := f.Settings(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Got error %v, want %v", err, ErrInvalid)
			}
		})
	}
}

func TestParseInvalidSwitch(t *testing.T) {
	t.Parallel()

	if _, err := Parse([]byte("Style/PreferNumberedParameter:\n  Enabled: maybe\n")); err == nil {
		t.Error("Expected error for invalid switch value")
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFile)

	if err := os.WriteFile(path, []byte("Style/PreferNumberedParameter:\n  MaxArguments: 3\n"), 0o644); err != nil {
		t.Fatalf("Can't write config: %v", err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if f.Cop.MaxArguments == nil || *f.Cop.MaxArguments != 3 {
		t.Errorf("Got MaxArguments %v, want 3", f.Cop.MaxArguments)
	}

	if _, err := Load(filepath.Join(dir, "missing.yml")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Got error %v, want %v", err, fs.ErrNotExist)
	}
}

func TestMatcher(t *testing.T) {
	t.Parallel()

	if m := Default().Matcher(); m != nil {
		t.Error("Expected nil matcher without excludes")
	}

	s := Settings{Exclude: []string{"db/**/*"}}
	m := s.Matcher()

	if !m.MatchesPath("db/schema.rb") {
		t.Error("Expected db/schema.rb to be excluded")
	}

	if m.MatchesPath("app/models/user.rb") {
		t.Error("Expected app/models/user.rb not to be excluded")
	}
}

func TestBitMask(t *testing.T) {
	t.Parallel()

	b := DefaultBehavior()

	if !b.Enabled(AutoCorrect) || b.Enabled(IncludeGenerated) {
		t.Errorf("Unexpected default behavior %+v", b)
	}

	b.Set(IncludeGenerated, true)
	b.Set(AutoCorrect, false)

	if b.Enabled(AutoCorrect) || !b.Enabled(IncludeGenerated) {
		t.Errorf("Unexpected behavior %+v", b)
	}
}
