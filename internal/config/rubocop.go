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

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	ignore "github.com/sabhiram/go-gitignore"
)

// CopName is the qualified name of the rule in RuboCop configuration files.
const CopName = "Style/PreferNumberedParameter"

// DefaultFile is the configuration file used when none is specified.
const DefaultFile = ".rubocop.yml"

// ErrInvalid is wrapped by errors of invalid configuration values.
var ErrInvalid = errors.New("invalid configuration")

// minimumRubyVersion is the first Ruby version supporting numbered parameters.
var minimumRubyVersion = RubyVersion{Major: 2, Minor: 7}

// File is the part of a RuboCop configuration file read by numberedparams.
// Other keys are ignored.
type File struct {
	AllCops AllCops `yaml:"AllCops"`
	Cop     Cop     `yaml:"Style/PreferNumberedParameter"`
}

// AllCops holds the settings shared by all cops.
type AllCops struct {
	TargetRubyVersion *RubyVersion `yaml:"TargetRubyVersion"`
	Exclude           []string     `yaml:"Exclude"`
}

// Cop holds the settings of the numbered parameter cop.
type Cop struct {
	Enabled      *Switch  `yaml:"Enabled"`
	AutoCorrect  *Switch  `yaml:"AutoCorrect"`
	MaxArguments *int     `yaml:"MaxArguments"`
	Exclude      []string `yaml:"Exclude"`
}

// Settings are the resolved settings of the rule.
type Settings struct {
	Enabled      bool
	AutoCorrect  bool
	MaxArguments int
	Exclude      []string
}

// Default returns the settings used without a configuration file.
func Default() Settings {
	return Settings{Enabled: true, AutoCorrect: true, MaxArguments: DefaultMaxArguments}
}

// Load reads the configuration file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse decodes a configuration file.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &f, nil
}

// Settings resolves the file's settings, applying defaults for missing values.
func (f *File) Settings() (Settings, error) {
	s := Default()

	if e := f.Cop.Enabled; e != nil {
		s.Enabled = bool(*e)
	}

	if v := f.AllCops.TargetRubyVersion; v != nil && v.Less(minimumRubyVersion) {
		s.Enabled = false // numbered parameters need Ruby 2.7
	}

	if a := f.Cop.AutoCorrect; a != nil {
		s.AutoCorrect = bool(*a)
	}

	if m := f.Cop.MaxArguments; m != nil {
		if *m < 1 {
			return Settings{}, fmt.Errorf("%w: %s MaxArguments must be positive, got %d", ErrInvalid, CopName, *m)
		}

		s.MaxArguments = *m
	}

	s.Exclude = append(append(s.Exclude, f.AllCops.Exclude...), f.Cop.Exclude...)

	return s, nil
}

// Matcher returns a matcher for the excluded paths, or nil if nothing is excluded.
func (s Settings) Matcher() *ignore.GitIgnore {
	if len(s.Exclude) == 0 {
		return nil
	}

	return ignore.CompileIgnoreLines(s.Exclude...)
}

// Switch is a boolean setting that also accepts RuboCop's symbolic values.
type Switch bool

// UnmarshalYAML implements [yaml.BytesUnmarshaler].
func (s *Switch) UnmarshalYAML(b []byte) error {
	v := strings.Trim(strings.TrimSpace(string(b)), `"'`)

	switch strings.ToLower(v) {
	case "true", "always", "contextual", "yes", "on":
		*s = true

	case "false", "disabled", "pending", "no", "off":
		*s = false

	default:
		return fmt.Errorf("%w: unexpected switch value %q", ErrInvalid, v)
	}

	return nil
}

// RubyVersion is a Ruby language version.
type RubyVersion struct {
	Major, Minor int
}

// Less reports whether v is older than o.
func (v RubyVersion) Less(o RubyVersion) bool {
	return v.Major < o.Major || v.Major == o.Major && v.Minor < o.Minor
}

func (v RubyVersion) String() string {
	return strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor)
}

// UnmarshalYAML implements [yaml.BytesUnmarshaler].
func (v *RubyVersion) UnmarshalYAML(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"'`)

	majorStr, minorStr, _ := strings.Cut(s, ".")

	major, err := strconv.Atoi(majorStr)
	if err != nil {
		return fmt.Errorf("%w: Ruby version %q", ErrInvalid, s)
	}

	minor := 0
	if minorStr != "" {
		if minor, err = strconv.Atoi(minorStr); err != nil {
			return fmt.Errorf("%w: Ruby version %q", ErrInvalid, s)
		}
	}

	*v = RubyVersion{Major: major, Minor: minor}

	return nil
}
