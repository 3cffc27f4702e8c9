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

// Package source discovers Ruby sources below a set of root paths.
package source

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	ignore "github.com/sabhiram/go-gitignore"
)

// IgnoredDirs are directories never descended into.
var IgnoredDirs = map[string]bool{
	".git":         true,
	".hg":          true,
	".svn":         true,
	".bundle":      true,
	"node_modules": true,
	"vendor":       true,
	"tmp":          true,
	"log":          true,
	"coverage":     true,
}

// Matcher reports whether a slash-separated path is excluded.
type Matcher interface {
	MatchesPath(path string) bool
}

// IsRuby reports whether the file name denotes a Ruby source.
func IsRuby(name string) bool {
	base := filepath.Base(name)

	switch base {
	case "Rakefile", "Gemfile", "Guardfile", "Capfile", "Vagrantfile":
		return true
	}

	switch filepath.Ext(base) {
	case ".rb", ".rake", ".gemspec", ".ru":
		return true
	}

	return false
}

// LoadGitignore loads .gitignore from root if it exists.
func LoadGitignore(root string) *ignore.GitIgnore {
	gitignorePath := filepath.Join(root, ".gitignore")

	if _, err := os.Stat(gitignorePath); err == nil {
		if gitignore, err := ignore.CompileIgnoreFile(gitignorePath); err == nil {
			return gitignore
		}
	}

	return nil
}

// Find returns the Ruby sources below the given roots, sorted and without duplicates.
//
// Files named explicitly are always included. Directories are walked recursively, skipping
// [IgnoredDirs], paths ignored by the root's .gitignore and paths matched by exclude.
func Find(roots []string, exclude Matcher) ([]string, error) {
	var files []string

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			files = append(files, filepath.Clean(root))

			continue
		}

		found, err := walk(root, exclude)
		if err != nil {
			return nil, err
		}

		files = append(files, found...)
	}

	slices.Sort(files)

	return slices.Compact(files), nil
}

func walk(root string, exclude Matcher) ([]string, error) {
	gitignore := LoadGitignore(root)

	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if path == root {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		relPath = filepath.ToSlash(relPath)

		skip := excluded(relPath, gitignore) || excluded(relPath, exclude) || excluded(filepath.ToSlash(path), exclude)

		if d.IsDir() {
			if IgnoredDirs[d.Name()] || skip {
				return filepath.SkipDir
			}

			return nil
		}

		if skip || !d.Type().IsRegular() || !IsRuby(path) {
			return nil
		}

		files = append(files, path)

		return nil
	})
	if err != nil && !errors.Is(err, fs.SkipAll) {
		return nil, err
	}

	return files, nil
}

func excluded(path string, m Matcher) bool {
	switch m := m.(type) {
	case nil:
		return false

	case *ignore.GitIgnore:
		return m != nil && m.MatchesPath(path)

	default:
		return m.MatchesPath(path)
	}
}
