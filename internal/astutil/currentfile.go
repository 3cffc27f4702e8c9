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

package astutil

import (
	"go/token"
	"regexp"
	"slices"
	"strings"

	"fillmore-labs.com/numberedparams/internal/syntax"
)

const (
	// linterName is the name used in nolint directives.
	linterName = "numberedparams"

	// copName is the name used in rubocop directives.
	copName = "Style/PreferNumberedParameter"

	copDepartment = "Style"
)

// CurrentFile holds file information for analysis.
type CurrentFile struct {
	tree      *syntax.Tree
	generated bool
	disabled  []lineRange
}

// lineRange is an inclusive range of lines where the rule is disabled.
type lineRange struct{ from, to int }

// NewCurrentFile creates a new [CurrentFile] from a parsed *[syntax.Tree].
func NewCurrentFile(tree *syntax.Tree) CurrentFile {
	if tree == nil || tree.File() == nil {
		return CurrentFile{}
	}

	c := CurrentFile{tree: tree}
	c.scanComments()

	return c
}

// Valid returns true if the [CurrentFile] was successfully created
// from a valid syntax tree.
func (c CurrentFile) Valid() bool {
	return c.tree != nil
}

// Tree returns the syntax tree of the file.
func (c CurrentFile) Tree() *syntax.Tree {
	return c.tree
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// Lines returns the number of lines a node spans.
func (c CurrentFile) Lines(n syntax.Cursor) int {
	return c.tree.Line(n.End()) - c.tree.Line(n.Pos()) + 1
}

// NoLintComment checks if the line of pos is followed by a # nolint:numberedparams comment
// or lies in a region disabled by rubocop:disable directives.
func (c CurrentFile) NoLintComment(pos token.Pos) bool {
	if c.tree == nil {
		return false
	}

	line := c.tree.Line(pos)

	for _, r := range c.disabled {
		if r.from > line {
			break
		}

		if line <= r.to {
			return true
		}
	}

	// find the first comment starting after the position
	comments := c.tree.Comments()

	i := c.tree.CommentAfter(pos)
	if i >= len(comments) {
		return false
	}

	comment := comments[i]

	if c.tree.Line(comment.Pos) != line {
		return false // not on this line
	}

	return CommentHasNoLint(comment.Text)
}

var generatedPattern = regexp.MustCompile(`^#\s*Code generated .* DO NOT EDIT\.$`)

func (c *CurrentFile) scanComments() {
	const open = -1

	start := open

	for _, comment := range c.tree.Comments() {
		if generatedPattern.MatchString(comment.Text) {
			c.generated = true
		}

		directive, ok := rubocopDirective(comment.Text)
		if !ok {
			continue
		}

		line := c.tree.Line(comment.Pos)

		switch {
		case !c.ownLine(comment, line):
			// trailing directives only apply to their own line
			if directive == disable {
				c.disabled = append(c.disabled, lineRange{line, line})
			}

		case directive == disable && start == open:
			start = line

		case directive == enable && start != open:
			c.disabled = append(c.disabled, lineRange{start, line})
			start = open
		}
	}

	if start != open {
		c.disabled = append(c.disabled, lineRange{start, c.tree.File().LineCount()})
	}

	slices.SortFunc(c.disabled, func(a, b lineRange) int { return a.from - b.from })
}

// ownLine reports whether only white space precedes the comment on its line.
func (c CurrentFile) ownLine(comment syntax.Comment, line int) bool {
	return strings.TrimSpace(c.tree.Text(c.tree.File().LineStart(line), comment.Pos)) == ""
}

type directive int

const (
	disable directive = iota
	enable
)

var (
	nolintPattern  = regexp.MustCompile(`^#\s*nolint:([a-zA-Z0-9,_-]+)`)
	rubocopPattern = regexp.MustCompile(`^#\s*rubocop\s*:\s*(disable|enable|todo)\s+(.+)$`)
)

// rubocopDirective parses a `# rubocop:disable` or `# rubocop:enable` comment naming this rule.
func rubocopDirective(text string) (directive, bool) {
	matches := rubocopPattern.FindStringSubmatch(text)
	if matches == nil {
		return 0, false
	}

	cops, _, _ := strings.Cut(matches[2], "--") // strip the explanation

	for cop := range strings.SplitSeq(cops, ",") {
		switch strings.TrimSpace(cop) {
		case copName, copDepartment, "all":
			if matches[1] == "enable" {
				return enable, true
			}

			return disable, true
		}
	}

	return 0, false
}

// CommentHasNoLint checks if the provided comment contains a `# nolint:numberedparams` directive
// or a trailing `# rubocop:disable` for this rule.
func CommentHasNoLint(text string) bool {
	if d, ok := rubocopDirective(text); ok {
		return d == disable
	}

	matches := nolintPattern.FindStringSubmatch(text)
	if matches == nil {
		return false
	}

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == linterName || l == "all" {
			return true
		}
	}

	return false
}
