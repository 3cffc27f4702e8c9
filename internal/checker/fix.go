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

package checker

import (
	"context"
	"fmt"
	"go/token"
	"log/slog"
	"os"
	"slices"

	"fillmore-labs.com/numberedparams/internal/edit"
	"fillmore-labs.com/numberedparams/internal/parse"
)

var readFile = os.ReadFile

// fix applies the first suggested fix of each offense, skipping fixes conflicting with already accepted ones.
// The file is only rewritten when the result still parses.
func (c *fileChecker) fix(ctx context.Context, offenses []Offense) error {
	var (
		file     *token.File
		accepted []edit.Edit
		fixed    []int
	)

	for i, o := range offenses {
		if !o.Correctable() {
			continue
		}

		if file == nil {
			if file = c.fset.File(o.Pos); file == nil {
				return fmt.Errorf("no file for offense at %d", o.Pos)
			}
		}

		edits, err := edit.FromTextEdits(file, o.SuggestedFixes[0].TextEdits)
		if err != nil {
			return err
		}

		if conflicts(accepted, edits) {
			c.logger.Debug("Skipping conflicting fix", slog.String("pos", c.fset.Position(o.Pos).String()))

			continue
		}

		accepted = append(accepted, edits...)
		fixed = append(fixed, i)
	}

	if len(fixed) == 0 {
		return nil
	}

	out, err := edit.Apply(c.src, accepted)
	if err != nil {
		return fmt.Errorf("can't apply fixes: %w", err)
	}

	if err := reparse(ctx, c.name, out); err != nil {
		c.logger.Warn("Fixed source does not parse, keeping original", slog.Any("error", err))

		return nil
	}

	info, err := os.Stat(c.name)
	if err != nil {
		return err
	}

	if err := os.WriteFile(c.name, out, info.Mode().Perm()); err != nil {
		return fmt.Errorf("can't write fixes: %w", err)
	}

	for _, i := range fixed {
		offenses[i].Corrected = true
	}

	c.logger.Debug("Applied fixes", slog.Int("fixes", len(fixed)))

	return nil
}

// conflicts reports whether any of edits overlaps an accepted edit.
func conflicts(accepted, edits []edit.Edit) bool {
	return slices.ContainsFunc(edits, func(e edit.Edit) bool {
		return slices.ContainsFunc(accepted, func(a edit.Edit) bool { return edit.Overlaps(a, e) })
	})
}

// reparse checks that the rewritten source is still valid Ruby.
func reparse(ctx context.Context, name string, src []byte) error {
	fset := token.NewFileSet()

	file := fset.AddFile(name, -1, len(src))
	file.SetLinesForContent(src)

	_, err := parse.Parse(ctx, file, src)

	return err
}
