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

// Package edit applies text edits to source buffers.
package edit

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"go/token"
	"slices"

	"golang.org/x/tools/go/analysis"
)

var (
	// ErrOverlap is returned when two edits overlap.
	ErrOverlap = errors.New("overlapping edits")

	// ErrRange is returned when an edit lies outside the source.
	ErrRange = errors.New("edit out of range")
)

// Edit replaces the bytes [Start, End) of a source with New.
type Edit struct {
	Start, End int
	New        []byte
}

func (e Edit) String() string {
	return fmt.Sprintf("[%d,%d)=%q", e.Start, e.End, e.New)
}

// FromTextEdits converts position based edits into offsets of file.
func FromTextEdits(file *token.File, edits []analysis.TextEdit) ([]Edit, error) {
	result := make([]Edit, 0, len(edits))

	for _, e := range edits {
		end := e.End
		if !end.IsValid() {
			end = e.Pos // insertion
		}

		start, stop := int(e.Pos)-file.Base(), int(end)-file.Base()
		if !e.Pos.IsValid() || start < 0 || stop < start || stop > file.Size() {
			return nil, fmt.Errorf("%w: %d-%d in %s", ErrRange, e.Pos, e.End, file.Name())
		}

		result = append(result, Edit{Start: start, End: stop, New: e.NewText})
	}

	return result, nil
}

// Sort orders edits by position. Insertions come before replacements starting at the same offset.
func Sort(edits []Edit) {
	slices.SortStableFunc(edits, func(a, b Edit) int {
		return cmp.Or(cmp.Compare(a.Start, b.Start), cmp.Compare(a.End, b.End))
	})
}

// Overlaps reports whether two edits touch a common byte or insert into the same place.
func Overlaps(a, b Edit) bool {
	if a.Start > b.Start {
		a, b = b, a
	}

	return b.Start < a.End || a.Start == b.Start && (a.Start == a.End) == (b.Start == b.End)
}

// Apply applies the edits to src and returns the new buffer. src is not modified.
func Apply(src []byte, edits []Edit) ([]byte, error) {
	edits = slices.Clone(edits)
	Sort(edits)

	size := len(src)
	for i, e := range edits {
		if e.Start < 0 || e.End < e.Start || e.End > len(src) {
			return nil, fmt.Errorf("%w: %v in source of %d bytes", ErrRange, e, len(src))
		}

		if i > 0 && Overlaps(edits[i-1], e) {
			return nil, fmt.Errorf("%w: %v and %v", ErrOverlap, edits[i-1], e)
		}

		size += len(e.New) - (e.End - e.Start)
	}

	var out bytes.Buffer
	out.Grow(size)

	last := 0
	for _, e := range edits {
		out.Write(src[last:e.Start]) // ignore error
		out.Write(e.New)             // ignore error
		last = e.End
	}

	out.Write(src[last:]) // ignore error

	return out.Bytes(), nil
}
