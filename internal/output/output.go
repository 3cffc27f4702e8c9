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

// Package output formats checker results for the terminal.
package output

import (
	"bytes"
	"fmt"
	"go/token"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"fillmore-labs.com/numberedparams/internal/checker"
	"fillmore-labs.com/numberedparams/internal/parse"
)

// Printer writes checker results.
type Printer struct {
	w io.Writer

	fileStyle, severityStyle, fatalStyle, correctedStyle, caretStyle, summaryStyle *color.Color
}

// New creates a [Printer] writing to w, using colors when colored is set.
func New(w io.Writer, colored bool) *Printer {
	p := &Printer{
		w:              w,
		fileStyle:      color.New(color.FgCyan),
		severityStyle:  color.New(color.FgYellow),
		fatalStyle:     color.New(color.FgRed, color.Bold),
		correctedStyle: color.New(color.FgGreen),
		caretStyle:     color.New(color.FgYellow),
		summaryStyle:   color.New(color.Bold),
	}

	for _, c := range []*color.Color{p.fileStyle, p.severityStyle, p.fatalStyle, p.correctedStyle, p.caretStyle, p.summaryStyle} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

// Text prints every offense with its source line, followed by a summary line.
func (p *Printer) Text(res *checker.Result) error {
	var buf bytes.Buffer

	for _, f := range res.Files {
		lines := bytes.Split(f.Source, []byte("\n"))

		for _, o := range f.Offenses {
			pos, end := res.Fset.Position(o.Pos), res.Fset.Position(o.End)

			p.fileStyle.Fprint(&buf, pos.Filename) // ignore error
			fmt.Fprintf(&buf, ":%d:%d: ", pos.Line, pos.Column)

			if o.Category == parse.SyntaxCategory {
				p.fatalStyle.Fprint(&buf, "F") // ignore error
			} else {
				p.severityStyle.Fprint(&buf, "C") // ignore error
			}

			buf.WriteString(": ") // ignore error

			switch {
			case o.Corrected:
				p.correctedStyle.Fprint(&buf, "[Corrected] ") // ignore error

			case o.Correctable():
				buf.WriteString("[Correctable] ") // ignore error
			}

			if o.Category != "" {
				buf.WriteString(o.Category + ": ") // ignore error
			}

			buf.WriteString(o.Message) // ignore error
			buf.WriteByte('\n')        // ignore error

			if pos.Line < 1 || pos.Line > len(lines) {
				continue
			}

			line := lines[pos.Line-1]
			buf.Write(line)     // ignore error
			buf.WriteByte('\n') // ignore error

			p.caretStyle.Fprintln(&buf, caret(line, pos, end)) // ignore error
		}
	}

	buf.WriteByte('\n') // ignore error

	p.summaryStyle.Fprintln(&buf, summary(res)) // ignore error

	_, err := buf.WriteTo(p.w)

	return err
}

// caret underlines the offense in line from pos up to end, or to the end of the line when end is on a later line.
func caret(line []byte, pos, end token.Position) string {
	start := min(max(pos.Column-1, 0), len(line))

	stop := len(line)
	if end.Line == pos.Line {
		stop = min(max(end.Column-1, start), len(line))
	}

	var b strings.Builder

	for _, r := range string(line[:start]) {
		if r == '\t' {
			b.WriteByte('\t') // ignore error
		} else {
			b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r))) // ignore error
		}
	}

	b.WriteString(strings.Repeat("^", max(runewidth.StringWidth(string(line[start:stop])), 1))) // ignore error

	return b.String()
}
