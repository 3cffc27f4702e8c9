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

package output

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"fillmore-labs.com/numberedparams/internal/checker"
)

// Summary prints a table of offense counts per file.
func (p *Printer) Summary(res *checker.Result) error {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"File", "Offenses", "Corrected"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})

	for _, f := range res.Files {
		if len(f.Offenses) == 0 {
			continue
		}

		table.Append([]string{f.Name, strconv.Itoa(len(f.Offenses)), strconv.Itoa(f.Corrected())})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(res.Files)),
		strconv.Itoa(res.Offenses()),
		strconv.Itoa(res.Corrected()),
	})

	table.Render()

	p.summaryStyle.Fprintln(&buf, summary(res)) // ignore error

	_, err := buf.WriteTo(p.w)

	return err
}

// summary returns the closing line, like "2 files inspected, 3 offenses detected, 1 offense corrected".
func summary(res *checker.Result) string {
	correctable := 0

	for _, f := range res.Files {
		for _, o := range f.Offenses {
			if o.Correctable() && !o.Corrected {
				correctable++
			}
		}
	}

	s := plural(len(res.Files), "file") + " inspected, " + plural(res.Offenses(), "offense") + " detected"

	switch corrected := res.Corrected(); {
	case corrected > 0:
		s += ", " + plural(corrected, "offense") + " corrected"

	case correctable > 0:
		s += ", " + plural(correctable, "offense") + " autocorrectable"
	}

	return s
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}

	if n == 0 {
		return "no " + noun + "s"
	}

	return strconv.Itoa(n) + " " + noun + "s"
}
