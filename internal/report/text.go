// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"
)

// A table does layout of text tables. Cells are added row by row with
// Row and Cell; Format computes column widths and writes the result.
type table struct {
	cells []textCell
	cols  int

	curRow, curCol int
}

type textCell struct {
	row, col   int
	value      string
	leftMargin string
	alignment  align
}

type cellOption func(c *textCell)

var (
	alignedLeft  cellOption = func(c *textCell) { c.alignment = alignLeft }
	alignedRight cellOption = func(c *textCell) { c.alignment = alignRight }
)

type align int

const (
	alignLeft align = iota
	alignRight
)

func (a align) lpad(s string, w int) string {
	if a == alignRight {
		return fmt.Sprintf("%*s", w, s)
	}
	return s
}

// Row starts a new row.
func (t *table) Row() *table {
	if len(t.cells) > 0 {
		t.curRow++
	}
	t.curCol = 0
	return t
}

// Cell adds a cell at the current row and column. Every cell but the
// first in a row is preceded by a two-space margin, unless it is
// empty.
func (t *table) Cell(value string, opts ...cellOption) *table {
	margin := "  "
	if t.curCol == 0 || value == "" {
		margin = ""
	}
	t.cells = append(t.cells, textCell{t.curRow, t.curCol, value, margin, alignLeft})
	for _, o := range opts {
		o(&t.cells[len(t.cells)-1])
	}
	t.curCol++
	t.cols = max(t.cols, t.curCol)
	return t
}

// Format lays out t and writes it to w. Empty cells print nothing, so
// rows never end in spaces.
func (t *table) Format(w io.Writer) error {
	// Each column is as wide as its widest cell plus its widest
	// margin.
	lmargin := make([]int, t.cols)
	for _, cell := range t.cells {
		lmargin[cell.col] = max(lmargin[cell.col], utf8.RuneCountInString(cell.leftMargin))
	}
	ws := make([]int, t.cols)
	for _, cell := range t.cells {
		ws[cell.col] = max(ws[cell.col], utf8.RuneCountInString(cell.value)+lmargin[cell.col])
	}

	// offs[i] is where column i's margin begins.
	offs := make([]int, t.cols+1)
	for i, w := range ws {
		offs[i+1] = offs[i] + w
	}

	sort.SliceStable(t.cells, func(i, j int) bool {
		if t.cells[i].row != t.cells[j].row {
			return t.cells[i].row < t.cells[j].row
		}
		return t.cells[i].col < t.cells[j].col
	})
	row, off := 0, 0
	for _, cell := range t.cells {
		if strings.TrimSpace(cell.value) == "" {
			continue
		}
		for cell.row > row {
			if _, err := fmt.Fprintf(w, "\n"); err != nil {
				return err
			}
			row++
			off = 0
		}

		spaces := offs[cell.col] - off
		if _, err := fmt.Fprintf(w, "%*s%*s", spaces, "", lmargin[cell.col], cell.leftMargin); err != nil {
			return err
		}
		off += spaces + lmargin[cell.col]

		s := cell.alignment.lpad(cell.value, offs[cell.col+1]-offs[cell.col]-lmargin[cell.col])
		if _, err := fmt.Fprintf(w, "%s", s); err != nil {
			return err
		}
		off += utf8.RuneCountInString(s)
	}
	if len(t.cells) > 0 {
		if _, err := fmt.Fprintf(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteText writes rep as a fixed-width table followed by any
// warnings. The label column is left-aligned, the numeric columns are
// right-aligned, and the final note is free-form.
func (rep *Report) WriteText(w io.Writer) error {
	if rep.Title != "" {
		if _, err := fmt.Fprintf(w, "%s\n\n", rep.Title); err != nil {
			return err
		}
	}
	var t table
	addRow := func(cells []string) {
		t.Row()
		for i, c := range cells {
			switch i {
			case 0, len(cells) - 1:
				t.Cell(c, alignedLeft)
			default:
				t.Cell(c, alignedRight)
			}
		}
	}
	addRow(header)
	for _, r := range rep.Rows {
		addRow(r.cells())
	}
	if err := t.Format(w); err != nil {
		return err
	}
	for _, r := range rep.Rows {
		for _, warn := range r.Warnings {
			if _, err := fmt.Fprintf(w, "%s: %s\n", r.Label, warn); err != nil {
				return err
			}
		}
	}
	return nil
}
