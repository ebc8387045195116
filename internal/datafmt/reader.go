// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package datafmt reads columns of numeric observations.
//
// The format is line oriented. Blank lines and lines starting with
// "#" are ignored. Every other line is a row of fields separated by
// commas and/or white space. If the first row contains a field that
// is not a number, it is a header naming the columns.
//
// Columns may have different lengths, as the groups of an unpaired
// comparison do. A field of "-" marks a missing value, and a row may
// omit trailing fields. No row may have more fields than the first.
//
//	# reaction times, ms
//	before after
//	2      2
//	1      3
//	-      4
//	5
package datafmt

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// A Reader reads rows of numeric data.
//
// Its API is modeled on bufio.Scanner. The slice returned by Row is
// reused by the next call to Scan; a caller should copy anything it
// needs to retain.
type Reader struct {
	s        *bufio.Scanner
	fileName string
	line     int
	err      error

	header  []string
	cols    int // 0 until the first row
	row     []float64
	missing []bool
}

// missingField marks a missing value.
const missingField = "-"

// A SyntaxError represents a syntax error on a particular line of a
// data file.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// NewReader constructs a reader of data from r. fileName is used in
// error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	if fileName == "" {
		fileName = "<unknown>"
	}
	return &Reader{s: bufio.NewScanner(r), fileName: fileName}
}

func (r *Reader) newSyntaxError(format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{r.fileName, r.line, fmt.Sprintf(format, args...)}
}

func isSep(c rune) bool {
	return c == ',' || unicode.IsSpace(c)
}

// Scan advances the reader to the next row and reports whether a row
// was read. If Scan reaches EOF or an error occurs, it returns false,
// in which case the caller should use the Err method to check for
// errors.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	for r.s.Scan() {
		r.line++
		line := strings.TrimSpace(r.s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.FieldsFunc(line, isSep)

		if r.cols == 0 && r.header == nil && !allNumbers(fields) {
			r.header = fields
			r.cols = len(fields)
			continue
		}
		if r.cols == 0 {
			r.cols = len(fields)
		}
		if len(fields) > r.cols {
			r.err = r.newSyntaxError("have %d fields, want %d", len(fields), r.cols)
			return false
		}

		r.row, r.missing = r.row[:0], r.missing[:0]
		for i := 0; i < r.cols; i++ {
			if i >= len(fields) || fields[i] == missingField {
				r.row = append(r.row, math.NaN())
				r.missing = append(r.missing, true)
				continue
			}
			v, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				r.err = r.newSyntaxError("bad number %q", fields[i])
				return false
			}
			r.row = append(r.row, v)
			r.missing = append(r.missing, false)
		}
		return true
	}
	if err := r.s.Err(); err != nil {
		r.err = err
	}
	return false
}

func allNumbers(fields []string) bool {
	for _, f := range fields {
		if f == missingField {
			continue
		}
		if _, err := strconv.ParseFloat(f, 64); err != nil {
			return false
		}
	}
	return true
}

// Row returns the row read by the last call to Scan. It always has
// one value per column; missing values are NaN.
func (r *Reader) Row() []float64 {
	return r.row
}

// Missing reports whether column i of the current row is missing.
func (r *Reader) Missing(i int) bool {
	return r.missing[i]
}

// Header returns the column names given by the header line, or nil
// if there is none.
func (r *Reader) Header() []string {
	return r.header
}

// Err returns the first non-EOF error that was encountered by the
// Reader.
func (r *Reader) Err() error {
	return r.err
}

// A Table is a fully read data file, stored by column.
type Table struct {
	// FileName is the name the table was read from.
	FileName string

	// Names are the column names. Columns without a header are
	// named by their 1-based index.
	Names []string

	// Columns holds the values of each column, without missing
	// values. Columns may differ in length.
	Columns [][]float64
}

// ReadTable reads all rows from r into a Table.
func ReadTable(r io.Reader, fileName string) (*Table, error) {
	rd := NewReader(r, fileName)
	t := &Table{FileName: rd.fileName}
	for rd.Scan() {
		if t.Columns == nil {
			t.Columns = make([][]float64, len(rd.Row()))
		}
		for i, v := range rd.Row() {
			if !rd.Missing(i) {
				t.Columns[i] = append(t.Columns[i], v)
			}
		}
	}
	if err := rd.Err(); err != nil {
		return nil, err
	}
	t.Names = rd.Header()
	if t.Names == nil {
		for i := range t.Columns {
			t.Names = append(t.Names, strconv.Itoa(i+1))
		}
	} else if t.Columns == nil {
		t.Columns = make([][]float64, len(t.Names))
	}
	return t, nil
}

// Column returns the column called name. If no column has that name
// and name is a number, it is taken as a 1-based column index.
func (t *Table) Column(name string) ([]float64, error) {
	for i, n := range t.Names {
		if n == name {
			return t.Columns[i], nil
		}
	}
	if i, err := strconv.Atoi(name); err == nil && 1 <= i && i <= len(t.Columns) {
		return t.Columns[i-1], nil
	}
	return nil, fmt.Errorf("%s: no column %q", t.FileName, name)
}

// Len returns the length of the longest column of t.
func (t *Table) Len() int {
	n := 0
	for _, col := range t.Columns {
		n = max(n, len(col))
	}
	return n
}
