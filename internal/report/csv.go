// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
)

func strof(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

func pstr(p *float64) string {
	if p == nil {
		return ""
	}
	return strof(*p)
}

// WriteCSV writes rep in CSV form, one record per row, with full
// precision numbers.
func (rep *Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.Write([]string{"data", "method", "statistic", "lo", "hi", "confidence", "p", "parametric p", "n", "iterations", "note"})
	for _, r := range rep.Rows {
		cw.Write([]string{
			r.Label,
			r.Method,
			strof(float64(r.Statistic)),
			strof(float64(r.Lo)),
			strof(float64(r.Hi)),
			strof(r.Confidence),
			pstr(r.P),
			pstr(r.ParametricP),
			r.N,
			strconv.Itoa(r.Iterations),
			r.Note,
		})
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes rep as indented JSON.
func (rep *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")
	return enc.Encode(rep)
}
