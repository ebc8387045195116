// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report renders resampling results as text, CSV, JSON or
// HTML.
package report

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"golang.org/x/resample/resample"
)

// A Row is one line of a report: either a permutation test or a
// bootstrap summary.
type Row struct {
	// Label identifies the data, typically "file: col1 vs col2".
	Label string `json:"label"`

	// Method is the resampling method, e.g. "sign-flip".
	Method string `json:"method"`

	// Statistic is the observed statistic.
	Statistic Float `json:"statistic"`

	// Lo and Hi bound the percentile interval: of the null
	// distribution for tests, of the bootstrap distribution for
	// summaries.
	Lo Float `json:"lo"`
	Hi Float `json:"hi"`

	// Confidence is the level of [Lo, Hi].
	Confidence float64 `json:"confidence"`

	// P and ParametricP are the permutation and parametric
	// p-values. They are nil for bootstrap summaries.
	P           *float64 `json:"p,omitempty"`
	ParametricP *float64 `json:"parametric_p,omitempty"`

	// N is the sample size, "n=N" or "n=N1+N2".
	N string `json:"n"`

	// Iterations is the size of the resampled distribution.
	Iterations int `json:"iterations"`

	// Note summarizes significance or interval width.
	Note string `json:"note,omitempty"`

	// Warnings are rendered after the table.
	Warnings []string `json:"warnings,omitempty"`
}

// A Float is a float64 that survives JSON encoding when it is
// infinite or NaN, as null distributions with degenerate resamples
// produce. Such values are encoded as the strings "+Inf", "-Inf" and
// "NaN".
type Float float64

func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return json.Marshal(strconv.FormatFloat(v, 'g', -1, 64))
	}
	return json.Marshal(v)
}

func (f *Float) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*f = Float(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = Float(v)
	return nil
}

// A Report is a titled list of rows.
type Report struct {
	Title string `json:"title,omitempty"`
	Rows  []Row  `json:"rows"`
}

// Add appends a row to rep.
func (rep *Report) Add(row Row) {
	rep.Rows = append(rep.Rows, row)
}

func nsize(n1, n2 int) string {
	if n1 == n2 {
		return fmt.Sprintf("n=%d", n1)
	}
	return fmt.Sprintf("n=%d+%d", n1, n2)
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func warnings(errs []error) []string {
	var ws []string
	for _, err := range errs {
		ws = append(ws, err.Error())
	}
	return ws
}

// ResultRow converts a permutation test result to a Row.
func ResultRow(label string, r *resample.Result, confidence float64) Row {
	note := "~"
	if r.Significant() {
		note = fmt.Sprintf("significant at α=%v", r.Alpha)
	}
	return Row{
		Label:       label,
		Method:      r.Method,
		Statistic:   Float(r.Observed),
		Lo:          Float(r.Interval.Lo),
		Hi:          Float(r.Interval.Hi),
		Confidence:  confidence,
		P:           finite(r.P),
		ParametricP: finite(r.ParametricP),
		N:           nsize(r.N1, r.N2),
		Iterations:  len(r.Null),
		Note:        note,
		Warnings:    warnings(r.Warnings),
	}
}

// SummaryRow converts a bootstrap summary to a Row.
func SummaryRow(label, method string, s *resample.Summary) Row {
	return Row{
		Label:      label,
		Method:     method,
		Statistic:  Float(s.Center),
		Lo:         Float(s.Lo),
		Hi:         Float(s.Hi),
		Confidence: s.Confidence,
		N:          nsize(s.N, s.N),
		Iterations: len(s.Dist),
		Note:       "±" + s.PctRangeString(),
		Warnings:   warnings(s.Warnings),
	}
}

func formatP(p *float64) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("%.3f", *p)
}

func formatFloat(v Float) string {
	return fmt.Sprintf("%.4g", float64(v))
}

// StatisticText returns the observed statistic formatted for display.
func (r Row) StatisticText() string {
	return formatFloat(r.Statistic)
}

// IntervalText returns the interval formatted as "[lo, hi]".
func (r Row) IntervalText() string {
	return fmt.Sprintf("[%s, %s]", formatFloat(r.Lo), formatFloat(r.Hi))
}

// PText returns the permutation p-value, or "" if there is none.
func (r Row) PText() string {
	return formatP(r.P)
}

// ParametricPText returns the parametric p-value, or "" if there is
// none.
func (r Row) ParametricPText() string {
	return formatP(r.ParametricP)
}

// cells returns the text cells of r, in header order.
func (r Row) cells() []string {
	return []string{
		r.Label,
		r.Method,
		r.StatisticText(),
		r.IntervalText(),
		r.PText(),
		r.ParametricPText(),
		r.N,
		r.Note,
	}
}

var header = []string{"data", "method", "statistic", "interval", "p", "parametric p", "n", "note"}
