// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resample

import (
	"errors"
	"math"
	"testing"

	"github.com/aclements/go-moremath/stats"
)

// Two measurements of the same 13 subjects.
var (
	before = []float64{2, 1, 2, 1, 0, 1, 8, 9, 11, 9, 11, 14, 13}
	after  = []float64{2, 3, 3, 2, 1, 1, 7, 10, 12, 10, 10, 13, 12}
)

func aeq(a, b, tol float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= tol*math.Max(1, math.Abs(b))
}

func TestPairedT(t *testing.T) {
	check := func(d1, d2 []float64, want float64) {
		t.Helper()
		got, err := PairedT(d1, d2)
		if err != nil {
			t.Fatalf("PairedT(%v, %v): %v", d1, d2, err)
		}
		if !aeq(got, want, 1e-12) {
			t.Errorf("PairedT(%v, %v) = %v, want %v", d1, d2, got, want)
		}
	}
	// Differences 2, 3, 4: mean 3, σ sqrt(2/3).
	check([]float64{3, 5, 7}, []float64{1, 2, 3}, 3*math.Sqrt(3))
	check(before, after, -1.07546571587573)
	check([]float64{1, 2}, []float64{0, 0}, 3)
}

func TestPairedTMatchesTTest(t *testing.T) {
	src := NewSource(7)
	for n := 2; n < 30; n++ {
		d1, d2 := make([]float64, n), make([]float64, n)
		for i := range d1 {
			d1[i], d2[i] = src.NormFloat64(), src.NormFloat64()
		}
		got, err := PairedT(d1, d2)
		if err != nil {
			t.Fatal(err)
		}
		want, err := stats.PairedTTest(d1, d2, 0, stats.LocationDiffers)
		if err != nil {
			t.Fatal(err)
		}
		if !aeq(got, want.T, 1e-9) {
			t.Errorf("n=%d: PairedT = %v, paired t-test T = %v", n, got, want.T)
		}
	}
}

func TestPairedTAntisymmetric(t *testing.T) {
	src := NewSource(1)
	for n := 2; n < 50; n++ {
		d1, d2 := make([]float64, n), make([]float64, n)
		for i := range d1 {
			d1[i] = 100 * src.Float64()
			d2[i] = 100 * src.Float64()
		}
		ab, err := PairedT(d1, d2)
		if err != nil {
			t.Fatal(err)
		}
		ba, err := PairedT(d2, d1)
		if err != nil {
			t.Fatal(err)
		}
		if ab != -ba {
			t.Errorf("n=%d: PairedT(a, b) = %v, PairedT(b, a) = %v", n, ab, ba)
		}
	}
}

func TestPairedTErrors(t *testing.T) {
	check := func(d1, d2 []float64, want error) {
		t.Helper()
		got, err := PairedT(d1, d2)
		if !errors.Is(err, want) {
			t.Errorf("PairedT(%v, %v) = %v, %v; want error %v", d1, d2, got, err, want)
		}
	}
	check([]float64{1, 2, 3}, []float64{1, 2}, ErrInvalidInput)
	check([]float64{1}, []float64{2}, ErrInvalidInput)
	check(nil, nil, ErrInvalidInput)
	// Identical samples have all-zero differences.
	check(before, before, ErrDegenerateInput)
	// So do samples that differ by a constant.
	check([]float64{2, 3, 4}, []float64{1, 2, 3}, ErrDegenerateInput)
}

func TestCorrelationT(t *testing.T) {
	r, err := Correlation(before, after)
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(r, 0.983783930074386, 1e-12) {
		t.Errorf("Correlation = %v, want 0.98378...", r)
	}
	tt, err := CorrelationT(before, after)
	if err != nil {
		t.Fatal(err)
	}
	want := r * math.Sqrt(11) / math.Sqrt(1-r*r)
	if !aeq(tt, want, 1e-12) || !aeq(tt, 18.191817000025928, 1e-9) {
		t.Errorf("CorrelationT = %v, want %v", tt, want)
	}

	// Negating one sample negates r and t.
	neg := make([]float64, len(after))
	for i, v := range after {
		neg[i] = -v
	}
	nt, err := CorrelationT(before, neg)
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(nt, -tt, 1e-12) {
		t.Errorf("CorrelationT with negated sample = %v, want %v", nt, -tt)
	}
}

func TestCorrelationTErrors(t *testing.T) {
	check := func(d1, d2 []float64, want error) {
		t.Helper()
		got, err := CorrelationT(d1, d2)
		if !errors.Is(err, want) {
			t.Errorf("CorrelationT(%v, %v) = %v, %v; want error %v", d1, d2, got, err, want)
		}
	}
	check([]float64{1, 2, 3}, []float64{1, 2}, ErrInvalidInput)
	check([]float64{1, 2}, []float64{2, 1}, ErrDegenerateInput)
	// |r| == 1.
	check([]float64{1, 2, 3, 5}, []float64{1, 2, 3, 5}, ErrDegenerateInput)
	check([]float64{1, 2, 3, 5}, []float64{-1, -2, -3, -5}, ErrDegenerateInput)
	// Zero variance.
	check([]float64{1, 1, 1}, []float64{1, 2, 3}, ErrDegenerateInput)
}

func TestMeanDiff(t *testing.T) {
	got, err := MeanDiff([]float64{1, 2, 3}, []float64{10, 20})
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(got, -13, 1e-12) {
		t.Errorf("MeanDiff = %v, want -13", got)
	}
	if _, err := MeanDiff(nil, []float64{1}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("MeanDiff of empty group: got %v, want ErrInvalidInput", err)
	}
}

func TestStatistics(t *testing.T) {
	check := func(name string, stat Statistic, want float64, xs ...[]float64) {
		t.Helper()
		got, err := stat(xs...)
		if err != nil {
			t.Errorf("%s: %v", name, err)
			return
		}
		if !aeq(got, want, 1e-12) {
			t.Errorf("%s = %v, want %v", name, got, want)
		}
	}
	check("MeanStat", MeanStat, 2, []float64{1, 2, 3})
	check("PairedTStat", PairedTStat, 3*math.Sqrt(3), []float64{3, 5, 7}, []float64{1, 2, 3})
	check("CorrelationStat", CorrelationStat, 0.983783930074386, before, after)
	check("CorrelationTStat", CorrelationTStat, 18.191817000025928, before, after)

	for name, stat := range map[string]Statistic{
		"PairedTStat":      PairedTStat,
		"CorrelationStat":  CorrelationStat,
		"CorrelationTStat": CorrelationTStat,
	} {
		if _, err := stat(before); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s with one sample: got %v, want ErrInvalidInput", name, err)
		}
	}
	if _, err := MeanStat(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("MeanStat with no samples: got %v, want ErrInvalidInput", err)
	}
}

func TestPaired(t *testing.T) {
	x := []float64{3, 5, 7}
	p, err := NewPaired(x, []float64{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	x[0] = 100
	if p.X[0] != 3 {
		t.Errorf("NewPaired did not copy its input")
	}
	if p.N() != 3 {
		t.Errorf("N() = %d, want 3", p.N())
	}
	if got, want := p.Diff(), []float64{2, 3, 4}; got[0] != want[0] || got[1] != want[1] || got[2] != want[2] {
		t.Errorf("Diff() = %v, want %v", got, want)
	}
	if _, err := NewPaired([]float64{1}, []float64{1}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("NewPaired with one pair: got %v, want ErrInvalidInput", err)
	}
}
