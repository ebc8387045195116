// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resample

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBootstrapLength(t *testing.T) {
	for _, k := range []int{1, 10, 5000} {
		d, err := Bootstrap([][]float64{before}, MeanStat, k, NewSource(1))
		if err != nil {
			t.Fatal(err)
		}
		if len(d) != k {
			t.Errorf("Bootstrap(%d) has length %d", k, len(d))
		}
	}
}

func TestBootstrapDeterministic(t *testing.T) {
	a, err := Bootstrap([][]float64{before, after}, CorrelationStat, 300, NewSource(11))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Bootstrap([][]float64{before, after}, CorrelationStat, 300, NewSource(11))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("bootstrap not reproducible (-first +second):\n%s", diff)
	}
}

func TestBootstrapPreservesPairing(t *testing.T) {
	x := make([]float64, 20)
	y := make([]float64, 20)
	for i := range x {
		x[i] = float64(i)
		y[i] = 2*float64(i) + 1
	}
	d, err := Bootstrap([][]float64{x, y}, CorrelationStat, 500, NewSource(2))
	if err != nil {
		t.Fatal(err)
	}
	// Resampling pairs together keeps every point on the line.
	for i, r := range d {
		if math.Abs(r-1) > 1e-12 {
			t.Fatalf("resample %d has correlation %v, want 1", i, r)
		}
	}
}

func TestBootstrapConstant(t *testing.T) {
	d, err := Bootstrap([][]float64{{7, 7, 7, 7}}, MeanStat, 100, NewSource(1))
	if err != nil {
		t.Fatal(err)
	}
	iv, err := CI95(d)
	if err != nil {
		t.Fatal(err)
	}
	if iv.Lo != 7 || iv.Hi != 7 {
		t.Errorf("CI95 of constant bootstrap = %v, want [7, 7]", iv)
	}
}

func TestBootstrapErrors(t *testing.T) {
	check := func(name string, samples [][]float64, stat Statistic, k int, src Source, want error) {
		t.Helper()
		if _, err := Bootstrap(samples, stat, k, src); !errors.Is(err, want) {
			t.Errorf("%s: got %v, want %v", name, err, want)
		}
	}
	src := NewSource(1)
	check("no samples", nil, MeanStat, 10, src, ErrInvalidInput)
	check("empty sample", [][]float64{{}}, MeanStat, 10, src, ErrInvalidInput)
	check("unequal lengths", [][]float64{{1, 2}, {1}}, MeanStat, 10, src, ErrInvalidInput)
	check("nil statistic", [][]float64{{1, 2}}, nil, 10, src, ErrInvalidInput)
	check("zero iterations", [][]float64{{1, 2}}, MeanStat, 0, src, ErrInvalidInput)
	check("nil source", [][]float64{{1, 2}}, MeanStat, 10, nil, ErrInvalidInput)

	errBoom := errors.New("boom")
	boom := func(xs ...[]float64) (float64, error) { return 0, errBoom }
	check("failing statistic", [][]float64{{1, 2}}, boom, 10, src, errBoom)
}

// TestBootstrapCoverage checks that the 95% percentile interval of
// the bootstrapped mean of 20 draws from a population with mean 100
// usually covers 100.
func TestBootstrapCoverage(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping coverage simulation in short mode")
	}
	const (
		trials = 40
		n      = 20
		mu     = 100
	)
	covered := 0
	for trial := 0; trial < trials; trial++ {
		pop := NewSource(int64(1000 + trial))
		sample := make([]float64, n)
		for i := range sample {
			sample[i] = mu + 15*pop.NormFloat64()
		}
		d, err := Bootstrap([][]float64{sample}, MeanStat, 5000, NewSource(int64(trial)))
		if err != nil {
			t.Fatal(err)
		}
		iv, err := CI95(d)
		if err != nil {
			t.Fatal(err)
		}
		if iv.Contains(mu) {
			covered++
		}
	}
	// The nominal rate is 95%; percentile intervals run a little
	// narrow at this sample size.
	if covered < 30 {
		t.Errorf("95%% interval covered the population mean in %d of %d trials", covered, trials)
	}
}
