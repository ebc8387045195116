// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resample

import (
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
)

// A Dist is a distribution of resampled statistics, in the order they
// were generated.
type Dist []float64

// Mean returns the mean of d.
func (d Dist) Mean() float64 {
	return stats.Mean(d)
}

// Sorted returns a sorted copy of d.
func (d Dist) Sorted() Dist {
	s := append(Dist(nil), d...)
	sort.Float64s(s)
	return s
}

// An Interval is a confidence interval [Lo, Hi] taken at the
// percentiles LoPct and HiPct of a distribution.
type Interval struct {
	Lo, Hi       float64
	LoPct, HiPct float64
}

// Contains reports whether x lies within iv, inclusive.
func (iv Interval) Contains(x float64) bool {
	return iv.Lo <= x && x <= iv.Hi
}

// Width returns Hi-Lo.
func (iv Interval) Width() float64 {
	return iv.Hi - iv.Lo
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%.4g, %.4g]", iv.Lo, iv.Hi)
}

// Percentile returns the pct'th percentile of d, pct in [0, 100],
// linearly interpolating between the closest order statistics. Rank
// pct/100*(n-1) is used, so the 0th and 100th percentiles are the
// minimum and maximum.
//
// Percentile returns NaN if d is empty or pct is out of range.
func Percentile(d Dist, pct float64) float64 {
	if len(d) == 0 || !(0 <= pct && pct <= 100) {
		return math.NaN()
	}
	return percentileSorted(d.Sorted(), pct)
}

func percentileSorted(s Dist, pct float64) float64 {
	n := len(s)
	rank := pct / 100 * float64(n-1)
	i := int(rank)
	if i >= n-1 {
		return s[n-1]
	}
	lo, hi := s[i], s[i+1]
	frac := rank - float64(i)
	switch {
	case frac == 0 || lo == hi:
		return lo
	case math.IsInf(lo, -1):
		return lo
	case math.IsInf(hi, 1):
		return hi
	}
	v := lo + (hi-lo)*frac
	// Rounding can step outside the bracketing order statistics.
	return math.Max(lo, math.Min(hi, v))
}

// PercentileInterval returns the interval between the lowerPct'th and
// upperPct'th percentiles of d. It fails with ErrInvalidInput if d is
// empty or contains NaN, or if the percentiles are not ordered within
// [0, 100].
func PercentileInterval(d Dist, lowerPct, upperPct float64) (Interval, error) {
	if len(d) == 0 {
		return Interval{}, invalidf("empty distribution")
	}
	if !(0 <= lowerPct && lowerPct <= upperPct && upperPct <= 100) {
		return Interval{}, invalidf("bad percentiles %v, %v", lowerPct, upperPct)
	}
	s := d.Sorted()
	// sort.Float64s orders NaNs first.
	if math.IsNaN(s[0]) {
		return Interval{}, invalidf("distribution contains NaN")
	}
	return Interval{
		Lo:    percentileSorted(s, lowerPct),
		Hi:    percentileSorted(s, upperPct),
		LoPct: lowerPct,
		HiPct: upperPct,
	}, nil
}

// CI95 returns the 2.5th to 97.5th percentile interval of d.
func CI95(d Dist) (Interval, error) {
	return PercentileInterval(d, 2.5, 97.5)
}

// ConfidenceInterval returns the central percentile interval of d at
// the given confidence level, in (0, 1]. For example, 0.95 selects
// the 2.5th and 97.5th percentiles.
func ConfidenceInterval(d Dist, confidence float64) (Interval, error) {
	if !(0 < confidence && confidence <= 1) {
		return Interval{}, invalidf("confidence %v not in (0, 1]", confidence)
	}
	tail := (1 - confidence) / 2 * 100
	return PercentileInterval(d, tail, 100-tail)
}
