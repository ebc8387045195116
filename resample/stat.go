// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resample

import (
	"math"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/stat"
)

// PairedT returns the paired t-statistic of d1 and d2,
//
//	mean(d) / (σ(d) / sqrt(N-1))
//
// where d = d1 - d2 and σ is the population (ddof=0) standard
// deviation. This is the same value as the conventional
// mean(d) / (s(d) / sqrt(N)) with the sample standard deviation s.
//
// PairedT fails with ErrInvalidInput if the lengths differ or N < 2,
// and with ErrDegenerateInput if the differences have zero variance.
func PairedT(d1, d2 []float64) (float64, error) {
	if err := checkPaired(d1, d2, 2); err != nil {
		return 0, err
	}
	return tStat(differences(d1, d2))
}

// tStat is the one-sample t-statistic of v against 0. len(v) must be
// at least 2.
func tStat(v []float64) (float64, error) {
	mean, sd := meanSD(v)
	if sd == 0 {
		return 0, degeneratef("differences have zero variance")
	}
	return mean / (sd / math.Sqrt(float64(len(v)-1))), nil
}

// resampledT is tStat for one resample of a null distribution. A
// zero-variance resample has an infinite statistic with the sign of
// its mean, or 0 if the mean is also 0.
func resampledT(v []float64) float64 {
	mean, sd := meanSD(v)
	if sd == 0 {
		return infinity(mean)
	}
	return mean / (sd / math.Sqrt(float64(len(v)-1)))
}

// meanSD returns the mean and population standard deviation of v.
func meanSD(v []float64) (mean, sd float64) {
	n := float64(len(v))
	mean, variance := stat.MeanVariance(v, nil)
	// MeanVariance is unbiased. Convert to the population variance.
	return mean, math.Sqrt(variance * (n - 1) / n)
}

// infinity returns ±Inf with the sign of x, or 0 if x is 0.
func infinity(x float64) float64 {
	if x == 0 {
		return 0
	}
	return math.Copysign(math.Inf(1), x)
}

// Correlation returns the Pearson correlation coefficient of d1 and
// d2. It fails with ErrDegenerateInput if either sample has zero
// variance.
func Correlation(d1, d2 []float64) (float64, error) {
	if err := checkPaired(d1, d2, 2); err != nil {
		return 0, err
	}
	r := stat.Correlation(d1, d2, nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, degeneratef("correlation undefined for zero-variance sample")
	}
	return r, nil
}

// CorrelationT returns the t-statistic for the Pearson correlation r
// of d1 and d2,
//
//	r * sqrt(N-2) / sqrt(1-r²)
//
// which has a Student's t distribution with N-2 degrees of freedom
// under the null hypothesis of no correlation.
//
// CorrelationT fails with ErrInvalidInput if the lengths differ, and
// with ErrDegenerateInput if N < 3, |r| == 1 or r is undefined.
func CorrelationT(d1, d2 []float64) (float64, error) {
	if len(d1) != len(d2) {
		return 0, invalidf("paired samples differ in length (%d != %d)", len(d1), len(d2))
	}
	if len(d1) < 3 {
		return 0, degeneratef("correlation t-statistic needs at least 3 pairs, have %d", len(d1))
	}
	r, err := Correlation(d1, d2)
	if err != nil {
		return 0, err
	}
	if math.Abs(r) >= 1 {
		return 0, degeneratef("perfect correlation (r=%v)", r)
	}
	return correlationT(r, len(d1)), nil
}

func correlationT(r float64, n int) float64 {
	return r * math.Sqrt(float64(n-2)) / math.Sqrt(1-r*r)
}

// resampledCorrelationT is CorrelationT for one resample of a null
// distribution. A perfect correlation has an infinite statistic with
// the sign of r. A resample in which one sample is constant has no
// correlation and yields 0.
func resampledCorrelationT(x, y []float64) float64 {
	r := stat.Correlation(x, y, nil)
	switch {
	case math.IsNaN(r) || math.IsInf(r, 0):
		return 0
	case math.Abs(r) >= 1:
		return infinity(r)
	}
	return correlationT(r, len(x))
}

// MeanDiff returns mean(a) - mean(b) for two independent groups.
func MeanDiff(a, b []float64) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, invalidf("empty group (sizes %d and %d)", len(a), len(b))
	}
	return stats.Mean(a) - stats.Mean(b), nil
}

// A Statistic reduces one or more equal-length samples to a scalar.
//
// The slices passed to a Statistic are only valid for the duration
// of the call; a Statistic must not retain or modify them.
type Statistic func(xs ...[]float64) (float64, error)

// MeanStat is the mean of the first sample.
var MeanStat Statistic = func(xs ...[]float64) (float64, error) {
	if len(xs) < 1 || len(xs[0]) == 0 {
		return 0, invalidf("mean of empty sample")
	}
	return stats.Mean(xs[0]), nil
}

// PairedTStat is PairedT of the first two samples.
var PairedTStat Statistic = func(xs ...[]float64) (float64, error) {
	if err := needTwo(xs); err != nil {
		return 0, err
	}
	return PairedT(xs[0], xs[1])
}

// CorrelationStat is the Pearson correlation of the first two samples.
var CorrelationStat Statistic = func(xs ...[]float64) (float64, error) {
	if err := needTwo(xs); err != nil {
		return 0, err
	}
	return Correlation(xs[0], xs[1])
}

// CorrelationTStat is CorrelationT of the first two samples.
var CorrelationTStat Statistic = func(xs ...[]float64) (float64, error) {
	if err := needTwo(xs); err != nil {
		return 0, err
	}
	return CorrelationT(xs[0], xs[1])
}

func needTwo(xs [][]float64) error {
	if len(xs) < 2 {
		return invalidf("statistic needs 2 samples, have %d", len(xs))
	}
	return nil
}
