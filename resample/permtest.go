// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resample

import (
	"context"
	"fmt"
	"math"

	"github.com/aclements/go-moremath/mathx"
	"github.com/aclements/go-moremath/stats"
)

// A Result is the outcome of a permutation test, along with the
// parametric test it stands in for.
type Result struct {
	// Method names the test, e.g. "sign-flip".
	Method string

	// Observed is the test statistic of the observed data.
	Observed float64

	// Null is the null distribution of the statistic.
	Null Dist

	// Interval is the central percentile interval of Null at
	// Config.Confidence.
	Interval Interval

	// P is EmpiricalP(Observed, Null). It may exceed 1; see
	// EmpiricalP.
	P float64

	// ParametricP is TwoTailedP of the parametric statistic. It may
	// exceed 1; see TwoTailedP.
	ParametricP float64

	// TTestP is the symmetric two-sided p-value of the parametric
	// test.
	TTestP float64

	// DoF is the degrees of freedom of the parametric test.
	DoF float64

	// N1 and N2 are the sizes of the two samples.
	N1, N2 int

	// Alpha is the significance threshold. If P < Alpha, the null
	// hypothesis is rejected.
	Alpha float64

	// Warnings is a list of warnings about this result that should
	// be reported to the user.
	Warnings []error
}

// Significant reports whether r rejects the null hypothesis.
func (r *Result) Significant() bool {
	return r.P < r.Alpha
}

// String summarizes r. The general form of this string is
// "p=0.PPP n=N1+N2".
func (r *Result) String() string {
	s := fmt.Sprintf("p=%0.3f ", r.P)
	if r.N1 == r.N2 {
		return s + fmt.Sprintf("n=%d", r.N1)
	}
	return s + fmt.Sprintf("n=%d+%d", r.N1, r.N2)
}

// warnP records a warning for each p-value that fell outside [0, 1]
// because of a negative statistic.
func (r *Result) warnP() {
	if r.P > 1 {
		r.Warnings = append(r.Warnings, fmt.Errorf("observed statistic %.4g is below most of the null distribution; permutation p=%.3f exceeds 1", r.Observed, r.P))
	}
	if r.ParametricP > 1 {
		r.Warnings = append(r.Warnings, fmt.Errorf("negative t-statistic; parametric p=%.3f exceeds 1 (symmetric p=%.3f)", r.ParametricP, r.TTestP))
	}
}

func (c Config) confidence() float64 {
	if c.Confidence == 0 {
		return DefaultConfig.Confidence
	}
	return c.Confidence
}

func (c Config) interval(d Dist) (Interval, error) {
	return ConfidenceInterval(d, c.confidence())
}

// PairedPermutationTest tests whether paired samples d1 and d2 differ
// in mean. The statistic is PairedT, the null distribution is
// SignFlipNull of the differences, and the parametric counterpart is
// the paired t-test with N-1 degrees of freedom.
func PairedPermutationTest(ctx context.Context, d1, d2 []float64, c Config) (*Result, error) {
	obs, err := PairedT(d1, d2)
	if err != nil {
		return nil, err
	}
	null, err := c.Collect(ctx, SignFlip(differences(d1, d2)))
	if err != nil {
		return nil, err
	}
	r := &Result{
		Method:   "sign-flip",
		Observed: obs,
		Null:     null,
		P:        EmpiricalP(obs, null),
		N1:       len(d1),
		N2:       len(d2),
		Alpha:    c.Alpha,
	}
	tt, err := stats.PairedTTest(d1, d2, 0, stats.LocationDiffers)
	if err != nil {
		r.ParametricP, r.TTestP = math.NaN(), math.NaN()
		r.Warnings = append(r.Warnings, err)
	} else {
		r.DoF = tt.DoF
		r.ParametricP = TwoTailedP(obs, tt.DoF)
		r.TTestP = tt.P
	}
	if r.Interval, err = c.interval(null); err != nil {
		return nil, err
	}
	r.warnP()
	return r, nil
}

// CorrelationPermutationTest tests whether paired samples d1 and d2
// are correlated. The statistic is CorrelationT, the null
// distribution is LabelSwapNull, and the parametric counterpart is the
// t-test of the correlation with N-2 degrees of freedom.
func CorrelationPermutationTest(ctx context.Context, d1, d2 []float64, c Config) (*Result, error) {
	obs, err := CorrelationT(d1, d2)
	if err != nil {
		return nil, err
	}
	null, err := c.Collect(ctx, LabelSwap(d1, d2))
	if err != nil {
		return nil, err
	}
	df := float64(len(d1) - 2)
	r := &Result{
		Method:      "label-swap",
		Observed:    obs,
		Null:        null,
		P:           EmpiricalP(obs, null),
		ParametricP: TwoTailedP(obs, df),
		TTestP:      TwoSidedP(obs, df),
		DoF:         df,
		N1:          len(d1),
		N2:          len(d2),
		Alpha:       c.Alpha,
	}
	if r.Interval, err = c.interval(null); err != nil {
		return nil, err
	}
	r.warnP()
	return r, nil
}

// TwoSamplePermutationTest tests whether independent groups a and b
// differ in mean. The statistic is MeanDiff, the null distribution is
// ShuffleNull, and the parametric counterpart is Welch's t-test.
func TwoSamplePermutationTest(ctx context.Context, a, b []float64, c Config) (*Result, error) {
	obs, err := MeanDiff(a, b)
	if err != nil {
		return nil, err
	}
	null, err := c.Collect(ctx, Shuffle(a, b))
	if err != nil {
		return nil, err
	}
	r := &Result{
		Method:   "shuffle",
		Observed: obs,
		Null:     null,
		P:        EmpiricalP(obs, null),
		N1:       len(a),
		N2:       len(b),
		Alpha:    c.Alpha,
	}
	tt, err := stats.TwoSampleWelchTTest(stats.Sample{Xs: a}, stats.Sample{Xs: b}, stats.LocationDiffers)
	if err != nil {
		// Report the permutation result anyway; only the
		// parametric comparison is unavailable.
		r.ParametricP, r.TTestP = math.NaN(), math.NaN()
		r.Warnings = append(r.Warnings, err)
	} else {
		r.DoF = tt.DoF
		r.ParametricP = TwoTailedP(tt.T, tt.DoF)
		r.TTestP = tt.P
	}
	if r.Interval, err = c.interval(null); err != nil {
		return nil, err
	}
	r.warnP()
	return r, nil
}

// A Summary is a statistic of observed data together with a
// bootstrap confidence interval.
type Summary struct {
	// Center is the statistic evaluated on the observed samples.
	Center float64

	// Lo and Hi give the bounds of the confidence interval around
	// Center.
	Lo, Hi float64

	// Confidence is the confidence level of [Lo, Hi], in (0, 1].
	Confidence float64

	// Dist is the bootstrap distribution.
	Dist Dist

	// N is the length of each bootstrapped sample.
	N int

	// Redrawn is the number of degenerate resamples that were
	// discarded and drawn again.
	Redrawn int

	// Warnings is a list of warnings about this summary.
	Warnings []error
}

// BootstrapCI evaluates stat on samples and computes a percentile
// confidence interval at c.Confidence from a bootstrap distribution
// generated according to c.
func BootstrapCI(ctx context.Context, c Config, stat Statistic, samples ...[]float64) (*Summary, error) {
	if len(samples) == 0 {
		return nil, invalidf("no samples to bootstrap")
	}
	if stat == nil {
		return nil, invalidf("nil statistic")
	}
	center, err := stat(samples...)
	if err != nil {
		return nil, err
	}
	dist, redrawn, err := c.collect(ctx, Resample(stat, samples...))
	if err != nil {
		return nil, err
	}
	iv, err := c.interval(dist)
	if err != nil {
		return nil, err
	}
	s := &Summary{
		Center:     center,
		Lo:         iv.Lo,
		Hi:         iv.Hi,
		Confidence: c.confidence(),
		Dist:       dist,
		N:          len(samples[0]),
		Redrawn:    redrawn,
	}
	if redrawn > 0 {
		s.Warnings = append(s.Warnings, fmt.Errorf("%d of %d resamples were degenerate and drawn again", redrawn, redrawn+len(dist)))
	}
	if !iv.Contains(center) {
		s.Warnings = append(s.Warnings, fmt.Errorf("observed statistic %.4g lies outside its bootstrap interval %v; the bootstrap distribution is skewed", center, iv))
	}
	return s, nil
}

// PctRangeString formats the larger distance from Center to either
// bound of the interval as a percentage of Center, such as "4%". It
// returns "∞" for an unbounded interval and "?" when the interval
// straddles a sign change relative to Center.
func (s Summary) PctRangeString() string {
	switch {
	case math.IsInf(s.Lo, 0) || math.IsInf(s.Hi, 0):
		return "∞"
	case mathx.Sign(s.Lo) != mathx.Sign(s.Center) || mathx.Sign(s.Hi) != mathx.Sign(s.Center):
		return "?"
	case s.Center == 0:
		// Both bounds are 0 too.
		return "0%"
	}
	above := s.Hi/s.Center - 1
	below := 1 - s.Lo/s.Center
	return fmt.Sprintf("%.0f%%", 100*math.Max(above, below))
}
