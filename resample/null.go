// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resample

// SignFlipNull returns the null distribution of the paired
// t-statistic of diff under random sign flips.
//
// For each of iterations rounds, every element of diff is multiplied
// by an independent fair sign and the t-statistic (see PairedT) of the
// flipped vector is recorded. diff is normally d1-d2 of a paired
// sample.
//
// A flipped vector with zero variance, such as one whose elements all
// share a sign and magnitude, contributes ±Inf with the sign of its
// mean. SignFlipNull fails with ErrDegenerateInput only if every
// difference is 0.
func SignFlipNull(diff []float64, iterations int, src Source) (Dist, error) {
	return SignFlipStream(diff, iterations, src).Collect()
}

// SignFlipStream is the lazy form of SignFlipNull.
func SignFlipStream(diff []float64, iterations int, src Source) *Stream {
	if len(diff) < 2 {
		return errStream(invalidf("need at least 2 differences, have %d", len(diff)))
	}
	if err := checkIterations(iterations, src); err != nil {
		return errStream(err)
	}
	if allZero(diff) {
		return errStream(degeneratef("all differences are 0"))
	}
	diff = append([]float64(nil), diff...)
	flipped := make([]float64, len(diff))
	return newStream(iterations, func() (float64, error) {
		for i, d := range diff {
			if flip(src) {
				flipped[i] = -d
			} else {
				flipped[i] = d
			}
		}
		return resampledT(flipped), nil
	})
}

// LabelSwapNull returns the null distribution of the correlation
// t-statistic (see CorrelationT) under random swaps of the two members
// of each pair.
//
// For each of iterations rounds, every pair (d1[i], d2[i]) is
// independently swapped with probability .5 and the statistic of the
// swapped samples is recorded.
//
// A swapped sample with a perfect correlation contributes ±Inf with
// the sign of r, and one in which either sample is constant
// contributes 0. LabelSwapNull fails with ErrDegenerateInput if there
// are fewer than 3 pairs or every value is the same.
func LabelSwapNull(d1, d2 []float64, iterations int, src Source) (Dist, error) {
	return LabelSwapStream(d1, d2, iterations, src).Collect()
}

// LabelSwapStream is the lazy form of LabelSwapNull.
func LabelSwapStream(d1, d2 []float64, iterations int, src Source) *Stream {
	if err := checkPaired(d1, d2, 0); err != nil {
		return errStream(err)
	}
	if len(d1) < 3 {
		return errStream(degeneratef("correlation t-statistic needs at least 3 pairs, have %d", len(d1)))
	}
	if err := checkIterations(iterations, src); err != nil {
		return errStream(err)
	}
	if allEqual(d1, d1[0]) && allEqual(d2, d1[0]) {
		return errStream(degeneratef("all values are %v", d1[0]))
	}
	p, _ := NewPaired(d1, d2)
	x := make([]float64, p.N())
	y := make([]float64, p.N())
	return newStream(iterations, func() (float64, error) {
		for i := range x {
			if flip(src) {
				x[i], y[i] = p.Y[i], p.X[i]
			} else {
				x[i], y[i] = p.X[i], p.Y[i]
			}
		}
		return resampledCorrelationT(x, y), nil
	})
}

// ShuffleNull returns the null distribution of MeanDiff for two
// independent groups under random reassignment of the pooled values
// to groups of the original sizes.
func ShuffleNull(a, b []float64, iterations int, src Source) (Dist, error) {
	return ShuffleStream(a, b, iterations, src).Collect()
}

// ShuffleStream is the lazy form of ShuffleNull.
func ShuffleStream(a, b []float64, iterations int, src Source) *Stream {
	if len(a) == 0 || len(b) == 0 {
		return errStream(invalidf("empty group (sizes %d and %d)", len(a), len(b)))
	}
	if err := checkIterations(iterations, src); err != nil {
		return errStream(err)
	}
	pool := make([]float64, 0, len(a)+len(b))
	pool = append(append(pool, a...), b...)
	na := len(a)
	return newStream(iterations, func() (float64, error) {
		// Fisher-Yates.
		for i := len(pool) - 1; i > 0; i-- {
			j := src.Intn(i + 1)
			pool[i], pool[j] = pool[j], pool[i]
		}
		return MeanDiff(pool[:na], pool[na:])
	})
}

func checkIterations(iterations int, src Source) error {
	if iterations <= 0 {
		return invalidf("iterations must be positive, got %d", iterations)
	}
	if src == nil {
		return invalidf("nil random source")
	}
	return nil
}

func allZero(v []float64) bool {
	return allEqual(v, 0)
}

func allEqual(v []float64, x float64) bool {
	for _, e := range v {
		if e != x {
			return false
		}
	}
	return true
}
