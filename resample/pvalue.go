// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resample

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// TwoTailedP returns 2*(1 - CDF(t)) for Student's t distribution with
// df degrees of freedom.
//
// This doubles the upper tail, so it is only a two-tailed p-value for
// t >= 0. For negative t the result is greater than 1. Use TwoSidedP
// for a p-value that is symmetric in the sign of t.
func TwoTailedP(t, df float64) float64 {
	return 2 * (1 - stats.TDist{V: df}.CDF(t))
}

// TwoSidedP returns 2*min(CDF(t), 1-CDF(t)) for Student's t
// distribution with df degrees of freedom.
func TwoSidedP(t, df float64) float64 {
	c := stats.TDist{V: df}.CDF(t)
	return 2 * math.Min(c, 1-c)
}

// EmpiricalP returns the permutation p-value of observed against a
// null distribution,
//
//	2 * (1 - count(observed > null[i]) / len(null))
//
// The comparison is one-sided and the result is then doubled. It does
// not compare magnitudes, so an observed value in the lower half of
// the null distribution yields a p-value above 1 (up to 2). The result
// is not clamped.
//
// EmpiricalP returns NaN for an empty null distribution.
func EmpiricalP(observed float64, null Dist) float64 {
	if len(null) == 0 {
		return math.NaN()
	}
	below := 0
	for _, v := range null {
		if observed > v {
			below++
		}
	}
	return 2 * (1 - float64(below)/float64(len(null)))
}

// EmpiricalTwoSidedP returns twice the smaller of the fractions of the
// null distribution at or above and at or below observed, capped at 1.
// It returns NaN for an empty null distribution.
func EmpiricalTwoSidedP(observed float64, null Dist) float64 {
	if len(null) == 0 {
		return math.NaN()
	}
	var ge, le int
	for _, v := range null {
		if v >= observed {
			ge++
		}
		if v <= observed {
			le++
		}
	}
	p := 2 * float64(min(ge, le)) / float64(len(null))
	return math.Min(p, 1)
}
