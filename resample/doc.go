// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resample computes non-parametric significance tests and
// confidence intervals by resampling observed data.
//
// A permutation (randomization) test compares an observed statistic
// against a null distribution built by recomputing the same statistic
// under relabelings that are consistent with the null hypothesis of no
// effect. For paired data this is either flipping the sign of each
// paired difference ([SignFlipNull]) or swapping the two members of
// each pair ([LabelSwapNull]). For unpaired groups the pooled values
// are shuffled between groups ([ShuffleNull]).
//
// A bootstrap ([Bootstrap]) estimates the sampling distribution of an
// arbitrary [Statistic] by resampling the observations with
// replacement. Percentile confidence intervals over any distribution
// are computed with [PercentileInterval].
//
// Every randomized routine takes an explicit [Source]. Given the same
// inputs and a Source seeded the same way, the output is identical.
// [Config.Collect] partitions a run into independently seeded chunks
// so a distribution can be generated in parallel without losing
// reproducibility.
//
// The two-tailed p-value helpers [TwoTailedP] and [EmpiricalP] follow
// the classic textbook formulas, which double a one-sided tail. They
// are only meaningful for non-negative statistics and can return
// values greater than 1 otherwise. [TwoSidedP] and
// [EmpiricalTwoSidedP] are the symmetric alternatives.
package resample
