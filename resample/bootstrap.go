// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resample

import (
	"errors"
	"fmt"
)

// maxRedraws bounds consecutive degenerate resamples in one iteration.
const maxRedraws = 100

// Bootstrap returns the bootstrap distribution of stat over samples.
//
// All samples must have the same length N. For each of iterations
// rounds, N indices are drawn uniformly with replacement from [0, N)
// and the same indices are applied to every sample, so pairing across
// samples is preserved. stat is then evaluated on the resampled
// samples, in the order they were given.
//
// If stat fails with ErrDegenerateInput on a resample, such as a
// correlation of a resample that drew one index N times, the resample
// is discarded and drawn again; Stream.Redrawn counts these. Bootstrap
// fails if maxRedraws consecutive resamples are degenerate.
func Bootstrap(samples [][]float64, stat Statistic, iterations int, src Source) (Dist, error) {
	return BootstrapStream(samples, stat, iterations, src).Collect()
}

// BootstrapStream is the lazy form of Bootstrap.
func BootstrapStream(samples [][]float64, stat Statistic, iterations int, src Source) *Stream {
	if len(samples) == 0 {
		return errStream(invalidf("no samples to bootstrap"))
	}
	n := len(samples[0])
	if n == 0 {
		return errStream(invalidf("cannot bootstrap empty sample"))
	}
	for i, s := range samples[1:] {
		if len(s) != n {
			return errStream(invalidf("sample %d has length %d, want %d", i+1, len(s), n))
		}
	}
	if stat == nil {
		return errStream(invalidf("nil statistic"))
	}
	if err := checkIterations(iterations, src); err != nil {
		return errStream(err)
	}

	orig := make([][]float64, len(samples))
	bufs := make([][]float64, len(samples))
	for k, s := range samples {
		orig[k] = append([]float64(nil), s...)
		bufs[k] = make([]float64, n)
	}
	idx := make([]int, n)
	draw := func() (float64, error) {
		for j := range idx {
			idx[j] = src.Intn(n)
		}
		for k, s := range orig {
			buf := bufs[k]
			for j, ix := range idx {
				buf[j] = s[ix]
			}
		}
		return stat(bufs...)
	}
	var st *Stream
	st = newStream(iterations, func() (float64, error) {
		for tries := 1; ; tries++ {
			v, err := draw()
			if err == nil || !errors.Is(err, ErrDegenerateInput) {
				return v, err
			}
			if tries == maxRedraws {
				return 0, fmt.Errorf("%d consecutive degenerate resamples: %w", tries, err)
			}
			st.redrawn++
		}
	})
	return st
}
