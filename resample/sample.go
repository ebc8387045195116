// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resample

// A Paired holds two samples measured on the same units: X[i] and
// Y[i] belong to the same subject.
type Paired struct {
	X, Y []float64
}

// NewPaired returns a Paired holding copies of x and y. It fails with
// ErrInvalidInput if the lengths differ or there are fewer than two
// pairs.
func NewPaired(x, y []float64) (*Paired, error) {
	if err := checkPaired(x, y, 2); err != nil {
		return nil, err
	}
	return &Paired{
		X: append([]float64(nil), x...),
		Y: append([]float64(nil), y...),
	}, nil
}

// N returns the number of pairs.
func (p *Paired) N() int {
	return len(p.X)
}

// Diff returns X[i]-Y[i] for every pair.
func (p *Paired) Diff() []float64 {
	return differences(p.X, p.Y)
}

// T returns the paired t-statistic of p. See PairedT.
func (p *Paired) T() (float64, error) {
	return PairedT(p.X, p.Y)
}

// CorrelationT returns the correlation t-statistic of p. See
// CorrelationT.
func (p *Paired) CorrelationT() (float64, error) {
	return CorrelationT(p.X, p.Y)
}

// checkPaired verifies that d1 and d2 have equal length of at least
// atLeast.
func checkPaired(d1, d2 []float64, atLeast int) error {
	if len(d1) != len(d2) {
		return invalidf("paired samples differ in length (%d != %d)", len(d1), len(d2))
	}
	if len(d1) < atLeast {
		return invalidf("need at least %d pairs, have %d", atLeast, len(d1))
	}
	return nil
}

func differences(d1, d2 []float64) []float64 {
	diff := make([]float64, len(d1))
	for i := range d1 {
		diff[i] = d1[i] - d2[i]
	}
	return diff
}
