// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resample

import "fmt"

// A Stream lazily produces a fixed number of resampled statistics.
//
// Its API is modeled on bufio.Scanner:
//
//	for s.Next() {
//		v := s.Value()
//		...
//	}
//	if err := s.Err(); err != nil {
//		...
//	}
//
// A Stream cannot be rewound. To replay it, construct a new Stream
// from a Source seeded with the same seed.
type Stream struct {
	n, i    int
	gen     func() (float64, error)
	v       float64
	err     error
	redrawn int
}

func newStream(n int, gen func() (float64, error)) *Stream {
	return &Stream{n: n, gen: gen}
}

// errStream returns a Stream that produces nothing and reports err.
func errStream(err error) *Stream {
	return &Stream{err: err}
}

// Next computes the next statistic and reports whether one was
// produced. It returns false when the stream is exhausted or a
// statistic fails, in which case Err reports the failure.
func (s *Stream) Next() bool {
	if s.err != nil || s.i >= s.n {
		return false
	}
	v, err := s.gen()
	if err != nil {
		s.err = fmt.Errorf("iteration %d: %w", s.i, err)
		return false
	}
	s.v = v
	s.i++
	return true
}

// Value returns the statistic produced by the last call to Next.
func (s *Stream) Value() float64 {
	return s.v
}

// Err returns the error that stopped the stream, if any.
func (s *Stream) Err() error {
	return s.err
}

// Redrawn returns the number of degenerate draws so far that were
// discarded and drawn again. See BootstrapStream.
func (s *Stream) Redrawn() int {
	return s.redrawn
}

// Len returns the total number of statistics the stream produces if
// no error occurs.
func (s *Stream) Len() int {
	return s.n
}

// Collect consumes the rest of the stream into a Dist.
func (s *Stream) Collect() (Dist, error) {
	d := make(Dist, 0, s.n-s.i)
	for s.Next() {
		d = append(d, s.v)
	}
	if s.err != nil {
		return nil, s.err
	}
	return d, nil
}
