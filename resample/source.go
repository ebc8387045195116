// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resample

import "math/rand"

// A Source is a pseudo-random number generator. *rand.Rand implements
// Source.
//
// A Source is not safe for concurrent use; give each goroutine its own.
type Source interface {
	// Float64 returns a number in [0.0, 1.0).
	Float64() float64
	// Intn returns a number in [0, n). It panics if n <= 0.
	Intn(n int) int
}

// NewSource returns a Source seeded with seed.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// SplitSeed derives the seed of the stream'th independent stream from
// a base seed. Distinct streams of the same base seed produce
// unrelated seeds.
func SplitSeed(seed int64, stream int) int64 {
	// SplitMix64 finalizer over the stream's position in the
	// golden-ratio sequence.
	z := uint64(seed) + uint64(stream+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	z ^= z >> 31
	return int64(z)
}

// flip reports whether a fair coin drawn from src came up "flip".
// A draw of exactly .5 does not flip.
func flip(src Source) bool {
	return src.Float64() < .5
}
