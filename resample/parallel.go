// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resample

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// A Config configures how a distribution is generated and how tests
// built on it are judged.
//
// This should be initialized from DefaultConfig because it may be
// extended with other fields in the future.
type Config struct {
	// Iterations is the number of resampled statistics to generate.
	Iterations int

	// Seed is the base seed. Chunk i is generated from a Source
	// seeded with SplitSeed(Seed, i).
	Seed int64

	// Workers bounds the number of chunks generated concurrently.
	// If <= 0, runtime.GOMAXPROCS(0) is used. It does not affect
	// the result.
	Workers int

	// ChunkSize is the number of iterations generated from each
	// seeded stream. If <= 0, all iterations come from one stream.
	// Unlike Workers, changing ChunkSize changes the result.
	ChunkSize int

	// Alpha is the level below which a test's p-value is
	// significant.
	Alpha float64

	// Confidence is the level of the percentile intervals reported
	// by tests, in (0, 1]. If 0, DefaultConfig.Confidence is used.
	Confidence float64
}

// DefaultConfig contains a reasonable set of defaults for Config.
var DefaultConfig = Config{
	Iterations: 5000,
	Seed:       1,
	ChunkSize:  1000,
	Alpha:      0.05,
	Confidence: 0.95,
}

// A Generator returns a Stream of iterations statistics drawn from
// src. Generators are called concurrently by Config.Collect, each
// call with its own Source, so a Generator must not share mutable
// state between calls.
type Generator func(src Source, iterations int) *Stream

// SignFlip returns a Generator for SignFlipStream over diff.
func SignFlip(diff []float64) Generator {
	return func(src Source, iterations int) *Stream {
		return SignFlipStream(diff, iterations, src)
	}
}

// LabelSwap returns a Generator for LabelSwapStream over d1 and d2.
func LabelSwap(d1, d2 []float64) Generator {
	return func(src Source, iterations int) *Stream {
		return LabelSwapStream(d1, d2, iterations, src)
	}
}

// Shuffle returns a Generator for ShuffleStream over groups a and b.
func Shuffle(a, b []float64) Generator {
	return func(src Source, iterations int) *Stream {
		return ShuffleStream(a, b, iterations, src)
	}
}

// Resample returns a Generator for BootstrapStream of stat over
// samples.
func Resample(stat Statistic, samples ...[]float64) Generator {
	return func(src Source, iterations int) *Stream {
		return BootstrapStream(samples, stat, iterations, src)
	}
}

// Collect generates c.Iterations statistics from gen.
//
// The iterations are split into chunks of c.ChunkSize, each drawn
// from its own seeded Source, and up to c.Workers chunks run at once.
// The result depends only on gen, c.Iterations, c.Seed and
// c.ChunkSize. Collect stops early if ctx is cancelled or any chunk
// fails.
func (c Config) Collect(ctx context.Context, gen Generator) (Dist, error) {
	d, _, err := c.collect(ctx, gen)
	return d, err
}

// collect is Collect that also returns the total Stream.Redrawn count.
func (c Config) collect(ctx context.Context, gen Generator) (Dist, int, error) {
	if c.Iterations <= 0 {
		return nil, 0, invalidf("iterations must be positive, got %d", c.Iterations)
	}
	chunk := c.ChunkSize
	if chunk <= 0 || chunk > c.Iterations {
		chunk = c.Iterations
	}
	workers := c.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := make(Dist, c.Iterations)
	redrawn := make([]int, (c.Iterations+chunk-1)/chunk)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, start := 0, 0; start < c.Iterations; i, start = i+1, start+chunk {
		end := min(start+chunk, c.Iterations)
		src := NewSource(SplitSeed(c.Seed, i))
		g.Go(func() error {
			s := gen(src, end-start)
			err := fill(ctx, s, out[start:end])
			redrawn[i] = s.Redrawn()
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	total := 0
	for _, n := range redrawn {
		total += n
	}
	return out, total, nil
}

// fill drains s into dst, checking ctx periodically.
func fill(ctx context.Context, s *Stream, dst Dist) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	j := 0
	for s.Next() {
		dst[j] = s.Value()
		j++
		if j%256 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
	}
	return s.Err()
}
