// SPDX-License-Identifier: MIT
// Package: lvldata/dataset
//
// sampler.go - uniform point sampler over the unit square.
//
// Contract:
//   - Points(n, opts...) returns exactly n points for n >= 1, nil otherwise.
//   - Each coordinate is drawn independently and uniformly from [0,1).
//   - The only side effect is entropy consumption from the configured source.
//
// Determinism:
//   - Stable draw order: X1 then X2, point by point, so a fixed seed yields
//     a bitwise-identical cloud.

package dataset

// Points samples n uniform points in the unit square [0,1) x [0,1).
//
// By default the draw consumes the process-wide math/rand source and is not
// reproducible across runs; pass WithSeed or WithRand to pin it. A count
// below one yields nil; the count is otherwise not validated.
// Complexity: O(n) time, O(n) space.
func Points(n int, opts ...Option) []Point {
	return samplePoints(n, newConfig(opts...))
}

// samplePoints is the shared draw loop behind Points and the five
// sampler-backed generators; cfg arrives already resolved.
func samplePoints(n int, cfg config) []Point {
	if n < 1 {
		return nil // nothing to draw, nothing to allocate
	}
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = Point{X1: cfg.draw(), X2: cfg.draw()}
	}
	return pts
}
