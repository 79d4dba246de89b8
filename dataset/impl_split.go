// SPDX-License-Identifier: MIT
// Package: lvldata/dataset
//
// impl_split.go - two outer bands against the middle.
//
// Contract:
//   - Label 1 where x1 < 0.2 or x1 > 0.8, label 0 in between.
//   - Band edges are exclusive: x1 == 0.2 and x1 == 0.8 fall to label 0.
//   - Not separable by a single line; trivial for interval rules.
//   - Error is always nil.

package dataset

// Split generates n random points with the outer vertical bands labeled 1
// and the central band labeled 0. Complexity: O(n).
func Split(n int, opts ...Option) (Dataset, error) {
	pts := samplePoints(n, newConfig(opts...))
	labels := make([]int, len(pts))
	for i, p := range pts {
		if p.X1 < 0.2 || p.X1 > 0.8 {
			labels[i] = 1
		}
	}
	return Dataset{N: n, X: pts, Y: labels}, nil
}
