// SPDX-License-Identifier: MIT
// Package: lvldata/dataset
//
// impl_simple.go - vertical half-plane split, the easiest separable cloud.
//
// Canonical model:
//   - Sample n uniform points, label 1 where x1 < 0.5 and 0 elsewhere.
//   - One decision boundary, axis-aligned: any linear classifier nails it.
//
// Contract:
//   - Exactly n points for n >= 1; empty dataset (N preserved) otherwise.
//   - Boundary points with x1 == 0.5 exactly fall to label 0.
//   - Error is always nil; it exists so Simple satisfies Generator.
//
// Complexity:
//   - Time: O(n) draws + O(n) labeling. Space: O(n).

package dataset

// Simple generates n random points split by the vertical line x1 = 0.5:
// label 1 on the left, label 0 on the right.
func Simple(n int, opts ...Option) (Dataset, error) {
	pts := samplePoints(n, newConfig(opts...))
	labels := make([]int, len(pts))
	for i, p := range pts {
		if p.X1 < 0.5 {
			labels[i] = 1
		}
	}
	return Dataset{N: n, X: pts, Y: labels}, nil
}
