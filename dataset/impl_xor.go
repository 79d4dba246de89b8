// SPDX-License-Identifier: MIT
// Package: lvldata/dataset
//
// impl_xor.go - opposing quadrants, the classic XOR counterexample.
//
// Contract:
//   - Label 1 in the top-left and bottom-right quadrants, 0 in the others:
//     (x1 < 0.5 and x2 > 0.5) or (x1 > 0.5 and x2 < 0.5).
//   - Points with either coordinate exactly 0.5 fall to label 0; both
//     quadrant tests use strict inequalities.
//   - The canonical "no single line separates this" dataset.
//   - Error is always nil.

package dataset

// Xor generates n random points labeled 1 in two opposing quadrants of the
// unit square and 0 in the other two. Complexity: O(n).
func Xor(n int, opts ...Option) (Dataset, error) {
	pts := samplePoints(n, newConfig(opts...))
	labels := make([]int, len(pts))
	for i, p := range pts {
		if (p.X1 < 0.5 && p.X2 > 0.5) || (p.X1 > 0.5 && p.X2 < 0.5) {
			labels[i] = 1
		}
	}
	return Dataset{N: n, X: pts, Y: labels}, nil
}
