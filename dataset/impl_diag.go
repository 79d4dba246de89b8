// SPDX-License-Identifier: MIT
// Package: lvldata/dataset
//
// impl_diag.go - diagonal half-plane split.
//
// Contract:
//   - Label 1 where x1 + x2 < 0.5, label 0 elsewhere (sum == 0.5 falls to 0).
//   - Still linearly separable, but the boundary is no longer axis-aligned.
//   - Error is always nil.

package dataset

// Diag generates n random points split by the diagonal x1 + x2 = 0.5:
// label 1 below it, label 0 above. Complexity: O(n).
func Diag(n int, opts ...Option) (Dataset, error) {
	pts := samplePoints(n, newConfig(opts...))
	labels := make([]int, len(pts))
	for i, p := range pts {
		if p.X1+p.X2 < 0.5 {
			labels[i] = 1
		}
	}
	return Dataset{N: n, X: pts, Y: labels}, nil
}
