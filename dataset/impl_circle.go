// SPDX-License-Identifier: MIT
// Package: lvldata/dataset
//
// impl_circle.go - ring around a centered disc.
//
// Contract:
//   - Label 1 outside the circle of squared radius 0.1 centered on
//     (0.5, 0.5), label 0 inside; the boundary itself falls to 0.
//   - Comparison happens in squared distance, so no square roots.
//   - Error is always nil.

package dataset

// Circle generates n random points labeled 1 outside the centered disc of
// radius sqrt(0.1) and 0 inside it. Complexity: O(n).
func Circle(n int, opts ...Option) (Dataset, error) {
	pts := samplePoints(n, newConfig(opts...))
	labels := make([]int, len(pts))
	for i, p := range pts {
		d1, d2 := p.X1-0.5, p.X2-0.5
		if d1*d1+d2*d2 > 0.1 {
			labels[i] = 1
		}
	}
	return Dataset{N: n, X: pts, Y: labels}, nil
}
