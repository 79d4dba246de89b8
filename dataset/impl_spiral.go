// SPDX-License-Identifier: MIT
// Package: lvldata/dataset
//
// impl_spiral.go - two interleaved parametric spiral arms.
//
// Canonical model:
//   - Base curve t -> (t*cos(t)/20, t*sin(t)/20), shifted onto (0.5, 0.5).
//   - Arm one walks t = armScale*i/m for i in [armStart, armStart+m);
//     arm two negates t and swaps the coordinate roles, which mirrors the
//     curve into the opposite winding.
//   - Labels: m zeros (arm one) then m ones (arm two), in storage order.
//
// Contract:
//   - Per-arm count m = n/2, truncating: odd n stores 2*m = n-1 points
//     while Dataset.N records the requested n (documented contract).
//   - m < 1 (n < 2, negatives included) is rejected with ErrSpiralCount:
//     the parameter step divides by m.
//   - Fully parametric: consumes no entropy, ignores options, and returns
//     the same dataset on every call with equal n.
//
// Complexity:
//   - Time: O(n) trigonometric evaluations. Space: O(n).

package dataset

import (
	"fmt"
	"math"
)

const (
	// armStart is the first parameter index of both arms; skipping the
	// innermost indices keeps the arms clear of the shared center.
	armStart = 5
	// armScale stretches the parameter: t = armScale * i / m.
	armScale = 10.0
	// radiusDamp divides the radius so the arms stay near the unit square.
	radiusDamp = 20.0
)

// spiralX and spiralY trace the base curve t -> (t*cos t, t*sin t)/radiusDamp.
func spiralX(t float64) float64 { return t * math.Cos(t) / radiusDamp }
func spiralY(t float64) float64 { return t * math.Sin(t) / radiusDamp }

// Spiral generates two interleaved spiral arms of n/2 points each, centered
// on (0.5, 0.5): arm one labeled 0, arm two labeled 1, in storage order.
// Options are accepted only for signature uniformity; the curve is
// parametric and never draws from a random source. Returns ErrSpiralCount
// when n/2 leaves no points per arm.
func Spiral(n int, _ ...Option) (Dataset, error) {
	m := n / 2
	if m < 1 {
		return Dataset{}, fmt.Errorf("Spiral: n=%d leaves no points per arm: %w", n, ErrSpiralCount)
	}

	pts := make([]Point, 0, 2*m)
	// First arm: t grows with i, winding outwards counterclockwise.
	for i := armStart; i < armStart+m; i++ {
		t := armScale * (float64(i) / float64(m))
		pts = append(pts, Point{X1: spiralX(t) + 0.5, X2: spiralY(t) + 0.5})
	}
	// Second arm: negated parameter with the coordinate roles swapped.
	for i := armStart; i < armStart+m; i++ {
		t := -armScale * (float64(i) / float64(m))
		pts = append(pts, Point{X1: spiralY(t) + 0.5, X2: spiralX(t) + 0.5})
	}

	labels := make([]int, 2*m)
	for i := m; i < 2*m; i++ {
		labels[i] = 1
	}

	return Dataset{N: n, X: pts, Y: labels}, nil
}
