// SPDX-License-Identifier: MIT
// Package: lvldata/dataset
//
// types.go - the Point and Dataset records plus the shared Generator shape.
//
// Design:
//   - Dataset is a plain value record: construct wholesale, return by value,
//     never mutate after the fact.
//   - X and Y follow the usual ML naming for features and labels; Y[i]
//     always labels X[i].

package dataset

// Point is an ordered pair of 2D coordinates. Sampler output keeps both
// coordinates in [0,1); Spiral emits parametric coordinates centered on
// (0.5, 0.5) that may spill slightly past the unit square.
type Point struct {
	X1, X2 float64
}

// Dataset pairs generated points with their binary labels.
//
// N records the requested point count. Every generator except Spiral stores
// exactly N points; Spiral truncates odd N to 2*(N/2) stored points while N
// still records the request (see impl_spiral.go).
type Dataset struct {
	// N is the point count the generator was asked for.
	N int

	// X holds the points in generation order. Order is meaningful for
	// Spiral (first arm, then second); it is incidental elsewhere.
	X []Point

	// Y holds one label per point, index-aligned with X. Generated labels
	// are always 0 or 1.
	Y []int
}

// Generator is the shared shape of the six dataset constructors: requested
// point count in, labeled Dataset out. Only Spiral can fail (with
// ErrSpiralCount); the other five always return a nil error.
type Generator func(n int, opts ...Option) (Dataset, error)
