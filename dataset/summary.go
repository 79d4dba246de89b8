// SPDX-License-Identifier: MIT
// Package: lvldata/dataset
//
// summary.go - per-dataset diagnostics for demo harnesses and reports.
//
// Purpose:
//   - One call turns a Dataset into the numbers a demo prints before
//     training: totals, class balance, bounds and centroids.
//
// Contract:
//   - Describe never mutates the dataset.
//   - Empty input -> ErrEmptyDataset (extrema of nothing are undefined).
//   - len(X) != len(Y) -> ErrMisaligned.
//   - Labels outside {0,1} -> ErrLabelRange. Generated datasets satisfy
//     all three preconditions by construction.
//
// Complexity:
//   - Time: O(n) over two passes. Space: O(n) for the column views.

package dataset

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary captures the shape of one dataset: how many points, how they
// split across the two classes, where they live and where each class
// clusters.
type Summary struct {
	// Count is the number of stored points: len(X), not the N field.
	Count int

	// ClassCount holds the number of points per label, indexed by label.
	ClassCount [2]int

	// Min and Max bound the point cloud per coordinate.
	Min, Max Point

	// Centroid is the mean of all points.
	Centroid Point

	// ClassCentroid holds the per-label centroid, indexed by label.
	// A class with no members keeps the zero Point.
	ClassCentroid [2]Point
}

// Describe summarizes ds into counts, bounds and centroids. It reads the
// dataset exactly as stored: Count reflects len(X), so an odd-N Spiral
// reports one point fewer than its N field.
func Describe(ds Dataset) (Summary, error) {
	if len(ds.X) == 0 {
		return Summary{}, fmt.Errorf("Describe: %w", ErrEmptyDataset)
	}
	if len(ds.Y) != len(ds.X) {
		return Summary{}, fmt.Errorf("Describe: %d points vs %d labels: %w",
			len(ds.X), len(ds.Y), ErrMisaligned)
	}

	// Column views feed the gonum reductions, which want flat float slices.
	x1 := make([]float64, len(ds.X))
	x2 := make([]float64, len(ds.X))
	for i, p := range ds.X {
		x1[i], x2[i] = p.X1, p.X2
	}

	s := Summary{Count: len(ds.X)}
	s.Min = Point{X1: floats.Min(x1), X2: floats.Min(x2)}
	s.Max = Point{X1: floats.Max(x1), X2: floats.Max(x2)}
	s.Centroid = Point{X1: stat.Mean(x1, nil), X2: stat.Mean(x2, nil)}

	// Second pass: validate labels and gather per-class columns.
	var cls [2][2][]float64 // cls[label][coordinate]
	for i, y := range ds.Y {
		if y != 0 && y != 1 {
			return Summary{}, fmt.Errorf("Describe: Y[%d]=%d: %w", i, y, ErrLabelRange)
		}
		s.ClassCount[y]++
		cls[y][0] = append(cls[y][0], ds.X[i].X1)
		cls[y][1] = append(cls[y][1], ds.X[i].X2)
	}
	for label := range cls {
		if s.ClassCount[label] == 0 {
			continue // absent class keeps the zero centroid
		}
		s.ClassCentroid[label] = Point{
			X1: stat.Mean(cls[label][0], nil),
			X2: stat.Mean(cls[label][1], nil),
		}
	}

	return s, nil
}
