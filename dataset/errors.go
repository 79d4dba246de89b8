// SPDX-License-Identifier: MIT
// Package: lvldata/dataset
//
// errors.go - sentinel errors shared across the package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with
//     errors.Is(err, ErrX).
//   - Call sites attach context via fmt.Errorf("...: %w", ErrX) and never
//     restate sentinel text.
//   - Generators never panic at runtime; validation panics are confined to
//     option constructors (see options.go).

package dataset

import "errors"

// ErrSpiralCount indicates Spiral was asked for fewer than two points.
// The spiral parameter step divides by the per-arm count n/2, so a count
// that leaves no points per arm is rejected instead of emitting NaNs.
// Usage: if errors.Is(err, ErrSpiralCount) { /* request n >= 2 */ }.
var ErrSpiralCount = errors.New("dataset: spiral needs at least two points")

// ErrEmptyDataset indicates Describe received a dataset with no points;
// bounds and centroids of an empty cloud are undefined.
var ErrEmptyDataset = errors.New("dataset: no points to describe")

// ErrMisaligned indicates a dataset whose X and Y lengths differ. Only
// hand-assembled values can trigger it; generators always align them.
var ErrMisaligned = errors.New("dataset: points and labels differ in length")

// ErrLabelRange indicates a label outside {0,1} in a hand-assembled
// dataset. Generated datasets cannot trigger it.
var ErrLabelRange = errors.New("dataset: label outside {0,1}")
