// Package dataset generates small synthetic 2D point clouds with binary
// labels, the classic shapes used to teach and demo classifiers.
//
// 🚀 What is dataset?
//
//	A one-call factory for labeled toy data.  Each generator samples (or
//	traces) n points in the unit square and tags every point 0 or 1 by a
//	closed-form geometric rule.  Typical homes:
//	  • Classifier demos & tutorials (logistic regression, tiny nets)
//	  • Visual sanity checks of decision boundaries
//	  • Seeded golden fixtures for model tests
//
// ✨ Key features:
//   - Points(n): uniform samples over [0,1)², the base of five generators
//   - six shapes: Simple, Diag, Split, Xor, Circle (random), Spiral (parametric)
//   - one signature for all six (Generator), so menus stay table-driven
//   - Lookup/Names: resolve generators by their canonical menu names
//   - Describe: counts, bounds & centroids via gonum, print-ready
//   - WithSeed / WithRand: opt-in determinism; default is the global source
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvldata/dataset"
//
//	ds, err := dataset.Xor(200, dataset.WithSeed(42))
//	if err != nil { ... }
//	for i, p := range ds.X {
//	  plot(p.X1, p.X2, ds.Y[i])
//	}
//
//	// or registry-driven:
//	gen, ok := dataset.Lookup(dataset.NameSpiral)
//
// Errors:
//
//   - ErrSpiralCount: Spiral needs n ≥ 2 (its parameter step divides by n/2)
//   - ErrEmptyDataset, ErrMisaligned, ErrLabelRange: Describe preconditions
//
// Performance:
//
//   - Every generator is a single pass: O(n) time, O(n) memory.
//
// See examples in example_test.go and the runnable demos under examples/.
package dataset
