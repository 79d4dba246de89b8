// Package lvldata is your pocket factory for synthetic 2D point datasets —
// the classic teaching shapes, labeled and ready for any toy classifier.
//
// 🚀 What is lvldata/dataset?
//
//	A tiny, deterministic-on-demand library that brings together:
//		• Point sampler: uniform draws over the unit square [0,1)²
//		• Six canonical shapes: Simple, Diag, Split, Xor, Circle, Spiral
//		• Binary labels: every point tagged 0 or 1 by a closed-form rule
//		• Name registry: resolve generators by their menu names
//		• Summaries: counts, bounds & centroids for quick reports
//
// ✨ Why choose lvldata?
//
//   - Beginner-friendly – one call per dataset, one record out
//   - Reproducible on request – inject a seed, freeze the cloud
//   - Pure Go core – math/rand plus gonum for the statistics
//   - Demo-ready – registry-driven menus, runnable scenarios in examples/
//
// Everything lives under one subpackage:
//
//	dataset/ — Point & Dataset records, the sampler, six generators,
//	           the name registry and Describe diagnostics
//
// Quick ASCII example:
//
//	    1 │ ● ● ○ ○
//	  x2  │ ● ● ○ ○
//	    0 │ ● ● ○ ○
//	      └─────────
//	        0  x1  1
//
//	Simple(n): points left of x1 = 0.5 are labeled 1 (●), the rest 0 (○).
//
// Next up: noisy variants, k-class shapes and streaming draws.
// Dive into examples/ for runnable demos — an ASCII spiral scatter, a
// nearest-centroid run on Xor, and a registry menu walkthrough.
//
//	go get github.com/katalvlaran/lvldata/dataset
package lvldata
