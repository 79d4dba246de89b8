// SPDX-License-Identifier: MIT
// Package: lvldata/dataset
//
// api.go - the canonical name registry over the six generators.
//
// Design:
//   - The menu is fixed: exactly six names, stable order, no runtime
//     registration. Consumers branch on Lookup's second result; an unknown
//     name has no behavior here beyond ok == false.

package dataset

// Canonical generator names, spelled exactly as they appear in menus.
const (
	NameSimple = "Simple"
	NameDiag   = "Diag"
	NameSplit  = "Split"
	NameXor    = "Xor"
	NameCircle = "Circle"
	NameSpiral = "Spiral"
)

// menu fixes the canonical ordering served by Names.
var menu = []string{NameSimple, NameDiag, NameSplit, NameXor, NameCircle, NameSpiral}

// registry maps canonical names to their generators.
var registry = map[string]Generator{
	NameSimple: Simple,
	NameDiag:   Diag,
	NameSplit:  Split,
	NameXor:    Xor,
	NameCircle: Circle,
	NameSpiral: Spiral,
}

// Lookup resolves a canonical dataset name to its generator. The second
// result reports whether the name is known; guarding it is the caller's
// job, exactly as with a map read.
// Complexity: O(1).
func Lookup(name string) (Generator, bool) {
	g, ok := registry[name]
	return g, ok
}

// Names returns the six canonical generator names in menu order (Simple,
// Diag, Split, Xor, Circle, Spiral). The slice is a fresh copy on every
// call; reorder or trim it freely.
func Names() []string {
	out := make([]string, len(menu))
	copy(out, menu)
	return out
}
