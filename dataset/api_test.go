package dataset_test

import (
	"testing"

	"github.com/katalvlaran/lvldata/dataset"
)

//----------------------------------------------------------------------------//
// Registry Tests: Names and Lookup
//----------------------------------------------------------------------------//

// TestNames_CanonicalMenu verifies the registry serves exactly the six
// documented names in menu order.
func TestNames_CanonicalMenu(t *testing.T) {
	want := []string{"Simple", "Diag", "Split", "Xor", "Circle", "Spiral"}
	got := dataset.Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q; want %q", i, got[i], want[i])
		}
	}
}

// TestNames_ReturnsCopy ensures callers cannot corrupt the menu through the
// returned slice.
func TestNames_ReturnsCopy(t *testing.T) {
	first := dataset.Names()
	first[0] = "Bogus"
	if second := dataset.Names(); second[0] != dataset.NameSimple {
		t.Errorf("Names() shares state: got %q after caller mutation", second[0])
	}
}

// TestLookup_KnownNames resolves every canonical name and runs the
// resulting generator through the shared contract.
func TestLookup_KnownNames(t *testing.T) {
	for _, name := range dataset.Names() {
		t.Run(name, func(t *testing.T) {
			gen, ok := dataset.Lookup(name)
			if !ok {
				t.Fatalf("Lookup(%q) = _, false; want a generator", name)
			}
			ds, err := gen(24, dataset.WithSeed(5))
			if err != nil {
				t.Fatalf("Lookup(%q) generator failed: %v", name, err)
			}
			if ds.N != 24 {
				t.Errorf("ds.N = %d; want 24", ds.N)
			}
			if len(ds.X) != len(ds.Y) {
				t.Errorf("misaligned dataset: %d points vs %d labels", len(ds.X), len(ds.Y))
			}
			if len(ds.X) != 24 {
				t.Errorf("len(X) = %d; want 24", len(ds.X))
			}
		})
	}
}

// TestLookup_ConstantsRoundTrip checks the exported name constants are the
// registry's exact keys.
func TestLookup_ConstantsRoundTrip(t *testing.T) {
	names := []string{
		dataset.NameSimple, dataset.NameDiag, dataset.NameSplit,
		dataset.NameXor, dataset.NameCircle, dataset.NameSpiral,
	}
	for _, name := range names {
		if _, ok := dataset.Lookup(name); !ok {
			t.Errorf("Lookup(%q) = _, false; constant must resolve", name)
		}
	}
}

// TestLookup_UnknownName leaves guarding to the caller: ok must be false
// and the generator nil, with nothing else happening.
func TestLookup_UnknownName(t *testing.T) {
	for _, name := range []string{"", "simple", "SPIRAL", "Banana"} {
		if gen, ok := dataset.Lookup(name); ok || gen != nil {
			t.Errorf("Lookup(%q) = %v, %v; want nil, false", name, gen, ok)
		}
	}
}
