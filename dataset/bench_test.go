package dataset_test

import (
	"testing"

	"github.com/katalvlaran/lvldata/dataset"
)

// benchmarkGenerator runs gen at a fixed size with a pinned seed, so the
// numbers track generation cost rather than global-source contention.
func benchmarkGenerator(b *testing.B, gen dataset.Generator, n int) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gen(n, dataset.WithSeed(int64(i))); err != nil {
			b.Fatalf("generator failed: %v", err)
		}
	}
}

func BenchmarkSimple_1k(b *testing.B) { benchmarkGenerator(b, dataset.Simple, 1000) }
func BenchmarkXor_1k(b *testing.B)    { benchmarkGenerator(b, dataset.Xor, 1000) }
func BenchmarkCircle_1k(b *testing.B) { benchmarkGenerator(b, dataset.Circle, 1000) }
func BenchmarkSpiral_1k(b *testing.B) { benchmarkGenerator(b, dataset.Spiral, 1000) }

// BenchmarkPoints_1k measures the raw sampler without labeling on top.
func BenchmarkPoints_1k(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dataset.Points(1000, dataset.WithSeed(int64(i)))
	}
}

// BenchmarkDescribe_1k measures the summary pass over a fixed cloud.
func BenchmarkDescribe_1k(b *testing.B) {
	ds, err := dataset.Circle(1000, dataset.WithSeed(1))
	if err != nil {
		b.Fatalf("Circle: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dataset.Describe(ds); err != nil {
			b.Fatalf("Describe: %v", err)
		}
	}
}
