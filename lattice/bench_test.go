package lattice_test

import (
	"testing"

	"github.com/katalvlaran/lvscatter/lattice"
)

func benchmarkGenerate(b *testing.B, shape lattice.Shape, a, l float64) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := lattice.Generate(shape, a, l); err != nil {
			b.Fatalf("Generate failed: %v", err)
		}
	}
}

// BenchmarkGenerate_Cube30 benchmarks the demo cube (8³ points).
func BenchmarkGenerate_Cube30(b *testing.B) { benchmarkGenerate(b, lattice.Cube, 3.89, 30) }

// BenchmarkGenerate_Sphere100 benchmarks a 100³ candidate grid sphere cut.
func BenchmarkGenerate_Sphere100(b *testing.B) { benchmarkGenerate(b, lattice.Sphere, 1, 100) }
