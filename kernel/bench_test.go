package kernel_test

import (
	"testing"

	"github.com/katalvlaran/gakernel/algebra"
	"github.com/katalvlaran/gakernel/kernel"
)

// benchmarkApply runs kn on two fixed operands, resetting the timer after
// setup and failing on unexpected errors.
func benchmarkApply(b *testing.B, kn *kernel.Kernel, x, y []float64) {
	b.Helper()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := kn.Apply(x, y); err != nil {
			b.Fatalf("Apply failed: %v", err)
		}
	}
}

// BenchmarkApply_Dense_Cl5 benchmarks the full geometric product in a
// 5-generator (32-blade) algebra: every nonzero structure constant replayed.
func BenchmarkApply_Dense_Cl5(b *testing.B) {
	l, err := algebra.New(algebra.Euclidean(5))
	if err != nil {
		b.Fatalf("layout: %v", err)
	}
	kn, err := kernel.Synthesize(l.GeometricTensor(), l.BladeCount())
	if err != nil {
		b.Fatalf("synthesize: %v", err)
	}

	x := make([]float64, l.BladeCount())
	y := make([]float64, l.BladeCount())
	for i := range x {
		x[i] = float64(i%7) - 3 // predictable mixed-grade operands
		y[i] = float64(i%5) - 2
	}
	benchmarkApply(b, kn, x, y)
}

// BenchmarkApply_RotorSparse_Cl5 benchmarks the rotor-specialized kernel in
// the same algebra: only even-grade rows of the left operand survive
// synthesis, roughly halving the term list.
func BenchmarkApply_RotorSparse_Cl5(b *testing.B) {
	l, err := algebra.New(algebra.Euclidean(5))
	if err != nil {
		b.Fatalf("layout: %v", err)
	}
	n := l.Generators()
	kn, err := kernel.SynthesizeSparse(l.GeometricTensor(), l.BladeCount(), l.GradeFunc(),
		kernel.EvenGrades(n), kernel.AllGrades(n))
	if err != nil {
		b.Fatalf("synthesize: %v", err)
	}

	gradeOf := l.GradeFunc()
	rotor := make([]float64, l.BladeCount())
	y := make([]float64, l.BladeCount())
	for i := range rotor {
		if gradeOf(i)%2 == 0 {
			rotor[i] = float64(i%7) - 3
		}
		y[i] = float64(i%5) - 2
	}
	benchmarkApply(b, kn, rotor, y)
}

// BenchmarkSynthesize_Cl5 measures the one-time compilation cost itself.
func BenchmarkSynthesize_Cl5(b *testing.B) {
	l, err := algebra.New(algebra.Euclidean(5))
	if err != nil {
		b.Fatalf("layout: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := kernel.Synthesize(l.GeometricTensor(), l.BladeCount()); err != nil {
			b.Fatalf("synthesize: %v", err)
		}
	}
}
