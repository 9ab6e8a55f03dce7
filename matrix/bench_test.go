// Package matrix_test provides benchmarks for the kernels used by the
// finite-difference engines, using deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/optionfdm/matrix"
)

// benchSizes are the system orders to benchmark (typical asset-axis node counts).
var benchSizes = []int{128, 1024, 8192}

// sinks to defeat dead-code elimination
var (
	sinkD *matrix.Dense
	sinkF float64
	sinkT *matrix.ThomasFactor
)

func BenchmarkThomasFactorize(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			sub, diag, super := randomDominantBands(n, 1)
			tri, err := matrix.NewTridiagonal(sub, diag, super)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				f, err := tri.Factorize()
				if err != nil {
					b.Fatal(err)
				}
				sinkT = f
			}
		})
	}
}

// BenchmarkThomasSolveInto measures the per-time-step cost of the implicit engine.
func BenchmarkThomasSolveInto(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			sub, diag, super := randomDominantBands(n, 2)
			tri, err := matrix.NewTridiagonal(sub, diag, super)
			if err != nil {
				b.Fatal(err)
			}
			f, err := tri.Factorize()
			if err != nil {
				b.Fatal(err)
			}
			rhs := randomVector(n, 3)
			dst := make([]float64, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err = f.SolveInto(dst, rhs); err != nil {
					b.Fatal(err)
				}
			}
			sinkF = dst[n/2]
		})
	}
}

func BenchmarkSub(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{64, 256} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := NewFilledDense(b, n, n, randomVector(n*n, 11))
			B := NewFilledDense(b, n, n, randomVector(n*n, 22))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Sub(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkD = m
			}
		})
	}
}

func BenchmarkMaxAbsDiff(b *testing.B) {
	b.ReportAllocs()
	A := NewFilledDense(b, 256, 256, randomVector(256*256, 5))
	B := NewFilledDense(b, 256, 256, randomVector(256*256, 6))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d, _, _, err := matrix.MaxAbsDiff(A, B)
		if err != nil {
			b.Fatal(err)
		}
		sinkF = d
	}
}
