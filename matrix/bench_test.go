// Package matrix_test provides benchmarks for core matrix operations,
// using deterministic random fill for Square matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvlgeo/matrix"
)

// benchDims are the matrix dimensions to benchmark; transforms in practice
// live at the small end.
var benchDims = []int{2, 3, 4, 8}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Square[float64]
	sinkV []float64
)

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchDims {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := randSquare(n, 1337)
			y := randSquare(n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkM = matrix.Mul(x, y)
			}
		})
	}
}

func BenchmarkMulVec(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchDims {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := randSquare(n, 1337)
			x := make([]float64, n)
			for i := range x {
				x[i] = float64(i + 1)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkV = matrix.MulVec(m, x)
			}
		})
	}
}

func BenchmarkInverse(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchDims {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := randSquare(n, 1337)
			for i := 0; i < n; i++ {
				m.Set(i, i, m.At(i, i)+float64(n)) // keep it well-conditioned
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				inv, err := matrix.Inverse(m)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = inv
			}
		})
	}
}
