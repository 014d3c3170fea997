// SPDX-License-Identifier: MIT

// Package matrix: pure operations on Square matrices.
// All kernels use fixed, deterministic loop orders, allocate exactly the
// result, and never mutate their operands. Shape mismatches between fixed-
// size operands are programmer errors and panic; the only reportable failure
// in this file is ErrSingular from Inverse.

package matrix

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Mul returns the product C = A × B by the standard O(n³) definition.
// Panics when the dimensions differ (fixed-size operands cannot legally
// disagree at runtime).
//
// Determinism:
//   - Fixed i→k→j loop order over the row-major backing slices.
//   - Zero entries of A are skipped; this never changes the result, only
//     avoids useless multiplies and keeps identity products bit-exact.
//
// Complexity: Time O(n³), Space O(n²) for the result.
func Mul[T constraints.Float](a, b *Square[T]) *Square[T] {
	if a.n != b.n {
		panic("matrix: dimension mismatch")
	}
	n := a.n
	res := New[T](n)

	var i, j, k, rowA, rowB, rowR int
	var av T
	for i = 0; i < n; i++ {
		rowA = i * n
		rowR = i * n
		for k = 0; k < n; k++ {
			av = a.data[rowA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowB = k * n
			for j = 0; j < n; j++ {
				res.data[rowR+j] += av * b.data[rowB+j]
			}
		}
	}

	return res
}

// MulVec computes y = m·x for a column vector x.
// Panics when len(x) != m.Dim().
//
// Determinism: fixed i→j loop order; zero x components are skipped.
// Complexity: Time O(n²), Space O(n) for y.
func MulVec[T constraints.Float](m *Square[T], x []T) []T {
	if len(x) != m.n {
		panic("matrix: vector length mismatch")
	}
	y := make([]T, m.n)

	var i, j, base int
	var acc, xv T
	for i = 0; i < m.n; i++ {
		acc = 0
		base = i * m.n
		for j = 0; j < m.n; j++ {
			xv = x[j]
			if xv != 0 { // skip zero multiplications
				acc += m.data[base+j] * xv
			}
		}
		y[i] = acc
	}

	return y
}

// Transpose returns mᵀ as a fresh matrix.
// Complexity: Time O(n²), Space O(n²).
func Transpose[T constraints.Float](m *Square[T]) *Square[T] {
	res := New[T](m.n)

	var i, j, baseSrc int
	for i = 0; i < m.n; i++ {
		baseSrc = i * m.n
		for j = 0; j < m.n; j++ {
			res.data[j*m.n+i] = m.data[baseSrc+j]
		}
	}

	return res
}

// Det returns the determinant of m.
//
// Implementation:
//   - n == 1 and n == 2 use the direct closed forms (a·d − b·c for 2×2).
//   - Larger n run Gaussian elimination with partial (max-|pivot|) pivoting
//     on a float64 working copy; the determinant is the signed product of
//     the pivots. A zero pivot column short-circuits to 0.
//
// Partial pivoting matters even for "nice" transforms: a quarter-turn
// rotation has a zero at (0,0) and an unpivoted scheme would reject it.
//
// Complexity: Time O(n³), Space O(n²) for the working copy.
func Det[T constraints.Float](m *Square[T]) T {
	n := m.n
	switch n {
	case 1:
		return m.data[0]
	case 2:
		return m.data[0]*m.data[3] - m.data[1]*m.data[2]
	}

	// Working copy in float64 to keep elimination precision scalar-independent.
	w := make([]float64, n*n)
	for i, v := range m.data {
		w[i] = float64(v)
	}

	det := 1.0
	var col, row, r, c, pivotRow int
	var pivot, factor float64
	for col = 0; col < n; col++ {
		// Select the row with the largest |pivot| at or below the diagonal.
		pivotRow = col
		pivot = math.Abs(w[col*n+col])
		for row = col + 1; row < n; row++ {
			if abs := math.Abs(w[row*n+col]); abs > pivot {
				pivot, pivotRow = abs, row
			}
		}
		if pivot == 0 {
			return 0 // exactly singular
		}
		if pivotRow != col {
			// Row swap flips the determinant sign.
			for c = col; c < n; c++ {
				w[col*n+c], w[pivotRow*n+c] = w[pivotRow*n+c], w[col*n+c]
			}
			det = -det
		}
		det *= w[col*n+col]
		// Eliminate below the pivot.
		for r = col + 1; r < n; r++ {
			factor = w[r*n+col] / w[col*n+col]
			if factor == 0 {
				continue
			}
			for c = col; c < n; c++ {
				w[r*n+c] -= factor * w[col*n+c]
			}
		}
	}

	return T(det)
}

// Inverse computes m⁻¹ via Gauss–Jordan elimination with partial pivoting.
// Returns ErrSingular when the best available pivot at some step is exactly
// zero; the inverse is never silently approximated. The input is read-only.
//
// Determinism:
//   - Fixed column order; the pivot row is the max-|value| row at or below
//     the diagonal, ties resolved to the smallest row index.
//
// Complexity: Time O(n³), Space O(n²) for the augmented working copy.
func Inverse[T constraints.Float](m *Square[T]) (*Square[T], error) {
	n := m.n

	// Augmented system [w | inv], both in float64 working precision.
	w := make([]float64, n*n)
	for i, v := range m.data {
		w[i] = float64(v)
	}
	inv := make([]float64, n*n)
	for i := 0; i < n; i++ {
		inv[i*n+i] = 1
	}

	var col, row, r, c, pivotRow int
	var pivot, scale, factor float64
	for col = 0; col < n; col++ {
		// Partial pivoting: pick the max-|value| row for this column.
		pivotRow = col
		pivot = math.Abs(w[col*n+col])
		for row = col + 1; row < n; row++ {
			if abs := math.Abs(w[row*n+col]); abs > pivot {
				pivot, pivotRow = abs, row
			}
		}
		if pivot == 0 {
			return nil, ErrSingular
		}
		if pivotRow != col {
			for c = 0; c < n; c++ {
				w[col*n+c], w[pivotRow*n+c] = w[pivotRow*n+c], w[col*n+c]
				inv[col*n+c], inv[pivotRow*n+c] = inv[pivotRow*n+c], inv[col*n+c]
			}
		}

		// Normalize the pivot row.
		scale = w[col*n+col]
		for c = 0; c < n; c++ {
			w[col*n+c] /= scale
			inv[col*n+c] /= scale
		}

		// Eliminate the column everywhere else.
		for r = 0; r < n; r++ {
			if r == col {
				continue
			}
			factor = w[r*n+col]
			if factor == 0 {
				continue
			}
			for c = 0; c < n; c++ {
				w[r*n+c] -= factor * w[col*n+c]
				inv[r*n+c] -= factor * inv[col*n+c]
			}
		}
	}

	res := New[T](n)
	for i := range inv {
		res.data[i] = T(inv[i])
	}

	return res, nil
}
