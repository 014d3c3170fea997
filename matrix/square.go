// Package matrix: Square is a concrete, row-major dense square matrix,
// storing elements in a flat slice for performance and cache friendliness.
package matrix

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Square is a row-major n×n matrix of floating-point values.
// n is the dimension and data holds n*n elements in row-major order.
// The dimension is fixed at construction; a Square never resizes.
type Square[T constraints.Float] struct {
	n    int // dimension (rows == cols == n)
	data []T // flat backing storage, length == n*n
}

// New creates an n×n Square initialized to zeros.
// The dimension invariant is asserted exactly once, here: n < 1 is a
// programmer error and panics. All later indexing relies on it.
// Complexity: O(n²) time and memory.
func New[T constraints.Float](n int) *Square[T] {
	if n < 1 {
		panic("matrix: dimension must be >= 1")
	}

	return &Square[T]{n: n, data: make([]T, n*n)}
}

// Identity returns the n×n identity matrix: 1 on the diagonal, 0 elsewhere.
// Complexity: O(n²).
func Identity[T constraints.Float](n int) *Square[T] {
	m := New[T](n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m
}

// FromRows builds a Square from explicit rows. Every row must have exactly
// len(rows) elements; a ragged or empty input is a programmer error and
// panics. Values are copied: the result shares no storage with rows.
// Complexity: O(n²).
func FromRows[T constraints.Float](rows [][]T) *Square[T] {
	n := len(rows)
	m := New[T](n) // panics when n < 1
	for i, row := range rows {
		if len(row) != n {
			panic("matrix: rows must form a square")
		}
		copy(m.data[i*n:(i+1)*n], row)
	}

	return m
}

// Dim returns the dimension n of the matrix.
// Complexity: O(1).
func (m *Square[T]) Dim() int {
	return m.n
}

// index computes the flat offset for (row, col), panicking out of range.
// Out-of-range access on a fixed-size matrix is a programming-error-class
// fault, never a soft error.
func (m *Square[T]) index(row, col int) int {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		panic(fmt.Sprintf("matrix: index (%d,%d) out of range for dimension %d", row, col, m.n))
	}

	return row*m.n + col
}

// At retrieves the element at (row, col). Panics out of range.
// Complexity: O(1).
func (m *Square[T]) At(row, col int) T {
	return m.data[m.index(row, col)]
}

// Set assigns value v at (row, col). Panics out of range.
// Complexity: O(1).
func (m *Square[T]) Set(row, col int, v T) {
	m.data[m.index(row, col)] = v
}

// require2x2 guards the named 2×2 accessors below.
func (m *Square[T]) require2x2() {
	if m.n != 2 {
		panic(fmt.Sprintf("matrix: named 2x2 accessor on dimension %d", m.n))
	}
}

// A returns the (0,0) element of a 2×2 matrix.
// The A/B/C/D naming is a stable, test-visible contract:
// A=(0,0), B=(0,1), C=(1,0), D=(1,1). Panics unless Dim() == 2.
func (m *Square[T]) A() T { m.require2x2(); return m.data[0] }

// B returns the (0,1) element of a 2×2 matrix. Panics unless Dim() == 2.
func (m *Square[T]) B() T { m.require2x2(); return m.data[1] }

// C returns the (1,0) element of a 2×2 matrix. Panics unless Dim() == 2.
func (m *Square[T]) C() T { m.require2x2(); return m.data[2] }

// D returns the (1,1) element of a 2×2 matrix. Panics unless Dim() == 2.
func (m *Square[T]) D() T { m.require2x2(); return m.data[3] }

// Clone returns an independent deep copy of the matrix.
// Complexity: O(n²) time and memory for the copy.
func (m *Square[T]) Clone() *Square[T] {
	copyData := make([]T, len(m.data))
	copy(copyData, m.data)

	return &Square[T]{n: m.n, data: copyData}
}

// Equal reports exact component-wise equality with o.
// Matrices of different dimensions (and nil) are never equal; no epsilon is
// applied. Tolerance-based comparison is the caller's responsibility.
// Complexity: O(n²).
func (m *Square[T]) Equal(o *Square[T]) bool {
	if o == nil || m.n != o.n {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging, one bracketed row per
// line. Complexity: O(n²) for string construction.
func (m *Square[T]) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.n; i++ { // iterate over rows
		sb.WriteByte('[')
		for j = 0; j < m.n; j++ { // iterate over columns
			fmt.Fprintf(&sb, "%g", float64(m.data[i*m.n+j]))
			if j < m.n-1 {
				sb.WriteString(", ") // separate values with comma
			}
		}
		sb.WriteString("]\n") // close row
	}

	return sb.String()
}
