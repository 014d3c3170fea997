// Package linear: the Shear family — one factor per off-diagonal cell.
package linear

import (
	"fmt"

	"github.com/katalvlaran/lvlgeo/matrix"
	"golang.org/x/exp/constraints"
)

// Shear is a linear transform that slants axes against each other.
// It stores dim·(dim−1) factors, one per off-diagonal matrix cell, in
// row-major order with the diagonal skipped. Its matrix form is the
// identity with the off-diagonal cells overwritten: the diagonal entries
// are exactly 1 regardless of the factor values, so a shear never changes
// volume sign by its diagonal.
type Shear[T constraints.Float] struct {
	dim     int
	factors []T // length dim*(dim-1), row-major over off-diagonal cells
}

// NewShear returns the identity shear (all factors 0) of the given
// dimension. Panics if dim < 2: shearing needs two distinct axes.
func NewShear[T constraints.Float](dim int) *Shear[T] {
	if dim < 2 {
		panic("linear: shear dimension must be >= 2")
	}

	return &Shear[T]{dim: dim, factors: make([]T, dim*(dim-1))}
}

// HorizontalShear returns the 2D shear with x-shear factor k: only the
// (0,1) cell is set; the y-shear stays 0.
func HorizontalShear[T constraints.Float](k T) *Shear[T] {
	h := NewShear[T](2)
	h.SetFactor(0, 1, k)

	return h
}

// VerticalShear is the mirror of HorizontalShear: only the (1,0) cell is
// set; the x-shear stays 0.
func VerticalShear[T constraints.Float](k T) *Shear[T] {
	h := NewShear[T](2)
	h.SetFactor(1, 0, k)

	return h
}

// Dim returns the dimension the shear acts on.
func (h *Shear[T]) Dim() int {
	return h.dim
}

// index maps an off-diagonal cell (i, j) to its slot in factors.
// Row i holds dim-1 factors: columns 0..i-1 keep their index, columns
// i+1..dim-1 shift left by one to skip the diagonal.
func (h *Shear[T]) index(i, j int) int {
	if i == j {
		panic("linear: shear factors live off the diagonal")
	}
	if i < 0 || i >= h.dim || j < 0 || j >= h.dim {
		panic(fmt.Sprintf("linear: shear cell (%d,%d) out of range for dimension %d", i, j, h.dim))
	}
	if j > i {
		j--
	}

	return i*(h.dim-1) + j
}

// Factor returns the shear factor for the off-diagonal cell (i, j).
// Panics when i == j or either index is out of range.
func (h *Shear[T]) Factor(i, j int) T {
	return h.factors[h.index(i, j)]
}

// SetFactor assigns the factor for one off-diagonal cell, leaving all
// others unchanged. Panics when i == j or out of range.
func (h *Shear[T]) SetFactor(i, j int, v T) {
	h.factors[h.index(i, j)] = v
}

// require2D guards the named 2D accessors.
func (h *Shear[T]) require2D() {
	if h.dim != 2 {
		panic(fmt.Sprintf("linear: named 2D shear accessor on dimension %d", h.dim))
	}
}

// X returns the x-shear factor of a 2D shear, the (0,1) cell.
// Panics unless Dim() == 2.
func (h *Shear[T]) X() T { h.require2D(); return h.Factor(0, 1) }

// Y returns the y-shear factor of a 2D shear, the (1,0) cell.
// Panics unless Dim() == 2.
func (h *Shear[T]) Y() T { h.require2D(); return h.Factor(1, 0) }

// SetX assigns the x-shear factor of a 2D shear; Y is untouched.
func (h *Shear[T]) SetX(v T) { h.require2D(); h.SetFactor(0, 1, v) }

// SetY assigns the y-shear factor of a 2D shear; X is untouched.
func (h *Shear[T]) SetY(v T) { h.require2D(); h.SetFactor(1, 0, v) }

// IsIdentity reports whether every factor is exactly 0.
func (h *Shear[T]) IsIdentity() bool {
	for _, f := range h.factors {
		if f != 0 {
			return false
		}
	}

	return true
}

// Matrix converts the shear to its dense form: the identity matrix with
// every off-diagonal cell overwritten by its factor. The diagonal remains
// exactly 1 whatever the factors. Complexity: O(n²).
func (h *Shear[T]) Matrix() *matrix.Square[T] {
	m := matrix.Identity[T](h.dim)
	var i, j int
	for i = 0; i < h.dim; i++ {
		for j = 0; j < h.dim; j++ {
			if i == j {
				continue
			}
			m.Set(i, j, h.factors[h.index(i, j)])
		}
	}

	return m
}

// Equal reports exact component-wise equality of the factors, not of the
// derived matrix (though the two must agree).
func (h *Shear[T]) Equal(o *Shear[T]) bool {
	if o == nil || h.dim != o.dim {
		return false
	}
	for i, f := range h.factors {
		if f != o.factors[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent deep copy of the shear.
func (h *Shear[T]) Clone() *Shear[T] {
	factors := make([]T, len(h.factors))
	copy(factors, h.factors)

	return &Shear[T]{dim: h.dim, factors: factors}
}
