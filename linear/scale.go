// Package linear: the Scale family — N independent per-axis factors.
package linear

import (
	"fmt"

	"github.com/katalvlaran/lvlgeo/matrix"
	"golang.org/x/exp/constraints"
)

// Scale is a linear transform that stretches each axis independently.
// Its matrix form is diagonal. A factor of 0 is permitted and produces a
// singular matrix; inversion of such a scale fails downstream.
type Scale[T constraints.Float] struct {
	factors []T // one factor per axis, length == dim
}

// NewScale builds a scale from explicit per-axis factors.
// Panics when no factors are given (dimensions are fixed at construction).
// The factors are copied; the result shares no storage with the argument.
func NewScale[T constraints.Float](factors ...T) *Scale[T] {
	if len(factors) < 1 {
		panic("linear: scale needs at least one factor")
	}
	own := make([]T, len(factors))
	copy(own, factors)

	return &Scale[T]{factors: own}
}

// IdentityScale returns the identity scale of the given dimension:
// every factor is 1. Panics if dim < 1.
func IdentityScale[T constraints.Float](dim int) *Scale[T] {
	return UniformScale[T](dim, 1)
}

// UniformScale returns the scale with all dim factors equal to k.
// Panics if dim < 1.
func UniformScale[T constraints.Float](dim int, k T) *Scale[T] {
	if dim < 1 {
		panic("linear: scale dimension must be >= 1")
	}
	factors := make([]T, dim)
	for i := range factors {
		factors[i] = k
	}

	return &Scale[T]{factors: factors}
}

// DoubleScale returns the uniform scale by 2.
func DoubleScale[T constraints.Float](dim int) *Scale[T] {
	return UniformScale[T](dim, 2)
}

// HalfScale returns the uniform scale by 0.5.
func HalfScale[T constraints.Float](dim int) *Scale[T] {
	return UniformScale[T](dim, 0.5)
}

// Dim returns the dimension the scale acts on.
func (s *Scale[T]) Dim() int {
	return len(s.factors)
}

// Factor returns the factor for the given axis. Panics out of range.
func (s *Scale[T]) Factor(axis int) T {
	s.checkAxis(axis)

	return s.factors[axis]
}

// SetFactor assigns the factor for one axis, leaving all others unchanged.
// Panics out of range.
func (s *Scale[T]) SetFactor(axis int, v T) {
	s.checkAxis(axis)
	s.factors[axis] = v
}

func (s *Scale[T]) checkAxis(axis int) {
	if axis < 0 || axis >= len(s.factors) {
		panic(fmt.Sprintf("linear: scale axis %d out of range for dimension %d", axis, len(s.factors)))
	}
}

// require2D guards the named 2D accessors.
func (s *Scale[T]) require2D() {
	if len(s.factors) != 2 {
		panic(fmt.Sprintf("linear: named 2D scale accessor on dimension %d", len(s.factors)))
	}
}

// X returns the first (x-axis) factor of a 2D scale. Panics unless Dim() == 2.
func (s *Scale[T]) X() T { s.require2D(); return s.factors[0] }

// Y returns the second (y-axis) factor of a 2D scale. Panics unless Dim() == 2.
func (s *Scale[T]) Y() T { s.require2D(); return s.factors[1] }

// SetX assigns the x-axis factor of a 2D scale; Y is untouched.
func (s *Scale[T]) SetX(v T) { s.require2D(); s.factors[0] = v }

// SetY assigns the y-axis factor of a 2D scale; X is untouched.
func (s *Scale[T]) SetY(v T) { s.require2D(); s.factors[1] = v }

// IsIdentity reports whether every factor is exactly 1.
func (s *Scale[T]) IsIdentity() bool {
	for _, f := range s.factors {
		if f != 1 {
			return false
		}
	}

	return true
}

// Matrix converts the scale to its dense form: a diagonal matrix of the
// factors, zero elsewhere. Complexity: O(n²) for the allocation.
func (s *Scale[T]) Matrix() *matrix.Square[T] {
	m := matrix.New[T](len(s.factors))
	for i, f := range s.factors {
		m.Set(i, i, f)
	}

	return m
}

// Equal reports exact component-wise equality of the factors.
func (s *Scale[T]) Equal(o *Scale[T]) bool {
	if o == nil || len(s.factors) != len(o.factors) {
		return false
	}
	for i, f := range s.factors {
		if f != o.factors[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent deep copy of the scale.
func (s *Scale[T]) Clone() *Scale[T] {
	return NewScale(s.factors...)
}
