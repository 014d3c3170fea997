// Package affine: the Transform type — a linear part plus a translation.
//
// Applying a Transform to a point p computes linear·p + translation. The
// type is value-semantic: no Transform holds a reference to caller storage
// or to another Transform.
package affine

import (
	"fmt"

	"github.com/katalvlaran/lvlgeo/linear"
	"github.com/katalvlaran/lvlgeo/matrix"
	"github.com/katalvlaran/lvlgeo/vector"
	"golang.org/x/exp/constraints"
)

// Transform combines a linear part with a translation of matching
// dimension. The zero value is not usable; construct via Identity, New or
// the From* constructors.
type Transform[T constraints.Float] struct {
	linear      *matrix.Square[T]
	translation vector.Vec[T]
}

// Identity returns the identity transform of the given dimension:
// identity linear part, zero translation. Panics if dim < 1.
func Identity[T constraints.Float](dim int) *Transform[T] {
	return &Transform[T]{
		linear:      matrix.Identity[T](dim),
		translation: vector.Zero[T](dim),
	}
}

// New builds a transform from an explicit linear part and translation.
// Both are cloned: the transform shares no storage with the caller.
// Returns ErrDimensionMismatch when the linear part is nil or the
// translation length differs from its dimension.
func New[T constraints.Float](lin *matrix.Square[T], translation vector.Vec[T]) (*Transform[T], error) {
	if lin == nil || len(translation) != lin.Dim() {
		return nil, ErrDimensionMismatch
	}

	return &Transform[T]{
		linear:      lin.Clone(),
		translation: translation.Clone(),
	}, nil
}

// FromLinear lifts an arbitrary matrix into a transform with zero
// translation. The matrix is cloned. Panics on a nil matrix (programmer
// error).
func FromLinear[T constraints.Float](lin *matrix.Square[T]) *Transform[T] {
	if lin == nil {
		panic("affine: nil linear part")
	}

	return &Transform[T]{
		linear:      lin.Clone(),
		translation: vector.Zero[T](lin.Dim()),
	}
}

// FromRotation lifts a rotation into a transform with zero translation.
// This — with FromScale and FromShear — is the only path from a specialized
// family into the general transform.
func FromRotation[T constraints.Float](r *linear.Rotation[T]) *Transform[T] {
	return fromFamilyMatrix(r.Matrix())
}

// FromScale lifts a scale into a transform with zero translation.
func FromScale[T constraints.Float](s *linear.Scale[T]) *Transform[T] {
	return fromFamilyMatrix(s.Matrix())
}

// FromShear lifts a shear into a transform with zero translation.
func FromShear[T constraints.Float](h *linear.Shear[T]) *Transform[T] {
	return fromFamilyMatrix(h.Matrix())
}

// fromFamilyMatrix adopts a freshly built family matrix without an extra
// clone; family Matrix() conversions always return unshared storage.
func fromFamilyMatrix[T constraints.Float](m *matrix.Square[T]) *Transform[T] {
	return &Transform[T]{
		linear:      m,
		translation: vector.Zero[T](m.Dim()),
	}
}

// Dim returns the dimension the transform acts on.
func (t *Transform[T]) Dim() int {
	return t.linear.Dim()
}

// Linear returns a copy of the linear part.
func (t *Transform[T]) Linear() *matrix.Square[T] {
	return t.linear.Clone()
}

// Translation returns a copy of the translation vector.
func (t *Transform[T]) Translation() vector.Vec[T] {
	return t.translation.Clone()
}

// Apply transforms the point p: linear·p + translation, as a fresh vector.
// Panics when len(p) differs from the dimension (programmer error).
// Complexity: O(n²).
func (t *Transform[T]) Apply(p vector.Vec[T]) vector.Vec[T] {
	return vector.Add(vector.Vec[T](matrix.MulVec(t.linear, p)), t.translation)
}

// Equal reports exact component-wise equality of both parts.
func (t *Transform[T]) Equal(o *Transform[T]) bool {
	if o == nil {
		return false
	}

	return t.linear.Equal(o.linear) && t.translation.Equal(o.translation)
}

// Clone returns an independent deep copy of the transform.
func (t *Transform[T]) Clone() *Transform[T] {
	return &Transform[T]{
		linear:      t.linear.Clone(),
		translation: t.translation.Clone(),
	}
}

// String implements fmt.Stringer: the linear part in row format, then the
// translation.
func (t *Transform[T]) String() string {
	return fmt.Sprintf("linear:\n%stranslation: %v\n", t.linear, t.translation)
}
