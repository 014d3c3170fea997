// SPDX-License-Identifier: MIT

// Package linear: the Rotation family.
//
// Parameterization (the general-N design decision, recorded in DESIGN.md):
// a Rotation is an ordered sequence of plane (Givens) rotations, each acting
// in the plane spanned by two axes. The 2D case degenerates to a single
// angle in the (0,1) plane. Matrix() multiplies the plane matrices so that
// the first appended plane acts first.
package linear

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlgeo/matrix"
	"golang.org/x/exp/constraints"
)

// plane is one rotation by theta in the (i, j) coordinate plane.
// The axes are normalized to i < j on insertion, flipping the angle sign
// when needed, so equality on the stored parameterization is canonical.
type plane[T constraints.Float] struct {
	i, j  int // rotated axes, invariant: 0 <= i < j < dim
	theta T   // angle in radians
}

// Rotation is a linear transform whose matrix is orthogonal: an ordered
// sequence of plane rotations over a fixed dimension.
type Rotation[T constraints.Float] struct {
	dim    int
	planes []plane[T]
}

// NewRotation returns the identity rotation (no planes) of the given
// dimension. Panics if dim < 2: there is no plane to rotate in below 2D.
func NewRotation[T constraints.Float](dim int) *Rotation[T] {
	if dim < 2 {
		panic("linear: rotation dimension must be >= 2")
	}

	return &Rotation[T]{dim: dim}
}

// NewRotation2D returns the 2D rotation by theta, in radians.
// The angle is consumed as-is: producing radians (and normalizing them,
// when wanted) is the job of the caller's angle library.
func NewRotation2D[T constraints.Float](theta T) *Rotation[T] {
	r := NewRotation[T](2)
	r.planes = append(r.planes, plane[T]{i: 0, j: 1, theta: theta})

	return r
}

// QuarterTurn returns the 2D rotation by π/2.
func QuarterTurn[T constraints.Float]() *Rotation[T] {
	return NewRotation2D(T(math.Pi / 2))
}

// RotatePlane appends a rotation by theta in the (i, j) coordinate plane.
// Axes are normalized so the stored plane always has i < j; passing the
// axes swapped therefore stores the opposite angle, an equivalent rotation.
// Panics when i == j or either axis is out of range (programmer error).
func (r *Rotation[T]) RotatePlane(i, j int, theta T) {
	if i == j {
		panic("linear: rotation plane axes must differ")
	}
	if i < 0 || i >= r.dim || j < 0 || j >= r.dim {
		panic(fmt.Sprintf("linear: rotation plane (%d,%d) out of range for dimension %d", i, j, r.dim))
	}
	if i > j {
		i, j, theta = j, i, -theta
	}
	r.planes = append(r.planes, plane[T]{i: i, j: j, theta: theta})
}

// Dim returns the dimension the rotation acts on.
func (r *Rotation[T]) Dim() int {
	return r.dim
}

// Angle returns the accumulated angle of a 2D rotation, in radians.
// In 2D every plane is (0,1), so the angles simply add.
// Panics unless Dim() == 2.
func (r *Rotation[T]) Angle() T {
	if r.dim != 2 {
		panic("linear: Angle is defined for 2D rotations only")
	}
	var sum T
	for _, p := range r.planes {
		sum += p.theta
	}

	return sum
}

// IsIdentity reports whether the rotation is parameterized as the identity:
// no planes, or every stored angle exactly 0. (A full 2π turn is NOT the
// parameterized identity even though its matrix is close to I.)
func (r *Rotation[T]) IsIdentity() bool {
	for _, p := range r.planes {
		if p.theta != 0 {
			return false
		}
	}

	return true
}

// Matrix converts the rotation to its dense matrix form.
// For a single 2D plane this is [[cosθ, −sinθ], [sinθ, cosθ]], exact given
// the scalar's cos/sin. Planes are applied in insertion order: the first
// appended plane acts on points first. The result is orthogonal (MᵀM = I)
// up to floating-point tolerance.
// Complexity: O(p·n³) for p planes; p is 1 in the 2D case.
func (r *Rotation[T]) Matrix() *matrix.Square[T] {
	m := matrix.Identity[T](r.dim)
	for _, p := range r.planes {
		m = matrix.Mul(planeMatrix[T](r.dim, p), m)
	}

	return m
}

// planeMatrix builds the dense matrix of a single plane rotation: identity
// everywhere except the (i,i), (i,j), (j,i), (j,j) block.
func planeMatrix[T constraints.Float](dim int, p plane[T]) *matrix.Square[T] {
	cos := T(math.Cos(float64(p.theta)))
	sin := T(math.Sin(float64(p.theta)))

	m := matrix.Identity[T](dim)
	m.Set(p.i, p.i, cos)
	m.Set(p.i, p.j, -sin)
	m.Set(p.j, p.i, sin)
	m.Set(p.j, p.j, cos)

	return m
}

// Equal reports exact equality of the stored parameterization: same
// dimension, same plane sequence, same angles. No epsilon is applied and
// no matrix is derived.
func (r *Rotation[T]) Equal(o *Rotation[T]) bool {
	if o == nil || r.dim != o.dim || len(r.planes) != len(o.planes) {
		return false
	}
	for k, p := range r.planes {
		if p != o.planes[k] {
			return false
		}
	}

	return true
}

// Clone returns an independent deep copy of the rotation.
func (r *Rotation[T]) Clone() *Rotation[T] {
	planes := make([]plane[T], len(r.planes))
	copy(planes, r.planes)

	return &Rotation[T]{dim: r.dim, planes: planes}
}
