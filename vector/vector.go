// SPDX-License-Identifier: MIT

// Package vector: fixed-length vector type and its pure operations.
// All functions allocate at most the result; operands are never mutated.
package vector

import "golang.org/x/exp/constraints"

// Vec is a fixed-length vector of floating-point components.
// The length is set at construction and is an invariant thereafter;
// callers must not resize a Vec.
type Vec[T constraints.Float] []T

// Zero returns the zero vector of the given dimension.
// Panics if dim < 1 (programmer error: dimensions are fixed by construction).
// Complexity: O(dim).
func Zero[T constraints.Float](dim int) Vec[T] {
	if dim < 1 {
		panic("vector: dimension must be >= 1")
	}

	return make(Vec[T], dim)
}

// Clone returns an independent deep copy of v.
// Complexity: O(len(v)).
func (v Vec[T]) Clone() Vec[T] {
	out := make(Vec[T], len(v))
	copy(out, v)

	return out
}

// Equal reports exact component-wise equality with u.
// Vectors of different lengths are never equal. No epsilon is applied;
// tolerance-based comparison is the caller's responsibility.
// Complexity: O(len(v)).
func (v Vec[T]) Equal(u Vec[T]) bool {
	if len(v) != len(u) {
		return false
	}
	for i := range v {
		if v[i] != u[i] {
			return false
		}
	}

	return true
}

// Add returns a + b as a fresh vector.
// Panics if the lengths differ (programmer error).
// Complexity: O(len(a)).
func Add[T constraints.Float](a, b Vec[T]) Vec[T] {
	if len(a) != len(b) {
		panic("vector: length mismatch")
	}
	out := make(Vec[T], len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}

	return out
}

// Neg returns -v as a fresh vector.
// Complexity: O(len(v)).
func Neg[T constraints.Float](v Vec[T]) Vec[T] {
	out := make(Vec[T], len(v))
	for i := range v {
		out[i] = -v[i]
	}

	return out
}
