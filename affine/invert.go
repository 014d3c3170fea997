// SPDX-License-Identifier: MIT

// Package affine: inversion.
package affine

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlgeo/matrix"
	"github.com/katalvlaran/lvlgeo/vector"
)

// Invert returns the inverse transform, such that Compose(t.Invert(), t)
// is the identity (within floating-point tolerance):
//
//	linear      = t.linear⁻¹
//	translation = −t.linear⁻¹ · t.translation
//
// The linear part must be non-singular. With the default policy only an
// exactly-zero determinant is rejected; WithEpsilon(eps) widens rejection
// to |det| <= eps for callers downstream of noisy numerics. The failure is
// always reported as ErrNotInvertible (matching matrix.ErrSingular via
// errors.Is where the elimination itself detected it) and never silently
// approximated.
//
// Complexity: O(n³).
func (t *Transform[T]) Invert(opts ...Option) (*Transform[T], error) {
	o := gatherOptions(opts...)

	if o.epsilon > 0 {
		if det := float64(matrix.Det(t.linear)); math.Abs(det) <= o.epsilon {
			return nil, fmt.Errorf("%w: |det| = %g within epsilon %g", ErrNotInvertible, math.Abs(det), o.epsilon)
		}
	}

	inv, err := matrix.Inverse(t.linear)
	if err != nil {
		// Keep both sentinels reachable via errors.Is.
		return nil, fmt.Errorf("%w: %w", ErrNotInvertible, err)
	}

	return &Transform[T]{
		linear:      inv,
		translation: vector.Neg(vector.Vec[T](matrix.MulVec(inv, t.translation))),
	}, nil
}
