// SPDX-License-Identifier: MIT
// Package affine: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the affine
// package. Operations MUST return these sentinels and tests MUST check them
// via errors.Is. Panics are reserved for programmer errors (point-length
// misuse, negative option values).

package affine

import "errors"

var (
	// ErrDimensionMismatch indicates incompatible dimensions between the
	// parts of a transform (linear vs translation) or between two transforms
	// being composed.
	ErrDimensionMismatch = errors.New("affine: dimension mismatch")

	// ErrNotInvertible is returned by Invert when the linear part has no
	// inverse: its determinant is exactly 0, or within the configured
	// epsilon of 0. Inversion is never silently approximated.
	ErrNotInvertible = errors.New("affine: transform is not invertible")

	// ErrEmptyChain indicates that Chain was called with no transforms;
	// an empty composition has no dimension to produce an identity in.
	ErrEmptyChain = errors.New("affine: empty transform chain")
)
