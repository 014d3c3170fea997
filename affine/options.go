// SPDX-License-Identifier: MIT

// Package affine: functional configuration for inversion's numeric policy.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: options fields are unexported; public APIs consume ...Option.
package affine

import "math"

// DefaultEpsilon is the default singularity tolerance for Invert: 0 means a
// transform is rejected only when the determinant of its linear part is
// exactly zero. Callers working downstream of noisy numerics opt into a
// positive tolerance via WithEpsilon.
const DefaultEpsilon = 0.0

// options carries the gathered inversion policy.
type options struct {
	epsilon float64 // |det| <= epsilon ⇒ ErrNotInvertible
}

// Option mutates the inversion policy. Options are applied in order.
type Option func(*options)

// WithEpsilon sets the non-negative singularity tolerance: a linear part
// whose |det| is at or below eps is treated as singular. Panics on negative
// or NaN eps (programmer error, not a runtime condition).
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) {
		panic("affine: epsilon must be a non-negative number")
	}

	return func(o *options) { o.epsilon = eps }
}

// gatherOptions folds opts over the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{epsilon: DefaultEpsilon}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
