// Package affine provides the general transform of lvlgeo: a linear part
// (a square matrix) plus a translation vector.
//
// The affine package provides:
//
//   - Transform[T], built from a Rotation, Scale or Shear (the only path
//     from a specialized family into the general transform), from an
//     arbitrary matrix, or from explicit parts.
//   - Compose(outer, inner): right-to-left composition — inner applies
//     first, matching the standard transform-composition convention.
//     Chain composes any number of transforms the same way.
//   - Invert, which fails with ErrNotInvertible when the linear part is
//     singular (exactly, or within an opt-in epsilon); the inverse is never
//     approximated.
//   - Apply: p ↦ linear·p + translation.
//
// Transforms are value-semantic: constructors clone their inputs, accessors
// return copies, and every operation allocates a fresh result. Independent
// values are safe to use concurrently with no synchronization.
//
// See the examples in this package for usage patterns.
package affine
