// Package vector provides fixed-length real vectors used as points and
// translations throughout lvlgeo.
//
// The vector package provides:
//
//   - Vec[T], a fixed-length slice of floating-point components.
//   - Allocation-light construction (Zero) and pure operations (Add, Neg)
//     that never mutate their operands.
//   - Exact, component-wise equality (Equal) with no epsilon.
//
// Lengths are fixed by construction. Mixing vectors of different lengths in
// a binary operation is a programming error and panics; it is never a soft,
// recoverable condition.
//
// See the affine package for how vectors combine with square matrices.
package vector
