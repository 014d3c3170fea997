// Package matrix provides dense square matrices, the common representation
// target of every lvlgeo transform family.
//
// The matrix package provides:
//
//   - Square[T], a dense N×N row-major matrix over any floating-point
//     scalar, with (row, col) addressing and named 2×2 accessors
//     A=(0,0), B=(0,1), C=(1,0), D=(1,1).
//   - Pure operations: Mul (standard O(N³) product), MulVec, Transpose.
//   - Det and Inverse via partially-pivoted elimination; inversion of a
//     singular matrix fails with ErrSingular, never a silent approximation.
//
// The dimension N is fixed at construction and validated exactly once;
// every later index is either in bounds by construction or a programming
// error. Accordingly, At/Set panic on out-of-range indices instead of
// returning a soft error — misindexing a fixed-size matrix is a fatal,
// non-recoverable fault, not an input condition.
//
// Equality is exact and component-wise. Tolerance-based comparison (for
// matrices derived from transcendental trig functions) belongs to callers.
package matrix
