// Package linear provides the specialized linear-transform families of
// lvlgeo: Rotation, Scale and Shear.
//
// The linear package provides:
//
//   - Rotation[T]: an ordered sequence of plane rotations. In 2D this is a
//     single angle; for N ≥ 3 callers append plane rotations explicitly.
//   - Scale[T]: N independent per-axis factors, converting to a diagonal
//     matrix. Identity ⇔ all factors are 1.
//   - Shear[T]: N(N−1) off-diagonal factors, converting to an identity
//     matrix with the off-diagonal cells overwritten. Identity ⇔ all
//     factors are 0; the diagonal stays exactly 1 whatever the factors.
//
// Each family is a compact parameterization with a conversion to
// matrix.Square. Families never combine with each other directly: the only
// composition paths run through a Matrix or an affine.Transform.
//
// Equality is exact and component-wise on the stored parameterization, not
// on the derived matrix (though the two must agree). Rotation angles are
// consumed already in radians; unit handling is the caller's concern, and
// no normalization is applied here.
//
// Dimension and axis misuse (dim < 2 for Rotation/Shear, out-of-range axes,
// i == j plane or shear cells) is a programming error and panics.
package linear
