// Package lvlgeo is an in-memory algebra of linear and affine geometric
// transforms over a fixed dimension N and a generic floating-point scalar.
//
// 🚀 What is lvlgeo?
//
//	A small, deterministic, dependency-light library that brings together:
//		• matrix/ — dense N×N square matrices: multiplication, transpose,
//		  determinant and pivoted inversion
//		• linear/ — the specialized transform families Rotation, Scale and
//		  Shear, each a compact parameterization convertible to a matrix
//		• affine/ — linear part + translation: construction from any family,
//		  right-to-left composition, and tolerance-aware inversion
//		• vector/ — fixed-length real vectors backing points and translations
//
// ✨ Why choose lvlgeo?
//
//   - Value semantics – no shared mutable state, every operation returns a
//     fresh result; independent copies are safe across goroutines
//   - Rock-solid contracts – exact component-wise equality, sentinel errors
//     matched via errors.Is, panics reserved for programmer errors
//   - Pure Go – no cgo, no hidden deps, no I/O, no logging
//   - Generic – any ~float32/~float64 scalar via constraints.Float;
//     dimension checked once at construction and never again
//
// Construction flows one way: a Rotation, Scale or Shear becomes a Matrix,
// a Matrix becomes an affine Transform. Composition is right-to-left:
// Compose(outer, inner) applies inner first, matching the standard
// transform-composition convention.
//
// Quick ASCII example:
//
//	p' = A·p + b
//
//	| cosθ −sinθ |         | tx |
//	| sinθ  cosθ | · p  +  | ty |
//
// Angles are consumed already in radians; unit conversion and normalization
// belong to the caller. Serialization, runtime-sized matrices and spectral
// routines are out of scope.
//
//	go get github.com/katalvlaran/lvlgeo
package lvlgeo
