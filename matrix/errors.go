// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Operations MUST return these sentinels and tests MUST check them
// via errors.Is. Panics are reserved for programmer errors: out-of-range
// indices, non-positive dimensions and operand shape mismatches, all of which
// are prevented by construction in correct code.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

// ErrSingular is returned by Inverse when the matrix has no inverse: the
// best available pivot at some elimination step is exactly zero (equivalent
// to a zero determinant). Inversion is never approximated.
var ErrSingular = errors.New("matrix: singular matrix")
