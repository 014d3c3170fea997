// SPDX-License-Identifier: MIT

// Package affine: composition of transforms.
//
// The composition convention is right-to-left: Compose(outer, inner)
// applies inner first, then outer. Reversing the order silently changes
// semantics whenever translations are involved — the order is pinned by an
// explicit regression test.
package affine

import (
	"github.com/katalvlaran/lvlgeo/matrix"
	"github.com/katalvlaran/lvlgeo/vector"
	"golang.org/x/exp/constraints"
)

// Compose returns the transform equivalent to applying inner first, then
// outer:
//
//	linear      = outer.linear · inner.linear
//	translation = outer.linear · inner.translation + outer.translation
//
// Returns ErrDimensionMismatch when the dimensions differ. Operands are
// never mutated. Complexity: O(n³).
func Compose[T constraints.Float](outer, inner *Transform[T]) (*Transform[T], error) {
	if outer.Dim() != inner.Dim() {
		return nil, ErrDimensionMismatch
	}

	return &Transform[T]{
		linear: matrix.Mul(outer.linear, inner.linear),
		translation: vector.Add(
			vector.Vec[T](matrix.MulVec(outer.linear, inner.translation)),
			outer.translation,
		),
	}, nil
}

// Chain composes any number of transforms right-to-left: Chain(a, b, c) is
// the transform that applies c, then b, then a — equal to
// Compose(a, Compose(b, c)). A single transform chains to a copy of itself.
// Returns ErrEmptyChain for no arguments and ErrDimensionMismatch when any
// two links disagree on dimension.
func Chain[T constraints.Float](ts ...*Transform[T]) (*Transform[T], error) {
	if len(ts) == 0 {
		return nil, ErrEmptyChain
	}

	acc := ts[len(ts)-1].Clone()
	var err error
	for i := len(ts) - 2; i >= 0; i-- { // fold leftward: ts[i] wraps the accumulator
		acc, err = Compose(ts[i], acc)
		if err != nil {
			return nil, err
		}
	}

	return acc, nil
}
