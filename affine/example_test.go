package affine_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlgeo/affine"
	"github.com/katalvlaran/lvlgeo/linear"
	"github.com/katalvlaran/lvlgeo/matrix"
	"github.com/katalvlaran/lvlgeo/vector"
)

// ExampleCompose demonstrates right-to-left composition: the inner
// transform applies first.
func ExampleCompose() {
	// Shift by (1, 0), then double everything.
	double := affine.FromScale(linear.DoubleScale[float64](2))
	shift, _ := affine.New(matrix.Identity[float64](2), vector.Vec[float64]{1, 0})

	tr, _ := affine.Compose(double, shift)
	fmt.Println(tr.Apply(vector.Vec[float64]{1, 1}))

	// Output:
	// [4 2]
}

// ExampleTransform_Invert demonstrates the inversion round trip and its
// failure on a degenerate scale.
func ExampleTransform_Invert() {
	quarter := affine.FromRotation(linear.NewRotation2D(math.Pi / 2))
	inv, _ := quarter.Invert()

	p := quarter.Apply(vector.Vec[float64]{1, 0})
	back := inv.Apply(p)
	fmt.Printf("back to (%.0f, %.0f)\n", back[0], back[1])

	_, err := affine.FromScale(linear.NewScale(1.0, 0.0)).Invert()
	fmt.Println(err)

	// Output:
	// back to (1, 0)
	// affine: transform is not invertible: matrix: singular matrix
}
