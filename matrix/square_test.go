// Package matrix_test contains unit tests for the Square type
// in the matrix package.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlgeo/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewInvalidDimension ensures that New panics on non-positive dimensions:
// dimension misuse is a programmer error, asserted once at construction.
func TestNewInvalidDimension(t *testing.T) {
	require.Panics(t, func() { matrix.New[float64](0) })  // zero dimension
	require.Panics(t, func() { matrix.New[float64](-3) }) // negative dimension
}

// TestNewAndDim verifies that New yields a zero matrix of the right dimension.
func TestNewAndDim(t *testing.T) {
	m := matrix.New[float64](3) // create a 3x3 zero matrix
	require.Equal(t, 3, m.Dim())

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.Zero(t, m.At(i, j)) // every element starts at zero
		}
	}
}

// TestIdentity verifies the identity factory: 1 on the diagonal, 0 elsewhere.
func TestIdentity(t *testing.T) {
	id := matrix.Identity[float64](3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == j {
				require.Equal(t, 1.0, id.At(i, j)) // diagonal entries are 1
			} else {
				require.Zero(t, id.At(i, j)) // off-diagonal entries are 0
			}
		}
	}
}

// TestAtSetOutOfRange ensures At and Set panic on out-of-range indices.
func TestAtSetOutOfRange(t *testing.T) {
	m := matrix.New[float64](2) // create a 2x2 matrix

	require.Panics(t, func() { m.At(-1, 0) })    // negative row index
	require.Panics(t, func() { m.At(0, 2) })     // column index out of range
	require.Panics(t, func() { m.Set(2, 0, 1) }) // row index out of range
	require.Panics(t, func() { m.Set(0, -1, 1) }) // negative column index
}

// TestSetGet validates Set followed by At on valid indices.
func TestSetGet(t *testing.T) {
	m := matrix.New[float64](3)
	m.Set(1, 2, 7.89)                   // set element at row 1, column 2
	require.Equal(t, 7.89, m.At(1, 2))  // retrieved value matches set value
	require.Zero(t, m.At(2, 1))         // the mirrored cell is untouched
}

// TestNamedAccessors2x2 checks the stable A/B/C/D naming contract:
// A=(0,0), B=(0,1), C=(1,0), D=(1,1).
func TestNamedAccessors2x2(t *testing.T) {
	m := matrix.FromRows([][]float64{
		{1, 2},
		{3, 4},
	})

	require.Equal(t, 1.0, m.A()) // (0,0)
	require.Equal(t, 2.0, m.B()) // (0,1)
	require.Equal(t, 3.0, m.C()) // (1,0)
	require.Equal(t, 4.0, m.D()) // (1,1)
}

// TestNamedAccessorsWrongDim ensures the 2x2 accessors panic on any other
// dimension.
func TestNamedAccessorsWrongDim(t *testing.T) {
	m := matrix.New[float64](3)
	require.Panics(t, func() { m.A() })
	require.Panics(t, func() { m.D() })
}

// TestFromRows verifies construction from explicit rows and its panics.
func TestFromRows(t *testing.T) {
	m := matrix.FromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	require.Equal(t, 3, m.Dim())
	require.Equal(t, 6.0, m.At(1, 2))

	require.Panics(t, func() { matrix.FromRows([][]float64{}) })          // empty input
	require.Panics(t, func() { matrix.FromRows([][]float64{{1, 2}}) })    // ragged: 1 row of 2
	require.Panics(t, func() { matrix.FromRows([][]float64{{1}, {2}}) })  // ragged: 2 rows of 1
}

// TestFromRowsCopies ensures FromRows shares no storage with its input.
func TestFromRowsCopies(t *testing.T) {
	rows := [][]float64{{1, 2}, {3, 4}}
	m := matrix.FromRows(rows)

	rows[0][0] = 99                    // mutate the source after construction
	require.Equal(t, 1.0, m.At(0, 0))  // matrix keeps the original value
}

// TestCloneIndependence ensures Clone returns a deep copy that does not share
// storage.
func TestCloneIndependence(t *testing.T) {
	m := matrix.New[float64](2)
	m.Set(0, 0, 1.0)
	m.Set(1, 1, 2.0)

	clone := m.Clone()   // clone the matrix
	clone.Set(0, 0, 3.0) // modify the clone, but not the original

	require.Equal(t, 1.0, m.At(0, 0))     // original remains unchanged
	require.Equal(t, 3.0, clone.At(0, 0)) // clone reflects the new value
}

// TestEqual verifies exact component-wise equality semantics.
func TestEqual(t *testing.T) {
	a := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	b := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	c := matrix.FromRows([][]float64{{1, 2}, {3, 4.0000001}})

	require.True(t, a.Equal(b))  // identical components compare equal
	require.False(t, a.Equal(c)) // no epsilon: near is not equal
	require.False(t, a.Equal(nil))
	require.False(t, a.Equal(matrix.Identity[float64](3))) // dimension mismatch
}

// TestStringOutput checks that String formats the matrix one row per line.
func TestStringOutput(t *testing.T) {
	m := matrix.FromRows([][]float64{
		{1, 2},
		{3, 4},
	})

	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

// TestFloat32Scalar exercises the generic scalar path with float32.
func TestFloat32Scalar(t *testing.T) {
	m := matrix.Identity[float32](2)
	require.Equal(t, float32(1), m.A())
	require.Equal(t, float32(0), m.B())
}
