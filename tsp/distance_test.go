package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minviz/tsp"
)

func TestSquaredDistance(t *testing.T) {
	a := tsp.Point{X: 1, Y: 2, Z: 3}
	b := tsp.Point{X: 4, Y: 6, Z: 3}
	require.Equal(t, 25.0, tsp.SquaredDistance(a, b)) // 3² + 4² + 0²
	require.Equal(t, 0.0, tsp.SquaredDistance(a, a))
}

func TestNewDistanceMatrix_DegenerateSizes(t *testing.T) {
	d := tsp.NewDistanceMatrix(nil)
	require.Equal(t, 0, d.Rows())
	require.Equal(t, 0, d.Cols())

	d = tsp.NewDistanceMatrix([]tsp.Point{{X: 5, Y: -1, Z: 2}})
	require.Equal(t, 1, d.Rows())
	v, err := d.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, v)
}

func TestNewDistanceMatrix_SymmetricZeroDiagonal(t *testing.T) {
	pts := helix(17)
	d := tsp.NewDistanceMatrix(pts)
	require.Equal(t, len(pts), d.Rows())
	require.True(t, d.IsSymmetric(0))

	for i := range pts {
		v, err := d.At(i, i)
		require.NoError(t, err)
		require.Equal(t, 0.0, v)
		for j := range pts {
			v, err = d.At(i, j)
			require.NoError(t, err)
			require.GreaterOrEqual(t, v, 0.0)
			require.Equal(t, tsp.SquaredDistance(pts[i], pts[j]), v)
		}
	}
}

func TestNewDistanceMatrix_UnitSquare(t *testing.T) {
	d := tsp.NewDistanceMatrix(unitSquare())
	side, _ := d.At(0, 1)
	diag, _ := d.At(0, 2)
	require.Equal(t, 1.0, side)
	require.Equal(t, 2.0, diag) // squared, not √2
}
