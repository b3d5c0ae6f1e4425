package tsp

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/minviz/matrix"
)

// Point is a 3D coordinate. Points are identified only by their index in the
// slice handed to a solver; that order is significant everywhere.
type Point = r3.Vec

// SquaredDistance returns (ax-bx)² + (ay-by)² + (az-bz)².
func SquaredDistance(a, b Point) float64 {
	return r3.Norm2(r3.Sub(a, b))
}

// NewDistanceMatrix precomputes the n×n table of squared Euclidean distances.
//
// Guarantees: D[i][i]==0 and D[i][j]==D[j][i] bit-for-bit (each pair is
// computed once and mirrored). n==0 yields a 0×0 matrix, n==1 a single zero.
//
// Squared distance is used on purpose: only relative comparisons matter, and
// the same table feeds both the tour length and ACO's 1/d desirability.
//
// Complexity: O(n²) time and space.
func NewDistanceMatrix(points []Point) *matrix.Dense {
	var n = len(points)
	// NewSquare only fails for n<0.
	d, _ := matrix.NewSquare(n)

	var (
		i, j int
		w    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w = SquaredDistance(points[i], points[j])
			_ = d.Set(i, j, w)
			_ = d.Set(j, i, w)
		}
	}

	return d
}
