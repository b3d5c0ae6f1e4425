// Package tsp - tour length evaluation shared by both solvers.
//
// TourLength is the checked public entry point; tourLength is the unchecked
// fast path used inside solve loops on tours the solver built itself. Both
// sum edges in the same order (tour[0]→tour[1], …, tour[n-1]→tour[0]) so they
// agree bit-for-bit.
package tsp

import (
	"math"

	"github.com/katalvlaran/minviz/matrix"
)

// TourLength returns the cyclic length of tour under dist: the sum of
// dist[tour[k]][tour[k+1]] for consecutive k plus the closing edge
// dist[tour[n-1]][tour[0]].
//
// Contract:
//   - dist must be square; ErrNonSquare otherwise.
//   - tour must be non-empty with indices in [0,n); ErrDimensionMismatch otherwise.
//     Duplicates are not rejected here, see ValidatePermutation.
//
// Complexity: O(len(tour)).
func TourLength(dist matrix.Matrix, tour []int) (float64, error) {
	if dist == nil {
		return 0, ErrDimensionMismatch
	}
	if dist.Rows() != dist.Cols() {
		return 0, ErrNonSquare
	}
	if len(tour) == 0 {
		return 0, ErrDimensionMismatch
	}

	var (
		n     = dist.Rows()
		sum   float64
		w     float64
		k     int
		u, v  int
		err   error
		count = len(tour)
	)
	for k = 0; k < count; k++ {
		u = tour[k]
		v = tour[(k+1)%count]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrDimensionMismatch
		}
		if w, err = dist.At(u, v); err != nil {
			return 0, ErrDimensionMismatch
		}
		if math.IsNaN(w) {
			return 0, ErrDimensionMismatch
		}
		sum += w
	}

	return sum, nil
}

// tourLength is the unchecked variant over precomputed rows.
// rows[i] must alias row i of a square distance matrix and tour must be a
// valid permutation.
func tourLength(rows [][]float64, tour []int) float64 {
	var (
		sum  float64
		k    int
		last = len(tour) - 1
	)
	for k = 0; k < last; k++ {
		sum += rows[tour[k]][tour[k+1]]
	}
	sum += rows[tour[last]][tour[0]]

	return sum
}

// matrixRows returns aliasing row slices for every row of m.
func matrixRows(m *matrix.Dense) [][]float64 {
	var (
		n    = m.Rows()
		rows = make([][]float64, n)
		i    int
	)
	for i = 0; i < n; i++ {
		// Row only fails out of range.
		rows[i], _ = m.Row(i)
	}

	return rows
}
