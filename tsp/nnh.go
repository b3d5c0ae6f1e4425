// Package tsp - nearest-neighbour heuristic.
//
// FullSolve runs the greedy construction once from every start city in index
// order and records each tour that is strictly shorter than every earlier one.
// Ties in the nearest-city scan go to the lowest index (strict '<' keeps the
// first minimum). No randomness is involved.
package tsp

import (
	"context"
	"math"
	"time"

	"github.com/katalvlaran/minviz/matrix"
)

// NNH is a nearest-neighbour solver bound to one point set.
// Not safe for concurrent use.
type NNH struct {
	points []Point
	dist   *matrix.Dense
	rows   [][]float64
}

// NewNNH captures points (not copied) and eagerly builds the distance matrix.
//
// Complexity: O(n²).
func NewNNH(points []Point) *NNH {
	dist := NewDistanceMatrix(points)

	return &NNH{
		points: points,
		dist:   dist,
		rows:   matrixRows(dist),
	}
}

// Distances returns the solver's distance matrix (shared; do not modify).
func (s *NNH) Distances() *matrix.Dense { return s.dist }

// FullSolve tries every start city and returns the improvement trace.
// Fewer than two points yield an empty trace.
//
// Complexity: O(n³) time, O(n) extra space per start.
func (s *NNH) FullSolve() *Trace {
	// Background is never cancelled.
	t, _ := s.FullSolveContext(context.Background())

	return t
}

// FullSolveContext BUILD a greedy tour from every start city, stopping early when ctx ends.
// Implementation:
//   - Stage 1: fewer than two points return an empty trace.
//   - Stage 2: for each start s in index order, repeatedly move to the nearest
//     unvisited city (ties go to the lowest index).
//   - Stage 3: record the tour when its cyclic length is strictly shorter than
//     the best so far, with iteration = position = s+1.
//
// Inputs:
//   - ctx: checked before each start city.
//
// Returns:
//   - (*Trace, error): events recorded so far, and ctx.Err() on cancellation.
//
// Determinism:
//   - Fully deterministic; no randomness is involved.
//
// Complexity:
//   - Time O(n³), Space O(n) per start plus O(n) per event.
func (s *NNH) FullSolveContext(ctx context.Context) (*Trace, error) {
	var (
		trace = newTrace(AlgoNNH, s.points, s.dist)
		n     = len(s.points)
	)
	if n < 2 {
		return trace, nil
	}

	var (
		best    = math.Inf(1)
		mark    = time.Now()
		visited = make([]bool, n)
		start   int
		tour    []int
		length  float64
		now     time.Time
	)
	for start = 0; start < n; start++ {
		if err := ctx.Err(); err != nil {
			return trace, err
		}

		tour = s.tourFrom(start, visited)
		length = tourLength(s.rows, tour)
		if length < best {
			best = length
			now = time.Now()
			trace.record(length, tour, now.Sub(mark), start+1, start+1, nil)
			mark = now
		}
	}

	return trace, nil
}

// Tour builds the single greedy tour beginning at start.
// Returns ErrStartOutOfRange when start is outside [0,n).
func (s *NNH) Tour(start int) ([]int, error) {
	var n = len(s.points)
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	return s.tourFrom(start, make([]bool, n)), nil
}

// tourFrom runs the greedy walk from start. visited is scratch space of
// length n and is reset on entry.
func (s *NNH) tourFrom(start int, visited []bool) []int {
	var n = len(s.points)
	clear(visited)

	tour := make([]int, 1, n)
	tour[0] = start
	visited[start] = true

	var (
		current = start
		nearest int
		minDist float64
		row     []float64
		i       int
	)
	for len(tour) < n {
		row = s.rows[current]
		nearest = -1
		minDist = math.Inf(1)
		for i = 0; i < n; i++ {
			if !visited[i] && row[i] < minDist {
				minDist = row[i]
				nearest = i
			}
		}
		// Only reachable with NaN distances (non-finite input coordinates).
		if nearest < 0 {
			nearest = firstUnvisited(visited)
		}

		tour = append(tour, nearest)
		visited[nearest] = true
		current = nearest
	}

	return tour
}
