// Package tsp - Ant Colony Optimization.
//
// One Solve call runs maxIterations iterations. In each iteration every ant
// builds a full tour by roulette-wheel selection over
//
//	w(c,i) = τ(c,i)^α · (1/d(c,i))^β
//
// and any tour strictly shorter than the best so far is recorded together
// with a snapshot of the pheromone matrix as it stood before this iteration's
// update. After all ants have walked, every entry evaporates by (1-ρ) and each
// ant deposits 1/L on both directions of every edge of its tour, closing edge
// included.
//
// Random draws happen in a fixed order (one Intn for the start city, then one
// Float64 per step), which is what makes seeded runs reproducible.
package tsp

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/minviz/matrix"
)

// initialPheromone is the uniform starting level, diagonal included.
const initialPheromone = 1.0

// ACO is an ant colony solver bound to one point set.
// Not safe for concurrent use; the pheromone matrix is mutated in place.
type ACO struct {
	points []Point
	cfg    ACOConfig
	rng    *rand.Rand

	dist     *matrix.Dense
	distRows [][]float64
	pher     *matrix.Dense
	pherRows [][]float64

	// scratch reused across steps
	weights []float64
	visited []bool
}

// NewACO BUILD a seeded ant colony solver over points.
// Implementation:
//   - Stage 1: apply opts over DefaultACOConfig and validate the result.
//   - Stage 2: precompute the squared-distance matrix once.
//   - Stage 3: fill the pheromone matrix with 1.0 (diagonal included) and
//     allocate the per-step scratch buffers.
//
// Inputs:
//   - points: city coordinates; the slice is shared with every Trace, not copied.
//   - seed: seeds the solver's private math/rand source. Use EntropySeed at
//     the call site for an unseeded run.
//   - opts: WithAnts, WithEvaporation, WithAlpha, WithBeta, WithConfig.
//
// Returns:
//   - (*ACO, error): a ready solver, or nil and a configuration error.
//
// Errors:
//   - ErrInvalidAntCount (ants < 1),
//   - ErrInvalidEvaporation (ρ outside [0,1) or non-finite),
//   - ErrInvalidExponent (α or β negative or non-finite).
//
// Determinism:
//   - Equal points, seed and config give identical traces (wall-clock fields aside).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewACO(points []Point, seed int64, opts ...ACOOption) (*ACO, error) {
	cfg := gatherACOConfig(opts...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var n = len(points)
	dist := NewDistanceMatrix(points)
	// n>=0 and 1.0 is finite; NewFilled cannot fail here.
	pher, _ := matrix.NewFilled(n, initialPheromone)

	return &ACO{
		points:   points,
		cfg:      cfg,
		rng:      newRNG(seed),
		dist:     dist,
		distRows: matrixRows(dist),
		pher:     pher,
		pherRows: matrixRows(pher),
		weights:  make([]float64, n),
		visited:  make([]bool, n),
	}, nil
}

// Config returns the effective configuration.
func (a *ACO) Config() ACOConfig { return a.cfg }

// Distances returns the solver's distance matrix (shared; do not modify).
func (a *ACO) Distances() *matrix.Dense { return a.dist }

// Pheromone returns a deep copy of the live pheromone matrix.
func (a *ACO) Pheromone() *matrix.Dense { return a.pher.Copy() }

// Solve runs maxIterations iterations and returns the improvement trace.
// Fewer than two points yield an empty trace; maxIterations<0 returns
// ErrInvalidIterations.
//
// Complexity: O(maxIterations·ants·n²).
func (a *ACO) Solve(maxIterations int) (*Trace, error) {
	return a.SolveContext(context.Background(), maxIterations)
}

// SolveContext RUN maxIterations colony iterations, stopping early when ctx ends.
// Implementation:
//   - Stage 1: reject maxIterations < 0; fewer than two points return an empty trace.
//   - Stage 2: for it in [1,max] and ant in [1,ants], build a roulette-wheel
//     tour from a random start and record it when strictly shorter than the
//     best so far, with a copy of the pheromone matrix as it stood before this
//     iteration's update.
//   - Stage 3: after all ants, evaporate by (1-ρ) and deposit 1/L on both
//     directions of every tour edge, closing edge included.
//
// Inputs:
//   - ctx: checked before every ant.
//   - maxIterations: number of iterations; 0 yields an empty trace.
//
// Returns:
//   - (*Trace, error): events recorded so far, and ctx.Err() on cancellation.
//     The interrupted iteration's pheromone update is not applied.
//
// Errors:
//   - ErrInvalidIterations (maxIterations < 0),
//   - context.Canceled / context.DeadlineExceeded from ctx.
//
// Complexity:
//   - Time O(maxIterations·ants·n²), Space O(ants·n) plus O(n²) per event.
//
// Notes:
//   - The solver keeps its pheromone state, so a second call continues
//     learning from where the first one stopped.
func (a *ACO) SolveContext(ctx context.Context, maxIterations int) (*Trace, error) {
	if maxIterations < 0 {
		return nil, ErrInvalidIterations
	}

	var (
		trace = newTrace(AlgoACO, a.points, a.dist)
		n     = len(a.points)
	)
	if n < 2 {
		return trace, nil
	}

	var (
		best    = math.Inf(1)
		mark    = time.Now()
		tours   = make([][]int, a.cfg.Ants)
		lengths = make([]float64, a.cfg.Ants)
		it, ant int
		now     time.Time
	)
	for it = 1; it <= maxIterations; it++ {
		for ant = 0; ant < a.cfg.Ants; ant++ {
			if err := ctx.Err(); err != nil {
				return trace, err
			}

			tours[ant] = a.constructTour()
			lengths[ant] = tourLength(a.distRows, tours[ant])
			if lengths[ant] < best {
				best = lengths[ant]
				now = time.Now()
				trace.record(best, tours[ant], now.Sub(mark), it, ant+1, a.pher.Copy())
				mark = now
			}
		}

		a.updatePheromones(tours, lengths)
	}

	return trace, nil
}

// constructTour walks one ant from a uniformly random start city.
// Each call returns a freshly allocated tour.
func (a *ACO) constructTour() []int {
	var n = len(a.points)
	clear(a.visited)

	tour := make([]int, 1, n)
	current := a.rng.Intn(n)
	tour[0] = current
	a.visited[current] = true

	for len(tour) < n {
		current = a.selectNextCity(current)
		tour = append(tour, current)
		a.visited[current] = true
	}

	return tour
}

// selectNextCity performs one roulette-wheel draw among unvisited cities.
// The wheel is scanned in index order and the first city whose running sum
// reaches r wins; if rounding leaves no winner (or the total is NaN), the
// lowest-indexed unvisited city is returned.
func (a *ACO) selectNextCity(current int) int {
	var (
		tau   = a.pherRows[current]
		dRow  = a.distRows[current]
		total float64
		d, w  float64
		i     int
	)
	for i = range a.visited {
		if a.visited[i] {
			a.weights[i] = 0
			continue
		}
		d = dRow[i]
		if d < MinEdgeDistance {
			d = MinEdgeDistance
		}
		w = math.Pow(tau[i], a.cfg.Alpha) * math.Pow(1.0/d, a.cfg.Beta)
		a.weights[i] = w
		total += w
	}

	var (
		r   = a.rng.Float64() * total
		sum float64
	)
	for i = range a.visited {
		if a.visited[i] {
			continue
		}
		sum += a.weights[i]
		if sum >= r {
			return i
		}
	}

	return firstUnvisited(a.visited)
}

// updatePheromones applies evaporation to every entry, then deposits
// 1/L_k on both directions of every edge of every ant's tour.
// Deposits hit (u,v) and (v,u) with the same value in the same order, so the
// matrix stays exactly symmetric.
func (a *ACO) updatePheromones(tours [][]int, lengths []float64) {
	a.pher.Scale(1 - a.cfg.Evaporation)

	var (
		n       = len(a.points)
		k, e    int
		u, v    int
		deposit float64
	)
	for k = range tours {
		deposit = 1.0 / math.Max(lengths[k], MinEdgeDistance)
		for e = 0; e < n; e++ {
			u = tours[k][e]
			v = tours[k][(e+1)%n]
			a.pherRows[u][v] += deposit
			a.pherRows[v][u] += deposit
		}
	}
}
