// Package tsp - improvement trace shared by both solvers.
//
// A Trace is append-only while a solve runs and read-only afterwards. Each
// improvement is stored as ONE record, so the per-event sequences (lengths,
// tours, times, markers, snapshots) cannot drift apart; the parallel views
// below are derived from the records on read.
package tsp

import (
	"time"

	"github.com/katalvlaran/minviz/matrix"
)

// Improvement is one recorded improvement event.
type Improvement struct {
	// Length is the cyclic tour length (squared-distance metric).
	Length float64

	// Tour is an open permutation of [0,n); read-only.
	Tour []int

	// Elapsed is the wall-clock time since the previous event (or since the
	// solve started, for the first event).
	Elapsed time.Duration

	// Iteration is 1-based: ACO iteration, or NNH start city + 1.
	Iteration int

	// Position is 1-based: ACO ant number, or NNH start city + 1.
	Position int

	// Pheromone is a deep copy of the ACO pheromone matrix at the moment the
	// event was recorded (state as of the end of the previous iteration).
	// Nil for NNH.
	Pheromone *matrix.Dense
}

// Trace accumulates every strictly improving tour of one solve call.
type Trace struct {
	algo      Algorithm
	createdAt time.Time
	points    []Point
	dist      *matrix.Dense
	events    []Improvement
}

// newTrace starts an empty trace. points and dist are shared, not copied.
func newTrace(algo Algorithm, points []Point, dist *matrix.Dense) *Trace {
	return &Trace{
		algo:      algo,
		createdAt: time.Now(),
		points:    points,
		dist:      dist,
	}
}

// record appends one improvement event. Callers pass a tour they will not
// mutate afterwards and, for ACO, an already-detached pheromone snapshot.
func (t *Trace) record(length float64, tour []int, elapsed time.Duration, iteration, position int, pheromone *matrix.Dense) {
	t.events = append(t.events, Improvement{
		Length:    length,
		Tour:      tour,
		Elapsed:   elapsed,
		Iteration: iteration,
		Position:  position,
		Pheromone: pheromone,
	})
}

// Algorithm returns the heuristic that produced the trace.
func (t *Trace) Algorithm() Algorithm { return t.algo }

// CreatedAt returns the trace creation time (start of the solve call).
func (t *Trace) CreatedAt() time.Time { return t.createdAt }

// Points returns the input point set (shared with the solver; do not modify).
func (t *Trace) Points() []Point { return t.points }

// Distances returns the distance matrix used by the solve (shared; do not modify).
func (t *Trace) Distances() *matrix.Dense { return t.dist }

// Len returns the number of improvement events. Zero means no tour was found.
// A nil trace has length zero.
func (t *Trace) Len() int {
	if t == nil {
		return 0
	}

	return len(t.events)
}

// Event returns the i-th improvement event (0-based, discovery order).
// ok is false when i is out of range.
func (t *Trace) Event(i int) (Improvement, bool) {
	if i < 0 || i >= len(t.events) {
		return Improvement{}, false
	}

	return t.events[i], true
}

// Events returns the improvement events in discovery order. The slice is a
// copy; the tours and snapshots inside are shared and must be treated as read-only.
func (t *Trace) Events() []Improvement {
	out := make([]Improvement, len(t.events))
	copy(out, t.events)

	return out
}

// Best returns the last (shortest) recorded event.
func (t *Trace) Best() (Improvement, bool) {
	return t.Event(len(t.events) - 1)
}

// Lengths returns the tour length of every event.
func (t *Trace) Lengths() []float64 {
	out := make([]float64, len(t.events))
	for i := range t.events {
		out[i] = t.events[i].Length
	}

	return out
}

// Tours returns copies of every recorded tour.
func (t *Trace) Tours() [][]int {
	out := make([][]int, len(t.events))
	for i := range t.events {
		out[i] = CopyTour(t.events[i].Tour)
	}

	return out
}

// ElapsedTimes returns the per-event elapsed times.
func (t *Trace) ElapsedTimes() []time.Duration {
	out := make([]time.Duration, len(t.events))
	for i := range t.events {
		out[i] = t.events[i].Elapsed
	}

	return out
}

// Iterations returns the 1-based iteration marker of every event.
func (t *Trace) Iterations() []int {
	out := make([]int, len(t.events))
	for i := range t.events {
		out[i] = t.events[i].Iteration
	}

	return out
}

// Positions returns the 1-based position marker of every event.
func (t *Trace) Positions() []int {
	out := make([]int, len(t.events))
	for i := range t.events {
		out[i] = t.events[i].Position
	}

	return out
}

// PheromoneSnapshots returns the per-event pheromone snapshots (nil entries
// for NNH). Snapshots are shared; do not modify.
func (t *Trace) PheromoneSnapshots() []*matrix.Dense {
	out := make([]*matrix.Dense, len(t.events))
	for i := range t.events {
		out[i] = t.events[i].Pheromone
	}

	return out
}
