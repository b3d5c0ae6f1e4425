package tsp

import "time"

// BenchRow is one flat benchmark record per improvement event.
// Seed, CubicVolume and PointCount are labels supplied by the caller; the
// solver does not compute them.
type BenchRow struct {
	Algo        Algorithm
	Distance    float64
	Seed        int64
	ElapsedTime time.Duration
	PointCount  int
	CubicVolume int
	Iterations  int
	Positions   int
}

// BenchRows projects the trace into one row per improvement event, in
// discovery order. It does not modify the trace.
func (t *Trace) BenchRows(seed int64, volume, pointCount int) []BenchRow {
	rows := make([]BenchRow, 0, len(t.events))

	var ev Improvement
	for _, ev = range t.events {
		rows = append(rows, BenchRow{
			Algo:        t.algo,
			Distance:    ev.Length,
			Seed:        seed,
			ElapsedTime: ev.Elapsed,
			PointCount:  pointCount,
			CubicVolume: volume,
			Iterations:  ev.Iteration,
			Positions:   ev.Position,
		})
	}

	return rows
}
