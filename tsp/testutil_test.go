// Package tsp_test provides small helpers shared across *_test.go files.
package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minviz/tsp"
)

const (
	// seedDet is the fixed seed used by reproducibility tests.
	seedDet = int64(42)

	// itersSmall keeps ACO runs fast on CI.
	itersSmall = 20
)

// unitSquare returns the four corners of the unit square in the z=0 plane,
// in cyclic order.
func unitSquare() []tsp.Point {
	return []tsp.Point{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}
}

// helix returns n points on a rippled helix. Deterministic, tie-free and
// genuinely 3D, so construction order matters.
func helix(n int) []tsp.Point {
	pts := make([]tsp.Point, n)
	var (
		i  int
		th float64
		r  float64
	)
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64(i*7%n) / float64(n)
		r = 3.0 + 0.35*float64(i%4)
		pts[i] = tsp.Point{X: r * math.Cos(th), Y: r * math.Sin(th), Z: 0.5 * float64(i%5)}
	}

	return pts
}

// requireStrictlyDecreasing asserts that every recorded length beats the previous one.
func requireStrictlyDecreasing(t *testing.T, trace *tsp.Trace) {
	t.Helper()
	lengths := trace.Lengths()
	for i := 1; i < len(lengths); i++ {
		require.Less(t, lengths[i], lengths[i-1], "event %d does not improve", i)
	}
}

// requireValidTours asserts every recorded tour is a permutation of [0,n)
// and that its recorded length matches a fresh evaluation.
func requireValidTours(t *testing.T, trace *tsp.Trace, n int) {
	t.Helper()
	for i, ev := range trace.Events() {
		require.NoError(t, tsp.ValidatePermutation(ev.Tour, n), "event %d", i)
		got, err := tsp.TourLength(trace.Distances(), ev.Tour)
		require.NoError(t, err)
		require.Equal(t, ev.Length, got, "event %d length", i)
	}
}

// requireSameContent compares everything except wall-clock fields.
func requireSameContent(t *testing.T, a, b *tsp.Trace) {
	t.Helper()
	require.Equal(t, a.Algorithm(), b.Algorithm())
	require.Equal(t, a.Len(), b.Len())
	require.Equal(t, a.Lengths(), b.Lengths())
	require.Equal(t, a.Tours(), b.Tours())
	require.Equal(t, a.Iterations(), b.Iterations())
	require.Equal(t, a.Positions(), b.Positions())

	sa, sb := a.PheromoneSnapshots(), b.PheromoneSnapshots()
	for i := range sa {
		if sa[i] == nil {
			require.Nil(t, sb[i])
			continue
		}
		require.True(t, sa[i].Equal(sb[i]), "snapshot %d differs", i)
	}
}
