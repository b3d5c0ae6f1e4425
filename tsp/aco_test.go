package tsp_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minviz/tsp"
)

func TestNewACO_Defaults(t *testing.T) {
	a, err := tsp.NewACO(unitSquare(), seedDet)
	require.NoError(t, err)
	require.Equal(t, tsp.DefaultACOConfig(), a.Config())
	require.Equal(t, 15, a.Config().Ants)
	require.Equal(t, 0.1, a.Config().Evaporation)

	p := a.Pheromone()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			v, _ := p.At(i, j)
			require.Equal(t, 1.0, v)
		}
	}
}

func TestNewACO_InvalidConfig(t *testing.T) {
	cases := []struct {
		name string
		opt  tsp.ACOOption
		want error
	}{
		{"zero ants", tsp.WithAnts(0), tsp.ErrInvalidAntCount},
		{"negative ants", tsp.WithAnts(-3), tsp.ErrInvalidAntCount},
		{"negative rho", tsp.WithEvaporation(-0.1), tsp.ErrInvalidEvaporation},
		{"rho one", tsp.WithEvaporation(1), tsp.ErrInvalidEvaporation},
		{"rho NaN", tsp.WithEvaporation(math.NaN()), tsp.ErrInvalidEvaporation},
		{"negative alpha", tsp.WithAlpha(-1), tsp.ErrInvalidExponent},
		{"inf beta", tsp.WithBeta(math.Inf(1)), tsp.ErrInvalidExponent},
		{"NaN beta", tsp.WithBeta(math.NaN()), tsp.ErrInvalidExponent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := tsp.NewACO(unitSquare(), seedDet, tc.opt)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, a)
		})
	}
}

func TestACO_DegenerateInputs(t *testing.T) {
	for _, pts := range [][]tsp.Point{nil, {{X: 2, Y: 3, Z: 4}}} {
		a, err := tsp.NewACO(pts, seedDet)
		require.NoError(t, err)
		trace, err := a.Solve(tsp.DefaultMaxIterations)
		require.NoError(t, err)
		require.Equal(t, tsp.AlgoACO, trace.Algorithm())
		require.Zero(t, trace.Len())
	}
}

func TestACO_IterationBudget(t *testing.T) {
	a, err := tsp.NewACO(unitSquare(), seedDet)
	require.NoError(t, err)

	_, err = a.Solve(-1)
	require.ErrorIs(t, err, tsp.ErrInvalidIterations)

	trace, err := a.Solve(0)
	require.NoError(t, err)
	require.Zero(t, trace.Len())
}

// TestACO_SingleAntNoEvaporation checks the exact reinforcement rule: one ant,
// ρ=0, one iteration on the unit square.
func TestACO_SingleAntNoEvaporation(t *testing.T) {
	a, err := tsp.NewACO(unitSquare(), seedDet, tsp.WithAnts(1), tsp.WithEvaporation(0))
	require.NoError(t, err)

	trace, err := a.Solve(1)
	require.NoError(t, err)
	require.Equal(t, 1, trace.Len(), "first tour always beats +Inf")

	ev, _ := trace.Best()
	require.NoError(t, tsp.ValidatePermutation(ev.Tour, 4))
	require.Equal(t, 1, ev.Iteration)
	require.Equal(t, 1, ev.Position)

	// Snapshot predates the update: still uniform.
	require.NotNil(t, ev.Pheromone)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			v, _ := ev.Pheromone.At(i, j)
			require.Equal(t, 1.0, v)
		}
	}

	onTour := make(map[[2]int]bool)
	for k := range ev.Tour {
		u, v := ev.Tour[k], ev.Tour[(k+1)%len(ev.Tour)]
		onTour[[2]int{u, v}] = true
		onTour[[2]int{v, u}] = true
	}

	after := a.Pheromone()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			got, _ := after.At(i, j)
			if onTour[[2]int{i, j}] {
				require.Equal(t, 1.0+1.0/ev.Length, got, "edge (%d,%d)", i, j)
			} else {
				require.Equal(t, 1.0, got, "entry (%d,%d) must be untouched", i, j)
			}
		}
	}
}

func TestACO_Helix_Invariants(t *testing.T) {
	const n = 24
	a, err := tsp.NewACO(helix(n), seedDet, tsp.WithAnts(8))
	require.NoError(t, err)

	trace, err := a.Solve(itersSmall)
	require.NoError(t, err)
	require.Positive(t, trace.Len())
	requireStrictlyDecreasing(t, trace)
	requireValidTours(t, trace, n)

	for _, ev := range trace.Events() {
		assert.GreaterOrEqual(t, ev.Iteration, 1)
		assert.LessOrEqual(t, ev.Iteration, itersSmall)
		assert.GreaterOrEqual(t, ev.Position, 1)
		assert.LessOrEqual(t, ev.Position, 8)
		require.NotNil(t, ev.Pheromone)
		assert.Equal(t, n, ev.Pheromone.Rows())
	}

	require.True(t, a.Pheromone().IsSymmetric(0), "pheromone must stay exactly symmetric")
}

func TestACO_SeedReproducibility(t *testing.T) {
	pts := helix(20)
	run := func() *tsp.Trace {
		a, err := tsp.NewACO(pts, seedDet, tsp.WithAnts(6), tsp.WithAlpha(1.5), tsp.WithBeta(3))
		require.NoError(t, err)
		trace, err := a.Solve(itersSmall)
		require.NoError(t, err)
		return trace
	}
	requireSameContent(t, run(), run())
}

func TestACO_SnapshotsAreDetached(t *testing.T) {
	a, err := tsp.NewACO(helix(12), seedDet, tsp.WithAnts(4))
	require.NoError(t, err)

	trace, err := a.Solve(5)
	require.NoError(t, err)
	require.Positive(t, trace.Len())

	before := make([]string, trace.Len())
	for i, s := range trace.PheromoneSnapshots() {
		before[i] = s.String()
	}

	// Keep mutating the live matrix.
	_, err = a.Solve(5)
	require.NoError(t, err)

	for i, s := range trace.PheromoneSnapshots() {
		require.Equal(t, before[i], s.String(), "snapshot %d changed after further solving", i)
	}

	// Events of iteration 1 see the untouched initial matrix.
	first, _ := trace.Event(0)
	require.Equal(t, 1, first.Iteration)
	v, _ := first.Pheromone.At(0, 1)
	require.Equal(t, 1.0, v)
}

func TestACO_CoincidentPoints(t *testing.T) {
	pts := []tsp.Point{
		{X: 0, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 2, Z: 1},
	}
	a, err := tsp.NewACO(pts, seedDet, tsp.WithAnts(5))
	require.NoError(t, err)

	trace, err := a.Solve(10)
	require.NoError(t, err)
	require.Positive(t, trace.Len())
	requireValidTours(t, trace, len(pts))
	for _, l := range trace.Lengths() {
		require.False(t, math.IsInf(l, 0) || math.IsNaN(l))
	}
	require.True(t, a.Pheromone().IsSymmetric(0))
}

func TestACO_AllPointsCoincident(t *testing.T) {
	pts := make([]tsp.Point, 4) // four copies of the origin
	a, err := tsp.NewACO(pts, seedDet, tsp.WithAnts(2))
	require.NoError(t, err)

	trace, err := a.Solve(3)
	require.NoError(t, err)
	require.Equal(t, 1, trace.Len(), "zero-length tour can only be recorded once")
	ev, _ := trace.Best()
	require.Equal(t, 0.0, ev.Length)
	requireValidTours(t, trace, 4)
}

func TestACO_SolveContext_Cancelled(t *testing.T) {
	a, err := tsp.NewACO(helix(10), seedDet)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	trace, err := a.SolveContext(ctx, 50)
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, trace)
	require.Zero(t, trace.Len())
}
