package bench

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/minviz/tsp"
)

// Metrics groups the runner's Prometheus collectors. A nil *Metrics is a no-op.
type Metrics struct {
	// Solves counts completed solves, labeled by algorithm.
	Solves *prometheus.CounterVec

	// Improvements counts recorded improvement events, labeled by algorithm.
	Improvements *prometheus.CounterVec

	// SolveDuration measures wall-clock time per solve.
	SolveDuration *prometheus.HistogramVec

	// BestLength holds the best tour length of the most recent solve that
	// found one, labeled by algorithm.
	BestLength *prometheus.GaugeVec

	// FailedTrials counts trials that returned an error (including cancellation).
	FailedTrials prometheus.Counter
}

// NewMetrics creates the collectors and registers them on reg.
// Pass prometheus.DefaultRegisterer to expose them process-wide.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Solves: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "minviz_solves_total",
				Help: "Total number of completed TSP solves",
			},
			[]string{"algo"},
		),
		Improvements: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "minviz_improvements_total",
				Help: "Total number of recorded improving tours",
			},
			[]string{"algo"},
		),
		SolveDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "minviz_solve_duration_seconds",
				Help: "Duration of a single TSP solve in seconds",
				// microseconds (tiny NNH) to tens of seconds (large ACO)
				Buckets: []float64{0.0001, 0.001, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
			},
			[]string{"algo"},
		),
		BestLength: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "minviz_best_tour_length",
				Help: "Best tour length (sum of squared distances) of the latest solve",
			},
			[]string{"algo"},
		),
		FailedTrials: f.NewCounter(prometheus.CounterOpts{
			Name: "minviz_failed_trials_total",
			Help: "Total number of benchmark trials that failed",
		}),
	}
}

func (m *Metrics) observeSolve(algo tsp.Algorithm, trace *tsp.Trace, d time.Duration) {
	if m == nil {
		return
	}
	m.Solves.WithLabelValues(algo.String()).Inc()
	m.Improvements.WithLabelValues(algo.String()).Add(float64(trace.Len()))
	m.SolveDuration.WithLabelValues(algo.String()).Observe(d.Seconds())
	if best, ok := trace.Best(); ok {
		m.BestLength.WithLabelValues(algo.String()).Set(best.Length)
	}
}

func (m *Metrics) observeFailure() {
	if m == nil {
		return
	}
	m.FailedTrials.Inc()
}
