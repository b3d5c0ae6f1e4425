package bench

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/minviz/logger"
	"github.com/katalvlaran/minviz/tsp"
)

// Instance is one problem to benchmark. Seed seeds the ACO solver and, with
// Volume, labels the output rows.
type Instance struct {
	Seed   int64
	Volume int
	Points []tsp.Point
}

// Result is the outcome of one trial.
type Result struct {
	ID       uuid.UUID
	Instance Instance
	ACO      *tsp.Trace
	NNH      *tsp.Trace
}

// Rows flattens the trial: ACO rows first, then NNH rows.
func (r Result) Rows() []tsp.BenchRow {
	var (
		n    = len(r.Instance.Points)
		rows = r.ACO.BenchRows(r.Instance.Seed, r.Instance.Volume, n)
	)
	return append(rows, r.NNH.BenchRows(r.Instance.Seed, r.Instance.Volume, n)...)
}

// Rows flattens results in order.
func Rows(results []Result) []tsp.BenchRow {
	var out []tsp.BenchRow
	for _, r := range results {
		out = append(out, r.Rows()...)
	}
	return out
}

// Runner executes trials according to a Config.
type Runner struct {
	cfg     Config
	log     *slog.Logger
	out     io.Writer
	metrics *Metrics
}

// RunnerOption customizes a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger. It takes precedence over Config.LogLevel.
func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) { r.log = l }
}

// WithLogOutput redirects the JSON logger built from Config.LogLevel
// (default os.Stderr). Ignored when WithLogger is given.
func WithLogOutput(w io.Writer) RunnerOption {
	return func(r *Runner) { r.out = w }
}

// WithMetrics enables Prometheus accounting.
func WithMetrics(m *Metrics) RunnerOption {
	return func(r *Runner) { r.metrics = m }
}

// NewRunner validates cfg and applies opts.
func NewRunner(cfg Config, opts ...RunnerOption) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("bench: %w", err)
	}
	r := &Runner{cfg: cfg, out: os.Stderr}
	for _, opt := range opts {
		opt(r)
	}
	if r.log == nil {
		r.log = logger.New(cfg.LogLevel, r.out)
	}
	return r, nil
}

// Run solves every instance, at most cfg.Workers at a time. Results are in
// instance order. The first failing trial cancels the rest and its error is
// returned.
func (r *Runner) Run(ctx context.Context, instances []Instance) ([]Result, error) {
	results := make([]Result, len(instances))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)
	for i := range instances {
		i := i
		g.Go(func() error {
			res, err := r.RunTrial(gctx, instances[i])
			if err != nil {
				return fmt.Errorf("bench: trial %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	r.log.Info("batch finished", "trials", len(instances))
	return results, nil
}

// RunTrial solves one instance with ACO and then NNH.
func (r *Runner) RunTrial(ctx context.Context, inst Instance) (Result, error) {
	res := Result{ID: uuid.New(), Instance: inst}
	log := r.log.With("trial_id", res.ID.String(), "seed", inst.Seed, "points", len(inst.Points))
	log.Debug("trial started")

	aco, err := tsp.NewACO(inst.Points, inst.Seed, tsp.WithConfig(r.cfg.solverConfig(len(inst.Points))))
	if err != nil {
		r.metrics.observeFailure()
		return Result{}, err
	}
	start := time.Now()
	if res.ACO, err = aco.SolveContext(ctx, r.cfg.Iterations); err != nil {
		r.metrics.observeFailure()
		log.Warn("aco solve interrupted", "error", err, "events", res.ACO.Len())
		return Result{}, err
	}
	r.metrics.observeSolve(tsp.AlgoACO, res.ACO, time.Since(start))

	start = time.Now()
	if res.NNH, err = tsp.NewNNH(inst.Points).FullSolveContext(ctx); err != nil {
		r.metrics.observeFailure()
		log.Warn("nnh solve interrupted", "error", err, "events", res.NNH.Len())
		return Result{}, err
	}
	r.metrics.observeSolve(tsp.AlgoNNH, res.NNH, time.Since(start))

	log.Info("trial finished",
		"aco_events", res.ACO.Len(), "aco_best", bestLength(res.ACO),
		"nnh_events", res.NNH.Len(), "nnh_best", bestLength(res.NNH))
	return res, nil
}

// bestLength returns the best recorded length, or 0 for an empty trace.
func bestLength(t *tsp.Trace) float64 {
	if best, ok := t.Best(); ok {
		return best.Length
	}
	return 0
}
