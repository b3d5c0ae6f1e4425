// Package bench runs batches of independent solver trials.
//
// Each Instance (a caller-supplied point set plus its seed and volume labels)
// is solved once with ACO and once with NNH. Trials run concurrently, up to
// Config.Workers at a time; each trial owns its solvers, so no state is shared.
// Results come back in instance order and can be flattened into
// tsp.BenchRow records with Rows.
//
// Configuration is YAML (see LoadConfig); progress is logged with log/slog
// and, optionally, counted in Prometheus collectors (see NewMetrics).
package bench
