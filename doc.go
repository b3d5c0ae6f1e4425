// Package minviz computes approximate tours for the Euclidean Travelling
// Salesman Problem over 3D points and records how each solver got there.
//
// Two construction heuristics share one result contract:
//
//	tsp.NNH - deterministic nearest-neighbour, tried from every start city
//	tsp.ACO - seeded ant colony optimization with evaporation and 1/L deposits
//
// Each solve returns a *tsp.Trace holding every strictly improving tour with
// its length, elapsed time, iteration/position markers and, for ACO, a
// snapshot of the pheromone matrix, ready for replay or benchmark export.
//
// Packages:
//
//	matrix/ - row-major Dense storage for distance and pheromone tables
//	tsp/    - points, distance matrix, NNH, ACO, traces, benchmark rows
//	bench/  - parallel batch runner (YAML config, slog, Prometheus)
//	logger/ - slog logger factory
//
// Quick start:
//
//	points := []tsp.Point{{X: 0}, {X: 1}, {X: 1, Y: 1}, {Y: 1}}
//	aco, err := tsp.NewACO(points, tsp.EntropySeed())
//	if err != nil { ... }
//	trace, err := aco.Solve(tsp.DefaultMaxIterations)
//	best, ok := trace.Best()
package minviz
