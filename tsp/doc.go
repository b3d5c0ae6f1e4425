// Package tsp provides construction heuristics for the Euclidean Travelling
// Salesman Problem over 3D points, with a full improvement trace.
//
// Solvers:
//
//   - NNH - deterministic nearest-neighbour construction, run once from every
//     start city, keeping only strictly improving tours.
//
//   - Complexity: O(n³) time, O(n²) memory (distance matrix).
//
//   - ACO - Ant Colony Optimization: pheromone-biased roulette-wheel
//     construction with evaporation and 1/L reinforcement.
//
//   - Complexity: O(iterations·ants·n²) time, O(n²) memory per matrix.
//
// Both solvers use SQUARED Euclidean distances (see NewDistanceMatrix) for
// comparisons, tour lengths and ACO desirability.
//
// Every solve returns a *Trace: one Improvement per strictly better tour, in
// discovery order, with elapsed wall-clock time, 1-based iteration/position
// markers and (ACO only) a deep copy of the pheromone matrix. A trace with
// Len()==0 is the canonical "no tour" result for inputs with fewer than two
// points; it is not an error.
//
// Determinism:
//   - NNH uses no randomness at all.
//   - ACO owns one math/rand stream seeded explicitly at construction; the same
//     seed, points and options reproduce the same tours, lengths, markers and
//     snapshots. Use EntropySeed at the call site when a fresh seed is wanted.
//
// Solvers are not safe for concurrent use; independent solvers may run in
// parallel since they share no state.
package tsp
