// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric storage shared by the TSP solvers.
//
// What:
//   - Matrix: a minimal bounds-checked interface (Rows/Cols/At/Set/Clone).
//   - Dense: contiguous row-major float64 buffer (offset = i*cols + j).
//
// Why:
//   - Distance and pheromone tables are n×n and touched O(n²) times per
//     iteration; one flat allocation keeps them cache friendly and makes
//     deep snapshots a single copy().
//
// Zero-sized matrices:
//   - NewDense forbids empty shapes. NewSquare and NewFilled accept n==0 so
//     that degenerate point sets still get a well-formed 0×0 table.
//
// Errors:
//   - Only sentinels from errors.go, wrapped with the method and coordinates
//     ("Dense.At(3,7): matrix: index out of range"). Use errors.Is.
package matrix
