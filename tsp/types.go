package tsp

import "errors"

// Sentinel errors. Match with errors.Is.
var (
	// ErrDimensionMismatch: tour/matrix shapes disagree, or an index is out of range.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrNonSquare: a square distance matrix was required.
	ErrNonSquare = errors.New("tsp: distance matrix is not square")

	// ErrStartOutOfRange: a start city outside [0,n).
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrInvalidAntCount: ACO needs at least one ant.
	ErrInvalidAntCount = errors.New("tsp: ant count must be >= 1")

	// ErrInvalidEvaporation: evaporation rate outside [0,1).
	ErrInvalidEvaporation = errors.New("tsp: evaporation rate must be in [0,1)")

	// ErrInvalidExponent: alpha/beta must be finite and non-negative.
	ErrInvalidExponent = errors.New("tsp: influence exponent must be finite and >= 0")

	// ErrInvalidIterations: negative iteration budget.
	ErrInvalidIterations = errors.New("tsp: iteration count must be >= 0")
)

// Algorithm tags the heuristic that produced a Trace.
type Algorithm string

const (
	// AlgoNNH marks traces produced by the nearest-neighbour heuristic.
	AlgoNNH Algorithm = "NNH"
	// AlgoACO marks traces produced by ant colony optimization.
	AlgoACO Algorithm = "ACO"
)

// String returns the tag as written in benchmark rows.
func (a Algorithm) String() string { return string(a) }
