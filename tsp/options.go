// Package tsp - ACO configuration.
//
// Configuration follows the functional-options pattern: defaults first, then
// each ACOOption mutates the config. Unlike option constructors that panic,
// values are checked once in NewACO and reported as sentinel errors, so a bad
// value from user input never crashes the caller.
package tsp

import "math"

const (
	// DefaultAnts is the number of ants per iteration.
	DefaultAnts = 15

	// DefaultEvaporation is the per-iteration pheromone decay rate ρ.
	DefaultEvaporation = 0.1

	// DefaultAlpha is the pheromone influence exponent α.
	DefaultAlpha = 1.0

	// DefaultBeta is the desirability influence exponent β.
	DefaultBeta = 2.0

	// DefaultMaxIterations is the conventional ACO iteration budget.
	DefaultMaxIterations = 100

	// MinEdgeDistance floors the distance used in the 1/d desirability term
	// and the 1/L deposit, so coincident points are maximally but finitely
	// attractive instead of producing +Inf or NaN weights.
	MinEdgeDistance = 1e-12
)

// ACOConfig is the full ACO parameter set, fixed at construction.
type ACOConfig struct {
	Ants        int     // ants per iteration, >= 1
	Evaporation float64 // ρ in [0,1)
	Alpha       float64 // α, finite, >= 0
	Beta        float64 // β, finite, >= 0
}

// DefaultACOConfig returns ants=15, ρ=0.1, α=1, β=2.
func DefaultACOConfig() ACOConfig {
	return ACOConfig{
		Ants:        DefaultAnts,
		Evaporation: DefaultEvaporation,
		Alpha:       DefaultAlpha,
		Beta:        DefaultBeta,
	}
}

// Validate reports the first invalid field as a sentinel error.
func (c ACOConfig) Validate() error {
	if c.Ants < 1 {
		return ErrInvalidAntCount
	}
	if math.IsNaN(c.Evaporation) || c.Evaporation < 0 || c.Evaporation >= 1 {
		return ErrInvalidEvaporation
	}
	if !validExponent(c.Alpha) || !validExponent(c.Beta) {
		return ErrInvalidExponent
	}

	return nil
}

func validExponent(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && x >= 0
}

// ACOOption mutates an ACOConfig before validation.
type ACOOption func(*ACOConfig)

// WithAnts sets the number of ants per iteration.
func WithAnts(n int) ACOOption {
	return func(c *ACOConfig) { c.Ants = n }
}

// WithEvaporation sets the evaporation rate ρ.
func WithEvaporation(rho float64) ACOOption {
	return func(c *ACOConfig) { c.Evaporation = rho }
}

// WithAlpha sets the pheromone influence exponent α.
func WithAlpha(alpha float64) ACOOption {
	return func(c *ACOConfig) { c.Alpha = alpha }
}

// WithBeta sets the desirability influence exponent β.
func WithBeta(beta float64) ACOOption {
	return func(c *ACOConfig) { c.Beta = beta }
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg ACOConfig) ACOOption {
	return func(c *ACOConfig) { *c = cfg }
}

// gatherACOConfig applies opts over the defaults.
func gatherACOConfig(opts ...ACOOption) ACOConfig {
	cfg := DefaultACOConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
