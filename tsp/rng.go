// Package tsp - RNG policy for the stochastic solver.
//
// Goals:
//   - Determinism: the core never reads ambient entropy; every *rand.Rand is
//     built from an explicit seed.
//   - Encapsulation: one factory, one stream per solver instance.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each solver owns its own stream.
package tsp

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"
)

// newRNG returns a deterministic *rand.Rand for seed, used verbatim
// (seed 0 is a valid, distinct seed).
func newRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// EntropySeed returns a fresh non-deterministic seed for callers that do not
// need reproducibility. It is the only entropy source in this package and is
// never called by the solvers themselves.
func EntropySeed() int64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return time.Now().UnixNano()
	}

	return int64(binary.LittleEndian.Uint64(buf[:]))
}
