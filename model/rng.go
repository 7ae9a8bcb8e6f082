package model

import (
	"math/rand/v2"
	"time"
)

// Rand is the randomness the board factory and computer players draw from.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	// IntN returns a uniform value in [0, n); n > 0
	IntN(n int) int
}

// NewRNG creates a deterministic PCG-backed generator; seed 0 seeds from the clock
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), 0))
}
