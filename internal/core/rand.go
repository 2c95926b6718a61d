package core

import "math/rand"

// Rand is the random source a session threads through its game.
// Every random decision (spawn cells, tile values, shooter choice, piece
// selection, serve direction) goes through one instance so a seeded source
// reproduces a play sequence.
type Rand interface {
	// Intn returns a uniform int in [0, n). n must be positive.
	Intn(n int) int
	// Float64 returns a uniform float64 in [0, 1).
	Float64() float64
}

// NewRand returns a deterministic source for the given seed.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// Chance reports true with probability p.
func Chance(r Rand, p float64) bool {
	return r.Float64() < p
}
