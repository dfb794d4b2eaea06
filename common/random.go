package common

import "math/rand/v2"

// Random is a uniform source over [0, 1). Spawners only ever draw through it so
// a seeded source makes a run reproducible.
type Random interface {
	Float64() float64
}

// NewRandom returns a PCG source seeded with seed.
func NewRandom(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Between draws uniformly from [min, max).
func Between(r Random, min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

// Chance reports true with probability p.
func Chance(r Random, p float64) bool {
	return r.Float64() < p
}
