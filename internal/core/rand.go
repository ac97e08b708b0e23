package core

import "math/rand"

// Rand is the random source simulation cores draw from.
// *rand.Rand satisfies it; tests substitute scripted sequences.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a seeded source.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// Uniform returns a value in [lo, hi).
func Uniform(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Chance returns true with probability p.
func Chance(r Rand, p float64) bool {
	return r.Float64() < p
}
