// Package randutil builds reproducible random sources for dealing hands.
package randutil

import rand "math/rand/v2"

// New returns a PCG generator whose two state words are the first two
// SplitMix64 outputs for seed. Logging the seed is enough to replay the deals.
func New(seed int64) *rand.Rand {
	state := uint64(seed)
	hi := splitMix64(&state)
	lo := splitMix64(&state)
	return rand.New(rand.NewPCG(hi, lo))
}

// Seed picks a seed for runs that were not given one.
func Seed() int64 {
	return rand.Int64()
}

func splitMix64(state *uint64) uint64 {
	*state += 0x9e3779b97f4a7c15
	z := *state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
