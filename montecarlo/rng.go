// Package montecarlo - deterministic RNG stream derivation.
//
// Goals:
//   - Determinism: same seed ⇒ identical draws across platforms and worker
//     counts; no time-based sources anywhere.
//   - Independence: per-draw streams must not correlate, so stream ids are
//     mixed through a SplitMix64-style finalizer before seeding.
package montecarlo

import "golang.org/x/exp/rand"

// defaultSeed is the fixed "zero" seed used when callers pass seed==0.
// Arbitrary but stable, to keep reproducible defaults.
const defaultSeed uint64 = 1

// deriveSeed mixes the base seed and a stream identifier into a new 64-bit
// seed with the canonical SplitMix64 multipliers (strong bit diffusion:
// adjacent stream ids land far apart). The result is output stream+1 of a
// SplitMix64 generator seeded at base, so distinct base seeds give distinct
// families of stream seeds.
func deriveSeed(base uint64, stream uint64) uint64 {
	x := base + (stream+1)*0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

// streamSource returns the deterministic source for one draw.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
func streamSource(seed uint64, stream uint64) rand.Source {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.NewSource(deriveSeed(seed, stream))
}
