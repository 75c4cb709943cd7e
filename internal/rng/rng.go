// Package rng centralizes deterministic random generation for the planning
// engine: seed allocation (plan/handle_new_uav) draws from a single seeded
// stream so that, per spec §5, two runs with the same configuration and
// seed produce bit-identical results. DARP's jitter does not use this
// package; it seeds its own math/rand source from darp.WithSeed.
//
// Grounded on github.com/katalvlaran/lvlath's tsp/rng.go: a single RNG
// factory, no time-based sources, and a SplitMix64 stream-derivation helper
// for callers that need an independent substream.
package rng

import "math/rand"

// DefaultSeed is the reference fixed seed from spec §5.
const DefaultSeed int64 = 42069

// New returns a deterministic *rand.Rand seeded with seed. Passing 0 uses
// DefaultSeed, matching the "seed==0 -> default" policy of the teacher's
// rngFromSeed.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed using the canonical SplitMix64 finalizer, giving well-decorrelated
// substreams from a single parent.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// Derive creates an independent deterministic RNG stream from base and a
// stream identifier, consuming one value from base to decorrelate
// consecutive derivations. If base is nil, DefaultSeed is used as the
// parent.
func Derive(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = DefaultSeed
	} else {
		parent = base.Int63()
	}
	return New(deriveSeed(parent, stream))
}
