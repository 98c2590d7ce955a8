// Package rng implements the seeded pseudo-random stream and shuffles that
// make question orders reproducible across shared sessions. The generator
// is pure 32-bit integer arithmetic, so the same seed string yields the
// same sequence on every platform. It is a replay mechanism, not a
// security control.
package rng

import (
	"math/bits"
	"math/rand"
	"strconv"
	"time"
)

// Hash mixes a seed string into a single 32-bit value (xmur3 construction:
// per-character multiply/xor rounds with a 13-bit rotate, then an
// avalanche finish).
func Hash(seed string) uint32 {
	h := uint32(1779033703) ^ uint32(len(seed))
	for _, c := range seed {
		h = (h ^ uint32(c)) * 3432918353
		h = bits.RotateLeft32(h, 13)
	}
	h = (h ^ (h >> 16)) * 2246822507
	h = (h ^ (h >> 13)) * 3266489909
	return h ^ (h >> 16)
}

// New returns a repeatable stream of floats in [0,1) seeded from the given
// string. The stream is a Mulberry32 generator: state advances by a fixed
// odd increment each call and runs through an xorshift/multiply mix, with
// the output normalized by 2^32.
func New(seed string) func() float64 {
	state := Hash(seed)
	return func() float64 {
		state += 0x6d2b79f5
		t := state
		t = (t ^ (t >> 15)) * (t | 1)
		t ^= t + (t^(t>>7))*(t|61)
		t ^= t >> 14
		return float64(t) / 4294967296
	}
}

// Shuffle returns a copy of s in a random order drawn from the ambient
// math/rand source. The input is never mutated.
func Shuffle[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	for i := len(out) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// SeededShuffle returns a copy of s permuted by a Fisher-Yates walk over
// the seed's float stream. Same seed and same input produce an identical
// order on every call. The input is never mutated.
func SeededShuffle[T any](s []T, seed string) []T {
	r := New(seed)
	out := make([]T, len(s))
	copy(out, s)
	for i := len(out) - 1; i > 0; i-- {
		j := int(r() * float64(i+1))
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// TimeSeed derives a seed from the current time for sessions started
// without an explicit one. Two players pressing start independently get
// different orders, each still reproducible from its own seed.
func TimeSeed() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}
