package synth

import (
	"math"
	"strconv"
)

// SeededRandom returns a deterministic pseudo-random value in [0, 1) for the
// given seed string and stream index. The same (seed, index) pair always
// yields the same value, across calls and across processes; independent
// streams are obtained by giving each caller its own seed suffix
// (e.g. seed+"call" vs seed+"put") rather than by sharing a stateful
// generator.
//
// The value is produced by rolling the concatenation of seed and index
// through a polynomial hash into a signed 32-bit integer, then mapping the
// hash through a sine transform. An empty seed hashes to 0 and is valid.
func SeededRandom(seed string, index int) float64 {
	var hash int32

	str := seed + strconv.Itoa(index)
	for _, c := range str {
		hash = (hash << 5) - hash + int32(c)
	}

	return math.Abs(math.Mod(math.Sin(float64(hash))*10000, 1))
}

// Mulberry32 returns a stateful generator of values in [0, 1) seeded with a
// 32-bit integer. Successive calls advance the internal state; two
// generators built from the same seed produce identical sequences.
func Mulberry32(seed uint32) func() float64 {
	t := seed + 0x6D2B79F5

	return func() float64 {
		t = (t ^ (t >> 15)) * (t | 1)
		t ^= t + (t^(t>>7))*(t|61)

		return float64(t^(t>>14)) / 4294967296.0
	}
}

// HashString folds a string into a non-negative 32-bit integer using the
// same polynomial hash as SeededRandom. Used to derive Mulberry32 seeds
// from date strings.
func HashString(s string) uint32 {
	var hash int32

	for _, c := range s {
		hash = (hash << 5) - hash + int32(c)
	}

	v := int64(hash)
	if v < 0 {
		v = -v
	}

	return uint32(v)
}
