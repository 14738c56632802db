package templating

import (
	"math/rand/v2"
	"slices"
)

// Shuffle returns a uniformly permuted copy of seq using a Fisher–Yates
// shuffle driven by r. seq itself is left untouched. A nil r falls back to
// the global generator.
func Shuffle[T any](seq []T, r *rand.Rand) []T {
	out := slices.Clone(seq)
	swap := func(i, j int) { out[i], out[j] = out[j], out[i] }
	if r == nil {
		rand.Shuffle(len(out), swap)
	} else {
		r.Shuffle(len(out), swap)
	}
	return out
}

// Sample returns min(n, len(seq)) distinct elements of seq in shuffled order.
func Sample[T any](seq []T, n int, r *rand.Rand) []T {
	if n <= 0 {
		return []T{}
	}
	out := Shuffle(seq, r)
	return out[:min(n, len(out))]
}

// randomChoice selects a single random element from s, or the zero value
// when s is empty.
func randomChoice[T any](s []T, r *rand.Rand) T {
	var zero T
	if len(s) == 0 {
		return zero
	}
	return s[r.IntN(len(s))]
}

// randomInt returns a random integer within the range [min, max).
//
//goland:noinspection GoReservedWordUsedAsName
func randomInt(r *rand.Rand, min, max int) int {
	if min >= max {
		return min
	}
	return r.IntN(max-min) + min
}
