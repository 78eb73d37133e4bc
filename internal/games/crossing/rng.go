package crossing

import "math/rand"

// RandInt returns a uniform integer in [lo, hi] inclusive.
func RandInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
