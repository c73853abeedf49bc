package systems

import (
	"math"
	"math/rand"
)

// randRange returns a uniformly chosen value from start, start+step, ... below stop.
// Panics on an empty range, callers pass constant ranges
func randRange(r *rand.Rand, start, stop, step int) int {
	if step <= 0 || stop <= start {
		panic("randRange: empty range")
	}
	n := (stop - start + step - 1) / step
	return start + step*r.Intn(n)
}

// randInclusive returns a uniformly chosen integer in [lo, hi]
func randInclusive(r *rand.Rand, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}

// roundHalfEven rounds to the nearest integer, ties to even
func roundHalfEven(v float64) int {
	return int(math.RoundToEven(v))
}
