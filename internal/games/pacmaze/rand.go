package pacmaze

// Rand is the random source consumed by the simulation.
// *math/rand.Rand satisfies it; tests inject scripted sources.
type Rand interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// randBetween draws a uniform integer in [lo, hi].
func randBetween(rng Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
