package application

import (
	"math/rand"
	"time"

	"blackjackodds/internal/domain/probdist"
)

// rnd is a package-level random source seeded once, used by the Monte
// Carlo cross-check's sampling.
var rnd = rand.New(rand.NewSource(time.Now().UnixNano()))

// sampleOutcome draws a single outcome from d, weighted by its probability
// mass. It never enumerates: this is the one place the Monte Carlo
// cross-check deliberately diverges from the exact engine's exhaustive
// ProbDist combinators, trading precision for O(1) per step instead of
// tracking every branch.
func sampleOutcome[T probdist.Numeric[T], I probdist.Keyed](d probdist.Dist[T, I]) I {
	entries := d.Entries()
	r := rnd.Float64()
	acc := 0.0
	for _, e := range entries {
		acc += e.Prob.Float64()
		if r <= acc {
			return e.Item
		}
	}
	return entries[len(entries)-1].Item
}
