package internal

import ebimath "github.com/edwinsyarief/ebi-math"

// Uniform random source used to re-target shakes. *ebimath.Rand
// implements it.
//
// FloatRange returns a value in [min, max). When min == max, it must
// return min.
type Rand interface {
	FloatRange(min, max float64) float64
}

// Returns a new time seeded random source. Sources are not safe for
// concurrent use, so each pool gets its own.
func NewRand() Rand {
	return ebimath.Random()
}
