package systems

import (
	"math"
	"math/rand"
)

// Range is a closed interval sampled uniformly.
type Range struct {
	Min, Max float64
}

// Sample returns a uniform value in [Min, Max).
func (r Range) Sample(rng *rand.Rand) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Valid reports whether the bounds are finite and ordered.
func (r Range) Valid() bool {
	return finite(r.Min) && finite(r.Max) && r.Min <= r.Max
}

// Wrap maps v into [0, extent) with toroidal wraparound.
// A coordinate that overshoots an edge by d lands d past the opposite edge.
func Wrap(v, extent float64) float64 {
	r := math.Mod(v, extent)
	if r < 0 {
		r += extent
	}
	// -tiny + extent can round up to extent
	if r >= extent {
		r = 0
	}
	return r
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
