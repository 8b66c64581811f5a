package components

import "math"

// Surface is the current drawable extent in surface units.
type Surface struct {
	W, H float64
}

// Valid reports whether the extent is positive and finite on both axes.
func (s Surface) Valid() bool {
	return s.W > 0 && s.H > 0 && !math.IsInf(s.W, 0) && !math.IsInf(s.H, 0)
}

// Contains reports whether (x, y) lies in [0, W) x [0, H).
func (s Surface) Contains(x, y float64) bool {
	return x >= 0 && x < s.W && y >= 0 && y < s.H
}
