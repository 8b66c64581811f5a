// Package components defines the value types shared by the field simulation
// and the renderers.
package components

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Paint is a colour with a separate alpha channel.
// It stays unpacked until a canvas draws with it.
type Paint struct {
	Color colorful.Color
	Alpha float64 // 0..1
}

// WithAlpha returns a copy of p with the given alpha.
func (p Paint) WithAlpha(a float64) Paint {
	p.Alpha = a
	return p
}

// RGBA8 packs the paint into 8-bit channels.
// Alpha is floored, so 0.6 becomes 153.
func (p Paint) RGBA8() (r, g, b, a uint8) {
	r, g, b = p.Color.Clamped().RGB255()
	return r, g, b, alpha8(p.Alpha)
}

// MustHex parses a "#rrggbb" colour and panics if it is malformed.
// Use it for compile-time constants only.
func MustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("components: bad colour %q: %v", s, err))
	}
	return c
}

func alpha8(a float64) uint8 {
	if !(a > 0) {
		return 0
	}
	if a >= 1 {
		return 255
	}
	return uint8(math.Floor(a * 255))
}
