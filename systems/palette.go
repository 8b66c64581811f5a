package systems

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/pthm-cable/drift/components"
)

// Swatch is one weighted palette entry.
type Swatch struct {
	Name   string
	Color  colorful.Color
	Weight float64
}

// Palette is a weighted set of particle colours.
type Palette []Swatch

// DefaultPalette returns green, cyan and red weighted 0.4 / 0.2 / 0.4.
func DefaultPalette() Palette {
	return Palette{
		{Name: "green", Color: components.MustHex("#00ff88"), Weight: 0.4},
		{Name: "cyan", Color: components.MustHex("#00ccff"), Weight: 0.2},
		{Name: "red", Color: components.MustHex("#ff0055"), Weight: 0.4},
	}
}

// Validate rejects empty palettes, negative weights and a zero total.
func (p Palette) Validate() error {
	if len(p) == 0 {
		return errors.New("empty palette")
	}
	var total float64
	for _, s := range p {
		if s.Weight < 0 || !finite(s.Weight) {
			return fmt.Errorf("swatch %q has invalid weight %v", s.Name, s.Weight)
		}
		total += s.Weight
	}
	if total <= 0 {
		return errors.New("palette weights sum to zero")
	}
	return nil
}

// Pick draws one colour with probability proportional to its weight.
func (p Palette) Pick(rng *rand.Rand) colorful.Color {
	var total float64
	for _, s := range p {
		total += s.Weight
	}
	r := rng.Float64() * total
	for _, s := range p {
		if r < s.Weight {
			return s.Color
		}
		r -= s.Weight
	}
	// float drift at the top end
	for i := len(p) - 1; i >= 0; i-- {
		if p[i].Weight > 0 {
			return p[i].Color
		}
	}
	return p[len(p)-1].Color
}
