package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestPalettePickWeights(t *testing.T) {
	p := DefaultPalette()
	rng := rand.New(rand.NewSource(99))

	const draws = 200000
	counts := make(map[colorful.Color]int)
	for i := 0; i < draws; i++ {
		counts[p.Pick(rng)]++
	}

	for _, s := range p {
		got := float64(counts[s.Color]) / draws
		if math.Abs(got-s.Weight) > 0.01 {
			t.Errorf("%s: expected frequency ~%.2f, got %.4f", s.Name, s.Weight, got)
		}
	}
}

func TestPalettePickSkipsZeroWeight(t *testing.T) {
	only := colorful.Color{R: 1}
	p := Palette{
		{Name: "never", Color: colorful.Color{B: 1}, Weight: 0},
		{Name: "always", Color: only, Weight: 2},
		{Name: "never2", Color: colorful.Color{G: 1}, Weight: 0},
	}
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 1000; i++ {
		if c := p.Pick(rng); c != only {
			t.Fatalf("picked zero-weight colour %v", c)
		}
	}
}

func TestPaletteValidate(t *testing.T) {
	tests := []struct {
		name    string
		palette Palette
		wantErr bool
	}{
		{"default", DefaultPalette(), false},
		{"empty", Palette{}, true},
		{"negative", Palette{{Name: "a", Weight: -1}, {Name: "b", Weight: 2}}, true},
		{"all zero", Palette{{Name: "a"}, {Name: "b"}}, true},
		{"nan", Palette{{Name: "a", Weight: math.NaN()}}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.palette.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() err = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
