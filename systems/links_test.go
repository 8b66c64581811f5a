package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/drift/components"
)

func collect(links func(func(Link) bool)) []Link {
	var out []Link
	links(func(l Link) bool {
		out = append(out, l)
		return true
	})
	return out
}

func TestBruteLinksEndToEnd(t *testing.T) {
	params := DefaultLinkParams()
	ps := []components.Particle{
		particleAt(0, 50, 0, 0),
		particleAt(90, 50, 0, 0),
	}

	links := collect(BruteLinks(ps, params))
	if len(links) != 1 {
		t.Fatalf("expected 1 link, got %d", len(links))
	}
	l := links[0]
	if l.A != 0 || l.B != 1 {
		t.Errorf("expected pair (0,1), got (%d,%d)", l.A, l.B)
	}
	if math.Abs(l.Dist-90) > 1e-9 {
		t.Errorf("expected distance 90, got %f", l.Dist)
	}
	want := params.BaseAlpha * (1 - 0.9)
	if math.Abs(l.Alpha-want) > 1e-12 {
		t.Errorf("expected alpha %f, got %f", want, l.Alpha)
	}

	ps[1] = particleAt(150, 50, 0, 0)
	if links := collect(BruteLinks(ps, params)); len(links) != 0 {
		t.Errorf("expected no link at distance 150, got %v", links)
	}
}

func TestLinkAlphaFalloff(t *testing.T) {
	params := LinkParams{Threshold: 100, BaseAlpha: 0.08}

	tests := []struct {
		name     string
		dist     float64
		want     float64
		wantLink bool
	}{
		{"coincident", 0, 0.08, true},
		{"half threshold", 50, 0.04, true},
		{"just inside", 99.999, 0.08 * (1 - 0.99999), true},
		{"at threshold", 100, 0, false},
		{"beyond", 140, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ps := []components.Particle{particleAt(10, 10, 0, 0), particleAt(10+tc.dist, 10, 0, 0)}
			links := collect(BruteLinks(ps, params))
			if !tc.wantLink {
				if len(links) != 0 {
					t.Errorf("expected pair excluded, got %v", links)
				}
				return
			}
			if len(links) != 1 {
				t.Fatalf("expected one link, got %d", len(links))
			}
			if math.Abs(links[0].Alpha-tc.want) > 1e-12 {
				t.Errorf("expected alpha %v, got %v", tc.want, links[0].Alpha)
			}
		})
	}
}

func TestBruteLinksDiagonalThreshold(t *testing.T) {
	params := LinkParams{Threshold: 100, BaseAlpha: 0.08}
	// 60-80-100 triangle: exactly at threshold, excluded.
	ps := []components.Particle{particleAt(0, 0, 0, 0), particleAt(60, 80, 0, 0)}
	if links := collect(BruteLinks(ps, params)); len(links) != 0 {
		t.Errorf("expected diagonal pair at threshold excluded, got %v", links)
	}
}

func TestBruteLinksPairsOnce(t *testing.T) {
	params := LinkParams{Threshold: 1000, BaseAlpha: 0.1}
	ps := make([]components.Particle, 12)
	for i := range ps {
		ps[i] = particleAt(float64(i), float64(i), 0, 0)
	}

	seen := make(map[[2]int]bool)
	for _, l := range collect(BruteLinks(ps, params)) {
		if l.A >= l.B {
			t.Errorf("link (%d,%d) not ordered", l.A, l.B)
		}
		key := [2]int{l.A, l.B}
		if seen[key] {
			t.Errorf("pair (%d,%d) emitted twice", l.A, l.B)
		}
		seen[key] = true
	}
	if want := len(ps) * (len(ps) - 1) / 2; len(seen) != want {
		t.Errorf("expected %d pairs, got %d", want, len(seen))
	}
}

func TestBruteLinksStopsEarly(t *testing.T) {
	params := LinkParams{Threshold: 1000, BaseAlpha: 0.1}
	ps := []components.Particle{particleAt(0, 0, 0, 0), particleAt(1, 0, 0, 0), particleAt(2, 0, 0, 0)}

	n := 0
	for range BruteLinks(ps, params) {
		n++
		break
	}
	if n != 1 {
		t.Errorf("expected iteration to stop after 1, got %d", n)
	}
}

func TestLinksDeterministic(t *testing.T) {
	surface := components.Surface{W: 200, H: 100}
	run := func() [][]Link {
		f := NewFieldFrom([]components.Particle{
			particleAt(10, 10, 0.7, 0.2),
			particleAt(60, 40, -0.4, 0.1),
			particleAt(150, 90, 0.3, -0.6),
		})
		var frames [][]Link
		for tick := 0; tick < 300; tick++ {
			f.Advance(surface)
			frames = append(frames, collect(BruteLinks(f.Particles(), DefaultLinkParams())))
		}
		return frames
	}

	a, b := run(), run()
	for tick := range a {
		if len(a[tick]) != len(b[tick]) {
			t.Fatalf("tick %d: link count differs %d vs %d", tick, len(a[tick]), len(b[tick]))
		}
		for i := range a[tick] {
			if a[tick][i] != b[tick][i] {
				t.Fatalf("tick %d: link %d differs %v vs %v", tick, i, a[tick][i], b[tick][i])
			}
		}
	}
}

func TestLinkParamsValidate(t *testing.T) {
	if err := DefaultLinkParams().Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
	for _, p := range []LinkParams{
		{Threshold: 0, BaseAlpha: 0.1},
		{Threshold: -5, BaseAlpha: 0.1},
		{Threshold: math.Inf(1), BaseAlpha: 0.1},
		{Threshold: 100, BaseAlpha: -0.1},
		{Threshold: 100, BaseAlpha: 1.5},
	} {
		if err := p.Validate(); err == nil {
			t.Errorf("expected %+v to be rejected", p)
		}
	}
}

func TestLinkerGridMatchesBrute(t *testing.T) {
	params := DefaultLinkParams()
	surfaces := []components.Surface{
		{W: 1280, H: 720},
		{W: 333, H: 97},
		{W: 50, H: 50},
	}

	for _, surface := range surfaces {
		fp := DefaultFieldParams()
		fp.Count = 300
		f, err := NewField(fp, surface, rand.New(rand.NewSource(int64(surface.W))))
		if err != nil {
			t.Fatalf("NewField: %v", err)
		}

		brute := NewLinker(params, false)
		grid := NewLinker(params, true)
		for tick := 0; tick < 20; tick++ {
			f.Advance(surface)
			want := linkSet(collect(brute.Links(f.Particles(), surface)))
			got := linkSet(collect(grid.Links(f.Particles(), surface)))
			if len(got) != len(want) {
				t.Fatalf("surface %v tick %d: grid %d links, brute %d", surface, tick, len(got), len(want))
			}
			for k, l := range want {
				if got[k] != l {
					t.Fatalf("surface %v tick %d: pair %v grid %v brute %v", surface, tick, k, got[k], l)
				}
			}
		}
	}
}

func linkSet(links []Link) map[[2]int]Link {
	m := make(map[[2]int]Link, len(links))
	for _, l := range links {
		m[[2]int{l.A, l.B}] = l
	}
	return m
}
