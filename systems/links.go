package systems

import (
	"fmt"
	"iter"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/drift/components"
)

// Link defaults.
const (
	DefaultLinkThreshold = 100.0
	DefaultLinkAlpha     = 0.08
)

// LinkParams controls which pairs are linked and how strongly.
type LinkParams struct {
	Threshold float64 // pairs at or beyond this distance are not linked
	BaseAlpha float64 // alpha at distance zero
}

// DefaultLinkParams returns the stock link configuration.
func DefaultLinkParams() LinkParams {
	return LinkParams{Threshold: DefaultLinkThreshold, BaseAlpha: DefaultLinkAlpha}
}

// Validate checks the link parameters.
func (p LinkParams) Validate() error {
	if !(p.Threshold > 0) || !finite(p.Threshold) {
		return fmt.Errorf("link threshold %v must be positive", p.Threshold)
	}
	if !(p.BaseAlpha >= 0) || p.BaseAlpha > 1 {
		return fmt.Errorf("link base alpha %v must lie in [0, 1]", p.BaseAlpha)
	}
	return nil
}

// Link is an unordered particle pair closer than the threshold. A < B.
type Link struct {
	A, B  int
	Dist  float64
	Alpha float64
}

// link tests one pair. Both the brute-force loop and the grid go through
// here so their results are bit-identical.
func (p LinkParams) link(a, b int, pa, pb r2.Vec) (Link, bool) {
	d := r2.Sub(pa, pb)
	// Hypot(dx, dy) >= max(|dx|, |dy|), so this rejection is exact.
	if d.X >= p.Threshold || -d.X >= p.Threshold || d.Y >= p.Threshold || -d.Y >= p.Threshold {
		return Link{}, false
	}
	dist := r2.Norm(d)
	if !(dist < p.Threshold) {
		return Link{}, false
	}
	return Link{A: a, B: b, Dist: dist, Alpha: p.BaseAlpha * (1 - dist/p.Threshold)}, true
}

// BruteLinks yields every linked pair by testing all i<j index pairs,
// O(n^2) in particle count. LinkGrid gives the same result for large fields.
func BruteLinks(particles []components.Particle, p LinkParams) iter.Seq[Link] {
	return func(yield func(Link) bool) {
		if !(p.Threshold > 0) {
			return
		}
		for i := 0; i < len(particles); i++ {
			for j := i + 1; j < len(particles); j++ {
				l, ok := p.link(i, j, particles[i].Pos, particles[j].Pos)
				if !ok {
					continue
				}
				if !yield(l) {
					return
				}
			}
		}
	}
}

// Linker produces the per-tick link set, optionally through a LinkGrid.
type Linker struct {
	params LinkParams
	grid   *LinkGrid
}

// NewLinker creates a linker. useGrid enables bucketed lookup.
func NewLinker(p LinkParams, useGrid bool) *Linker {
	l := &Linker{params: p}
	if useGrid {
		l.grid = NewLinkGrid(p)
	}
	return l
}

// Params returns the link parameters.
func (l *Linker) Params() LinkParams {
	return l.params
}

// Links yields the link set for the particles on the given surface.
// The grid path falls back to brute force on a degenerate surface.
func (l *Linker) Links(particles []components.Particle, surface components.Surface) iter.Seq[Link] {
	if l.grid == nil || !surface.Valid() {
		return BruteLinks(particles, l.params)
	}
	l.grid.Rebuild(particles, surface)
	return l.grid.Links(particles)
}
