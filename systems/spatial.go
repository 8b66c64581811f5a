package systems

import (
	"iter"
	"math"

	"github.com/pthm-cable/drift/components"
)

// maxGridCells bounds the bucket count on very large surfaces.
const maxGridCells = 1 << 16

// LinkGrid buckets particle indices into square cells at least one link
// threshold wide, so every linked pair sits in the same or an adjacent cell.
// It is not toroidal: links never cross the wrap seam.
type LinkGrid struct {
	params   LinkParams
	cellSize float64
	cols     int
	rows     int
	surface  components.Surface
	cells    [][]int32
}

// NewLinkGrid creates an empty grid. Rebuild sizes it.
func NewLinkGrid(p LinkParams) *LinkGrid {
	return &LinkGrid{params: p}
}

// Resize lays out cells for the surface. Cell storage is reused when the
// layout does not change.
func (g *LinkGrid) Resize(surface components.Surface) {
	if surface == g.surface && g.cells != nil {
		return
	}
	g.surface = surface

	// Sized in float64 so huge finite extents cannot overflow int.
	cellSize := g.params.Threshold
	fc := math.Floor(surface.W/cellSize) + 1
	fr := math.Floor(surface.H/cellSize) + 1
	for fc*fr > maxGridCells {
		cellSize *= 2
		fc = math.Floor(surface.W/cellSize) + 1
		fr = math.Floor(surface.H/cellSize) + 1
	}
	cols, rows := int(fc), int(fr)

	if cols == g.cols && rows == g.rows && g.cells != nil {
		g.cellSize = cellSize
		return
	}
	g.cellSize = cellSize
	g.cols = cols
	g.rows = rows
	g.cells = make([][]int32, cols*rows)
	for i := range g.cells {
		g.cells[i] = make([]int32, 0, 8) // pre-allocate small capacity
	}
}

// Rebuild clears the grid and inserts every particle index.
func (g *LinkGrid) Rebuild(particles []components.Particle, surface components.Surface) {
	g.Resize(surface)
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
	for i := range particles {
		c, r := g.cell(particles[i].Pos.X, particles[i].Pos.Y)
		idx := r*g.cols + c
		g.cells[idx] = append(g.cells[idx], int32(i))
	}
}

// Links yields the same pairs, with the same alpha, as BruteLinks.
// Pair order differs. particles must be the slice passed to Rebuild.
func (g *LinkGrid) Links(particles []components.Particle) iter.Seq[Link] {
	return func(yield func(Link) bool) {
		if g.cells == nil || !(g.params.Threshold > 0) {
			return
		}
		for i := range particles {
			pi := particles[i].Pos
			col, row := g.cell(pi.X, pi.Y)
			for dr := -1; dr <= 1; dr++ {
				r := row + dr
				if r < 0 || r >= g.rows {
					continue
				}
				for dc := -1; dc <= 1; dc++ {
					c := col + dc
					if c < 0 || c >= g.cols {
						continue
					}
					for _, j32 := range g.cells[r*g.cols+c] {
						j := int(j32)
						if j <= i {
							continue
						}
						l, ok := g.params.link(i, j, pi, particles[j].Pos)
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
	}
}

// cell returns the clamped cell coordinates for a position. Clamping keeps
// out-of-surface positions in border cells without separating close pairs.
func (g *LinkGrid) cell(x, y float64) (col, row int) {
	col = clampIndex(math.Floor(x/g.cellSize), g.cols)
	row = clampIndex(math.Floor(y/g.cellSize), g.rows)
	return col, row
}

func clampIndex(v float64, n int) int {
	if !(v > 0) {
		return 0
	}
	if v >= float64(n-1) {
		return n - 1
	}
	return int(v)
}
