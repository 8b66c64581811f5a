package renderer

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/pthm-cable/drift/components"
)

// TerminalOptions maps surface units onto terminal cells.
type TerminalOptions struct {
	CellWidth  float64 // surface units per column
	CellHeight float64 // surface units per row
	AlphaGain  float64 // cells are coarse, so faint paints are boosted
	Background colorful.Color
}

// TerminalCanvas draws onto a tcell screen, one glyph per cell.
// Terminals have no alpha, so paints are blended against the background.
// Line width is ignored; lines are one cell wide.
type TerminalCanvas struct {
	screen tcell.Screen
	opts   TerminalOptions
	bg     tcell.Style
}

// NewTerminalCanvas attaches to an initialised screen.
func NewTerminalCanvas(screen tcell.Screen, opts TerminalOptions) (*TerminalCanvas, error) {
	if screen == nil {
		return nil, ErrSurfaceUnavailable
	}
	if opts.CellWidth <= 0 {
		opts.CellWidth = 8
	}
	if opts.CellHeight <= 0 {
		opts.CellHeight = 16
	}
	if opts.AlphaGain <= 0 {
		opts.AlphaGain = 1
	}
	return &TerminalCanvas{
		screen: screen,
		opts:   opts,
		bg:     tcell.StyleDefault.Background(tcellColor(opts.Background)),
	}, nil
}

// Clear blanks every cell to the background.
func (c *TerminalCanvas) Clear() {
	c.screen.Fill(' ', c.bg)
}

// FillCircle marks the cell under the centre. Larger radii get a heavier dot.
func (c *TerminalCanvas) FillCircle(x, y, r float64, p components.Paint) {
	col, row := c.cellOf(x, y)
	glyph := '·'
	if r >= 1 {
		glyph = '•'
	}
	c.screen.SetContent(col, row, glyph, nil, c.bg.Foreground(c.blend(p)))
}

// StrokeLine rasterises a line across cells without overwriting glyphs
// already drawn this frame.
func (c *TerminalCanvas) StrokeLine(x1, y1, x2, y2, width float64, p components.Paint) {
	style := c.bg.Foreground(c.blend(p))
	c0, r0 := c.cellOf(x1, y1)
	c1, r1 := c.cellOf(x2, y2)
	bresenham(c0, r0, c1, r1, func(col, row int) {
		if mainc, _, _, _ := c.screen.GetContent(col, row); mainc != ' ' {
			return
		}
		c.screen.SetContent(col, row, '∙', nil, style)
	})
}

func (c *TerminalCanvas) cellOf(x, y float64) (col, row int) {
	return int(x / c.opts.CellWidth), int(y / c.opts.CellHeight)
}

func (c *TerminalCanvas) blend(p components.Paint) tcell.Color {
	a := min(p.Alpha*c.opts.AlphaGain, 1)
	if a < 0 {
		a = 0
	}
	return tcellColor(c.opts.Background.BlendRgb(p.Color, a))
}

func tcellColor(col colorful.Color) tcell.Color {
	r, g, b := col.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// bresenham visits every cell on the line from (x0, y0) to (x1, y1).
func bresenham(x0, y0, x1, y1 int, visit func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		visit(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// TerminalViewport exposes a tcell screen's size in surface units.
// The host calls HandleResize when it receives a *tcell.EventResize.
type TerminalViewport struct {
	screen   tcell.Screen
	opts     TerminalOptions
	notifier resizeNotifier
}

// NewTerminalViewport wraps the screen. Cell sizes must match the canvas.
func NewTerminalViewport(screen tcell.Screen, opts TerminalOptions) *TerminalViewport {
	if opts.CellWidth <= 0 {
		opts.CellWidth = 8
	}
	if opts.CellHeight <= 0 {
		opts.CellHeight = 16
	}
	return &TerminalViewport{screen: screen, opts: opts}
}

// Size returns the screen extent in surface units.
func (v *TerminalViewport) Size() (float64, float64) {
	cols, rows := v.screen.Size()
	return float64(cols) * v.opts.CellWidth, float64(rows) * v.opts.CellHeight
}

// OnResize registers a resize listener.
func (v *TerminalViewport) OnResize(fn func(w, h float64)) func() {
	return v.notifier.add(fn)
}

// HandleResize syncs the screen and notifies listeners.
func (v *TerminalViewport) HandleResize() {
	v.screen.Sync()
	w, h := v.Size()
	v.notifier.notify(w, h)
}
