package renderer

import "github.com/pthm-cable/drift/components"

// DrawStats counts canvas calls.
type DrawStats struct {
	Clears  int
	Circles int
	Lines   int
}

// DiscardCanvas drops every draw call and only counts them.
// Headless runs and tests draw onto it.
type DiscardCanvas struct {
	stats DrawStats
}

// NewDiscardCanvas creates a counting canvas.
func NewDiscardCanvas() *DiscardCanvas {
	return &DiscardCanvas{}
}

// Clear counts a clear.
func (c *DiscardCanvas) Clear() { c.stats.Clears++ }

// FillCircle counts a circle.
func (c *DiscardCanvas) FillCircle(x, y, r float64, p components.Paint) { c.stats.Circles++ }

// StrokeLine counts a line.
func (c *DiscardCanvas) StrokeLine(x1, y1, x2, y2, width float64, p components.Paint) {
	c.stats.Lines++
}

// Stats returns the call counts so far.
func (c *DiscardCanvas) Stats() DrawStats {
	return c.stats
}

// FixedViewport is a viewport whose size changes only through Resize.
type FixedViewport struct {
	w, h     float64
	notifier resizeNotifier
}

// NewFixedViewport creates a viewport of the given size.
func NewFixedViewport(w, h float64) *FixedViewport {
	return &FixedViewport{w: w, h: h}
}

// Size returns the current extent.
func (v *FixedViewport) Size() (float64, float64) {
	return v.w, v.h
}

// OnResize registers a resize listener.
func (v *FixedViewport) OnResize(fn func(w, h float64)) func() {
	return v.notifier.add(fn)
}

// Resize changes the extent and notifies listeners.
func (v *FixedViewport) Resize(w, h float64) {
	v.w, v.h = w, h
	v.notifier.notify(w, h)
}

// Listeners returns the number of registered resize listeners.
func (v *FixedViewport) Listeners() int {
	return v.notifier.count()
}
