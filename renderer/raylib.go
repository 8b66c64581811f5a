package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/pthm-cable/drift/components"
)

// RaylibCanvas draws onto the current raylib window.
// Calls must happen between rl.BeginDrawing and rl.EndDrawing.
type RaylibCanvas struct {
	background rl.Color
}

// NewRaylibCanvas attaches to the open raylib window.
func NewRaylibCanvas(background colorful.Color) (*RaylibCanvas, error) {
	if !rl.IsWindowReady() {
		return nil, ErrSurfaceUnavailable
	}
	return &RaylibCanvas{background: RaylibBackground(background)}, nil
}

// RaylibBackground converts an opaque colour for rl.ClearBackground.
func RaylibBackground(c colorful.Color) rl.Color {
	return raylibColor(components.Paint{Color: c, Alpha: 1})
}

// Clear fills the window with the background colour.
func (c *RaylibCanvas) Clear() {
	rl.ClearBackground(c.background)
}

// FillCircle draws a filled circle with the paint's colour and alpha.
func (c *RaylibCanvas) FillCircle(x, y, r float64, p components.Paint) {
	rl.DrawCircleV(rl.Vector2{X: float32(x), Y: float32(y)}, float32(r), raylibColor(p))
}

// StrokeLine draws a straight line of the given thickness.
func (c *RaylibCanvas) StrokeLine(x1, y1, x2, y2, width float64, p components.Paint) {
	rl.DrawLineEx(
		rl.Vector2{X: float32(x1), Y: float32(y1)},
		rl.Vector2{X: float32(x2), Y: float32(y2)},
		float32(width),
		raylibColor(p),
	)
}

func raylibColor(p components.Paint) rl.Color {
	r, g, b, a := p.RGBA8()
	return rl.Color{R: r, G: g, B: b, A: a}
}

// RaylibWindow is the viewport of the raylib window.
// Poll must be called once per frame to pick up resizes.
type RaylibWindow struct {
	w, h     float64
	notifier resizeNotifier
}

// NewRaylibWindow reads the current window size.
func NewRaylibWindow() *RaylibWindow {
	return &RaylibWindow{
		w: float64(rl.GetScreenWidth()),
		h: float64(rl.GetScreenHeight()),
	}
}

// Size returns the last observed window size.
func (v *RaylibWindow) Size() (float64, float64) {
	return v.w, v.h
}

// OnResize registers a resize listener.
func (v *RaylibWindow) OnResize(fn func(w, h float64)) func() {
	return v.notifier.add(fn)
}

// Poll checks for a window resize and notifies listeners.
func (v *RaylibWindow) Poll() {
	if !rl.IsWindowResized() {
		return
	}
	w := float64(rl.GetScreenWidth())
	h := float64(rl.GetScreenHeight())
	if w == v.w && h == v.h {
		return
	}
	v.w, v.h = w, h
	v.notifier.notify(w, h)
}
