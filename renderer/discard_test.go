package renderer

import (
	"testing"

	"github.com/pthm-cable/drift/components"
)

func TestDiscardCanvasCounts(t *testing.T) {
	c := NewDiscardCanvas()
	c.Clear()
	c.FillCircle(1, 1, 1, components.Paint{})
	c.FillCircle(2, 2, 1, components.Paint{})
	c.StrokeLine(0, 0, 1, 1, 0.5, components.Paint{})

	want := DrawStats{Clears: 1, Circles: 2, Lines: 1}
	if got := c.Stats(); got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestFixedViewportListeners(t *testing.T) {
	v := NewFixedViewport(200, 100)

	var seen [][2]float64
	cancelA := v.OnResize(func(w, h float64) { seen = append(seen, [2]float64{w, h}) })
	cancelB := v.OnResize(func(w, h float64) {})
	if v.Listeners() != 2 {
		t.Fatalf("expected 2 listeners, got %d", v.Listeners())
	}

	v.Resize(300, 150)
	if w, h := v.Size(); w != 300 || h != 150 {
		t.Errorf("expected 300x150, got %vx%v", w, h)
	}
	if len(seen) != 1 || seen[0] != [2]float64{300, 150} {
		t.Errorf("unexpected notifications %v", seen)
	}

	cancelA()
	cancelA()
	cancelB()
	if v.Listeners() != 0 {
		t.Errorf("expected no listeners, got %d", v.Listeners())
	}
}
