// Package renderer provides the drawing surfaces the backdrop paints onto.
package renderer

import (
	"errors"

	"github.com/pthm-cable/drift/components"
)

// ErrSurfaceUnavailable is returned when no drawing surface can be attached.
var ErrSurfaceUnavailable = errors.New("drawing surface unavailable")

// Canvas is a 2D drawing surface. Paints are packed to native colours
// inside each call.
type Canvas interface {
	Clear()
	FillCircle(x, y, r float64, p components.Paint)
	StrokeLine(x1, y1, x2, y2, width float64, p components.Paint)
}

// Viewport reports the drawable extent and notifies on resize.
type Viewport interface {
	Size() (w, h float64)
	// OnResize registers fn and returns a function that removes it.
	// The returned function is safe to call more than once.
	OnResize(fn func(w, h float64)) (cancel func())
}

// resizeNotifier is the listener registry shared by the viewports.
type resizeNotifier struct {
	nextID    int
	listeners map[int]func(w, h float64)
}

func (n *resizeNotifier) add(fn func(w, h float64)) func() {
	if n.listeners == nil {
		n.listeners = make(map[int]func(w, h float64))
	}
	id := n.nextID
	n.nextID++
	n.listeners[id] = fn
	return func() { delete(n.listeners, id) }
}

func (n *resizeNotifier) notify(w, h float64) {
	for _, fn := range n.listeners {
		fn(w, h)
	}
}

func (n *resizeNotifier) count() int {
	return len(n.listeners)
}
