package game

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/pthm-cable/drift/components"
	"github.com/pthm-cable/drift/renderer"
	"github.com/pthm-cable/drift/systems"
)

// Mount attaches the backdrop to a surface, seeds the field at the current
// viewport size, subscribes to resizes and schedules the first tick.
// A missing canvas or viewport fails with renderer.ErrSurfaceUnavailable.
func (b *Backdrop) Mount(canvas renderer.Canvas, viewport renderer.Viewport, sched Scheduler) error {
	if b.mounted {
		return ErrAlreadyMounted
	}
	if canvas == nil || viewport == nil {
		return renderer.ErrSurfaceUnavailable
	}
	if sched == nil {
		return errors.New("nil scheduler")
	}
	if err := b.opts.Links.Validate(); err != nil {
		return fmt.Errorf("links: %w", err)
	}

	w, h := viewport.Size()
	surface := components.Surface{W: w, H: h}

	var field *systems.Field
	if b.opts.Particles != nil {
		field = systems.NewFieldFrom(slices.Clone(b.opts.Particles))
	} else {
		var err error
		field, err = systems.NewField(b.opts.Field, surface, newRand(b.opts.Seed))
		if err != nil {
			return fmt.Errorf("building field: %w", err)
		}
	}

	b.canvas = canvas
	b.viewport = viewport
	b.sched = sched
	b.field = field
	b.linker = systems.NewLinker(b.opts.Links, b.opts.UseGrid)
	b.surface = surface
	b.detach = viewport.OnResize(b.Resize)
	b.mounted = true
	b.pending = sched.RequestTick(b.tickFn)

	slog.Debug("backdrop mounted",
		"particles", field.Len(),
		"width", w,
		"height", h,
		"grid", b.opts.UseGrid,
	)
	return nil
}

// Resize changes the wrap boundaries used by the next tick.
// Particle positions are left alone.
func (b *Backdrop) Resize(w, h float64) {
	if !b.mounted {
		return
	}
	b.surface = components.Surface{W: w, H: h}
	slog.Debug("backdrop resized", "width", w, "height", h)
}

// Unmount cancels the pending tick and detaches the resize listener.
// No tick runs after Unmount returns. Calling it again is a no-op.
func (b *Backdrop) Unmount() {
	if !b.mounted {
		return
	}
	b.mounted = false
	b.sched.CancelTick(b.pending)
	b.pending = 0
	if b.detach != nil {
		b.detach()
		b.detach = nil
	}

	b.canvas = nil
	b.viewport = nil
	b.sched = nil
	b.field = nil
	b.linker = nil
	b.links = nil

	slog.Debug("backdrop unmounted", "ticks", b.ticks)
}
