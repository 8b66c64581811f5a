package game

import "github.com/pthm-cable/drift/telemetry"

// tick advances the field, redraws the frame and schedules the next tick.
func (b *Backdrop) tick() {
	if !b.mounted {
		return
	}
	b.pending = 0

	perf := b.opts.Perf
	if perf != nil {
		perf.StartTick()
		perf.StartPhase(telemetry.PhaseAdvance)
	}

	if b.field.Advance(b.surface) {
		b.collectLinks()
		b.draw()
	} else {
		// Degenerate surface: nothing to draw until a real extent arrives.
		b.links = b.links[:0]
		b.lastLinks = 0
		if b.opts.Stats != nil {
			b.opts.Stats.RecordDeferred()
		}
	}

	if perf != nil {
		perf.EndTick()
	}
	b.ticks++
	b.flushTelemetry()

	b.pending = b.sched.RequestTick(b.tickFn)
}

// collectLinks computes this tick's proximity links into the reused buffer.
func (b *Backdrop) collectLinks() {
	if b.opts.Perf != nil {
		b.opts.Perf.StartPhase(telemetry.PhaseLinks)
	}
	stats := b.opts.Stats

	b.links = b.links[:0]
	for l := range b.linker.Links(b.field.Particles(), b.surface) {
		b.links = append(b.links, l)
		if stats != nil {
			stats.RecordLink(l.Dist, l.Alpha)
		}
	}
	b.lastLinks = len(b.links)
}

// draw clears the canvas, fills one circle per particle in its own paint,
// then strokes every link in the link colour faded by distance.
func (b *Backdrop) draw() {
	if b.opts.Perf != nil {
		b.opts.Perf.StartPhase(telemetry.PhaseDraw)
	}
	particles := b.field.Particles()

	b.canvas.Clear()
	for _, p := range particles {
		b.canvas.FillCircle(p.Pos.X, p.Pos.Y, p.Radius, p.Paint)
	}
	for _, l := range b.links {
		pa, pb := particles[l.A].Pos, particles[l.B].Pos
		b.canvas.StrokeLine(pa.X, pa.Y, pb.X, pb.Y, b.opts.LineWidth, b.linkPaint.WithAlpha(l.Alpha))
	}
}
