package game

import "github.com/pthm-cable/drift/telemetry"

// flushTelemetry closes the tick's link sample and hands finished windows to
// the OnWindow callback.
func (b *Backdrop) flushTelemetry() {
	stats := b.opts.Stats
	if stats == nil {
		return
	}
	stats.EndTick()
	if !stats.ShouldFlush(b.ticks) {
		return
	}

	window := stats.Flush(b.ticks, b.field.Len(), b.surface)
	if b.opts.OnWindow == nil {
		return
	}
	if b.opts.Perf != nil {
		b.opts.OnWindow(window, b.opts.Perf.Stats())
		return
	}
	b.opts.OnWindow(window, telemetry.PerfStats{})
}
