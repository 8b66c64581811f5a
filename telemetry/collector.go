package telemetry

import "github.com/pthm-cable/drift/components"

// Collector accumulates per-tick link samples and produces WindowStats.
type Collector struct {
	windowTicks     uint64
	windowStartTick uint64

	deferred   int
	linkCounts []float64
	linkDists  []float64
	linkAlphas []float64

	tickLinks int
}

// NewCollector creates a collector that flushes every windowSec seconds
// of ticks at the given tick rate.
func NewCollector(windowSec float64, ticksPerSec int) *Collector {
	if ticksPerSec < 1 {
		ticksPerSec = 60
	}
	ticks := uint64(windowSec * float64(ticksPerSec))
	if ticks < 1 {
		ticks = 1
	}
	return &Collector{
		windowTicks: ticks,
		linkCounts:  make([]float64, 0, ticks),
	}
}

// WindowTicks returns the window length in ticks.
func (c *Collector) WindowTicks() uint64 {
	return c.windowTicks
}

// RecordLink records one drawn link.
func (c *Collector) RecordLink(dist, alpha float64) {
	c.linkDists = append(c.linkDists, dist)
	c.linkAlphas = append(c.linkAlphas, alpha)
	c.tickLinks++
}

// EndTick closes the per-tick link count.
func (c *Collector) EndTick() {
	c.linkCounts = append(c.linkCounts, float64(c.tickLinks))
	c.tickLinks = 0
}

// RecordDeferred records a tick skipped for a degenerate surface.
func (c *Collector) RecordDeferred() {
	c.deferred++
}

// ShouldFlush reports whether the window ending at tick is complete.
func (c *Collector) ShouldFlush(tick uint64) bool {
	return tick-c.windowStartTick >= c.windowTicks
}

// Flush computes stats for the current window and starts a new one.
// Sample buffers keep their capacity.
func (c *Collector) Flush(tick uint64, particles int, surface components.Surface) WindowStats {
	stats := computeWindowStats(c.linkCounts, c.linkDists, c.linkAlphas)
	stats.WindowStartTick = c.windowStartTick
	stats.WindowEndTick = tick
	stats.Particles = particles
	stats.SurfaceW = surface.W
	stats.SurfaceH = surface.H
	stats.DeferredTicks = c.deferred

	c.windowStartTick = tick
	c.deferred = 0
	c.linkCounts = c.linkCounts[:0]
	c.linkDists = c.linkDists[:0]
	c.linkAlphas = c.linkAlphas[:0]
	c.tickLinks = 0
	return stats
}
