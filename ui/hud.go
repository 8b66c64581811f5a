// Package ui draws the optional raylib status overlay.
package ui

import (
	"fmt"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/drift/components"
	"github.com/pthm-cable/drift/telemetry"
)

const statusBarHeight = 24

// HUDData holds all the data needed to render the status bar.
type HUDData struct {
	Title     string
	Ticks     uint64
	FPS       int32
	Particles int
	Links     int
	Surface   components.Surface
	Perf      telemetry.PerfStats
}

// HUD renders the status overlay. It has no controls.
type HUD struct {
	showPerf bool
}

// NewHUD creates a new HUD renderer.
func NewHUD(showPerf bool) *HUD {
	return &HUD{showPerf: showPerf}
}

// Draw renders the HUD along the bottom edge of the window.
func (h *HUD) Draw(data HUDData) {
	w := float32(data.Surface.W)
	y := float32(data.Surface.H) - statusBarHeight
	gui.StatusBar(rl.Rectangle{X: 0, Y: y, Width: w, Height: statusBarHeight}, StatusText(data))

	if h.showPerf {
		h.drawPerf(data.Perf, 10, 10)
	}
}

// drawPerf lists the average time per tick phase.
func (h *HUD) drawPerf(stats telemetry.PerfStats, x, y int32) {
	rl.DrawText(fmt.Sprintf("Tick: %s", stats.AvgTickDuration.Round(time.Microsecond)), x, y, 14, rl.Yellow)
	y += 16
	for _, line := range PhaseLines(stats) {
		rl.DrawText(line, x, y, 12, rl.LightGray)
		y += 14
	}
}

// StatusText formats the status bar line.
func StatusText(data HUDData) string {
	return fmt.Sprintf("%s | Tick: %d | FPS: %d | Particles: %d | Links: %d | %.0fx%.0f",
		data.Title, data.Ticks, data.FPS, data.Particles, data.Links, data.Surface.W, data.Surface.H)
}

// PhaseLines formats one line per tick phase: name, average duration and
// share of the tick.
func PhaseLines(stats telemetry.PerfStats) []string {
	lines := make([]string, 0, len(stats.PhaseAvg))
	for i, avg := range stats.PhaseAvg {
		lines = append(lines, fmt.Sprintf("%-8s %8s %5.1f%%",
			telemetry.Phase(i), avg.Round(time.Microsecond), stats.PhasePct[i]))
	}
	return lines
}
