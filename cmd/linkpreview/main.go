// Link preview tool - interactive tuning of the particle network with sliders.
//
// Usage: go run ./cmd/linkpreview
package main

import (
	"fmt"
	"log/slog"
	"os"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/drift/config"
	"github.com/pthm-cable/drift/game"
	"github.com/pthm-cable/drift/renderer"
)

const (
	windowWidth  = 1100
	windowHeight = 720
	previewW     = 720
	previewH     = 540
	panelWidth   = windowWidth - previewW - 30
)

// PreviewParams holds the tunable backdrop parameters.
type PreviewParams struct {
	Count     int
	Threshold float32
	BaseAlpha float32
	LineWidth float32
	Seed      int64
	UseGrid   bool
}

func defaultParams(cfg *config.Config) PreviewParams {
	return PreviewParams{
		Count:     cfg.Field.Count,
		Threshold: float32(cfg.Links.Threshold),
		BaseAlpha: float32(cfg.Links.BaseAlpha),
		LineWidth: float32(cfg.Links.LineWidth),
		Seed:      12345,
		UseGrid:   cfg.Links.UseGrid,
	}
}

// slider draws a labelled slider and returns the new value.
func slider(x float32, y *float32, label, lo, hi string, value, min, max float32, format string) float32 {
	rl.DrawText(label, int32(x), int32(*y), 14, rl.Gray)
	*y += 18
	v := gui.SliderBar(
		rl.Rectangle{X: x, Y: *y, Width: float32(panelWidth - 80), Height: 20},
		lo, hi,
		value, min, max,
	)
	rl.DrawText(fmt.Sprintf(format, value), int32(x+float32(panelWidth-70)), int32(*y+2), 16, rl.DarkGray)
	*y += 35
	return v
}

func yamlText(p PreviewParams) string {
	return fmt.Sprintf(`field:
  count: %d
links:
  threshold: %.0f
  base_alpha: %.3f
  line_width: %.2f
  use_grid: %t`,
		p.Count, p.Threshold, p.BaseAlpha, p.LineWidth, p.UseGrid)
}

func main() {
	if err := config.Init(""); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(windowWidth, windowHeight, "Link Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	canvas, err := renderer.NewRaylibCanvas(cfg.Derived.Background)
	if err != nil {
		slog.Error("canvas unavailable", "error", err)
		os.Exit(1)
	}
	viewport := renderer.NewFixedViewport(previewW, previewH)
	sched := game.NewFrameScheduler()

	params := defaultParams(cfg)
	var b *game.Backdrop
	remount := func() {
		if b != nil {
			b.Unmount()
		}
		opts := game.OptionsFromConfig(cfg, params.Seed)
		opts.Field.Count = params.Count
		opts.Links.Threshold = float64(params.Threshold)
		opts.Links.BaseAlpha = float64(params.BaseAlpha)
		opts.LineWidth = float64(params.LineWidth)
		opts.UseGrid = params.UseGrid
		b = game.New(opts)
		if err := b.Mount(canvas, viewport, sched); err != nil {
			slog.Error("mount failed", "error", err)
		}
	}
	remount()

	for !rl.WindowShouldClose() {
		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		// Preview, clipped to its rectangle
		rl.BeginScissorMode(0, 0, previewW, previewH)
		sched.Frame()
		rl.EndScissorMode()
		rl.DrawRectangleLines(0, 0, previewW, previewH, rl.DarkGray)

		statsY := int32(previewH + 25)
		rl.DrawText(fmt.Sprintf("Tick: %d  Links: %d  FPS: %d", b.Ticks(), b.LastLinks(), rl.GetFPS()), 15, statsY, 16, rl.DarkGray)

		// Control panel
		panelX := float32(previewW + 20)
		panelY := float32(10)
		rl.DrawText("Backdrop Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		prev := params
		params.Count = int(slider(panelX, &panelY, "Particles", "0", "600", float32(params.Count), 0, 600, "%.0f"))
		params.Threshold = slider(panelX, &panelY, "Link threshold", "10", "300", params.Threshold, 10, 300, "%.0f")
		params.BaseAlpha = slider(panelX, &panelY, "Base alpha", "0.01", "0.5", params.BaseAlpha, 0.01, 0.5, "%.3f")
		params.LineWidth = slider(panelX, &panelY, "Line width", "0.1", "3", params.LineWidth, 0.1, 3, "%.2f")
		params.UseGrid = gui.CheckBox(rl.Rectangle{X: panelX, Y: panelY, Width: 20, Height: 20}, "Bucket grid", params.UseGrid)
		panelY += 40

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Random Seed") {
			params.Seed = int64(rl.GetRandomValue(0, 99999))
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = defaultParams(cfg)
		}
		panelY += 55

		if params != prev {
			remount()
		}

		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25
		rl.DrawText(yamlText(params), int32(panelX), int32(panelY), 14, rl.Gray)

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(yamlText(params))
		}

		rl.EndDrawing()
	}
	b.Unmount()
}
