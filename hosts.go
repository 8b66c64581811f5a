package main

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/drift/config"
	"github.com/pthm-cable/drift/game"
	"github.com/pthm-cable/drift/renderer"
	"github.com/pthm-cable/drift/telemetry"
	"github.com/pthm-cable/drift/ui"
)

func reachedLimit(b *game.Backdrop, maxTicks uint64) bool {
	return maxTicks > 0 && b.Ticks() >= maxTicks
}

// mountOrWarn mounts the backdrop. An unavailable surface is logged and the
// host keeps running without it.
func mountOrWarn(b *game.Backdrop, canvas renderer.Canvas, viewport renderer.Viewport, sched game.Scheduler) error {
	err := b.Mount(canvas, viewport, sched)
	if errors.Is(err, renderer.ErrSurfaceUnavailable) {
		slog.Warn("drawing surface unavailable, running without backdrop")
		return nil
	}
	return err
}

// runRaylib drives the backdrop from the raylib frame loop. Ticks follow the
// target FPS and vsync, and stop while the window is minimised.
func runRaylib(b *game.Backdrop, cfg *config.Config, perf *telemetry.PerfCollector, maxTicks uint64) error {
	flags := uint32(rl.FlagVsyncHint | rl.FlagMsaa4xHint)
	if cfg.Screen.Resizable {
		flags |= rl.FlagWindowResizable
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	var canvas renderer.Canvas
	if c, err := renderer.NewRaylibCanvas(cfg.Derived.Background); err == nil {
		canvas = c
	}
	window := renderer.NewRaylibWindow()
	sched := game.NewFrameScheduler()
	if err := mountOrWarn(b, canvas, window, sched); err != nil {
		return err
	}
	defer b.Unmount()

	bg := renderer.RaylibBackground(cfg.Derived.Background)
	hud := ui.NewHUD(perf != nil)

	for !rl.WindowShouldClose() {
		window.Poll()

		rl.BeginDrawing()
		ran := false
		if !rl.IsWindowMinimized() {
			ran = sched.Frame()
		}
		if !ran {
			rl.ClearBackground(bg)
		}
		if cfg.Screen.HUD {
			hud.Draw(hudData(b, cfg.Screen.Title, rl.GetFPS(), perf))
		}
		rl.EndDrawing()

		if reachedLimit(b, maxTicks) {
			slog.Info("max ticks reached", "tick", b.Ticks())
			break
		}
	}
	return nil
}

// hudData collects the status bar contents for the current frame.
func hudData(b *game.Backdrop, title string, fps int32, perf *telemetry.PerfCollector) ui.HUDData {
	data := ui.HUDData{
		Title:   title,
		Ticks:   b.Ticks(),
		FPS:     fps,
		Links:   b.LastLinks(),
		Surface: b.Surface(),
	}
	if f := b.Field(); f != nil {
		data.Particles = f.Len()
	}
	if perf != nil {
		data.Perf = perf.Stats()
	}
	return data
}

// runTerminal drives the backdrop on a tcell screen. Terminals have no
// refresh signal, so a ticker at terminal.fps stands in for one. Events are
// read on their own goroutine and handled on the loop goroutine.
func runTerminal(b *game.Backdrop, cfg *config.Config, maxTicks uint64) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	topts := renderer.TerminalOptions{
		CellWidth:  cfg.Terminal.CellWidth,
		CellHeight: cfg.Terminal.CellHeight,
		AlphaGain:  cfg.Terminal.AlphaGain,
		Background: cfg.Derived.Background,
	}
	canvas, err := renderer.NewTerminalCanvas(screen, topts)
	if err != nil {
		return err
	}
	viewport := renderer.NewTerminalViewport(screen, topts)
	sched := game.NewFrameScheduler()
	if err := mountOrWarn(b, canvas, viewport, sched); err != nil {
		return err
	}
	defer b.Unmount()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(max(cfg.Terminal.FPS, 1)))
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return nil
				}
			case *tcell.EventResize:
				viewport.HandleResize()
			}

		case <-ticker.C:
			if sched.Frame() {
				screen.Show()
			}
			if reachedLimit(b, maxTicks) {
				slog.Info("max ticks reached", "tick", b.Ticks())
				return nil
			}
		}
	}
}

// runHeadless ticks as fast as possible onto a counting canvas.
func runHeadless(b *game.Backdrop, cfg *config.Config, maxTicks uint64) error {
	canvas := renderer.NewDiscardCanvas()
	viewport := renderer.NewFixedViewport(float64(cfg.Screen.Width), float64(cfg.Screen.Height))
	sched := game.NewFrameScheduler()
	if err := b.Mount(canvas, viewport, sched); err != nil {
		return err
	}
	defer b.Unmount()

	if maxTicks == 0 {
		slog.Warn("headless run without -max-ticks runs until killed")
	}
	for sched.Frame() {
		if reachedLimit(b, maxTicks) {
			slog.Info("max ticks reached", "tick", b.Ticks())
			break
		}
	}

	stats := canvas.Stats()
	slog.Info("headless run complete",
		"ticks", b.Ticks(),
		"clears", stats.Clears,
		"circles", stats.Circles,
		"lines", stats.Lines,
	)
	return nil
}
