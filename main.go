package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/pthm-cable/drift/config"
	"github.com/pthm-cable/drift/game"
	"github.com/pthm-cable/drift/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	backend := flag.String("backend", "raylib", "Render backend: raylib, terminal or headless")
	logStats := flag.Bool("log-stats", false, "Output window stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Uint64("max-ticks", 0, "Stop after N ticks (0 = unlimited)")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// The terminal backend owns stdout
	logOut, closeLog, err := logWriter(*backend, *outputDir)
	if err != nil {
		slog.Error("failed to open log", "error", err)
		os.Exit(1)
	}
	defer closeLog()
	slog.SetDefault(slog.New(slog.NewJSONHandler(logOut, nil)))

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	statsWindowSec := cfg.Telemetry.StatsWindow
	if *statsWindow > 0 {
		statsWindowSec = *statsWindow
	}

	output, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := output.Close(); err != nil {
			slog.Error("failed to close output", "error", err)
		}
	}()
	if err := output.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config", "error", err)
	}

	tps := cfg.Screen.TargetFPS
	if *backend == "terminal" {
		tps = cfg.Terminal.FPS
	}

	opts := game.OptionsFromConfig(cfg, rngSeed)
	perf := telemetry.NewPerfCollector(max(tps, 1))
	opts.Perf = perf
	opts.Stats = telemetry.NewCollector(statsWindowSec, tps)
	opts.OnWindow = func(w telemetry.WindowStats, p telemetry.PerfStats) {
		if *logStats {
			slog.Info("window", "stats", w, "perf", p)
		}
		if err := output.WriteStats(w); err != nil {
			slog.Error("failed to write stats", "error", err)
		}
		if err := output.WritePerf(p, w.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}

	b := game.New(opts)
	slog.Info("starting backdrop",
		"backend", *backend,
		"seed", rngSeed,
		"particles", cfg.Field.Count,
		"stats_window", statsWindowSec,
		"max_ticks", *maxTicks,
	)

	switch *backend {
	case "raylib":
		err = runRaylib(b, cfg, perf, *maxTicks)
	case "terminal":
		err = runTerminal(b, cfg, *maxTicks)
	case "headless":
		err = runHeadless(b, cfg, *maxTicks)
	default:
		err = fmt.Errorf("unknown backend %q", *backend)
	}
	if err != nil {
		slog.Error("backdrop stopped", "error", err)
		os.Exit(1)
	}
	slog.Info("backdrop stopped", "ticks", b.Ticks())
}

// logWriter picks the log destination. The terminal backend draws on stdout,
// so its logs go to the output directory or nowhere.
func logWriter(backend, outputDir string) (io.Writer, func(), error) {
	if backend != "terminal" {
		return os.Stdout, func() {}, nil
	}
	if outputDir == "" {
		return io.Discard, func() {}, nil
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, nil, err
	}
	f, err := os.Create(filepath.Join(outputDir, "drift.log"))
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
