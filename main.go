package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/bugworld/config"
	"github.com/pthm-cable/bugworld/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output window stats via slog")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	metricsPath := flag.String("log", "", "Per-tick metrics log (empty = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for telemetry CSV and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	stepsPerUpdate := flag.Int("steps-per-update", 1, "Simulation ticks per update call (higher = faster headless runs)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// Any positional argument turns the metrics log off
	logPath := cfg.Telemetry.LogPath
	if *metricsPath != "" {
		logPath = *metricsPath
	}
	if flag.NArg() > 0 {
		logPath = ""
	}

	opts := game.Options{
		Seed:           rngSeed,
		Headless:       *headless,
		StepsPerUpdate: *stepsPerUpdate,
		LogStats:       *logStats,
		MetricsLogPath: logPath,
		OutputDir:      *outputDir,
	}

	if *headless {
		g := game.NewGameWithOptions(opts)
		defer g.Unload()

		slog.Info("starting headless simulation",
			"seed", rngSeed,
			"world", cfg.World,
			"max_ticks", *maxTicks,
			"steps_per_update", *stepsPerUpdate,
			"metrics_log", logPath,
		)

		for {
			g.UpdateHeadless()

			if *maxTicks > 0 && int(g.Tick()) >= *maxTicks {
				slog.Info("max ticks reached", "tick", g.Tick())
				return
			}
			if snap := g.Snapshot(); snap.Extinct() {
				slog.Info("population extinct", "tick", snap.Tick)
				return
			}
		}
	}

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Bug Simulation")
	defer rl.CloseWindow()

	rl.MaximizeWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g := game.NewGameWithOptions(opts)
	defer g.Unload()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()

		if *maxTicks > 0 && int(g.Tick()) >= *maxTicks {
			break
		}
	}
}
