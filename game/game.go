// Package game wires the simulation to its run loop, input, rendering and
// telemetry output.
package game

import (
	"log/slog"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/bugworld/camera"
	"github.com/pthm-cable/bugworld/config"
	"github.com/pthm-cable/bugworld/inspector"
	"github.com/pthm-cable/bugworld/renderer"
	"github.com/pthm-cable/bugworld/sim"
	"github.com/pthm-cable/bugworld/systems"
	"github.com/pthm-cable/bugworld/telemetry"
	"github.com/pthm-cable/bugworld/ui"
)

// bookmarkHistory is the number of windows the bookmark detector averages over.
const bookmarkHistory = 10

// Options configures a Game.
type Options struct {
	Seed           int64
	Headless       bool
	StepsPerUpdate int    // Ticks per Update call
	LogStats       bool   // Log a line per telemetry window
	MetricsLogPath string // Per-tick tab-separated log ("" = disabled)
	OutputDir      string // telemetry.csv, perf.csv and config.yaml ("" = disabled)
}

// Game holds the simulation plus everything that presents it.
type Game struct {
	sim   *sim.Simulation
	state sim.RunState

	stepsPerUpdate int
	logStats       bool

	// Output
	metrics       *telemetry.MetricsLog
	outputManager *telemetry.OutputManager
	perf          *telemetry.PerfCollector
	bookmarks     *telemetry.BookmarkDetector

	// Rendering (nil when headless)
	camera     *camera.Camera
	world      *renderer.WorldRenderer
	hud        *ui.HUD
	statsPanel *ui.StatsPanel
	inspector  *inspector.Inspector

	screenWidth, screenHeight int32
}

// NewGameWithOptions seeds a world from the global config and opens the
// requested outputs. Output failures are logged and the output disabled.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()
	rng := rand.New(rand.NewSource(opts.Seed))

	world := sim.NewSimulation(cfg, rng)
	world.Seed(systems.NewFoodNoise(opts.Seed, cfg.Init.FoodNoiseScale))

	g := &Game{
		sim:            world,
		state:          sim.Running,
		stepsPerUpdate: opts.StepsPerUpdate,
		logStats:       opts.LogStats,
		perf:           telemetry.NewPerfCollector(cfg.Telemetry.WindowTicks),
		bookmarks:      telemetry.NewBookmarkDetector(bookmarkHistory),
		screenWidth:    int32(cfg.Screen.Width),
		screenHeight:   int32(cfg.Screen.Height),
	}
	if g.stepsPerUpdate < 1 {
		g.stepsPerUpdate = 1
	}
	world.SetPerf(g.perf)

	metrics, err := telemetry.NewMetricsLog(opts.MetricsLogPath)
	if err != nil {
		slog.Error("metrics log disabled", "error", err)
	}
	g.metrics = metrics

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("experiment output disabled", "error", err)
	}
	g.outputManager = om
	if err := g.outputManager.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	// Initial state before any tick
	g.writeMetrics(world.Snapshot())

	if !opts.Headless {
		if w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()); w > 0 && h > 0 {
			g.screenWidth, g.screenHeight = w, h
		}
		g.camera = camera.New(float32(g.screenWidth), g.worldViewHeight(),
			float32(cfg.World.Width), float32(cfg.World.Height))
		g.world = renderer.NewWorldRenderer(cfg.World.Width, cfg.World.Height)
		g.world.Init()
		g.hud = ui.NewHUD()
		g.statsPanel = ui.NewStatsPanel(10, 10, 260, cfg.Derived.Food, cfg.Derived.Poison)
		g.inspector = inspector.NewInspector(g.screenWidth)
	}

	return g
}

// worldViewHeight is the screen height left above the status bar.
func (g *Game) worldViewHeight() float32 {
	return float32(g.screenHeight - ui.StatusBarHeight)
}

// Update handles input and, unless paused, advances the simulation.
func (g *Game) Update() {
	g.handleInput()
	g.step()
}

// UpdateHeadless advances the simulation without touching raylib.
func (g *Game) UpdateHeadless() {
	g.step()
}

func (g *Game) step() {
	if g.state == sim.Paused {
		return
	}
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.perf.StartTick()
		snap := g.sim.Tick()
		g.perf.StartPhase(telemetry.PhaseOutput)
		g.afterTick(snap)
		g.perf.EndTick()
	}
}

// Draw renders the world and the HUD. While paused it keeps showing the
// last state.
func (g *Game) Draw() {
	g.perf.RecordFrame()

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	g.world.Update(g.sim.Grid().Colors())
	g.world.Draw(g.camera)
	g.inspector.DrawSelection(g.camera, g.sim)

	snap := g.sim.Snapshot()
	g.statsPanel.Draw(snap)
	g.inspector.Draw(g.sim)
	g.hud.DrawControls(g.screenHeight, "[Space] pause  [Tab] stats  [,/.] speed  [Arrows/Wheel] pan/zoom  [Home] reset  [Click] inspect")
	clicked := g.hud.Draw(ui.HUDData{
		Alive:        snap.Alive,
		Tick:         snap.Tick,
		Paused:       g.state == sim.Paused,
		FPS:          rl.GetFPS(),
		ScreenWidth:  g.screenWidth,
		ScreenHeight: g.screenHeight,
	})
	if clicked {
		g.TogglePause()
	}

	rl.EndDrawing()
}

// TogglePause flips the run state.
func (g *Game) TogglePause() {
	g.state = g.state.Toggle()
	slog.Info("run state", "state", g.state.String(), "tick", g.sim.TickCount())
}

// State returns the current run state.
func (g *Game) State() sim.RunState { return g.state }

// Tick returns the number of completed ticks.
func (g *Game) Tick() uint64 { return g.sim.TickCount() }

// Snapshot returns the last published snapshot.
func (g *Game) Snapshot() telemetry.Snapshot { return g.sim.Snapshot() }

// Unload releases GPU resources and closes outputs.
func (g *Game) Unload() {
	if g.world != nil {
		g.world.Unload()
	}
	if err := g.metrics.Close(); err != nil {
		slog.Error("failed to close metrics log", "error", err)
	}
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
