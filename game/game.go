// Package game drives the aquarium simulation: entity update policies,
// factories, input handling and the fixed-rate tick.
package game

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aquarium/behavior"
	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/geom"
	"github.com/pthm-cable/aquarium/scene"
	"github.com/pthm-cable/aquarium/telemetry"
)

// Options configures a Game.
type Options struct {
	Seed           int64  // RNG seed (0 = time-based)
	LogStats       bool   // Log window stats via slog
	OutputDir      string // Directory for CSV telemetry (empty = disabled)
	StepsPerUpdate int    // Simulation ticks per Update call
	Sound          Sound  // Audio sink (nil = silent)
	StatsCallback  func(telemetry.WindowStats)
}

// Game is the simulation context. Every operation that needs scene access
// (spawn, query, remove) goes through it.
type Game struct {
	cfg   *config.Config
	rng   *rand.Rand
	scene *scene.Scene
	sound Sound

	idle behavior.Table[idleKind]

	// Input: at most one click is consumed per tick
	click    geom.Vec2
	hasClick bool

	// State
	tick           int32
	paused         bool
	stepsPerUpdate int

	// Telemetry
	collector        *telemetry.Collector
	perfCollector    *telemetry.PerfCollector
	outputManager    *telemetry.OutputManager
	bookmarkDetector *telemetry.BookmarkDetector
	logStats         bool
	statsCallback    func(telemetry.WindowStats)

	// Reused buffers
	foodScratch  []ecs.Entity
	speedScratch []float64
}

// New creates a game with the default scene: background, initial fish and panel buttons.
func New(cfg *config.Config, opts Options) *Game {
	g := NewEmpty(cfg, opts)
	g.populate()
	return g
}

// NewEmpty creates a game with an empty scene.
func NewEmpty(cfg *config.Config, opts Options) *Game {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	steps := opts.StepsPerUpdate
	if steps < 1 {
		steps = 1
	}
	sound := opts.Sound
	if sound == nil {
		sound = NopSound{}
	}

	g := &Game{
		cfg:              cfg,
		rng:              rand.New(rand.NewSource(seed)),
		scene:            scene.New(),
		sound:            sound,
		stepsPerUpdate:   steps,
		logStats:         opts.LogStats,
		statsCallback:    opts.StatsCallback,
		collector:        telemetry.NewCollector(cfg.Telemetry.StatsWindow, cfg.Derived.DT),
		perfCollector:    telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		bookmarkDetector: telemetry.NewBookmarkDetector(cfg.Telemetry.BookmarkHistory),
		idle: behavior.NewTable(
			behavior.Option[idleKind]{Value: idleWait, Weight: cfg.Fish.Weights.Wait},
			behavior.Option[idleKind]{Value: idleCruise, Weight: cfg.Fish.Weights.Cruise},
		),
	}

	if opts.OutputDir != "" {
		om, err := telemetry.NewOutputManager(opts.OutputDir)
		if err != nil {
			slog.Error("failed to create output manager", "error", err)
		} else {
			g.outputManager = om
			if err := om.WriteConfig(cfg); err != nil {
				slog.Error("failed to write config snapshot", "error", err)
			}
			slog.Info("telemetry output enabled",
				"dir", om.Dir(),
				"window_ticks", g.collector.WindowDurationTicks(),
			)
		}
	}

	return g
}

// populate builds the startup scene. Insertion order is draw order, so the
// background goes first and the buttons last.
func (g *Game) populate() {
	g.createBackground()
	for i := 0; i < g.cfg.Fish.Initial; i++ {
		g.CreateFish()
	}
	for _, b := range g.cfg.Buttons {
		g.addButton(b)
	}
	if g.cfg.Audio.Enabled && g.cfg.Audio.Ambient != "" {
		g.sound.Loop(g.cfg.Audio.Ambient)
	}
}

// Update runs StepsPerUpdate ticks unless paused. Call once per frame.
func (g *Game) Update() {
	if g.paused {
		return
	}
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.Step()
	}
	g.perfCollector.RecordFrame()
}

// Step advances the world by exactly one tick: input, entity updates, telemetry.
func (g *Game) Step() {
	g.perfCollector.StartTick()

	g.perfCollector.StartPhase(telemetry.PhaseInput)
	g.handleClick()

	g.scene.UpdateAll(g.updateEntity)

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.flushTelemetry()

	g.perfCollector.EndTick()
	g.tick++
}

// updateEntity dispatches one entity's per-tick policy on its kind, charging
// the time to that kind's perf phase.
func (g *Game) updateEntity(e ecs.Entity) {
	kind, ok := g.scene.Kind(e)
	if !ok {
		return
	}
	g.perfCollector.StartPhase(kindPhase(kind))
	switch kind {
	case components.KindFish:
		g.updateFish(e)
	case components.KindFood:
		g.updateFood(e)
	case components.KindBubble:
		g.updateBubble(e)
	case components.KindDecoration:
		if tr := g.scene.Transform(e); tr != nil {
			tr.Integrate()
		}
	case components.KindButton:
		// Buttons only react to clicks
	}
}

func kindPhase(k components.Kind) telemetry.Phase {
	switch k {
	case components.KindFish:
		return telemetry.PhaseFish
	case components.KindFood:
		return telemetry.PhaseFood
	case components.KindBubble:
		return telemetry.PhaseBubble
	}
	return telemetry.PhaseScenery
}

// Scene returns the live entity set, for rendering and inspection.
func (g *Game) Scene() *scene.Scene {
	return g.scene
}

// Config returns the configuration the game was built with.
func (g *Game) Config() *config.Config {
	return g.cfg
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 {
	return g.tick
}

// Paused reports whether the simulation is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// TogglePause pauses or resumes the simulation.
func (g *Game) TogglePause() {
	g.paused = !g.paused
}

// StepsPerUpdate returns the number of ticks run per Update call.
func (g *Game) StepsPerUpdate() int {
	return g.stepsPerUpdate
}

// SetStepsPerUpdate clamps n to [1, 10].
func (g *Game) SetStepsPerUpdate(n int) {
	g.stepsPerUpdate = max(1, min(n, 10))
}

// PerfStats returns tick timing over the recent window.
func (g *Game) PerfStats() telemetry.PerfStats {
	return g.perfCollector.Stats()
}

// Unload flushes and closes telemetry output.
func (g *Game) Unload() {
	if g.outputManager != nil {
		if err := g.outputManager.Close(); err != nil {
			slog.Error("failed to close output", "error", err)
		}
	}
}
