// Package game wires the simulation, audio, and rendering together.
package game

import (
	"log/slog"
	"math/rand"

	"github.com/gopxl/beep"
	"github.com/mlange-42/ark/ecs"

	"github.com/Cookseyyyyyy/musicballs/audio"
	"github.com/Cookseyyyyyy/musicballs/components"
	"github.com/Cookseyyyyyy/musicballs/config"
	"github.com/Cookseyyyyyy/musicballs/notes"
	"github.com/Cookseyyyyyy/musicballs/systems"
	"github.com/Cookseyyyyyy/musicballs/telemetry"
	"github.com/Cookseyyyyyy/musicballs/ui"
)

// Options holds run options from the CLI.
type Options struct {
	Seed           int64
	Headless       bool
	Mute           bool
	SamplesDir     string
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
}

// Game holds the complete simulation state.
type Game struct {
	world *ecs.World
	rng   *rand.Rand

	ballMapper *ecs.Map3[components.Position, components.Velocity, components.Ball]
	ballFilter *ecs.Filter3[components.Position, components.Velocity, components.Ball]

	turbulence *systems.TurbulenceField
	bounds     systems.Bounds

	bank   *audio.SampleBank
	voices *audio.VoiceAllocator

	collector *telemetry.Collector
	output    *telemetry.OutputManager
	logStats  bool

	panel *ui.NotePanel

	tick     int32
	paused   bool
	selected int // note index armed for keyboard-free spawning

	// Per-tick scratch, reused to avoid churn
	entities []ecs.Entity
	posPtrs  []*components.Position
	velPtrs  []*components.Velocity
	ballPtrs []*components.Ball
	radii    []float64
}

// NewGameWithOptions creates a game instance.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()
	world := ecs.NewWorld()

	g := &Game{
		world:      world,
		rng:        rand.New(rand.NewSource(opts.Seed)),
		ballMapper: ecs.NewMap3[components.Position, components.Velocity, components.Ball](world),
		ballFilter: ecs.NewFilter3[components.Position, components.Velocity, components.Ball](world),
		turbulence: systems.NewTurbulenceField(opts.Seed, cfg.Turbulence.Strength, cfg.Turbulence.Frequency),
		bounds:     systems.Bounds{Width: cfg.Derived.ScreenW32, Height: cfg.Derived.ScreenH32},
		logStats:   opts.LogStats,
		panel:      ui.NewNotePanel(10, 10),
	}

	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}
	g.collector = telemetry.NewCollector(statsWindow, 1.0/float64(cfg.Screen.TargetFPS))

	rate := beep.SampleRate(cfg.Audio.SampleRate)
	g.bank = audio.NewSampleBank(opts.SamplesDir, rate, cfg.Audio.SynthDur)
	g.voices = audio.NewVoiceAllocator(g.bank, audio.Params{
		MaxPolyphony:  cfg.Audio.MaxPolyphony,
		MaxVolume:     cfg.Audio.MaxVolume,
		MinGain:       cfg.Audio.MinGain,
		InitialRadius: cfg.Balls.InitialRadius,
	}, g.collector)

	if !opts.Headless && !opts.Mute {
		rev := audio.ReverbParams{
			Duration: cfg.Audio.Reverb.Duration,
			Decay:    cfg.Audio.Reverb.Decay,
			Mix:      cfg.Audio.Reverb.Mix,
		}
		if err := g.voices.StartSpeaker(rate, cfg.Audio.BufferMs, rev); err != nil {
			slog.Error("audio device unavailable, running muted", "error", err)
		}
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("telemetry output disabled", "error", err)
	} else if om != nil {
		g.output = om
		if err := om.WriteConfig(cfg); err != nil {
			slog.Error("failed to snapshot config", "error", err)
		}
	}

	return g
}

// Update runs input handling and one simulation tick.
func (g *Game) Update() {
	g.handleInput()

	if g.paused {
		return
	}
	g.simulationStep()
}

// UpdateHeadless runs one simulation tick without touching raylib.
func (g *Game) UpdateHeadless() {
	g.simulationStep()
}

// SeedAll spawns one ball per note. Headless soak runs call this once
// before ticking.
func (g *Game) SeedAll() {
	for _, n := range notes.Set {
		g.Spawn(n)
	}
}

// Tick returns the current tick count.
func (g *Game) Tick() int32 {
	return g.tick
}

// BallCount returns the number of live balls.
func (g *Game) BallCount() int {
	count := 0
	query := g.ballFilter.Query()
	for query.Next() {
		count++
	}
	return count
}

// Unload closes output files.
func (g *Game) Unload() {
	if err := g.output.Close(); err != nil {
		slog.Error("closing telemetry output", "error", err)
	}
}
