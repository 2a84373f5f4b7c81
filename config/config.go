// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Balls      BallsConfig      `yaml:"balls"`
	Turbulence TurbulenceConfig `yaml:"turbulence"`
	Audio      AudioConfig      `yaml:"audio"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings. The window doubles as the arena;
// resizing the window resizes the arena between ticks.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// BallsConfig holds ball lifecycle parameters.
type BallsConfig struct {
	InitialRadius          float64 `yaml:"initial_radius"`           // Spawn radius upper bound
	MinRadius              float64 `yaml:"min_radius"`               // Balls at or below this are removed
	RadiusDecreaseFactor   float64 `yaml:"radius_decrease_factor"`   // Radius multiplier per collision (<1)
	VelocityIncreaseFactor float64 `yaml:"velocity_increase_factor"` // Speed multiplier per collision (>1)
	InitialVelocity        float64 `yaml:"initial_velocity"`         // Spawn velocity component range is ±half this
	SpawnAttempts          int     `yaml:"spawn_attempts"`           // Rejection sampling attempts before center fallback
	SpawnMargin            float64 `yaml:"spawn_margin"`             // Inset from each edge as a fraction of arena width
}

// TurbulenceConfig holds the noise field parameters.
type TurbulenceConfig struct {
	Strength  float64 `yaml:"strength"`  // Velocity perturbation per tick
	Frequency float64 `yaml:"frequency"` // Spatial noise frequency
}

// AudioConfig holds playback parameters.
type AudioConfig struct {
	SampleRate   int          `yaml:"sample_rate"`
	BufferMs     int          `yaml:"buffer_ms"`
	MaxPolyphony int          `yaml:"max_polyphony"` // Active voice cap; oldest voice evicted beyond this
	MaxVolume    float64      `yaml:"max_volume"`
	MinGain      float64      `yaml:"min_gain"` // Gain floor for the smallest balls
	SynthDur     float64      `yaml:"synth_duration"` // Seconds per synthesized fallback sample
	Reverb       ReverbConfig `yaml:"reverb"`
}

// ReverbConfig holds the shared reverb send parameters, fixed at init.
type ReverbConfig struct {
	Duration float64 `yaml:"duration"` // Impulse tail length in seconds
	Decay    float64 `yaml:"decay"`    // Decay exponent; higher dies off faster
	Mix      float64 `yaml:"mix"`      // Wet/dry mix in [0, 1]
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	InitialRadius32 float32 // Balls.InitialRadius as float32
	MinRadius32     float32 // Balls.MinRadius as float32
	ScreenW32       float32 // Screen.Width as float32
	ScreenH32       float32 // Screen.Height as float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the loaded configuration.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.InitialRadius32 = float32(c.Balls.InitialRadius)
	c.Derived.MinRadius32 = float32(c.Balls.MinRadius)
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
