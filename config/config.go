// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/aquarium/geom"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Button actions understood by the game.
const (
	ActionAddFish  = "add_fish"
	ActionFeedFish = "feed_fish"
)

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Aquarium  AquariumConfig  `yaml:"aquarium"`
	Fish      FishConfig      `yaml:"fish"`
	Food      FoodConfig      `yaml:"food"`
	Bubble    BubbleConfig    `yaml:"bubble"`
	Buttons   []ButtonConfig  `yaml:"buttons"`
	Assets    AssetsConfig    `yaml:"assets"`
	Audio     AudioConfig     `yaml:"audio"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// AquariumConfig holds tank layout. The tank fills the screen minus the button panel.
type AquariumConfig struct {
	PanelWidth       int        `yaml:"panel_width"`
	BackgroundOffset [2]float64 `yaml:"background_offset"`
}

// FishConfig holds fish steering parameters.
type FishConfig struct {
	Initial         int         `yaml:"initial"`
	Speed           float64     `yaml:"speed"`            // Cruise speed, units per tick
	FeedSpeed       float64     `yaml:"feed_speed"`       // Speed while chasing food
	DetectionRadius float64     `yaml:"detection_radius"` // Food search radius around the mouth
	Size            [2]float64  `yaml:"size"`
	MouthRight      [2]float64  `yaml:"mouth_right"`      // Mouth offset from top-left when facing right
	MouthLeft       [2]float64  `yaml:"mouth_left"`       // Mouth offset from top-left when facing left
	WaitMin         int         `yaml:"wait_min"`         // Idle ticks = wait_min + rand(wait_jitter)
	WaitJitter      int         `yaml:"wait_jitter"`
	BubblePeriod    int         `yaml:"bubble_period"`
	TurnGuardWidth  float64     `yaml:"turn_guard_width"` // Hold facing while food is within this many units ahead
	SpawnArea       [2]float64  `yaml:"spawn_area"`
	Weights         FishWeights `yaml:"weights"`
}

// FishWeights is the idle behavior probability table.
type FishWeights struct {
	Wait   float64 `yaml:"wait"`
	Cruise float64 `yaml:"cruise"`
}

// FoodConfig holds food parameters.
type FoodConfig struct {
	Size       [2]float64 `yaml:"size"`
	SinkSpeed  float64    `yaml:"sink_speed"`
	RestDepth  float64    `yaml:"rest_depth"` // Food stops sinking once below this y
	SpawnWidth float64    `yaml:"spawn_width"`
}

// BubbleConfig holds bubble parameters.
type BubbleConfig struct {
	Size        [2]float64 `yaml:"size"`
	RiseSpeed   float64    `yaml:"rise_speed"`
	RemoveAbove float64    `yaml:"remove_above"` // Bubble is removed once y is below this
}

// ButtonConfig defines one side-panel button.
type ButtonConfig struct {
	Label  string     `yaml:"label"`
	Action string     `yaml:"action"`
	Rect   [4]float64 `yaml:"rect"`
}

// AssetsConfig holds sprite file names relative to Dir.
type AssetsConfig struct {
	Dir     string        `yaml:"dir"`
	Icon    string        `yaml:"icon"`
	Font    string        `yaml:"font"`
	Sprites SpritesConfig `yaml:"sprites"`
}

// SpritesConfig names the sprite file for each entity kind.
type SpritesConfig struct {
	Background string `yaml:"background"`
	Fish       string `yaml:"fish"`
	Food       string `yaml:"food"`
	Bubble     string `yaml:"bubble"`
}

// AudioConfig holds sound file names relative to the assets dir.
type AudioConfig struct {
	Enabled bool   `yaml:"enabled"`
	Ambient string `yaml:"ambient"`
	Splash  string `yaml:"splash"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`          // Seconds of simulated time per stats window
	PerfCollectorWindow int     `yaml:"perf_collector_window"` // Ticks averaged by the perf collector
	BookmarkHistory     int     `yaml:"bookmark_history"`      // Windows of history for bookmark detection
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DT           float64   // Seconds per tick
	TankW, TankH float64   // Tank interior size
	FishSize     geom.Vec2 // Fish.Size as a vector
	FoodSize     geom.Vec2
	BubbleSize   geom.Vec2
	MouthRight   geom.Vec2
	MouthLeft    geom.Vec2
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

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in the file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cfg.computeDerived()

	return cfg, nil
}

// Validate checks for values the simulation cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height))
	}
	if c.Screen.TargetFPS <= 0 {
		errs = append(errs, fmt.Errorf("screen.target_fps must be positive, got %d", c.Screen.TargetFPS))
	}
	if c.Aquarium.PanelWidth < 0 || c.Aquarium.PanelWidth >= c.Screen.Width {
		errs = append(errs, fmt.Errorf("aquarium.panel_width %d does not fit screen width %d", c.Aquarium.PanelWidth, c.Screen.Width))
	}
	if c.Fish.Speed <= 0 || c.Fish.FeedSpeed <= 0 {
		errs = append(errs, errors.New("fish speeds must be positive"))
	}
	if c.Fish.DetectionRadius < 0 {
		errs = append(errs, errors.New("fish.detection_radius must not be negative"))
	}
	if c.Fish.WaitMin < 0 || c.Fish.WaitJitter < 0 || c.Fish.BubblePeriod < 0 {
		errs = append(errs, errors.New("fish timers must not be negative"))
	}
	if c.Fish.Weights.Wait <= 0 && c.Fish.Weights.Cruise <= 0 {
		errs = append(errs, errors.New("fish.weights needs at least one positive weight"))
	}
	if c.Food.SinkSpeed < 0 || c.Bubble.RiseSpeed < 0 {
		errs = append(errs, errors.New("food.sink_speed and bubble.rise_speed must not be negative"))
	}
	for i, b := range c.Buttons {
		switch b.Action {
		case ActionAddFish, ActionFeedFish:
		default:
			errs = append(errs, fmt.Errorf("buttons[%d]: unknown action %q", i, b.Action))
		}
	}
	return errors.Join(errs...)
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.DT = 1.0 / float64(c.Screen.TargetFPS)
	c.Derived.TankW = float64(c.Screen.Width - c.Aquarium.PanelWidth)
	c.Derived.TankH = float64(c.Screen.Height)
	c.Derived.FishSize = vec(c.Fish.Size)
	c.Derived.FoodSize = vec(c.Food.Size)
	c.Derived.BubbleSize = vec(c.Bubble.Size)
	c.Derived.MouthRight = vec(c.Fish.MouthRight)
	c.Derived.MouthLeft = vec(c.Fish.MouthLeft)
}

func vec(p [2]float64) geom.Vec2 {
	return geom.V(p[0], p[1])
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
