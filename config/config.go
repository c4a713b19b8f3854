// Package config provides configuration loading for the simulation.
package config

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/ratio/input"
)

//go:embed defaults.yaml scenarios/*.yaml
var embedded embed.FS

// Modes.
const (
	ModeGear = "gear"
	ModePong = "pong"
)

// Drive triggers.
const (
	TriggerPress = "press" // edge: the frame the button goes down
	TriggerHold  = "hold"  // level: every frame the button is held
)

// Drive impulses.
const (
	ImpulseAdd = "add" // speed += step
	ImpulseSet = "set" // speed = step
)

// Config holds all simulation configuration parameters.
type Config struct {
	Scenario  string          `yaml:"scenario"`
	Mode      string          `yaml:"mode"`
	Screen    ScreenConfig    `yaml:"screen"`
	Assets    AssetsConfig    `yaml:"assets"`
	Gear      GearConfig      `yaml:"gear"`
	Mesh      MeshConfig      `yaml:"mesh"`
	Score     ScoreConfig     `yaml:"score"`
	Pong      PongConfig      `yaml:"pong"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width      int      `yaml:"width"`
	Height     int      `yaml:"height"`
	TargetFPS  int      `yaml:"target_fps"`
	Title      string   `yaml:"title"`
	Background [3]uint8 `yaml:"background"`
}

// AssetsConfig lists the files loaded at startup.
type AssetsConfig struct {
	Gear   TextureConfig `yaml:"gear"`
	Paddle TextureConfig `yaml:"paddle"`
	Ball   TextureConfig `yaml:"ball"`
	Font   FontConfig    `yaml:"font"`
}

// TextureConfig names a texture file. Width and Height are only used when no
// graphics context exists (headless runs, tools); otherwise the file decides.
type TextureConfig struct {
	Path   string  `yaml:"path"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FontConfig names the HUD font.
type FontConfig struct {
	Path string  `yaml:"path"`
	Size float64 `yaml:"size"`
}

// GearConfig holds the driven-gear parameters.
type GearConfig struct {
	Friction     float64 `yaml:"friction"`      // flat per-frame speed loss
	Step         float64 `yaml:"step"`          // impulse size
	MaxRotation  float64 `yaml:"max_rotation"`  // speed ceiling, 0 = none
	Trigger      string  `yaml:"trigger"`       // press | hold
	Impulse      string  `yaml:"impulse"`       // add | set
	RequireHover bool    `yaml:"require_hover"` // clicks must land on the gear
	OffsetX      float64 `yaml:"offset_x"`      // horizontal shift from the centered layout
}

// MeshConfig holds the two-gear layout.
type MeshConfig struct {
	Enabled     bool    `yaml:"enabled"`
	DriverTeeth float64 `yaml:"driver_teeth"`
	DrivenTeeth float64 `yaml:"driven_teeth"`
	Spacing     float64 `yaml:"spacing"` // driven gear x = driver x + spacing
	DriverLabel string  `yaml:"driver_label"`
	DrivenLabel string  `yaml:"driven_label"`
}

// ScoreConfig controls the score line.
type ScoreConfig struct {
	Label   string  `yaml:"label"`
	Depth   float64 `yaml:"depth"` // full rotations per point
	Rounded bool    `yaml:"rounded"`
}

// PongConfig holds paddle/ball parameters.
type PongConfig struct {
	PaddleSpeed  float64        `yaml:"paddle_speed"`
	BallSpeed    float64        `yaml:"ball_speed"`
	Spin         float64        `yaml:"spin"`
	Acceleration float64        `yaml:"acceleration"`
	PaddleMargin float64        `yaml:"paddle_margin"`
	Player1      ControlsConfig `yaml:"player1"`
	Player2      ControlsConfig `yaml:"player2"`
}

// ControlsConfig binds a paddle's keys.
type ControlsConfig struct {
	Up   string `yaml:"up"`
	Down string `yaml:"down"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow int `yaml:"stats_window"` // ticks per stats window
	PerfWindow  int `yaml:"perf_window"`  // ticks averaged by the perf collector
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32 float32
	ScreenH32 float32
	Keys      [2]PaddleKeys
}

// PaddleKeys are the parsed keys of one player.
type PaddleKeys struct {
	Up, Down input.Key
}

// Scenarios returns the names of the embedded scenario presets.
func Scenarios() []string {
	entries, err := fs.ReadDir(embedded, "scenarios")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	sort.Strings(names)
	return names
}

// Load builds the configuration from embedded defaults, a scenario preset and
// an optional user file, in that order. Fields missing from a layer keep the
// value of the layer below. scenario overrides the file's scenario key; both
// empty selects the default scenario.
func Load(userPath, scenario string) (*Config, error) {
	cfg := &Config{}
	defaults, err := embedded.ReadFile("defaults.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded defaults: %w", err)
	}
	if err := yaml.Unmarshal(defaults, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	var user []byte
	if userPath != "" {
		user, err = os.ReadFile(userPath)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if scenario == "" {
			var head struct {
				Scenario string `yaml:"scenario"`
			}
			if err := yaml.Unmarshal(user, &head); err != nil {
				return nil, fmt.Errorf("parsing config file: %w", err)
			}
			scenario = head.Scenario
		}
	}
	if scenario == "" {
		scenario = cfg.Scenario
	}

	preset, err := embedded.ReadFile("scenarios/" + scenario + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("unknown scenario %q (have %s)", scenario, strings.Join(Scenarios(), ", "))
	}
	if err := yaml.Unmarshal(preset, cfg); err != nil {
		return nil, fmt.Errorf("parsing scenario %q: %w", scenario, err)
	}

	if user != nil {
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(user, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}
	cfg.Scenario = scenario

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoad is like Load but panics on error.
func MustLoad(userPath, scenario string) *Config {
	cfg, err := Load(userPath, scenario)
	if err != nil {
		panic(fmt.Sprintf("config: failed to load: %v", err))
	}
	return cfg
}

// Validate checks parameter ranges and enum values.
func (c *Config) Validate() error {
	var errs []error
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height))
	}
	switch c.Mode {
	case ModeGear, ModePong:
	default:
		errs = append(errs, fmt.Errorf("mode must be %q or %q, got %q", ModeGear, ModePong, c.Mode))
	}
	if c.Gear.Friction < 0 {
		errs = append(errs, fmt.Errorf("gear.friction must be >= 0, got %v", c.Gear.Friction))
	}
	if c.Gear.Step < 0 {
		errs = append(errs, fmt.Errorf("gear.step must be >= 0, got %v", c.Gear.Step))
	}
	if c.Gear.MaxRotation < 0 {
		errs = append(errs, fmt.Errorf("gear.max_rotation must be >= 0, got %v", c.Gear.MaxRotation))
	}
	switch c.Gear.Trigger {
	case TriggerPress, TriggerHold:
	default:
		errs = append(errs, fmt.Errorf("gear.trigger must be %q or %q, got %q", TriggerPress, TriggerHold, c.Gear.Trigger))
	}
	switch c.Gear.Impulse {
	case ImpulseAdd, ImpulseSet:
	default:
		errs = append(errs, fmt.Errorf("gear.impulse must be %q or %q, got %q", ImpulseAdd, ImpulseSet, c.Gear.Impulse))
	}
	if c.Mesh.Enabled && (c.Mesh.DriverTeeth <= 0 || c.Mesh.DrivenTeeth <= 0) {
		errs = append(errs, fmt.Errorf("mesh teeth must be positive, got %v/%v", c.Mesh.DriverTeeth, c.Mesh.DrivenTeeth))
	}
	if c.Score.Depth < 0 {
		errs = append(errs, fmt.Errorf("score.depth must be >= 0, got %v", c.Score.Depth))
	}
	if c.Telemetry.StatsWindow < 0 {
		errs = append(errs, fmt.Errorf("telemetry.stats_window must be >= 0, got %d", c.Telemetry.StatsWindow))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() error {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	for i, ctl := range []ControlsConfig{c.Pong.Player1, c.Pong.Player2} {
		up, err := input.ParseKey(ctl.Up)
		if err != nil {
			return fmt.Errorf("pong.player%d.up: %w", i+1, err)
		}
		down, err := input.ParseKey(ctl.Down)
		if err != nil {
			return fmt.Errorf("pong.player%d.down: %w", i+1, err)
		}
		if up == input.KeySpace || down == input.KeySpace {
			return fmt.Errorf("pong.player%d: space is the pause key and cannot move a paddle", i+1)
		}
		c.Derived.Keys[i] = PaddleKeys{Up: up, Down: down}
	}
	return nil
}

// Ratio returns the driver/driven tooth ratio, or 1 when meshing is off.
func (c *Config) Ratio() float64 {
	if !c.Mesh.Enabled || c.Mesh.DrivenTeeth == 0 {
		return 1
	}
	return c.Mesh.DriverTeeth / c.Mesh.DrivenTeeth
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
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
