// Package config provides configuration loading and access for the backdrop.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all backdrop configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Field     FieldConfig     `yaml:"field"`
	Links     LinksConfig     `yaml:"links"`
	Terminal  TerminalConfig  `yaml:"terminal"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds window settings.
type ScreenConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	TargetFPS  int    `yaml:"target_fps"`
	Title      string `yaml:"title"`
	Background string `yaml:"background"` // hex colour
	Resizable  bool   `yaml:"resizable"`
	HUD        bool   `yaml:"hud"` // draw the status bar overlay
}

// RangeConfig is a closed [min, max] interval.
type RangeConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// SwatchConfig is one weighted palette colour.
type SwatchConfig struct {
	Name   string  `yaml:"name"`
	Hex    string  `yaml:"hex"`
	Weight float64 `yaml:"weight"`
}

// FieldConfig holds particle creation parameters.
type FieldConfig struct {
	Count       int            `yaml:"count"`
	Velocity    RangeConfig    `yaml:"velocity"` // per axis
	Radius      RangeConfig    `yaml:"radius"`
	RadiusFloor float64        `yaml:"radius_floor"`
	Opacity     RangeConfig    `yaml:"opacity"`
	Palette     []SwatchConfig `yaml:"palette"`
}

// LinksConfig holds proximity link parameters.
type LinksConfig struct {
	Threshold float64 `yaml:"threshold"`  // surface units
	BaseAlpha float64 `yaml:"base_alpha"` // alpha at distance 0
	LineWidth float64 `yaml:"line_width"`
	Color     string  `yaml:"color"`    // primary theme colour
	UseGrid   bool    `yaml:"use_grid"` // bucketed lookup instead of all pairs
}

// TerminalConfig holds the tcell backend mapping.
type TerminalConfig struct {
	CellWidth  float64 `yaml:"cell_width"`  // surface units per column
	CellHeight float64 `yaml:"cell_height"` // surface units per row
	FPS        int     `yaml:"fps"`
	AlphaGain  float64 `yaml:"alpha_gain"`
}

// TelemetryConfig holds stats collection settings.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // seconds
}

// DerivedConfig holds parsed colours.
type DerivedConfig struct {
	Background colorful.Color
	LinkColor  colorful.Color
	Palette    []colorful.Color // parallel to Field.Palette
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

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	var data []byte
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}
	return Parse(data)
}

// Parse merges YAML data over the embedded defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if len(data) > 0 {
		// Unmarshal into same struct - only overwrites fields present in data
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// computeDerived parses the colour strings.
func (c *Config) computeDerived() error {
	var err error
	if c.Derived.Background, err = colorful.Hex(c.Screen.Background); err != nil {
		return fmt.Errorf("screen.background: %w", err)
	}
	if c.Derived.LinkColor, err = colorful.Hex(c.Links.Color); err != nil {
		return fmt.Errorf("links.color: %w", err)
	}
	c.Derived.Palette = make([]colorful.Color, len(c.Field.Palette))
	for i, s := range c.Field.Palette {
		if c.Derived.Palette[i], err = colorful.Hex(s.Hex); err != nil {
			return fmt.Errorf("field.palette[%d] %q: %w", i, s.Name, err)
		}
	}
	return nil
}

// Validate checks values the simulation does not validate itself.
// Field and link ranges are checked again when the field is built.
func (c *Config) Validate() error {
	var errs []error
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size %dx%d must be positive", c.Screen.Width, c.Screen.Height))
	}
	if c.Screen.TargetFPS < 0 {
		errs = append(errs, fmt.Errorf("screen.target_fps %d is negative", c.Screen.TargetFPS))
	}
	if c.Field.Count < 0 {
		errs = append(errs, fmt.Errorf("field.count %d is negative", c.Field.Count))
	}
	if len(c.Field.Palette) == 0 {
		errs = append(errs, errors.New("field.palette is empty"))
	}
	if c.Links.Threshold <= 0 {
		errs = append(errs, fmt.Errorf("links.threshold %v must be positive", c.Links.Threshold))
	}
	if c.Links.LineWidth <= 0 {
		errs = append(errs, fmt.Errorf("links.line_width %v must be positive", c.Links.LineWidth))
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		errs = append(errs, errors.New("terminal cell size must be positive"))
	}
	if c.Terminal.FPS <= 0 {
		errs = append(errs, fmt.Errorf("terminal.fps %d must be positive", c.Terminal.FPS))
	}
	if c.Telemetry.StatsWindow <= 0 {
		errs = append(errs, fmt.Errorf("telemetry.stats_window %v must be positive", c.Telemetry.StatsWindow))
	}
	return errors.Join(errs...)
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
