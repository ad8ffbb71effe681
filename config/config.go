// Package config provides configuration loading and validation for the game.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all game configuration parameters.
type Config struct {
	Screen       ScreenConfig       `yaml:"screen"`
	Game         GameConfig         `yaml:"game"`
	Difficulties []DifficultyConfig `yaml:"difficulties"`
	Logging      LoggingConfig      `yaml:"logging"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings. Width and height are also the
// playfield bounds.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// GameConfig holds simulation parameters.
type GameConfig struct {
	BaseScale            int `yaml:"base_scale"`
	InitialLength        int `yaml:"initial_length"`
	TickIntervalMS       int `yaml:"tick_interval_ms"`
	FoodPlacementRetries int `yaml:"food_placement_retries"`
}

// DifficultyConfig is one selectable difficulty.
type DifficultyConfig struct {
	Name           string `yaml:"name"`
	ScaleReduction int    `yaml:"scale_reduction"`
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DerivedConfig holds values computed from the loaded config.
type DerivedConfig struct {
	TickInterval time.Duration
	LogLevel     slog.Level
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
		// Fields absent from the file keep their defaults. A difficulties
		// list in the file replaces the default list.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()
	return cfg, nil
}

// Validate checks that every difficulty leaves a positive cell size and a
// playfield large enough to spawn a full-length snake away from the walls.
func (c *Config) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalid, c.Screen.Width, c.Screen.Height)
	}
	if c.Game.BaseScale <= 0 {
		return fmt.Errorf("%w: base_scale must be positive, got %d", ErrInvalid, c.Game.BaseScale)
	}
	if c.Game.InitialLength < 1 {
		return fmt.Errorf("%w: initial_length must be at least 1, got %d", ErrInvalid, c.Game.InitialLength)
	}
	if c.Game.TickIntervalMS <= 0 {
		return fmt.Errorf("%w: tick_interval_ms must be positive, got %d", ErrInvalid, c.Game.TickIntervalMS)
	}
	if c.Game.FoodPlacementRetries < 0 {
		return fmt.Errorf("%w: food_placement_retries must not be negative", ErrInvalid)
	}
	if len(c.Difficulties) == 0 {
		return fmt.Errorf("%w: no difficulties defined", ErrInvalid)
	}

	seen := make(map[string]bool, len(c.Difficulties))
	for _, d := range c.Difficulties {
		name := strings.ToLower(d.Name)
		if name == "" {
			return fmt.Errorf("%w: difficulty without a name", ErrInvalid)
		}
		if seen[name] {
			return fmt.Errorf("%w: duplicate difficulty %q", ErrInvalid, d.Name)
		}
		seen[name] = true

		scale := c.Game.BaseScale - d.ScaleReduction
		if d.ScaleReduction < 0 || scale <= 0 {
			return fmt.Errorf("%w: difficulty %q leaves cell size %d", ErrInvalid, d.Name, scale)
		}
		// The spawn area excludes initial_length cells from every edge.
		margin := c.Game.InitialLength * scale
		if c.Screen.Width-2*margin <= 0 || c.Screen.Height-2*margin <= 0 {
			return fmt.Errorf("%w: %dx%d screen has no spawn area at difficulty %q",
				ErrInvalid, c.Screen.Width, c.Screen.Height, d.Name)
		}
	}

	if _, err := parseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalid, c.Logging.Format)
	}
	return nil
}

// OverrideLogging replaces the logging level and format with any non-empty
// argument, then re-validates.
func (c *Config) OverrideLogging(level, format string) error {
	if level != "" {
		c.Logging.Level = level
	}
	if format != "" {
		c.Logging.Format = format
	}
	if err := c.Validate(); err != nil {
		return err
	}
	c.computeDerived()
	return nil
}

func (c *Config) computeDerived() {
	c.Derived.TickInterval = time.Duration(c.Game.TickIntervalMS) * time.Millisecond
	c.Derived.LogLevel, _ = parseLevel(c.Logging.Level)
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, err)
	}
	return level, nil
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
