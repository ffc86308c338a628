package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/WaterKat/CGOL-Widget/internal/render"
)

type Config struct {
	Grid     GridConfig     `toml:"grid"`
	Step     StepConfig     `toml:"step"`
	Dissolve DissolveConfig `toml:"dissolve"`
	Render   RenderConfig   `toml:"render"`
	Notify   NotifyConfig   `toml:"notify"`
	Patterns PatternsConfig `toml:"patterns"`
	Logging  LoggingConfig  `toml:"logging"`
}

type GridConfig struct {
	Width             int     `toml:"width"`
	Height            int     `toml:"height"`
	Seed              int64   `toml:"seed"` // 0 seeds from the clock at startup
	SeedDensity       float64 `toml:"seed_density"`
	RandomizeOnCreate bool    `toml:"randomize_on_create"`
}

type StepConfig struct {
	Rate float64 `toml:"rate"` // generations per second
}

type DissolveConfig struct {
	Chance    float64       `toml:"chance"`
	IdleAfter time.Duration `toml:"idle_after"`
}

type RenderConfig struct {
	Scale            int    `toml:"scale"`
	AliveColor       string `toml:"alive_color"`
	DeadColor        string `toml:"dead_color"`
	MousePassthrough bool   `toml:"mouse_passthrough"`
}

type NotifyConfig struct {
	Enabled     bool   `toml:"enabled"`
	BindAddress string `toml:"bind_address"`
	Rows        int    `toml:"rows"` // bottom rows reseeded per event
	QueueSize   int    `toml:"queue_size"`
}

type PatternsConfig struct {
	Path string `toml:"path"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Load reads a TOML file over the built-in defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the built-in configuration used when no file is given.
func Default() *Config { return defaults() }

// StepInterval converts the configured generation rate into a tick period.
func (c *Config) StepInterval() time.Duration {
	return time.Duration(float64(time.Second) / c.Step.Rate)
}

func defaults() *Config {
	return &Config{
		Grid: GridConfig{
			Width:             96,
			Height:            54,
			SeedDensity:       0.5,
			RandomizeOnCreate: true,
		},
		Step: StepConfig{Rate: 8},
		Dissolve: DissolveConfig{
			Chance:    0.2,
			IdleAfter: 45 * time.Second,
		},
		Render: RenderConfig{
			Scale:            10,
			AliveColor:       "#66ff66",
			DeadColor:        "rgba(0, 0, 0, 0)",
			MousePassthrough: true,
		},
		Notify: NotifyConfig{
			Enabled:     true,
			BindAddress: "127.0.0.1:8765",
			Rows:        2,
			QueueSize:   16,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func (c *Config) validate() error {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("grid dimensions must be positive, got %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if c.Grid.SeedDensity < 0 || c.Grid.SeedDensity > 1 {
		return fmt.Errorf("grid seed_density must be in [0,1], got %g", c.Grid.SeedDensity)
	}
	if c.Step.Rate <= 0 {
		return fmt.Errorf("step rate must be positive, got %g", c.Step.Rate)
	}
	if c.Dissolve.Chance < 0 || c.Dissolve.Chance > 1 {
		return fmt.Errorf("dissolve chance must be in [0,1], got %g", c.Dissolve.Chance)
	}
	if c.Dissolve.IdleAfter <= 0 {
		return fmt.Errorf("dissolve idle_after must be positive, got %s", c.Dissolve.IdleAfter)
	}
	if c.Render.Scale <= 0 {
		return fmt.Errorf("render scale must be positive, got %d", c.Render.Scale)
	}
	if _, err := render.ParseColor(c.Render.AliveColor); err != nil {
		return fmt.Errorf("render alive_color: %w", err)
	}
	if _, err := render.ParseColor(c.Render.DeadColor); err != nil {
		return fmt.Errorf("render dead_color: %w", err)
	}
	if c.Notify.Enabled {
		if c.Notify.BindAddress == "" {
			return fmt.Errorf("notify bind_address is required when notify is enabled")
		}
		if c.Notify.Rows <= 0 {
			return fmt.Errorf("notify rows must be positive, got %d", c.Notify.Rows)
		}
		if c.Notify.QueueSize <= 0 {
			return fmt.Errorf("notify queue_size must be positive, got %d", c.Notify.QueueSize)
		}
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
