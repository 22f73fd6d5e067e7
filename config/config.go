package config

import (
	"fmt"
	"os"

	"snake3d/game/types"

	yaml "gopkg.in/yaml.v3"
)

const (
	FrontendRaylib   = "raylib"
	FrontendTerminal = "terminal"
)

type WindowConfig struct {
	Width      int32  `yaml:"width"`
	Height     int32  `yaml:"height"`
	Title      string `yaml:"title"`
	Borderless bool   `yaml:"borderless"`
}

// Config holds everything main needs to start a session.
type Config struct {
	Frontend     string       `yaml:"frontend"`
	Window       WindowConfig `yaml:"window"`
	GridSize     int          `yaml:"grid_size"`
	TickInterval float32      `yaml:"tick_interval"` // seconds
	Seed         uint64       `yaml:"seed"`          // 0 = seed from the clock
	StatsFile    string       `yaml:"stats_file"`    // empty disables persistence
	Sound        bool         `yaml:"sound"`
}

func Default() Config {
	return Config{
		Frontend: FrontendRaylib,
		Window: WindowConfig{
			Width:  640,
			Height: 480,
			Title:  "3D Snake Game",
		},
		GridSize:     types.DefaultGridSize,
		TickInterval: types.DefaultTickInterval,
		StatsFile:    "data/stats.json",
		Sound:        true,
	}
}

// Load reads a YAML file on top of the defaults. Keys missing from the file
// keep their default value. The result is not validated, callers apply their
// overrides first and then call Validate.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Frontend {
	case FrontendRaylib, FrontendTerminal:
	default:
		return fmt.Errorf("frontend: unknown value %q (want %s or %s)", c.Frontend, FrontendRaylib, FrontendTerminal)
	}
	if c.GridSize < types.InitialSnakeLength {
		return fmt.Errorf("grid_size: %d is smaller than the starting snake (%d)", c.GridSize, types.InitialSnakeLength)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick_interval: must be positive, got %v", c.TickInterval)
	}
	if c.Frontend == FrontendRaylib && (c.Window.Width <= 0 || c.Window.Height <= 0) {
		return fmt.Errorf("window: invalid size %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}

func (c Config) String() string {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Sprintf("%+v", map[string]any{"frontend": c.Frontend, "grid_size": c.GridSize})
	}
	return string(data)
}
