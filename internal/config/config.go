package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/braillegraph/internal/raster"
)

const (
	DefaultWidth   = 240
	DefaultHeight  = 120
	DefaultYMin    = -7.0
	DefaultYMax    = 7.0
	DefaultTheme   = "minimal"
	DefaultFrames  = 100
	DefaultDelayMs = 90
	DefaultTickMs  = 100
	DefaultRotateX = 10.0
	DefaultRotateY = 11.0
	DefaultRotateZ = 12.0
	DefaultStep    = 0.5
)

type Config struct {
	Width     int             `yaml:"width"`
	Height    int             `yaml:"height"`
	YMin      float64         `yaml:"y_min"`
	YMax      float64         `yaml:"y_max"`
	Theme     string          `yaml:"theme"`
	Animation AnimationConfig `yaml:"animation"`
	Cube      CubeConfig      `yaml:"cube"`
	Table     TableConfig     `yaml:"table"`
}

type AnimationConfig struct {
	Frames       int `yaml:"frames"`
	FrameDelayMs int `yaml:"frame_delay_ms"`
}

type CubeConfig struct {
	TickMs  int     `yaml:"tick_ms"`
	RotateX float64 `yaml:"rotate_x"`
	RotateY float64 `yaml:"rotate_y"`
	RotateZ float64 `yaml:"rotate_z"`
}

type TableConfig struct {
	Step float64 `yaml:"step"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		YMin:   DefaultYMin,
		YMax:   DefaultYMax,
		Theme:  DefaultTheme,
		Animation: AnimationConfig{
			Frames:       DefaultFrames,
			FrameDelayMs: DefaultDelayMs,
		},
		Cube: CubeConfig{
			TickMs:  DefaultTickMs,
			RotateX: DefaultRotateX,
			RotateY: DefaultRotateY,
			RotateZ: DefaultRotateZ,
		},
		Table: TableConfig{Step: DefaultStep},
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SetWidth changes the width and derives the height from it: half the
// width, rounded down to a whole number of braille rows.
func (c *Config) SetWidth(w int) {
	c.Width = w
	c.Height = (w / 2) / 4 * 4
}

// GraphOptions returns the raster options described by the config.
func (c *Config) GraphOptions() raster.GraphOptions {
	return raster.GraphOptions{
		YMin:   c.YMin,
		YMax:   c.YMax,
		Width:  c.Width,
		Height: c.Height,
	}
}

func (c *Config) Validate() error {
	if err := c.GraphOptions().Validate(); err != nil {
		return err
	}
	if c.Animation.Frames <= 0 {
		return fmt.Errorf("config: animation frames must be positive, got %d", c.Animation.Frames)
	}
	if c.Animation.FrameDelayMs <= 0 || c.Cube.TickMs <= 0 {
		return fmt.Errorf("config: frame delays must be positive")
	}
	if c.Table.Step <= 0 {
		return fmt.Errorf("config: table step must be positive, got %g", c.Table.Step)
	}
	return nil
}

func (c *Config) FrameDelay() time.Duration {
	return time.Duration(c.Animation.FrameDelayMs) * time.Millisecond
}

func (c *Config) CubeTick() time.Duration {
	return time.Duration(c.Cube.TickMs) * time.Millisecond
}
