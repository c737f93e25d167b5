package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/simple2d/core"
	"github.com/lixenwraith/simple2d/parameter"
)

// Config is the runtime configuration of the simulation and its frontend
type Config struct {
	TicksPerSecond  int               `yaml:"ticks_per_second"`
	MaxCatchUpTicks int               `yaml:"max_catch_up_ticks"`
	World           WorldConfig       `yaml:"world"`
	Collision       CollisionConfig   `yaml:"collision"`
	Physics         PhysicsConfig     `yaml:"physics"`
	Log             LogConfig         `yaml:"log"`
	Audio           AudioConfig       `yaml:"audio"`
	Render          RenderConfig      `yaml:"render"`
	Keys            map[string]string `yaml:"keys,omitempty"`
	Scene           []EntityDecl      `yaml:"scene,omitempty"`
}

type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type CollisionConfig struct {
	CellSize   float64 `yaml:"cell_size"`
	BroadPhase string  `yaml:"broad_phase"`
}

type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"`
}

type LogConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
	Output   string `yaml:"output"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0..1
}

type RenderConfig struct {
	Scale float64 `yaml:"scale"`
	Debug bool    `yaml:"debug"` // draw collision boxes
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		TicksPerSecond:  parameter.TicksPerSecond,
		MaxCatchUpTicks: parameter.MaxCatchUpTicks,
		World:           WorldConfig{Width: parameter.WorldWidth, Height: parameter.WorldHeight},
		Collision:       CollisionConfig{CellSize: parameter.CollisionCellSize, BroadPhase: "current"},
		Physics:         PhysicsConfig{Gravity: parameter.Gravity},
		Log:             LogConfig{Level: "info", Encoding: "json", Output: "simple2d.log"},
		Audio:           AudioConfig{Enabled: true, Volume: 0.5},
		Render:          RenderConfig{Scale: parameter.RenderScale},
	}
}

// Load decodes YAML over the defaults, absent fields keep their default value
func Load(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile reads a YAML config file, a missing file yields the defaults
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Validate checks ranges, all violations are reported together
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format+": %w", append(args, core.ErrInvalidInput)...))
		}
	}

	check(c.TicksPerSecond > 0, "ticks_per_second %d", c.TicksPerSecond)
	check(c.MaxCatchUpTicks > 0, "max_catch_up_ticks %d", c.MaxCatchUpTicks)
	check(c.World.Width > 0 && c.World.Height > 0, "world %vx%v", c.World.Width, c.World.Height)
	check(c.Collision.CellSize > 0, "collision.cell_size %v", c.Collision.CellSize)
	check(c.Collision.BroadPhase == "" || c.Collision.BroadPhase == "current" || c.Collision.BroadPhase == "swept",
		"collision.broad_phase %q", c.Collision.BroadPhase)
	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume %v", c.Audio.Volume)
	check(c.Render.Scale > 0, "render.scale %v", c.Render.Scale)

	for i, d := range c.Scene {
		if err := d.validate(); err != nil {
			errs = append(errs, fmt.Errorf("scene[%d]: %w", i, err))
		}
	}
	return errors.Join(errs...)
}
