// Package config provides YAML/TOML game configuration loading, speed
// presets and environment overrides for pixel-pong.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/pixel-pong/internal/core"
	"github.com/vovakirdan/pixel-pong/internal/display"
	"github.com/vovakirdan/pixel-pong/internal/games/pong"
)

// PongConfig contains all configuration for a pong session.
type PongConfig struct {
	Field     FieldConfig     `yaml:"field" toml:"field"`
	Ball      BallConfig      `yaml:"ball" toml:"ball"`
	Paddles   PaddleConfig    `yaml:"paddles" toml:"paddles"`
	Tick      TickConfig      `yaml:"tick" toml:"tick"`
	Collision CollisionConfig `yaml:"collision" toml:"collision"`
	Players   PlayersConfig   `yaml:"players" toml:"players"`
	Loop      LoopConfig      `yaml:"loop" toml:"loop"`
	Display   DisplayConfig   `yaml:"display" toml:"display"`
}

// FieldConfig is the play-field size in pixels.
type FieldConfig struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// BallConfig defines the ball and where each round starts it.
type BallConfig struct {
	Radius int `yaml:"radius" toml:"radius"`
	StartX int `yaml:"start_x" toml:"start_x"`
	StartY int `yaml:"start_y" toml:"start_y"`
	VX     int `yaml:"vx" toml:"vx"`
	VY     int `yaml:"vy" toml:"vy"`
}

// PaddleConfig defines both paddles' size.
type PaddleConfig struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// TickConfig defines the per-frame movement budget.
type TickConfig struct {
	MaxPaddleMovement int `yaml:"max_paddle_movement" toml:"max_paddle_movement"`
	MaxBallMovement   int `yaml:"max_ball_movement" toml:"max_ball_movement"`
	TimeStep          int `yaml:"time_step" toml:"time_step"`
}

// CollisionConfig selects the paddle hit test ("center" or "overlap").
type CollisionConfig struct {
	Paddle string `yaml:"paddle" toml:"paddle"`
}

// PlayersConfig names the registered controller for each side.
type PlayersConfig struct {
	Left  string `yaml:"left" toml:"left"`
	Right string `yaml:"right" toml:"right"`
}

// LoopConfig defines frame pacing.
type LoopConfig struct {
	FPS int `yaml:"fps" toml:"fps"`
}

// DisplayConfig names the palette colours. Scale is how many field pixels
// one terminal column covers; 0 fits the field to the terminal.
type DisplayConfig struct {
	Scale      int    `yaml:"scale" toml:"scale"`
	Background string `yaml:"background" toml:"background"`
	Paddle     string `yaml:"paddle" toml:"paddle"`
	Ball       string `yaml:"ball" toml:"ball"`
}

// GameConfig converts the file representation into a validated engine
// configuration.
func (c PongConfig) GameConfig() (pong.Config, error) {
	collider, err := pong.ColliderByName(c.Collision.Paddle)
	if err != nil {
		return pong.Config{}, fmt.Errorf("%w: %w", pong.ErrInvalidConfig, err)
	}

	cfg := pong.Config{
		FieldWidth:   c.Field.Width,
		FieldHeight:  c.Field.Height,
		BallRadius:   c.Ball.Radius,
		PaddleWidth:  c.Paddles.Width,
		PaddleHeight: c.Paddles.Height,
		TimeTick: pong.TimeTick{
			MaxPaddleMovement: c.Tick.MaxPaddleMovement,
			MaxBallMovement:   c.Tick.MaxBallMovement,
			TimeStep:          c.Tick.TimeStep,
		},
		InitialVelocity: core.Velocity{VX: c.Ball.VX, VY: c.Ball.VY},
		BallStart:       core.Point{X: c.Ball.StartX, Y: c.Ball.StartY},
		Collider:        collider,
	}
	if err := cfg.Validate(); err != nil {
		return pong.Config{}, err
	}
	return cfg, nil
}

// Palette resolves the configured colour names.
func (c PongConfig) Palette() (display.Palette, error) {
	var p display.Palette
	var err error
	if p.Background, err = core.ParseColor(c.Display.Background); err != nil {
		return p, fmt.Errorf("display background: %w", err)
	}
	if p.Paddle, err = core.ParseColor(c.Display.Paddle); err != nil {
		return p, fmt.Errorf("display paddle: %w", err)
	}
	if p.Ball, err = core.ParseColor(c.Display.Ball); err != nil {
		return p, fmt.Errorf("display ball: %w", err)
	}
	return p, nil
}

// TickInterval returns the time between frames. A non-positive FPS falls
// back to DefaultFPS and rates above MaxFPS are capped.
func (c PongConfig) TickInterval() time.Duration {
	fps := c.Loop.FPS
	switch {
	case fps <= 0:
		fps = DefaultFPS
	case fps > MaxFPS:
		fps = MaxFPS
	}
	return time.Second / time.Duration(fps)
}

// Preset is a named pacing profile.
type Preset string

const (
	PresetSlow   Preset = "slow"
	PresetNormal Preset = "normal"
	PresetFast   Preset = "fast"
)

// Presets lists every preset in CLI order.
var Presets = []Preset{PresetSlow, PresetNormal, PresetFast}

// ParsePreset validates a preset name. An empty name is PresetNormal.
func ParsePreset(name string) (Preset, error) {
	switch Preset(name) {
	case "", PresetNormal:
		return PresetNormal, nil
	case PresetSlow, PresetFast:
		return Preset(name), nil
	default:
		return "", fmt.Errorf("unknown preset %q (want slow, normal or fast)", name)
	}
}
