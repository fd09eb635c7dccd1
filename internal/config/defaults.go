package config

import (
	_ "embed"

	"github.com/vovakirdan/pixel-pong/internal/games/pong"
	"github.com/vovakirdan/pixel-pong/internal/input"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultFPS is the frame rate used when none is configured.
const DefaultFPS = 30

// MaxFPS caps the frame rate so the frame interval never rounds to zero.
const MaxFPS = 1000

// DefaultPongConfig returns the default pong configuration.
// It must stay in sync with defaults/pong.yaml.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Field: FieldConfig{
			Width:  pong.DefaultFieldWidth,
			Height: pong.DefaultFieldHeight,
		},
		Ball: BallConfig{
			Radius: pong.DefaultBallRadius,
			StartX: pong.DefaultBallStart.X,
			StartY: pong.DefaultBallStart.Y,
			VX:     pong.DefaultBallVX,
			VY:     pong.DefaultBallVY,
		},
		Paddles: PaddleConfig{
			Width:  pong.DefaultPaddleWidth,
			Height: pong.DefaultPaddleHeight,
		},
		Tick: TickConfig{
			MaxPaddleMovement: pong.DefaultMaxPaddleMovement,
			MaxBallMovement:   pong.DefaultMaxBallMovement,
			TimeStep:          pong.DefaultTimeStep,
		},
		Collision: CollisionConfig{
			Paddle: pong.ColliderCenter,
		},
		Players: PlayersConfig{
			Left:  input.NameKeyboard,
			Right: input.NameCPU,
		},
		Loop: LoopConfig{
			FPS: DefaultFPS,
		},
		Display: DisplayConfig{
			Background: "black",
			Paddle:     "yellow",
			Ball:       "green",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPongYAML
}
