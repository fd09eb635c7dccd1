// Package input provides the paddle controllers players can be assigned:
// a key-driven controller for humans, a ball-tracking CPU and an idle
// stand-in. Each registers itself with the controller registry.
package input

import (
	"github.com/vovakirdan/pixel-pong/internal/core"
	"github.com/vovakirdan/pixel-pong/internal/registry"
)

// Controller names.
const (
	NameKeyboard = "keyboard"
	NameCPU      = "cpu"
	NameIdle     = "idle"
)

// DefaultCPUDeadZone is how far, in pixels, the ball may sit from the
// paddle centre before the CPU reacts.
const DefaultCPUDeadZone = 4

func init() {
	registry.Register(NameKeyboard, "up/down keys, one step per tick", func() registry.Controller {
		return NewKeys()
	})
	registry.Register(NameCPU, "tracks the ball while it approaches", func() registry.Controller {
		return CPU{DeadZone: DefaultCPUDeadZone}
	})
	registry.Register(NameIdle, "never moves", func() registry.Controller {
		return Idle{}
	})
}

// FromButtons maps an up/down button pair to a direction.
// Pressing both or neither means Stay.
func FromButtons(up, down bool) core.Direction {
	switch {
	case up && !down:
		return core.DirectionUp
	case down && !up:
		return core.DirectionDown
	default:
		return core.DirectionStay
	}
}

// FromLevel maps a reading against a centre value to a direction.
// Readings within deadZone of center mean Stay; smaller readings are Up
// since y grows downwards.
func FromLevel(level, center, deadZone int) core.Direction {
	diff := level - center
	switch {
	case diff < -deadZone:
		return core.DirectionUp
	case diff > deadZone:
		return core.DirectionDown
	default:
		return core.DirectionStay
	}
}

// Presser is implemented by controllers that accept key presses.
type Presser interface {
	Press(side core.Side, dir core.Direction)
}

// Keys holds the buttons pressed since the last tick, per side.
// Not safe for concurrent use; the TUI update loop both presses and samples.
type Keys struct {
	up   [2]bool
	down [2]bool
}

// NewKeys returns a controller with no buttons pressed.
func NewKeys() *Keys {
	return &Keys{}
}

// Name implements registry.Controller.
func (k *Keys) Name() string { return NameKeyboard }

// Press records a button for the next tick. Stay is ignored.
func (k *Keys) Press(side core.Side, dir core.Direction) {
	switch dir {
	case core.DirectionUp:
		k.up[side] = true
	case core.DirectionDown:
		k.down[side] = true
	}
}

// Direction implements registry.Controller. Presses are consumed, so a
// held key only moves the paddle as often as the terminal repeats it.
func (k *Keys) Direction(side core.Side, _ core.FieldView) core.Direction {
	d := FromButtons(k.up[side], k.down[side])
	k.up[side] = false
	k.down[side] = false
	return d
}

// CPU tracks the ball's height, but only while the ball travels toward
// its own goal line.
type CPU struct {
	DeadZone int
}

// Name implements registry.Controller.
func (CPU) Name() string { return NameCPU }

// Direction implements registry.Controller.
func (c CPU) Direction(side core.Side, v core.FieldView) core.Direction {
	approaching := (side == core.SideLeft && v.BallVelocity.VX < 0) ||
		(side == core.SideRight && v.BallVelocity.VX > 0)
	if !approaching {
		return core.DirectionStay
	}
	return FromLevel(v.Ball.Y, v.Paddles[side].Center().Y, c.DeadZone)
}

// Idle never moves its paddle.
type Idle struct{}

// Name implements registry.Controller.
func (Idle) Name() string { return NameIdle }

// Direction implements registry.Controller.
func (Idle) Direction(core.Side, core.FieldView) core.Direction {
	return core.DirectionStay
}
