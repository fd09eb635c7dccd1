package input

import (
	"testing"

	"github.com/vovakirdan/pixel-pong/internal/core"
	"github.com/vovakirdan/pixel-pong/internal/registry"
)

func TestFromButtons(t *testing.T) {
	tests := []struct {
		up, down bool
		expected core.Direction
	}{
		{false, false, core.DirectionStay},
		{true, false, core.DirectionUp},
		{false, true, core.DirectionDown},
		{true, true, core.DirectionStay},
	}

	for _, tc := range tests {
		if got := FromButtons(tc.up, tc.down); got != tc.expected {
			t.Errorf("FromButtons(%v, %v) = %v, expected %v", tc.up, tc.down, got, tc.expected)
		}
	}
}

func TestFromLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    int
		expected core.Direction
	}{
		{"far above", 10, core.DirectionUp},
		{"edge of dead zone above", 60, core.DirectionStay},
		{"centre", 64, core.DirectionStay},
		{"edge of dead zone below", 68, core.DirectionStay},
		{"just below", 69, core.DirectionDown},
		{"just above", 59, core.DirectionUp},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FromLevel(tc.level, 64, 4); got != tc.expected {
				t.Errorf("FromLevel(%d) = %v, expected %v", tc.level, got, tc.expected)
			}
		})
	}
}

func TestKeysConsumedPerTick(t *testing.T) {
	k := NewKeys()
	view := core.FieldView{}

	k.Press(core.SideLeft, core.DirectionUp)
	k.Press(core.SideRight, core.DirectionDown)

	if d := k.Direction(core.SideLeft, view); d != core.DirectionUp {
		t.Errorf("left = %v, expected Up", d)
	}
	if d := k.Direction(core.SideRight, view); d != core.DirectionDown {
		t.Errorf("right = %v, expected Down", d)
	}

	// Second sample without new presses
	if d := k.Direction(core.SideLeft, view); d != core.DirectionStay {
		t.Errorf("left after consume = %v, expected Stay", d)
	}

	k.Press(core.SideLeft, core.DirectionUp)
	k.Press(core.SideLeft, core.DirectionDown)
	if d := k.Direction(core.SideLeft, view); d != core.DirectionStay {
		t.Errorf("both buttons = %v, expected Stay", d)
	}
}

func TestCPUTracksApproachingBall(t *testing.T) {
	field := core.NewRect(0, 0, 160, 128)
	paddles := [2]core.Rect{core.NewRect(0, 44, 6, 40), core.NewRect(154, 44, 6, 40)}
	cpu := CPU{DeadZone: DefaultCPUDeadZone}

	tests := []struct {
		name     string
		side     core.Side
		ball     core.Point
		vx       int
		expected core.Direction
	}{
		{"right, approaching, ball above", core.SideRight, core.Point{X: 100, Y: 10}, 2, core.DirectionUp},
		{"right, approaching, ball below", core.SideRight, core.Point{X: 100, Y: 120}, 2, core.DirectionDown},
		{"right, approaching, ball level", core.SideRight, core.Point{X: 100, Y: 66}, 2, core.DirectionStay},
		{"right, receding", core.SideRight, core.Point{X: 100, Y: 10}, -2, core.DirectionStay},
		{"left, approaching, ball above", core.SideLeft, core.Point{X: 50, Y: 10}, -2, core.DirectionUp},
		{"left, receding", core.SideLeft, core.Point{X: 50, Y: 10}, 2, core.DirectionStay},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			view := core.FieldView{
				Field:        field,
				Ball:         tc.ball,
				BallVelocity: core.Velocity{VX: tc.vx, VY: 1},
				Paddles:      paddles,
			}
			if got := cpu.Direction(tc.side, view); got != tc.expected {
				t.Errorf("Direction() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestIdle(t *testing.T) {
	if d := (Idle{}).Direction(core.SideLeft, core.FieldView{}); d != core.DirectionStay {
		t.Errorf("Idle.Direction() = %v", d)
	}
}

func TestRegistered(t *testing.T) {
	for _, name := range []string{NameKeyboard, NameCPU, NameIdle} {
		c, err := registry.Create(name)
		if err != nil {
			t.Errorf("Create(%q) error = %v", name, err)
			continue
		}
		if c.Name() != name {
			t.Errorf("Create(%q).Name() = %q", name, c.Name())
		}
	}

	// Each keyboard controller has its own key state
	a, _ := registry.Create(NameKeyboard)
	b, _ := registry.Create(NameKeyboard)
	a.(Presser).Press(core.SideLeft, core.DirectionUp)
	if d := b.Direction(core.SideLeft, core.FieldView{}); d != core.DirectionStay {
		t.Errorf("keyboard controllers share state: %v", d)
	}
}
