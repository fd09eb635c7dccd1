package pong

import (
	"testing"

	"github.com/vovakirdan/pixel-pong/internal/core"
)

func TestPaddleSetPositionIsPure(t *testing.T) {
	p := Paddle{TopLeft: core.Point{X: 0, Y: 10}, Width: 6, Height: 40, HasMoved: true}

	moved := p.SetPosition(core.Point{X: 0, Y: 20})

	if p.TopLeft.Y != 10 {
		t.Errorf("SetPosition mutated the receiver: y = %d", p.TopLeft.Y)
	}
	if moved.TopLeft != (core.Point{X: 0, Y: 20}) {
		t.Errorf("SetPosition() top-left = %v, expected (0, 20)", moved.TopLeft)
	}
	if moved.Width != 6 || moved.Height != 40 {
		t.Errorf("SetPosition should keep size, got %dx%d", moved.Width, moved.Height)
	}
	if !moved.HasMoved {
		t.Error("SetPosition should carry HasMoved over unchanged")
	}
}

func TestBallSetPositionIsPure(t *testing.T) {
	b := Ball{Center: core.Point{X: 5, Y: 5}, Radius: 3, Velocity: core.Velocity{VX: 2, VY: -1}}

	moved := b.SetPosition(core.Point{X: 9, Y: 7})

	if b.Center != (core.Point{X: 5, Y: 5}) {
		t.Errorf("SetPosition mutated the receiver: %v", b.Center)
	}
	if moved.Center != (core.Point{X: 9, Y: 7}) || moved.Radius != 3 || moved.Velocity != b.Velocity {
		t.Errorf("SetPosition() = %+v", moved)
	}
	if moved.HasMoved {
		t.Error("SetPosition should not flag movement by itself")
	}
}

func TestPaddleShapesAndBox(t *testing.T) {
	p := Paddle{TopLeft: core.Point{X: 154, Y: 30}, Width: 6, Height: 40}

	box := p.Box()
	if box != core.NewRect(154, 30, 6, 40) {
		t.Errorf("Box() = %v", box)
	}

	shapes := p.Shapes()
	if len(shapes) != 1 || len(shapes) > MaxObjectShapes {
		t.Fatalf("Shapes() returned %d shapes, expected 1", len(shapes))
	}
	rect, ok := shapes[0].(RectangleShape)
	if !ok {
		t.Fatalf("paddle shape should be a rectangle, got %T", shapes[0])
	}
	if rect.Rect != box || rect.Bounds() != box {
		t.Errorf("rectangle = %v, expected %v", rect.Rect, box)
	}
}

func TestBallShapesAndBox(t *testing.T) {
	b := Ball{Center: core.Point{X: 10, Y: 20}, Radius: 3}

	box := b.Box()
	if box != core.NewRect(7, 17, 6, 6) {
		t.Errorf("Box() = %v, expected (7,17) 6x6", box)
	}

	shapes := b.Shapes()
	if len(shapes) != 1 {
		t.Fatalf("Shapes() returned %d shapes, expected 1", len(shapes))
	}
	circle, ok := shapes[0].(CircleShape)
	if !ok {
		t.Fatalf("ball shape should be a circle, got %T", shapes[0])
	}
	if circle.TopLeft != (core.Point{X: 7, Y: 17}) || circle.Diameter != 6 {
		t.Errorf("circle = %+v", circle)
	}
	if circle.Bounds() != box {
		t.Errorf("circle bounds = %v, expected %v", circle.Bounds(), box)
	}
}

func TestIsWithin(t *testing.T) {
	field := core.NewRect(0, 0, 160, 128)

	tests := []struct {
		name     string
		obj      Object
		expected bool
	}{
		{"paddle inside", Paddle{TopLeft: core.Point{X: 0, Y: 0}, Width: 6, Height: 40}, true},
		{"paddle flush bottom-right", Paddle{TopLeft: core.Point{X: 154, Y: 88}, Width: 6, Height: 40}, true},
		{"paddle past bottom", Paddle{TopLeft: core.Point{X: 154, Y: 89}, Width: 6, Height: 40}, false},
		{"paddle above top", Paddle{TopLeft: core.Point{X: 0, Y: -1}, Width: 6, Height: 40}, false},
		{"ball inside", Ball{Center: core.Point{X: 50, Y: 50}, Radius: 3}, true},
		{"ball touching top", Ball{Center: core.Point{X: 50, Y: 3}, Radius: 3}, true},
		{"ball crossing top", Ball{Center: core.Point{X: 50, Y: 2}, Radius: 3}, false},
		{"ball crossing right", Ball{Center: core.Point{X: 158, Y: 50}, Radius: 3}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.obj.IsWithin(field); got != tc.expected {
				t.Errorf("IsWithin() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestPlaceRejectsOutsideField(t *testing.T) {
	field := core.NewRect(0, 0, 160, 128)
	b := Ball{Center: core.Point{X: 50, Y: 50}, Radius: 3}

	got, ok := place(b, core.Point{X: 1, Y: 50}, field)
	if ok {
		t.Error("place should reject a ball crossing the left edge")
	}
	if got != b {
		t.Errorf("rejected place should return the original, got %+v", got)
	}

	got, ok = place(b, core.Point{X: 60, Y: 70}, field)
	if !ok || got.Center != (core.Point{X: 60, Y: 70}) {
		t.Errorf("place() = %+v, %v", got, ok)
	}
}
