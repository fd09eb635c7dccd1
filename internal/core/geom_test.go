package core

import "testing"

func TestRectIntersects(t *testing.T) {
	paddle := NewRect(154, 44, 6, 40)

	tests := []struct {
		name string
		box  Rect
		want bool
	}{
		{"ball square inside the paddle face", NewRect(151, 60, 6, 6), true},
		{"ball square just left of the paddle", NewRect(148, 60, 6, 6), false},
		{"ball square touching the top edge", NewRect(150, 38, 6, 6), false},
		{"one pixel over the top edge", NewRect(150, 39, 6, 6), true},
		{"ball square below the paddle", NewRect(154, 90, 6, 6), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.box.Intersects(paddle); got != tc.want {
				t.Errorf("Intersects() = %v, expected %v", got, tc.want)
			}
			if got := paddle.Intersects(tc.box); got != tc.want {
				t.Errorf("Intersects() reversed = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestRectContainsPoint(t *testing.T) {
	field := NewRect(0, 0, 160, 128)

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"origin", Point{0, 0}, true},
		{"centre", Point{80, 64}, true},
		{"far corner is inclusive", Point{160, 128}, true},
		{"past the right goal line", Point{161, 64}, false},
		{"past the left goal line", Point{-1, 64}, false},
		{"above the top wall", Point{80, -1}, false},
		{"below the bottom wall", Point{80, 129}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := field.ContainsPoint(tc.p); got != tc.want {
				t.Errorf("ContainsPoint(%v) = %v, expected %v", tc.p, got, tc.want)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(0, 44, 6, 40)

	if r.Left() != 0 || r.Top() != 44 {
		t.Errorf("Left(), Top() = %d, %d", r.Left(), r.Top())
	}
	if r.Right() != 6 || r.Bottom() != 84 {
		t.Errorf("Right(), Bottom() = %d, %d", r.Right(), r.Bottom())
	}
	if br := r.BottomRight(); br != (Point{6, 84}) {
		t.Errorf("BottomRight() = %v, expected (6, 84)", br)
	}
	if c := r.Center(); c != (Point{3, 64}) {
		t.Errorf("Center() = %v, expected (3, 64)", c)
	}
}

func TestPointArithmetic(t *testing.T) {
	p := Point{50, 50}
	if got := p.Add(Point{2, -1}); got != (Point{52, 49}) {
		t.Errorf("Add() = %v", got)
	}
	if got := p.Sub(Point{3, 3}); got != (Point{47, 47}) {
		t.Errorf("Sub() = %v", got)
	}
}

func TestVelocity(t *testing.T) {
	v := Velocity{VX: 3, VY: -2}

	if got := v.ReflectX(); got != (Velocity{VX: -3, VY: -2}) {
		t.Errorf("ReflectX() = %v", got)
	}
	if got := v.ReflectY(); got != (Velocity{VX: 3, VY: 2}) {
		t.Errorf("ReflectY() = %v", got)
	}
	if got := v.ReflectX().ReflectX(); got != v {
		t.Errorf("double ReflectX() = %v, expected %v", got, v)
	}
	if got := v.Scale(2); got != (Point{6, -4}) {
		t.Errorf("Scale(2) = %v", got)
	}
	if got := v.Scale(0); got != (Point{}) {
		t.Errorf("Scale(0) = %v", got)
	}
}

func TestAbs(t *testing.T) {
	for in, want := range map[int]int{5: 5, -5: 5, 0: 0} {
		if got := Abs(in); got != want {
			t.Errorf("Abs(%d) = %d, expected %d", in, got, want)
		}
	}
}
