// Package core provides the geometry, colour, input and framebuffer types
// shared by the simulation and its drivers. It has no external dependencies
// so game logic stays pure and testable.
package core

// Point is a pixel coordinate. Origin is top-left, y grows downward.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Size is the extent of a rectangle in pixels.
type Size struct {
	Width, Height int
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	TopLeft Point
	Size    Size
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{TopLeft: Point{X: x, Y: y}, Size: Size{Width: w, Height: h}}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() int {
	return r.TopLeft.X
}

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() int {
	return r.TopLeft.Y
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.TopLeft.X + r.Size.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.TopLeft.Y + r.Size.Height
}

// BottomRight returns TopLeft + Size.
func (r Rect) BottomRight() Point {
	return Point{X: r.Right(), Y: r.Bottom()}
}

// ContainsPoint reports whether p lies inside the rectangle.
// Both edges are inclusive, so BottomRight itself is contained.
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Top() && p.Y <= r.Bottom()
}

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection; touching edges do not overlap.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.Left() >= other.Right() || other.Left() >= r.Right() {
		return false
	}
	if r.Top() >= other.Bottom() || other.Top() >= r.Bottom() {
		return false
	}
	return true
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.TopLeft.X + r.Size.Width/2, Y: r.TopLeft.Y + r.Size.Height/2}
}

// Velocity is a signed per-tick displacement in the ball's own frame.
// Negative VX heads toward the left paddle.
type Velocity struct {
	VX, VY int
}

// Scale multiplies both components by step.
func (v Velocity) Scale(step int) Point {
	return Point{X: v.VX * step, Y: v.VY * step}
}

// ReflectX negates the horizontal component.
func (v Velocity) ReflectX() Velocity {
	return Velocity{VX: -v.VX, VY: v.VY}
}

// ReflectY negates the vertical component.
func (v Velocity) ReflectY() Velocity {
	return Velocity{VX: v.VX, VY: -v.VY}
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
