package pong

import "github.com/vovakirdan/pixel-pong/internal/core"

// MaxObjectShapes bounds the shapes a single object renders as.
const MaxObjectShapes = 2

// MaxFrameShapes bounds the shapes a whole frame hands to the renderer.
const MaxFrameShapes = 8

// ScreenObject is a renderer-facing filled shape.
// The variant set is closed: RectangleShape and CircleShape.
type ScreenObject interface {
	// Bounds returns the box the shape is painted into.
	Bounds() core.Rect
	screenObject()
}

// RectangleShape is a filled axis-aligned rectangle.
type RectangleShape struct {
	Rect core.Rect
}

// Bounds implements ScreenObject.
func (s RectangleShape) Bounds() core.Rect { return s.Rect }

func (RectangleShape) screenObject() {}

// CircleShape is a filled circle inscribed in the square at TopLeft.
type CircleShape struct {
	TopLeft  core.Point
	Diameter int
}

// Bounds implements ScreenObject.
func (s CircleShape) Bounds() core.Rect {
	return core.Rect{TopLeft: s.TopLeft, Size: core.Size{Width: s.Diameter, Height: s.Diameter}}
}

func (CircleShape) screenObject() {}

// Object is the behaviour shared by paddles and the ball.
type Object interface {
	Shapes() []ScreenObject
	Box() core.Rect
	IsWithin(field core.Rect) bool
	Moved() bool
}

// positioned is satisfied by value types whose position can be replaced.
type positioned[T any] interface {
	Object
	Position() core.Point
	SetPosition(pos core.Point) T
}

// place returns obj moved to pos if the result stays inside field.
// Otherwise obj is returned unchanged with ok=false.
func place[T positioned[T]](obj T, pos core.Point, field core.Rect) (T, bool) {
	candidate := obj.SetPosition(pos)
	if !candidate.IsWithin(field) {
		return obj, false
	}
	return candidate, true
}

// cornersWithin is the cheap containment test used by both kinds: only
// the top-left and bottom-right corners of box are checked.
func cornersWithin(box, field core.Rect) bool {
	return field.ContainsPoint(box.TopLeft) && field.ContainsPoint(box.BottomRight())
}

// Paddle is a player's bat.
type Paddle struct {
	TopLeft  core.Point
	Width    int
	Height   int
	HasMoved bool
}

// Position returns the paddle's top-left corner.
func (p Paddle) Position() core.Point { return p.TopLeft }

// SetPosition returns a copy of p with its top-left corner at pos.
// HasMoved is carried over unchanged.
func (p Paddle) SetPosition(pos core.Point) Paddle {
	p.TopLeft = pos
	return p
}

// Shapes renders the paddle as one filled rectangle.
func (p Paddle) Shapes() []ScreenObject {
	return []ScreenObject{RectangleShape{Rect: p.Box()}}
}

// Box returns the paddle rectangle.
func (p Paddle) Box() core.Rect {
	return core.Rect{TopLeft: p.TopLeft, Size: core.Size{Width: p.Width, Height: p.Height}}
}

// IsWithin reports whether both corners of the paddle lie inside field.
func (p Paddle) IsWithin(field core.Rect) bool {
	return cornersWithin(p.Box(), field)
}

// Moved reports whether the paddle moved since the last reset.
func (p Paddle) Moved() bool { return p.HasMoved }

// Ball is the single ball in play.
type Ball struct {
	Center   core.Point
	Radius   int
	Velocity core.Velocity
	HasMoved bool
}

// Position returns the centre of the ball.
func (b Ball) Position() core.Point { return b.Center }

// SetPosition returns a copy of b centred at pos.
// HasMoved is carried over unchanged.
func (b Ball) SetPosition(pos core.Point) Ball {
	b.Center = pos
	return b
}

// Shapes renders the ball as one filled circle.
func (b Ball) Shapes() []ScreenObject {
	box := b.Box()
	return []ScreenObject{CircleShape{TopLeft: box.TopLeft, Diameter: box.Size.Width}}
}

// Box returns the square covering the ball.
func (b Ball) Box() core.Rect {
	d := 2 * b.Radius
	return core.Rect{
		TopLeft: b.Center.Sub(core.Point{X: b.Radius, Y: b.Radius}),
		Size:    core.Size{Width: d, Height: d},
	}
}

// IsWithin reports whether both corners of the covering square lie inside
// field.
func (b Ball) IsWithin(field core.Rect) bool {
	return cornersWithin(b.Box(), field)
}

// Moved reports whether the ball moved since the last reset.
func (b Ball) Moved() bool { return b.HasMoved }
