package core

// Direction is the per-tick paddle request of one player.
type Direction int

const (
	DirectionStay Direction = iota
	DirectionUp
	DirectionDown
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirectionStay:
		return "Stay"
	case DirectionUp:
		return "Up"
	case DirectionDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// Side identifies one of the two players.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// Sides lists both sides in the order they are sampled each tick.
var Sides = [2]Side{SideLeft, SideRight}

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// InputFrame holds both players' directions for a single simulation tick.
type InputFrame struct {
	Directions [2]Direction
}

// Set records the direction for a side.
func (f *InputFrame) Set(side Side, d Direction) {
	f.Directions[side] = d
}

// Get returns the direction recorded for a side.
func (f InputFrame) Get(side Side) Direction {
	return f.Directions[side]
}

// Clear resets both sides to Stay for the next frame.
func (f *InputFrame) Clear() {
	f.Directions = [2]Direction{}
}

// FieldView is a read-only picture of the play field handed to input
// controllers, so they can react to the ball without touching game state.
type FieldView struct {
	Field        Rect
	Ball         Point
	BallVelocity Velocity
	Paddles      [2]Rect
}
