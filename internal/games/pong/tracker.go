package pong

// ObjectID names one of the three on-screen objects.
type ObjectID int

const (
	ObjectLeftPaddle ObjectID = iota
	ObjectRightPaddle
	ObjectBall
)

// Objects lists every object in drawing order.
var Objects = [3]ObjectID{ObjectLeftPaddle, ObjectRightPaddle, ObjectBall}

// String returns a human-readable name for the object.
func (id ObjectID) String() string {
	switch id {
	case ObjectLeftPaddle:
		return "LeftPaddle"
	case ObjectRightPaddle:
		return "RightPaddle"
	case ObjectBall:
		return "Ball"
	default:
		return "Unknown"
	}
}

// object resolves an ID to the object's current value.
func (g *Game) object(id ObjectID) Object {
	switch id {
	case ObjectLeftPaddle:
		return g.leftPaddle
	case ObjectRightPaddle:
		return g.rightPaddle
	default:
		return g.ball
	}
}

// setMoved writes the moved flag of one object.
func (g *Game) setMoved(id ObjectID, moved bool) {
	switch id {
	case ObjectLeftPaddle:
		g.leftPaddle.HasMoved = moved
	case ObjectRightPaddle:
		g.rightPaddle.HasMoved = moved
	case ObjectBall:
		g.ball.HasMoved = moved
	}
}

// ObjectShapes returns the current shapes of one object.
func (g *Game) ObjectShapes(id ObjectID) []ScreenObject {
	return g.object(id).Shapes()
}

// ContentToDisplay returns every shape on the board: left paddle, right
// paddle, then ball.
func (g *Game) ContentToDisplay() []ScreenObject {
	shapes := make([]ScreenObject, 0, MaxFrameShapes)
	for _, id := range Objects {
		shapes = append(shapes, g.ObjectShapes(id)...)
	}
	return shapes
}

// MovedObjects returns the objects whose position changed since the last
// ResetPositionUpdateIndicators, in drawing order.
func (g *Game) MovedObjects() []ObjectID {
	var moved []ObjectID
	for _, id := range Objects {
		if g.object(id).Moved() {
			moved = append(moved, id)
		}
	}
	return moved
}

// MovedContent returns the shapes of moved objects only.
func (g *Game) MovedContent() []ScreenObject {
	shapes := make([]ScreenObject, 0, MaxFrameShapes)
	for _, id := range g.MovedObjects() {
		shapes = append(shapes, g.ObjectShapes(id)...)
	}
	return shapes
}

// ResetPositionUpdateIndicators clears every moved flag. Call it once the
// renderer has consumed a frame's moved shapes.
func (g *Game) ResetPositionUpdateIndicators() {
	for _, id := range Objects {
		g.setMoved(id, false)
	}
}
