package pong

import (
	"fmt"

	"github.com/vovakirdan/pixel-pong/internal/core"
)

// TimeTick is the movement budget of one frame, fixed for a round.
type TimeTick struct {
	MaxPaddleMovement int // Pixels a paddle moves per Up/Down request
	MaxBallMovement   int // Largest per-axis ball displacement per tick
	TimeStep          int // Scales velocity into per-frame displacement
}

// RelativeMovement returns the displacement the ball covers in one tick.
func (b Ball) RelativeMovement(t TimeTick) core.Point {
	return b.Velocity.Scale(t.TimeStep)
}

// PaddleCollider decides whether the ball touches a paddle.
type PaddleCollider interface {
	Collides(ball Ball, paddle Paddle) bool
}

// CenterInBox reports a hit when the ball centre lies inside the paddle box.
// It is crude on purpose: no swept test and no distinction between the
// paddle face and its ends.
type CenterInBox struct{}

// Collides implements PaddleCollider.
func (CenterInBox) Collides(ball Ball, paddle Paddle) bool {
	return paddle.Box().ContainsPoint(ball.Center)
}

// BoxOverlap reports a hit when the ball's covering square overlaps the
// paddle box. It catches grazing contacts that CenterInBox misses.
type BoxOverlap struct{}

// Collides implements PaddleCollider.
func (BoxOverlap) Collides(ball Ball, paddle Paddle) bool {
	return ball.Box().Intersects(paddle.Box())
}

// Collider names accepted in configuration.
const (
	ColliderCenter  = "center"
	ColliderOverlap = "overlap"
)

// ColliderByName returns the collider registered under name.
// An empty name selects CenterInBox.
func ColliderByName(name string) (PaddleCollider, error) {
	switch name {
	case "", ColliderCenter:
		return CenterInBox{}, nil
	case ColliderOverlap:
		return BoxOverlap{}, nil
	default:
		return nil, fmt.Errorf("unknown paddle collider %q", name)
	}
}

// Bounce records which reflections a tick performed.
type Bounce uint8

const (
	BounceWall Bounce = 1 << iota
	BouncePaddle
)

// Has reports whether b includes flag.
func (b Bounce) Has(flag Bounce) bool {
	return b&flag != 0
}

// bounceAgainstWalls moves the ball to candidate, mirroring it back into
// the field if it overshoots the top or bottom edge. The left and right
// edges are goal lines, so x is always taken from candidate.
func bounceAgainstWalls(ball Ball, field core.Rect, candidate core.Point) (Ball, bool) {
	next := candidate
	bounced := false

	if candidate.Y < field.Top() {
		overshoot := field.Top() - candidate.Y
		next.Y = field.Top() + overshoot
		ball.Velocity = ball.Velocity.ReflectY()
		bounced = true
	}
	if candidate.Y > field.Bottom() {
		overshoot := candidate.Y - field.Bottom()
		next.Y = field.Bottom() - overshoot
		ball.Velocity = ball.Velocity.ReflectY()
		bounced = true
	}

	ball.Center = next
	return ball, bounced
}

// bounceAgainstPaddles reflects vx if the ball hits the paddle it is
// heading toward.
func bounceAgainstPaddles(ball Ball, left, right Paddle, collider PaddleCollider) (Ball, bool) {
	var target Paddle
	switch {
	case ball.Velocity.VX < 0:
		target = left
	case ball.Velocity.VX > 0:
		target = right
	default:
		return ball, false
	}

	if !collider.Collides(ball, target) {
		return ball, false
	}
	ball.Velocity = ball.Velocity.ReflectX()
	return ball, true
}

// winner reports the round outcome for a resolved ball position.
func winner(ball Ball, field core.Rect) (GameOver, bool) {
	switch {
	case ball.Center.X < field.Left():
		// Left player failed to return
		return RightWins, true
	case ball.Center.X > field.Right():
		return LeftWins, true
	default:
		return 0, false
	}
}

// stepResult is the outcome of advancing the ball by one tick.
type stepResult struct {
	ball    Ball
	bounces Bounce
	state   GameState
}

// advanceBall runs one tick of ball physics: integrate, walls, the
// goal-line check, then paddles. Walls are resolved before paddles and
// each axis reflects at most once. A ball past a goal line is lost even
// if a collider would still report contact with the paddle.
func advanceBall(ball Ball, field core.Rect, left, right Paddle, tick TimeTick, collider PaddleCollider) stepResult {
	candidate := ball.Center.Add(ball.RelativeMovement(tick))

	var res stepResult
	var hit bool

	ball, hit = bounceAgainstWalls(ball, field, candidate)
	if hit {
		res.bounces |= BounceWall
	}

	if w, over := winner(ball, field); over {
		res.ball = ball
		res.state = Finished(w)
		return res
	}

	ball, hit = bounceAgainstPaddles(ball, left, right, collider)
	if hit {
		res.bounces |= BouncePaddle
	}

	res.ball = ball
	res.ball.HasMoved = true
	res.state = Ongoing()
	return res
}
