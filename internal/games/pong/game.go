// Package pong implements the two-paddle ball game simulation: object
// model, bounce physics, round lifecycle and the moved-object bookkeeping
// that lets a slow display redraw only what changed.
package pong

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/pixel-pong/internal/core"
)

// Default game settings, matching a 160x128 ST7735 panel in landscape.
const (
	DefaultFieldWidth        = 160
	DefaultFieldHeight       = 128
	DefaultBallRadius        = 3
	DefaultPaddleWidth       = 6
	DefaultPaddleHeight      = 40
	DefaultMaxPaddleMovement = 5
	DefaultMaxBallMovement   = 5
	DefaultTimeStep          = 1
	DefaultBallVX            = 2
	DefaultBallVY            = 1
)

// DefaultBallStart is where every round puts the ball.
var DefaultBallStart = core.Point{X: 50, Y: 50}

// ErrInvalidConfig is returned when a Config cannot describe a playable field.
var ErrInvalidConfig = errors.New("pong: invalid config")

// GameOver is the terminal outcome of a round.
type GameOver int

const (
	LeftWins GameOver = iota + 1
	RightWins
)

// String returns a human-readable name for the outcome.
func (g GameOver) String() string {
	switch g {
	case LeftWins:
		return "Left wins"
	case RightWins:
		return "Right wins"
	default:
		return "None"
	}
}

// Message is the text shown on the diagnostic channel.
func (g GameOver) Message() string {
	return g.String() + "! Congratulations!"
}

// Status is the phase of the round state machine.
type Status int

const (
	StatusOngoing Status = iota
	StatusFinished
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusOngoing:
		return "Ongoing"
	case StatusFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// GameState is the result of advancing the ball. Winner is only set when
// Status is StatusFinished.
type GameState struct {
	Status Status
	Winner GameOver
}

// Ongoing returns the state of a round still in play.
func Ongoing() GameState {
	return GameState{Status: StatusOngoing}
}

// Finished returns the state of a round won by w.
func Finished(w GameOver) GameState {
	return GameState{Status: StatusFinished, Winner: w}
}

// IsFinished reports whether the round is over.
func (s GameState) IsFinished() bool {
	return s.Status == StatusFinished
}

// String returns "Ongoing" or "Finished(<winner>)".
func (s GameState) String() string {
	if s.IsFinished() {
		return fmt.Sprintf("Finished(%s)", s.Winner)
	}
	return s.Status.String()
}

// Config describes the field and objects of a game. It is validated once
// by NewGame; nothing is checked afterwards.
type Config struct {
	FieldWidth      int
	FieldHeight     int
	BallRadius      int
	PaddleWidth     int
	PaddleHeight    int
	TimeTick        TimeTick
	InitialVelocity core.Velocity
	BallStart       core.Point
	Collider        PaddleCollider // nil selects CenterInBox
}

// DefaultConfig returns the configuration of the 160x128 board.
func DefaultConfig() Config {
	return Config{
		FieldWidth:   DefaultFieldWidth,
		FieldHeight:  DefaultFieldHeight,
		BallRadius:   DefaultBallRadius,
		PaddleWidth:  DefaultPaddleWidth,
		PaddleHeight: DefaultPaddleHeight,
		TimeTick: TimeTick{
			MaxPaddleMovement: DefaultMaxPaddleMovement,
			MaxBallMovement:   DefaultMaxBallMovement,
			TimeStep:          DefaultTimeStep,
		},
		InitialVelocity: core.Velocity{VX: DefaultBallVX, VY: DefaultBallVY},
		BallStart:       DefaultBallStart,
	}
}

// Field returns the play-field rectangle described by c.
func (c Config) Field() core.Rect {
	return core.NewRect(0, 0, c.FieldWidth, c.FieldHeight)
}

// Validate checks that c describes a playable board.
func (c Config) Validate() error {
	switch {
	case c.FieldWidth <= 0 || c.FieldHeight <= 0:
		return fmt.Errorf("%w: field must be positive, got %dx%d", ErrInvalidConfig, c.FieldWidth, c.FieldHeight)
	case c.BallRadius <= 0:
		return fmt.Errorf("%w: ball radius must be positive, got %d", ErrInvalidConfig, c.BallRadius)
	case c.PaddleWidth <= 0 || c.PaddleHeight <= 0:
		return fmt.Errorf("%w: paddle must be positive, got %dx%d", ErrInvalidConfig, c.PaddleWidth, c.PaddleHeight)
	case c.PaddleHeight > c.FieldHeight:
		return fmt.Errorf("%w: paddle height %d exceeds field height %d", ErrInvalidConfig, c.PaddleHeight, c.FieldHeight)
	case 2*c.PaddleWidth >= c.FieldWidth:
		return fmt.Errorf("%w: paddles %d wide leave no room in a field %d wide", ErrInvalidConfig, c.PaddleWidth, c.FieldWidth)
	case c.TimeTick.TimeStep <= 0:
		return fmt.Errorf("%w: time step must be positive, got %d", ErrInvalidConfig, c.TimeTick.TimeStep)
	case c.TimeTick.MaxPaddleMovement <= 0:
		return fmt.Errorf("%w: max paddle movement must be positive, got %d", ErrInvalidConfig, c.TimeTick.MaxPaddleMovement)
	case c.TimeTick.MaxBallMovement <= 0 || c.TimeTick.MaxBallMovement > c.FieldHeight:
		return fmt.Errorf("%w: max ball movement must be in [1, %d], got %d", ErrInvalidConfig, c.FieldHeight, c.TimeTick.MaxBallMovement)
	}

	// A single reflection per axis is only correct for small steps.
	step := c.InitialVelocity.Scale(c.TimeTick.TimeStep)
	if core.Abs(step.X) > c.TimeTick.MaxBallMovement || core.Abs(step.Y) > c.TimeTick.MaxBallMovement {
		return fmt.Errorf("%w: ball step %v exceeds max ball movement %d", ErrInvalidConfig, step, c.TimeTick.MaxBallMovement)
	}

	ball := Ball{Center: c.BallStart, Radius: c.BallRadius}
	if !ball.IsWithin(c.Field()) {
		return fmt.Errorf("%w: ball start %v is outside the field", ErrInvalidConfig, c.BallStart)
	}
	return nil
}

// Game owns both paddles, the ball and the round state.
// It is not safe for concurrent use; one control loop drives it.
type Game struct {
	cfg         Config
	field       core.Rect
	leftPaddle  Paddle
	rightPaddle Paddle
	ball        Ball
	state       GameState
	collider    PaddleCollider
	tickCount   uint64
	lastBounces Bounce
}

// NewGame validates cfg and sets up a board with both paddles centred
// vertically against their goal lines and the ball at its start position.
// Every object starts flagged as moved so the first frame draws it.
func NewGame(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	collider := cfg.Collider
	if collider == nil {
		collider = CenterInBox{}
	}

	paddleY := (cfg.FieldHeight - cfg.PaddleHeight) / 2
	g := &Game{
		cfg:      cfg,
		field:    cfg.Field(),
		collider: collider,
		state:    Ongoing(),
		leftPaddle: Paddle{
			TopLeft:  core.Point{X: 0, Y: paddleY},
			Width:    cfg.PaddleWidth,
			Height:   cfg.PaddleHeight,
			HasMoved: true,
		},
		rightPaddle: Paddle{
			TopLeft:  core.Point{X: cfg.FieldWidth - cfg.PaddleWidth, Y: paddleY},
			Width:    cfg.PaddleWidth,
			Height:   cfg.PaddleHeight,
			HasMoved: true,
		},
		ball: Ball{
			Center:   cfg.BallStart,
			Radius:   cfg.BallRadius,
			Velocity: cfg.InitialVelocity,
			HasMoved: true,
		},
	}
	return g, nil
}

// paddle returns a pointer to the paddle on the given side.
func (g *Game) paddle(side core.Side) *Paddle {
	if side == core.SideRight {
		return &g.rightPaddle
	}
	return &g.leftPaddle
}

// MovePaddle shifts a paddle one step up or down. The whole step is
// refused if the paddle would leave the field; there is no sliding to the
// edge. Returns whether the paddle moved.
func (g *Game) MovePaddle(side core.Side, dir core.Direction) bool {
	step := g.cfg.TimeTick.MaxPaddleMovement
	switch dir {
	case core.DirectionUp:
		step = -step
	case core.DirectionDown:
	default:
		return false
	}

	p := g.paddle(side)
	candidate := p.SetPosition(core.Point{X: p.TopLeft.X, Y: p.TopLeft.Y + step})
	if !candidate.IsWithin(g.field) {
		return false
	}
	candidate.HasMoved = true
	*p = candidate
	return true
}

// LetBallMove advances the ball by one tick and reports the round state.
// A finished round is not reset here: the caller reacts to the result and
// calls StartNewGame. While finished the call does nothing.
func (g *Game) LetBallMove() GameState {
	if g.state.IsFinished() {
		return g.state
	}

	g.tickCount++
	res := advanceBall(g.ball, g.field, g.leftPaddle, g.rightPaddle, g.cfg.TimeTick, g.collider)
	g.lastBounces = res.bounces
	g.state = res.state
	if !res.state.IsFinished() {
		g.ball = res.ball
	}
	return g.state
}

// StartNewGame puts the ball back at its start position with the initial
// velocity. Paddles stay where they are.
func (g *Game) StartNewGame() {
	ball := g.ball.SetPosition(g.cfg.BallStart)
	ball.Velocity = g.cfg.InitialVelocity
	if ball.Center != g.ball.Center {
		ball.HasMoved = true
	}
	g.ball = ball
	g.state = Ongoing()
	g.lastBounces = 0
}

// SetBallPosition moves the ball centre to pos unless the ball would leave
// the field. Returns false when the move is rejected.
func (g *Game) SetBallPosition(pos core.Point) bool {
	ball, ok := place(g.ball, pos, g.field)
	if !ok {
		return false
	}
	if ball.Center != g.ball.Center {
		ball.HasMoved = true
	}
	g.ball = ball
	return true
}

// SetPaddlePosition moves a paddle's top-left corner to pos unless the
// paddle would leave the field. Returns false when the move is rejected.
func (g *Game) SetPaddlePosition(side core.Side, pos core.Point) bool {
	p := g.paddle(side)
	moved, ok := place(*p, pos, g.field)
	if !ok {
		return false
	}
	if moved.TopLeft != p.TopLeft {
		moved.HasMoved = true
	}
	*p = moved
	return true
}

// ValidBoard reports whether both paddles lie inside the field.
// It holds by construction; richer board rules can be added here.
func (g *Game) ValidBoard() bool {
	return g.leftPaddle.IsWithin(g.field) && g.rightPaddle.IsWithin(g.field)
}

// State returns the current round state.
func (g *Game) State() GameState {
	return g.state
}

// Tick returns how many ball moves have been simulated.
func (g *Game) Tick() uint64 {
	return g.tickCount
}

// LastBounces returns the reflections of the most recent ball move.
func (g *Game) LastBounces() Bounce {
	return g.lastBounces
}

// Field returns the play-field rectangle.
func (g *Game) Field() core.Rect {
	return g.field
}

// Config returns the configuration the game was built from.
func (g *Game) Config() Config {
	return g.cfg
}

// Ball returns a copy of the ball.
func (g *Game) Ball() Ball {
	return g.ball
}

// Paddle returns a copy of the paddle on the given side.
func (g *Game) Paddle(side core.Side) Paddle {
	return *g.paddle(side)
}

// View returns the read-only picture handed to input controllers.
func (g *Game) View() core.FieldView {
	return core.FieldView{
		Field:        g.field,
		Ball:         g.ball.Center,
		BallVelocity: g.ball.Velocity,
		Paddles:      [2]core.Rect{g.leftPaddle.Box(), g.rightPaddle.Box()},
	}
}
