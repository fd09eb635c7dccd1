// Package loop drives a game one frame at a time: sample controllers,
// move paddles, advance the ball, repaint only what moved.
package loop

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-pong/internal/core"
	"github.com/vovakirdan/pixel-pong/internal/display"
	"github.com/vovakirdan/pixel-pong/internal/games/pong"
	"github.com/vovakirdan/pixel-pong/internal/registry"
)

// Stats summarises what a runner has done so far.
type Stats struct {
	Frames      uint64
	Rounds      uint64
	LeftWins    uint64
	RightWins   uint64
	PixelWrites uint64
}

// Runner owns a game, its two controllers and the display it paints.
// It is not safe for concurrent use.
type Runner struct {
	game     *pong.Game
	players  [2]registry.Controller
	display  *display.Display
	notifier Notifier
	logger   *log.Logger
	inputs   core.InputFrame
	stats    Stats
}

// Option configures a Runner.
type Option func(*Runner)

// WithNotifier sets the collaborator told about finished rounds.
func WithNotifier(n Notifier) Option {
	return func(r *Runner) { r.notifier = n }
}

// WithLogger sets the logger used for frame diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// NewRunner creates a runner. Without options round results are dropped
// and nothing is logged.
func NewRunner(game *pong.Game, left, right registry.Controller, disp *display.Display, opts ...Option) *Runner {
	r := &Runner{
		game:     game,
		players:  [2]registry.Controller{left, right},
		display:  disp,
		notifier: nopNotifier{},
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Game returns the simulated game.
func (r *Runner) Game() *pong.Game {
	return r.game
}

// Display returns the display being painted.
func (r *Runner) Display() *display.Display {
	return r.display
}

// Controller returns the controller playing side.
func (r *Runner) Controller(side core.Side) registry.Controller {
	return r.players[side]
}

// Inputs returns the directions sampled for the most recent frame.
func (r *Runner) Inputs() core.InputFrame {
	return r.inputs
}

// Stats returns counters accumulated since the runner was created.
func (r *Runner) Stats() Stats {
	s := r.stats
	s.PixelWrites = r.display.Screen().Writes()
	return s
}

// Step runs one frame and returns the state LetBallMove reported. When a
// round finishes the notifier is told and a new round starts in the same
// frame, so the reset ball is painted immediately.
func (r *Runner) Step() pong.GameState {
	var old [len(pong.Objects)][]pong.ScreenObject
	for _, id := range pong.Objects {
		old[id] = r.game.ObjectShapes(id)
	}

	// Both controllers see the same view before either paddle moves
	view := r.game.View()
	r.inputs.Clear()
	for _, side := range core.Sides {
		r.inputs.Set(side, r.players[side].Direction(side, view))
	}
	for _, side := range core.Sides {
		r.game.MovePaddle(side, r.inputs.Get(side))
	}

	state := r.game.LetBallMove()
	r.stats.Frames++
	if state.IsFinished() {
		r.finishRound(state.Winner)
	}

	r.repaint(old)
	r.game.ResetPositionUpdateIndicators()
	return state
}

// NewRound abandons the current round and puts the ball back in play.
func (r *Runner) NewRound() {
	var old [len(pong.Objects)][]pong.ScreenObject
	for _, id := range pong.Objects {
		old[id] = r.game.ObjectShapes(id)
	}
	r.game.StartNewGame()
	r.repaint(old)
	r.game.ResetPositionUpdateIndicators()
}

// Redraw repaints the whole frame, e.g. after the terminal was resized.
func (r *Runner) Redraw() {
	r.display.Redraw(r.game.ContentToDisplay())
	r.game.ResetPositionUpdateIndicators()
}

// Run calls Step every interval until ctx is cancelled or maxTicks frames
// have run. maxTicks == 0 means no limit. Returns ctx.Err() on
// cancellation and nil when the budget is spent.
func (r *Runner) Run(ctx context.Context, interval time.Duration, maxTicks uint64) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var ticks uint64
	for maxTicks == 0 || ticks < maxTicks {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			r.Step()
			ticks++
		}
	}
	return nil
}

// RunFor runs n frames back to back without waiting.
func (r *Runner) RunFor(n uint64) {
	for i := uint64(0); i < n; i++ {
		r.Step()
	}
}

func (r *Runner) finishRound(w pong.GameOver) {
	r.stats.Rounds++
	switch w {
	case pong.LeftWins:
		r.stats.LeftWins++
	case pong.RightWins:
		r.stats.RightWins++
	}
	r.logger.Debug("round over", "tick", r.game.Tick(), "winner", w)
	r.notifier.RoundOver(w)
	r.game.StartNewGame()
}

// repaint erases the previous shapes of moved objects and draws the
// current ones. Objects touching a repainted area are repainted too, in
// drawing order, so the result matches a full redraw.
func (r *Runner) repaint(old [len(pong.Objects)][]pong.ScreenObject) {
	moved := r.game.MovedObjects()
	if len(moved) == 0 {
		return
	}

	var dirty []core.Rect
	var redraw [len(pong.Objects)]bool
	var erase []pong.ScreenObject
	for _, id := range moved {
		redraw[id] = true
		erase = append(erase, old[id]...)
		dirty = appendBounds(dirty, old[id])
		dirty = appendBounds(dirty, r.game.ObjectShapes(id))
	}

	// Grow the redraw set until no untouched object overlaps it
	for changed := true; changed; {
		changed = false
		for _, id := range pong.Objects {
			if redraw[id] || !overlapsAny(r.game.ObjectShapes(id), dirty) {
				continue
			}
			redraw[id] = true
			dirty = appendBounds(dirty, r.game.ObjectShapes(id))
			changed = true
		}
	}

	r.display.Erase(erase)
	for _, id := range pong.Objects {
		if redraw[id] {
			r.display.Draw(r.game.ObjectShapes(id))
		}
	}
	r.logger.Debug("repaint", "tick", r.game.Tick(), "moved", len(moved), "writes", r.display.Screen().Writes())
}

func appendBounds(dst []core.Rect, shapes []pong.ScreenObject) []core.Rect {
	for _, s := range shapes {
		dst = append(dst, s.Bounds())
	}
	return dst
}

func overlapsAny(shapes []pong.ScreenObject, regions []core.Rect) bool {
	for _, s := range shapes {
		for _, region := range regions {
			if s.Bounds().Intersects(region) {
				return true
			}
		}
	}
	return false
}
