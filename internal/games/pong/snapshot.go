package pong

// Snapshot contains the complete state of a game.
// Uses primitive types only so it can be logged and compared directly.
type Snapshot struct {
	Tick     uint64
	BallX    int
	BallY    int
	BallVX   int
	BallVY   int
	Paddle1Y int // Left paddle top edge
	Paddle2Y int // Right paddle top edge
	Finished bool
	Winner   int // 0=none, 1=Left, 2=Right
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     g.tickCount,
		BallX:    g.ball.Center.X,
		BallY:    g.ball.Center.Y,
		BallVX:   g.ball.Velocity.VX,
		BallVY:   g.ball.Velocity.VY,
		Paddle1Y: g.leftPaddle.TopLeft.Y,
		Paddle2Y: g.rightPaddle.TopLeft.Y,
		Finished: g.state.IsFinished(),
	}
	if snap.Finished {
		snap.Winner = int(g.state.Winner)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.BallX)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallY)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallVX)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallVY)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Paddle1Y) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Paddle2Y) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Winner)   //#nosec G115 -- hash computation
	if snap.Finished {
		h = h*31 + 1
	}
	return h
}
