package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Entity dimensions in arena units.
const (
	BallSize     = 10
	PaddleWidth  = 20
	PaddleHeight = 100
)

// Ball is the single ball in play.
type Ball struct {
	core.Box
	Velocity core.Vec2
}

// NewBall creates a stationary ball at the origin.
func NewBall() *Ball {
	return &Ball{Box: core.NewBox(BallSize, BallSize)}
}

// Paddle is one player's bat. Velocity is derived from position changes
// between ticks and only feeds the spin applied on collision.
type Paddle struct {
	core.Box
	Velocity core.Vec2
	Score    int

	last core.Vec2 // Position at the previous Track call
}

// NewPaddle creates a paddle centered at (x, y).
func NewPaddle(x, y float64) *Paddle {
	p := &Paddle{Box: core.NewBox(PaddleWidth, PaddleHeight)}
	p.Center = core.V(x, y)
	p.last = p.Center
	return p
}

// Track recomputes the vertical velocity as a finite difference over dt and
// caches the current position. Non-positive dt leaves the velocity untouched.
func (p *Paddle) Track(dt float64) {
	if dt <= 0 {
		return
	}
	p.Velocity.Y = (p.Center.Y - p.last.Y) / dt
	p.last.Y = p.Center.Y
}
