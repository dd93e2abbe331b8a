// Package pong implements a classic two-paddle Pong simulation.
// The left paddle follows the player's pointer, the right paddle is driven by
// the computer and tracks the ball perfectly.
//
// The package is host-agnostic: drawing goes through core.Surface, time comes
// from a Clock, and input arrives through Controller methods. Nothing in here
// locks; every call is expected on the host's single UI goroutine.
package pong

import (
	"math/rand"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Rules. These are fixed; only the arena size and presentation are configurable.
const (
	InitialSpeed = 250.0 // Ball speed at the start of each rally, units/second
	LaunchSpread = 200.0 // Component range used to pick the launch direction
	SpeedUp      = 1.05  // Horizontal speed multiplier per paddle hit
	SpinTransfer = 0.2   // Share of paddle vertical speed added to the ball
	PaddleInset  = 40.0  // Distance of each paddle's center from its wall
)

// MinArenaWidth is the narrowest arena in which the ball at rest in the center
// touches neither paddle. Narrower sizes are widened to it.
const MinArenaWidth = 2*(PaddleInset+PaddleWidth/2) + BallSize

// Paddle indices.
const (
	Human    = 0 // Left paddle, pointer controlled
	Computer = 1 // Right paddle, follows the ball
)

// Phase is the implicit state of a rally.
type Phase int

const (
	PhaseIdle    Phase = iota // Ball at rest, waiting for a launch
	PhasePlaying              // Ball in motion
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	default:
		return "unknown"
	}
}

// Simulation owns the ball and both paddles and advances them in time.
type Simulation struct {
	ball    *Ball
	paddles [2]*Paddle

	width  float64
	height float64

	rng       *rand.Rand
	tickCount uint64
}

// New creates a simulation for an arena of the given size.
// The seed drives the launch direction so runs are reproducible.
func New(width, height float64, seed int64) *Simulation {
	width = max(width, MinArenaWidth)
	s := &Simulation{
		ball:   NewBall(),
		width:  width,
		height: height,
		rng:    rand.New(rand.NewSource(seed)), //nolint:gosec // gameplay randomness
	}

	s.paddles[Human] = NewPaddle(PaddleInset, height/2)
	s.paddles[Computer] = NewPaddle(width-PaddleInset, height/2)

	s.Reset()
	return s
}

// Ball returns the ball.
func (s *Simulation) Ball() *Ball {
	return s.ball
}

// Paddle returns the paddle at index Human or Computer.
func (s *Simulation) Paddle(i int) *Paddle {
	return s.paddles[i]
}

// Paddles returns both paddles, left first.
func (s *Simulation) Paddles() [2]*Paddle {
	return s.paddles
}

// Size returns the arena dimensions.
func (s *Simulation) Size() (width, height float64) {
	return s.width, s.height
}

// Ticks returns how many ticks have been simulated.
func (s *Simulation) Ticks() uint64 {
	return s.tickCount
}

// Phase reports whether a rally is in progress.
func (s *Simulation) Phase() Phase {
	if s.ball.Velocity.IsZero() {
		return PhaseIdle
	}
	return PhasePlaying
}

// Launch serves the ball from rest. It has no effect while the ball is moving
// and reports whether a launch happened.
func (s *Simulation) Launch() bool {
	b := s.ball
	if !b.Velocity.IsZero() {
		return false
	}

	dir := 1.0
	if s.rng.Float64() <= 0.5 {
		dir = -1.0
	}
	v := core.V(LaunchSpread*dir, LaunchSpread*(s.rng.Float64()*2-1))

	// x is never zero, so the vector always has a direction
	b.Velocity, _ = v.WithMagnitude(InitialSpeed)
	return true
}

// Reset puts the ball back at the arena center at rest.
// Paddles and scores are left alone.
func (s *Simulation) Reset() {
	s.ball.Velocity = core.Vec2{}
	s.ball.Center = core.V(s.width/2, s.height/2)
}

// MovePaddle places the human paddle at a normalized vertical position,
// 0 being the top of the arena and 1 the bottom.
func (s *Simulation) MovePaddle(normalizedY float64) {
	s.paddles[Human].Center.Y = s.height * core.ClampF(normalizedY, 0, 1)
}

// Resize re-bounds the arena after the host surface changed size.
// Widths below MinArenaWidth are raised to it.
func (s *Simulation) Resize(width, height float64) {
	width = max(width, MinArenaWidth)
	s.width = width
	s.height = height
	s.paddles[Human].Center.X = PaddleInset
	s.paddles[Computer].Center.X = width - PaddleInset
	if s.Phase() == PhaseIdle {
		s.Reset()
	}
}

// Tick advances the simulation by dt seconds.
func (s *Simulation) Tick(dt float64) TickResult {
	var res TickResult
	s.tickCount++

	b := s.ball
	b.Center = b.Center.Add(b.Velocity.Scale(dt))

	if b.Right() < 0 || b.Left() > s.width {
		side := s.scoringSide()
		speed := b.Velocity.Magnitude()
		s.paddles[side].Score++
		s.Reset()
		res.Events = append(res.Events, Event{
			Kind:  EventScore,
			Side:  side,
			Score: s.paddles[side].Score,
			Speed: speed,
		})
	}

	if (b.Velocity.Y < 0 && b.Top() < 0) || (b.Velocity.Y > 0 && b.Bottom() > s.height) {
		b.Velocity.Y = -b.Velocity.Y
		res.Events = append(res.Events, Event{
			Kind:  EventWallBounce,
			Side:  NoSide,
			Speed: b.Velocity.Magnitude(),
		})
	}

	s.paddles[Computer].Center.Y = b.Center.Y

	for i, p := range s.paddles {
		p.Track(dt)
		// A resting ball is reflected in place but is not a hit
		if ResolveCollision(p, b) && !b.Velocity.IsZero() {
			res.Events = append(res.Events, Event{
				Kind:  EventPaddleHit,
				Side:  i,
				Speed: b.Velocity.Magnitude(),
			})
		}
	}

	return res
}

// scoringSide picks the paddle that earns the point when the ball leaves the
// arena: a ball travelling left scores for the right paddle and vice versa.
// With no horizontal speed the edge the ball crossed decides.
func (s *Simulation) scoringSide() int {
	switch vx := s.ball.Velocity.X; {
	case vx < 0:
		return Computer
	case vx > 0:
		return Human
	}
	if s.ball.Right() < 0 {
		return Computer
	}
	return Human
}

// ResolveCollision reflects the ball off the paddle if their boxes overlap.
// The horizontal component is reversed and sped up by SpeedUp; part of the
// paddle's vertical speed is added as spin, and the result is rescaled to the
// speed before the spin so spin only changes direction.
// Reports whether a collision happened.
func ResolveCollision(p *Paddle, b *Ball) bool {
	if !p.Overlaps(b.Box) {
		return false
	}

	b.Velocity.X = -b.Velocity.X * SpeedUp
	speed := b.Velocity.Magnitude()

	b.Velocity.Y += p.Velocity.Y * SpinTransfer
	if v, err := b.Velocity.WithMagnitude(speed); err == nil {
		b.Velocity = v
	}
	// A ball at rest stays at rest: WithMagnitude refuses the zero vector.

	return true
}
