package pong

import "math"

// Snapshot is a flat copy of the simulation state for logging, telemetry and
// determinism checks.
type Snapshot struct {
	Tick     uint64
	Phase    Phase
	BallX    float64
	BallY    float64
	BallVX   float64
	BallVY   float64
	Paddle1Y float64
	Paddle2Y float64
	Score1   int
	Score2   int
}

// Snapshot returns the current simulation state.
func (s *Simulation) Snapshot() Snapshot {
	b := s.ball
	return Snapshot{
		Tick:     s.tickCount,
		Phase:    s.Phase(),
		BallX:    b.Center.X,
		BallY:    b.Center.Y,
		BallVX:   b.Velocity.X,
		BallVY:   b.Velocity.Y,
		Paddle1Y: s.paddles[Human].Center.Y,
		Paddle2Y: s.paddles[Computer].Center.Y,
		Score1:   s.paddles[Human].Score,
		Score2:   s.paddles[Computer].Score,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase) //#nosec G115 -- hash computation
	for _, f := range []float64{snap.BallX, snap.BallY, snap.BallVX, snap.BallVY, snap.Paddle1Y, snap.Paddle2Y} {
		h = h*31 + math.Float64bits(f)
	}
	h = h*31 + uint64(snap.Score1) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score2) //#nosec G115 -- hash computation
	return h
}
