package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// FrameFunc is called by a Clock with the host timestamp in milliseconds.
type FrameFunc func(timestamp float64)

// Clock schedules frame callbacks. Each RequestFrame asks for exactly one
// future call of fn.
type Clock interface {
	RequestFrame(fn FrameFunc)
}

// FrameClock turns absolute millisecond timestamps into elapsed seconds.
type FrameClock struct {
	last    float64
	started bool
}

// Advance records ts and returns the seconds elapsed since the previous call.
// The first call after construction or Reset only captures the timestamp and
// reports ok=false. Timestamps that do not move forward are ignored.
func (c *FrameClock) Advance(ts float64) (dt float64, ok bool) {
	if !c.started {
		c.last = ts
		c.started = true
		return 0, false
	}
	if ts <= c.last {
		return 0, false
	}
	dt = (ts - c.last) / 1000
	c.last = ts
	return dt, true
}

// Reset forgets the last timestamp.
func (c *FrameClock) Reset() {
	c.last = 0
	c.started = false
}

// EventSink observes simulation events.
type EventSink interface {
	HandleEvent(e Event)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(e Event)

// HandleEvent calls f(e).
func (f EventSinkFunc) HandleEvent(e Event) {
	f(e)
}

// Controller drives a Simulation from a Clock, paints it with a Renderer and
// receives the host's input. It must be used from one goroutine.
type Controller struct {
	sim      *Simulation
	renderer *Renderer
	surface  core.Surface

	clock   Clock
	frames  FrameClock
	running bool
	paused  bool

	sinks []EventSink
	frame FrameFunc
}

// NewController wires a simulation to the surface it is drawn on.
func NewController(sim *Simulation, renderer *Renderer, surface core.Surface) *Controller {
	c := &Controller{
		sim:      sim,
		renderer: renderer,
		surface:  surface,
	}
	c.frame = c.Frame
	return c
}

// Simulation returns the driven simulation.
func (c *Controller) Simulation() *Simulation {
	return c.sim
}

// Subscribe registers an observer for tick and launch events.
func (c *Controller) Subscribe(s EventSink) {
	c.sinks = append(c.sinks, s)
}

// Start draws the initial frame and begins requesting frames from clock.
func (c *Controller) Start(clock Clock) {
	c.clock = clock
	c.running = true
	c.frames.Reset()
	c.renderer.Draw(c.surface, c.sim)
	c.clock.RequestFrame(c.frame)
}

// Stop ends the frame loop. A callback already scheduled is ignored.
func (c *Controller) Stop() {
	c.running = false
}

// Running reports whether the frame loop is active.
func (c *Controller) Running() bool {
	return c.running
}

// Pause freezes the simulation while frames keep being drawn.
func (c *Controller) Pause() {
	c.paused = true
	c.frames.Reset()
}

// Resume continues after Pause. The first frame after resuming only
// re-captures the timestamp.
func (c *Controller) Resume() {
	c.paused = false
}

// TogglePause flips between paused and running.
func (c *Controller) TogglePause() {
	if c.paused {
		c.Resume()
	} else {
		c.Pause()
	}
}

// Paused reports whether the simulation is frozen.
func (c *Controller) Paused() bool {
	return c.paused
}

// Frame runs one frame: advance the clock, tick, draw, publish events and
// schedule the next frame.
func (c *Controller) Frame(ts float64) {
	if !c.running {
		return
	}

	var res TickResult
	if !c.paused {
		if dt, ok := c.frames.Advance(ts); ok {
			res = c.sim.Tick(dt)
		}
	}

	c.renderer.Draw(c.surface, c.sim)
	c.publish(res.Events...)

	c.clock.RequestFrame(c.frame)
}

// Redraw paints the current state without advancing time, e.g. after the
// surface changed size.
func (c *Controller) Redraw() {
	c.renderer.Draw(c.surface, c.sim)
}

// PointerMove moves the human paddle to a normalized vertical position.
func (c *Controller) PointerMove(normalizedY float64) {
	c.sim.MovePaddle(normalizedY)
}

// NudgePaddle moves the human paddle by a fraction of the arena height.
func (c *Controller) NudgePaddle(delta float64) {
	_, h := c.sim.Size()
	if h <= 0 {
		return
	}
	c.sim.MovePaddle(c.sim.Paddle(Human).Center.Y/h + delta)
}

// Activate serves the ball if it is at rest. Ignored while paused.
func (c *Controller) Activate() {
	if c.paused {
		return
	}
	if c.sim.Launch() {
		c.publish(Event{
			Kind:  EventLaunch,
			Side:  NoSide,
			Speed: c.sim.Ball().Velocity.Magnitude(),
		})
	}
}

func (c *Controller) publish(events ...Event) {
	for _, e := range events {
		for _, s := range c.sinks {
			s.HandleEvent(e)
		}
	}
}

// ManualClock is a Clock whose frames are fired explicitly.
type ManualClock struct {
	pending []FrameFunc
}

// RequestFrame queues fn until the next Fire.
func (m *ManualClock) RequestFrame(fn FrameFunc) {
	m.pending = append(m.pending, fn)
}

// Pending returns how many callbacks are queued.
func (m *ManualClock) Pending() int {
	return len(m.pending)
}

// Fire runs every queued callback with ts. Callbacks requested while firing
// wait for the next Fire.
func (m *ManualClock) Fire(ts float64) {
	pending := m.pending
	m.pending = nil
	for _, fn := range pending {
		fn(ts)
	}
}
