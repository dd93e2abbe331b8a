package pong

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventLaunch     EventKind = iota // Ball served from the center
	EventPaddleHit                   // Ball reflected by a paddle
	EventWallBounce                  // Ball reflected by the top or bottom wall
	EventScore                       // Ball left the arena, a point was awarded
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventLaunch:
		return "launch"
	case EventPaddleHit:
		return "paddle_hit"
	case EventWallBounce:
		return "wall_bounce"
	case EventScore:
		return "score"
	default:
		return "unknown"
	}
}

// NoSide marks events that do not belong to a paddle.
const NoSide = -1

// Event describes one state transition. The engine never logs or persists;
// hosts and telemetry consume events instead.
type Event struct {
	Kind  EventKind
	Side  int     // Paddle index for hits and scores, NoSide otherwise
	Score int     // New score of Side (EventScore only)
	Speed float64 // Ball speed when the event happened
}

// TickResult is returned by Simulation.Tick.
type TickResult struct {
	Events []Event
}

// Scored returns the score event of this tick, if any.
func (r TickResult) Scored() (Event, bool) {
	for _, e := range r.Events {
		if e.Kind == EventScore {
			return e, true
		}
	}
	return Event{}, false
}
