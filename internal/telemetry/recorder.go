// Package telemetry turns simulation events into rally records.
// Rallies are logged, saved to the session's rally log and optionally
// streamed to a CSV trace.
package telemetry

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// RallySink stores finished rallies. *storage.Store implements it.
type RallySink interface {
	SaveRally(r storage.Rally) (int64, error)
}

// Recorder is a pong.EventSink that tracks the rally in progress.
// Like the controller that feeds it, it is not safe for concurrent use.
type Recorder struct {
	sessionID string
	sink      RallySink
	trace     *TraceWriter
	logger    *log.Logger
	now       func() time.Time

	active  bool
	start   time.Time
	hits    int
	bounces int
	peak    float64
	number  int
}

// Ensure Recorder implements pong.EventSink
var _ pong.EventSink = (*Recorder)(nil)

// NewRecorder creates a recorder for one session. sink, trace and logger may
// be nil.
func NewRecorder(sessionID string, sink RallySink, trace *TraceWriter, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{
		sessionID: sessionID,
		sink:      sink,
		trace:     trace,
		logger:    logger,
		now:       time.Now,
	}
}

// Rallies returns how many rallies have finished.
func (r *Recorder) Rallies() int {
	return r.number
}

// HandleEvent updates the rally in progress.
func (r *Recorder) HandleEvent(e pong.Event) {
	switch e.Kind {
	case pong.EventLaunch:
		r.active = true
		r.start = r.now()
		r.hits, r.bounces = 0, 0
		r.peak = e.Speed
		r.logger.Debug("launch", "speed", e.Speed)
	case pong.EventPaddleHit:
		r.hits++
		r.peak = max(r.peak, e.Speed)
		r.logger.Debug("paddle hit", "side", e.Side, "speed", e.Speed)
	case pong.EventWallBounce:
		r.bounces++
		r.peak = max(r.peak, e.Speed)
	case pong.EventScore:
		r.finish(e)
	}
}

func (r *Recorder) finish(e pong.Event) {
	now := r.now()
	r.number++

	rally := storage.Rally{
		SessionID:   r.sessionID,
		Number:      r.number,
		Hits:        r.hits,
		WallBounces: r.bounces,
		PeakSpeed:   max(r.peak, e.Speed),
		Scorer:      e.Side,
		ScorerScore: e.Score,
		EndedAt:     now,
	}
	if r.active {
		rally.Duration = now.Sub(r.start)
	}
	r.active = false
	r.hits, r.bounces, r.peak = 0, 0, 0

	r.logger.Info("point",
		"rally", rally.Number,
		"scorer", rally.Scorer,
		"score", rally.ScorerScore,
		"hits", rally.Hits,
		"duration", rally.Duration.Round(time.Millisecond),
	)

	if r.sink != nil {
		if _, err := r.sink.SaveRally(rally); err != nil {
			r.logger.Warn("rally log unavailable", "err", err)
		}
	}
	if r.trace != nil {
		if err := r.trace.Write(rally); err != nil {
			r.logger.Warn("trace write failed", "err", err)
		}
	}
}
