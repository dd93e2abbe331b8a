package telemetry

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-pong/internal/storage"
)

// Session ties one game to its rally log entries.
type Session struct {
	ID       string
	store    *storage.Store
	recorder *Recorder
	logger   *log.Logger

	endOnce sync.Once
	summary Summary
	endErr  error
}

// NewSession starts a session with a fresh ID. store and trace may be nil, in
// which case rallies are only counted and logged.
func NewSession(store *storage.Store, trace *TraceWriter, logger *log.Logger) *Session {
	id := uuid.NewString()
	if logger != nil {
		logger = logger.With("session", shortID(id))
	}

	var sink RallySink
	if store != nil {
		sink = store
	}

	return &Session{
		ID:       id,
		store:    store,
		recorder: NewRecorder(id, sink, trace, logger),
		logger:   logger,
	}
}

// Recorder returns the event sink to subscribe to the controller.
func (s *Session) Recorder() *Recorder {
	return s.recorder
}

// Summary summarizes the rallies logged so far.
func (s *Session) Summary() (Summary, error) {
	if s.store == nil {
		return Summary{Rallies: s.recorder.Rallies()}, nil
	}
	rallies, err := s.store.Rallies(s.ID)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(rallies), nil
}

// End summarizes the session and clears its rows from the rally log.
// Only the first call does the work; later calls return the same result.
func (s *Session) End() (Summary, error) {
	s.endOnce.Do(func() {
		s.summary, s.endErr = s.end()
	})
	return s.summary, s.endErr
}

func (s *Session) end() (Summary, error) {
	sum, err := s.Summary()
	if err != nil {
		return Summary{}, err
	}
	if s.store != nil {
		if err := s.store.ClearSession(s.ID); err != nil {
			return sum, err
		}
	}
	if s.logger != nil {
		s.logger.Info("session ended", "rallies", sum.Rallies, "score", sum.Points)
	}
	return sum, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
