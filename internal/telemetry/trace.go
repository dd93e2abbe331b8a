package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/vovakirdan/tui-pong/internal/storage"
)

// TraceRow is one rally as written to the CSV trace.
type TraceRow struct {
	Session     string  `csv:"session"`
	Rally       int     `csv:"rally"`
	Scorer      int     `csv:"scorer"`
	ScorerScore int     `csv:"scorer_score"`
	Hits        int     `csv:"hits"`
	WallBounces int     `csv:"wall_bounces"`
	DurationMS  int64   `csv:"duration_ms"`
	PeakSpeed   float64 `csv:"peak_speed"`
	EndedAt     string  `csv:"ended_at"`
}

// ToTraceRow flattens a rally for CSV output.
func ToTraceRow(r storage.Rally) TraceRow {
	return TraceRow{
		Session:     r.SessionID,
		Rally:       r.Number,
		Scorer:      r.Scorer,
		ScorerScore: r.ScorerScore,
		Hits:        r.Hits,
		WallBounces: r.WallBounces,
		DurationMS:  r.Duration.Milliseconds(),
		PeakSpeed:   r.PeakSpeed,
		EndedAt:     r.EndedAt.UTC().Format(time.RFC3339Nano),
	}
}

// TraceWriter streams rallies to CSV, writing the header with the first row.
type TraceWriter struct {
	w             io.Writer
	closer        io.Closer
	headerWritten bool
}

// NewTraceWriter writes CSV rows to w.
func NewTraceWriter(w io.Writer) *TraceWriter {
	return &TraceWriter{w: w}
}

// CreateTrace creates (or truncates) a CSV trace file.
// Returns nil if path is empty (tracing disabled).
func CreateTrace(path string) (*TraceWriter, error) {
	if path == "" {
		return nil, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating trace directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating trace %s: %w", path, err)
	}
	return &TraceWriter{w: f, closer: f}, nil
}

// Write appends one rally.
func (t *TraceWriter) Write(r storage.Rally) error {
	if t == nil {
		return nil
	}

	records := []TraceRow{ToTraceRow(r)}

	if !t.headerWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, t.w); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
		t.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, t.w); err != nil {
		return fmt.Errorf("writing trace: %w", err)
	}
	return nil
}

// Close closes the underlying file, if the writer owns one.
func (t *TraceWriter) Close() error {
	if t == nil || t.closer == nil {
		return nil
	}
	return t.closer.Close()
}

// ReadTrace parses a CSV trace written by TraceWriter.
func ReadTrace(r io.Reader) ([]TraceRow, error) {
	var rows []TraceRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("reading trace: %w", err)
	}
	return rows, nil
}
