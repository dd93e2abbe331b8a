package telemetry

import (
	"fmt"
	"strings"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/vovakirdan/tui-pong/internal/storage"
)

// Summary aggregates a session's rallies.
type Summary struct {
	Rallies        int
	Points         [2]int
	LongestRally   time.Duration
	MeanDuration   time.Duration
	StdDevDuration time.Duration
	MeanHits       float64
	MostHits       int
	PeakSpeed      float64
}

// Summarize computes session statistics. An empty slice gives a zero Summary.
func Summarize(rallies []storage.Rally) Summary {
	var s Summary
	if len(rallies) == 0 {
		return s
	}

	durations := make([]float64, len(rallies))
	hits := make([]float64, len(rallies))
	speeds := make([]float64, len(rallies))
	for i, r := range rallies {
		durations[i] = r.Duration.Seconds()
		hits[i] = float64(r.Hits)
		speeds[i] = r.PeakSpeed
		if r.Scorer == 0 || r.Scorer == 1 {
			s.Points[r.Scorer]++
		}
	}

	s.Rallies = len(rallies)
	s.LongestRally = seconds(floats.Max(durations))
	s.MeanDuration = seconds(stat.Mean(durations, nil))
	if len(durations) > 1 {
		s.StdDevDuration = seconds(stat.StdDev(durations, nil))
	}
	s.MeanHits = stat.Mean(hits, nil)
	s.MostHits = int(floats.Max(hits))
	s.PeakSpeed = floats.Max(speeds)
	return s
}

func seconds(v float64) time.Duration {
	return time.Duration(v * float64(time.Second)).Round(time.Millisecond)
}

// String renders the summary as a short report.
func (s Summary) String() string {
	if s.Rallies == 0 {
		return "No rallies played."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Final score   %d - %d\n", s.Points[0], s.Points[1])
	fmt.Fprintf(&sb, "Rallies       %d\n", s.Rallies)
	fmt.Fprintf(&sb, "Longest rally %s\n", s.LongestRally)
	fmt.Fprintf(&sb, "Mean rally    %s (±%s)\n", s.MeanDuration, s.StdDevDuration)
	fmt.Fprintf(&sb, "Hits          %.1f avg, %d max\n", s.MeanHits, s.MostHits)
	fmt.Fprintf(&sb, "Peak speed    %.0f", s.PeakSpeed)
	return sb.String()
}
