// Package tui provides the Bubble Tea host for pong.
// It handles the terminal UI loop, input mapping and SSH hosting.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// TickMsg is sent to trigger a frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// tickClock is a pong.Clock fed by TickMsg. The requested callback runs on
// the next tick, inside Update.
type tickClock struct {
	pending pong.FrameFunc
}

// RequestFrame schedules fn for the next tick.
func (c *tickClock) RequestFrame(fn pong.FrameFunc) {
	c.pending = fn
}

// fire runs the scheduled callback with t in milliseconds.
// Reports whether a callback was pending.
func (c *tickClock) fire(t time.Time) bool {
	fn := c.pending
	if fn == nil {
		return false
	}
	c.pending = nil
	fn(float64(t.UnixNano()) / float64(time.Millisecond))
	return true
}
