// Package debounce provides a sequence-tagged debouncer for Bubbletea.
//
// Every keystroke calls Trigger, which bumps an internal sequence number and
// schedules a Settled message after the window elapses. Only the message
// carrying the latest sequence number is current; earlier ticks arrive with
// stale sequence numbers and must be ignored by the caller. This gives
// classic trailing-edge debouncing without timers to stop.
package debounce

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultWindow is the debounce window used when none is configured.
const DefaultWindow = 500 * time.Millisecond

// Settled is emitted when a triggered window elapses. Check Seq against the
// debouncer before acting on it.
type Settled struct {
	// Seq identifies the Trigger call that scheduled this message.
	Seq uint64

	// Query is the input value captured at trigger time.
	Query string
}

// Debouncer schedules trailing-edge settle messages for a text input.
// It is not safe for concurrent use; Bubbletea's single-threaded Update
// loop is the intended caller.
type Debouncer struct {
	window time.Duration
	seq    uint64
}

// New creates a debouncer. A non-positive window falls back to DefaultWindow.
func New(window time.Duration) *Debouncer {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Debouncer{window: window}
}

// Trigger schedules a Settled message for query after the window elapses.
// Any previously scheduled message becomes stale.
func (d *Debouncer) Trigger(query string) tea.Cmd {
	d.seq++
	seq := d.seq
	return tea.Tick(d.window, func(time.Time) tea.Msg {
		return Settled{Seq: seq, Query: query}
	})
}

// Cancel invalidates any scheduled message without scheduling a new one.
func (d *Debouncer) Cancel() {
	d.seq++
}

// Current reports whether msg is the latest scheduled settle.
func (d *Debouncer) Current(msg Settled) bool {
	return msg.Seq == d.seq
}

// Window returns the configured debounce window.
func (d *Debouncer) Window() time.Duration {
	return d.window
}
