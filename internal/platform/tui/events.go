package tui

import (
	"sync"

	"github.com/vovakirdan/tui-doodle/internal/core"
)

// EventQueue is the hand-off from the Bubble Tea goroutine to the game loop.
// Drain returns everything pushed since the previous call, oldest first.
type EventQueue struct {
	mu     sync.Mutex
	events []core.Event
}

// NewEventQueue creates an empty queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event.
func (q *EventQueue) Push(ev core.Event) {
	q.mu.Lock()
	q.events = append(q.events, ev)
	q.mu.Unlock()
}

// Drain removes and returns all pending events.
func (q *EventQueue) Drain() []core.Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}

// Frame is one rendered picture of the game.
type Frame struct {
	View  string // styled for the terminal
	Plain string // bare runes, for screenshots
}

// FrameSink presents frames to the Bubble Tea program. Only the newest frame
// is kept; a slow terminal skips frames instead of stalling the loop.
type FrameSink struct {
	ch chan Frame
}

// NewFrameSink creates a sink holding at most one pending frame.
func NewFrameSink() *FrameSink {
	return &FrameSink{ch: make(chan Frame, 1)}
}

// Present renders screen and replaces any frame not yet shown.
func (s *FrameSink) Present(screen *core.Screen) {
	f := Frame{View: RenderScreen(screen), Plain: screen.String()}
	select {
	case s.ch <- f:
		return
	default:
	}
	select {
	case <-s.ch:
	default:
	}
	select {
	case s.ch <- f:
	default:
	}
}

// Frames is the receiving side of the sink.
func (s *FrameSink) Frames() <-chan Frame {
	return s.ch
}

// Close ends the stream. Present must not be called afterwards.
func (s *FrameSink) Close() {
	close(s.ch)
}
