package loop

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-doodle/internal/core"
)

// Frame is the game as seen by the loop.
type Frame interface {
	HandleInput(events []core.Event)
	Update(ctx context.Context) error
	Render(dst *core.Canvas)
	Alive() bool
	Close()
}

// EventSource yields pending input in arrival order.
type EventSource interface {
	Drain() []core.Event
}

// Presenter receives each finished frame. It must not keep the screen.
type Presenter interface {
	Present(screen *core.Screen)
}

// Driver runs a Frame until it stops being alive.
type Driver struct {
	frame     Frame
	events    EventSource
	presenter Presenter
	clock     *Clock
	canvas    *core.Canvas
	logger    *log.Logger
	frames    uint64
}

// NewDriver wires a driver. logger may be nil.
func NewDriver(frame Frame, events EventSource, presenter Presenter, clock *Clock, canvas *core.Canvas, logger *log.Logger) *Driver {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Driver{
		frame:     frame,
		events:    events,
		presenter: presenter,
		clock:     clock,
		canvas:    canvas,
		logger:    logger,
	}
}

// Frames returns how many frames have completed.
func (d *Driver) Frames() uint64 {
	return d.frames
}

// Run executes frames until the game stops being alive or ctx is done.
// Cancellation is delivered as a quit event so the frame in flight finishes
// normally. An Update error ends the loop and is returned wrapped with the
// frame number.
func (d *Driver) Run(ctx context.Context) error {
	defer d.frame.Close()

	d.logger.Debug("loop started", "fps", d.clock.FPS())
	for d.frame.Alive() {
		events := d.filter(d.events.Drain())
		if ctx.Err() != nil {
			events = append(events, core.QuitEvent())
		}

		d.frame.HandleInput(events)
		if err := d.frame.Update(ctx); err != nil {
			return fmt.Errorf("loop: frame %d: %w", d.frames, err)
		}

		d.canvas.Clear()
		d.frame.Render(d.canvas)
		d.presenter.Present(d.canvas.Screen())

		d.frames++
		d.clock.Tick()
		runtime.Gosched()
	}
	d.logger.Debug("loop stopped", "frames", d.frames)
	return nil
}

// filter applies resize events to the canvas and drops them from the batch.
func (d *Driver) filter(events []core.Event) []core.Event {
	out := events[:0]
	for _, ev := range events {
		if ev.Kind == core.EventResize {
			d.canvas.Resize(ev.X, ev.Y)
			d.logger.Debug("canvas resized", "cols", ev.X, "rows", ev.Y)
			continue
		}
		out = append(out, ev)
	}
	return out
}
