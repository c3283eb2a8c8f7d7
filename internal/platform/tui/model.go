// Package tui hosts the game in a terminal through Bubble Tea. The game loop
// runs in its own goroutine; the program only forwards input and shows the
// latest frame.
package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-doodle/internal/core"
	"github.com/vovakirdan/tui-doodle/internal/loop"
)

// FooterRows is the number of terminal rows reserved for the help line.
const FooterRows = 1

// Runner is one playable game session.
type Runner interface {
	Run(ctx context.Context, events loop.EventSource, presenter loop.Presenter) error
	// Display returns the logical display size in pixels.
	Display() (w, h int)
	// SoundIcon returns the sound toggle area in display pixels.
	SoundIcon() core.Rect
}

type frameMsg Frame

type loopDoneMsg struct{ err error }

// Model is the Bubble Tea model wrapping one Runner.
type Model struct {
	ctx    context.Context
	runner Runner
	events *EventQueue
	sink   *FrameSink
	keys   keyMap
	help   help.Model

	width, height int
	frame         Frame
	err           error
	done          bool
}

// NewModel creates a model for runner. The loop starts with Init and stops
// when ctx is done or the game quits.
func NewModel(ctx context.Context, runner Runner, cfg core.RuntimeConfig) Model {
	h := help.New()
	h.Width = cfg.ScreenW
	return Model{
		ctx:    ctx,
		runner: runner,
		events: NewEventQueue(),
		sink:   NewFrameSink(),
		keys:   defaultKeyMap(),
		help:   h,
		width:  cfg.ScreenW,
		height: cfg.ScreenH + FooterRows,
	}
}

// Init starts the game loop and waits for its first frame.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.startLoop(), m.waitForFrame())
}

func (m Model) startLoop() tea.Cmd {
	return func() tea.Msg {
		err := m.runner.Run(m.ctx, m.events, m.sink)
		m.sink.Close()
		return loopDoneMsg{err: err}
	}
}

func (m Model) waitForFrame() tea.Cmd {
	return func() tea.Msg {
		f, ok := <-m.sink.Frames()
		if !ok {
			return nil
		}
		return frameMsg(f)
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if ev, ok := mapMouse(msg, m.projection()); ok {
			m.events.Push(ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.events.Push(core.ResizeEvent(msg.Width, m.playRows()))
		return m, nil

	case frameMsg:
		m.frame = Frame(msg)
		return m, m.waitForFrame()

	case loopDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	}

	return m, nil
}

// handleKey forwards game keys and handles host-only keys.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ev, action := m.keys.mapKey(msg)
	switch action {
	case hostNone:
		m.events.Push(ev)
	case hostMute:
		icon := m.runner.SoundIcon()
		m.events.Push(core.ClickEvent(core.MousePrimary, icon.CenterX(), icon.CenterY()))
	case hostScreenshot:
		m.saveScreenshot()
	}
	return m, nil
}

func (m Model) playRows() int {
	return max(m.height-FooterRows, 0)
}

func (m Model) projection() core.Projection {
	w, h := m.runner.Display()
	return core.Projection{Cols: m.width, Rows: m.playRows(), PixelW: w, PixelH: h}
}

// saveScreenshot writes the last frame to ~/.doodle/screenshots.
func (m Model) saveScreenshot() {
	if m.frame.Plain == "" {
		return
	}
	dir := filepath.Join(os.Getenv("HOME"), ".doodle", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	name := fmt.Sprintf("doodle_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, name), []byte(m.frame.Plain), 0o600)
}

// View shows the latest frame above the help footer.
func (m Model) View() string {
	if m.done {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(m.frame.View)
	sb.WriteByte('\n')
	sb.WriteString(footerStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp())))
	return sb.String()
}

// Err returns the error the game loop ended with, if any.
func (m Model) Err() error {
	return m.err
}

// Run plays runner in the current terminal until the game quits.
func Run(ctx context.Context, runner Runner, cfg core.RuntimeConfig) error {
	model := NewModel(ctx, runner, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		// The loop watches ctx and quits the program itself.
		tea.WithoutSignalHandler(),
	)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
