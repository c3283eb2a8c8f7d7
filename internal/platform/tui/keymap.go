package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-doodle/internal/core"
)

// keyMap holds the bindings shown in the help footer.
type keyMap struct {
	Left       key.Binding
	Right      key.Binding
	Restart    key.Binding
	Mute       key.Binding
	Screenshot key.Binding
	Escape     key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Restart: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "restart"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m/click ♫", "sound"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Restart, k.Mute, k.Screenshot, k.Escape}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Restart, k.Mute},
		{k.Screenshot},
		{k.Escape, k.Quit},
	}
}

// hostAction is a key the host handles itself instead of forwarding.
type hostAction int

const (
	hostNone hostAction = iota
	hostMute
	hostScreenshot
)

// mapKey translates a key press into a game event. Keys with a host action
// produce no event.
func (k keyMap) mapKey(msg tea.KeyMsg) (core.Event, hostAction) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.QuitEvent(), hostNone
	case key.Matches(msg, k.Escape):
		return core.KeyEvent(core.KeyEscape), hostNone
	case key.Matches(msg, k.Restart):
		return core.KeyEvent(core.KeyEnter), hostNone
	case key.Matches(msg, k.Left):
		return core.KeyEvent(core.KeyLeft), hostNone
	case key.Matches(msg, k.Right):
		return core.KeyEvent(core.KeyRight), hostNone
	case key.Matches(msg, k.Mute):
		return core.Event{}, hostMute
	case key.Matches(msg, k.Screenshot):
		return core.Event{}, hostScreenshot
	}

	switch msg.Type {
	case tea.KeyUp:
		return core.KeyEvent(core.KeyUp), hostNone
	case tea.KeyDown:
		return core.KeyEvent(core.KeyDown), hostNone
	case tea.KeySpace:
		return core.KeyEvent(core.KeySpace), hostNone
	}

	return core.Event{Kind: core.EventKeyDown, Key: core.KeyOther, Text: msg.String()}, hostNone
}

// mapMouse translates a button press at cell (col, row) into a click in
// display pixels. Anything else, including presses on the footer, yields
// false.
func mapMouse(msg tea.MouseMsg, proj core.Projection) (core.Event, bool) {
	if msg.Action != tea.MouseActionPress {
		return core.Event{}, false
	}
	if msg.X < 0 || msg.Y < 0 || msg.X >= proj.Cols || msg.Y >= proj.Rows {
		return core.Event{}, false
	}

	var button core.MouseButton
	switch msg.Button {
	case tea.MouseButtonLeft:
		button = core.MousePrimary
	case tea.MouseButtonMiddle:
		button = core.MouseMiddle
	case tea.MouseButtonRight:
		button = core.MouseSecondary
	default:
		return core.Event{}, false
	}

	x, y := proj.Pixel(msg.X, msg.Y)
	return core.ClickEvent(button, x, y), true
}
