package core

// EventKind classifies a raw input event.
type EventKind int

const (
	EventNone      EventKind = iota
	EventQuit                // Window/session close request
	EventKeyDown             // Key press
	EventMouseDown           // Pointer button press
	EventResize              // Terminal resized (handled by the loop driver)
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "None"
	case EventQuit:
		return "Quit"
	case EventKeyDown:
		return "KeyDown"
	case EventMouseDown:
		return "MouseDown"
	case EventResize:
		return "Resize"
	default:
		return "Unknown"
	}
}

// Key identifies a keyboard key, abstracted from the terminal library.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
	KeyEnter
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeySpace
	KeyOther // Any other key; Event.Text carries its name
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyEscape:
		return "Escape"
	case KeyEnter:
		return "Enter"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeySpace:
		return "Space"
	case KeyOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// MouseButton identifies a pointer button.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MousePrimary
	MouseMiddle
	MouseSecondary
)

// Event is a single raw input event. Events are delivered to the game in
// arrival order once per frame.
type Event struct {
	Kind   EventKind
	Key    Key         // EventKeyDown
	Text   string      // EventKeyDown: key name as reported by the terminal
	Button MouseButton // EventMouseDown
	X, Y   int         // EventMouseDown: world-screen pixels; EventResize: cells
}

// QuitEvent returns a close request event.
func QuitEvent() Event {
	return Event{Kind: EventQuit}
}

// KeyEvent returns a key press event.
func KeyEvent(k Key) Event {
	return Event{Kind: EventKeyDown, Key: k}
}

// ClickEvent returns a pointer press at pixel position (x, y).
func ClickEvent(b MouseButton, x, y int) Event {
	return Event{Kind: EventMouseDown, Button: b, X: x, Y: y}
}

// ResizeEvent returns a resize event for a canvas of cols x rows cells.
func ResizeEvent(cols, rows int) Event {
	return Event{Kind: EventResize, X: cols, Y: rows}
}
