package game

import (
	"context"

	"github.com/vovakirdan/tui-doodle/internal/audio"
	"github.com/vovakirdan/tui-doodle/internal/core"
)

// Camera tracks the highest point the player has reached.
// Y is monotonic non-increasing while a life lasts.
type Camera interface {
	Y() int
	Reset()
	Update(player core.Rect)
	// Project converts a world rectangle into display coordinates.
	Project(world core.Rect) core.Rect
}

// Level owns the platforms.
type Level interface {
	Reset()
	// Update may block; it is awaited once per frame before rendering.
	Update(ctx context.Context) error
	Draw(dst *core.Canvas, cam Camera)
}

// Player is the controllable character.
type Player interface {
	Dead() bool
	Rect() core.Rect
	Reset()
	Update(host Host)
	HandleEvent(ev core.Event)
	Draw(dst *core.Canvas, cam Camera)
}

// Host is the handle the Player gets back to the game.
type Host interface {
	PlaySound(e audio.Effect)
}

// Sound is the audio channel set the game drives.
type Sound interface {
	StartMusic()
	SetEnabled(on bool)
	Play(e audio.Effect)
	Stop(e audio.Effect)
	Close()
}

// RunRecorder persists finished lives.
type RunRecorder interface {
	RecordRun(r RunResult) error
}
