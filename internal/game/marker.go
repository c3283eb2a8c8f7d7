package game

import (
	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/core"
)

// SpawnOffset is how far above the camera a marker appears when it spawns.
const SpawnOffset = 100

// initialMarkerY is the world Y markers sit at before their first spawn.
const initialMarkerY = -100

// Sprite is the terminal stand-in for a marker image.
type Sprite struct {
	Glyph rune
	Color core.Color
	Label string
}

// Marker is a milestone that appears once the score reaches Threshold and
// then bounces between the horizontal screen edges.
type Marker struct {
	Rect      core.Rect
	Speed     int
	Threshold int64
	Spawned   bool
	Sprite    Sprite

	home      core.Rect
	homeSpeed int
}

// NewMarker creates a dormant marker.
func NewMarker(rect core.Rect, speed int, threshold int64, sprite Sprite) Marker {
	return Marker{
		Rect:      rect,
		Speed:     speed,
		Threshold: threshold,
		Sprite:    sprite,
		home:      rect,
		homeSpeed: speed,
	}
}

// Advance runs one frame of the marker state machine and reports whether the
// marker spawned on this frame.
func (m *Marker) Advance(score int64, cameraY, screenW int) bool {
	spawnedNow := false
	if score >= m.Threshold && !m.Spawned {
		m.Spawned = true
		m.Rect.Y = cameraY - SpawnOffset
		spawnedNow = true
	}

	if m.Spawned {
		m.Rect.X += m.Speed
		// Overshoot is tolerated; the next frame moves back inside.
		if m.Rect.Right() >= screenW || m.Rect.X <= 0 {
			m.Speed = -m.Speed
		}
	}
	return spawnedNow
}

// Reset returns the marker to its dormant starting state.
func (m *Marker) Reset() {
	m.Spawned = false
	m.Rect = m.home
	m.Speed = m.homeSpeed
}

// Markers is the ordered milestone set. It is built once and never resized.
// Spawn checks do not depend on each other, so order only affects drawing.
type Markers []Marker

// NewMarkers builds markers centered horizontally on a screenW display.
// Thresholds are expected to be validated by config.
func NewMarkers(specs []config.MarkerConfig, screenW int) Markers {
	ms := make(Markers, len(specs))
	for i, s := range specs {
		// Unknown names are rejected by config validation.
		color, _ := core.ParseColor(s.Color)
		rect := core.NewRect(screenW/2-s.Size/2, initialMarkerY, s.Size, s.Size)
		ms[i] = NewMarker(rect, s.Speed, s.Threshold, Sprite{
			Glyph: s.GlyphRune(),
			Color: color,
			Label: s.Label,
		})
	}
	return ms
}

// Spawned counts spawned markers.
func (ms Markers) Spawned() int {
	n := 0
	for i := range ms {
		if ms[i].Spawned {
			n++
		}
	}
	return n
}

// Reset re-arms every marker.
func (ms Markers) Reset() {
	for i := range ms {
		ms[i].Reset()
	}
}
