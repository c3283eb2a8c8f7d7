package game

import (
	"testing"

	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/core"
)

const testWidth = 480

func newTestMarker(x, speed int, threshold int64) Marker {
	return NewMarker(core.NewRect(x, -100, 50, 50), speed, threshold, Sprite{Glyph: 'B'})
}

func TestMarkerStaysDormantBelowThreshold(t *testing.T) {
	m := newTestMarker(215, 5, 1000)

	if m.Advance(999, -50, testWidth) {
		t.Error("marker should not spawn below threshold")
	}
	if m.Spawned || m.Rect.X != 215 || m.Rect.Y != -100 {
		t.Errorf("dormant marker changed: %+v", m)
	}
}

func TestMarkerSpawnAnchorsAboveCamera(t *testing.T) {
	m := newTestMarker(215, 5, 1000)

	if !m.Advance(1000, -4600, testWidth) {
		t.Fatal("marker should spawn at threshold")
	}
	if m.Rect.Y != -4700 {
		t.Errorf("expected Y=-4700, got %d", m.Rect.Y)
	}
	if m.Rect.X != 220 {
		t.Errorf("spawn frame should also move: expected X=220, got %d", m.Rect.X)
	}

	// Spawning is a one-time transition.
	if m.Advance(5000, -9000, testWidth) {
		t.Error("marker spawned twice")
	}
	if m.Rect.Y != -4700 {
		t.Errorf("Y should stay anchored, got %d", m.Rect.Y)
	}
}

func TestMarkerBounce(t *testing.T) {
	tests := []struct {
		name      string
		x, speed  int
		wantX     int
		wantSpeed int
	}{
		{"moves right", 100, 5, 105, 5},
		{"hits right edge", 425, 5, 430, -5},
		{"overshoots right edge", 428, 5, 433, -5},
		{"moves left", 100, -5, 95, -5},
		{"hits left edge", 5, -5, 0, 5},
		{"overshoots left edge", 3, -5, -2, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMarker(tt.x, tt.speed, 0)
			m.Spawned = true
			m.Advance(0, 0, testWidth)

			if m.Rect.X != tt.wantX {
				t.Errorf("X = %d, want %d", m.Rect.X, tt.wantX)
			}
			if m.Speed != tt.wantSpeed {
				t.Errorf("Speed = %d, want %d", m.Speed, tt.wantSpeed)
			}
		})
	}
}

func TestMarkerOvershootRecovers(t *testing.T) {
	m := newTestMarker(428, 5, 0)
	m.Spawned = true

	m.Advance(0, 0, testWidth) // 433, flips
	m.Advance(0, 0, testWidth) // 428, no flip

	if m.Rect.X != 428 || m.Speed != -5 {
		t.Errorf("expected to move back inside, got X=%d speed=%d", m.Rect.X, m.Speed)
	}
}

func TestMarkerReset(t *testing.T) {
	m := newTestMarker(215, 5, 0)
	m.Advance(10, -300, testWidth)
	m.Speed = -5

	m.Reset()

	if m.Spawned {
		t.Error("marker should be dormant after reset")
	}
	if m.Rect != core.NewRect(215, -100, 50, 50) {
		t.Errorf("rect not restored: %+v", m.Rect)
	}
	if m.Speed != 5 {
		t.Errorf("speed not restored: %d", m.Speed)
	}
}

func TestNewMarkersFromConfig(t *testing.T) {
	ms := NewMarkers(config.DefaultMarkers(), testWidth)

	if len(ms) != 7 {
		t.Fatalf("expected 7 markers, got %d", len(ms))
	}
	for i, m := range ms {
		if m.Rect != core.NewRect(215, -100, 50, 50) {
			t.Errorf("marker %d: unexpected start rect %+v", i, m.Rect)
		}
		if m.Speed != 5 {
			t.Errorf("marker %d: unexpected speed %d", i, m.Speed)
		}
		if i > 0 && m.Threshold <= ms[i-1].Threshold {
			t.Errorf("marker %d: thresholds not increasing", i)
		}
	}
	if ms[0].Sprite.Label != "BONK" || ms[0].Sprite.Color != core.ColorOrange {
		t.Errorf("unexpected first sprite %+v", ms[0].Sprite)
	}
	if ms.Spawned() != 0 {
		t.Error("new markers should be dormant")
	}
}
