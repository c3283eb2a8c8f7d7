// Package config provides YAML-based configuration loading and validation
// for the doodle climber.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-doodle/internal/core"
)

// Sentinel validation errors.
var (
	ErrInvalidDisplay = errors.New("config: display size and fps must be positive")
	ErrInvalidScore   = errors.New("config: score factor and win score must be positive")
	ErrThresholdOrder = errors.New("config: marker thresholds must be non-negative and strictly increasing")
	ErrInvalidMarker  = errors.New("config: invalid marker")
)

// DoodleConfig contains all configuration for the game.
type DoodleConfig struct {
	Display DisplayConfig  `yaml:"display"`
	Score   ScoreConfig    `yaml:"score"`
	Markers []MarkerConfig `yaml:"markers"`
	Sound   SoundConfig    `yaml:"sound"`
	Player  PlayerConfig   `yaml:"player"`
	Level   LevelConfig    `yaml:"level"`
	Text    TextConfig     `yaml:"text"`
}

// DisplayConfig defines the logical display. World coordinates are pixels of
// this display; the terminal renderer scales it onto the cell grid.
type DisplayConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	FPS    int `yaml:"fps"`
}

// ScoreConfig defines how camera displacement becomes score.
type ScoreConfig struct {
	Factor   int64 `yaml:"factor"`    // score = -cameraY * factor
	WinScore int64 `yaml:"win_score"` // terminal win threshold
}

// MarkerConfig describes one milestone marker.
type MarkerConfig struct {
	Label     string `yaml:"label"`
	Threshold int64  `yaml:"threshold"`
	Speed     int    `yaml:"speed"` // pixels per frame, 0 = DefaultMarkerSpeed
	Size      int    `yaml:"size"`  // square side in pixels, 0 = DefaultMarkerSize
	Glyph     string `yaml:"glyph"`
	Color     string `yaml:"color"` // core color name, empty = default
}

// GlyphRune returns the first rune of Glyph, or '■' when unset.
func (m MarkerConfig) GlyphRune() rune {
	if m.Glyph == "" {
		return '■'
	}
	r, _ := utf8.DecodeRuneInString(m.Glyph)
	return r
}

// SoundConfig defines audio settings.
type SoundConfig struct {
	Enabled    bool    `yaml:"enabled"`     // initial sound toggle
	Volume     float64 `yaml:"volume"`      // master volume, 0.0 to 1.0
	SampleRate int     `yaml:"sample_rate"` // output sample rate in Hz
}

// PlayerConfig defines player parameters.
type PlayerConfig struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	MoveSpeed    float64 `yaml:"move_speed"`
	Friction     float64 `yaml:"friction"`
}

// LevelConfig defines level and camera parameters.
type LevelConfig struct {
	PlatformWidth  int     `yaml:"platform_width"`
	PlatformHeight int     `yaml:"platform_height"`
	MinSpacing     int     `yaml:"min_spacing"`
	MaxSpacing     int     `yaml:"max_spacing"`
	CameraLerp     float64 `yaml:"camera_lerp"`
}

// TextConfig holds the strings shown by the HUD.
type TextConfig struct {
	ScoreSuffix string `yaml:"score_suffix"`
	GameOver    string `yaml:"game_over"`
	Win         string `yaml:"win"`
	Restart     string `yaml:"restart"`
}

// withMarkerDefaults fills the marker fields an entry left at zero.
func (c *DoodleConfig) withMarkerDefaults() {
	for i := range c.Markers {
		m := &c.Markers[i]
		if m.Size == 0 {
			m.Size = DefaultMarkerSize
		}
		if m.Speed == 0 {
			m.Speed = DefaultMarkerSpeed
		}
	}
}

// Validate checks invariants the game relies on.
func (c DoodleConfig) Validate() error {
	if c.Display.Width <= 0 || c.Display.Height <= 0 || c.Display.FPS <= 0 {
		return ErrInvalidDisplay
	}
	if c.Score.Factor <= 0 || c.Score.WinScore <= 0 {
		return ErrInvalidScore
	}

	var prev int64 = -1
	for i, m := range c.Markers {
		if m.Threshold < 0 || m.Threshold <= prev {
			return fmt.Errorf("%w: marker %d (%q) threshold %d after %d", ErrThresholdOrder, i, m.Label, m.Threshold, prev)
		}
		if m.Size <= 0 || m.Size >= c.Display.Width {
			return fmt.Errorf("%w: marker %d (%q) size %d must be in (0, %d)", ErrInvalidMarker, i, m.Label, m.Size, c.Display.Width)
		}
		if _, ok := core.ParseColor(m.Color); m.Color != "" && !ok {
			return fmt.Errorf("%w: marker %d (%q) unknown color %q", ErrInvalidMarker, i, m.Label, m.Color)
		}
		prev = m.Threshold
	}
	return nil
}
