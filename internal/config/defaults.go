package config

import (
	_ "embed"
)

//go:embed defaults/doodle.yaml
var defaultDoodleYAML []byte

// DefaultDoodleConfig returns the built-in configuration.
func DefaultDoodleConfig() DoodleConfig {
	return DoodleConfig{
		Display: DisplayConfig{
			Width:  480,
			Height: 640,
			FPS:    60,
		},
		Score: ScoreConfig{
			Factor:   500_000,
			WinScore: 100_000_000_001,
		},
		Markers: DefaultMarkers(),
		Sound: SoundConfig{
			Enabled:    true,
			Volume:     0.6,
			SampleRate: 44100,
		},
		Player: PlayerConfig{
			Width:        32,
			Height:       40,
			Gravity:      0.35,
			JumpImpulse:  -11.0,
			MaxFallSpeed: 12.0,
			MoveSpeed:    6.0,
			Friction:     0.9,
		},
		Level: LevelConfig{
			PlatformWidth:  80,
			PlatformHeight: 10,
			MinSpacing:     60,
			MaxSpacing:     120,
			CameraLerp:     5,
		},
		Text: TextConfig{
			ScoreSuffix: "$ market cap",
			GameOver:    "Game Over",
			Win:         "1 DOG = 1 $",
			Restart:     "Press Enter to restart",
		},
	}
}

// Marker fields a config entry may leave out.
const (
	DefaultMarkerSize  = 50
	DefaultMarkerSpeed = 5
)

// DefaultMarkers returns the milestone table, ordered by threshold.
func DefaultMarkers() []MarkerConfig {
	return []MarkerConfig{
		{Label: "BONK", Threshold: 2_300_000_000, Speed: DefaultMarkerSpeed, Size: DefaultMarkerSize, Glyph: "B", Color: "orange"},
		{Label: "FLOKI", Threshold: 3_000_000_000, Speed: DefaultMarkerSpeed, Size: DefaultMarkerSize, Glyph: "F", Color: "yellow"},
		{Label: "WIF", Threshold: 3_400_000_000, Speed: DefaultMarkerSpeed, Size: DefaultMarkerSize, Glyph: "W", Color: "magenta"},
		{Label: "PEPE", Threshold: 6_200_000_000, Speed: DefaultMarkerSpeed, Size: DefaultMarkerSize, Glyph: "P", Color: "green"},
		{Label: "SHIB", Threshold: 15_000_000_000, Speed: DefaultMarkerSpeed, Size: DefaultMarkerSize, Glyph: "S", Color: "red"},
		{Label: "DOGE", Threshold: 23_000_000_000, Speed: DefaultMarkerSpeed, Size: DefaultMarkerSize, Glyph: "D", Color: "bright_yellow"},
		{Label: "MOON", Threshold: 99_000_000_000, Speed: DefaultMarkerSpeed, Size: DefaultMarkerSize, Glyph: "M", Color: "bright_white"},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultDoodleYAML
}
