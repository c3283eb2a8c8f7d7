package core

// RuntimeConfig contains the per-session settings decided by the platform.
// Games use this to size the terminal canvas and seed their collaborators.
type RuntimeConfig struct {
	ScreenW  int   // Canvas width in characters
	ScreenH  int   // Canvas height in characters
	TickRate int   // Frame cap (frames per second)
	Seed     int64 // RNG seed for deterministic levels
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
