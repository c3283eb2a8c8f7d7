package game

import "time"

// State is the session-wide game state. It is owned by one Game and mutated
// only from the loop goroutine.
type State struct {
	Alive               bool  // loop continues while true
	Won                 bool  // win threshold reached this life
	SoundOn             bool  // user sound toggle
	GameOverSoundPlayed bool  // one-shot guard for the game-over effect
	RunRecorded         bool  // one-shot guard for run history
	Score               int64 // derived from camera displacement
}

// Phase is what the HUD shows. A dead player wins over a won game.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseWon
	PhaseDead
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Outcome is how a life ended.
type Outcome string

const (
	OutcomeDead Outcome = "dead"
	OutcomeWon  Outcome = "won"
)

// RunResult summarizes one finished life.
type RunResult struct {
	Score    int64
	Outcome  Outcome
	Markers  int // markers spawned during the life
	Duration time.Duration
}
