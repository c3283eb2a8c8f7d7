// Package game implements the orchestration core of the doodle climber:
// input routing, score tracking, milestone markers, win detection and sound
// triggers. Platforms, physics and the camera are consumed through the
// collaborator interfaces.
package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-doodle/internal/audio"
	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/core"
)

// Sound icon geometry, anchored to the top-right corner of the display.
const (
	SoundIconSize   = 32
	SoundIconMargin = 10
)

// ErrMissingCollaborator is returned by New when a required dependency is nil.
var ErrMissingCollaborator = errors.New("game: missing collaborator")

// Options carries the dependencies of a Game.
type Options struct {
	Camera Camera
	Level  Level
	Player Player
	Sound  Sound

	Recorder RunRecorder      // optional
	Logger   *log.Logger      // optional, discards when nil
	Now      func() time.Time // optional, defaults to time.Now
}

// Game is the per-session orchestrator. All methods must be called from the
// loop goroutine.
type Game struct {
	cfg   config.DoodleConfig
	state State

	camera   Camera
	level    Level
	player   Player
	sound    Sound
	recorder RunRecorder
	logger   *log.Logger
	now      func() time.Time

	markers   Markers
	soundIcon core.Rect
	lifeStart time.Time
}

// New wires a Game and starts the background music.
func New(cfg config.DoodleConfig, opts Options) (*Game, error) {
	if opts.Camera == nil || opts.Level == nil || opts.Player == nil || opts.Sound == nil {
		return nil, ErrMissingCollaborator
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	w := cfg.Display.Width
	g := &Game{
		cfg: cfg,
		state: State{
			Alive:   true,
			SoundOn: cfg.Sound.Enabled,
		},
		camera:   opts.Camera,
		level:    opts.Level,
		player:   opts.Player,
		sound:    opts.Sound,
		recorder: opts.Recorder,
		logger:   logger,
		now:      now,
		markers:  NewMarkers(cfg.Markers, w),
		soundIcon: core.NewRect(
			w-SoundIconMargin-SoundIconSize, SoundIconMargin,
			SoundIconSize, SoundIconSize,
		),
		lifeStart: now(),
	}

	g.sound.SetEnabled(g.state.SoundOn)
	g.sound.StartMusic()
	return g, nil
}

// State returns a snapshot of the game state.
func (g *Game) State() State {
	return g.state
}

// Markers returns the live marker set.
func (g *Game) Markers() Markers {
	return g.markers
}

// SoundIcon returns the clickable sound toggle area in display pixels.
func (g *Game) SoundIcon() core.Rect {
	return g.soundIcon
}

// Phase reports what the HUD currently shows.
func (g *Game) Phase() Phase {
	switch {
	case g.player.Dead():
		return PhaseDead
	case g.state.Won:
		return PhaseWon
	default:
		return PhasePlaying
	}
}

// Alive reports whether the loop should keep running.
func (g *Game) Alive() bool {
	return g.state.Alive
}

// Quit stops the loop after the current frame.
func (g *Game) Quit() {
	g.state.Alive = false
}

// Close releases the audio channels.
func (g *Game) Close() {
	g.sound.Close()
}

// PlaySound plays an effect unless sound is toggled off.
func (g *Game) PlaySound(e audio.Effect) {
	if !g.state.SoundOn {
		return
	}
	g.sound.Play(e)
}

// ToggleSound flips the sound toggle and pauses or resumes every channel.
func (g *Game) ToggleSound() {
	g.state.SoundOn = !g.state.SoundOn
	g.sound.SetEnabled(g.state.SoundOn)
	g.logger.Debug("sound toggled", "on", g.state.SoundOn)
}

// Reset starts a new life. Alive and the sound toggle are kept.
func (g *Game) Reset() {
	g.camera.Reset()
	g.level.Reset()
	g.player.Reset()

	g.state.Score = 0
	g.state.Won = false
	g.state.GameOverSoundPlayed = false
	g.state.RunRecorded = false
	g.sound.Stop(audio.EffectGameOver)

	g.markers.Reset()
	g.lifeStart = g.now()
	g.logger.Debug("game reset")
}

// Update advances one frame. Errors come only from the Level and are fatal.
func (g *Game) Update(ctx context.Context) error {
	g.player.Update(g)
	if err := g.level.Update(ctx); err != nil {
		return fmt.Errorf("game: level update: %w", err)
	}

	if !g.player.Dead() && !g.state.Won {
		g.camera.Update(g.player.Rect())
		camY := g.camera.Y()
		g.state.Score = ScoreFor(camY, g.cfg.Score.Factor)

		for i := range g.markers {
			m := &g.markers[i]
			if m.Advance(g.state.Score, camY, g.cfg.Display.Width) {
				g.logger.Debug("marker spawned",
					"label", m.Sprite.Label,
					"threshold", m.Threshold,
					"score", g.state.Score)
			}
		}

		if HasWon(g.state.Score, g.cfg.Score.WinScore) {
			g.state.Won = true
			g.PlaySound(audio.EffectWin)
			g.logger.Info("win", "score", g.state.Score)
		}
	}

	if g.player.Dead() && g.state.SoundOn && !g.state.GameOverSoundPlayed {
		g.sound.Play(audio.EffectGameOver)
		g.state.GameOverSoundPlayed = true
	}

	g.recordRun()
	return nil
}

// recordRun saves the life once it reaches a terminal phase.
func (g *Game) recordRun() {
	phase := g.Phase()
	if phase == PhasePlaying || g.state.RunRecorded {
		return
	}
	g.state.RunRecorded = true

	result := RunResult{
		Score:    g.state.Score,
		Outcome:  OutcomeDead,
		Markers:  g.markers.Spawned(),
		Duration: g.now().Sub(g.lifeStart),
	}
	if phase == PhaseWon {
		result.Outcome = OutcomeWon
	}
	g.logger.Info("run finished",
		"outcome", result.Outcome,
		"score", result.Score,
		"markers", result.Markers)

	if g.recorder == nil {
		return
	}
	if err := g.recorder.RecordRun(result); err != nil {
		g.logger.Warn("failed to record run", "err", err)
	}
}
