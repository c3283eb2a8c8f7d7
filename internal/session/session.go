// Package session assembles one playable game: collaborators, sound and the
// frame loop.
package session

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/core"
	"github.com/vovakirdan/tui-doodle/internal/game"
	"github.com/vovakirdan/tui-doodle/internal/loop"
	"github.com/vovakirdan/tui-doodle/internal/world"
)

// Deps are the per-session dependencies supplied by the host.
type Deps struct {
	Sound    game.Sound       // required; owned by the session from New on
	Recorder game.RunRecorder // optional
	Logger   *log.Logger      // optional
}

// Session is one game wired to its collaborators.
type Session struct {
	cfg    config.DoodleConfig
	rt     core.RuntimeConfig
	game   *game.Game
	logger *log.Logger
}

// New builds a session. rt gives the initial terminal size, the frame rate
// and the level seed.
func New(cfg config.DoodleConfig, rt core.RuntimeConfig, deps Deps) (*Session, error) {
	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if rt.TickRate <= 0 {
		rt.TickRate = cfg.Display.FPS
	}

	camera := world.NewCamera(cfg.Display, cfg.Level)
	level := world.NewLevel(cfg.Display, cfg.Level, camera, rt.Seed)
	player := world.NewPlayer(cfg.Display, cfg.Player, level, camera)

	g, err := game.New(cfg, game.Options{
		Camera:   camera,
		Level:    level,
		Player:   player,
		Sound:    deps.Sound,
		Recorder: deps.Recorder,
		Logger:   logger,
	})
	if err != nil {
		if deps.Sound != nil {
			deps.Sound.Close()
		}
		return nil, err
	}

	return &Session{cfg: cfg, rt: rt, game: g, logger: logger}, nil
}

// Game returns the orchestrator.
func (s *Session) Game() *game.Game {
	return s.game
}

// Display returns the logical display size in pixels.
func (s *Session) Display() (int, int) {
	return s.cfg.Display.Width, s.cfg.Display.Height
}

// SoundIcon returns the sound toggle area in display pixels.
func (s *Session) SoundIcon() core.Rect {
	return s.game.SoundIcon()
}

// Run plays until the game quits or ctx is done. Sound is released on return.
func (s *Session) Run(ctx context.Context, events loop.EventSource, presenter loop.Presenter) error {
	canvas := core.NewCanvas(
		core.NewScreen(s.rt.ScreenW, s.rt.ScreenH),
		s.cfg.Display.Width, s.cfg.Display.Height,
	)
	s.logger.Info("game started",
		"fps", s.rt.TickRate,
		"seed", s.rt.Seed,
		"cols", s.rt.ScreenW,
		"rows", s.rt.ScreenH)

	driver := loop.NewDriver(s.game, events, presenter, loop.NewClock(s.rt.TickRate), canvas, s.logger)
	err := driver.Run(ctx)
	s.logger.Info("game stopped", "frames", driver.Frames(), "score", s.game.State().Score)
	return err
}
