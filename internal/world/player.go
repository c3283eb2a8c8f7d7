package world

import (
	"math"

	"github.com/vovakirdan/tui-doodle/internal/audio"
	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/core"
	"github.com/vovakirdan/tui-doodle/internal/game"
)

// Player glyph and color.
const (
	PlayerChar  = '█'
	PlayerColor = core.ColorBrightYellow
)

// Player bounces off every platform it falls onto. Terminals only report
// key presses, so steering is an impulse that friction bleeds off.
type Player struct {
	cfg    config.PlayerConfig
	width  int
	height int
	level  *Level
	camera *Camera

	x, y   float64
	vx, vy float64
	dead   bool
}

// NewPlayer creates a player standing above the first platform.
func NewPlayer(display config.DisplayConfig, cfg config.PlayerConfig, level *Level, camera *Camera) *Player {
	p := &Player{
		cfg:    cfg,
		width:  display.Width,
		height: display.Height,
		level:  level,
		camera: camera,
	}
	p.Reset()
	return p
}

// Dead reports whether the player fell out of view.
func (p *Player) Dead() bool {
	return p.dead
}

// Rect returns the player hitbox in world pixels.
func (p *Player) Rect() core.Rect {
	return core.NewRect(int(math.Round(p.x)), int(math.Round(p.y)), p.cfg.Width, p.cfg.Height)
}

// Reset puts the player back at the start position.
func (p *Player) Reset() {
	p.x = float64(p.width/2 - p.cfg.Width/2)
	p.y = float64(p.height/2 + p.height/4)
	p.vx, p.vy = 0, 0
	p.dead = false
}

// HandleEvent steers on left and right key presses.
func (p *Player) HandleEvent(ev core.Event) {
	if p.dead || ev.Kind != core.EventKeyDown {
		return
	}
	switch ev.Key {
	case core.KeyLeft:
		p.vx = -p.cfg.MoveSpeed
	case core.KeyRight:
		p.vx = p.cfg.MoveSpeed
	}
}

// Update applies one frame of movement.
func (p *Player) Update(host game.Host) {
	if p.dead {
		return
	}

	p.x += p.vx
	p.vx *= p.cfg.Friction
	if math.Abs(p.vx) < 0.05 {
		p.vx = 0
	}
	p.wrap()

	prevBottom := p.y + float64(p.cfg.Height)
	p.vy = math.Min(p.vy+p.cfg.Gravity, p.cfg.MaxFallSpeed)
	p.y += p.vy

	if p.vy > 0 {
		r := p.Rect()
		if pl, ok := p.level.Landing(r.X, r.Right(), prevBottom, p.y+float64(p.cfg.Height)); ok {
			p.y = float64(pl.Y - p.cfg.Height)
			p.vy = p.cfg.JumpImpulse
			host.PlaySound(audio.EffectJump)
		}
	}

	if int(p.y) > p.camera.Y()+p.height {
		p.dead = true
		host.PlaySound(audio.EffectHit)
	}
}

// Draw renders the player through cam.
func (p *Player) Draw(dst *core.Canvas, cam game.Camera) {
	dst.FillRect(cam.Project(p.Rect()), PlayerChar, PlayerColor)
}

// wrap moves the player to the opposite edge once it leaves the display.
func (p *Player) wrap() {
	w := float64(p.cfg.Width)
	switch {
	case p.x > float64(p.width):
		p.x = -w
	case p.x+w < 0:
		p.x = float64(p.width)
	}
}

var (
	_ game.Camera = (*Camera)(nil)
	_ game.Level  = (*Level)(nil)
	_ game.Player = (*Player)(nil)
)
