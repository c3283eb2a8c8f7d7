package world

import (
	"context"
	"math/rand"

	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/core"
	"github.com/vovakirdan/tui-doodle/internal/game"
)

// Platform glyph and color.
const (
	PlatformChar  = '▀'
	PlatformColor = core.ColorGreen
)

// groundOffset is how far above the display bottom the first platform sits.
const groundOffset = 80

// Level keeps a column of platforms from one screen below the camera to
// one screen above it.
type Level struct {
	cfg       config.LevelConfig
	width     int
	height    int
	camera    *Camera
	seed      int64
	rng       *rand.Rand
	platforms []core.Rect
}

// NewLevel creates a level that scrolls with camera.
func NewLevel(display config.DisplayConfig, cfg config.LevelConfig, camera *Camera, seed int64) *Level {
	if cfg.MaxSpacing < cfg.MinSpacing {
		cfg.MaxSpacing = cfg.MinSpacing
	}
	l := &Level{
		cfg:    cfg,
		width:  display.Width,
		height: display.Height,
		camera: camera,
		seed:   seed,
	}
	l.Reset()
	return l
}

// Platforms returns the live platforms, lowest first.
func (l *Level) Platforms() []core.Rect {
	return l.platforms
}

// Reset regenerates the level from its seed.
func (l *Level) Reset() {
	l.rng = rand.New(rand.NewSource(l.seed))
	ground := core.NewRect(
		l.width/2-l.cfg.PlatformWidth/2, l.height-groundOffset,
		l.cfg.PlatformWidth, l.cfg.PlatformHeight,
	)
	l.platforms = append(l.platforms[:0], ground)
	l.generate(0)
}

// Update adds platforms above the view and drops those that fell below it.
func (l *Level) Update(_ context.Context) error {
	top := l.camera.Y()
	l.generate(top)

	bottom := top + 2*l.height
	kept := l.platforms[:0]
	for _, p := range l.platforms {
		if p.Y <= bottom {
			kept = append(kept, p)
		}
	}
	l.platforms = kept
	return nil
}

// Draw renders every visible platform.
func (l *Level) Draw(dst *core.Canvas, cam game.Camera) {
	for _, p := range l.platforms {
		r := cam.Project(p)
		if r.Bottom() < 0 || r.Y > dst.Height() {
			continue
		}
		dst.FillRect(r, PlatformChar, PlatformColor)
	}
}

// Landing returns the platform whose top edge lies between prevBottom and
// bottom and overlaps [left, right), if any.
func (l *Level) Landing(left, right int, prevBottom, bottom float64) (core.Rect, bool) {
	for _, p := range l.platforms {
		top := float64(p.Y)
		if prevBottom > top || bottom < top {
			continue
		}
		if right <= p.X || left >= p.Right() {
			continue
		}
		return p, true
	}
	return core.Rect{}, false
}

// generate stacks platforms until one screen above viewTop is covered.
func (l *Level) generate(viewTop int) {
	limit := viewTop - l.height
	for {
		highest := l.platforms[len(l.platforms)-1]
		if highest.Y <= limit {
			return
		}
		gap := max(l.cfg.MinSpacing, 1)
		if span := l.cfg.MaxSpacing - l.cfg.MinSpacing; span > 0 {
			gap += l.rng.Intn(span + 1)
		}
		x := 0
		if free := l.width - l.cfg.PlatformWidth; free > 0 {
			x = l.rng.Intn(free + 1)
		}
		l.platforms = append(l.platforms, core.NewRect(
			x, highest.Y-gap, l.cfg.PlatformWidth, l.cfg.PlatformHeight,
		))
	}
}
