package game

import (
	"fmt"

	"github.com/vovakirdan/tui-doodle/internal/core"
)

// HUD glyphs and layout, in display pixels.
const (
	GuideChar      = '─'
	SoundOnGlyph   = "♫"
	SoundOffGlyph  = "×"
	scoreX, scoreY = 10, 10
	labelLift      = 10 // label sits this far above its guide line
	hintGap        = 40 // restart hint below the banner
)

// Render draws the frame back to front: level, player, markers, sound icon,
// then the HUD for the current phase.
func (g *Game) Render(dst *core.Canvas) {
	g.level.Draw(dst, g.camera)
	g.player.Draw(dst, g.camera)

	for i := range g.markers {
		m := &g.markers[i]
		if !m.Spawned {
			continue
		}
		r := g.camera.Project(m.Rect)
		g.drawGuide(dst, r.CenterY(), "$"+FormatScore(m.Threshold))
		dst.FillRect(r, m.Sprite.Glyph, m.Sprite.Color)
	}

	g.drawSoundIcon(dst)

	cx, cy := dst.Width()/2, dst.Height()/2
	switch g.Phase() {
	case PhaseDead:
		dst.TextCentered(cx, cy, g.cfg.Text.GameOver, core.ColorGray)
		dst.TextCentered(cx, cy+hintGap, g.cfg.Text.Restart, core.ColorGray)
	case PhaseWon:
		dst.TextCentered(cx, cy, g.cfg.Text.Win, core.ColorGray)
		dst.TextCentered(cx, cy+hintGap, g.cfg.Text.Restart, core.ColorGray)
	default:
		dst.Text(scoreX, scoreY, g.ScoreText(), core.ColorGray)
	}
}

// ScoreText is the HUD score line.
func (g *Game) ScoreText() string {
	return fmt.Sprintf("%s %s", FormatScore(g.state.Score), g.cfg.Text.ScoreSuffix)
}

func (g *Game) drawGuide(dst *core.Canvas, y int, label string) {
	dst.HLine(y, GuideChar, core.ColorWhite)
	dst.TextCentered(dst.Width()/2, y-labelLift, label, core.ColorWhite)
}

func (g *Game) drawSoundIcon(dst *core.Canvas) {
	glyph, color := SoundOffGlyph, core.ColorGray
	if g.state.SoundOn {
		glyph, color = SoundOnGlyph, core.ColorBrightCyan
	}
	dst.TextCentered(g.soundIcon.CenterX(), g.soundIcon.CenterY(), glyph, color)
}
