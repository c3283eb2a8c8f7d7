package game

import "github.com/vovakirdan/tui-doodle/internal/core"

// HandleInput routes one frame's worth of events in arrival order. At most
// one rule fires per event; every event is then passed on to the player.
func (g *Game) HandleInput(events []core.Event) {
	for _, ev := range events {
		g.route(ev)
		g.player.HandleEvent(ev)
	}
}

func (g *Game) route(ev core.Event) {
	switch ev.Kind {
	case core.EventQuit:
		g.Quit()
	case core.EventKeyDown:
		switch ev.Key {
		case core.KeyEscape:
			g.Quit()
		case core.KeyEnter:
			if g.player.Dead() || g.state.Won {
				g.Reset()
			}
		}
	case core.EventMouseDown:
		if ev.Button == core.MousePrimary && g.soundIcon.Contains(ev.X, ev.Y) {
			g.ToggleSound()
		}
	}
}
