// Package world holds the minimal collaborators the game core drives: a
// follow camera, an endless platform level and the jumping player.
package world

import (
	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/core"
)

// Camera follows the highest point the player reaches. It never scrolls
// back down.
type Camera struct {
	y         float64
	lerp      float64
	center    int
	maxHeight int
}

// NewCamera creates a camera for the given display.
func NewCamera(display config.DisplayConfig, lvl config.LevelConfig) *Camera {
	lerp := lvl.CameraLerp
	if lerp < 1 {
		lerp = 1
	}
	c := &Camera{lerp: lerp, center: display.Height / 2}
	c.Reset()
	return c
}

// Y returns the world y of the top of the view.
func (c *Camera) Y() int {
	return int(c.y)
}

// Reset moves the camera back to the start.
func (c *Camera) Reset() {
	c.y = 0
	c.maxHeight = c.center
}

// Update eases the view toward the highest point the player reached.
func (c *Camera) Update(player core.Rect) {
	if player.Y < c.maxHeight {
		c.maxHeight = player.Y
	}
	speed := ((c.y + float64(c.center)) - float64(c.maxHeight)) / c.lerp
	if speed > 0 {
		c.y -= speed
	}
}

// Project converts a world rectangle into display coordinates.
func (c *Camera) Project(world core.Rect) core.Rect {
	return world.Move(0, -c.Y())
}
