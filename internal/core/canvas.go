package core

import (
	"math"
	"unicode/utf8"
)

// Projection maps a fixed pixel display onto a terminal cell grid.
type Projection struct {
	Cols, Rows     int // Cell grid size
	PixelW, PixelH int // Logical display size in pixels
}

// Col returns the cell column containing pixel x.
func (p Projection) Col(x int) int {
	if p.PixelW <= 0 {
		return 0
	}
	return int(math.Floor(float64(x) * float64(p.Cols) / float64(p.PixelW)))
}

// Row returns the cell row containing pixel y.
func (p Projection) Row(y int) int {
	if p.PixelH <= 0 {
		return 0
	}
	return int(math.Floor(float64(y) * float64(p.Rows) / float64(p.PixelH)))
}

// Pixel returns the pixel at the center of cell (col, row).
// Used to translate pointer positions back into display space.
func (p Projection) Pixel(col, row int) (int, int) {
	if p.Cols <= 0 || p.Rows <= 0 {
		return 0, 0
	}
	x := (float64(col) + 0.5) * float64(p.PixelW) / float64(p.Cols)
	y := (float64(row) + 0.5) * float64(p.PixelH) / float64(p.Rows)
	return int(x), int(y)
}

// Cells converts a pixel rectangle into the covered cell rectangle.
// Any non-empty rectangle covers at least one cell.
func (p Projection) Cells(r Rect) Rect {
	x0, y0 := p.Col(r.X), p.Row(r.Y)
	x1, y1 := p.Col(r.Right()), p.Row(r.Bottom())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// Canvas is a drawing surface addressed in display pixels and backed by a
// cell Screen. Everything the game draws goes through a Canvas.
type Canvas struct {
	screen *Screen
	proj   Projection
}

// NewCanvas wraps screen so that a pixelW x pixelH display fills it.
func NewCanvas(screen *Screen, pixelW, pixelH int) *Canvas {
	return &Canvas{
		screen: screen,
		proj: Projection{
			Cols:   screen.Width(),
			Rows:   screen.Height(),
			PixelW: pixelW,
			PixelH: pixelH,
		},
	}
}

// Screen returns the backing cell buffer.
func (c *Canvas) Screen() *Screen {
	return c.screen
}

// Projection returns the current pixel to cell mapping.
func (c *Canvas) Projection() Projection {
	return c.proj
}

// Width returns the display width in pixels.
func (c *Canvas) Width() int {
	return c.proj.PixelW
}

// Height returns the display height in pixels.
func (c *Canvas) Height() int {
	return c.proj.PixelH
}

// Resize changes the backing cell grid. The pixel display size is fixed.
func (c *Canvas) Resize(cols, rows int) {
	c.screen.Resize(cols, rows)
	c.proj.Cols = c.screen.Width()
	c.proj.Rows = c.screen.Height()
}

// Clear blanks the backing screen.
func (c *Canvas) Clear() {
	c.screen.Clear()
}

// FillRect paints every cell covered by the pixel rectangle r.
func (c *Canvas) FillRect(r Rect, fill rune, col Color) {
	c.screen.DrawRect(c.proj.Cells(r), fill, col)
}

// HLine draws a full-width horizontal line at pixel row y.
func (c *Canvas) HLine(y int, r rune, col Color) {
	c.screen.DrawHLine(0, c.proj.Row(y), c.screen.Width(), r, col)
}

// Text draws text whose first character sits in the cell containing (x, y).
func (c *Canvas) Text(x, y int, text string, col Color) {
	c.screen.DrawText(c.proj.Col(x), c.proj.Row(y), text, col)
}

// TextCentered draws text centered on pixel (x, y).
func (c *Canvas) TextCentered(x, y int, text string, col Color) {
	n := utf8.RuneCountInString(text)
	c.screen.DrawText(c.proj.Col(x)-n/2, c.proj.Row(y), text, col)
}
