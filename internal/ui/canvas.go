// internal/ui/canvas.go
package ui

import (
	"go-modular-circle/internal/command"
	"go-modular-circle/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas is a double-buffered Ebiten drawing surface. Drawing goes to the
// back image; Present copies it to the front image, which is what Draw shows.
type Canvas struct {
	back    *ebiten.Image
	front   *ebiten.Image
	cx, cy  float32
	radius  float32
	palette render.Palette

	lineWidth   float32
	circleWidth float32

	// lines counts chords drawn on the back image since the last Clear.
	lines     int
	presented int
}

func NewCanvas(size int, cx, cy, radius float64, palette render.Palette, lineWidth, circleWidth float32) *Canvas {
	c := &Canvas{
		back:        ebiten.NewImage(size, size),
		front:       ebiten.NewImage(size, size),
		cx:          float32(cx),
		cy:          float32(cy),
		radius:      float32(radius),
		palette:     palette,
		lineWidth:   lineWidth,
		circleWidth: circleWidth,
	}
	c.back.Fill(palette.Background)
	c.front.Fill(palette.Background)
	return c
}

// SetPalette changes colours for everything drawn from now on.
func (c *Canvas) SetPalette(p render.Palette) {
	c.palette = p
}

func (c *Canvas) Palette() render.Palette {
	return c.palette
}

func (c *Canvas) Clear() {
	c.back.Fill(c.palette.Background)
	c.lines = 0
}

func (c *Canvas) StrokeCircle() {
	vector.StrokeCircle(c.back, c.cx, c.cy, c.radius, c.circleWidth, c.palette.Circle, true)
}

func (c *Canvas) StrokeLine(l command.Line) {
	clr := c.palette.LineColor(l.Index, l.Total)
	vector.StrokeLine(c.back, float32(l.X1), float32(l.Y1), float32(l.X2), float32(l.Y2), c.lineWidth, clr, true)
	c.lines++
}

func (c *Canvas) Present() {
	c.front.Clear()
	c.front.DrawImage(c.back, nil)
	c.presented = c.lines
}

// Lines returns how many chords the presented image holds.
func (c *Canvas) Lines() int {
	return c.presented
}

// Draw blits the presented image onto screen at (x, y).
func (c *Canvas) Draw(screen *ebiten.Image, x, y float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	screen.DrawImage(c.front, op)
}
