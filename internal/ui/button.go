// internal/ui/button.go
package ui

import (
	"image/color"

	"go-modular-circle/internal/config"
	"go-modular-circle/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button is a clickable rectangle with a label. A click counts when the
// mouse is pressed and released over it.
type Button struct {
	Rect       Rect
	Text       string
	TextColor  color.RGBA
	BgColor    color.RGBA
	HoverColor color.RGBA
	hovered    bool
	pressed    bool
}

func NewButton(rect Rect, label string) *Button {
	return &Button{
		Rect:       rect,
		Text:       label,
		TextColor:  color.RGBA{240, 240, 240, 255},
		BgColor:    config.ButtonColor,
		HoverColor: config.ButtonHoverColor,
	}
}

// Update reports whether the button was clicked this frame.
func (b *Button) Update(in Input) bool {
	b.hovered = b.Rect.Contains(in.MouseX, in.MouseY)
	if b.hovered && in.MouseJustPressed {
		b.pressed = true
	}
	if in.MouseJustReleased {
		clicked := b.pressed && b.hovered
		b.pressed = false
		return clicked
	}
	return false
}

func (b *Button) Draw(screen *ebiten.Image, face *text.GoTextFace) {
	bg := b.BgColor
	switch {
	case b.pressed:
		bg = render.DarkenColor(b.HoverColor)
	case b.hovered:
		bg = b.HoverColor
	}
	r := b.Rect
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), bg, true)
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, render.DarkenColor(bg), true)
	drawTextCentered(screen, b.Text, face, r, b.TextColor)
}
