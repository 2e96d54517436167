// internal/ui/font.go
package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// NewFace loads Go Regular at the given size.
func NewFace(size float64) (*text.GoTextFace, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load panel font: %w", err)
	}
	return &text.GoTextFace{Source: src, Size: size}, nil
}

// drawText draws s with its top-left corner at (x, y).
func drawText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

// drawTextCentered centers s inside r.
func drawTextCentered(screen *ebiten.Image, s string, face *text.GoTextFace, r Rect, clr color.Color) {
	w, h := text.Measure(s, face, 0)
	drawText(screen, s, face, r.X+(r.W-w)/2, r.Y+(r.H-h)/2, clr)
}
