// internal/ui/text_field.go
package ui

import (
	"unicode"

	"go-modular-circle/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FieldState is what a TextField reports after an update.
type FieldState int

const (
	FieldIdle FieldState = iota
	FieldSubmitted
	FieldCancelled
)

// TextField is a single-line entry. Clicking focuses it, Enter submits,
// Escape or clicking elsewhere cancels the edit.
type TextField struct {
	Rect     Rect
	MaxChars int
	text     string
	focused  bool
}

func NewTextField(rect Rect, maxChars int, initial string) *TextField {
	return &TextField{Rect: rect, MaxChars: maxChars, text: initial}
}

func (f *TextField) Text() string    { return f.text }
func (f *TextField) SetText(s string) { f.text = s }
func (f *TextField) Focused() bool    { return f.focused }

func (f *TextField) Update(in Input) FieldState {
	if in.MouseJustPressed {
		inside := f.Rect.Contains(in.MouseX, in.MouseY)
		if f.focused && !inside {
			f.focused = false
			return FieldCancelled
		}
		f.focused = inside
	}
	if !f.focused {
		return FieldIdle
	}

	for _, r := range in.Chars {
		if !unicode.IsPrint(r) || unicode.IsSpace(r) {
			continue
		}
		if len([]rune(f.text)) >= f.MaxChars {
			break
		}
		f.text += string(r)
	}
	if in.Backspace && len(f.text) > 0 {
		rs := []rune(f.text)
		f.text = string(rs[:len(rs)-1])
	}
	switch {
	case in.Enter:
		f.focused = false
		return FieldSubmitted
	case in.Escape:
		f.focused = false
		return FieldCancelled
	}
	return FieldIdle
}

func (f *TextField) Draw(screen *ebiten.Image, face *text.GoTextFace) {
	r := f.Rect
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), config.FieldColor, true)
	stroke := config.FieldStroke
	if f.focused {
		stroke = config.FieldFocusStroke
	}
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1.5, stroke, true)

	s := f.text
	if f.focused {
		s += "|"
	}
	drawText(screen, s, face, r.X+6, r.Y+(r.H-config.PanelFontSize)/2-2, config.TextColor)
}
