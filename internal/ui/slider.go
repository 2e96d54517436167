// internal/ui/slider.go
package ui

import (
	"fmt"
	"math"

	"go-modular-circle/internal/config"
	"go-modular-circle/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Slider is a horizontal integer slider. It only proposes values; the owning
// Control decides whether to accept them.
type Slider struct {
	Rect     Rect
	Label    string
	Min, Max int
	value    int
	dragging bool
}

func NewSlider(rect Rect, label string, min, max, value int) *Slider {
	s := &Slider{Rect: rect, Label: label, Min: min, Max: max}
	s.SetValue(value)
	return s
}

func (s *Slider) Value() int { return s.value }

func (s *Slider) SetValue(v int) {
	s.value = max(s.Min, min(v, s.Max))
}

func (s *Slider) Dragging() bool { return s.dragging }

// ValueAt maps a screen x coordinate onto the slider range.
func (s *Slider) ValueAt(x float64) int {
	if s.Max <= s.Min || s.Rect.W <= 0 {
		return s.Min
	}
	t := (x - s.Rect.X) / s.Rect.W
	t = math.Max(0, math.Min(1, t))
	return s.Min + int(math.Round(t*float64(s.Max-s.Min)))
}

// KnobX is the screen x of the knob for the current value.
func (s *Slider) KnobX() float64 {
	if s.Max <= s.Min {
		return s.Rect.X
	}
	return s.Rect.X + s.Rect.W*float64(s.value-s.Min)/float64(s.Max-s.Min)
}

// Update handles a click or drag. It returns the value under the cursor and
// true when that differs from the current value.
func (s *Slider) Update(in Input) (int, bool) {
	hit := s.Rect.Inflate(config.SliderKnobSize, config.SliderKnobSize)
	if in.MouseJustPressed && hit.Contains(in.MouseX, in.MouseY) {
		s.dragging = true
	}
	if !s.dragging {
		return s.value, false
	}
	if in.MouseJustReleased || !in.MouseDown {
		s.dragging = false
	}
	v := s.ValueAt(float64(in.MouseX))
	return v, v != s.value
}

func (s *Slider) Draw(screen *ebiten.Image, face *text.GoTextFace) {
	r := s.Rect
	drawText(screen, fmt.Sprintf("%s: %d", s.Label, s.value), face, r.X, r.Y-24, config.TextColor)

	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), config.TrackColor, true)
	filled := s.KnobX() - r.X
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(filled), float32(r.H), config.KnobColor, true)

	knob := config.KnobColor
	if s.dragging {
		knob = render.DarkenColor(knob)
	}
	vector.DrawFilledCircle(screen, float32(s.KnobX()), float32(r.Y+r.H/2), config.SliderKnobSize, knob, true)
}
