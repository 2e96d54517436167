package render

import (
	"image/color"
	"testing"
)

func TestHSVToRGB(t *testing.T) {
	tests := []struct {
		h, s, v float64
		want    [3]uint8
	}{
		{0, 1, 1, [3]uint8{255, 0, 0}},
		{120, 1, 1, [3]uint8{0, 255, 0}},
		{240, 1, 1, [3]uint8{0, 0, 255}},
		{360, 1, 1, [3]uint8{255, 0, 0}},
		{-120, 1, 1, [3]uint8{0, 0, 255}},
		{42, 0, 1, [3]uint8{255, 255, 255}},
		{42, 1, 0, [3]uint8{0, 0, 0}},
	}
	for _, tt := range tests {
		r, g, b := HSVToRGB(tt.h, tt.s, tt.v)
		if got := [3]uint8{r, g, b}; got != tt.want {
			t.Errorf("HSVToRGB(%v, %v, %v) = %v, want %v", tt.h, tt.s, tt.v, got, tt.want)
		}
	}
}

func TestLineColor(t *testing.T) {
	chord := color.RGBA{1, 2, 3, 200}
	p := Palette{Chord: chord, Saturation: 1, Value: 1}
	if got := p.LineColor(5, 10); got != chord {
		t.Errorf("monochrome LineColor = %v, want %v", got, chord)
	}

	p.Rainbow = true
	if got := p.LineColor(0, 3); got != (color.RGBA{200, 0, 0, 200}) {
		t.Errorf("rainbow LineColor(0) = %v, want premultiplied red", got)
	}
	if got := p.LineColor(1, 3); got != (color.RGBA{0, 200, 0, 200}) {
		t.Errorf("rainbow LineColor(1) = %v, want premultiplied green", got)
	}
	if got := p.LineColor(0, 0); got != chord {
		t.Errorf("LineColor with total 0 = %v, want chord colour", got)
	}
}

func TestLineColorPremultiplied(t *testing.T) {
	for _, a := range []uint8{0, 1, 128, 200, 255} {
		p := Palette{Chord: color.RGBA{A: a}, Rainbow: true, Saturation: 0.75, Value: 0.85}
		for i := 0; i < 12; i++ {
			c := p.LineColor(i, 12)
			if c.R > c.A || c.G > c.A || c.B > c.A {
				t.Errorf("alpha %d: LineColor(%d, 12) = %v has a channel above alpha", a, i, c)
			}
			if c.A != a {
				t.Errorf("alpha %d: LineColor(%d, 12).A = %d", a, i, c.A)
			}
		}
	}
}

func TestLineColorOpaqueKeepsHue(t *testing.T) {
	p := Palette{Chord: color.RGBA{A: 255}, Rainbow: true, Saturation: 1, Value: 1}
	if got := p.LineColor(2, 3); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("opaque LineColor(2, 3) = %v, want blue", got)
	}
}
