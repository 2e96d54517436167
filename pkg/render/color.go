// pkg/render/color.go
package render

import (
	"image/color"
	"math"
)

// Palette holds the colours a surface draws with.
type Palette struct {
	Background color.RGBA
	Circle     color.RGBA
	Chord      color.RGBA
	// Rainbow colours each chord by its index instead of using Chord.
	Rainbow    bool
	Saturation float64
	Value      float64
}

// LineColor returns the colour of chord index out of total. Rainbow colours
// take their alpha from Chord and are returned alpha-premultiplied, like
// every color.RGBA.
func (p Palette) LineColor(index, total int) color.RGBA {
	if !p.Rainbow || total <= 0 {
		return p.Chord
	}
	hue := 360 * float64(index) / float64(total)
	r, g, b := HSVToRGB(hue, p.Saturation, p.Value)
	return color.RGBAModel.Convert(color.NRGBA{R: r, G: g, B: b, A: p.Chord.A}).(color.RGBA)
}

// HSVToRGB converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1).
func HSVToRGB(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return toByte(r + m), toByte(g + m), toByte(b + m)
}

func toByte(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
