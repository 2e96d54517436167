// pkg/raster/surface.go
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"go-modular-circle/internal/command"
	"go-modular-circle/pkg/render"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Options configures a Surface.
type Options struct {
	Size        int
	CenterX     float64
	CenterY     float64
	Radius      float64
	LineWidth   float64
	CircleWidth float64
	Segments    int
	Palette     render.Palette
	FontSize    float64
}

// Surface is the image.RGBA counterpart of the on-screen canvas, used to
// export without a window.
type Surface struct {
	opts  Options
	back  *image.RGBA
	front *image.RGBA
	z     *vector.Rasterizer
	face  font.Face
	lines int
}

func NewSurface(opts Options) (*Surface, error) {
	if opts.Size <= 0 {
		return nil, fmt.Errorf("raster: invalid size %d", opts.Size)
	}
	if opts.Segments < 8 {
		opts.Segments = 8
	}
	s := &Surface{
		opts:  opts,
		back:  image.NewRGBA(image.Rect(0, 0, opts.Size, opts.Size)),
		front: image.NewRGBA(image.Rect(0, 0, opts.Size, opts.Size)),
		z:     vector.NewRasterizer(opts.Size, opts.Size),
	}
	if opts.FontSize > 0 {
		face, err := newFace(opts.FontSize)
		if err != nil {
			return nil, err
		}
		s.face = face
	}
	s.Clear()
	s.Present()
	return s, nil
}

func newFace(size float64) (font.Face, error) {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	return face, nil
}

func (s *Surface) Clear() {
	draw.Draw(s.back, s.back.Bounds(), image.NewUniform(s.opts.Palette.Background), image.Point{}, draw.Src)
	s.lines = 0
}

func (s *Surface) StrokeCircle() {
	o := s.opts
	hw := math.Max(o.CircleWidth, 1) / 2
	outer, inner := o.Radius+hw, math.Max(o.Radius-hw, 0)

	r := image.Rect(
		int(math.Floor(o.CenterX-outer-1)), int(math.Floor(o.CenterY-outer-1)),
		int(math.Ceil(o.CenterX+outer+1)), int(math.Ceil(o.CenterY+outer+1)),
	).Intersect(s.back.Bounds())
	if r.Empty() {
		return
	}
	ox, oy := float64(r.Min.X), float64(r.Min.Y)

	s.z.Reset(r.Dx(), r.Dy())
	ring := func(rad float64, reverse bool) {
		for i := 0; i <= o.Segments; i++ {
			k := i
			if reverse {
				k = o.Segments - i
			}
			a := 2 * math.Pi * float64(k) / float64(o.Segments)
			x := float32(o.CenterX + rad*math.Cos(a) - ox)
			y := float32(o.CenterY - rad*math.Sin(a) - oy)
			if i == 0 {
				s.z.MoveTo(x, y)
			} else {
				s.z.LineTo(x, y)
			}
		}
		s.z.ClosePath()
	}
	ring(outer, false)
	if inner > 0 {
		ring(inner, true)
	}
	s.z.Draw(s.back, r, image.NewUniform(o.Palette.Circle), image.Point{})
}

// StrokeLine draws the chord as a thin quad. Zero-length chords leave no
// mark but still count.
func (s *Surface) StrokeLine(l command.Line) {
	s.lines++
	dx, dy := l.X2-l.X1, l.Y2-l.Y1
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	hw := math.Max(s.opts.LineWidth, 0.5) / 2
	nx, ny := -dy/length*hw, dx/length*hw

	r := image.Rect(
		int(math.Floor(math.Min(l.X1, l.X2)-hw-1)), int(math.Floor(math.Min(l.Y1, l.Y2)-hw-1)),
		int(math.Ceil(math.Max(l.X1, l.X2)+hw+1)), int(math.Ceil(math.Max(l.Y1, l.Y2)+hw+1)),
	).Intersect(s.back.Bounds())
	if r.Empty() {
		return
	}
	ox, oy := float64(r.Min.X), float64(r.Min.Y)

	s.z.Reset(r.Dx(), r.Dy())
	s.z.MoveTo(float32(l.X1+nx-ox), float32(l.Y1+ny-oy))
	s.z.LineTo(float32(l.X2+nx-ox), float32(l.Y2+ny-oy))
	s.z.LineTo(float32(l.X2-nx-ox), float32(l.Y2-ny-oy))
	s.z.LineTo(float32(l.X1-nx-ox), float32(l.Y1-ny-oy))
	s.z.ClosePath()
	s.z.Draw(s.back, r, image.NewUniform(s.opts.Palette.LineColor(l.Index, l.Total)), image.Point{})
}

func (s *Surface) Present() {
	draw.Draw(s.front, s.front.Bounds(), s.back, image.Point{}, draw.Src)
}

// Caption writes text on the presented image with its baseline at (x, y).
// It is a no-op when the surface was built without a font size.
func (s *Surface) Caption(text string, x, y int, clr color.Color) {
	if s.face == nil {
		return
	}
	d := &font.Drawer{
		Dst:  s.front,
		Src:  image.NewUniform(clr),
		Face: s.face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// Lines returns how many chords were drawn since the last Clear.
func (s *Surface) Lines() int {
	return s.lines
}

// Image returns the presented image.
func (s *Surface) Image() *image.RGBA {
	return s.front
}

func (s *Surface) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, s.front); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
