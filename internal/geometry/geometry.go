// internal/geometry/geometry.go
package geometry

import (
	"math"

	"go-modular-circle/pkg/utils"
)

// Point is a position on the canvas, y grows downwards.
type Point struct {
	X, Y float64
}

// Chord connects point From to point To.
type Chord struct {
	From, To int
}

// IsLoop reports whether the chord starts and ends on the same point.
func (c Chord) IsLoop() bool {
	return c.From == c.To
}

// Points places n points evenly on a circle. Index 0 sits at the top
// (90 degrees) and indices advance clockwise.
func Points(n int, center Point, radius float64) []Point {
	if n <= 0 {
		return nil
	}
	pts := make([]Point, n)
	step := 2 * math.Pi / float64(n)
	for i := range pts {
		angle := math.Pi/2 - float64(i)*step
		pts[i] = Point{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y - radius*math.Sin(angle),
		}
	}
	return pts
}

// Target returns (i*m) mod n in [0, n), also for negative m.
func Target(i, m, n int) int {
	t := (i * m) % n
	if t < 0 {
		t += n
	}
	return t
}

// Chords returns the n chords i -> (i*m) mod n in index order.
func Chords(n, m int) []Chord {
	if n <= 0 {
		return nil
	}
	out := make([]Chord, n)
	for i := range out {
		out[i] = Chord{From: i, To: Target(i, m, n)}
	}
	return out
}

// FixedPoints counts the chords that are self-loops, i.e. the i with
// i*m = i (mod n). That count is gcd(m-1, n).
func FixedPoints(n, m int) int {
	if n <= 0 {
		return 0
	}
	return utils.Gcd(m-1, n)
}
