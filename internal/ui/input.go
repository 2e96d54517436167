// internal/ui/input.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is the per-frame input state the widgets react to. It is collected
// once per Update so widget logic does not poll Ebiten directly.
type Input struct {
	MouseX, MouseY    int
	MouseDown         bool
	MouseJustPressed  bool
	MouseJustReleased bool

	Chars     []rune
	Enter     bool
	Backspace bool
	Escape    bool
}

// PollInput reads the current Ebiten input state. buf is reused for typed
// characters.
func PollInput(buf []rune) Input {
	x, y := ebiten.CursorPosition()
	return Input{
		MouseX:            x,
		MouseY:            y,
		MouseDown:         ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		MouseJustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		MouseJustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		Chars:             ebiten.AppendInputChars(buf[:0]),
		Enter:             inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter),
		Backspace:         repeating(ebiten.KeyBackspace),
		Escape:            inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

// repeating reports a key press with auto-repeat while it is held.
func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d >= 30 && d%4 == 0)
}

// Rect is an axis-aligned rectangle in screen coordinates.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y int) bool {
	fx, fy := float64(x), float64(y)
	return fx >= r.X && fx <= r.X+r.W && fy >= r.Y && fy <= r.Y+r.H
}

// Inflate grows the rectangle by dx on both sides horizontally and dy vertically.
func (r Rect) Inflate(dx, dy float64) Rect {
	return Rect{X: r.X - dx, Y: r.Y - dy, W: r.W + 2*dx, H: r.H + 2*dy}
}
