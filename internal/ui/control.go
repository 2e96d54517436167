// internal/ui/control.go
package ui

import (
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Control binds a Slider and a TextField to one bounded integer. Both widgets
// always show the accepted value. onChange is called once per accepted
// change; it is the only way the control talks to the rest of the program.
type Control struct {
	Min, Max int
	value    int
	slider   *Slider
	field    *TextField
	onChange func(int)
}

// NewControl creates a control. initial is clamped into [min, max] without
// calling onChange.
func NewControl(label string, min, max, initial int, sliderRect, fieldRect Rect, maxChars int, onChange func(int)) *Control {
	c := &Control{
		Min:      min,
		Max:      max,
		slider:   NewSlider(sliderRect, label, min, max, initial),
		field:    NewTextField(fieldRect, maxChars, ""),
		onChange: onChange,
	}
	c.Sync(initial)
	return c
}

func (c *Control) Value() int { return c.value }

// Editing reports whether the text field has keyboard focus.
func (c *Control) Editing() bool { return c.field.Focused() }

// Sync sets the value without notifying, clamping it into range.
func (c *Control) Sync(v int) {
	c.value = c.clamp(v)
	c.slider.SetValue(c.value)
	c.field.SetText(strconv.Itoa(c.value))
}

// SetValue clamps v, updates both widgets and notifies when the value
// actually changed. It reports whether a notification was sent.
func (c *Control) SetValue(v int) bool {
	old := c.value
	c.Sync(v)
	if c.value == old {
		return false
	}
	if c.onChange != nil {
		c.onChange(c.value)
	}
	return true
}

// Submit applies typed text. Anything that is not an integer is rejected and
// the field goes back to the current value. Out-of-range integers are
// clamped the same way the slider bounds them.
func (c *Control) Submit(s string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		c.field.SetText(strconv.Itoa(c.value))
		return false
	}
	c.SetValue(n)
	return true
}

func (c *Control) Update(in Input) {
	if v, ok := c.slider.Update(in); ok {
		c.SetValue(v)
	}
	switch c.field.Update(in) {
	case FieldSubmitted:
		c.Submit(c.field.Text())
	case FieldCancelled:
		c.field.SetText(strconv.Itoa(c.value))
	}
}

func (c *Control) Draw(screen *ebiten.Image, face *text.GoTextFace) {
	c.slider.Draw(screen, face)
	c.field.Draw(screen, face)
}

func (c *Control) clamp(v int) int {
	if v < c.Min {
		return c.Min
	}
	if v > c.Max {
		return c.Max
	}
	return v
}
