// internal/ui/panel.go
package ui

import (
	"go-modular-circle/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PanelCallbacks are supplied by the owner of the panel. The panel never
// reaches back into the application any other way.
type PanelCallbacks struct {
	OnMultiplier func(int)
	OnPoints     func(int)
	OnSave       func()
}

// Panel is the strip under the canvas holding both parameter controls, the
// save button and a status line.
type Panel struct {
	Top        float64
	Multiplier *Control
	Points     *Control
	Save       *Button
	face       *text.GoTextFace
	onSave     func()
	status     string
	statusErr  bool
	info       string
}

func NewPanel(top float64, face *text.GoTextFace, multiplier, points int, cb PanelCallbacks) *Panel {
	rowY := top + 48
	fieldY := rowY - config.FieldHeight/2 + config.SliderHeight/2

	multSlider := Rect{X: 20, Y: rowY, W: config.SliderWidth, H: config.SliderHeight}
	multField := Rect{X: multSlider.X + multSlider.W + 14, Y: fieldY, W: config.FieldWidth, H: config.FieldHeight}
	ptsSlider := Rect{X: multField.X + multField.W + 24, Y: rowY, W: config.SliderWidth, H: config.SliderHeight}
	ptsField := Rect{X: ptsSlider.X + ptsSlider.W + 14, Y: fieldY, W: config.FieldWidth, H: config.FieldHeight}
	saveRect := Rect{
		X: config.ScreenWidth - config.SaveButtonWidth - 12,
		Y: rowY - config.SaveButtonHeight/2 + config.SliderHeight/2,
		W: config.SaveButtonWidth,
		H: config.SaveButtonHeight,
	}

	p := &Panel{
		Top:        top,
		Multiplier: NewControl("Multiplier", config.MultiplierMin, config.MultiplierMax, multiplier, multSlider, multField, config.FieldMaxChars, cb.OnMultiplier),
		Points:     NewControl("Number of points", config.PointsMin, config.PointsMax, points, ptsSlider, ptsField, config.FieldMaxChars, cb.OnPoints),
		Save:       NewButton(saveRect, "Save PNG"),
		face:       face,
		onSave:     cb.OnSave,
	}
	return p
}

// Editing reports whether either text field has keyboard focus.
func (p *Panel) Editing() bool {
	return p.Multiplier.Editing() || p.Points.Editing()
}

// SetStatus replaces the status line.
func (p *Panel) SetStatus(msg string, isErr bool) {
	p.status = msg
	p.statusErr = isErr
}

func (p *Panel) Status() string { return p.status }

// SetInfo replaces the right-aligned summary of the current drawing.
func (p *Panel) SetInfo(info string) {
	p.info = info
}

func (p *Panel) Update(in Input) {
	p.Multiplier.Update(in)
	p.Points.Update(in)
	if p.Save.Update(in) && p.onSave != nil {
		p.onSave()
	}
}

func (p *Panel) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, float32(p.Top), config.ScreenWidth, config.PanelHeight, config.PanelColor, false)
	vector.StrokeLine(screen, 0, float32(p.Top), config.ScreenWidth, float32(p.Top), 1, config.TrackColor, false)

	p.Multiplier.Draw(screen, p.face)
	p.Points.Draw(screen, p.face)
	p.Save.Draw(screen, p.face)

	if p.status != "" {
		clr := config.TextColor
		if p.statusErr {
			clr = config.ErrorTextColor
		}
		drawText(screen, p.status, p.face, 20, p.Top+config.PanelHeight-26, clr)
	}
	if p.info != "" {
		w, _ := text.Measure(p.info, p.face, 0)
		drawText(screen, p.info, p.face, config.ScreenWidth-12-w, p.Top+config.PanelHeight-26, config.TextColor)
	}
}
