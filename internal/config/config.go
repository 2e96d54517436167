// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	CanvasSize   = 700
	PanelHeight  = 110
	ScreenWidth  = CanvasSize
	ScreenHeight = CanvasSize + PanelHeight
	Padding      = 25.0
	CircleRadius = CanvasSize/2 - Padding
	CenterX      = CanvasSize / 2
	CenterY      = CanvasSize / 2

	MultiplierMin     = 1
	MultiplierMax     = 200
	MultiplierDefault = 2
	PointsMin         = 1
	PointsMax         = 1000
	PointsDefault     = 100

	// Period of the render loop drain.
	RenderInterval = 50 * time.Millisecond

	LineWidth       = 1.0
	CircleLineWidth = 1.5
	CircleSegments  = 360

	SliderWidth     = 200
	SliderHeight    = 8
	SliderKnobSize  = 9.0
	FieldWidth      = 56
	FieldHeight     = 24
	FieldMaxChars   = 4
	PanelFontSize   = 13
	CaptionFontSize = 14

	SaveButtonWidth  = 90
	SaveButtonHeight = 28

	ExportFileName = "modular-circle.png"
)

var (
	BackgroundColor  = color.RGBA{250, 250, 247, 255}
	PanelColor       = color.RGBA{232, 232, 228, 255}
	CircleColor      = color.RGBA{40, 40, 48, 255}
	ChordColor       = color.RGBA{30, 60, 120, 200}
	TextColor        = color.RGBA{20, 20, 30, 255}
	TrackColor       = color.RGBA{180, 180, 176, 255}
	KnobColor        = color.RGBA{70, 130, 180, 255}
	FieldColor       = color.RGBA{255, 255, 255, 255}
	FieldFocusStroke = color.RGBA{70, 130, 180, 255}
	FieldStroke      = color.RGBA{150, 150, 150, 255}
	ButtonColor      = color.RGBA{100, 120, 160, 255}
	ButtonHoverColor = color.RGBA{80, 100, 140, 255}
	ErrorTextColor   = color.RGBA{190, 40, 40, 255}

	// Saturation/value for rainbow chords, hue follows the chord index.
	RainbowSaturation = 0.75
	RainbowValue      = 0.85
)
