// internal/export/export.go
package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"go-modular-circle/internal/command"
	"go-modular-circle/internal/config"
	"go-modular-circle/internal/geometry"
	"go-modular-circle/internal/system"
	"go-modular-circle/pkg/raster"
	"go-modular-circle/pkg/render"

	"github.com/google/uuid"
)

// Options controls the exported image.
type Options struct {
	// Size is the edge length in pixels; the drawing is scaled from the
	// on-screen canvas size.
	Size    int
	Palette render.Palette
	// Caption adds the parameters in the bottom-left corner.
	Caption bool
	Logger  *slog.Logger
}

// DefaultOptions exports at screen size with the default palette.
func DefaultOptions() Options {
	return Options{
		Size:    config.CanvasSize,
		Palette: DefaultPalette(false),
		Caption: true,
	}
}

// DefaultPalette builds the palette from the configured colours.
func DefaultPalette(rainbow bool) render.Palette {
	return render.Palette{
		Background: config.BackgroundColor,
		Circle:     config.CircleColor,
		Chord:      config.ChordColor,
		Rainbow:    rainbow,
		Saturation: config.RainbowSaturation,
		Value:      config.RainbowValue,
	}
}

// Render runs one worker pass and one render loop flush synchronously into a
// fresh raster surface.
func Render(ctx context.Context, snap geometry.Snapshot, opts Options) (*raster.Surface, error) {
	if opts.Size <= 0 {
		opts.Size = config.CanvasSize
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	scale := float64(opts.Size) / config.CanvasSize

	ropts := raster.Options{
		Size:        opts.Size,
		CenterX:     config.CenterX * scale,
		CenterY:     config.CenterY * scale,
		Radius:      config.CircleRadius * scale,
		LineWidth:   config.LineWidth * scale,
		CircleWidth: config.CircleLineWidth * scale,
		Segments:    config.CircleSegments,
		Palette:     opts.Palette,
	}
	if opts.Caption {
		ropts.FontSize = config.CaptionFontSize * scale
	}
	surface, err := raster.NewSurface(ropts)
	if err != nil {
		return nil, fmt.Errorf("create surface: %w", err)
	}

	queue := command.NewQueue()
	worker := geometry.NewWorker(queue,
		geometry.Point{X: ropts.CenterX, Y: ropts.CenterY}, ropts.Radius, logger)
	job := geometry.Job{ID: uuid.New(), Generation: 1, Snapshot: snap}
	if err := worker.Run(ctx, job); err != nil {
		return nil, fmt.Errorf("compute chords: %w", err)
	}
	system.NewRenderLoop(queue, surface, nil, 0, logger).Flush()

	if opts.Caption {
		label := fmt.Sprintf("points=%d  multiplier=%d", snap.Points, snap.Multiplier)
		margin := int(10 * scale)
		surface.Caption(label, margin, opts.Size-margin, config.TextColor)
	}
	return surface, nil
}

// WritePNG renders snap and writes the PNG to path.
func WritePNG(ctx context.Context, path string, snap geometry.Snapshot, opts Options) (err error) {
	surface, err := Render(ctx, snap, opts)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	if err := surface.EncodePNG(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
