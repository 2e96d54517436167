// internal/app/visualizer.go
package app

import (
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"go-modular-circle/internal/config"
	"go-modular-circle/internal/defs"
	"go-modular-circle/internal/event"
	"go-modular-circle/internal/export"
	"go-modular-circle/internal/geometry"
	"go-modular-circle/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Options configures a Visualizer.
type Options struct {
	Points     int
	Multiplier int
	Rainbow    bool
	Presets    []defs.Preset
	Logger     *slog.Logger
}

// Visualizer is the Ebiten game. Update runs on the goroutine that owns the
// display: it handles input and ticks the render loop. Geometry is computed
// by worker goroutines that only talk to it through the command queue.
type Visualizer struct {
	logger *slog.Logger
	pipe   *pipeline
	canvas *ui.Canvas

	dispatcher *event.Dispatcher
	panel      *ui.Panel
	presets    []defs.Preset
	inputBuf   []rune

	// notices carries results of background saves back to Update.
	notices chan notice
	saving  atomic.Bool
}

type notice struct {
	msg   string
	isErr bool
}

func New(opts Options) (*Visualizer, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	face, err := ui.NewFace(config.PanelFontSize)
	if err != nil {
		return nil, err
	}

	v := &Visualizer{
		logger:     logger,
		dispatcher: event.NewDispatcher(),
		presets:    opts.Presets,
		notices:    make(chan notice, 4),
	}
	v.canvas = ui.NewCanvas(config.CanvasSize, config.CenterX, config.CenterY, config.CircleRadius,
		export.DefaultPalette(opts.Rainbow), config.LineWidth, config.CircleLineWidth)
	v.pipe = newPipeline(geometry.NewParams(opts.Points, opts.Multiplier), v.canvas,
		geometry.Point{X: config.CenterX, Y: config.CenterY}, config.CircleRadius, config.RenderInterval, logger)

	params := v.pipe.params
	v.panel = ui.NewPanel(config.CanvasSize, face, params.Multiplier(), params.Points(), ui.PanelCallbacks{
		OnMultiplier: v.notifyParameter(event.Multiplier),
		OnPoints:     v.notifyParameter(event.Points),
		OnSave: func() {
			v.dispatcher.Dispatch(event.Event{Type: event.ExportRequested})
		},
	})

	v.pipe.onRedraw = func(s geometry.Snapshot) {
		v.panel.SetInfo(fmt.Sprintf("%d chords, %d self-loops", s.Points, geometry.FixedPoints(s.Points, s.Multiplier)))
	}

	v.dispatcher.Subscribe(event.ParameterChanged, v.pipe)
	v.dispatcher.Subscribe(event.RedrawRequested, v.pipe)
	v.dispatcher.Subscribe(event.ExportRequested, event.ListenerFunc(func(event.Event) {
		v.startSave()
	}))

	v.pipe.redraw()
	return v, nil
}

func (v *Visualizer) notifyParameter(p event.Parameter) func(int) {
	return func(value int) {
		v.dispatcher.Dispatch(event.Event{
			Type: event.ParameterChanged,
			Data: event.ParameterChange{Parameter: p, Value: value},
		})
	}
}

// ApplyPreset sets both parameters and triggers a single redraw.
func (v *Visualizer) ApplyPreset(i int) bool {
	if i < 0 || i >= len(v.presets) {
		return false
	}
	p := v.presets[i]
	params := v.pipe.params
	params.SetPoints(p.Points)
	params.SetMultiplier(p.Multiplier)
	v.panel.Points.Sync(params.Points())
	v.panel.Multiplier.Sync(params.Multiplier())
	v.panel.SetStatus(fmt.Sprintf("Preset %d: %s", i+1, p.Name), false)
	v.pipe.redraw()
	return true
}

func (v *Visualizer) toggleRainbow() {
	p := v.canvas.Palette()
	p.Rainbow = !p.Rainbow
	v.canvas.SetPalette(p)
	v.pipe.redraw()
}

var presetKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3,
	ebiten.Key4, ebiten.Key5, ebiten.Key6,
	ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

func (v *Visualizer) Update() error {
	wasEditing := v.panel.Editing()
	in := ui.PollInput(v.inputBuf)
	v.inputBuf = in.Chars
	v.panel.Update(in)

	if !wasEditing && !v.panel.Editing() {
		if err := v.handleShortcuts(); err != nil {
			return err
		}
	}

	v.drainNotices()
	v.pipe.loop.Tick(time.Now())
	return nil
}

func (v *Visualizer) handleShortcuts() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		v.dispatcher.Dispatch(event.Event{Type: event.RedrawRequested})
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		v.dispatcher.Dispatch(event.Event{Type: event.ExportRequested})
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		v.toggleRainbow()
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		v.panel.Multiplier.SetValue(v.panel.Multiplier.Value() + 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		v.panel.Multiplier.SetValue(v.panel.Multiplier.Value() - 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		v.panel.Points.SetValue(v.panel.Points.Value() + 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		v.panel.Points.SetValue(v.panel.Points.Value() - 1)
	}
	for i, k := range presetKeys {
		if inpututil.IsKeyJustPressed(k) {
			v.ApplyPreset(i)
			break
		}
	}
	return nil
}

func (v *Visualizer) drainNotices() {
	for {
		select {
		case n := <-v.notices:
			v.panel.SetStatus(n.msg, n.isErr)
		default:
			return
		}
	}
}

func (v *Visualizer) Draw(screen *ebiten.Image) {
	screen.Fill(config.PanelColor)
	v.canvas.Draw(screen, 0, 0)
	v.panel.Draw(screen)
}

func (v *Visualizer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// Close stops in-flight workers and waits for them.
func (v *Visualizer) Close() {
	v.pipe.close()
	stats := v.pipe.loop.Stats()
	v.logger.Info("visualizer closed",
		"generations", v.pipe.gens.Latest(),
		"applied", stats.Applied,
		"dropped", stats.Dropped)
}
