// internal/system/render.go
package system

import (
	"log/slog"
	"time"

	"go-modular-circle/internal/command"
)

// Surface is the drawing target the render loop applies commands to.
type Surface interface {
	Clear()
	StrokeCircle()
	StrokeLine(l command.Line)
	Present()
}

// Drainer is the consumer side of the command queue.
type Drainer interface {
	DrainAll() []command.Command
}

// GenerationSource reports the newest redraw generation requested.
type GenerationSource interface {
	Latest() uint64
}

// RenderStats counts what the loop did with drained commands.
type RenderStats struct {
	Ticks   uint64
	Applied uint64
	Dropped uint64
}

// RenderLoop drains the command queue on a fixed period and applies the
// commands to a surface. It must only be ticked from the goroutine that owns
// the surface.
type RenderLoop struct {
	queue    Drainer
	surface  Surface
	gens     GenerationSource
	interval time.Duration
	last     time.Time
	stats    RenderStats
	logger   *slog.Logger
}

// NewRenderLoop wires a loop. gens may be nil, in which case no command is
// treated as stale.
func NewRenderLoop(queue Drainer, surface Surface, gens GenerationSource, interval time.Duration, logger *slog.Logger) *RenderLoop {
	if logger == nil {
		logger = slog.Default()
	}
	return &RenderLoop{
		queue:    queue,
		surface:  surface,
		gens:     gens,
		interval: interval,
		logger:   logger,
	}
}

// Tick drains and applies queued commands if at least one interval has
// passed since the previous drain. It reports whether a drain happened.
func (r *RenderLoop) Tick(now time.Time) bool {
	if !r.last.IsZero() && now.Sub(r.last) < r.interval {
		return false
	}
	r.last = now
	r.Flush()
	return true
}

// Flush drains and applies everything queued right now, ignoring the period.
func (r *RenderLoop) Flush() {
	r.stats.Ticks++
	cmds := r.queue.DrainAll()
	if len(cmds) == 0 {
		return
	}

	var latest uint64
	if r.gens != nil {
		latest = r.gens.Latest()
	}
	dropped := 0
	for _, cmd := range cmds {
		if cmd.Generation < latest {
			dropped++
			continue
		}
		r.apply(cmd)
	}
	r.stats.Applied += uint64(len(cmds) - dropped)
	r.stats.Dropped += uint64(dropped)
	if dropped > 0 {
		r.logger.Debug("dropped stale commands", "count", dropped, "latest", latest)
	}
}

func (r *RenderLoop) apply(cmd command.Command) {
	switch cmd.Kind {
	case command.Clear:
		r.surface.Clear()
	case command.CreateCircleOutline:
		r.surface.StrokeCircle()
	case command.CreateLine:
		r.surface.StrokeLine(cmd.Line)
	case command.Refresh:
		r.surface.Present()
	default:
		r.logger.Warn("unknown command", "kind", cmd.Kind)
	}
}

func (r *RenderLoop) Stats() RenderStats {
	return r.stats
}
