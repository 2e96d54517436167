// internal/app/pipeline.go
package app

import (
	"context"
	"log/slog"
	"time"

	"go-modular-circle/internal/command"
	"go-modular-circle/internal/event"
	"go-modular-circle/internal/geometry"
	"go-modular-circle/internal/system"

	"github.com/google/uuid"
)

// pipeline owns the redraw path: parameters, generation counter, command
// queue, worker and render loop. It listens for ParameterChanged and
// RedrawRequested and never touches Ebiten itself.
type pipeline struct {
	ctx    context.Context
	cancel context.CancelFunc
	logger *slog.Logger

	params *geometry.Params
	gens   *command.Generations
	queue  *command.Queue
	worker *geometry.Worker
	loop   *system.RenderLoop

	// onRedraw is called on the UI goroutine after each redraw request.
	onRedraw func(geometry.Snapshot)
}

func newPipeline(params *geometry.Params, surface system.Surface, center geometry.Point, radius float64, interval time.Duration, logger *slog.Logger) *pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	p := &pipeline{
		ctx:    ctx,
		cancel: cancel,
		logger: logger,
		params: params,
		gens:   &command.Generations{},
		queue:  command.NewQueue(),
	}
	p.worker = geometry.NewWorker(p.queue, center, radius, logger)
	p.loop = system.NewRenderLoop(p.queue, surface, p.gens, interval, logger)
	return p
}

func (p *pipeline) OnEvent(e event.Event) {
	switch e.Type {
	case event.ParameterChanged:
		change, ok := e.Data.(event.ParameterChange)
		if !ok {
			return
		}
		switch change.Parameter {
		case event.Multiplier:
			p.params.SetMultiplier(change.Value)
		case event.Points:
			p.params.SetPoints(change.Value)
		}
		p.redraw()
	case event.RedrawRequested:
		p.redraw()
	}
}

// redraw starts a new generation and a worker for it. Older workers keep
// running; the render loop drops what they still produce.
func (p *pipeline) redraw() uuid.UUID {
	gen := p.gens.Next()
	id := p.worker.Spawn(p.ctx, gen, p.params)
	p.logger.Debug("redraw requested", "job", id, "generation", gen)
	if p.onRedraw != nil {
		p.onRedraw(p.params.Snapshot())
	}
	return id
}

// close cancels in-flight workers and waits for them to return.
func (p *pipeline) close() {
	p.cancel()
	p.worker.Wait()
}
