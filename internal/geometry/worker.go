// internal/geometry/worker.go
package geometry

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go-modular-circle/internal/command"

	"github.com/google/uuid"
)

// Sink receives the commands emitted by a worker run.
type Sink interface {
	Push(cmd command.Command)
}

// Job describes one redraw request.
type Job struct {
	ID         uuid.UUID
	Generation uint64
	Snapshot
}

// Worker turns parameter snapshots into draw commands. Every Spawn runs on
// its own goroutine; runs are neither pooled nor serialized, so commands of
// two overlapping runs may interleave in the sink. Each run keeps its own
// order.
type Worker struct {
	sink   Sink
	center Point
	radius float64
	logger *slog.Logger
	wg     sync.WaitGroup
}

func NewWorker(sink Sink, center Point, radius float64, logger *slog.Logger) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Worker{
		sink:   sink,
		center: center,
		radius: radius,
		logger: logger,
	}
}

// Spawn starts a run for generation gen and returns the job ID its log lines
// carry. The parameters are read when the goroutine starts, not when Spawn
// is called.
func (w *Worker) Spawn(ctx context.Context, gen uint64, params *Params) uuid.UUID {
	id := uuid.New()
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		job := Job{ID: id, Generation: gen, Snapshot: params.Snapshot()}
		if err := w.Run(ctx, job); err != nil {
			w.logger.Debug("redraw job stopped", "job", job.ID, "generation", gen, "err", err)
		}
	}()
	return id
}

// Wait blocks until every spawned run has returned.
func (w *Worker) Wait() {
	w.wg.Wait()
}

// Run emits Clear, CreateCircleOutline, one CreateLine per chord and Refresh
// for the job, in that order. It only returns early when ctx is cancelled.
func (w *Worker) Run(ctx context.Context, job Job) error {
	start := time.Now()
	n := job.Points
	if n < 1 {
		n = 1
	}
	gen := job.Generation

	w.sink.Push(command.NewClear(gen))
	w.sink.Push(command.NewCircleOutline(gen))

	pts := Points(n, w.center, w.radius)
	for _, c := range Chords(n, job.Multiplier) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		a, b := pts[c.From], pts[c.To]
		w.sink.Push(command.NewLine(gen, command.Line{
			X1: a.X, Y1: a.Y,
			X2: b.X, Y2: b.Y,
			Index: c.From,
			Total: n,
		}))
	}

	w.sink.Push(command.NewRefresh(gen))

	w.logger.Debug("redraw job done",
		"job", job.ID,
		"generation", gen,
		"points", n,
		"multiplier", job.Multiplier,
		"elapsed", time.Since(start))
	return nil
}
