package app

import (
	"testing"
	"time"

	"go-modular-circle/internal/command"
	"go-modular-circle/internal/event"
	"go-modular-circle/internal/geometry"
)

type countSurface struct {
	clears, circles, presents int
	lines                     []command.Line
}

func (s *countSurface) Clear()                    { s.clears++ }
func (s *countSurface) StrokeCircle()             { s.circles++ }
func (s *countSurface) StrokeLine(l command.Line) { s.lines = append(s.lines, l) }
func (s *countSurface) Present()                  { s.presents++ }

func newTestPipeline(surface *countSurface, points, multiplier int) (*pipeline, *event.Dispatcher) {
	p := newPipeline(geometry.NewParams(points, multiplier), surface,
		geometry.Point{X: 100, Y: 100}, 80, 50*time.Millisecond, nil)
	d := event.NewDispatcher()
	d.Subscribe(event.ParameterChanged, p)
	d.Subscribe(event.RedrawRequested, p)
	return p, d
}

func change(param event.Parameter, value int) event.Event {
	return event.Event{
		Type: event.ParameterChanged,
		Data: event.ParameterChange{Parameter: param, Value: value},
	}
}

func TestPipelineLatestParameterChangeWins(t *testing.T) {
	surface := &countSurface{}
	p, d := newTestPipeline(surface, 10, 2)
	defer p.close()

	p.redraw()
	d.Dispatch(change(event.Multiplier, 3))
	d.Dispatch(change(event.Points, 12))
	d.Dispatch(change(event.Multiplier, 5))
	p.worker.Wait()
	p.loop.Flush()

	if got := p.gens.Latest(); got != 4 {
		t.Fatalf("Latest() = %d, want 4 generations", got)
	}
	if surface.clears != 1 || surface.circles != 1 || surface.presents != 1 {
		t.Errorf("clears/circles/presents = %d/%d/%d, want one batch", surface.clears, surface.circles, surface.presents)
	}
	if len(surface.lines) != 12 {
		t.Fatalf("drew %d lines, want 12", len(surface.lines))
	}
	for i, l := range surface.lines {
		if l.Index != i || l.Total != 12 {
			t.Errorf("line %d index/total = %d/%d, want %d/12", i, l.Index, l.Total, i)
		}
	}

	stats := p.loop.Stats()
	if stats.Applied != 12+3 {
		t.Errorf("Applied = %d, want 15", stats.Applied)
	}
	// three stale runs of at least 10 points each
	if stats.Dropped < 3*(10+3) {
		t.Errorf("Dropped = %d, want at least 39", stats.Dropped)
	}
}

func TestPipelineClampsParameters(t *testing.T) {
	p, d := newTestPipeline(&countSurface{}, 10, 2)
	defer p.close()

	d.Dispatch(change(event.Points, 5000))
	d.Dispatch(change(event.Multiplier, -4))
	if got := p.params.Snapshot(); got.Points != 1000 || got.Multiplier != 1 {
		t.Errorf("params = %+v, want points 1000 multiplier 1", got)
	}
}

func TestPipelineRedrawRequested(t *testing.T) {
	surface := &countSurface{}
	p, d := newTestPipeline(surface, 6, 2)
	defer p.close()

	var seen []geometry.Snapshot
	p.onRedraw = func(s geometry.Snapshot) { seen = append(seen, s) }

	d.Dispatch(event.Event{Type: event.RedrawRequested})
	d.Dispatch(event.Event{Type: event.ParameterChanged, Data: "not a change"})
	p.worker.Wait()

	if !p.loop.Tick(time.Now()) {
		t.Fatal("first Tick() did not drain")
	}
	if len(seen) != 1 || seen[0] != (geometry.Snapshot{Points: 6, Multiplier: 2}) {
		t.Errorf("onRedraw saw %v, want one 6x2 snapshot", seen)
	}
	if surface.presents != 1 || len(surface.lines) != 6 {
		t.Errorf("presents=%d lines=%d, want 1 and 6", surface.presents, len(surface.lines))
	}
}

func TestPipelineCloseStopsWorkers(t *testing.T) {
	p, _ := newTestPipeline(&countSurface{}, 1000, 7)
	for i := 0; i < 5; i++ {
		p.redraw()
	}
	p.close()
	if p.ctx.Err() == nil {
		t.Error("context not cancelled after close")
	}
}
