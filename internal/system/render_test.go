package system

import (
	"strings"
	"testing"
	"time"

	"go-modular-circle/internal/command"
)

// recordSurface logs every call as a short token.
type recordSurface struct {
	calls []string
}

func (s *recordSurface) Clear()        { s.calls = append(s.calls, "clear") }
func (s *recordSurface) StrokeCircle() { s.calls = append(s.calls, "circle") }
func (s *recordSurface) StrokeLine(l command.Line) {
	s.calls = append(s.calls, "line")
}
func (s *recordSurface) Present() { s.calls = append(s.calls, "present") }

func (s *recordSurface) String() string { return strings.Join(s.calls, ",") }

func batch(gen uint64, lines int) []command.Command {
	out := []command.Command{command.NewClear(gen), command.NewCircleOutline(gen)}
	for i := 0; i < lines; i++ {
		out = append(out, command.NewLine(gen, command.Line{Index: i, Total: lines}))
	}
	return append(out, command.NewRefresh(gen))
}

func TestTickAppliesInOrder(t *testing.T) {
	q := command.NewQueue()
	surface := &recordSurface{}
	loop := NewRenderLoop(q, surface, nil, 50*time.Millisecond, nil)

	q.PushAll(batch(1, 2))
	if !loop.Tick(time.Now()) {
		t.Fatal("first Tick() did not drain")
	}
	if got, want := surface.String(), "clear,circle,line,line,present"; got != want {
		t.Errorf("surface calls = %q, want %q", got, want)
	}
	if q.Len() != 0 {
		t.Errorf("queue holds %d commands after tick", q.Len())
	}
}

func TestTickRespectsInterval(t *testing.T) {
	q := command.NewQueue()
	surface := &recordSurface{}
	loop := NewRenderLoop(q, surface, nil, 50*time.Millisecond, nil)

	start := time.Unix(1000, 0)
	loop.Tick(start)

	q.Push(command.NewClear(1))
	if loop.Tick(start.Add(20 * time.Millisecond)) {
		t.Fatal("Tick() drained before the interval elapsed")
	}
	if len(surface.calls) != 0 {
		t.Fatalf("surface touched early: %v", surface.calls)
	}
	if !loop.Tick(start.Add(50 * time.Millisecond)) {
		t.Fatal("Tick() did not drain after the interval")
	}
	if surface.String() != "clear" {
		t.Errorf("surface calls = %q, want clear", surface.String())
	}
}

func TestTickEmptyQueueIsNoop(t *testing.T) {
	surface := &recordSurface{}
	loop := NewRenderLoop(command.NewQueue(), surface, nil, time.Millisecond, nil)
	now := time.Now()
	for i := 0; i < 5; i++ {
		loop.Tick(now.Add(time.Duration(i) * time.Second))
	}
	if len(surface.calls) != 0 {
		t.Errorf("empty queue produced calls: %v", surface.calls)
	}
	if st := loop.Stats(); st.Ticks != 5 || st.Applied != 0 {
		t.Errorf("Stats() = %+v, want 5 ticks and nothing applied", st)
	}
}

func TestStaleGenerationsDropped(t *testing.T) {
	q := command.NewQueue()
	surface := &recordSurface{}
	var gens command.Generations
	loop := NewRenderLoop(q, surface, &gens, 0, nil)

	old := gens.Next()
	cur := gens.Next()

	// An older run finishing after the newer one started.
	q.PushAll(batch(old, 3))
	q.PushAll(batch(cur, 1))
	loop.Flush()

	if got, want := surface.String(), "clear,circle,line,present"; got != want {
		t.Errorf("surface calls = %q, want %q", got, want)
	}
	st := loop.Stats()
	if st.Dropped != 6 || st.Applied != 4 {
		t.Errorf("Stats() = %+v, want 6 dropped and 4 applied", st)
	}
}

func TestPartialBatchThenNewerGeneration(t *testing.T) {
	q := command.NewQueue()
	surface := &recordSurface{}
	var gens command.Generations
	loop := NewRenderLoop(q, surface, &gens, 0, nil)

	first := gens.Next()
	full := batch(first, 4)
	q.PushAll(full[:3])
	loop.Flush()

	second := gens.Next()
	q.PushAll(full[3:])
	q.PushAll(batch(second, 2))
	loop.Flush()

	want := "clear,circle,line," + "clear,circle,line,line,present"
	if got := surface.String(); got != want {
		t.Errorf("surface calls = %q, want %q", got, want)
	}
}
