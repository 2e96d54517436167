package geometry

import (
	"context"
	"errors"
	"math"
	"testing"

	"go-modular-circle/internal/command"

	"github.com/google/uuid"
)

type recordSink struct {
	cmds []command.Command
}

func (s *recordSink) Push(c command.Command) { s.cmds = append(s.cmds, c) }

var testCenter = Point{X: 350, Y: 350}

const testRadius = 325.0

func runJob(t *testing.T, n, m int, gen uint64) []command.Command {
	t.Helper()
	sink := &recordSink{}
	w := NewWorker(sink, testCenter, testRadius, nil)
	job := Job{ID: uuid.New(), Generation: gen, Snapshot: Snapshot{Points: n, Multiplier: m}}
	if err := w.Run(context.Background(), job); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return sink.cmds
}

func checkBrackets(t *testing.T, cmds []command.Command, n int) {
	t.Helper()
	if len(cmds) != n+3 {
		t.Fatalf("got %d commands, want %d", len(cmds), n+3)
	}
	if cmds[0].Kind != command.Clear {
		t.Errorf("first command = %s, want Clear", cmds[0].Kind)
	}
	if cmds[1].Kind != command.CreateCircleOutline {
		t.Errorf("second command = %s, want CreateCircleOutline", cmds[1].Kind)
	}
	for i, c := range cmds[2 : n+2] {
		if c.Kind != command.CreateLine {
			t.Errorf("command %d = %s, want CreateLine", i+2, c.Kind)
		}
	}
	if last := cmds[len(cmds)-1]; last.Kind != command.Refresh {
		t.Errorf("last command = %s, want Refresh", last.Kind)
	}
}

func TestRunEmitsBracketedLines(t *testing.T) {
	for _, n := range []int{1, 2, 3, 10, 100, 1000} {
		cmds := runJob(t, n, 2, 1)
		checkBrackets(t, cmds, n)
	}
}

func TestRunSixByTwo(t *testing.T) {
	cmds := runJob(t, 6, 2, 7)
	checkBrackets(t, cmds, 6)

	pts := Points(6, testCenter, testRadius)
	wantTargets := []int{0, 2, 4, 0, 2, 4}
	for i, c := range cmds[2:8] {
		from, to := pts[i], pts[wantTargets[i]]
		l := c.Line
		if l.X1 != from.X || l.Y1 != from.Y || l.X2 != to.X || l.Y2 != to.Y {
			t.Errorf("line %d = (%f,%f)->(%f,%f), want point %d -> point %d", i, l.X1, l.Y1, l.X2, l.Y2, i, wantTargets[i])
		}
		if l.Index != i || l.Total != 6 {
			t.Errorf("line %d index/total = %d/%d", i, l.Index, l.Total)
		}
	}
	for i, c := range cmds {
		if c.Generation != 7 {
			t.Errorf("command %d generation = %d, want 7", i, c.Generation)
		}
	}
}

func TestRunSinglePoint(t *testing.T) {
	cmds := runJob(t, 1, 37, 1)
	checkBrackets(t, cmds, 1)
	l := cmds[2].Line
	if l.X1 != l.X2 || l.Y1 != l.Y2 {
		t.Errorf("single chord %+v is not zero length", l)
	}
}

func TestRunMultiplierMultipleOfPoints(t *testing.T) {
	top := Points(8, testCenter, testRadius)[0]
	for _, m := range []int{8, 16} {
		cmds := runJob(t, 8, m, 1)
		checkBrackets(t, cmds, 8)
		for i, c := range cmds[2:10] {
			if c.Line.X2 != top.X || c.Line.Y2 != top.Y {
				t.Errorf("m=%d line %d ends at (%f,%f), want point 0", m, i, c.Line.X2, c.Line.Y2)
			}
		}
	}
}

func TestRunSelfLoopsStillEmitted(t *testing.T) {
	for _, m := range []int{1, 9, 17} {
		cmds := runJob(t, 8, m, 1)
		checkBrackets(t, cmds, 8)
		for i, c := range cmds[2:10] {
			if math.Hypot(c.Line.X2-c.Line.X1, c.Line.Y2-c.Line.Y1) != 0 {
				t.Errorf("m=%d line %d is not a self-loop: %+v", m, i, c.Line)
			}
		}
	}
}

func TestRunUnclampedSnapshot(t *testing.T) {
	cmds := runJob(t, 7, -3, 1)
	checkBrackets(t, cmds, 7)
	pts := Points(7, testCenter, testRadius)
	// -3 = 4 (mod 7), so point 1 connects to point 4
	if l := cmds[3].Line; l.X2 != pts[4].X || l.Y2 != pts[4].Y {
		t.Errorf("line 1 ends at (%f,%f), want point 4", l.X2, l.Y2)
	}
}

func TestRunDeterministic(t *testing.T) {
	a := runJob(t, 997, 113, 1)
	b := runJob(t, 997, 113, 1)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("command %d differs between runs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sink := &recordSink{}
	w := NewWorker(sink, testCenter, testRadius, nil)
	err := w.Run(ctx, Job{Generation: 1, Snapshot: Snapshot{Points: 10, Multiplier: 2}})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v, want context.Canceled", err)
	}
	for _, c := range sink.cmds {
		if c.Kind == command.Refresh {
			t.Errorf("cancelled run emitted Refresh")
		}
	}
}

func TestSpawnReadsParamsAndKeepsOrder(t *testing.T) {
	q := command.NewQueue()
	w := NewWorker(q, testCenter, testRadius, nil)
	params := NewParams(50, 3)

	id1 := w.Spawn(context.Background(), 1, params)
	id2 := w.Spawn(context.Background(), 2, params)
	w.Wait()

	if id1 == uuid.Nil || id2 == uuid.Nil || id1 == id2 {
		t.Errorf("Spawn() job IDs = %s, %s, want two distinct IDs", id1, id2)
	}

	cmds := q.DrainAll()
	if len(cmds) != 2*(50+3) {
		t.Fatalf("got %d commands from two runs, want %d", len(cmds), 2*(50+3))
	}

	// Runs may interleave; each generation on its own must stay ordered.
	byGen := map[uint64][]command.Command{}
	for _, c := range cmds {
		byGen[c.Generation] = append(byGen[c.Generation], c)
	}
	for gen, seq := range byGen {
		checkBrackets(t, seq, 50)
		for i, c := range seq[2:52] {
			if c.Line.Index != i {
				t.Errorf("generation %d: line %d has index %d", gen, i, c.Line.Index)
			}
		}
	}
}
