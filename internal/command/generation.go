// internal/command/generation.go
package command

import "sync/atomic"

// Generations hands out increasing redraw generations. The render loop
// compares a command's generation with Latest to drop results of requests
// that were superseded while still in flight.
type Generations struct {
	n atomic.Uint64
}

// Next starts a new generation and returns it.
func (g *Generations) Next() uint64 {
	return g.n.Add(1)
}

// Latest returns the most recently started generation, 0 if none.
func (g *Generations) Latest() uint64 {
	return g.n.Load()
}
