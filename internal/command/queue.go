// internal/command/queue.go
package command

import "sync"

// Queue is a FIFO of draw commands shared by the geometry worker and the
// render loop. Callers never lock it themselves.
type Queue struct {
	mu    sync.Mutex
	items []Command
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push appends cmd to the tail.
func (q *Queue) Push(cmd Command) {
	q.mu.Lock()
	q.items = append(q.items, cmd)
	q.mu.Unlock()
}

// PushAll appends a batch, keeping its order.
func (q *Queue) PushAll(cmds []Command) {
	q.mu.Lock()
	q.items = append(q.items, cmds...)
	q.mu.Unlock()
}

// DrainAll removes and returns every queued command in FIFO order.
// It returns nil when the queue is empty and never waits for new items.
func (q *Queue) DrainAll() []Command {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len reports how many commands are waiting.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
