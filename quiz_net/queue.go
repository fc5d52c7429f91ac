package quiz_net

import "sync"

// MsgQueue is the hand-off between the receiver goroutine and the game loop.
// It is unbounded: Push never blocks on capacity.
type MsgQueue struct {
	mu    sync.Mutex
	items []string
}

func NewMsgQueue() *MsgQueue {
	return &MsgQueue{items: make([]string, 0, 16)}
}

func (q *MsgQueue) Push(chunk string) {
	q.mu.Lock()
	q.items = append(q.items, chunk)
	q.mu.Unlock()
}

// Drain removes and returns every queued chunk in arrival order.
func (q *MsgQueue) Drain() []string {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return nil
	}

	drained := q.items
	q.items = make([]string, 0, cap(drained))
	return drained
}

func (q *MsgQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
