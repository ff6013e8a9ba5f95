package sched

// localRunQueueCap is the fixed local run queue capacity, 256 by contract
// (spec.md section 4.3).
const localRunQueueCap = 256

// localRunQueue is a fixed-capacity circular buffer of G references owned
// by exactly one P. Single-element operations are O(1); the batch
// operations and Clear loop over their elements.
type localRunQueue struct {
	buf  [localRunQueueCap]*G
	head int
	size int
}

func (q *localRunQueue) Len() int      { return q.size }
func (q *localRunQueue) Cap() int      { return localRunQueueCap }
func (q *localRunQueue) Avail() int    { return localRunQueueCap - q.size }
func (q *localRunQueue) HasCapacity() bool { return q.size < localRunQueueCap }
func (q *localRunQueue) Empty() bool   { return q.size == 0 }
func (q *localRunQueue) Full() bool    { return q.size == localRunQueueCap }

func (q *localRunQueue) Clear() {
	for i := range q.buf {
		q.buf[i] = nil
	}
	q.head = 0
	q.size = 0
}

// PushBack enqueues g at the tail. Reports false if the queue is full.
func (q *localRunQueue) PushBack(g *G) bool {
	if q.Full() {
		return false
	}
	tail := (q.head + q.size) % localRunQueueCap
	q.buf[tail] = g
	q.size++
	return true
}

// PopFront dequeues the front element. Reports false if the queue is
// empty.
func (q *localRunQueue) PopFront() (*G, bool) {
	if q.Empty() {
		return nil, false
	}
	g := q.buf[q.head]
	q.buf[q.head] = nil
	q.head = (q.head + 1) % localRunQueueCap
	q.size--
	return g, true
}

// PopBatchFront removes up to n elements from the front, in FIFO order,
// and returns them as a plain slice (used by the work stealer, which
// moves elements between two local queues rather than through the
// intrusive global-queue chain).
func (q *localRunQueue) PopBatchFront(n int) []*G {
	if n <= 0 {
		return nil
	}
	if n > q.size {
		n = q.size
	}
	out := make([]*G, 0, n)
	for i := 0; i < n; i++ {
		g, _ := q.PopFront()
		out = append(out, g)
	}
	return out
}

// PushBatchChain enqueues a detached intrusive chain of G's, starting at
// head, in chain order, clearing each link as it is enqueued. On capacity
// exhaustion mid-batch it returns ErrLocalQueueFull and leaves the G's
// already enqueued in the queue (spec.md section 4.3).
func (q *localRunQueue) PushBatchChain(head *G) error {
	for g := head; g != nil; {
		next := g.link()
		g.clearLink()
		if !q.PushBack(g) {
			return ErrLocalQueueFull
		}
		g = next
	}
	return nil
}
