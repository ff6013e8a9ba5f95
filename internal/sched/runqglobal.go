package sched

// globalRunQueue is an intrusive singly-linked FIFO of G's chained through
// G.schedlink, shared by every P. size is kept alongside head/tail so
// Len() is O(1) (spec.md I-Q1).
type globalRunQueue struct {
	head *G
	tail *G
	size int
}

func (q *globalRunQueue) Len() int    { return q.size }
func (q *globalRunQueue) Empty() bool { return q.size == 0 }

// PushOne appends a single G. Its schedlink is cleared before being
// chained so the last node's link is always nil (spec.md I-Q2).
func (q *globalRunQueue) PushOne(g *G) {
	g.clearLink()
	if q.tail == nil {
		q.head, q.tail = g, g
	} else {
		q.tail.setLink(g)
		q.tail = g
	}
	q.size++
}

// PushBatch appends a slice of G's in order, as if each were pushed with
// PushOne.
func (q *globalRunQueue) PushBatch(gs []*G) {
	for _, g := range gs {
		q.PushOne(g)
	}
}

// PopOne removes and returns the head G.
func (q *globalRunQueue) PopOne() (*G, bool) {
	if q.head == nil {
		return nil, false
	}
	g := q.head
	q.head = g.link()
	if q.head == nil {
		q.tail = nil
	}
	g.clearLink()
	q.size--
	return g, true
}

// BatchCut is the result of cutting k elements from the head of the
// global queue: the first element to run immediately, plus a detached
// chain of the next k-1.
type BatchCut struct {
	ImmediateG *G
	ChainHead  *G
	ChainLen   int
}

// PopBatch cuts k elements from the head of the queue (k must be >= 1 and
// <= q.Len()). When k equals the current size this is the O(1) take-all
// fast path. The returned chain is fully detached from the queue (its
// tail's link is nil) and is no longer reachable from q.
func (q *globalRunQueue) PopBatch(k int) BatchCut {
	assert(k >= 1 && k <= q.size, "global queue batch size out of range")

	immediate, _ := q.PopOne()
	chainLen := k - 1
	if chainLen == 0 {
		return BatchCut{ImmediateG: immediate}
	}

	if chainLen == q.size {
		// Take-all fast path: everything remaining becomes the chain.
		chainHead := q.head
		q.head, q.tail, q.size = nil, nil, 0
		return BatchCut{ImmediateG: immediate, ChainHead: chainHead, ChainLen: chainLen}
	}

	chainHead := q.head
	node := chainHead
	for i := 1; i < chainLen; i++ {
		node = node.link()
	}
	newHead := node.link()
	node.clearLink()
	q.head = newHead
	if q.head == nil {
		q.tail = nil
	}
	q.size -= chainLen
	return BatchCut{ImmediateG: immediate, ChainHead: chainHead, ChainLen: chainLen}
}
