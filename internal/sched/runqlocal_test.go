package sched

import "testing"

func TestLocalRunQueuePushPop(t *testing.T) {
	var q localRunQueue
	if !q.Empty() {
		t.Fatalf("new queue should be empty")
	}

	g1 := newG(1, func() {})
	g2 := newG(2, func() {})

	if !q.PushBack(g1) || !q.PushBack(g2) {
		t.Fatalf("push should succeed while under capacity")
	}
	if q.Len() != 2 {
		t.Fatalf("len = %d, want 2", q.Len())
	}

	got, ok := q.PopFront()
	if !ok || got.ID != 1 {
		t.Fatalf("pop front = %v, %v; want g1", got, ok)
	}
	got, ok = q.PopFront()
	if !ok || got.ID != 2 {
		t.Fatalf("pop front = %v, %v; want g2", got, ok)
	}
	if !q.Empty() {
		t.Fatalf("queue should be empty after draining")
	}
	if _, ok := q.PopFront(); ok {
		t.Fatalf("pop from empty queue should fail")
	}
}

func TestLocalRunQueueFullRejectsPush(t *testing.T) {
	var q localRunQueue
	for i := 0; i < localRunQueueCap; i++ {
		if !q.PushBack(newG(uint64(i), func() {})) {
			t.Fatalf("push %d should succeed under capacity", i)
		}
	}
	if !q.Full() {
		t.Fatalf("queue should report full at capacity")
	}
	if q.PushBack(newG(999, func() {})) {
		t.Fatalf("push at capacity should fail")
	}
}

func TestLocalRunQueuePushBatchChainPartialFailureLeavesProgress(t *testing.T) {
	var q localRunQueue
	for i := 0; i < localRunQueueCap-1; i++ {
		if !q.PushBack(newG(uint64(i), func() {})) {
			t.Fatalf("setup push %d failed", i)
		}
	}

	// One slot free; chain of 3 should enqueue exactly one and fail.
	a, b, c := newG(100, func() {}), newG(101, func() {}), newG(102, func() {})
	a.setLink(b)
	b.setLink(c)

	err := q.PushBatchChain(a)
	if err != ErrLocalQueueFull {
		t.Fatalf("err = %v, want ErrLocalQueueFull", err)
	}
	if !q.Full() {
		t.Fatalf("queue should be full after partial batch ingest")
	}
}

func TestLocalRunQueuePopBatchFrontFIFOOrder(t *testing.T) {
	var q localRunQueue
	for i := 0; i < 10; i++ {
		q.PushBack(newG(uint64(i), func() {}))
	}
	batch := q.PopBatchFront(5)
	if len(batch) != 5 {
		t.Fatalf("len(batch) = %d, want 5", len(batch))
	}
	for i, g := range batch {
		if g.ID != uint64(i) {
			t.Fatalf("batch[%d].ID = %d, want %d", i, g.ID, i)
		}
	}
	if q.Len() != 5 {
		t.Fatalf("remaining len = %d, want 5", q.Len())
	}
}
