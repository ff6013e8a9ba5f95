package sched

// G is a goroutine: an identity, a status, an optional task, and the
// scheduling metadata the queues and preemption pass need.
//
// Invariants (spec.md I-G1..I-G3): a G lives in at most one of {runnext,
// one local queue, the global queue, the timer list, the runner's dispatch
// frame} at a time; schedlink is non-nil only while chained into the
// global queue or a detached transfer batch; a Running G is referenced
// only by the currently executing dispatch frame.
type G struct {
	ID   uint64
	Task func()

	status GStatus

	// schedlink chains this G into the global run queue or a detached
	// batch. Nil in every other state.
	schedlink *G

	preemptReq bool
	lastYield  YieldReason
}

func newG(id uint64, task func()) *G {
	return &G{ID: id, Task: task, status: GReady}
}

func (g *G) Status() GStatus { return g.status }

func (g *G) setStatus(s GStatus) { g.status = s }

// IsExecutionReady reports whether g is Ready and has a task to run. A G
// without a task is malformed and is driven straight to Done if executed.
func (g *G) IsExecutionReady() bool {
	return g.status == GReady && g.Task != nil
}

func (g *G) link() *G { return g.schedlink }

func (g *G) setLink(next *G) { g.schedlink = next }

func (g *G) clearLink() { g.schedlink = nil }

// RequestPreempt marks g for preemption at its next safepoint.
func (g *G) RequestPreempt() { g.preemptReq = true }

// ConsumePreempt returns true iff a preempt request was pending, clearing
// it and recording YieldPreempt as the last yield reason. Otherwise it
// returns false and leaves g untouched.
func (g *G) ConsumePreempt() bool {
	if !g.preemptReq {
		return false
	}
	g.preemptReq = false
	g.lastYield = YieldPreempt
	return true
}

func (g *G) hasPendingPreempt() bool { return g.preemptReq }

func (g *G) LastYieldReason() YieldReason { return g.lastYield }

func (g *G) setLastYieldReason(r YieldReason) { g.lastYield = r }
