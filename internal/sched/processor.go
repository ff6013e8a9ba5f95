package sched

// Processor is a logical scheduler lane: an id, a status, a single-slot
// fast path (runnext), a bounded local run queue, and an intrusive link
// used only while parked on the idle stack.
//
// Invariants (spec.md I-P1..I-P3): a P is on the idle stack iff its
// status is Parked; while Parked it has no runnable work; status
// transitions Running->Idle via sync_status when local work is absent,
// and never promotes Idle->Running implicitly.
type Processor struct {
	ID     int
	status PStatus

	runnext *G
	local   localRunQueue

	// idleLink chains this P into the idle stack. Nil whenever the P is
	// not Parked.
	idleLink *Processor
}

func newProcessor(id int) *Processor {
	return &Processor{ID: id, status: PIdle}
}

func (p *Processor) Status() PStatus { return p.status }

func (p *Processor) setStatus(s PStatus) { p.status = s }

func (p *Processor) HasRunnext() bool { return p.runnext != nil }

func (p *Processor) Runnext() *G { return p.runnext }

func (p *Processor) SetRunnext(g *G) { p.runnext = g }

func (p *Processor) ClearRunnext() *G {
	g := p.runnext
	p.runnext = nil
	return g
}

// HasWork reports whether p has anything runnable right now.
func (p *Processor) HasWork() bool {
	return p.runnext != nil || !p.local.Empty()
}

// TotalGoroutines is the local queue size plus one if runnext is
// occupied.
func (p *Processor) TotalGoroutines() int {
	n := p.local.Len()
	if p.runnext != nil {
		n++
	}
	return n
}

// PreviewLocalNext returns, without consuming, the G that would run next
// on this P: runnext if occupied, else the local queue's front. Used by
// the preemption pass, which must mark without dequeuing.
func (p *Processor) PreviewLocalNext() (*G, WorkSource, bool) {
	if p.runnext != nil {
		return p.runnext, SrcRunnext, true
	}
	if !p.local.Empty() {
		return p.local.buf[p.local.head], SrcRunq, true
	}
	return nil, 0, false
}

// SyncStatus demotes Running to Idle when the P has no work. It never
// touches a Parked P and never promotes Idle to Running implicitly
// (spec.md I-P3).
func (p *Processor) SyncStatus() {
	if p.status == PRunning && !p.HasWork() {
		p.status = PIdle
	}
}
