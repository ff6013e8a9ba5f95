package sched

import "sync/atomic"

// pidleStack is a LIFO stack of parked P's chained through
// Processor.idleLink, with an atomic length counter so the counter's
// contract transfers unchanged to a multi-M future (spec.md section 5).
// In the present single-context model every mutation happens from the
// dispatch loop, so the atomic only needs to behave like ordinary
// load/store.
type pidleStack struct {
	head   *Processor
	npidle atomic.Int64
}

// NPidle is the current idle-processor count (spec.md I-S1).
func (s *pidleStack) NPidle() int { return int(s.npidle.Load()) }

// Put parks p: precondition !p.HasWork(). Pushes p onto the stack head,
// sets its status to Parked, and increments npidle.
func (s *pidleStack) Put(p *Processor) {
	assert(!p.HasWork(), "pidle.Put: parking a processor with runnable work")
	p.setStatus(PParked)
	p.idleLink = s.head
	s.head = p
	s.npidle.Add(1)
}

// Get pops the stack head, if any, clears its idle link, sets its status
// to Running, and decrements npidle.
func (s *pidleStack) Get() (*Processor, bool) {
	if s.head == nil {
		return nil, false
	}
	p := s.head
	s.head = p.idleLink
	p.idleLink = nil
	s.npidle.Add(-1)
	p.setStatus(PRunning)
	return p, true
}

