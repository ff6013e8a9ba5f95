package sched

// globrunqput appends a single G to the global queue and wakes up to one
// idle processor (spec.md section 4.7).
func (s *Scheduler) globrunqput(g *G) {
	s.global.PushOne(g)
	s.wakeForNewWork(1)
}

// globrunqget implements spec.md section 4.7's batch-size heuristic: take
// n = size/nproc + 1, clamp to at most half the global queue, clamp to
// capHint if positive, clamp to half the local capacity (educational
// headroom), and finally clamp to the local queue's available capacity.
// If the clamped result would be zero but the global queue is non-empty
// and a slot is available, take one. Returns false if the global queue is
// empty.
func (s *Scheduler) globrunqget(p *Processor, capHint int) (BatchCut, bool) {
	if s.global.Empty() {
		return BatchCut{}, false
	}

	n := s.global.Len()/s.NProc() + 1

	if half := s.global.Len() / 2; n > half {
		n = half
	}
	if capHint > 0 && n > capHint {
		n = capHint
	}
	if localHalf := localRunQueueCap / 2; n > localHalf {
		n = localHalf
	}
	if avail := p.local.Avail(); n > avail {
		n = avail
	}

	if n <= 0 {
		if p.local.Avail() > 0 {
			n = 1
		} else {
			return BatchCut{}, false
		}
	}

	cut := s.global.PopBatch(n)
	if cut.ChainLen > 0 {
		if err := p.local.PushBatchChain(cut.ChainHead); err != nil {
			panic("sched: globrunqget: local queue rejected a pre-clamped batch: " + err.Error())
		}
	}
	return cut, true
}

// globrunqgetAsWorkItem is globrunqget tagged as a WorkItem for the
// finder (spec.md section 4.8 step 2).
func (s *Scheduler) globrunqgetAsWorkItem(p *Processor) (WorkItem, bool) {
	cut, ok := s.globrunqget(p, 0)
	if !ok {
		return WorkItem{}, false
	}
	return WorkItem{G: cut.ImmediateG, Source: SrcGlobal}, true
}
