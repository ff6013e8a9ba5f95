package sched

// runqput implements spec.md section 4.6. toRunnext requests installation
// into the fast-path slot rather than the tail of the local queue.
func (s *Scheduler) runqput(p *Processor, g *G, toRunnext bool) {
	if toRunnext {
		if !p.HasRunnext() {
			p.SetRunnext(g)
			return
		}
		demoted := p.ClearRunnext()
		p.SetRunnext(g)
		if !p.local.PushBack(demoted) {
			s.runqputslow(p, demoted)
		}
		return
	}
	if !p.local.PushBack(g) {
		s.runqputslow(p, g)
	}
}

// runqputslow spills half of p's local queue, plus newG, to the global
// queue (spec.md section 4.6). It is also the path taken when runqput's
// direct tail-enqueue fails.
func (s *Scheduler) runqputslow(p *Processor, newG *G) {
	h := p.local.Len() / 2
	if h == 0 {
		s.global.PushOne(newG)
		s.wakeForNewWork(1)
		return
	}

	batch := make([]*G, 0, localRunQueueCap/2+1)
	batch = append(batch, p.local.PopBatchFront(h)...)
	batch = append(batch, newG)

	if s.debug {
		s.rng.Shuffle(len(batch), func(i, j int) { batch[i], batch[j] = batch[j], batch[i] })
	}

	s.global.PushBatch(batch)
	s.wakeForNewWork(len(batch))
}

// runqget implements spec.md section 4.6's passive replenishment: runnext
// is returned without refilling from the local queue.
func (s *Scheduler) runqget(p *Processor) (WorkItem, bool) {
	if p.HasRunnext() {
		g := p.ClearRunnext()
		return WorkItem{G: g, Source: SrcRunnext}, true
	}
	if g, ok := p.local.PopFront(); ok {
		return WorkItem{G: g, Source: SrcRunq}, true
	}
	return WorkItem{}, false
}
