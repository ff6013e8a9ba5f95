package sched

// preemptInjectionHook is a dispatch-time hook reserved so the preempt
// pass can be supplemented by dispatch-time policies without touching the
// core. It is a no-op per spec.md section 4.11 step 2; the
// `g.id % 29 == 0` sampling mentioned in the design notes is not
// load-bearing and is not wired here.
func (s *Scheduler) preemptInjectionHook(p *Processor, g *G) {}

// executeGoroutine runs one scheduling slice of g on p (spec.md section
// 4.11).
func (s *Scheduler) executeGoroutine(p *Processor, wi WorkItem) {
	g := wi.G
	p.setStatus(PRunning)
	s.preemptInjectionHook(p, g)

	finished := s.runOneSlice(p, g, wi.Source)

	if finished {
		destroyproc(s, g)
	} else {
		s.runqputTailWithReason(p, g)
	}
	p.SyncStatus()
}

// runOneSlice is the executor described in spec.md section 4.11 step 3:
// a malformed G (no task) is marked Done immediately; a pending preempt
// request is consumed at the safepoint before the task runs, yielding
// without calling it; otherwise the task runs exactly once to
// completion.
func (s *Scheduler) runOneSlice(p *Processor, g *G, src WorkSource) bool {
	if !g.IsExecutionReady() {
		g.setStatus(GDone)
		return true
	}

	s.debugf("P%d: Executing G%d (from %s)\n", p.ID, g.ID, src)

	if g.ConsumePreempt() {
		s.debugf("[yield] P%d: G%d (%s) -> tail\n", p.ID, g.ID, g.LastYieldReason())
		return false
	}

	g.setStatus(GRunning)
	g.Task()
	g.setStatus(GDone)
	s.debugf("P%d: G%d done\n", p.ID, g.ID)
	return true
}

// runqputTailWithReason is a thin wrapper over runqput(p, g,
// to_runnext=false), named to match spec.md section 4.11 step 5.
func (s *Scheduler) runqputTailWithReason(p *Processor, g *G) {
	s.runqput(p, g, false)
}
