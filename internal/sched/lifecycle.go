package sched

// Newproc allocates a G, assigns it the next id from the monotonic id
// generator (start value 1, stride 1), sets its task, and installs it
// into p's runnext slot. If the scheduler has already started its main
// loop, it additionally wakes one idle processor (spec.md section 4.14).
func (s *Scheduler) Newproc(p *Processor, task func()) *G {
	g := newG(s.goidgen.Add(1), task)
	s.runqput(p, g, true)
	if s.mainStarted {
		s.wakeForNewWork(1)
	}
	return g
}

// NewprocAuto picks a target processor by round robin and delegates to
// Newproc.
func (s *Scheduler) NewprocAuto(task func()) *G {
	p := s.procs[s.rrCursor]
	s.rrCursor = (s.rrCursor + 1) % len(s.procs)
	return s.Newproc(p, task)
}

// destroyproc clears g's scheduling link and releases it. G's in this
// model are ordinary heap values collected by the Go garbage collector;
// destroyproc's job is to drop the scheduler's last reference and make
// the G's queue membership unambiguous (spec.md section 3/5: a G is
// owned by exactly one holder at a time, and teardown must be able to
// walk all holders without double-freeing).
func destroyproc(s *Scheduler, g *G) {
	g.clearLink()
	g.setStatus(GDone)
}
