package sched

// anyOtherPHasWork reports whether some processor other than p currently
// has runnable work (runnext or local queue non-empty).
func (s *Scheduler) anyOtherPHasWork(p *Processor) bool {
	for _, other := range s.procs {
		if other.ID == p.ID {
			continue
		}
		if other.HasWork() {
			return true
		}
	}
	return false
}

// terminated reports the dispatch loop's exit condition: the global
// queue and the timer list are empty and every processor is parked.
func (s *Scheduler) terminated() bool {
	if !s.global.Empty() || len(s.timers) != 0 {
		return false
	}
	return s.idle.NPidle() == len(s.procs)
}

// Schedule runs the dispatch loop to termination (spec.md section 4.12).
// On exit, every G ever created has reached Done and been destroyed, the
// global queue is empty, and every P is Parked.
func (s *Scheduler) Schedule() {
	s.mainStarted = true
	round := 1

	for !s.terminated() {
		s.debugf("--- Round %d ---\n", round)
		s.onRoundTick()

		for _, p := range s.procs {
			switch p.Status() {
			case PParked:
				continue
			case PIdle:
				if !s.tryRunFromFinder(p) {
					s.pidlePut(p)
				}
			case PRunning:
				if !s.tryRunFromFinder(p) {
					if !(s.anyOtherPHasWork(p) && s.tryRunFromFinder(p)) {
						s.pidlePut(p)
					}
				}
			}
		}
		round++
	}
	s.roundsRun = round - 1
}

// RoundsRun is the number of rounds the most recent Schedule() call took
// to reach termination, exposed for the bounded-progress property test
// (spec.md P3).
func (s *Scheduler) RoundsRun() int { return s.roundsRun }
