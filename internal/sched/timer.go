package sched

// timerEntry pairs a parked G with the tick at which it should wake.
type timerEntry struct {
	g        *G
	deadline uint64
}

// TimerPark appends (g, ticks+delayTicks) to the timer list (spec.md
// section 4.13). g must not be reachable from any other holder (run
// queue, runnext) when this is called: I-T1.
func (s *Scheduler) TimerPark(g *G, delayTicks uint64) {
	s.timers = append(s.timers, timerEntry{g: g, deadline: s.ticks + delayTicks})
}

// onRoundTick advances the logical clock by one, fires expired timers,
// and runs the preemption pass if due (spec.md section 4.13).
func (s *Scheduler) onRoundTick() {
	s.ticks++
	s.processExpiredTimers()
	s.maybePreemptPass()
}

// processExpiredTimers removes every timer entry whose deadline has
// passed, via swap-with-last + pop, and pushes its G to the global queue
// (which wakes). The scan index is not advanced past a removed entry
// since the last element has been swapped into its place.
func (s *Scheduler) processExpiredTimers() {
	for i := 0; i < len(s.timers); {
		te := s.timers[i]
		if te.deadline > s.ticks {
			i++
			continue
		}
		last := len(s.timers) - 1
		s.timers[i] = s.timers[last]
		s.timers = s.timers[:last]
		s.globrunqput(te.g)
	}
}

// maybePreemptPass marks, on every P, the next local candidate (runnext,
// else local-queue front) for preemption, without consuming it, if the
// preempt period has elapsed (spec.md section 4.13). Default period is 7
// ticks.
func (s *Scheduler) maybePreemptPass() {
	if s.ticks < s.nextPreemptTick {
		return
	}
	s.nextPreemptTick += s.preemptPeriod

	for _, p := range s.procs {
		g, src, ok := p.PreviewLocalNext()
		if !ok || g.hasPendingPreempt() {
			continue
		}
		g.RequestPreempt()
		var where string
		if src == SrcRunnext {
			where = "runnext"
		} else {
			where = "runq-front"
		}
		s.debugf("[preemptor] mark G%d (P%d %s)\n", g.ID, p.ID, where)
	}
}
