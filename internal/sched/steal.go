package sched

import "strconv"

// stealWork implements spec.md section 4.10: a randomized ring scan of
// peers that moves half of a victim's local queue into the thief's local
// queue, skipping the victim's runnext entirely.
func (s *Scheduler) stealWork(thief *Processor) (WorkItem, bool) {
	n := len(s.procs)
	if n < 2 {
		return WorkItem{}, false
	}
	if !thief.local.HasCapacity() {
		return WorkItem{}, false
	}

	start := s.rng.Intn(n)
	budget := n * stealTries
	scanned := ""

	// Each ring-scan step consumes one budget unit, including steps that
	// land on the thief's own slot. Scanning stops at budget exhaustion
	// or after one full round of no successful move; since budget starts
	// at n*stealTries >= n, a full round always exhausts first in this
	// single-threaded model, where no victim gains work mid-scan.
	for step := 0; step < n && budget > 0; step++ {
		budget--
		victimIdx := (start + step) % n
		if victimIdx == thief.ID {
			continue
		}

		victim := s.procs[victimIdx]
		if !victim.HasWork() {
			scanned += "P" + strconv.Itoa(victim.ID) + " -> "
			continue
		}

		k := s.runqsteal(thief, victim)
		if k > 0 {
			s.debugf("[steal] P%d <- %d from P%d\n", thief.ID, k, victim.ID)
			wi, ok := s.runqget(thief)
			if !ok {
				return WorkItem{}, false
			}
			wi.Source = SrcRunq
			return wi, true
		}
		scanned += "P" + strconv.Itoa(victim.ID) + " -> "
	}

	s.debugf("[steal] P%d scan(start=%d): %s(all empty)\n", thief.ID, start, scanned)
	return WorkItem{}, false
}

// runqsteal moves k = min(victim local size/2, thief available) elements
// from the front of victim's local queue to the tail of thief's, in
// order, and returns k. victim's runnext is never touched.
func (s *Scheduler) runqsteal(thief, victim *Processor) int {
	k := victim.local.Len() / 2
	if avail := thief.local.Avail(); k > avail {
		k = avail
	}
	if k <= 0 {
		return 0
	}
	moved := victim.local.PopBatchFront(k)
	for _, g := range moved {
		ok := thief.local.PushBack(g)
		assert(ok, "runqsteal: thief local queue rejected a pre-clamped move")
	}
	return len(moved)
}
