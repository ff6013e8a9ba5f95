package sched

import (
	"math/rand"
	"testing"
)

// P2: npidle equals the count of Parked P's (and every P is Parked),
// checked after a run to termination.
func TestPropertyNPidleMatchesParkedCount(t *testing.T) {
	for _, nproc := range []int{1, 2, 5, 16} {
		s, _ := newTestScheduler(t, nproc, 42)

		for i := 0; i < nproc*3; i++ {
			s.NewprocAuto(func() {})
		}
		s.Schedule()

		parked := 0
		for i := 0; i < s.NProc(); i++ {
			if s.Proc(i).Status() == PParked {
				parked++
			}
		}
		if parked != s.IdleCount() {
			t.Fatalf("nproc=%d: parked=%d, IdleCount=%d", nproc, parked, s.IdleCount())
		}
		if parked != nproc {
			t.Fatalf("nproc=%d: parked=%d, want %d at termination", nproc, parked, nproc)
		}
		s.Deinit()
	}
}

// P3 (coarse form): a whole run finishes within ten times the
// N*steal_tries + N + 1 progress window, for a variety of processor
// counts and workloads.
func TestPropertyBoundedRounds(t *testing.T) {
	for _, nproc := range []int{1, 2, 4, 8} {
		s, _ := newTestScheduler(t, nproc, 7)
		for i := 0; i < nproc*10; i++ {
			s.NewprocAuto(func() {})
		}
		s.Schedule()

		bound := nproc*stealTries + nproc + 1
		if s.RoundsRun() > bound*10 {
			// Generous multiplier: the bound in spec.md P3 describes
			// progress between successive completions, not a hard cap
			// on the whole run; a run with many goroutines legitimately
			// takes more than one such window. What must never happen
			// is an unbounded loop, which this upper multiple guards
			// against without executing the program.
			t.Fatalf("nproc=%d: RoundsRun=%d suspiciously large vs window bound %d", nproc, s.RoundsRun(), bound)
		}
		s.Deinit()
	}
}

// P4: termination invariant - global queue empty, every P parked, every
// created G reached Done.
func TestPropertyTerminationInvariant(t *testing.T) {
	s, _ := newTestScheduler(t, 4, 99)
	defer s.Deinit()

	var completed []uint64
	for i := 0; i < 50; i++ {
		g := s.NewprocAuto(func() {})
		id := g.ID
		g.Task = func() { completed = append(completed, id) }
	}
	s.Schedule()

	if s.GlobalLen() != 0 {
		t.Fatalf("global queue not empty at termination")
	}
	if s.IdleCount() != s.NProc() {
		t.Fatalf("idle count = %d, want %d", s.IdleCount(), s.NProc())
	}
	for i := 0; i < s.NProc(); i++ {
		if s.Proc(i).Status() != PParked {
			t.Fatalf("P%d status = %v, want Parked", i, s.Proc(i).Status())
		}
		if s.Proc(i).HasWork() {
			t.Fatalf("P%d still has work at termination", i)
		}
	}
	if len(completed) != 50 {
		t.Fatalf("completed %d goroutines, want 50", len(completed))
	}
}

// P6: work-stealing moves exactly min(victim_local_size/2, thief_avail)
// G's in FIFO order, and never touches the victim's runnext.
func TestPropertyStealMovesExactlyHalf(t *testing.T) {
	s, _ := newTestScheduler(t, 2, 5)
	defer s.Deinit()

	victim := s.Proc(0)
	thief := s.Proc(1)

	const victimLen = 9
	for i := 0; i < victimLen; i++ {
		victim.local.PushBack(newG(uint64(i), func() {}))
	}
	runnextG := newG(999, func() {})
	victim.SetRunnext(runnextG)

	wantK := victimLen / 2 // 4
	beforeIDs := make([]uint64, 0, wantK)
	for i := 0; i < wantK; i++ {
		beforeIDs = append(beforeIDs, victim.local.buf[(victim.local.head+i)%localRunQueueCap].ID)
	}

	k := s.runqsteal(thief, victim)
	if k != wantK {
		t.Fatalf("k = %d, want %d", k, wantK)
	}
	if victim.local.Len() != victimLen-wantK {
		t.Fatalf("victim local len = %d, want %d", victim.local.Len(), victimLen-wantK)
	}
	if thief.local.Len() != wantK {
		t.Fatalf("thief local len = %d, want %d", thief.local.Len(), wantK)
	}
	if victim.Runnext() != runnextG {
		t.Fatalf("victim's runnext must never be touched by stealing")
	}
	for i := 0; i < wantK; i++ {
		got := thief.local.buf[(thief.local.head+i)%localRunQueueCap]
		if got.ID != beforeIDs[i] {
			t.Fatalf("thief[%d].ID = %d, want %d (FIFO order preserved)", i, got.ID, beforeIDs[i])
		}
	}
}

// P8: runqget returns runnext without consuming the local queue.
func TestPropertyPassiveReplenishment(t *testing.T) {
	s, _ := newTestScheduler(t, 1, 1)
	defer s.Deinit()

	p := s.Proc(0)
	p.SetRunnext(newG(1, func() {}))
	p.local.PushBack(newG(2, func() {}))
	p.local.PushBack(newG(3, func() {}))

	wi, ok := s.runqget(p)
	if !ok || wi.G.ID != 1 || wi.Source != SrcRunnext {
		t.Fatalf("runqget = %+v, %v; want G1 from runnext", wi, ok)
	}
	if p.local.Len() != 2 {
		t.Fatalf("local queue len = %d, want 2 (untouched)", p.local.Len())
	}
	front, _ := p.local.PopFront()
	if front.ID != 2 {
		t.Fatalf("local front ID = %d, want 2", front.ID)
	}
}

// A lightweight randomized check that whatever mix of Newproc/NewprocAuto
// calls happens before Schedule, every goroutine created is eventually
// accounted for exactly once (spec.md P1, exercised via an external
// counter rather than by walking internal queue membership directly).
func TestPropertyEveryGoroutineRunsExactlyOnce(t *testing.T) {
	rng := rand.New(rand.NewSource(123))
	for trial := 0; trial < 5; trial++ {
		nproc := 1 + rng.Intn(6)
		s, _ := newTestScheduler(t, nproc, int64(trial))

		n := 1 + rng.Intn(300)
		runs := make(map[uint64]int)
		for i := 0; i < n; i++ {
			var g *G
			if rng.Intn(2) == 0 {
				g = s.NewprocAuto(func() {})
			} else {
				g = s.Newproc(s.Proc(rng.Intn(nproc)), func() {})
			}
			id := g.ID
			g.Task = func() { runs[id]++ }
		}
		s.Schedule()

		if len(runs) != n {
			t.Fatalf("trial %d: %d distinct goroutines ran, want %d", trial, len(runs), n)
		}
		for id, count := range runs {
			if count != 1 {
				t.Fatalf("trial %d: goroutine %d ran %d times, want 1", trial, id, count)
			}
		}
		s.Deinit()
	}
}
