package sched

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"sync/atomic"
)

const (
	// stealTries is the number of ring-scan budget units per processor,
	// per spec.md section 4.10.
	stealTries = 4

	// defaultPreemptPeriod is the number of ticks between preemption
	// passes, per spec.md section 4.13.
	defaultPreemptPeriod = 7
)

// Scheduler is the state root: it aggregates the processor array, the
// global run queue, the idle stack, the id generator, the tick/preempt
// timeline, the timer list, and the debug switch.
type Scheduler struct {
	procs []*Processor
	global globalRunQueue
	idle   pidleStack

	goidgen atomic.Uint64

	ticks           uint64
	preemptPeriod   uint64
	nextPreemptTick uint64
	timers          []timerEntry

	// rrCursor is the round-robin cursor used by NewprocAuto. Per
	// spec.md section 9 this is documented as single-context-only; it
	// would need to move into atomics for a multi-M extension.
	rrCursor int

	mainStarted bool
	roundsRun   int
	debug       bool
	out         io.Writer

	rng *rand.Rand
}

// Option configures a Scheduler at construction time.
type Option func(*Scheduler)

// WithDebug turns on the debug text interface described in spec.md
// section 6.
func WithDebug(on bool) Option {
	return func(s *Scheduler) { s.debug = on }
}

// WithOutput redirects the debug text interface away from os.Stdout
// (used by tests that capture the trace).
func WithOutput(w io.Writer) Option {
	return func(s *Scheduler) { s.out = w }
}

// WithSeed fixes the steal-scan and batch-shuffle random source, making a
// debug trace exactly reproducible.
func WithSeed(seed int64) Option {
	return func(s *Scheduler) { s.rng = rand.New(rand.NewSource(seed)) }
}

// Init constructs a scheduler with nproc processors, all initially Idle
// and off the idle stack (spec.md section 6: init(allocator, debug_mode)).
// nproc must be in [1, 64].
func Init(nproc int, opts ...Option) *Scheduler {
	if nproc < 1 || nproc > 64 {
		panic(fmt.Sprintf("sched: nproc %d out of range [1, 64]", nproc))
	}
	s := &Scheduler{
		preemptPeriod:   defaultPreemptPeriod,
		nextPreemptTick: defaultPreemptPeriod,
		out:             os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(1))
	}
	s.procs = make([]*Processor, nproc)
	for i := range s.procs {
		s.procs[i] = newProcessor(i)
	}
	return s
}

// Deinit destroys every residual G reachable from runnext slots, local
// queues, the global queue, and the timer list, then frees the processor
// array. The Scheduler must not be used afterwards.
func (s *Scheduler) Deinit() {
	for _, p := range s.procs {
		if p.runnext != nil {
			destroyproc(s, p.runnext)
			p.runnext = nil
		}
		for {
			g, ok := p.local.PopFront()
			if !ok {
				break
			}
			destroyproc(s, g)
		}
	}
	for {
		g, ok := s.global.PopOne()
		if !ok {
			break
		}
		destroyproc(s, g)
	}
	for _, te := range s.timers {
		destroyproc(s, te.g)
	}
	s.timers = nil
	s.procs = nil
}

// NProc is the number of processors the scheduler was initialized with.
func (s *Scheduler) NProc() int { return len(s.procs) }

// Proc returns the processor at index i, for hosts and tests that need to
// target a specific P directly (e.g. Newproc bypassing round-robin).
func (s *Scheduler) Proc(i int) *Processor { return s.procs[i] }

// IdleCount is the current number of parked processors.
func (s *Scheduler) IdleCount() int { return s.idle.NPidle() }

// GlobalLen is the current size of the global run queue.
func (s *Scheduler) GlobalLen() int { return s.global.Len() }

// Ticks is the current logical tick count.
func (s *Scheduler) Ticks() uint64 { return s.ticks }

func (s *Scheduler) debugf(format string, args ...any) {
	if !s.debug {
		return
	}
	fmt.Fprintf(s.out, format, args...)
}

// pidlePut parks p and emits the debug parking line.
func (s *Scheduler) pidlePut(p *Processor) {
	s.idle.Put(p)
	s.debugf("[pidle] +P%d (idle=%d)\n", p.ID, s.idle.NPidle())
}

// pidleGet pops the idle stack head, if any, and emits the debug waking
// line.
func (s *Scheduler) pidleGet() (*Processor, bool) {
	p, ok := s.idle.Get()
	if ok {
		s.debugf("[pidle] -P%d (idle=%d)\n", p.ID, s.idle.NPidle())
	}
	return p, ok
}

// wakeForNewWork is the single entry point used by global-queue enqueue
// and by local-overflow spill (spec.md section 4.5). It promises only
// that up to k idle P's are un-parked and considered for dispatch in the
// current or next round; no specific P is chosen for the produced work.
func (s *Scheduler) wakeForNewWork(k int) {
	n := k
	if avail := s.idle.NPidle(); avail < n {
		n = avail
	}
	for i := 0; i < n; i++ {
		if _, ok := s.pidleGet(); !ok {
			break
		}
	}
}
