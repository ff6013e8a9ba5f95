package sched

import "errors"

// ErrLocalQueueFull is returned by local run queue operations that would
// exceed the fixed local capacity.
var ErrLocalQueueFull = errors.New("sched: local run queue full")

// ErrNoWork names the case of a lookup that found nothing runnable. The
// finder and queue lookups in this package report that case with a false
// ok value and do not return this error.
var ErrNoWork = errors.New("sched: no runnable work")

// assert panics with msg if cond is false. It is not gated on debug mode:
// every call site checks unconditionally. An assertion failing here means an invariant from
// spec.md section 3/4 was violated, which is unreachable in a correct
// build and therefore fatal rather than recovered.
func assert(cond bool, msg string) {
	if !cond {
		panic("sched: invariant violated: " + msg)
	}
}
