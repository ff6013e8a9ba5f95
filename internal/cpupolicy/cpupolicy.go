// Package cpupolicy resolves the external processor-count policy that
// spec.md section 6 names as a caller-supplied collaborator: a pure
// function turning a named policy into a processor count in [1, 64].
package cpupolicy

import (
	"fmt"
	"runtime"
)

// Policy names a processor-count strategy.
type Policy string

const (
	OnePerCore   Policy = "one-per-core"
	HalfCores    Policy = "half-cores"
	QuarterCores Policy = "quarter-cores"
	DoubleCores  Policy = "double-cores"
	Custom       Policy = "custom"
)

const (
	minProcs = 1
	maxProcs = 64
)

// Resolve turns policy into a processor count clamped to [1, 64].
// custom is only consulted when policy is Custom; it is otherwise
// ignored. numCPU is the detected core count (injected so callers and
// tests don't depend on the host machine's actual core count).
func Resolve(policy Policy, custom int, numCPU int) (int, error) {
	var n int
	switch policy {
	case OnePerCore:
		n = numCPU
	case HalfCores:
		n = numCPU / 2
	case QuarterCores:
		n = numCPU / 4
	case DoubleCores:
		n = numCPU * 2
	case Custom:
		n = custom
	default:
		return 0, fmt.Errorf("cpupolicy: unknown policy %q", policy)
	}
	if n < minProcs {
		n = minProcs
	}
	if n > maxProcs {
		n = maxProcs
	}
	return n, nil
}

// DetectedCores returns the host's reported logical CPU count, the value
// every named policy but Custom is derived from.
func DetectedCores() int {
	return runtime.NumCPU()
}
