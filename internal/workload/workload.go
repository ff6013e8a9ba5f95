// Package workload is the task-function provider spec.md section 6 names
// as an external collaborator: an ordered, non-empty sequence of
// parameterless callables that the lifecycle module selects round-robin.
// It is grounded on the teacher's sampleWork/sampleWork2/sampleWork3
// closures (toysched step7), turned into a small named, reusable catalog
// instead of three inline closures in main().
package workload

import (
	"fmt"
	"io"
)

// Named is a task function together with the name that identifies it in
// the demo host's output.
type Named struct {
	Name string
	Func func()
}

// Catalog returns the fixed sample workloads, each writing to w so a demo
// run's console output is legible and reproducible.
func Catalog(w io.Writer) []Named {
	return []Named{
		{Name: "Hello", Func: func() {
			fmt.Fprintln(w, "  hello from goroutine")
		}},
		{Name: "Count3", Func: func() {
			for i := 1; i <= 3; i++ {
				fmt.Fprintf(w, "  count %d/3\n", i)
			}
		}},
		{Name: "Spin", Func: func() {
			sum := 0
			for i := 0; i < 1000; i++ {
				sum += i
			}
			fmt.Fprintf(w, "  spin done (sum=%d)\n", sum)
		}},
	}
}

// RoundRobin builds n parameterless callables by cycling through the
// catalog, the shape newproc_auto's host consumes (spec.md section 6).
func RoundRobin(catalog []Named, n int) []func() {
	if len(catalog) == 0 {
		return nil
	}
	tasks := make([]func(), n)
	for i := 0; i < n; i++ {
		tasks[i] = catalog[i%len(catalog)].Func
	}
	return tasks
}
