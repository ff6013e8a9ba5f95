// Command gmpsched is the debug demo harness for the gmpsched scheduler
// core: it resolves a processor-count policy, builds a task-function
// provider from the sample workload catalog, seeds goroutines, and runs
// the dispatch loop to termination (spec.md section 6).
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gopherschool/gmpsched/internal/cpupolicy"
	"github.com/gopherschool/gmpsched/internal/sched"
	"github.com/gopherschool/gmpsched/internal/workload"
)

const ansiRed = "\033[31m"
const ansiReset = "\033[0m"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("gmpsched", flag.ContinueOnError)
	fs.SetOutput(stderr)

	procs := fs.Int("procs", 0, "custom processor count (only used with -policy=custom)")
	policyName := fs.String("policy", string(cpupolicy.OnePerCore), "one-per-core|half-cores|quarter-cores|double-cores|custom")
	tasks := fs.Int("tasks", 8, "number of goroutines to create")
	debug := fs.Bool("debug", true, "print the debug trace")
	seed := fs.Int64("seed", 1, "random source seed for the steal scan and batch shuffle")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *tasks <= 0 {
		fmt.Fprintf(stderr, "%sgmpsched: no task functions supplied (-tasks must be > 0)%s\n", ansiRed, ansiReset)
		return 1
	}

	nproc, err := cpupolicy.Resolve(cpupolicy.Policy(*policyName), *procs, cpupolicy.DetectedCores())
	if err != nil {
		fmt.Fprintf(stderr, "%sgmpsched: %v%s\n", ansiRed, err, ansiReset)
		return 1
	}

	s := sched.Init(nproc, sched.WithDebug(*debug), sched.WithOutput(stdout), sched.WithSeed(*seed))
	defer s.Deinit()

	catalog := workload.Catalog(stdout)
	fns := workload.RoundRobin(catalog, *tasks)
	for _, fn := range fns {
		s.NewprocAuto(fn)
	}

	s.Schedule()
	return 0
}
