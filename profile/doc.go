// Package profile captures Go runtime profiles of the tictoc process.
//
// It wraps [github.com/pkg/profile] and is compiled in only with the "pprof"
// build tag:
//
//	go build -tags pprof -o tictoc .
//
// Without the tag, [Modes] is empty and [Start] returns a no-op [Stopper], so
// callers never need their own build constraints.
//
// # Modes
//
//   - allocs:    memory allocations (all)
//   - block:     blocking on synchronization primitives
//   - clock:     wall-clock time (fgprof)
//   - cpu:       CPU time
//   - goroutine: goroutine stacks
//   - heap:      live heap allocations
//   - mem:       memory (heap sampling)
//   - mutex:     mutex contention
//   - thread:    OS thread creation
//   - trace:     execution trace
//
// Runtime profiles complement the region timings of package prof: the
// former show where CPU and memory go inside the process, the latter how long
// each named region took.
//
// # Usage
//
//	stop := profile.Start(
//		profile.WithMode("cpu"),
//		profile.WithPath("/tmp/tictoc"),
//	)
//	defer stop.Stop()
//
// Inspect the output with "go tool pprof".
package profile

// Tag is the build tag required to enable runtime profiling.
const Tag = `pprof`
