package prof

import "io"

// defaultProfiler backs the package-level functions. It is created disabled,
// like every [Profiler], and is never replaced; use [Config] and [Reset] to
// change it.
var defaultProfiler = New()

// Default returns the profiler used by the package-level functions.
func Default() *Profiler { return defaultProfiler }

// Config applies opts to the default profiler.
func Config(opts ...Option) { defaultProfiler.Configure(opts...) }

// Enable turns on the default profiler.
func Enable() { defaultProfiler.Enable() }

// Disable turns off the default profiler.
func Disable() { defaultProfiler.Disable() }

// Enabled reports whether the default profiler is on.
func Enabled() bool { return defaultProfiler.Enabled() }

// Toggle opens or closes the region called name on the default profiler.
func Toggle(name string) int64 { return defaultProfiler.Toggle(name) }

// Start toggles name on the default profiler and returns a function that
// toggles it again.
func Start(name string) func() int64 { return defaultProfiler.Start(name) }

// Time runs fn inside the region called name on the default profiler.
func Time(name string, fn func()) int64 { return defaultProfiler.Time(name, fn) }

// Aggregate returns the default profiler's statistics.
func Aggregate() []Stat { return defaultProfiler.Aggregate() }

// PrintAggregated writes the default profiler's aggregated report to w.
func PrintAggregated(w io.Writer, opts ...ReportOption) error {
	return defaultProfiler.PrintAggregated(w, opts...)
}

// PrintAll writes the default profiler's raw report to w.
func PrintAll(w io.Writer, opts ...ReportOption) error {
	return defaultProfiler.PrintAll(w, opts...)
}

// Reset discards the default profiler's history.
func Reset() { defaultProfiler.Reset() }
