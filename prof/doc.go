// Package prof measures wall-clock time spent in named code regions and
// reports summary statistics.
//
// # Regions
//
// A region is bracketed by two calls to [Profiler.Toggle] with the same name.
// The first call opens an entry and returns 0; the second closes it and
// returns the elapsed microseconds:
//
//	p := prof.New()
//	p.Enable()
//
//	p.Toggle("load")
//	load()
//	us := p.Toggle("load")
//
// Each name alternates between running and not running. There is no nesting
// depth, so a region cannot be reentered under its own name.
// [Profiler.Start] and [Profiler.Time] wrap the same state machine for use
// with defer and closures.
//
// # Gate
//
// A [Profiler] is created disabled. While disabled, every operation is a
// no-op returning its zero value. [Profiler.Disable] keeps history, closing
// any region still running at that instant, and [Profiler.Enable] resumes
// accumulation into it.
//
// # Reports
//
// [Profiler.Aggregate] derives one [Stat] per region from closed entries.
// [Profiler.PrintAggregated] writes them sorted by descending average,
// and [Profiler.PrintAll] writes every entry. Reports can be encoded as a
// fixed-width table, JSON, or YAML ([WithFormat]) and narrowed with a fuzzy
// name match ([WithMatch]) or an expr-lang predicate ([WithWhere]).
//
// Entries still running at report time follow an [OpenPolicy]: they are
// either left out ([OpenExclude]) or shown with an explicit [OpenMarker]
// ([OpenFlag]). A duration is never computed for a running entry.
//
// # Default Profiler
//
// Package-level functions such as [Enable], [Toggle], and [PrintAggregated]
// operate on a process-wide profiler returned by [Default].
package prof
