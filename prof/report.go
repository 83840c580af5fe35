package prof

import (
	"io"
	"strings"

	"github.com/ardnew/tictoc/pkg"
)

// OpenPolicy selects how reports treat entries of regions that were started
// but not yet stopped.
type OpenPolicy int

const (
	// OpenExclude leaves running entries out of every report.
	OpenExclude OpenPolicy = iota // exclude
	// OpenFlag reports running entries with an explicit "open" marker in
	// place of a duration.
	OpenFlag // flag
)

// DefaultOpenPolicy is the policy used unless configured otherwise.
const DefaultOpenPolicy = OpenExclude

// OpenMarker replaces a duration that cannot be computed because its entry
// is still running.
const OpenMarker = "open"

// ParseOpenPolicy parses "exclude" or "flag".
func ParseOpenPolicy(s string) (OpenPolicy, error) {
	for _, p := range []OpenPolicy{OpenExclude, OpenFlag} {
		if strings.EqualFold(strings.TrimSpace(s), p.String()) {
			return p, nil
		}
	}

	return DefaultOpenPolicy, pkg.ErrInvalidFormat.Wrapf(
		"open policy %q (valid: %s, %s)", s, OpenExclude, OpenFlag)
}

// Format selects the encoding of a report.
type Format int

const (
	FormatTable Format = iota // table
	FormatJSON                // json
	FormatYAML                // yaml
)

// Formats lists every supported report format.
var Formats = []Format{FormatTable, FormatJSON, FormatYAML}

// ParseFormat parses "table", "json", or "yaml".
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if strings.EqualFold(strings.TrimSpace(s), f.String()) {
			return f, nil
		}
	}

	return FormatTable, pkg.ErrInvalidFormat.Wrapf(
		"report format %q (valid: %s, %s, %s)", s, FormatTable, FormatJSON, FormatYAML)
}

// report holds the settings of one report invocation.
type report struct {
	format Format
	policy OpenPolicy
	where  string
	match  string
}

// ReportOption configures a single report.
type ReportOption func(report) report

// WithFormat returns a report option that selects the output encoding.
func WithFormat(format Format) ReportOption {
	return func(r report) report {
		r.format = format

		return r
	}
}

// WithReportPolicy returns a report option that overrides the profiler's
// [OpenPolicy] for one report.
func WithReportPolicy(policy OpenPolicy) ReportOption {
	return func(r report) report {
		r.policy = policy

		return r
	}
}

// WithWhere returns a report option that keeps only regions whose [Stat]
// satisfies the boolean expression src, for example "Calls > 10 && Avg > 1e-3".
// See [CompileFilter].
func WithWhere(src string) ReportOption {
	return func(r report) report {
		r.where = src

		return r
	}
}

// WithMatch returns a report option that keeps only regions whose name
// fuzzy-matches pattern.
func WithMatch(pattern string) ReportOption {
	return func(r report) report {
		r.match = pattern

		return r
	}
}

func makeReport(policy OpenPolicy, opts ...ReportOption) report {
	r := report{format: FormatTable, policy: policy}

	for _, opt := range opts {
		if opt != nil {
			r = opt(r)
		}
	}

	return r
}

// capture copies the registry and resolves report settings under one lock.
// The boolean result is false while the profiler is disabled.
func (p *Profiler) capture(opts []ReportOption) ([]Series, report, bool) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if !p.enabled {
		return nil, report{}, false
	}

	return p.snapshot(), makeReport(p.config.policy, opts...), true
}

// PrintAggregated writes one row of statistics per region, sorted by
// descending average duration with ties in creation order. It writes nothing
// while the profiler is disabled.
//
// The default table layout is a blank line, a header row, one row per region,
// and a trailing blank line; the name column is 60 characters wide, numeric
// columns are 20 wide, and seconds are shown to 5 significant digits.
func (p *Profiler) PrintAggregated(w io.Writer, opts ...ReportOption) error {
	snap, rep, ok := p.capture(opts)
	if !ok {
		return nil
	}

	stats, err := rep.selectStats(aggregate(snap, rep.policy))
	if err != nil {
		return err
	}

	SortByAvg(stats)

	return rep.writeStats(w, stats)
}

// PrintAll writes every entry of every region, regions in creation order and
// entries in call order, without aggregation or sorting. It writes nothing
// while the profiler is disabled.
func (p *Profiler) PrintAll(w io.Writer, opts ...ReportOption) error {
	snap, rep, ok := p.capture(opts)
	if !ok {
		return nil
	}

	stats, err := rep.selectStats(aggregate(snap, rep.policy))
	if err != nil {
		return err
	}

	keep := make(map[string]struct{}, len(stats))
	for _, s := range stats {
		keep[s.Name] = struct{}{}
	}

	return rep.writeRecords(w, records(snap, keep, rep.policy))
}

// Record is one line of the raw report. Duration is nil for a running entry
// reported under [OpenFlag].
type Record struct {
	Start    int64  `json:"start_time"  yaml:"start_time"`
	Name     string `json:"description" yaml:"description"`
	Duration *int64 `json:"duration"    yaml:"duration"`
}

func records(snap []Series, keep map[string]struct{}, policy OpenPolicy) []Record {
	var out []Record

	for _, s := range snap {
		if _, ok := keep[s.Name]; !ok {
			continue
		}

		for _, e := range s.Entries {
			r := Record{Start: e.Start, Name: s.Name}

			if d, ok := e.Duration(); ok {
				r.Duration = &d
			} else if policy == OpenExclude {
				continue
			}

			out = append(out, r)
		}
	}

	return out
}
