package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ardnew/tictoc/demo"
	"github.com/ardnew/tictoc/log"
	"github.com/ardnew/tictoc/prof"
)

// Report kinds accepted by --report.
const (
	reportAggregated = "aggregated"
	reportRaw        = "raw"
)

// Demo times every call of the recursive and iterative Fibonacci functions
// for indices below --limit, prints both sums to stderr, and writes a report
// to stdout.
type Demo struct {
	Limit      int    `default:"${demoLimit}"  help:"Exclusive upper bound of Fibonacci indices"                        short:"n"`
	Report     string `default:"aggregated"    enum:"aggregated,raw"                                                    help:"Report kind: per-region statistics or every entry" short:"r"`
	Format     string `default:"table"         enum:"${reportFormatEnum}"                                               help:"Report encoding"                                   short:"o"`
	Where      string `help:"Keep regions whose statistics satisfy an expr-lang predicate (fields: Name, Calls, Total, Avg, Min, Max, Open)" short:"w"`
	Match      string `help:"Keep regions whose name fuzzy-matches the pattern"                                          short:"m"`
	OpenPolicy string `default:"${openPolicy}" enum:"${openPolicyEnum}"                                                 help:"Treatment of regions still running at report time"`
	Watch      bool   `help:"Render live statistics while the demo runs"`
}

// Validate implements kong's validation hook.
func (d *Demo) Validate() error {
	if d.Limit < 1 {
		return ErrInvalidFlag.With(slog.Int("limit", d.Limit))
	}

	if d.Where != "" {
		if _, err := prof.CompileFilter(d.Where); err != nil {
			return ErrInvalidFlag.With(slog.String("where", d.Where)).Wrap(err)
		}
	}

	return nil
}

// Run executes the demo command.
func (d *Demo) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	stdout, stderr := outputFrom(ctx)

	policy, err := prof.ParseOpenPolicy(d.OpenPolicy)
	if err != nil {
		return ErrInvalidFlag.Wrap(err)
	}

	format, err := prof.ParseFormat(d.Format)
	if err != nil {
		return ErrInvalidFlag.Wrap(err)
	}

	p := prof.New(
		prof.WithLogger(log.Default().With(slog.String("profiler", "demo"))),
		prof.WithOpenPolicy(policy),
	)
	p.Enable()

	log.DebugContext(ctx, "demo start",
		slog.Int("limit", d.Limit),
		slog.Bool("watch", d.Watch),
	)

	var res demo.Result
	if d.Watch {
		res, err = watch(ctx, p, d.Limit, stderr)
	} else {
		res, err = demo.Run(ctx, p, d.Limit)
	}

	if err != nil {
		return ErrDemo.With(slog.Int("limit", d.Limit)).Wrap(err)
	}

	fmt.Fprintf(stderr, "rfsum = %d\n", res.RecSum)
	fmt.Fprintf(stderr, "lfsum = %d\n", res.LinearSum)

	if err := d.report(stdout, p, format); err != nil {
		return ErrReport.With(
			slog.String("report", d.Report),
			slog.String("format", d.Format),
		).Wrap(err)
	}

	return nil
}

func (d *Demo) report(w io.Writer, p *prof.Profiler, format prof.Format) error {
	opts := []prof.ReportOption{
		prof.WithFormat(format),
		prof.WithWhere(d.Where),
		prof.WithMatch(d.Match),
	}

	if d.Report == reportRaw {
		return p.PrintAll(w, opts...)
	}

	return p.PrintAggregated(w, opts...)
}
