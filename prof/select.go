package prof

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/tictoc/pkg"
)

// Filter reports whether a region's statistics should appear in a report.
type Filter func(Stat) (bool, error)

// CompileFilter compiles an expr-lang boolean expression over the fields of
// [Stat] (Name, Calls, Total, Avg, Min, Max, Open). For example:
//
//	Calls >= 10 && Avg > 0.001
//	Name startsWith "rec_" || Max > 1
//
// The returned error wraps [pkg.ErrFilter].
func CompileFilter(src string) (Filter, error) {
	program, err := expr.Compile(src, expr.Env(Stat{}), expr.AsBool())
	if err != nil {
		return nil, pkg.ErrFilter.Wrap(err)
	}

	return func(s Stat) (bool, error) { return run(program, s) }, nil
}

func run(program *vm.Program, s Stat) (bool, error) {
	out, err := expr.Run(program, s)
	if err != nil {
		return false, pkg.ErrFilter.Wrap(err)
	}

	ok, _ := out.(bool)

	return ok, nil
}

// selectStats applies the report's name match and expression filter,
// preserving the input order.
func (r report) selectStats(stats []Stat) ([]Stat, error) {
	if r.match != "" {
		stats = matchNames(r.match, stats)
	}

	if r.where == "" {
		return stats, nil
	}

	keep, err := CompileFilter(r.where)
	if err != nil {
		return nil, err
	}

	out := stats[:0]

	for _, s := range stats {
		ok, err := keep(s)
		if err != nil {
			return nil, err
		}

		if ok {
			out = append(out, s)
		}
	}

	return out, nil
}

// matchNames keeps the stats whose name fuzzy-matches pattern.
func matchNames(pattern string, stats []Stat) []Stat {
	names := make([]string, len(stats))
	for i, s := range stats {
		names[i] = s.Name
	}

	hit := make([]bool, len(stats))
	for _, m := range fuzzy.Find(pattern, names) {
		hit[m.Index] = true
	}

	out := make([]Stat, 0, len(stats))

	for i, s := range stats {
		if hit[i] {
			out = append(out, s)
		}
	}

	return out
}
