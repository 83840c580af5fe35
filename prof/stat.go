package prof

import (
	"cmp"
	"math"
	"slices"
)

// Stat summarizes every closed entry recorded under one name. Durations are
// in seconds.
type Stat struct {
	Name  string  `json:"name"           yaml:"name"`
	Calls int     `json:"calls"          yaml:"calls"`
	Total float64 `json:"total_s"        yaml:"total_s"`
	Avg   float64 `json:"avg_s"          yaml:"avg_s"`
	Min   float64 `json:"min_s"          yaml:"min_s"`
	Max   float64 `json:"max_s"          yaml:"max_s"`
	Open  int     `json:"open,omitempty" yaml:"open,omitempty"`
}

// microsPerSecond converts [Clock] readings to seconds.
const microsPerSecond = 1e6

// Aggregate returns one [Stat] per region in creation order, applying the
// profiler's [OpenPolicy]. It returns nil while the profiler is disabled.
//
// Aggregate is pure: calling it twice without intervening toggles yields
// identical results.
func (p *Profiler) Aggregate() []Stat {
	p.mutex.Lock()
	if !p.enabled {
		p.mutex.Unlock()

		return nil
	}

	snap, policy := p.snapshot(), p.config.policy
	p.mutex.Unlock()

	return aggregate(snap, policy)
}

// aggregate computes statistics from closed entries only; a duration is never
// derived from a running entry. Under [OpenExclude] a region with no closed
// entries yields no Stat and Open is always zero.
func aggregate(snap []Series, policy OpenPolicy) []Stat {
	stats := make([]Stat, 0, len(snap))

	for _, s := range snap {
		st := Stat{Name: s.Name, Min: math.Inf(1), Max: math.Inf(-1)}

		for _, e := range s.Entries {
			d, ok := e.Duration()
			if !ok {
				st.Open++

				continue
			}

			sec := float64(d) / microsPerSecond
			st.Calls++
			st.Total += sec
			st.Min = min(st.Min, sec)
			st.Max = max(st.Max, sec)
		}

		if st.Calls == 0 {
			if policy == OpenExclude || st.Open == 0 {
				continue
			}

			st.Min, st.Max = 0, 0
		} else {
			st.Avg = st.Total / float64(st.Calls)
		}

		if policy == OpenExclude {
			st.Open = 0
		}

		stats = append(stats, st)
	}

	return stats
}

// SortByAvg orders stats by descending average duration. The sort is stable,
// so regions with equal averages keep their relative order.
func SortByAvg(stats []Stat) {
	slices.SortStableFunc(stats, func(a, b Stat) int {
		return cmp.Compare(b.Avg, a.Avg)
	})
}
