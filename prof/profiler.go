package prof

import (
	"log/slog"
	"sync"
)

// Profiler is a registry of named regions and the gate controlling whether
// instrumentation has any effect.
//
// All methods are safe for concurrent use. Regions are keyed only by name and
// carry no nesting depth, so concurrent or nested use of the same name pairs
// start and stop calls in arrival order.
type Profiler struct {
	mutex   sync.Mutex
	config  config
	enabled bool
	series  map[string]*series
	order   []*series // creation order
}

// New returns a disabled profiler configured by opts.
func New(opts ...Option) *Profiler {
	return &Profiler{
		config: makeConfig(opts...),
		series: make(map[string]*series),
	}
}

// Configure applies opts to the profiler. Recorded history is kept.
func (p *Profiler) Configure(opts ...Option) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.config = apply(p.config, opts...)
}

// Enable turns instrumentation on. History recorded before a previous
// [Profiler.Disable] is retained and accumulation resumes into it.
func (p *Profiler) Enable() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.enabled {
		return
	}

	p.enabled = true

	p.config.logger.Debug("profiler enabled",
		slog.Int("regions", len(p.order)))
}

// Disable turns instrumentation off. History is not cleared.
//
// Regions still running are closed at the instant of the call, so a region
// cannot silently span a disabled period. The next toggle of such a name
// after re-enabling opens a new entry.
func (p *Profiler) Disable() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if !p.enabled {
		return
	}

	now := p.config.clock()
	closed := 0

	for _, s := range p.order {
		if s.running {
			s.close(now)
			closed++
		}
	}

	p.enabled = false

	p.config.logger.Debug("profiler disabled",
		slog.Int("regions", len(p.order)),
		slog.Int("closed", closed))
}

// Enabled reports whether instrumentation is on.
func (p *Profiler) Enabled() bool {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	return p.enabled
}

// Toggle opens the region called name if it is not running, returning 0, or
// closes it and returns the elapsed microseconds. It returns 0 and records
// nothing while the profiler is disabled.
//
// There is no nesting counter: the second of two consecutive calls with the
// same name always closes the region.
func (p *Profiler) Toggle(name string) int64 {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if !p.enabled {
		return 0
	}

	now := p.config.clock()

	s, ok := p.series[name]
	if !ok {
		s = &series{name: name}
		p.series[name] = s
		p.order = append(p.order, s)
	}

	if !s.running {
		s.open(now)
		p.config.logger.Trace("region opened",
			slog.String("name", name),
			slog.Int64("start", now))

		return 0
	}

	elapsed := s.close(now)
	p.config.logger.Trace("region closed",
		slog.String("name", name),
		slog.Int64("elapsed", elapsed))

	return elapsed
}

// Start toggles the region called name and returns a function that toggles
// it again. It is intended for use with defer:
//
//	defer p.Start("load")()
//
// Start follows [Profiler.Toggle] exactly: if name is already running, Start
// closes it and the returned function opens a new entry.
func (p *Profiler) Start(name string) func() int64 {
	p.Toggle(name)

	return func() int64 { return p.Toggle(name) }
}

// Time runs fn inside the region called name and returns the elapsed
// microseconds.
func (p *Profiler) Time(name string, fn func()) int64 {
	stop := p.Start(name)
	fn()

	return stop()
}

// Lookup returns a copy of the history recorded for name. The boolean result
// is false if name has never been toggled. Lookup ignores the gate.
func (p *Profiler) Lookup(name string) (Series, bool) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	s, ok := p.series[name]
	if !ok {
		return Series{}, false
	}

	return s.snapshot(), true
}

// Series returns a copy of every region's history in creation order. Series
// ignores the gate.
func (p *Profiler) Series() []Series {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	return p.snapshot()
}

// snapshot copies the registry. The caller must hold p.mutex.
func (p *Profiler) snapshot() []Series {
	out := make([]Series, len(p.order))
	for i, s := range p.order {
		out[i] = s.snapshot()
	}

	return out
}

// Reset discards all recorded history. The gate and configuration are kept.
func (p *Profiler) Reset() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	clear(p.series)
	p.order = nil

	p.config.logger.Debug("profiler reset")
}
