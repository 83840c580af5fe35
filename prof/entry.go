package prof

//go:generate go tool stringer --linecomment --type State,OpenPolicy,Format --output prof_string.go

// State describes where a region, or one occurrence of it, is in the
// start/stop cycle.
type State int

const (
	Idle    State = iota // idle
	Running              // running
	Closed               // closed
)

// Entry is one measured, or still in-flight, occurrence of a region.
//
// End is meaningful only when State is [Closed]. Once closed, an Entry is
// never modified.
type Entry struct {
	Start int64 `json:"start_time" yaml:"start_time"`
	End   int64 `json:"end_time"   yaml:"end_time"`
	State State `json:"state"      yaml:"state"`
}

// Duration returns the elapsed microseconds of a closed entry. The boolean
// result is false for an entry that is still running.
func (e Entry) Duration() (int64, bool) {
	if e.State != Closed {
		return 0, false
	}

	return e.End - e.Start, true
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// series is the append-only history of a single named region.
type series struct {
	name    string
	entries []Entry
	running bool
}

// open appends a new running entry.
func (s *series) open(now int64) {
	s.entries = append(s.entries, Entry{Start: now, State: Running})
	s.running = true
}

// close completes the most recently opened entry and returns its duration.
// The caller must ensure s.running is true.
func (s *series) close(now int64) int64 {
	e := &s.entries[len(s.entries)-1]
	e.End = now
	e.State = Closed
	s.running = false

	return e.End - e.Start
}

// state reports the region's position in the Idle, Running, Closed cycle.
func (s *series) state() State {
	switch {
	case len(s.entries) == 0:
		return Idle
	case s.running:
		return Running
	default:
		return Closed
	}
}

// Series is a point-in-time copy of a region's history.
type Series struct {
	Name    string  `json:"name"    yaml:"name"`
	State   State   `json:"state"   yaml:"state"`
	Entries []Entry `json:"entries" yaml:"entries"`
}

// snapshot copies the series so that callers cannot alias the registry.
func (s *series) snapshot() Series {
	return Series{
		Name:    s.name,
		State:   s.state(),
		Entries: append([]Entry(nil), s.entries...),
	}
}
