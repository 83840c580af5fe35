package prof

import "time"

// Clock returns the current time in microseconds since an arbitrary fixed
// epoch. Successive readings from one Clock must never decrease.
type Clock func() int64

// epoch is the process-wide reference point for [Monotonic].
var epoch = time.Now()

// Monotonic is the default [Clock]. It measures microseconds elapsed since
// package initialization using the runtime's monotonic clock reading, so it
// is unaffected by wall-clock adjustments.
func Monotonic() int64 {
	return time.Since(epoch).Microseconds()
}
