package sim

import "time"

// Clock measures simulated time as wall-clock time elapsed since a fixed
// start instant. The start is set once, before any goroutine reads it.
type Clock struct {
	start time.Time
}

// StartClock returns a Clock whose zero is now.
func StartClock() Clock {
	return Clock{start: time.Now()}
}

// Elapsed returns the time since the clock started.
func (c Clock) Elapsed() time.Duration {
	return time.Since(c.start)
}

// Start returns the instant the clock started.
func (c Clock) Start() time.Time {
	return c.start
}

// At returns the wall-clock instant of offset d.
func (c Clock) At(d time.Duration) time.Time {
	return c.start.Add(d)
}
