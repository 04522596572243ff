// Package trace records the lifecycle events of a simulation run for later
// analysis. It stores pure data types and does not import sim.
package trace

import "time"

// Record captures one simulation event.
type Record struct {
	Seq        int64
	Kind       string
	At         time.Duration // offset from simulation start
	CustomerID int
	QueueID    int // 0 economy, 1 business
	ClerkID    int
	QueueLen   int
	Wait       time.Duration
}

// Record kinds, matching the simulator's event kinds.
const (
	KindArrival      = "arrival"
	KindEnqueue      = "enqueue"
	KindAssign       = "assign"
	KindServiceStart = "service_start"
	KindServiceEnd   = "service_end"
	KindRelease      = "release"
)
