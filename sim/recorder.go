package sim

import "github.com/checkin-sim/checkin-sim/sim/trace"

// Recorder appends every event to a trace.Log.
type Recorder struct {
	Log *trace.Log
}

// NewRecorder returns a Recorder writing to a fresh log.
func NewRecorder() *Recorder {
	return &Recorder{Log: trace.NewLog()}
}

// Observe implements Observer.
func (r *Recorder) Observe(e Event) {
	r.Log.Append(trace.Record{
		Seq:        e.Seq,
		Kind:       string(e.Kind),
		At:         e.Time,
		CustomerID: e.CustomerID,
		QueueID:    e.Class.QueueID(),
		ClerkID:    e.ClerkID,
		QueueLen:   e.QueueLen,
		Wait:       e.Wait,
	})
}
