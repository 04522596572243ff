package sim

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// EventKind names a point in a customer's lifecycle.
type EventKind string

const (
	// EventArrival fires when the dispatcher admits a customer.
	EventArrival EventKind = "arrival"
	// EventEnqueue fires right after admission, with the new queue length.
	EventEnqueue EventKind = "enqueue"
	// EventAssign fires when the dispatcher hands a clerk to a queued customer.
	EventAssign EventKind = "assign"
	// EventServiceStart fires when the customer's task wakes and starts service.
	EventServiceStart EventKind = "service_start"
	// EventServiceEnd fires when the service time has elapsed.
	EventServiceEnd EventKind = "service_end"
	// EventRelease fires when the customer's task hands the clerk back.
	EventRelease EventKind = "release"
)

// Event is one observable step of the simulation.
//
// Arrival, Enqueue, Assign and Release are emitted under the Simulator's
// lock, so their Seq order is the order in which the state changed.
// ServiceStart and ServiceEnd are emitted by customer tasks without it.
type Event struct {
	Seq        int64
	Kind       EventKind
	Time       time.Duration // offset from simulation start
	CustomerID int
	Class      Class
	ClerkID    int           // Assign, ServiceStart, ServiceEnd, Release
	QueueLen   int           // Enqueue: length after insert; Assign: length after removal
	Wait       time.Duration // ServiceStart
	Service    time.Duration // ServiceEnd
}

// Observer receives simulation events. Observe is called concurrently from
// the dispatcher and from customer tasks.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

// Observe calls f(e).
func (f ObserverFunc) Observe(e Event) { f(e) }

// Printer renders events as the human-readable log lines written to stdout.
type Printer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Observe writes the line for e, if the event kind has one.
func (p *Printer) Observe(e Event) {
	var line string
	switch e.Kind {
	case EventArrival:
		line = fmt.Sprintf("A customer arrives: customer ID %d.\n", e.CustomerID)
	case EventEnqueue:
		line = fmt.Sprintf("A customer enters a queue: the queue ID %d, and length of the queue %d.\n",
			e.Class.QueueID(), e.QueueLen)
	case EventServiceStart:
		line = fmt.Sprintf("A clerk starts serving a customer: start time %.2f, the customer ID %d, the clerk ID %d.\n",
			e.Time.Seconds(), e.CustomerID, e.ClerkID)
	case EventServiceEnd:
		line = fmt.Sprintf("A clerk finishes serving a customer: end time %.2f, the customer ID %d, the clerk ID %d.\n",
			e.Time.Seconds(), e.CustomerID, e.ClerkID)
	default:
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = io.WriteString(p.w, line)
}
