// sim/simulator.go
package sim

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

// Simulator is the core object that owns the customers, the clerk pool and
// the two class queues, and runs one goroutine per customer plus the
// dispatcher.
type Simulator struct {
	cfg Config
	log *logrus.Entry

	// customers is the arena, in input order; byID indexes it.
	customers []*Customer
	byID      map[int]*Customer

	// mu is the scheduler's exclusive section. It guards the arrival heap,
	// both queues, the clerk pool, wake delivery, every customer's State and
	// Clerk, and the counters below.
	mu       sync.Mutex
	arrivals *ArrivalHeap
	high     *ClassQueue
	low      *ClassQueue
	pool     *ClerkPool
	wake     *WakeRegistry
	assigned int // customers Serving or Done
	done     int

	// released carries at most one pending "a clerk was released" signal.
	released chan struct{}

	clock     Clock
	stats     *Statistics
	seq       atomic.Int64
	observers []Observer
	started   bool
}

// NewSimulator builds a simulator for customers, which must be Pending and
// have unique IDs. Their slice order breaks ties between equal arrival times.
func NewSimulator(cfg Config, customers []*Customer, observers ...Observer) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid simulator config")
	}
	if cfg.RunID == "" {
		cfg.RunID = uuid.NewString()
	}

	byID := make(map[int]*Customer, len(customers))
	wake := NewWakeRegistry(len(customers))
	for i, c := range customers {
		if c == nil {
			return nil, errors.Errorf("customer at position %d is nil", i)
		}
		if _, dup := byID[c.ID]; dup {
			return nil, errors.Errorf("duplicate customer ID %d", c.ID)
		}
		if c.Arrival < 0 || c.Service < 0 {
			return nil, errors.Errorf("customer %d has negative arrival or service time", c.ID)
		}
		if c.State != StatePending {
			return nil, errors.Errorf("customer %d is %s, want %s", c.ID, c.State, StatePending)
		}
		byID[c.ID] = c
		wake.Register(c.ID)
	}

	return &Simulator{
		cfg:       cfg,
		log:       logrus.WithField("run_id", cfg.RunID),
		customers: customers,
		byID:      byID,
		arrivals:  NewArrivalHeap(customers),
		high:      NewClassQueue(High),
		low:       NewClassQueue(Low),
		pool:      NewClerkPool(cfg.Clerks),
		wake:      wake,
		released:  make(chan struct{}, 1),
		stats:     NewStatistics(),
		observers: observers,
	}, nil
}

// RunID returns the identifier attached to this run's log lines.
func (s *Simulator) RunID() string {
	return s.cfg.RunID
}

// Customers returns the customer arena in input order. Safe to read once Run returned.
func (s *Simulator) Customers() []*Customer {
	return s.customers
}

// Customer returns the customer with the given ID.
func (s *Simulator) Customer(id int) (*Customer, bool) {
	c, ok := s.byID[id]
	return c, ok
}

// Statistics returns the wait-time aggregator.
func (s *Simulator) Statistics() *Statistics {
	return s.stats
}

// Clock returns the simulation clock. Its start is fixed when Run begins.
func (s *Simulator) Clock() Clock {
	return s.clock
}

// Run starts the clock, one task per customer and the dispatcher, and
// returns the final averages once every customer has finished service.
// The dispatcher finishing (every customer assigned) does not end the run.
// A Simulator runs once.
func (s *Simulator) Run() Summary {
	if s.started {
		panic("Run: simulator already ran")
	}
	s.started = true
	s.clock = StartClock()

	s.log.WithFields(logrus.Fields{
		"customers": len(s.customers),
		"clerks":    s.pool.Size(),
	}).Info("simulation started")

	var tasks sync.WaitGroup
	for _, c := range s.customers {
		tasks.Add(1)
		go func() {
			defer tasks.Done()
			s.serve(c)
		}()
	}

	dispatched := make(chan struct{})
	go func() {
		defer close(dispatched)
		s.dispatch()
	}()

	tasks.Wait()
	<-dispatched

	summary := s.stats.Summary()
	s.log.WithFields(logrus.Fields{
		"served":  summary.Served,
		"elapsed": s.clock.Elapsed().Round(time.Millisecond),
	}).Info("simulation finished")
	return summary
}

// emit stamps e with the next sequence number and hands it to every observer.
func (s *Simulator) emit(e Event) {
	e.Seq = s.seq.Inc()
	for _, o := range s.observers {
		o.Observe(e)
	}
}

func (s *Simulator) queueFor(class Class) *ClassQueue {
	if class == High {
		return s.high
	}
	return s.low
}

// signalRelease wakes the dispatcher without blocking. One pending signal
// is enough: the dispatcher rescans all state on every wake.
func (s *Simulator) signalRelease() {
	select {
	case s.released <- struct{}{}:
	default:
	}
}

// Progress returns how many customers have been assigned a clerk and how
// many have finished service.
func (s *Simulator) Progress() (assigned, done int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.assigned, s.done
}
