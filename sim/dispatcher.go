package sim

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// dispatch is the dispatcher loop. It admits due arrivals, hands idle clerks
// to queued customers (business class first), and returns once every
// customer has been assigned a clerk. Between passes it sleeps until the
// next arrival is due or a clerk is released, whichever comes first.
func (s *Simulator) dispatch() {
	for {
		s.mu.Lock()
		now := s.clock.Elapsed()
		s.admitLocked(now)
		s.assignLocked(s.high, now)
		s.assignLocked(s.low, now)
		finished := s.assigned == len(s.customers)
		next, pending := s.arrivals.NextArrival()
		s.mu.Unlock()

		if finished {
			s.log.Debug("dispatcher: every customer assigned")
			return
		}

		if !pending {
			// Nothing left to admit, so some clerk is busy (the queues would
			// have drained above otherwise) and a release is bound to come.
			<-s.released
			continue
		}

		wait := next - s.clock.Elapsed()
		if wait <= 0 {
			continue
		}
		timer := time.NewTimer(wait)
		select {
		case <-s.released:
		case <-timer.C:
		}
		timer.Stop()
	}
}

// admitLocked moves every customer whose arrival time has passed from
// Pending to Queued, in arrival order. Caller holds s.mu.
func (s *Simulator) admitLocked(now time.Duration) {
	for _, c := range s.arrivals.PopDue(now) {
		if c.State != StatePending {
			panic(fmt.Sprintf("admit: customer %d is %s, want %s", c.ID, c.State, StatePending))
		}
		c.State = StateQueued
		q := s.queueFor(c.Class)
		q.Enqueue(c)

		s.log.WithFields(logrus.Fields{
			"customer": c.ID,
			"class":    c.Class,
			"queue":    q.Len(),
		}).Debug("dispatcher: admitted")
		s.emit(Event{Kind: EventArrival, Time: now, CustomerID: c.ID, Class: c.Class})
		s.emit(Event{Kind: EventEnqueue, Time: now, CustomerID: c.ID, Class: c.Class, QueueLen: q.Len()})
	}
}

// assignLocked pairs idle clerks with customers from the head of q until
// either runs out. Dequeue, clerk state, customer state and the wake-up are
// one step under s.mu, so no customer is ever assigned while still queued.
func (s *Simulator) assignLocked(q *ClassQueue, now time.Duration) {
	for q.Len() > 0 {
		clerk, ok := s.pool.FindIdle()
		if !ok {
			return
		}
		c := q.Dequeue()
		if c.State != StateQueued {
			panic(fmt.Sprintf("assign: customer %d is %s, want %s", c.ID, c.State, StateQueued))
		}
		s.pool.MarkBusy(clerk)
		c.State = StateServing
		c.Clerk = clerk
		c.ServedBy = clerk
		s.assigned++
		s.wake.Notify(Assignment{CustomerID: c.ID, ClerkID: clerk})

		s.log.WithFields(logrus.Fields{
			"customer": c.ID,
			"class":    c.Class,
			"clerk":    clerk,
		}).Debug("dispatcher: assigned")
		s.emit(Event{Kind: EventAssign, Time: now, CustomerID: c.ID, Class: c.Class, ClerkID: clerk, QueueLen: q.Len()})
	}
}
