package sim

import (
	"fmt"
	"time"
)

// serve is the lifecycle of one customer's task: wait for a clerk, record
// the wait, hold the clerk for the service time, then give it back.
func (s *Simulator) serve(c *Customer) {
	a := s.wake.Await(c.ID)

	s.mu.Lock()
	if a.CustomerID != c.ID || c.State != StateServing || c.Clerk != a.ClerkID {
		s.mu.Unlock()
		panic(fmt.Sprintf("serve: customer %d woken for clerk %d but is %s on clerk %d",
			c.ID, a.ClerkID, c.State, c.Clerk))
	}
	s.mu.Unlock()

	start := s.clock.Elapsed()
	wait := start - c.Arrival
	s.stats.Record(c.Class, wait)
	s.emit(Event{Kind: EventServiceStart, Time: start, CustomerID: c.ID, Class: c.Class, ClerkID: a.ClerkID, Wait: wait})

	// No lock is held while the clerk is busy with this customer.
	time.Sleep(c.Service)

	end := s.clock.Elapsed()
	s.emit(Event{Kind: EventServiceEnd, Time: end, CustomerID: c.ID, Class: c.Class, ClerkID: a.ClerkID, Service: end - start})

	s.mu.Lock()
	s.pool.MarkIdle(a.ClerkID)
	c.State = StateDone
	c.Clerk = 0
	s.done++
	s.emit(Event{Kind: EventRelease, Time: s.clock.Elapsed(), CustomerID: c.ID, Class: c.Class, ClerkID: a.ClerkID})
	s.mu.Unlock()

	s.signalRelease()
}
