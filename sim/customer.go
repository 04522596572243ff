// Defines the Customer struct that models a single check-in customer in the simulation.
// Tracks class, arrival and service times, lifecycle state and the clerk serving it.

package sim

import (
	"fmt"
	"time"
)

// Class is the priority tier of a customer.
type Class int

const (
	// Low is the economy class, served from queue 0.
	Low Class = 0
	// High is the business class, served from queue 1 ahead of Low.
	High Class = 1
)

// ClassFromCode maps an input class code to a Class: 0 is Low, anything else is High.
func ClassFromCode(code int) Class {
	if code == 0 {
		return Low
	}
	return High
}

// QueueID returns the queue number printed in queue-entry events.
func (c Class) QueueID() int {
	return int(c)
}

func (c Class) String() string {
	if c == High {
		return "business"
	}
	return "economy"
}

// CustomerState represents the lifecycle state of a customer.
type CustomerState string

const (
	StatePending CustomerState = "pending"
	StateQueued  CustomerState = "queued"
	StateServing CustomerState = "serving"
	StateDone    CustomerState = "done"
)

// Customer models one customer's lifecycle. State, Clerk and ServedBy are
// owned by the Simulator and only change under its lock: the dispatcher moves
// a customer Pending -> Queued -> Serving, the customer's own task moves it
// Serving -> Done.
type Customer struct {
	ID      int           // Unique identifier from the input file
	Class   Class         // Priority tier
	Arrival time.Duration // Offset from simulation start
	Service time.Duration // Time a clerk spends serving this customer

	State    CustomerState
	Clerk    int // Clerk ID while Serving, 0 otherwise
	ServedBy int // Clerk that served the customer, kept after Done; 0 before assignment
}

// NewCustomer returns a Pending customer.
func NewCustomer(id int, class Class, arrival, service time.Duration) *Customer {
	return &Customer{
		ID:      id,
		Class:   class,
		Arrival: arrival,
		Service: service,
		State:   StatePending,
	}
}

// This method returns a human-readable string representation of a Customer.
func (c Customer) String() string {
	return fmt.Sprintf("Customer: (ID: %d, Class: %s, State: %s, Arrival: %v, Service: %v)", c.ID, c.Class, c.State, c.Arrival, c.Service)
}
