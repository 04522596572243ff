package sim

import "fmt"

// Assignment is the payload delivered to a waiting customer: which clerk
// the dispatcher gave it.
type Assignment struct {
	CustomerID int
	ClerkID    int
}

// WakeRegistry holds one single-use wake slot per customer, addressed by
// customer ID. A slot is a channel with room for exactly one Assignment, so
// a notification delivered before the customer starts waiting is kept rather
// than lost.
//
// All slots are registered before any customer task starts, so the map is
// read-only while tasks run. Notify is called under the Simulator's lock;
// Await blocks without it.
type WakeRegistry struct {
	slots map[int]chan Assignment
}

// NewWakeRegistry creates an empty registry sized for n customers.
func NewWakeRegistry(n int) *WakeRegistry {
	return &WakeRegistry{slots: make(map[int]chan Assignment, n)}
}

// Register creates a fresh, empty slot for customer id.
func (w *WakeRegistry) Register(id int) {
	if _, ok := w.slots[id]; ok {
		panic(fmt.Sprintf("Register: customer %d already has a wake slot", id))
	}
	w.slots[id] = make(chan Assignment, 1)
}

// Notify delivers a to the slot of a.CustomerID. A slot takes exactly one
// notification; a second one means the customer was assigned twice.
func (w *WakeRegistry) Notify(a Assignment) {
	slot := w.slot("Notify", a.CustomerID)
	select {
	case slot <- a:
	default:
		panic(fmt.Sprintf("Notify: customer %d was already notified", a.CustomerID))
	}
}

// Await blocks until customer id's slot has been notified and returns the
// assignment. The caller must still confirm the assignment against the
// customer's state under the Simulator's lock.
func (w *WakeRegistry) Await(id int) Assignment {
	a, ok := <-w.slot("Await", id)
	if !ok {
		panic(fmt.Sprintf("Await: wake slot of customer %d closed", id))
	}
	return a
}

func (w *WakeRegistry) slot(op string, id int) chan Assignment {
	slot, ok := w.slots[id]
	if !ok {
		panic(fmt.Sprintf("%s: customer %d has no wake slot", op, id))
	}
	return slot
}
