package sim

import "fmt"

// ClerkState is the occupancy of a single clerk.
type ClerkState string

const (
	ClerkIdle ClerkState = "idle"
	ClerkBusy ClerkState = "busy"
)

// ClerkPool is a fixed set of clerks identified 1..K.
//
// The pool does no locking of its own. Every call happens under the
// Simulator's lock together with the matching queue or customer mutation.
type ClerkPool struct {
	states []ClerkState // index i holds clerk i+1
	busy   int
}

// NewClerkPool creates a pool of n idle clerks. Panics if n < 1.
func NewClerkPool(n int) *ClerkPool {
	if n < 1 {
		panic(fmt.Sprintf("NewClerkPool: need at least one clerk, got %d", n))
	}
	states := make([]ClerkState, n)
	for i := range states {
		states[i] = ClerkIdle
	}
	return &ClerkPool{states: states}
}

// Size returns the number of clerks.
func (p *ClerkPool) Size() int {
	return len(p.states)
}

// Busy returns how many clerks are currently serving.
func (p *ClerkPool) Busy() int {
	return p.busy
}

// FindIdle returns the lowest-numbered idle clerk, or false if all are busy.
func (p *ClerkPool) FindIdle() (int, bool) {
	if p.busy == len(p.states) {
		return 0, false
	}
	for i, st := range p.states {
		if st == ClerkIdle {
			return i + 1, true
		}
	}
	return 0, false
}

// State returns the state of clerk id.
func (p *ClerkPool) State(id int) ClerkState {
	return p.states[p.index(id)]
}

// MarkBusy moves clerk id from idle to busy.
func (p *ClerkPool) MarkBusy(id int) {
	i := p.index(id)
	if p.states[i] != ClerkIdle {
		panic(fmt.Sprintf("MarkBusy: clerk %d is already busy", id))
	}
	p.states[i] = ClerkBusy
	p.busy++
}

// MarkIdle moves clerk id from busy to idle.
func (p *ClerkPool) MarkIdle(id int) {
	i := p.index(id)
	if p.states[i] != ClerkBusy {
		panic(fmt.Sprintf("MarkIdle: clerk %d is not busy", id))
	}
	p.states[i] = ClerkIdle
	p.busy--
}

func (p *ClerkPool) index(id int) int {
	if id < 1 || id > len(p.states) {
		panic(fmt.Sprintf("clerk pool: clerk %d out of range 1..%d", id, len(p.states)))
	}
	return id - 1
}
