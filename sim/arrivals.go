package sim

import (
	"container/heap"
	"time"
)

type pendingArrival struct {
	customer *Customer
	seq      int // input position, breaks ties between equal arrival offsets
}

// ArrivalHeap holds customers not yet admitted, ordered by
// arrival offset, then input position.
type ArrivalHeap struct {
	items []pendingArrival
}

// NewArrivalHeap builds a heap over customers. Their slice position is the
// tie-breaker, so customers that arrive at the same instant are admitted in
// input order.
func NewArrivalHeap(customers []*Customer) *ArrivalHeap {
	h := &ArrivalHeap{items: make([]pendingArrival, 0, len(customers))}
	for i, c := range customers {
		h.items = append(h.items, pendingArrival{customer: c, seq: i})
	}
	heap.Init(h)
	return h
}

// Len implements heap.Interface
func (h *ArrivalHeap) Len() int {
	return len(h.items)
}

// Less implements heap.Interface
// Order by: arrival offset → input position
func (h *ArrivalHeap) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if a.customer.Arrival != b.customer.Arrival {
		return a.customer.Arrival < b.customer.Arrival
	}
	return a.seq < b.seq
}

// Swap implements heap.Interface
func (h *ArrivalHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

// Push implements heap.Interface
func (h *ArrivalHeap) Push(x any) {
	h.items = append(h.items, x.(pendingArrival))
}

// Pop implements heap.Interface
func (h *ArrivalHeap) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	old[n-1] = pendingArrival{}
	h.items = old[0 : n-1]
	return item
}

// NextArrival returns the arrival offset of the earliest pending customer.
func (h *ArrivalHeap) NextArrival() (time.Duration, bool) {
	if len(h.items) == 0 {
		return 0, false
	}
	return h.items[0].customer.Arrival, true
}

// PopDue removes and returns, in admission order, every pending customer
// whose arrival offset is at or before now.
func (h *ArrivalHeap) PopDue(now time.Duration) []*Customer {
	var due []*Customer
	for len(h.items) > 0 && h.items[0].customer.Arrival <= now {
		due = append(due, heap.Pop(h).(pendingArrival).customer)
	}
	return due
}
