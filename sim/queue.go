// Implements the ClassQueue, which holds admitted customers of one priority class
// until a clerk is assigned to them.

package sim

import (
	"fmt"
	"strings"
)

// ClassQueue is a FIFO queue of customers waiting for a clerk.
// Insertion order is admission order; the dispatcher only ever takes the head.
type ClassQueue struct {
	class Class
	queue []*Customer
}

// NewClassQueue returns an empty queue for the given class.
func NewClassQueue(class Class) *ClassQueue {
	return &ClassQueue{class: class}
}

// Class returns the priority class this queue holds.
func (q *ClassQueue) Class() Class {
	return q.class
}

// Enqueue adds a customer to the back of the queue.
func (q *ClassQueue) Enqueue(c *Customer) {
	if c == nil {
		panic("Enqueue: customer must not be nil")
	}
	if c.Class != q.class {
		panic(fmt.Sprintf("Enqueue: customer %d has class %s, queue holds %s", c.ID, c.Class, q.class))
	}
	q.queue = append(q.queue, c)
}

// Len returns the number of customers in the queue.
func (q *ClassQueue) Len() int {
	return len(q.queue)
}

// Peek returns the customer at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (q *ClassQueue) Peek() *Customer {
	if len(q.queue) == 0 {
		return nil
	}
	return q.queue[0]
}

// Dequeue removes and returns the customer at the front of the queue.
// Returns nil if the queue is empty.
func (q *ClassQueue) Dequeue() *Customer {
	if len(q.queue) == 0 {
		return nil
	}
	c := q.queue[0]
	q.queue[0] = nil
	q.queue = q.queue[1:]
	return c
}

func (q *ClassQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, c := range q.queue {
		sb.WriteString(fmt.Sprint(c.ID))
		if i < len(q.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
