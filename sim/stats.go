// Accumulates per-class waiting time for the final report.

package sim

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Average is a mean waiting time that may be undefined. Valid is false when
// no customer contributed to it.
type Average struct {
	Seconds float64
	Valid   bool
}

// String renders the average with two decimals, or N/A when undefined.
func (a Average) String() string {
	if !a.Valid {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", a.Seconds)
}

func average(sum time.Duration, count int) Average {
	if count == 0 {
		return Average{}
	}
	return Average{Seconds: sum.Seconds() / float64(count), Valid: true}
}

// Summary holds the final averages.
type Summary struct {
	Overall Average
	High    Average
	Low     Average
	Served  int
}

// Print writes the three summary lines.
func (s Summary) Print(w io.Writer) {
	fmt.Fprintf(w, "The average waiting time for all customers in the system is: %s seconds.\n", s.Overall)
	fmt.Fprintf(w, "The average waiting time for all business-class customers is: %s seconds.\n", s.High)
	fmt.Fprintf(w, "The average waiting time for all economy-class customers is: %s seconds.\n", s.Low)
}

type bucket struct {
	sum   time.Duration
	count int
}

// Statistics aggregates waiting time per class. It has its own lock so that
// bookkeeping never contends with assignment.
type Statistics struct {
	mu      sync.Mutex
	buckets [2]bucket // indexed by Class
}

// NewStatistics returns an empty aggregator.
func NewStatistics() *Statistics {
	return &Statistics{}
}

// Record adds one customer's wait to its class bucket. Each customer records once.
func (s *Statistics) Record(class Class, wait time.Duration) {
	if wait < 0 {
		wait = 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	b := &s.buckets[class]
	b.sum += wait
	b.count++
}

// Average returns the mean wait of one class.
func (s *Statistics) Average(class Class) Average {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := s.buckets[class]
	return average(b.sum, b.count)
}

// Count returns how many waits were recorded for class.
func (s *Statistics) Count(class Class) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buckets[class].count
}

// Overall returns the mean wait across both classes.
func (s *Statistics) Overall() Average {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, l := s.buckets[High], s.buckets[Low]
	return average(h.sum+l.sum, h.count+l.count)
}

// Summary snapshots all averages.
func (s *Statistics) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, l := s.buckets[High], s.buckets[Low]
	return Summary{
		Overall: average(h.sum+l.sum, h.count+l.count),
		High:    average(h.sum, h.count),
		Low:     average(l.sum, l.count),
		Served:  h.count + l.count,
	}
}
