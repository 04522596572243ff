package trace

import (
	"sort"
	"sync"
)

// Log collects records from concurrent writers.
type Log struct {
	mu      sync.Mutex
	records []Record
}

// NewLog creates an empty Log.
func NewLog() *Log {
	return &Log{records: make([]Record, 0)}
}

// Append adds a record.
func (l *Log) Append(r Record) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, r)
}

// Records returns a copy of all records sorted by sequence number.
func (l *Log) Records() []Record {
	l.mu.Lock()
	out := make([]Record, len(l.records))
	copy(out, l.records)
	l.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
	return out
}

// Filter returns the records of the given kind, in sequence order.
func Filter(records []Record, kind string) []Record {
	var out []Record
	for _, r := range records {
		if r.Kind == kind {
			out = append(out, r)
		}
	}
	return out
}
