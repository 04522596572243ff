package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize_EmptyInput(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.Arrivals)
	assert.Equal(t, 0, s.PeakServing)
	assert.NotNil(t, s.AssignOrder)
}

func TestSummarize_CountsAndPeak(t *testing.T) {
	// GIVEN two overlapping services on two clerks followed by a third
	records := []Record{
		{Seq: 1, Kind: KindArrival, CustomerID: 1, QueueID: 0},
		{Seq: 2, Kind: KindArrival, CustomerID: 2, QueueID: 1},
		{Seq: 3, Kind: KindAssign, CustomerID: 2, QueueID: 1, ClerkID: 1},
		{Seq: 4, Kind: KindAssign, CustomerID: 1, QueueID: 0, ClerkID: 2},
		{Seq: 5, Kind: KindServiceStart, CustomerID: 2, ClerkID: 1},
		{Seq: 6, Kind: KindServiceStart, CustomerID: 1, ClerkID: 2},
		{Seq: 7, Kind: KindServiceEnd, CustomerID: 2, ClerkID: 1},
		{Seq: 8, Kind: KindRelease, CustomerID: 2, ClerkID: 1},
		{Seq: 9, Kind: KindArrival, CustomerID: 3, QueueID: 0},
		{Seq: 10, Kind: KindAssign, CustomerID: 3, QueueID: 0, ClerkID: 1},
		{Seq: 11, Kind: KindServiceStart, CustomerID: 3, ClerkID: 1},
		{Seq: 12, Kind: KindServiceEnd, CustomerID: 1, ClerkID: 2},
		{Seq: 13, Kind: KindRelease, CustomerID: 1, ClerkID: 2},
		{Seq: 14, Kind: KindServiceEnd, CustomerID: 3, ClerkID: 1},
		{Seq: 15, Kind: KindRelease, CustomerID: 3, ClerkID: 1},
	}

	// WHEN summarized
	s := Summarize(records)

	// THEN counts match and peak concurrency reflects the overlap
	assert.Equal(t, 3, s.Arrivals)
	assert.Equal(t, 3, s.Assignments)
	assert.Equal(t, 3, s.Starts)
	assert.Equal(t, 3, s.Ends)
	assert.Equal(t, 3, s.Releases)
	assert.Equal(t, 2, s.PeakServing)
	assert.Equal(t, []int{2}, s.AssignOrder[1])
	assert.Equal(t, []int{1, 3}, s.AssignOrder[0])
	assert.Equal(t, map[int]int{1: 2, 2: 1}, s.ClerkServed)
	assert.Equal(t, map[int]int{1: 1, 2: 1, 3: 1}, s.StartsPerID)
	assert.Equal(t, map[int]int{1: 1, 2: 1, 3: 1}, s.ReleasePerID)
}
