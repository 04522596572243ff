package trace

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog_Records_SortedBySeq(t *testing.T) {
	// GIVEN records appended out of order from several goroutines
	l := NewLog()
	var wg sync.WaitGroup
	for seq := int64(10); seq > 0; seq-- {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Append(Record{Seq: seq, Kind: KindArrival})
		}()
	}
	wg.Wait()

	// WHEN the records are read back
	got := l.Records()

	// THEN all are present in sequence order
	assert.Len(t, got, 10)
	for i, r := range got {
		assert.Equal(t, int64(i+1), r.Seq)
	}
}

func TestLog_Records_ReturnsCopy(t *testing.T) {
	l := NewLog()
	l.Append(Record{Seq: 1, CustomerID: 7})

	got := l.Records()
	got[0].CustomerID = 99

	assert.Equal(t, 7, l.Records()[0].CustomerID)
}

func TestFilter(t *testing.T) {
	records := []Record{
		{Seq: 1, Kind: KindArrival, CustomerID: 1},
		{Seq: 2, Kind: KindAssign, CustomerID: 1},
		{Seq: 3, Kind: KindArrival, CustomerID: 2},
	}

	got := Filter(records, KindArrival)

	assert.Equal(t, []Record{records[0], records[2]}, got)
	assert.Empty(t, Filter(records, KindRelease))
}
