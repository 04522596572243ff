package trace

// Summary aggregates statistics from a recorded run.
type Summary struct {
	Arrivals     int
	Assignments  int
	Starts       int
	Ends         int
	Releases     int
	PeakServing  int           // most customers holding a clerk at once
	AssignOrder  map[int][]int // queue ID → customer IDs in assignment order
	ClerkServed  map[int]int   // clerk ID → customers served
	StartsPerID  map[int]int   // customer ID → service-start count
	ReleasePerID map[int]int   // customer ID → release count
}

// Summarize computes aggregate statistics from records sorted by sequence
// number (as returned by Log.Records). Safe for nil or empty input.
func Summarize(records []Record) *Summary {
	summary := &Summary{
		AssignOrder:  make(map[int][]int),
		ClerkServed:  make(map[int]int),
		StartsPerID:  make(map[int]int),
		ReleasePerID: make(map[int]int),
	}

	serving := 0
	for _, r := range records {
		switch r.Kind {
		case KindArrival:
			summary.Arrivals++
		case KindAssign:
			summary.Assignments++
			summary.AssignOrder[r.QueueID] = append(summary.AssignOrder[r.QueueID], r.CustomerID)
			serving++
			if serving > summary.PeakServing {
				summary.PeakServing = serving
			}
		case KindServiceStart:
			summary.Starts++
			summary.StartsPerID[r.CustomerID]++
		case KindServiceEnd:
			summary.Ends++
			summary.ClerkServed[r.ClerkID]++
		case KindRelease:
			summary.Releases++
			summary.ReleasePerID[r.CustomerID]++
			serving--
		}
	}
	return summary
}
