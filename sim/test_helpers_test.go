package sim

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/checkin-sim/checkin-sim/sim/trace"
)

// cust builds a Pending customer with times in tenths of a second, the unit
// of the input file.
func cust(id int, class Class, arrivalTenths, serviceTenths int) *Customer {
	return NewCustomer(id, class,
		time.Duration(arrivalTenths)*100*time.Millisecond,
		time.Duration(serviceTenths)*100*time.Millisecond)
}

// result is everything a test may want to inspect after a run.
type result struct {
	sim     *Simulator
	summary Summary
	records []trace.Record
	trace   *trace.Summary
	output  string
}

// runSim runs a simulation with a recorder and a printer attached. Call it
// inside synctest.Test so the simulator's channels and timers belong to the
// bubble.
func runSim(t *testing.T, clerks int, customers ...*Customer) result {
	t.Helper()

	rec := NewRecorder()
	var out bytes.Buffer
	s, err := NewSimulator(Config{Clerks: clerks, RunID: "test"}, customers, rec, NewPrinter(&out))
	require.NoError(t, err)

	summary := s.Run()
	records := rec.Log.Records()
	return result{
		sim:     s,
		summary: summary,
		records: records,
		trace:   trace.Summarize(records),
		output:  out.String(),
	}
}

// startOf returns the service-start record of customer id.
func startOf(t *testing.T, records []trace.Record, id int) trace.Record {
	t.Helper()
	for _, r := range trace.Filter(records, trace.KindServiceStart) {
		if r.CustomerID == id {
			return r
		}
	}
	t.Fatalf("no service start recorded for customer %d", id)
	return trace.Record{}
}
