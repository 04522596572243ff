package workload

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"

	"github.com/checkin-sim/checkin-sim/sim"
	"github.com/checkin-sim/checkin-sim/internal/testutil"
)

func TestParse_ValidFile(t *testing.T) {
	// GIVEN a header and records with assorted whitespace and a blank line
	input := "3\n1:0,2,60\n\n 2 : 1 , 4 , 70 \n3:7,5,50\n"

	customers, err := Parse(strings.NewReader(input))

	// THEN each record becomes a Pending customer in input order
	require.NoError(t, err)
	require.Len(t, customers, 3)
	assert.Equal(t, 1, customers[0].ID)
	assert.Equal(t, sim.Low, customers[0].Class)
	assert.Equal(t, 200*time.Millisecond, customers[0].Arrival)
	assert.Equal(t, 6*time.Second, customers[0].Service)
	assert.Equal(t, sim.High, customers[1].Class)
	assert.Equal(t, 400*time.Millisecond, customers[1].Arrival)
	assert.Equal(t, sim.High, customers[2].Class, "any non-zero class code is business")
	for _, c := range customers {
		assert.Equal(t, sim.StatePending, c.State)
	}
}

func TestParse_ZeroCustomers(t *testing.T) {
	customers, err := Parse(strings.NewReader("0\n"))
	require.NoError(t, err)
	assert.Empty(t, customers)
}

func TestParse_ShortFile_AcceptedWithWarning(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	customers, err := Parse(strings.NewReader("4\n1:0,0,1\n2:1,0,1\n"))

	require.NoError(t, err)
	assert.Len(t, customers, 2)
	require.NotNil(t, hook.LastEntry())
	assert.Contains(t, hook.LastEntry().Message, "declares 4 customers but ends after 2")
}

func TestParse_ExtraRecords_IgnoredWithWarning(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	customers, err := Parse(strings.NewReader("1\n1:0,0,1\n2:1,0,1\nnot even a record\n"))

	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, 1, customers[0].ID)
	require.NotNil(t, hook.LastEntry())
	assert.Contains(t, hook.LastEntry().Message, "ignoring records after the declared 1 customers")
}

func TestParse_Malformed(t *testing.T) {
	tests := map[string]struct {
		input  string
		line   int
		reason string
	}{
		"empty input":         {input: "", line: 1, reason: "missing customer count"},
		"header not a number": {input: "three\n", line: 1, reason: "non-negative integer"},
		"negative header":     {input: "\n-1\n", line: 2, reason: "non-negative integer"},
		"missing colon":       {input: "1\n1,0,2,3\n", line: 2, reason: "missing ':'"},
		"too few fields":      {input: "1\n1:0,2\n", line: 2, reason: "want class,arrival,service"},
		"id not an integer":   {input: "1\nx:0,2,3\n", line: 2, reason: "customer ID"},
		"arrival not integer": {input: "1\n1:0,2.5,3\n", line: 2, reason: "arrival is not an integer"},
		"negative arrival":    {input: "1\n1:0,-2,3\n", line: 2, reason: "arrival must not be negative"},
		"negative service":    {input: "1\n1:0,2,-3\n", line: 2, reason: "service must not be negative"},
		"duplicate id":        {input: "2\n5:0,1,1\n5:1,2,2\n", line: 3, reason: "duplicate customer ID, first seen on line 2"},
		"arrival overflows":   {input: "1\n1:0,100000000000,1\n", line: 2, reason: "arrival is too large"},
		"service overflows":   {input: "1\n\n1:0,1,100000000000\n", line: 3, reason: "service is too large"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))

			var malformed *MalformedRecordError
			require.True(t, errors.As(err, &malformed), "got %v", err)
			assert.Equal(t, tt.line, malformed.Line)
			assert.Contains(t, malformed.Reason, tt.reason)
		})
	}
}

func TestParse_LargestTimeAccepted(t *testing.T) {
	// GIVEN an arrival at the last tick a Duration can hold
	input := fmt.Sprintf("1\n1:0,%d,0\n", maxTicks)

	customers, err := Parse(strings.NewReader(input))

	// THEN it parses without wrapping negative
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, time.Duration(maxTicks)*tick, customers[0].Arrival)
	assert.Positive(t, customers[0].Arrival)
}

func TestLoad_SortsByArrival(t *testing.T) {
	// GIVEN a file whose records are not in arrival order, with a tie
	path := testutil.WriteInput(t, "4", "1:0,9,1", "2:1,3,1", "3:0,0,1", "4:0,3,1")

	customers, err := Load(context.Background(), afs.New(), path)

	// THEN customers are ordered by arrival, ties keeping input order
	require.NoError(t, err)
	var got []int
	for _, c := range customers {
		got = append(got, c.ID)
	}
	assert.Equal(t, []int{3, 2, 4, 1}, got)
}

func TestLoad_MissingFile_InputOpenError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.txt")

	_, err := Load(context.Background(), afs.New(), path)

	var openErr *InputOpenError
	require.True(t, errors.As(err, &openErr), "got %v", err)
	assert.Equal(t, path, openErr.URL)
}

func TestLoad_MalformedFile_KeepsLine(t *testing.T) {
	path := testutil.WriteInput(t, "2", "1:0,1,1", "oops")

	_, err := Load(context.Background(), afs.New(), path)

	var malformed *MalformedRecordError
	require.True(t, errors.As(err, &malformed), "got %v", err)
	assert.Equal(t, 3, malformed.Line)
	assert.Contains(t, err.Error(), path)
}

func TestBreakdown(t *testing.T) {
	customers := []*sim.Customer{
		sim.NewCustomer(1, sim.High, 0, 0),
		sim.NewCustomer(2, sim.Low, 0, 0),
		sim.NewCustomer(3, sim.High, 0, 0),
	}
	business, economy := Breakdown(customers)
	assert.Equal(t, 2, business)
	assert.Equal(t, 1, economy)
}
