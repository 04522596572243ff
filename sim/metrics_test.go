package sim

import (
	"os"
	"path/filepath"
	"testing"
	"testing/synctest"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_TracksRun(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		// GIVEN one clerk and customers of both classes
		m := NewMetrics()
		s, err := NewSimulator(Config{Clerks: 1}, []*Customer{
			cust(1, Low, 0, 10),
			cust(2, High, 1, 5),
			cust(3, Low, 2, 5),
		}, m)
		require.NoError(t, err)

		// WHEN the run completes
		s.Run()

		// THEN admissions are counted per class and the pool ends idle
		assert.Equal(t, 1.0, testutil.ToFloat64(m.admitted.WithLabelValues("business")))
		assert.Equal(t, 2.0, testutil.ToFloat64(m.admitted.WithLabelValues("economy")))
		assert.Equal(t, 0.0, testutil.ToFloat64(m.busyClerks))
		assert.Equal(t, 0.0, testutil.ToFloat64(m.queueLength.WithLabelValues("economy")))
		assert.Equal(t, 0.0, testutil.ToFloat64(m.queueLength.WithLabelValues("business")))
		assert.Equal(t, 2, testutil.CollectAndCount(m.waitSeconds))
		assert.Equal(t, 1, testutil.CollectAndCount(m.serviceTime))
	})
}

func TestMetrics_WriteToFile(t *testing.T) {
	m := NewMetrics()
	m.Observe(Event{Kind: EventArrival, Class: High})

	path := filepath.Join(t.TempDir(), "metrics.prom")
	require.NoError(t, m.WriteToFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `checkin_customers_admitted_total{class="business"} 1`)
}
