// Exposes the simulation as Prometheus collectors.

package sim

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics is an Observer that keeps Prometheus collectors in step with the
// simulation. Each Metrics owns its registry.
type Metrics struct {
	Registry *prometheus.Registry

	admitted    *prometheus.CounterVec
	waitSeconds *prometheus.HistogramVec
	serviceTime prometheus.Histogram
	busyClerks  prometheus.Gauge
	queueLength *prometheus.GaugeVec
}

// NewMetrics registers the simulator collectors on a new registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		Registry: registry,
		admitted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "checkin",
			Name:      "customers_admitted_total",
			Help:      "Customers admitted into a queue, by class",
		}, []string{"class"}),
		waitSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "checkin",
			Name:      "wait_seconds",
			Help:      "Time from arrival to clerk assignment, by class",
			Buckets:   []float64{0, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"class"}),
		serviceTime: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "checkin",
			Name:      "service_seconds",
			Help:      "Time a clerk spent serving one customer",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
		busyClerks: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "checkin",
			Name:      "busy_clerks",
			Help:      "Clerks currently serving a customer",
		}),
		queueLength: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "checkin",
			Name:      "queue_length",
			Help:      "Customers waiting in each class queue",
		}, []string{"class"}),
	}
}

// Observe implements Observer.
func (m *Metrics) Observe(e Event) {
	class := e.Class.String()
	switch e.Kind {
	case EventArrival:
		m.admitted.WithLabelValues(class).Inc()
	case EventEnqueue:
		m.queueLength.WithLabelValues(class).Set(float64(e.QueueLen))
	case EventAssign:
		m.queueLength.WithLabelValues(class).Set(float64(e.QueueLen))
		m.busyClerks.Inc()
	case EventServiceStart:
		m.waitSeconds.WithLabelValues(class).Observe(e.Wait.Seconds())
	case EventServiceEnd:
		m.serviceTime.Observe(e.Service.Seconds())
	case EventRelease:
		m.busyClerks.Dec()
	}
}

// WriteToFile writes the current values in the Prometheus text format.
func (m *Metrics) WriteToFile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}
