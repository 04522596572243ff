package tracing

import (
	"context"
	"io"
	"strconv"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/checkin-sim/checkin-sim/sim"
)

const (
	serviceName     = "checkin-sim"
	instrumentation = "github.com/checkin-sim/checkin-sim/sim"
)

// NewProvider returns a tracer provider that writes spans as JSON to w
// through the OpenTelemetry stdout exporter. Spans are exported as they end;
// call Shutdown to flush and release the exporter.
func NewProvider(w io.Writer, runID string) (*sdktrace.TracerProvider, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return nil, err
	}
	return NewProviderWithExporter(exporter, runID)
}

// NewProviderWithExporter is NewProvider for any SpanExporter.
func NewProviderWithExporter(exporter sdktrace.SpanExporter, runID string) (*sdktrace.TracerProvider, error) {
	res, err := resource.New(context.Background(),
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("run.id", runID),
		),
	)
	if err != nil {
		return nil, err
	}
	return sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)),
		sdktrace.WithResource(res),
	), nil
}

// SpanObserver is a sim.Observer that records two spans per customer:
// customer.wait from arrival to service start, and customer.service from
// service start to clerk release. Span timestamps are taken from the
// simulation clock, not from when the observer runs.
type SpanObserver struct {
	tracer trace.Tracer
	clock  func() sim.Clock

	mu      sync.Mutex
	waiting map[int]trace.Span
	serving map[int]trace.Span
}

// NewSpanObserver creates an observer that starts spans on tp. clock is
// consulted on every event because the simulation clock starts only when
// the run begins.
func NewSpanObserver(tp trace.TracerProvider, clock func() sim.Clock) *SpanObserver {
	return &SpanObserver{
		tracer:  tp.Tracer(instrumentation),
		clock:   clock,
		waiting: make(map[int]trace.Span),
		serving: make(map[int]trace.Span),
	}
}

// Observe implements sim.Observer.
func (o *SpanObserver) Observe(e sim.Event) {
	at := o.clock().At(e.Time)
	attrs := []attribute.KeyValue{
		attribute.Int("customer.id", e.CustomerID),
		attribute.String("customer.class", e.Class.String()),
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	switch e.Kind {
	case sim.EventArrival:
		_, span := o.tracer.Start(context.Background(), "customer.wait",
			trace.WithTimestamp(at), trace.WithAttributes(attrs...))
		o.waiting[e.CustomerID] = span
	case sim.EventServiceStart:
		clerk := attribute.String("clerk.id", strconv.Itoa(e.ClerkID))
		if span, ok := o.waiting[e.CustomerID]; ok {
			span.SetAttributes(clerk, attribute.Float64("wait.seconds", e.Wait.Seconds()))
			span.End(trace.WithTimestamp(at))
			delete(o.waiting, e.CustomerID)
		}
		_, span := o.tracer.Start(context.Background(), "customer.service",
			trace.WithTimestamp(at), trace.WithAttributes(append(attrs, clerk)...))
		o.serving[e.CustomerID] = span
	case sim.EventRelease:
		if span, ok := o.serving[e.CustomerID]; ok {
			span.End(trace.WithTimestamp(at))
			delete(o.serving, e.CustomerID)
		}
	}
}
