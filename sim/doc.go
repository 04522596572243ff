// Package sim is the concurrent core of the check-in desk simulator.
//
// # Reading Guide
//
// Start with these files:
//   - customer.go: Customer lifecycle (pending → queued → serving → done)
//   - dispatcher.go: the single goroutine that admits arrivals and assigns clerks
//   - task.go: one goroutine per customer, from wake-up to clerk release
//
// # Concurrency
//
// A Simulator owns one mutex, the exclusive section. The dispatcher and the
// customer tasks mutate customers, queues and the clerk pool only while
// holding it. Service is slept with no lock held.
//
// Each customer has a single-use wake slot (wake.go) that the dispatcher
// fills with its Assignment, so a notification sent before the task waits is
// never lost. Tasks signal a released clerk over a channel of capacity one.
//
// Statistics has its own mutex and is never locked inside the exclusive
// section.
//
// # Observers
//
// Every state change is reported as an Event carrying a sequence number.
// Printer writes the event lines, Recorder keeps a trace.Log, and Metrics
// maintains Prometheus collectors. internal/tracing turns events into
// OpenTelemetry spans.
package sim
