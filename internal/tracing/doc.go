// Package tracing turns simulation events into OpenTelemetry spans. All
// instrumentation is kept here so the sim package does not depend on the
// OpenTelemetry SDK.
package tracing
