// Package tracing wraps OpenTelemetry so that comparisons can be traced
// without the rest of the code importing the SDK. Until Init or
// InitWithExporter installs a provider, spans are no-ops.
package tracing
