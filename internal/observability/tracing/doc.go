// Package tracing provides OpenTelemetry tracing integration.
//
// Spans are created through the API's global tracer; the CLI does not
// configure an SDK or exporter, so spans are no-ops unless the embedding
// process installs a tracer provider.
package tracing
