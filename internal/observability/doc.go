// Package observability provides the observability infrastructure for the
// aggregator: structured logging, Prometheus metrics, and OpenTelemetry
// tracing.
//
// Subpackages:
//   - logging: Structured logging utilities with slog
//   - metrics: Prometheus metrics registry and recorders
//   - tracing: OpenTelemetry tracing integration
//
// Example usage:
//
//	import (
//	    "log/slog"
//
//	    "news-search/internal/observability/logging"
//	    "news-search/internal/observability/metrics"
//	)
//
//	func main() {
//	    logger := logging.NewTextLogger(slog.LevelInfo)
//	    logger.Info("aggregator started")
//
//	    metrics.RecordFeedCrawled(true)
//	}
package observability
