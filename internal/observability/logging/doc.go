// Package logging provides structured logging utilities with context propagation.
//
// This package wraps the standard library's log/slog package with helper
// functions for the logging patterns used throughout the aggregator.
//
// Key features:
//   - Text output on stderr, leaving stdout to the display layer
//   - Logger propagation through context
//   - Configurable log levels
package logging
