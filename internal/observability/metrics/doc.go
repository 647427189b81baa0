// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes the aggregator's metrics: feed crawl outcomes,
// article fetch outcomes and latency, and index growth. Series are registered
// on the default registry via promauto; exposing them over HTTP is the
// embedder's concern.
package metrics
