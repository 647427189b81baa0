// Package metrics provides centralized Prometheus metrics for the aggregator.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Ingestion metrics track crawl throughput and failure modes.
var (
	// FeedsCrawledTotal counts feed downloads by outcome
	FeedsCrawledTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feeds_crawled_total",
			Help: "Total number of feeds crawled",
		},
		[]string{"status"},
	)

	// ArticlesIndexedTotal counts article tokenizations by outcome
	ArticlesIndexedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "articles_indexed_total",
			Help: "Total number of articles fetched and tokenized",
		},
		[]string{"status"},
	)

	// TokensIndexedTotal counts token occurrences merged into the index
	TokensIndexedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tokens_indexed_total",
			Help: "Total number of token occurrences merged into the index",
		},
	)

	// ArticleFetchDuration measures article fetch+tokenize duration in seconds
	ArticleFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "article_fetch_duration_seconds",
			Help:    "Article fetch and tokenize duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// ActiveArticleWorkers tracks article workers currently holding the thread gate
	ActiveArticleWorkers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "active_article_workers",
			Help: "Number of article workers currently running",
		},
	)
)
