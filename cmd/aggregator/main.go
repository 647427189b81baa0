// Command aggregator ingests every article reachable from an RSS feed list
// into an in-memory inverted index, then answers interactive token queries
// ranked by frequency.
//
// Usage:
//
//	aggregator <feed-list-uri>
package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"news-search/internal/infra/feedlist"
	"news-search/internal/infra/scraper"
	"news-search/internal/infra/tokenizer"
	"news-search/internal/observability/logging"
	"news-search/internal/progress"
	"news-search/internal/repl"
	"news-search/internal/usecase/aggregate"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <feed-list-uri>\n", filepath.Base(os.Args[0]))
		os.Exit(2)
	}
	feedListURI := os.Args[1]

	logger := logging.NewTextLogger(slog.LevelInfo).
		With(slog.String("crawl_id", uuid.NewString()))
	slog.SetDefault(logger)

	cfg := aggregate.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}

	client := createHTTPClient()
	printer := progress.NewPrinter(os.Stdout)

	svc := aggregate.NewService(
		cfg,
		feedlist.NewRSSFeedList(client),
		scraper.NewRSSFetcher(client),
		tokenizer.New(tokenizer.DefaultConfig()),
		printer,
		logger,
	)

	idx, err := svc.Run(context.Background(), feedListURI)
	if err != nil {
		logger.Error("ingestion aborted", slog.String("uri", feedListURI), slog.Any("error", err))
		os.Exit(1)
	}

	if err := repl.New(idx, os.Stdin, os.Stdout).Run(); err != nil {
		logger.Error("query loop failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// createHTTPClient creates an HTTP client with timeouts and connection
// pooling for feed downloads. TLS 1.2+ is enforced.
func createHTTPClient() *http.Client {
	return &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
		},
	}
}
