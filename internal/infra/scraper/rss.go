// Package scraper provides implementations for fetching RSS/Atom feeds.
// It uses the gofeed library to parse feed content behind a circuit breaker,
// so when most feed fetches keep failing, further fetches fail fast instead
// of consuming feed gate time. The breaker is shared by every feed the
// fetcher parses; it is not kept per host.
package scraper

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/sony/gobreaker"

	"news-search/internal/domain/entity"
)

// RSSFetcher implements aggregate.FeedParser using the gofeed library.
type RSSFetcher struct {
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
}

// NewRSSFetcher creates a new RSSFetcher with the given HTTP client.
func NewRSSFetcher(client *http.Client) *RSSFetcher {
	return &RSSFetcher{
		client: client,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "feed-fetch",
			MaxRequests: 5,
			Interval:    60 * time.Second,
			Timeout:     60 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
				return counts.Requests >= 5 && failureRatio >= 0.6
			},
		}),
	}
}

// ParseFeed retrieves and parses one RSS/Atom feed. Items that lack a title
// or link carry no article identity and are dropped.
func (f *RSSFetcher) ParseFeed(ctx context.Context, feedURL string) ([]entity.Article, error) {
	result, err := f.breaker.Execute(func() (interface{}, error) {
		return f.doFetch(ctx, feedURL)
	})
	if err != nil {
		return nil, fmt.Errorf("fetch feed %q: %w", feedURL, err)
	}
	return result.([]entity.Article), nil
}

func (f *RSSFetcher) doFetch(ctx context.Context, feedURL string) ([]entity.Article, error) {
	fp := gofeed.NewParser()
	fp.UserAgent = "NewsSearchBot/1.0"
	fp.Client = f.client

	feed, err := fp.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, err
	}

	articles := make([]entity.Article, 0, len(feed.Items))
	for _, it := range feed.Items {
		art := entity.Article{Title: it.Title, URL: it.Link}
		if err := art.Validate(); err != nil {
			continue
		}
		articles = append(articles, art)
	}
	return articles, nil
}
