// Package feedlist fetches and parses the feed list: an RSS document whose
// items each point at a feed. It is the one collaborator whose failure is
// fatal to ingestion, so it carries no circuit breaker — it runs exactly once.
package feedlist

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mmcdole/gofeed"

	"news-search/internal/usecase/aggregate"
)

// RSSFeedList implements aggregate.FeedListParser using the gofeed library.
type RSSFeedList struct {
	client *http.Client
}

// NewRSSFeedList creates a feed list parser using the given HTTP client.
func NewRSSFeedList(client *http.Client) *RSSFeedList {
	return &RSSFeedList{client: client}
}

// ParseFeedList retrieves the document at uri and returns one FeedRef per
// item, in document order. Items without a link cannot name a feed and are
// skipped with a warning.
func (l *RSSFeedList) ParseFeedList(ctx context.Context, uri string) ([]aggregate.FeedRef, error) {
	fp := gofeed.NewParser()
	fp.UserAgent = "NewsSearchBot/1.0"
	fp.Client = l.client

	feed, err := fp.ParseURLWithContext(uri, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed list %q: %w", uri, err)
	}

	refs := make([]aggregate.FeedRef, 0, len(feed.Items))
	for _, it := range feed.Items {
		if it.Link == "" {
			slog.Warn("feed list item has no link, skipping",
				slog.String("title", it.Title))
			continue
		}
		refs = append(refs, aggregate.FeedRef{
			Title: it.Title,
			URL:   it.Link,
		})
	}

	return refs, nil
}
