package scraper_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-search/internal/domain/entity"
	"news-search/internal/infra/scraper"
)

const feedXML = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Tech Feed</title>
    <link>http://example.com</link>
    <description>tech news</description>
    <item>
      <title>Go 1.25 released</title>
      <link>http://example.com/go-release</link>
    </item>
    <item>
      <title></title>
      <link>http://example.com/untitled</link>
    </item>
    <item>
      <title>Kernel patch lands</title>
      <link>http://example.com/kernel</link>
    </item>
  </channel>
</rss>`

func TestParseFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(feedXML))
	}))
	defer srv.Close()

	f := scraper.NewRSSFetcher(srv.Client())
	articles, err := f.ParseFeed(context.Background(), srv.URL)
	require.NoError(t, err)

	// The untitled item has no article identity and is dropped.
	assert.Equal(t, []entity.Article{
		{Title: "Go 1.25 released", URL: "http://example.com/go-release"},
		{Title: "Kernel patch lands", URL: "http://example.com/kernel"},
	}, articles)
}

func TestParseFeedHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := scraper.NewRSSFetcher(srv.Client())
	_, err := f.ParseFeed(context.Background(), srv.URL)
	assert.Error(t, err)
}

func TestParseFeedMalformedDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>not a feed</html>"))
	}))
	defer srv.Close()

	f := scraper.NewRSSFetcher(srv.Client())
	_, err := f.ParseFeed(context.Background(), srv.URL)
	assert.Error(t, err)
}
