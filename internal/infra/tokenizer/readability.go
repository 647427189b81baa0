// Package tokenizer fetches article HTML and turns it into normalized tokens.
// Readable text is extracted with the Mozilla Readability algorithm; pages
// Readability cannot make sense of fall back to a whole-document text
// extraction so boilerplate-heavy pages still contribute something.
package tokenizer

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"github.com/sony/gobreaker"

	"news-search/internal/utils/text"
)

// Sentinel errors for article fetching.
var (
	// ErrInvalidURL indicates the article URL is malformed or uses a
	// disallowed scheme
	ErrInvalidURL = errors.New("invalid article url")

	// ErrPrivateIP indicates the article URL resolves to a private address
	ErrPrivateIP = errors.New("url resolves to private address")

	// ErrBodyTooLarge indicates the response exceeded the configured size limit
	ErrBodyTooLarge = errors.New("response body too large")

	// ErrNoContent indicates the page yielded no extractable text
	ErrNoContent = errors.New("no readable content found")
)

// ReadabilityTokenizer implements aggregate.Tokenizer.
//
// Thread safety: ReadabilityTokenizer is safe for concurrent use; the
// aggregator runs up to its thread gate capacity of these in parallel.
type ReadabilityTokenizer struct {
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
	cfg     Config
}

// New creates a tokenizer with the given limits. The HTTP client enforces
// TLS 1.2+, connection pooling, the redirect cap and the overall timeout.
func New(cfg Config) *ReadabilityTokenizer {
	t := &ReadabilityTokenizer{
		cfg: cfg,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "article-fetch",
			MaxRequests: 5,
			Interval:    60 * time.Second,
			Timeout:     60 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
				return counts.Requests >= 10 && failureRatio >= 0.6
			},
		}),
	}

	t.client = &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= t.cfg.MaxRedirects {
				return fmt.Errorf("stopped after %d redirects", len(via))
			}
			// Redirect targets are as attacker-controlled as the
			// original URL and get the same SSRF check.
			if err := validateURL(req.URL.String(), t.cfg.DenyPrivateIPs); err != nil {
				return fmt.Errorf("redirect target rejected: %w", err)
			}
			return nil
		},
	}
	return t
}

// Tokenize fetches the article at articleURL and returns its normalized
// tokens in document order. The slice may be empty when the page's text
// holds no letters or digits; a page whose extracted text is empty fails
// with ErrNoContent.
func (t *ReadabilityTokenizer) Tokenize(ctx context.Context, articleURL string) ([]string, error) {
	if err := validateURL(articleURL, t.cfg.DenyPrivateIPs); err != nil {
		return nil, fmt.Errorf("tokenize %q: %w", articleURL, err)
	}

	result, err := t.breaker.Execute(func() (interface{}, error) {
		return t.doFetch(ctx, articleURL)
	})
	if err != nil {
		return nil, fmt.Errorf("tokenize %q: %w", articleURL, err)
	}
	return result.([]string), nil
}

func (t *ReadabilityTokenizer) doFetch(ctx context.Context, articleURL string) ([]string, error) {
	reqCtx, cancel := context.WithTimeout(ctx, t.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, articleURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "NewsSearchBot/1.0")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	limitedReader := io.LimitReader(resp.Body, t.cfg.MaxBodySize+1)
	htmlBytes, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	if int64(len(htmlBytes)) > t.cfg.MaxBodySize {
		return nil, fmt.Errorf("%w: exceeds %d bytes", ErrBodyTooLarge, t.cfg.MaxBodySize)
	}

	content, err := extractText(htmlBytes, finalURL(resp, articleURL))
	if err != nil {
		return nil, err
	}
	return text.Tokenize(content), nil
}

// finalURL returns the post-redirect URL when available, so relative links
// inside the document resolve against the page that was actually served.
func finalURL(resp *http.Response, articleURL string) *url.URL {
	if resp.Request != nil && resp.Request.URL != nil {
		return resp.Request.URL
	}
	u, err := url.Parse(articleURL)
	if err != nil {
		return nil
	}
	return u
}

// extractText pulls readable text from the HTML, preferring Readability and
// falling back to stripped whole-document text.
func extractText(htmlBytes []byte, pageURL *url.URL) (string, error) {
	article, err := readability.FromReader(bytes.NewReader(htmlBytes), pageURL)
	if err == nil && article.TextContent != "" {
		return article.TextContent, nil
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(htmlBytes))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}
	doc.Find("script, style, noscript").Remove()
	content := doc.Text()
	if content == "" {
		return "", ErrNoContent
	}
	return content, nil
}
