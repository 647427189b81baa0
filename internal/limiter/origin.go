// Package limiter provides per-origin concurrency limiting for article
// downloads. Every URL is reduced to its origin (scheme, host, port) and each
// origin gets its own fixed-capacity counting gate, so no single server is
// ever hit by more than the configured number of simultaneous fetches.
package limiter

import (
	"fmt"
	"net/url"
	"strings"

	"news-search/internal/domain/entity"
)

// Origin reduces a URL to its scheme://host[:port] identity. Scheme and host
// are lowercased and default ports are elided (80 for http, 443 for https),
// so http://Example.com:80/a and http://example.com/b share one origin.
// This is the single normalization used everywhere a URL is keyed by server.
func Origin(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: parse url %q: %v", entity.ErrInvalidInput, rawURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: url %q has no origin", entity.ErrInvalidInput, rawURL)
	}

	scheme := strings.ToLower(u.Scheme)
	host := strings.ToLower(u.Hostname())
	port := u.Port()

	switch {
	case port == "":
	case scheme == "http" && port == "80":
		port = ""
	case scheme == "https" && port == "443":
		port = ""
	}

	if port != "" {
		return scheme + "://" + host + ":" + port, nil
	}
	return scheme + "://" + host, nil
}
