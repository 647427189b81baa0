package limiter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-search/internal/limiter"
)

func TestOrigin(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"plain http", "http://example.com/path", "http://example.com"},
		{"host lowercased", "http://Example.COM/a", "http://example.com"},
		{"scheme lowercased", "HTTP://example.com", "http://example.com"},
		{"default http port elided", "http://example.com:80/a", "http://example.com"},
		{"default https port elided", "https://example.com:443/a", "https://example.com"},
		{"explicit port kept", "http://example.com:8080/a", "http://example.com:8080"},
		{"https port 80 kept", "https://example.com:80/a", "https://example.com:80"},
		{"query and fragment ignored", "https://news.example.org/a?b=c#d", "https://news.example.org"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := limiter.Origin(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOriginSameServerDifferentPaths(t *testing.T) {
	o1, err := limiter.Origin("http://example.com/story/1")
	require.NoError(t, err)
	o2, err := limiter.Origin("http://example.com/story/2")
	require.NoError(t, err)
	assert.Equal(t, o1, o2)
}

func TestOriginRejectsUnusableURLs(t *testing.T) {
	for _, raw := range []string{"", "not a url at all\x7f", "/relative/path", "mailto:"} {
		_, err := limiter.Origin(raw)
		assert.Error(t, err, "url %q", raw)
	}
}
