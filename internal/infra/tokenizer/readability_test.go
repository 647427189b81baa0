package tokenizer_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-search/internal/infra/tokenizer"
)

const articleHTML = `<!DOCTYPE html>
<html>
<head><title>Release notes</title><style>p { color: red; }</style></head>
<body>
  <script>var tracked = true;</script>
  <article>
    <h1>Compiler Improvements</h1>
    <p>The compiler got faster. Much faster, the compiler team says.</p>
  </article>
</body>
</html>`

// testConfig allows fetching from httptest servers, which listen on loopback.
func testConfig() tokenizer.Config {
	cfg := tokenizer.DefaultConfig()
	cfg.DenyPrivateIPs = false
	return cfg
}

func count(tokens []string, want string) int {
	n := 0
	for _, tok := range tokens {
		if tok == want {
			n++
		}
	}
	return n
}

func TestTokenize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(articleHTML))
	}))
	defer srv.Close()

	tok := tokenizer.New(testConfig())
	tokens, err := tok.Tokenize(context.Background(), srv.URL)
	require.NoError(t, err)

	// The <p> alone contributes two of each; extraction may also keep the <h1>.
	assert.GreaterOrEqual(t, count(tokens, "compiler"), 2)
	assert.Equal(t, 2, count(tokens, "faster"))
	// Normalized: no case, no punctuation survives.
	assert.Zero(t, count(tokens, "Compiler"))
	assert.Zero(t, count(tokens, "faster."))
	// Script bodies never become tokens.
	assert.Zero(t, count(tokens, "tracked"))
}

func TestTokenizeHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	tok := tokenizer.New(testConfig())
	_, err := tok.Tokenize(context.Background(), srv.URL)
	assert.Error(t, err)
}

func TestTokenizeEnforcesBodySizeLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><body>" + strings.Repeat("word ", 4096) + "</body></html>"))
	}))
	defer srv.Close()

	cfg := testConfig()
	cfg.MaxBodySize = 1024

	tok := tokenizer.New(cfg)
	_, err := tok.Tokenize(context.Background(), srv.URL)
	assert.ErrorIs(t, err, tokenizer.ErrBodyTooLarge)
}

func TestTokenizeRejectsDisallowedSchemes(t *testing.T) {
	tok := tokenizer.New(tokenizer.DefaultConfig())
	for _, raw := range []string{"ftp://example.com/a", "file:///etc/passwd", "gopher://example.com"} {
		_, err := tok.Tokenize(context.Background(), raw)
		assert.ErrorIs(t, err, tokenizer.ErrInvalidURL, "url %q", raw)
	}
}

func TestTokenizeRejectsPrivateAddresses(t *testing.T) {
	// With the guard on, a loopback httptest server must be refused before
	// any request is made.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(articleHTML))
	}))
	defer srv.Close()

	tok := tokenizer.New(tokenizer.DefaultConfig())
	_, err := tok.Tokenize(context.Background(), srv.URL)
	assert.ErrorIs(t, err, tokenizer.ErrPrivateIP)
}

func TestTokenizeUnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	url := srv.URL
	srv.Close()

	tok := tokenizer.New(testConfig())
	_, err := tok.Tokenize(context.Background(), url)
	assert.Error(t, err)
}
