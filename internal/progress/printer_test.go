package progress_test

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-search/internal/progress"
)

func TestArticlePairsNeverInterleave(t *testing.T) {
	var out bytes.Buffer
	p := progress.NewPrinter(&out)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p.Article(fmt.Sprintf("title-%d", i), fmt.Sprintf("http://host/u%d", i))
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 100)
	for i := 0; i < len(lines); i += 2 {
		assert.True(t, strings.HasPrefix(lines[i], "Parsing "), "line %d: %q", i, lines[i])
		assert.True(t, strings.Contains(lines[i+1], "[at "), "line %d: %q", i+1, lines[i+1])

		// Each pair describes the same article.
		id := strings.TrimSuffix(strings.TrimPrefix(lines[i], `Parsing "title-`), `"`)
		assert.Contains(t, lines[i+1], "/u"+id)
	}
}

func TestLineFormats(t *testing.T) {
	var out bytes.Buffer
	p := progress.NewPrinter(&out)
	p.Line("Begin full download of feed \"%s\"", "http://x/feed")
	assert.Equal(t, "Begin full download of feed \"http://x/feed\"\n", out.String())
}
