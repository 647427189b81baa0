package text_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"news-search/internal/utils/text"
)

func TestCountRunes(t *testing.T) {
	assert.Equal(t, 5, text.CountRunes("hello"))
	assert.Equal(t, 5, text.CountRunes("こんにちは"))
	assert.Equal(t, 7, text.CountRunes("hello世界"))
	assert.Equal(t, 0, text.CountRunes(""))
}

func TestShorten(t *testing.T) {
	assert.Equal(t, "short", text.Shorten("short", 10))
	assert.Equal(t, "exact", text.Shorten("exact", 5))
	assert.Equal(t, "long…", text.Shorten("longer", 5))
	assert.Equal(t, "", text.Shorten("anything", 0))

	shortened := text.Shorten("こんにちは世界", 5)
	assert.Equal(t, 5, text.CountRunes(shortened))
	assert.Equal(t, "こんにち…", shortened)
}
