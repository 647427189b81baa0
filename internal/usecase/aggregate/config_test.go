package aggregate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"news-search/internal/usecase/aggregate"
)

func TestDefaultConfig(t *testing.T) {
	cfg := aggregate.DefaultConfig()
	assert.Equal(t, 8, cfg.MaxFeeds)
	assert.Equal(t, 12, cfg.MaxPerServer)
	assert.Equal(t, 64, cfg.MaxThreads)
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidateCollectsErrors(t *testing.T) {
	cfg := aggregate.Config{MaxFeeds: 0, MaxPerServer: 12, MaxThreads: 2048}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "max feeds")
	assert.Contains(t, err.Error(), "max threads")
}
