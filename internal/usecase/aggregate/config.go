package aggregate

import (
	"fmt"

	"news-search/internal/pkg/config"
)

// Config holds the concurrency budgets for one ingestion run.
//
// The three budgets are independent: MaxFeeds bounds how many feeds are being
// parsed at once, MaxThreads bounds how many articles are being fetched and
// tokenized process-wide, and MaxPerServer bounds how many of those fetches
// may target the same origin. There are no environment or flag overrides;
// the caller owns the values.
type Config struct {
	// MaxFeeds is the capacity of the feed gate.
	// Default: 8
	MaxFeeds int

	// MaxPerServer is the capacity of each per-origin limiter.
	// Default: 12
	MaxPerServer int

	// MaxThreads is the capacity of the thread gate.
	// Default: 64
	MaxThreads int
}

// DefaultConfig returns the concurrency budgets the aggregator ships with.
func DefaultConfig() Config {
	return Config{
		MaxFeeds:     8,
		MaxPerServer: 12,
		MaxThreads:   64,
	}
}

// Validate checks that every budget is inside a sane operating range.
// If multiple fields are invalid, all errors are collected and returned together.
func (c Config) Validate() error {
	var errs []error

	if err := config.ValidateIntRange(c.MaxFeeds, 1, 256); err != nil {
		errs = append(errs, fmt.Errorf("max feeds: %w", err))
	}
	if err := config.ValidateIntRange(c.MaxPerServer, 1, 256); err != nil {
		errs = append(errs, fmt.Errorf("max per server: %w", err))
	}
	if err := config.ValidateIntRange(c.MaxThreads, 1, 1024); err != nil {
		errs = append(errs, fmt.Errorf("max threads: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed: %v", errs)
	}
	return nil
}
