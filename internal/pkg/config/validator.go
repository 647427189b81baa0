// Package config provides reusable validators for configuration values.
package config

import "fmt"

// ValidateIntRange validates that a value is within a specified range.
//
// The value must be >= min and <= max (inclusive).
//
// Example:
//
//	if err := config.ValidateIntRange(cfg.MaxThreads, 1, 1024); err != nil {
//	    return fmt.Errorf("max threads: %w", err)
//	}
func ValidateIntRange(value, min, max int) error {
	if min > max {
		return fmt.Errorf("invalid range: min (%d) cannot be greater than max (%d)", min, max)
	}
	if value < min {
		return fmt.Errorf("value %d is below minimum %d", value, min)
	}
	if value > max {
		return fmt.Errorf("value %d exceeds maximum %d", value, max)
	}
	return nil
}

// ValidatePositiveInt validates that a value is strictly positive.
func ValidatePositiveInt(value int) error {
	if value <= 0 {
		return fmt.Errorf("value must be positive, got %d", value)
	}
	return nil
}
