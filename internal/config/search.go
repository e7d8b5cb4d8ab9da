package config

import (
	"fmt"
	"time"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// MaxSearchDepth bounds the configurable search depth. The search cost grows
// with branching-factor^depth, so deeper values are rejected up front.
const MaxSearchDepth = 8

// SearchConfig holds settings for the engine's move search.
type SearchConfig struct {
	// Enabled asks the front end to search for an engine move.
	Enabled bool

	// Depth is the search depth in plies.
	Depth int

	// Workers is the number of root moves searched concurrently.
	Workers int

	// Timeout bounds the search; zero means no limit. On expiry the best
	// root move found so far is used.
	Timeout time.Duration
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Depth:   3,
		Workers: 1,
	}
}

// Validate checks that the search configuration is valid.
func (s *SearchConfig) Validate() error {
	if s.Depth < 1 || s.Depth > MaxSearchDepth {
		return fmt.Errorf("search depth %d outside 1..%d: %w", s.Depth, MaxSearchDepth, errors.ErrInvalidConfig)
	}
	if s.Workers < 1 {
		return fmt.Errorf("worker count %d must be positive: %w", s.Workers, errors.ErrInvalidConfig)
	}
	if s.Timeout < 0 {
		return fmt.Errorf("negative timeout %v: %w", s.Timeout, errors.ErrInvalidConfig)
	}
	return nil
}
