package engine

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the board sizing knobs. Depth cycles from MaxDepth down to
// MinDepth and wraps.
type Config struct {
	InitialObstacles int `json:"initial_obstacles"`
	MaxDepth         int `json:"max_depth"`
	MinDepth         int `json:"min_depth"`
}

func DefaultConfig() Config {
	return Config{
		InitialObstacles: 4,
		MaxDepth:         7,
		MinDepth:         3,
	}
}

func (c Config) Validate() error {
	if c.InitialObstacles < 0 {
		return fmt.Errorf("%w: initial obstacles %d < 0", ErrInvalidConfig, c.InitialObstacles)
	}
	if c.MinDepth < 1 {
		return fmt.Errorf("%w: min depth %d < 1", ErrInvalidConfig, c.MinDepth)
	}
	if c.MaxDepth < c.MinDepth {
		return fmt.Errorf("%w: max depth %d < min depth %d", ErrInvalidConfig, c.MaxDepth, c.MinDepth)
	}
	return nil
}
