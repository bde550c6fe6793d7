// Package config holds the flag and environment plumbing shared by the
// trapcat binaries. Flags default to environment variables, which default
// to the compiled-in values.
package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/brensch/trapcat/engine"
)

func EnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func EnvIntOrDefault(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		var i int
		if _, err := fmt.Sscanf(val, "%d", &i); err == nil {
			return i
		}
	}
	return defaultVal
}

func EnvDurationOrDefault(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

func EnvBoolOrDefault(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		return val == "true" || val == "1" || val == "yes"
	}
	return defaultVal
}

// BindEngine registers the board sizing flags on fs, writing into cfg.
func BindEngine(fs *flag.FlagSet, cfg *engine.Config) {
	def := engine.DefaultConfig()
	fs.IntVar(&cfg.InitialObstacles, "obstacles", EnvIntOrDefault("TRAPCAT_OBSTACLES", def.InitialObstacles), "Baseline number of obstacles on a fresh board")
	fs.IntVar(&cfg.MaxDepth, "max-depth", EnvIntOrDefault("TRAPCAT_MAX_DEPTH", def.MaxDepth), "Largest board radius (easiest difficulty)")
	fs.IntVar(&cfg.MinDepth, "min-depth", EnvIntOrDefault("TRAPCAT_MIN_DEPTH", def.MinDepth), "Smallest board radius before difficulty wraps")
}

// Logging holds the log flags every binary accepts.
type Logging struct {
	Level  string
	Format string
}

func BindLogging(fs *flag.FlagSet, l *Logging, defaultFormat string) {
	fs.StringVar(&l.Level, "log-level", EnvOrDefault("LOG_LEVEL", "info"), "Log level (debug, info, warn, error)")
	fs.StringVar(&l.Format, "log-format", EnvOrDefault("LOG_FORMAT", defaultFormat), "Log format (text, json, pretty)")
}
