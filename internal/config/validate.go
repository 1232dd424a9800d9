package config

import (
	"fmt"
	"slices"
	"strings"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "console"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.MaxBatch <= 0 {
		return fmt.Errorf("server.max_batch must be > 0 (got %d)", c.Server.MaxBatch)
	}
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if c.RateLimit.PerMinute < 0 {
		return fmt.Errorf("ratelimit.per_minute must be >= 0 (got %d)", c.RateLimit.PerMinute)
	}
	if c.RateLimit.PerMinute > 0 && c.RateLimit.Burst <= 0 {
		return fmt.Errorf("ratelimit.burst must be > 0 when the limiter is on (got %d)", c.RateLimit.Burst)
	}
	if c.RateLimit.PerMinute > 0 && c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("ratelimit.cleanup_interval must be > 0 when the limiter is on (got %s)", c.RateLimit.CleanupInterval)
	}
	if c.Cache.Enabled && c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be > 0 when the cache is on (got %s)", c.Cache.TTL)
	}
	if strings.TrimSpace(c.Lexicon.DataDir) == "" {
		return fmt.Errorf("lexicon.data_dir must not be empty")
	}
	return nil
}

func (l *LogConfig) validate() error {
	l.Level = strings.ToLower(l.Level)
	l.Format = strings.ToLower(l.Format)
	if !slices.Contains(logLevels, l.Level) {
		return fmt.Errorf("level must be one of %v (got %q)", logLevels, l.Level)
	}
	if !slices.Contains(logFormats, l.Format) {
		return fmt.Errorf("format must be one of %v (got %q)", logFormats, l.Format)
	}
	return nil
}

// Addr returns the listen address host:port.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Split returns the comma-separated list s as trimmed, non-empty items.
func Split(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
