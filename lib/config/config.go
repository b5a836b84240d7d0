// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvironmentVariable names the variable [Load] reads the config path from.
const EnvironmentVariable = "NBASCORES_CONFIG"

// Config is the master configuration for nbascores.
type Config struct {
	// Feed configures where and how feed payloads are fetched.
	Feed FeedConfig `yaml:"feed"`

	// Cache configures the optional shared feed cache.
	Cache CacheConfig `yaml:"cache"`

	// UI configures the terminal dashboard.
	UI UIConfig `yaml:"ui"`

	// Log configures log output besides the status bar.
	Log LogConfig `yaml:"log"`
}

// FeedConfig configures the upstream JSON feeds.
type FeedConfig struct {
	// BaseURL is the scheme and host of the feed server.
	// Default: http://data.nba.com
	BaseURL string `yaml:"base_url"`

	// Season is the season year used in the schedule and players
	// feed paths, e.g. "2020". Empty derives it from the requested
	// date: seasons start in the autumn, so dates before August
	// belong to the previous year's season.
	Season string `yaml:"season"`

	// Timeout bounds each HTTP request, including retries' individual
	// attempts. Default: 10s
	Timeout time.Duration `yaml:"timeout"`

	// UserAgent and Referer are sent with every request; the feed
	// server rejects requests without a browser-like referer.
	UserAgent string `yaml:"user_agent"`
	Referer   string `yaml:"referer"`

	// Dir, when set, reads feeds from a local directory instead of
	// the network.
	Dir string `yaml:"dir"`

	// Retry configures backoff for transient failures.
	Retry RetryConfig `yaml:"retry"`
}

// RetryConfig configures bounded exponential backoff.
type RetryConfig struct {
	// Attempts is the total number of tries, including the first.
	// Default: 3
	Attempts int `yaml:"attempts"`

	// BaseDelay is the wait before the second attempt; each further
	// attempt doubles it. Default: 250ms
	BaseDelay time.Duration `yaml:"base_delay"`
}

// CacheConfig configures the feed cache.
type CacheConfig struct {
	// RedisURL, when set, shares cached feed bodies through Redis
	// (redis://host:port/db). Empty keeps the cache in memory.
	RedisURL string `yaml:"redis_url"`

	// TTL is how long a cached body is kept in Redis. Default: 10m
	TTL time.Duration `yaml:"ttl"`
}

// UIConfig configures the dashboard.
type UIConfig struct {
	// TickRate is the animation tick interval. Default: 250ms
	TickRate time.Duration `yaml:"tick_rate"`

	// EnhancedGraphics selects nine-level bar glyphs instead of
	// three-level ones. Default: true
	EnhancedGraphics bool `yaml:"enhanced_graphics"`

	// Refresh is the automatic refresh interval; zero disables it.
	Refresh time.Duration `yaml:"refresh"`

	// Color is the color mode: auto, always, or never. Default: auto
	Color string `yaml:"color"`
}

// LogConfig configures the optional log file.
type LogConfig struct {
	// Output is a file path that receives JSON log records.
	Output string `yaml:"output"`

	// Level is the minimum level written: debug, info, warn, error.
	// Default: info
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Feed: FeedConfig{
			BaseURL:   "http://data.nba.com",
			Timeout:   10 * time.Second,
			UserAgent: "Mozilla/5.0 (X11; Linux x86_64) nbascores",
			Referer:   "https://www.nba.com/",
			Retry: RetryConfig{
				Attempts:  3,
				BaseDelay: 250 * time.Millisecond,
			},
		},
		Cache: CacheConfig{
			TTL: 10 * time.Minute,
		},
		UI: UIConfig{
			TickRate:         250 * time.Millisecond,
			EnhancedGraphics: true,
			Color:            "auto",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from the file named by NBASCORES_CONFIG, or
// returns [Default] when the variable is unset.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path on top of
// [Default]. Keys absent from the file keep their defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.expandVariables()
	return cfg, nil
}

func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}
	c.Feed.Dir = expandVars(c.Feed.Dir, vars)
	c.Log.Output = expandVars(c.Log.Output, vars)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVars expands ${VAR} and ${VAR:-default} patterns. Provided
// vars win over the process environment.
func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

var seasonPattern = regexp.MustCompile(`^\d{4}$`)

// Validate checks the configuration for errors. All problems are
// reported together.
func (c *Config) Validate() error {
	var errs []error

	if c.Feed.Dir == "" {
		parsed, err := url.Parse(c.Feed.BaseURL)
		if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
			errs = append(errs, fmt.Errorf("feed.base_url must be an absolute http(s) URL, got %q", c.Feed.BaseURL))
		}
	}
	if c.Feed.Season != "" && !seasonPattern.MatchString(c.Feed.Season) {
		errs = append(errs, fmt.Errorf("feed.season must be a four-digit year, got %q", c.Feed.Season))
	}
	if c.Feed.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("feed.timeout must be positive"))
	}
	if c.Feed.Retry.Attempts < 1 {
		errs = append(errs, fmt.Errorf("feed.retry.attempts must be at least 1"))
	}
	if c.Feed.Retry.BaseDelay < 0 {
		errs = append(errs, fmt.Errorf("feed.retry.base_delay must not be negative"))
	}

	if c.Cache.RedisURL != "" && c.Cache.TTL <= 0 {
		errs = append(errs, fmt.Errorf("cache.ttl must be positive when cache.redis_url is set"))
	}

	if c.UI.TickRate < 10*time.Millisecond {
		errs = append(errs, fmt.Errorf("ui.tick_rate must be at least 10ms, got %s", c.UI.TickRate))
	}
	if c.UI.Refresh < 0 {
		errs = append(errs, fmt.Errorf("ui.refresh must not be negative"))
	}
	if !contains([]string{"auto", "always", "never"}, c.UI.Color) {
		errs = append(errs, fmt.Errorf("ui.color must be one of auto, always, never; got %q", c.UI.Color))
	}

	if !contains([]string{"debug", "info", "warn", "error"}, c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level must be one of debug, info, warn, error; got %q", c.Log.Level))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

func contains(slice []string, s string) bool {
	for _, v := range slice {
		if v == s {
			return true
		}
	}
	return false
}
