// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Feed.BaseURL != "http://data.nba.com" {
		t.Errorf("expected base_url=http://data.nba.com, got %s", cfg.Feed.BaseURL)
	}
	if cfg.Feed.Timeout != 10*time.Second {
		t.Errorf("expected timeout=10s, got %s", cfg.Feed.Timeout)
	}
	if cfg.Feed.Retry.Attempts != 3 || cfg.Feed.Retry.BaseDelay != 250*time.Millisecond {
		t.Errorf("unexpected retry defaults: %+v", cfg.Feed.Retry)
	}
	if cfg.UI.TickRate != 250*time.Millisecond || !cfg.UI.EnhancedGraphics {
		t.Errorf("unexpected ui defaults: %+v", cfg.UI)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadWithoutEnvironmentReturnsDefaults(t *testing.T) {
	t.Setenv(EnvironmentVariable, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Feed.BaseURL != Default().Feed.BaseURL {
		t.Errorf("expected default base_url, got %s", cfg.Feed.BaseURL)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nbascores.yaml")
	writeFile(t, configPath, `
feed:
  season: "2020"
ui:
  tick_rate: 500ms
`)
	t.Setenv(EnvironmentVariable, configPath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Feed.Season != "2020" {
		t.Errorf("expected season=2020, got %q", cfg.Feed.Season)
	}
	if cfg.UI.TickRate != 500*time.Millisecond {
		t.Errorf("expected tick_rate=500ms, got %s", cfg.UI.TickRate)
	}
}

func TestLoadFileMergesOverDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nbascores.yaml")
	writeFile(t, configPath, `
feed:
  base_url: https://mirror.example.com
  timeout: 3s
  retry:
    attempts: 5
cache:
  redis_url: redis://localhost:6379/2
ui:
  enhanced_graphics: false
  refresh: 30s
`)

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if cfg.Feed.BaseURL != "https://mirror.example.com" {
		t.Errorf("base_url = %s", cfg.Feed.BaseURL)
	}
	if cfg.Feed.Timeout != 3*time.Second {
		t.Errorf("timeout = %s", cfg.Feed.Timeout)
	}
	if cfg.Feed.Retry.Attempts != 5 {
		t.Errorf("retry.attempts = %d", cfg.Feed.Retry.Attempts)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Feed.Retry.BaseDelay != 250*time.Millisecond {
		t.Errorf("retry.base_delay = %s, want default", cfg.Feed.Retry.BaseDelay)
	}
	if cfg.Cache.TTL != 10*time.Minute {
		t.Errorf("cache.ttl = %s, want default", cfg.Cache.TTL)
	}
	if cfg.UI.EnhancedGraphics {
		t.Error("enhanced_graphics should be false")
	}
	if cfg.UI.Refresh != 30*time.Second {
		t.Errorf("refresh = %s", cfg.UI.Refresh)
	}
}

func TestLoadFileErrors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	configPath := filepath.Join(t.TempDir(), "broken.yaml")
	writeFile(t, configPath, "feed: [unclosed")
	if _, err := LoadFile(configPath); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoadFileExpandsPaths(t *testing.T) {
	t.Setenv("HOME", "/home/fan")
	configPath := filepath.Join(t.TempDir(), "nbascores.yaml")
	writeFile(t, configPath, `
feed:
  dir: ${HOME}/feeds
log:
  output: ${NBASCORES_LOG_DIR:-/tmp}/nbascores.log
`)
	t.Setenv("NBASCORES_LOG_DIR", "")

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Feed.Dir != "/home/fan/feeds" {
		t.Errorf("feed.dir = %s", cfg.Feed.Dir)
	}
	if cfg.Log.Output != "/tmp/nbascores.log" {
		t.Errorf("log.output = %s", cfg.Log.Output)
	}
}

func TestExpandVars(t *testing.T) {
	t.Setenv("NBASCORES_TEST_VAR", "from-env")
	vars := map[string]string{"HOME": "/home/fan"}

	tests := []struct {
		input, want string
	}{
		{"${HOME}/x", "/home/fan/x"},
		{"${NBASCORES_TEST_VAR}", "from-env"},
		{"${NBASCORES_UNSET_VAR:-fallback}", "fallback"},
		{"plain", "plain"},
	}
	for _, test := range tests {
		if got := expandVars(test.input, vars); got != test.want {
			t.Errorf("expandVars(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"relative base url", func(c *Config) { c.Feed.BaseURL = "data.nba.com" }, "feed.base_url"},
		{"base url ignored offline", func(c *Config) { c.Feed.BaseURL = ""; c.Feed.Dir = "/feeds" }, ""},
		{"bad season", func(c *Config) { c.Feed.Season = "20-21" }, "feed.season"},
		{"zero timeout", func(c *Config) { c.Feed.Timeout = 0 }, "feed.timeout"},
		{"no attempts", func(c *Config) { c.Feed.Retry.Attempts = 0 }, "feed.retry.attempts"},
		{"redis without ttl", func(c *Config) { c.Cache.RedisURL = "redis://x"; c.Cache.TTL = 0 }, "cache.ttl"},
		{"tick too fast", func(c *Config) { c.UI.TickRate = time.Millisecond }, "ui.tick_rate"},
		{"bad color", func(c *Config) { c.UI.Color = "rainbow" }, "ui.color"},
		{"bad level", func(c *Config) { c.Log.Level = "trace" }, "log.level"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := Default()
			test.mutate(cfg)
			err := cfg.Validate()
			if test.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), test.wantErr) {
				t.Fatalf("Validate() = %v, want error mentioning %q", err, test.wantErr)
			}
		})
	}
}

func TestValidateReportsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Feed.Timeout = 0
	cfg.UI.Color = "rainbow"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected errors")
	}
	for _, want := range []string{"feed.timeout", "ui.color"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}
