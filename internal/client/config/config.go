// Package config handles configuration for the CLI client: defaults, an
// optional JSON file and command-line flags. Later sources take precedence.
package config

import "time"

// Config holds runtime settings for the users CLI client.
//
// Fields:
//   - BaseURL: root URL of the users API, without a trailing slash.
//   - Timeout: per-request HTTP timeout.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8000"
	c.Timeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
