// Package config loads the runtime settings of the MDD CLI. Values come
// from defaults, then an optional JSON file (-c/-config), then command-line
// flags; later sources win.
package config

import "time"

// Config holds runtime settings for the MDD CLI.
//
// Fields:
//   - APIBaseURL: base URL of the MDD REST API.
//   - RequestTimeout: per-request HTTP timeout.
//   - StorePath: path of the local store database holding the token.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	StorePath      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080"
	c.RequestTimeout = 10 * time.Second
	c.StorePath = "mdd.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
