package config

import "time"

// Config holds runtime settings for the authgate CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the account API, e.g. http://localhost:8000.
//   - RequestTimeout: per-request HTTP timeout.
//   - TokenDBPath: path of the local SQLite session database.
//   - ToastDuration: how long transient notifications stay active.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	TokenDBPath    string
	ToastDuration  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8000"
	c.RequestTimeout = 15 * time.Second
	c.TokenDBPath = "session.db"
	c.ToastDuration = 3 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
