package config

import "time"

// Config holds runtime settings for the RedHub CLI.
//
// Fields:
//   - GatewayBaseURL: base URL of the RedHub REST gateway, including the
//     /api/v1 prefix.
//   - DatabasePath: path to the local SQLite file used for credential
//     metadata.
//   - DefaultRedirect: path an unknown route resolves to ("/login" or
//     "/articles").
//   - RequestTimeout: per-request timeout for gateway calls.
type Config struct {
	GatewayBaseURL  string
	DatabasePath    string
	DefaultRedirect string
	RequestTimeout  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.GatewayBaseURL = "http://127.0.0.1:8080/api/v1"
	c.DatabasePath = "redhub.db"
	c.DefaultRedirect = "/login"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
