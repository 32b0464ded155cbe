package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig mirrors the environment variables recognized by the client.
// Empty variables leave the existing Config values untouched.
type envConfig struct {
	GatewayBaseURL  string        `env:"REDHUB_GATEWAY_URL"`
	DatabasePath    string        `env:"REDHUB_DATABASE_PATH"`
	DefaultRedirect string        `env:"REDHUB_DEFAULT_REDIRECT"`
	RequestTimeout  time.Duration `env:"REDHUB_REQUEST_TIMEOUT"`
}

// parseEnv overlays Config with values from environment variables. Panics on
// unparsable values, matching the behavior of the JSON stage.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.GatewayBaseURL != "" {
		cfg.GatewayBaseURL = ec.GatewayBaseURL
	}
	if ec.DatabasePath != "" {
		cfg.DatabasePath = ec.DatabasePath
	}
	if ec.DefaultRedirect != "" {
		cfg.DefaultRedirect = ec.DefaultRedirect
	}
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
}
