// Package config loads runtime configuration for the RedHub CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv), prefix REDHUB_.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the RedHub gateway (including /api/v1)
//	-d string   path to the local credential database
//	-r string   default redirect for unknown routes
//
// # JSON schema
//
// The JSON loader uses timex.Duration for timeouts, so values can be either
// strings like "10s" or integer nanoseconds:
//
//	{
//	  "gateway_base_url": "http://127.0.0.1:8080/api/v1",
//	  "database_path": "redhub.db",
//	  "default_redirect": "/login",
//	  "request_timeout": "10s"
//	}
//
// Primary API
//
//   - type Config                     — holds the gateway URL, database path and redirect policy
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, env, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config
