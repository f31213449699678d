package config

import (
	"github.com/caarlos0/env/v11"

	"adpilot/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
//
// The Config value is loaded once at startup and passed explicitly to the
// components that need it; there is no module-level configuration state.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is not
	// currently used by the application but may be useful for logging or
	// metrics.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. Environment variables
	// prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Gateway configures access to the external advertising platform.
	// Environment variables prefixed with GATEWAY_ will populate this struct.
	Gateway configs.Gateway `envPrefix:"GATEWAY_"`

	// Poll configures the transient-status reconciliation loop. Environment
	// variables prefixed with POLL_ will populate this struct.
	Poll configs.Poller `envPrefix:"POLL_"`

	// Alerts configures the performance alert engine. Environment variables
	// prefixed with ALERTS_ will populate this struct.
	Alerts configs.Alerts `envPrefix:"ALERTS_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing fails, an error is returned. All fields are loaded with their
// specified defaults when no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
