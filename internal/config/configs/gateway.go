package configs

import "time"

// Gateway holds configuration for the external advertising platform API.
// Every request carries the access token and is bounded by Timeout; a
// request that exceeds it is treated as a transient failure.
type Gateway struct {
	// BaseURL is the root of the platform's REST API.
	BaseURL string `env:"BASE_URL" envDefault:"https://graph.adplatform.example/v19.0"`
	// AccessToken authenticates requests to the platform.
	AccessToken string `env:"ACCESS_TOKEN"`
	// Timeout bounds each outbound request.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"5s"`
}
