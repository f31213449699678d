package configs

import "time"

// HTTP holds the dashboard API server settings. Only the port is
// commonly changed; the timeouts guard against slow clients holding
// connections open.
type HTTP struct {
	// Port is the TCP port the API server listens on.
	Port uint16 `env:"PORT" envDefault:"8080"`

	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"30s"`
}
