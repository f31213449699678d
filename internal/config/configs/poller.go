package configs

import "time"

// Poller configures the background status reconciliation loop that runs
// while a campaign is in a transient state.
type Poller struct {
	// Interval is the cadence at which the platform is queried for the
	// authoritative status of a pending campaign.
	Interval time.Duration `env:"INTERVAL" envDefault:"3s"`
}
