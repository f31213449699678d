package configs

import "time"

// Alerts configures the performance alert engine thresholds and the
// snapshot refresh cadence.
type Alerts struct {
	// RefreshInterval is how often analytics snapshots are pulled for
	// active and paused campaigns.
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL" envDefault:"30s"`
	// CTRFloor is the click-through rate below which a warning fires.
	CTRFloor float64 `env:"CTR_FLOOR" envDefault:"0.01"`
	// CPAIncreasePct fires a danger alert when cost per acquisition rises
	// by more than this percentage versus the previous snapshot.
	CPAIncreasePct float64 `env:"CPA_INCREASE_PCT" envDefault:"20"`
	// ROASImprovePct fires an info alert when return on ad spend improves
	// by more than this percentage versus the previous snapshot.
	ROASImprovePct float64 `env:"ROAS_IMPROVE_PCT" envDefault:"15"`
}
