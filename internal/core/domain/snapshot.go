package domain

import "time"

// PerformanceSnapshot is a point-in-time set of delivery metrics for one
// campaign, as reported by the external platform. A new snapshot supersedes
// the previous one; snapshots are never merged.
type PerformanceSnapshot struct {
	CampaignID  string    `json:"campaign_id"`
	Impressions int64     `json:"impressions"`
	Clicks      int64     `json:"clicks"`
	CTR         float64   `json:"ctr"`
	Spend       int64     `json:"spend"`
	Conversions int64     `json:"conversions"`
	CPA         float64   `json:"cpa"`
	ROAS        float64   `json:"roas"`
	TakenAt     time.Time `json:"taken_at"`
}
