package domain

import "time"

// Severity classifies a notification or alert for display purposes.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// Notification is a user-facing entry in the notification center. Entries
// sourced from the alert engine and from lifecycle events share this shape.
// CampaignID is a weak reference: a notification survives deletion of the
// campaign it refers to.
type Notification struct {
	ID         string    `json:"id"`
	Severity   Severity  `json:"severity"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	CampaignID string    `json:"campaign_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	IsRead     bool      `json:"is_read"`
}
