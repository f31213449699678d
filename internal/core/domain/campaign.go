package domain

import "time"

// Campaign represents an advertising campaign managed through the dashboard.
// Budgets are stored in integer units (e.g. cents). Status is only ever
// mutated through the usecase or the status poller, never by handlers.
type Campaign struct {
	ID        string
	OwnerID   string
	Name      string
	Platform  string
	Budget    int64
	Status    Status
	Deleted   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
