package port

import (
	"context"

	"adpilot/internal/core/domain"
)

// CampaignRepository defines the persistence layer for campaigns. It is an
// outbound port in hexagonal architecture. Not-found lookups return
// (nil, nil) rather than an error so callers can decide how to surface it.
type CampaignRepository interface {
	// GetCampaign returns a campaign by id, or nil when it does not exist
	// or has been soft-deleted.
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)

	// ListByOwner returns the owner's campaigns, newest first. When status
	// is non-nil only campaigns in that status are returned.
	ListByOwner(ctx context.Context, ownerID string, status *domain.Status) ([]domain.Campaign, error)

	// ListByStatus returns all campaigns in any of the given statuses,
	// regardless of owner. Used by background jobs such as the analytics
	// refresher.
	ListByStatus(ctx context.Context, statuses ...domain.Status) ([]domain.Campaign, error)

	// CreateCampaign inserts a new campaign and fills in its timestamps.
	CreateCampaign(ctx context.Context, c *domain.Campaign) error

	// UpdateStatus sets the campaign's status and bumps updated_at.
	UpdateStatus(ctx context.Context, id string, status domain.Status) error

	// UpdateFields applies explicit user edits to the descriptive
	// attributes and bumps updated_at.
	UpdateFields(ctx context.Context, id string, name, platform string, budget int64) error

	// SoftDelete marks the campaign deleted without removing the row.
	SoftDelete(ctx context.Context, id string) error
}
