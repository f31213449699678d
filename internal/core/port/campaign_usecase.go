package port

import (
	"context"

	"adpilot/internal/core/domain"
)

// CampaignUseCase defines the business operations for campaign lifecycle
// management. This is the primary port into the application domain. Mock
// implementations can be generated from this interface for testing.
//
// Concurrency contract: for a single campaign only one action may be in
// flight at a time; a second concurrent Pause/Resume/Stop/Retry is rejected
// with ErrActionInFlight rather than queued. Local status is only written
// after the gateway confirms the transition.
type CampaignUseCase interface {
	// Get returns a campaign by id, or ErrNotFound.
	Get(ctx context.Context, id string) (*domain.Campaign, error)

	// ListByOwner returns the owner's campaigns, optionally filtered by
	// status.
	ListByOwner(ctx context.Context, ownerID string, status *domain.Status) ([]domain.Campaign, error)

	// Create inserts a new draft campaign owned by ownerID.
	Create(ctx context.Context, ownerID, name, platform string, budget int64) (*domain.Campaign, error)

	// Update edits descriptive attributes. Status cannot be changed this
	// way; lifecycle transitions go through the dedicated actions.
	Update(ctx context.Context, id, name, platform string, budget int64) (*domain.Campaign, error)

	// Pause transitions an active campaign to paused.
	Pause(ctx context.Context, id string) (*domain.Campaign, error)

	// Resume transitions a paused campaign back to active.
	Resume(ctx context.Context, id string) (*domain.Campaign, error)

	// RequestStop begins the two-step stop flow and returns a confirmation
	// token. No gateway call is made and no state changes; an unconfirmed
	// stop simply expires.
	RequestStop(ctx context.Context, id string) (string, error)

	// ConfirmStop executes the stop previously requested for the campaign.
	// The token must match an unexpired RequestStop. Stopped is terminal.
	ConfirmStop(ctx context.Context, id, token string) (*domain.Campaign, error)

	// Retry re-submits a failed campaign for processing (failed → pending).
	Retry(ctx context.Context, id string) (*domain.Campaign, error)

	// Delete soft-deletes a campaign.
	Delete(ctx context.Context, id string) error

	// Insights returns the platform's current performance snapshot.
	Insights(ctx context.Context, id string) (domain.PerformanceSnapshot, error)
}
