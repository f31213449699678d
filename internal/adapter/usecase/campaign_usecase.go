package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/observability"
)

// Notifier receives user-facing entries emitted on successful lifecycle
// changes. Satisfied by *notification.Center.
type Notifier interface {
	Add(n domain.Notification) domain.Notification
}

// Armer arms the status poller for a campaign that entered a transient
// state. Satisfied by *poller.Manager.
type Armer interface {
	Arm(campaignID string)
}

// stopConfirmTTL bounds how long a requested stop stays confirmable.
const stopConfirmTTL = 2 * time.Minute

type stopIntent struct {
	token   string
	expires time.Time
}

// CampaignUseCase orchestrates user-triggered lifecycle transitions. It
// validates transitions locally, confirms them with the external platform
// and only then mutates local state. For any single campaign at most one
// action is in flight; concurrent requests are rejected, never queued.
type CampaignUseCase struct {
	repo    port.CampaignRepository
	gateway port.StatusGateway
	center  Notifier
	logger  *slog.Logger

	mu       sync.Mutex
	inflight map[string]struct{}
	stops    map[string]stopIntent

	armer Armer
}

// NewCampaignUseCase creates the usecase with its collaborators. The poller
// armer is wired separately via SetArmer because the poller is constructed
// after the usecase in main.
func NewCampaignUseCase(repo port.CampaignRepository, gw port.StatusGateway, center Notifier, logger *slog.Logger) *CampaignUseCase {
	return &CampaignUseCase{
		repo:     repo,
		gateway:  gw,
		center:   center,
		logger:   logger,
		inflight: map[string]struct{}{},
		stops:    map[string]stopIntent{},
	}
}

var _ port.CampaignUseCase = (*CampaignUseCase)(nil)

// SetArmer wires the status poller. A nil armer disables arming.
func (u *CampaignUseCase) SetArmer(a Armer) { u.armer = a }

// Get returns a campaign by id, or port.ErrNotFound.
func (u *CampaignUseCase) Get(ctx context.Context, id string) (*domain.Campaign, error) {
	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, port.ErrNotFound
	}
	return c, nil
}

// ListByOwner returns the owner's campaigns, optionally filtered by status.
func (u *CampaignUseCase) ListByOwner(ctx context.Context, ownerID string, status *domain.Status) ([]domain.Campaign, error) {
	return u.repo.ListByOwner(ctx, ownerID, status)
}

// Create inserts a new draft campaign.
func (u *CampaignUseCase) Create(ctx context.Context, ownerID, name, platform string, budget int64) (*domain.Campaign, error) {
	c := &domain.Campaign{
		ID:       uuid.NewString(),
		OwnerID:  ownerID,
		Name:     name,
		Platform: platform,
		Budget:   budget,
		Status:   domain.StatusDraft,
	}
	if err := u.repo.CreateCampaign(ctx, c); err != nil {
		return nil, err
	}
	u.center.Add(domain.Notification{
		Severity:   domain.SeverityInfo,
		Title:      "Campaign created",
		Message:    fmt.Sprintf("Campaign %q was created as a draft.", c.Name),
		CampaignID: c.ID,
	})
	return c, nil
}

// Update edits name, platform and budget. The campaign's status is left
// untouched.
func (u *CampaignUseCase) Update(ctx context.Context, id, name, platform string, budget int64) (*domain.Campaign, error) {
	c, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = u.repo.UpdateFields(ctx, id, name, platform, budget); err != nil {
		return nil, err
	}
	c.Name = name
	c.Platform = platform
	c.Budget = budget
	c.UpdatedAt = time.Now().UTC()
	return c, nil
}

// Pause transitions an active campaign to paused.
func (u *CampaignUseCase) Pause(ctx context.Context, id string) (*domain.Campaign, error) {
	return u.transition(ctx, id, domain.StatusPaused, "pause", "Campaign paused")
}

// Resume transitions a paused campaign back to active.
func (u *CampaignUseCase) Resume(ctx context.Context, id string) (*domain.Campaign, error) {
	return u.transition(ctx, id, domain.StatusActive, "resume", "Campaign resumed")
}

// Retry re-submits a failed campaign. The resulting pending state is
// transient, so the poller is armed to pick up the platform's verdict.
func (u *CampaignUseCase) Retry(ctx context.Context, id string) (*domain.Campaign, error) {
	c, err := u.transition(ctx, id, domain.StatusPending, "retry", "Campaign re-submitted")
	if err != nil {
		return nil, err
	}
	if u.armer != nil {
		u.armer.Arm(id)
	}
	return c, nil
}

// RequestStop begins the two-step stop flow. Stopping is terminal, so the
// actual transition only happens once ConfirmStop presents the returned
// token. No gateway call is made here and nothing is mutated; cancelling
// the confirmation simply lets the token expire.
func (u *CampaignUseCase) RequestStop(ctx context.Context, id string) (string, error) {
	c, err := u.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if !c.Status.CanTransition(domain.StatusStopped) {
		return "", fmt.Errorf("%w: cannot stop a %s campaign", port.ErrInvalidTransition, c.Status)
	}
	token := uuid.NewString()
	u.mu.Lock()
	u.stops[id] = stopIntent{token: token, expires: time.Now().Add(stopConfirmTTL)}
	u.mu.Unlock()
	return token, nil
}

// ConfirmStop executes a previously requested stop. The token is consumed
// whether or not the gateway call succeeds; a failed stop requires a fresh
// RequestStop.
func (u *CampaignUseCase) ConfirmStop(ctx context.Context, id, token string) (*domain.Campaign, error) {
	u.mu.Lock()
	intent, ok := u.stops[id]
	delete(u.stops, id)
	u.mu.Unlock()
	if !ok || intent.token != token || time.Now().After(intent.expires) {
		return nil, port.ErrConfirmExpired
	}
	return u.transition(ctx, id, domain.StatusStopped, "stop", "Campaign stopped")
}

// Delete soft-deletes a campaign. Its notifications become orphaned but
// are kept.
func (u *CampaignUseCase) Delete(ctx context.Context, id string) error {
	return u.repo.SoftDelete(ctx, id)
}

// Insights returns the platform's current performance snapshot.
func (u *CampaignUseCase) Insights(ctx context.Context, id string) (domain.PerformanceSnapshot, error) {
	if _, err := u.Get(ctx, id); err != nil {
		return domain.PerformanceSnapshot{}, err
	}
	return u.gateway.ReadAnalytics(ctx, id)
}

// acquire marks the campaign busy, rejecting when an action is already in
// flight. The returned release must be called once the action resolves.
func (u *CampaignUseCase) acquire(id string) (release func(), err error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, busy := u.inflight[id]; busy {
		return nil, port.ErrActionInFlight
	}
	u.inflight[id] = struct{}{}
	return func() {
		u.mu.Lock()
		delete(u.inflight, id)
		u.mu.Unlock()
	}, nil
}

// transition runs one user-triggered status change end to end: busy guard,
// local validation, gateway confirmation, then local update and a
// notification. On any failure local state is left untouched and no
// notification is emitted.
func (u *CampaignUseCase) transition(ctx context.Context, id string, target domain.Status, action, title string) (*domain.Campaign, error) {
	release, err := u.acquire(id)
	if err != nil {
		observability.ActionsTotal.WithLabelValues(action, "busy").Inc()
		return nil, err
	}
	defer release()

	c, err := u.Get(ctx, id)
	if err != nil {
		observability.ActionsTotal.WithLabelValues(action, "error").Inc()
		return nil, err
	}
	if !c.Status.CanTransition(target) {
		observability.ActionsTotal.WithLabelValues(action, "invalid").Inc()
		return nil, fmt.Errorf("%w: %s -> %s", port.ErrInvalidTransition, c.Status, target)
	}

	if err = u.gateway.WriteStatus(ctx, id, target); err != nil {
		observability.ActionsTotal.WithLabelValues(action, "error").Inc()
		u.logger.Error("gateway rejected status write",
			slog.String("campaign_id", id),
			slog.String("target", string(target)),
			slog.Any("error", err))
		return nil, fmt.Errorf("could not %s campaign: %w", action, err)
	}

	if err = u.repo.UpdateStatus(ctx, id, target); err != nil {
		observability.ActionsTotal.WithLabelValues(action, "error").Inc()
		return nil, err
	}
	c.Status = target
	c.UpdatedAt = time.Now().UTC()

	u.center.Add(domain.Notification{
		Severity:   domain.SeverityInfo,
		Title:      title,
		Message:    fmt.Sprintf("Campaign %q is now %s.", c.Name, target),
		CampaignID: c.ID,
	})
	observability.ActionsTotal.WithLabelValues(action, "ok").Inc()
	return c, nil
}
