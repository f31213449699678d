package poller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/notification"
	"adpilot/internal/observability"
)

// Manager reconciles locally-held campaign status with the external
// platform while a campaign is in a transient state. One polling loop runs
// per armed campaign; reads within a loop are serialized, so a slow read
// never overlaps the next one. Disarming and Close are idempotent, and no
// tick fires after teardown.
type Manager struct {
	repo     port.CampaignRepository
	gateway  port.StatusGateway
	center   *notification.Center
	logger   *slog.Logger
	interval time.Duration

	ctx context.Context

	mu     sync.Mutex
	active map[string]context.CancelFunc
	closed bool
	wg     sync.WaitGroup
}

// NewManager creates a poller manager. All polling loops are children of
// ctx; cancelling it tears every loop down.
func NewManager(ctx context.Context, repo port.CampaignRepository, gw port.StatusGateway, center *notification.Center, logger *slog.Logger, interval time.Duration) *Manager {
	if interval <= 0 {
		interval = 3 * time.Second
	}
	return &Manager{
		repo:     repo,
		gateway:  gw,
		center:   center,
		logger:   logger,
		interval: interval,
		ctx:      ctx,
		active:   map[string]context.CancelFunc{},
	}
}

// Arm starts polling the campaign's status. Arming an already-armed or
// torn-down manager is a no-op.
func (m *Manager) Arm(campaignID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	if _, ok := m.active[campaignID]; ok {
		return
	}
	ctx, cancel := context.WithCancel(m.ctx)
	m.active[campaignID] = cancel
	observability.PollersActive.Inc()
	m.wg.Add(1)
	go m.run(ctx, campaignID)
}

// Disarm stops polling the campaign. Safe to call any number of times.
func (m *Manager) Disarm(campaignID string) {
	m.mu.Lock()
	cancel, ok := m.active[campaignID]
	m.mu.Unlock()
	if ok {
		cancel()
	}
}

// ArmPending arms a poller for every campaign currently pending. Called at
// startup so transient campaigns left over from a previous run resume
// reconciliation.
func (m *Manager) ArmPending(ctx context.Context) error {
	campaigns, err := m.repo.ListByStatus(ctx, domain.StatusPending)
	if err != nil {
		return err
	}
	for _, c := range campaigns {
		m.Arm(c.ID)
	}
	return nil
}

// Close tears down every polling loop and waits for them to exit. No tick
// fires after Close returns.
func (m *Manager) Close() {
	m.mu.Lock()
	m.closed = true
	cancels := make([]context.CancelFunc, 0, len(m.active))
	for _, cancel := range m.active {
		cancels = append(cancels, cancel)
	}
	m.mu.Unlock()
	for _, cancel := range cancels {
		cancel()
	}
	m.wg.Wait()
}

func (m *Manager) run(ctx context.Context, campaignID string) {
	defer func() {
		m.mu.Lock()
		if cancel, ok := m.active[campaignID]; ok {
			cancel()
			delete(m.active, campaignID)
		}
		m.mu.Unlock()
		observability.PollersActive.Dec()
		m.wg.Done()
	}()

	last := m.lastKnown(ctx, campaignID)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			done, next := m.tick(ctx, campaignID, last)
			if done {
				return
			}
			last = next
		}
	}
}

func (m *Manager) lastKnown(ctx context.Context, campaignID string) domain.Status {
	c, err := m.repo.GetCampaign(ctx, campaignID)
	if err != nil || c == nil {
		return domain.StatusPending
	}
	return c.Status
}

// tick performs one reconciliation read. Transient failures are logged and
// swallowed; polling continues on the next tick. It returns done=true once
// the campaign reached a settled status and the loop should disarm.
func (m *Manager) tick(ctx context.Context, campaignID string, last domain.Status) (done bool, next domain.Status) {
	status, err := m.gateway.ReadStatus(ctx, campaignID)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return true, last
		}
		observability.PollTicks.WithLabelValues("error").Inc()
		m.logger.Debug("status poll failed, will retry",
			slog.String("campaign_id", campaignID),
			slog.Any("error", err))
		return false, last
	}

	if status == last {
		observability.PollTicks.WithLabelValues("unchanged").Inc()
		return false, last
	}

	if err = m.repo.UpdateStatus(ctx, campaignID, status); err != nil {
		observability.PollTicks.WithLabelValues("error").Inc()
		m.logger.Error("persist polled status",
			slog.String("campaign_id", campaignID),
			slog.Any("error", err))
		return false, last
	}
	observability.PollTicks.WithLabelValues("changed").Inc()

	switch status {
	case domain.StatusActive:
		m.center.Add(domain.Notification{
			Severity:   domain.SeverityInfo,
			Title:      "Campaign live",
			Message:    fmt.Sprintf("Campaign %s is now live on the platform.", campaignID),
			CampaignID: campaignID,
		})
		return true, status
	case domain.StatusFailed:
		m.center.Add(domain.Notification{
			Severity:   domain.SeverityDanger,
			Title:      "Campaign setup failed",
			Message:    fmt.Sprintf("The platform could not activate campaign %s. You can retry it.", campaignID),
			CampaignID: campaignID,
		})
		return true, status
	}
	return false, status
}
