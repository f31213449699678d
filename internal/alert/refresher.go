package alert

import (
	"context"
	"log/slog"
	"time"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// Refresher periodically pulls analytics snapshots for active and paused
// campaigns and feeds them to the engine. Alerts are only meaningful for
// campaigns that are (or recently were) delivering, so other lifecycle
// states are skipped. Individual read failures are logged and skipped; the
// loop keeps running until its context is cancelled.
type Refresher struct {
	repo     port.CampaignRepository
	gateway  port.StatusGateway
	engine   *Engine
	logger   *slog.Logger
	interval time.Duration

	tracked map[string]struct{}
}

// NewRefresher wires the refresher loop. Run must be called to start it.
func NewRefresher(repo port.CampaignRepository, gw port.StatusGateway, engine *Engine, logger *slog.Logger, interval time.Duration) *Refresher {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Refresher{
		repo:     repo,
		gateway:  gw,
		engine:   engine,
		logger:   logger,
		interval: interval,
		tracked:  map[string]struct{}{},
	}
}

// Run blocks, refreshing snapshots on a fixed cadence until ctx is done.
func (r *Refresher) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

func (r *Refresher) refresh(ctx context.Context) {
	campaigns, err := r.repo.ListByStatus(ctx, domain.StatusActive, domain.StatusPaused)
	if err != nil {
		r.logger.Error("list campaigns for analytics refresh", slog.Any("error", err))
		return
	}

	seen := make(map[string]struct{}, len(campaigns))
	for _, c := range campaigns {
		seen[c.ID] = struct{}{}
		snap, err := r.gateway.ReadAnalytics(ctx, c.ID)
		if err != nil {
			r.logger.Debug("analytics read failed, skipping",
				slog.String("campaign_id", c.ID),
				slog.Any("error", err))
			continue
		}
		r.engine.Evaluate(snap)
	}

	// campaigns that left the delivering set keep no baseline or latches
	for id := range r.tracked {
		if _, ok := seen[id]; !ok {
			r.engine.Forget(id)
		}
	}
	r.tracked = seen
}
