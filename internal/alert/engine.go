package alert

import (
	"fmt"
	"log/slog"
	"sync"

	"adpilot/internal/config/configs"
	"adpilot/internal/core/domain"
	"adpilot/internal/notification"
	"adpilot/internal/observability"
)

// Rule is one alert condition evaluated over a campaign's performance
// snapshot. prev is nil on the first evaluation for a campaign; rules that
// compare against a trailing baseline must not trigger without one.
type Rule struct {
	Name      string
	Severity  domain.Severity
	Title     string
	Triggered func(prev *domain.PerformanceSnapshot, cur domain.PerformanceSnapshot) bool
	Message   func(cur domain.PerformanceSnapshot) string
}

// DefaultRules builds the standard rule table from configured thresholds.
func DefaultRules(cfg configs.Alerts) []Rule {
	return []Rule{
		{
			Name:     "ctr_below_floor",
			Severity: domain.SeverityWarning,
			Title:    "Low click-through rate",
			Triggered: func(_ *domain.PerformanceSnapshot, cur domain.PerformanceSnapshot) bool {
				return cur.Impressions > 0 && cur.CTR < cfg.CTRFloor
			},
			Message: func(cur domain.PerformanceSnapshot) string {
				return fmt.Sprintf("CTR dropped to %.2f%%, below the %.2f%% floor.", cur.CTR*100, cfg.CTRFloor*100)
			},
		},
		{
			Name:     "cpa_increase",
			Severity: domain.SeverityDanger,
			Title:    "Cost per acquisition rising",
			Triggered: func(prev *domain.PerformanceSnapshot, cur domain.PerformanceSnapshot) bool {
				if prev == nil || prev.CPA <= 0 {
					return false
				}
				return (cur.CPA-prev.CPA)/prev.CPA*100 > cfg.CPAIncreasePct
			},
			Message: func(cur domain.PerformanceSnapshot) string {
				return fmt.Sprintf("CPA increased beyond %.0f%% of the previous reading, now at %.2f.", cfg.CPAIncreasePct, cur.CPA)
			},
		},
		{
			Name:     "roas_improvement",
			Severity: domain.SeverityInfo,
			Title:    "Return on ad spend improving",
			Triggered: func(prev *domain.PerformanceSnapshot, cur domain.PerformanceSnapshot) bool {
				if prev == nil || prev.ROAS <= 0 {
					return false
				}
				return (cur.ROAS-prev.ROAS)/prev.ROAS*100 > cfg.ROASImprovePct
			},
			Message: func(cur domain.PerformanceSnapshot) string {
				return fmt.Sprintf("ROAS improved by more than %.0f%%, now at %.2f.", cfg.ROASImprovePct, cur.ROAS)
			},
		},
	}
}

// Engine evaluates snapshots against the rule table and emits an alert on
// each false-to-true edge of a rule. A rule stays latched while its
// condition holds and re-arms once the condition clears, so a continuously
// true condition produces exactly one alert.
type Engine struct {
	rules  []Rule
	center *notification.Center
	logger *slog.Logger

	mu      sync.Mutex
	prev    map[string]domain.PerformanceSnapshot
	latched map[string]struct{} // campaignID + "/" + rule name
}

// NewEngine creates an engine over the given rule table.
func NewEngine(rules []Rule, center *notification.Center, logger *slog.Logger) *Engine {
	return &Engine{
		rules:   rules,
		center:  center,
		logger:  logger,
		prev:    map[string]domain.PerformanceSnapshot{},
		latched: map[string]struct{}{},
	}
}

// Evaluate runs every rule against the snapshot, using the previously seen
// snapshot for the campaign as trailing baseline. The new snapshot then
// supersedes the baseline. Emitted alerts are returned for callers that
// want them besides the notification center.
func (e *Engine) Evaluate(cur domain.PerformanceSnapshot) []domain.Notification {
	e.mu.Lock()
	var prev *domain.PerformanceSnapshot
	if p, ok := e.prev[cur.CampaignID]; ok {
		prev = &p
	}
	e.prev[cur.CampaignID] = cur

	var fired []Rule
	for _, r := range e.rules {
		key := cur.CampaignID + "/" + r.Name
		if r.Triggered(prev, cur) {
			if _, held := e.latched[key]; !held {
				e.latched[key] = struct{}{}
				fired = append(fired, r)
			}
		} else {
			delete(e.latched, key)
		}
	}
	e.mu.Unlock()

	out := make([]domain.Notification, 0, len(fired))
	for _, r := range fired {
		n := e.center.Add(domain.Notification{
			Severity:   r.Severity,
			Title:      r.Title,
			Message:    r.Message(cur),
			CampaignID: cur.CampaignID,
		})
		observability.AlertsEmitted.WithLabelValues(r.Name).Inc()
		e.logger.Info("alert emitted",
			slog.String("rule", r.Name),
			slog.String("campaign_id", cur.CampaignID))
		out = append(out, n)
	}
	return out
}

// Forget drops all state held for a campaign, typically after deletion.
func (e *Engine) Forget(campaignID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.prev, campaignID)
	for _, r := range e.rules {
		delete(e.latched, campaignID+"/"+r.Name)
	}
}
