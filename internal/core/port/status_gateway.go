package port

import (
	"context"

	"adpilot/internal/core/domain"
)

// StatusGateway is the outbound port to the external advertising platform.
// Implementations hold no local state: every call is a fresh request, so a
// returned status is always the platform's authoritative answer. Calls must
// honour the context and apply a bounded timeout.
type StatusGateway interface {
	// ReadStatus returns the campaign's current status on the platform.
	// Fails with ErrRemoteUnavailable or ErrNotFound.
	ReadStatus(ctx context.Context, campaignID string) (domain.Status, error)

	// WriteStatus requests a transition on the platform. Fails with
	// ErrInvalidTransition when the platform rejects the target state,
	// ErrRemoteUnavailable on network or service failure.
	WriteStatus(ctx context.Context, campaignID string, target domain.Status) error

	// ReadAnalytics returns the platform's current delivery metrics for
	// the campaign as a point-in-time snapshot.
	ReadAnalytics(ctx context.Context, campaignID string) (domain.PerformanceSnapshot, error)
}
