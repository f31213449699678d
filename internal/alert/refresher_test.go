package alert

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/core/port/mocks"
	"adpilot/internal/notification"
)

func delivering(id string) domain.Campaign {
	return domain.Campaign{ID: id, OwnerID: "u1", Name: "Launch", Status: domain.StatusActive}
}

// TestRefreshFeedsEngine: every delivering campaign gets one analytics read
// per refresh and alerts land in the center.
func TestRefreshFeedsEngine(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	gw := mocks.NewMockStatusGateway(t)
	center := notification.NewCenter(testLogger())
	engine := NewEngine(DefaultRules(testConfig()), center, testLogger())

	repo.EXPECT().
		ListByStatus(mock.Anything, domain.StatusActive, domain.StatusPaused).
		Return([]domain.Campaign{delivering("c1"), delivering("c2")}, nil)
	gw.EXPECT().
		ReadAnalytics(mock.Anything, "c1").
		Return(snap("c1", 0.005, 10, 2), nil) // below the CTR floor
	gw.EXPECT().
		ReadAnalytics(mock.Anything, "c2").
		Return(snap("c2", 0.05, 10, 2), nil) // healthy

	r := NewRefresher(repo, gw, engine, testLogger(), 0)
	r.refresh(context.Background())

	list := center.List()
	require.Len(t, list, 1)
	assert.Equal(t, "c1", list[0].CampaignID)
}

// TestRefreshSkipsFailedReads: one campaign's analytics failure does not
// block the others.
func TestRefreshSkipsFailedReads(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	gw := mocks.NewMockStatusGateway(t)
	center := notification.NewCenter(testLogger())
	engine := NewEngine(DefaultRules(testConfig()), center, testLogger())

	repo.EXPECT().
		ListByStatus(mock.Anything, domain.StatusActive, domain.StatusPaused).
		Return([]domain.Campaign{delivering("c1"), delivering("c2")}, nil)
	gw.EXPECT().
		ReadAnalytics(mock.Anything, "c1").
		Return(domain.PerformanceSnapshot{}, port.ErrRemoteUnavailable)
	gw.EXPECT().
		ReadAnalytics(mock.Anything, "c2").
		Return(snap("c2", 0.005, 10, 2), nil)

	r := NewRefresher(repo, gw, engine, testLogger(), 0)
	r.refresh(context.Background())

	list := center.List()
	require.Len(t, list, 1)
	assert.Equal(t, "c2", list[0].CampaignID)
}

// TestRefreshForgetsDepartedCampaigns: a campaign that leaves the
// delivering set loses its baseline, so a later return starts fresh.
func TestRefreshForgetsDepartedCampaigns(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	gw := mocks.NewMockStatusGateway(t)
	center := notification.NewCenter(testLogger())
	engine := NewEngine(DefaultRules(testConfig()), center, testLogger())

	repo.EXPECT().
		ListByStatus(mock.Anything, domain.StatusActive, domain.StatusPaused).
		Return([]domain.Campaign{delivering("c1")}, nil).
		Once()
	gw.EXPECT().
		ReadAnalytics(mock.Anything, "c1").
		Return(snap("c1", 0.05, 100, 2), nil).
		Once()

	r := NewRefresher(repo, gw, engine, testLogger(), 0)
	r.refresh(context.Background())

	// campaign stopped; the refresh sees an empty set and drops its state
	repo.EXPECT().
		ListByStatus(mock.Anything, domain.StatusActive, domain.StatusPaused).
		Return(nil, nil).
		Once()
	r.refresh(context.Background())

	// back with a CPA that would trigger against the old baseline; without
	// one, nothing fires
	repo.EXPECT().
		ListByStatus(mock.Anything, domain.StatusActive, domain.StatusPaused).
		Return([]domain.Campaign{delivering("c1")}, nil).
		Once()
	gw.EXPECT().
		ReadAnalytics(mock.Anything, "c1").
		Return(snap("c1", 0.05, 200, 2), nil).
		Once()
	r.refresh(context.Background())

	assert.Empty(t, center.List())
}
