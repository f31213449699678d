package poller

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/core/port/mocks"
	"adpilot/internal/notification"
)

const testInterval = 5 * time.Millisecond

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func pendingCampaign(id string) *domain.Campaign {
	return &domain.Campaign{ID: id, OwnerID: "u1", Name: "Launch", Status: domain.StatusPending}
}

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal(msg)
}

// TestPendingToActiveDisarms: when the platform reports the campaign live,
// local status updates, one notification is emitted and polling stops for
// good.
func TestPendingToActiveDisarms(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	gw := mocks.NewMockStatusGateway(t)
	center := notification.NewCenter(testLogger())

	repo.EXPECT().
		GetCampaign(mock.Anything, "c1").
		Return(pendingCampaign("c1"), nil)

	var reads atomic.Int64
	gw.EXPECT().
		ReadStatus(mock.Anything, "c1").
		RunAndReturn(func(ctx context.Context, id string) (domain.Status, error) {
			reads.Add(1)
			return domain.StatusActive, nil
		})
	repo.EXPECT().
		UpdateStatus(mock.Anything, "c1", domain.StatusActive).
		Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m := NewManager(ctx, repo, gw, center, testLogger(), testInterval)

	m.Arm("c1")
	waitFor(t, func() bool { return len(center.List()) > 0 }, "expected a notification once the campaign went live")

	list := center.List()
	require.Len(t, list, 1)
	assert.Equal(t, "Campaign live", list[0].Title)
	assert.Equal(t, "c1", list[0].CampaignID)

	// the loop disarmed itself: no further reads happen
	settled := reads.Load()
	time.Sleep(10 * testInterval)
	assert.Equal(t, settled, reads.Load(), "poller kept reading after reaching a settled status")

	m.Close()
}

func TestPendingToFailedEmitsDanger(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	gw := mocks.NewMockStatusGateway(t)
	center := notification.NewCenter(testLogger())

	repo.EXPECT().
		GetCampaign(mock.Anything, "c1").
		Return(pendingCampaign("c1"), nil)
	gw.EXPECT().
		ReadStatus(mock.Anything, "c1").
		Return(domain.StatusFailed, nil)
	repo.EXPECT().
		UpdateStatus(mock.Anything, "c1", domain.StatusFailed).
		Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m := NewManager(ctx, repo, gw, center, testLogger(), testInterval)

	m.Arm("c1")
	waitFor(t, func() bool { return len(center.List()) > 0 }, "expected a failure notification")

	list := center.List()
	require.Len(t, list, 1)
	assert.Equal(t, "Campaign setup failed", list[0].Title)
	assert.Equal(t, domain.SeverityDanger, list[0].Severity)

	m.Close()
}

// TestReadErrorsAreSwallowed: transient read failures never stop the loop
// and never surface to the user; the next tick retries.
func TestReadErrorsAreSwallowed(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	gw := mocks.NewMockStatusGateway(t)
	center := notification.NewCenter(testLogger())

	repo.EXPECT().
		GetCampaign(mock.Anything, "c1").
		Return(pendingCampaign("c1"), nil)

	var reads atomic.Int64
	gw.EXPECT().
		ReadStatus(mock.Anything, "c1").
		RunAndReturn(func(ctx context.Context, id string) (domain.Status, error) {
			if reads.Add(1) <= 3 {
				return "", port.ErrRemoteUnavailable
			}
			return domain.StatusActive, nil
		})
	repo.EXPECT().
		UpdateStatus(mock.Anything, "c1", domain.StatusActive).
		Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m := NewManager(ctx, repo, gw, center, testLogger(), testInterval)

	m.Arm("c1")
	waitFor(t, func() bool { return len(center.List()) > 0 }, "expected the poller to recover from read errors")
	assert.GreaterOrEqual(t, reads.Load(), int64(4))

	// errors themselves produced no notifications
	assert.Len(t, center.List(), 1)

	m.Close()
}

// TestNoTicksAfterTeardown: once torn down, the poller issues no further
// reads and performs no further state mutation.
func TestNoTicksAfterTeardown(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	gw := mocks.NewMockStatusGateway(t)
	center := notification.NewCenter(testLogger())

	repo.EXPECT().
		GetCampaign(mock.Anything, "c1").
		Return(pendingCampaign("c1"), nil)

	var reads atomic.Int64
	gw.EXPECT().
		ReadStatus(mock.Anything, "c1").
		RunAndReturn(func(ctx context.Context, id string) (domain.Status, error) {
			reads.Add(1)
			return domain.StatusPending, nil // never settles
		})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m := NewManager(ctx, repo, gw, center, testLogger(), testInterval)

	m.Arm("c1")
	waitFor(t, func() bool { return reads.Load() >= 2 }, "expected at least two polls")

	m.Close()
	settled := reads.Load()
	time.Sleep(10 * testInterval)
	assert.Equal(t, settled, reads.Load(), "a tick fired after teardown")
	assert.Empty(t, center.List())
}

// TestDisarmIsIdempotent: repeated disarms and disarming an unknown id are
// no-ops.
func TestDisarmIsIdempotent(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	gw := mocks.NewMockStatusGateway(t)
	center := notification.NewCenter(testLogger())

	repo.EXPECT().
		GetCampaign(mock.Anything, "c1").
		Return(pendingCampaign("c1"), nil)

	var reads atomic.Int64
	gw.EXPECT().
		ReadStatus(mock.Anything, "c1").
		RunAndReturn(func(ctx context.Context, id string) (domain.Status, error) {
			reads.Add(1)
			return domain.StatusPending, nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m := NewManager(ctx, repo, gw, center, testLogger(), testInterval)

	m.Disarm("unknown") // never armed

	m.Arm("c1")
	waitFor(t, func() bool { return reads.Load() >= 1 }, "expected at least one poll")

	m.Disarm("c1")
	m.Disarm("c1")

	settled := reads.Load()
	time.Sleep(10 * testInterval)
	assert.Equal(t, settled, reads.Load())

	m.Close()
}

// TestArmWhileArmedIsNoOp: double arming does not start a second loop.
func TestArmWhileArmedIsNoOp(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	gw := mocks.NewMockStatusGateway(t)
	center := notification.NewCenter(testLogger())

	repo.EXPECT().
		GetCampaign(mock.Anything, "c1").
		Return(pendingCampaign("c1"), nil)

	var inFlight atomic.Int64
	var overlap atomic.Bool
	gw.EXPECT().
		ReadStatus(mock.Anything, "c1").
		RunAndReturn(func(ctx context.Context, id string) (domain.Status, error) {
			if inFlight.Add(1) > 1 {
				overlap.Store(true)
			}
			defer inFlight.Add(-1)
			time.Sleep(2 * testInterval) // slower than the tick cadence
			return domain.StatusPending, nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m := NewManager(ctx, repo, gw, center, testLogger(), testInterval)

	m.Arm("c1")
	m.Arm("c1")
	time.Sleep(20 * testInterval)
	m.Close()

	assert.False(t, overlap.Load(), "overlapping reads for the same campaign")
}
