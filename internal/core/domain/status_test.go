package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []Status{StatusDraft, StatusPending, StatusActive, StatusPaused, StatusStopped, StatusFailed} {
		got, err := ParseStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParseStatus("archived")
	assert.Error(t, err)
	_, err = ParseStatus("")
	assert.Error(t, err)
	assert.False(t, Status("ACTIVE").Valid(), "status values are lowercase only")
}

func TestTransitionTable(t *testing.T) {
	allowed := []struct{ from, to Status }{
		{StatusDraft, StatusPending},
		{StatusPending, StatusActive},
		{StatusPending, StatusFailed},
		{StatusActive, StatusPaused},
		{StatusActive, StatusStopped},
		{StatusPaused, StatusActive},
		{StatusPaused, StatusStopped},
		{StatusFailed, StatusPending},
	}
	allowedSet := map[[2]Status]bool{}
	for _, tr := range allowed {
		allowedSet[[2]Status{tr.from, tr.to}] = true
		assert.True(t, tr.from.CanTransition(tr.to), "%s -> %s should be allowed", tr.from, tr.to)
	}

	// everything not in the table is rejected
	all := []Status{StatusDraft, StatusPending, StatusActive, StatusPaused, StatusStopped, StatusFailed}
	for _, from := range all {
		for _, to := range all {
			if !allowedSet[[2]Status{from, to}] {
				assert.False(t, from.CanTransition(to), "%s -> %s should be rejected", from, to)
			}
		}
	}
}

func TestStoppedIsAbsorbing(t *testing.T) {
	for _, to := range []Status{StatusDraft, StatusPending, StatusActive, StatusPaused, StatusStopped, StatusFailed} {
		assert.False(t, StatusStopped.CanTransition(to))
	}
	assert.True(t, StatusStopped.Terminal())
}

func TestTransientStates(t *testing.T) {
	assert.True(t, StatusPending.Transient())
	for _, s := range []Status{StatusDraft, StatusActive, StatusPaused, StatusStopped, StatusFailed} {
		assert.False(t, s.Transient())
	}
}

func TestBadgeIsTotal(t *testing.T) {
	tests := []struct {
		status Status
		label  string
		tone   Tone
	}{
		{StatusDraft, "Draft", ToneNeutral},
		{StatusPending, "Pending", ToneWarning},
		{StatusActive, "Active", TonePositive},
		{StatusPaused, "Paused", ToneWarning},
		{StatusStopped, "Stopped", ToneNeutral},
		{StatusFailed, "Failed", ToneNegative},
	}
	for _, tt := range tests {
		b := Badge(tt.status)
		assert.Equal(t, tt.label, b.Label)
		assert.Equal(t, tt.tone, b.Tone)
	}

	// unknown input never fails, it degrades to neutral
	b := Badge(Status("weird"))
	assert.Equal(t, "weird", b.Label)
	assert.Equal(t, ToneNeutral, b.Tone)
}
