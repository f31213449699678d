package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adpilot/internal/config/configs"
	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

func newTestGateway(srv *httptest.Server) *PlatformGateway {
	return NewPlatformGateway(configs.Gateway{
		BaseURL:     srv.URL,
		AccessToken: "test-token",
		Timeout:     2 * time.Second,
	})
}

func TestReadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/campaigns/c1/status", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "active"})
	}))
	defer srv.Close()

	status, err := newTestGateway(srv).ReadStatus(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, status)
}

func TestReadStatusRejectsUnknownValue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "limbo"})
	}))
	defer srv.Close()

	_, err := newTestGateway(srv).ReadStatus(context.Background(), "c1")
	assert.Error(t, err)
}

func TestWriteStatus(t *testing.T) {
	var got statusPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/campaigns/c1/status", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := newTestGateway(srv).WriteStatus(context.Background(), "c1", domain.StatusPaused)
	require.NoError(t, err)
	assert.Equal(t, "paused", got.Status)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		code    int
		wantErr error
	}{
		{"not found", http.StatusNotFound, port.ErrNotFound},
		{"unauthorized", http.StatusUnauthorized, port.ErrUnauthenticated},
		{"forbidden", http.StatusForbidden, port.ErrUnauthenticated},
		{"conflict", http.StatusConflict, port.ErrInvalidTransition},
		{"unprocessable", http.StatusUnprocessableEntity, port.ErrInvalidTransition},
		{"server error", http.StatusInternalServerError, port.ErrRemoteUnavailable},
		{"bad gateway", http.StatusBadGateway, port.ErrRemoteUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.code)
			}))
			defer srv.Close()

			err := newTestGateway(srv).WriteStatus(context.Background(), "c1", domain.StatusPaused)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUnreachableHostIsRemoteUnavailable(t *testing.T) {
	gw := NewPlatformGateway(configs.Gateway{
		BaseURL: "http://127.0.0.1:1", // nothing listens here
		Timeout: 200 * time.Millisecond,
	})
	_, err := gw.ReadStatus(context.Background(), "c1")
	assert.ErrorIs(t, err, port.ErrRemoteUnavailable)
}

func TestReadAnalytics(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/campaigns/c1/insights", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"impressions": 12000,
			"clicks":      240,
			"ctr":         0.02,
			"spend":       50000,
			"conversions": 24,
			"cpa":         20.8,
			"roas":        3.1,
		})
	}))
	defer srv.Close()

	snap, err := newTestGateway(srv).ReadAnalytics(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "c1", snap.CampaignID)
	assert.Equal(t, int64(12000), snap.Impressions)
	assert.Equal(t, int64(240), snap.Clicks)
	assert.InDelta(t, 0.02, snap.CTR, 1e-9)
	assert.False(t, snap.TakenAt.IsZero())
}
