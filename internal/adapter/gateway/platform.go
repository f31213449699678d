package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"adpilot/internal/config/configs"
	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// PlatformGateway implements port.StatusGateway against the advertising
// platform's REST API. It keeps no local state: every call is a fresh
// request, so answers are never stale at the cost of redundant calls.
type PlatformGateway struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewPlatformGateway builds a gateway from configuration. The HTTP client
// timeout bounds every request; an elapsed timeout surfaces as
// port.ErrRemoteUnavailable.
func NewPlatformGateway(cfg configs.Gateway) *PlatformGateway {
	return &PlatformGateway{
		baseURL: cfg.BaseURL,
		token:   cfg.AccessToken,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

var _ port.StatusGateway = (*PlatformGateway)(nil)

type statusPayload struct {
	Status string `json:"status"`
}

// ReadStatus queries the platform for the authoritative campaign status.
func (g *PlatformGateway) ReadStatus(ctx context.Context, campaignID string) (domain.Status, error) {
	var payload statusPayload
	err := g.do(ctx, http.MethodGet, fmt.Sprintf("/campaigns/%s/status", campaignID), nil, &payload)
	if err != nil {
		return "", err
	}
	status, err := domain.ParseStatus(payload.Status)
	if err != nil {
		return "", fmt.Errorf("platform returned %w", err)
	}
	return status, nil
}

// WriteStatus requests a transition on the platform.
func (g *PlatformGateway) WriteStatus(ctx context.Context, campaignID string, target domain.Status) error {
	body, err := json.Marshal(statusPayload{Status: string(target)})
	if err != nil {
		return err
	}
	return g.do(ctx, http.MethodPost, fmt.Sprintf("/campaigns/%s/status", campaignID), body, nil)
}

// ReadAnalytics returns the platform's delivery metrics for the campaign.
func (g *PlatformGateway) ReadAnalytics(ctx context.Context, campaignID string) (domain.PerformanceSnapshot, error) {
	var snap domain.PerformanceSnapshot
	err := g.do(ctx, http.MethodGet, fmt.Sprintf("/campaigns/%s/insights", campaignID), nil, &snap)
	if err != nil {
		return domain.PerformanceSnapshot{}, err
	}
	snap.CampaignID = campaignID
	snap.TakenAt = time.Now().UTC()
	return snap, nil
}

// do issues one request and maps the response onto the port error taxonomy.
func (g *PlatformGateway) do(ctx context.Context, method, path string, body []byte, out any) error {
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if g.token != "" {
		req.Header.Set("Authorization", "Bearer "+g.token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", port.ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return port.ErrNotFound
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return port.ErrUnauthenticated
	case resp.StatusCode == http.StatusConflict || resp.StatusCode == http.StatusUnprocessableEntity:
		return port.ErrInvalidTransition
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: platform returned %d", port.ErrRemoteUnavailable, resp.StatusCode)
	case resp.StatusCode >= 400:
		return fmt.Errorf("platform rejected request with %d", resp.StatusCode)
	}

	if out != nil {
		if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode platform response: %w", err)
		}
	}
	return nil
}
