package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adpilot/internal/core/domain"
)

// campaignResponse is the wire representation of a campaign, including the
// badge metadata the dashboard renders next to the name.
type campaignResponse struct {
	ID        string           `json:"id"`
	OwnerID   string           `json:"owner_id"`
	Name      string           `json:"name"`
	Platform  string           `json:"platform"`
	Budget    int64            `json:"budget"`
	Status    domain.Status    `json:"status"`
	Badge     domain.BadgeInfo `json:"badge"`
	CreatedAt string           `json:"created_at"`
	UpdatedAt string           `json:"updated_at"`
}

func toCampaignResponse(c *domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:        c.ID,
		OwnerID:   c.OwnerID,
		Name:      c.Name,
		Platform:  c.Platform,
		Budget:    c.Budget,
		Status:    c.Status,
		Badge:     domain.Badge(c.Status),
		CreatedAt: c.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: c.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// handleList returns the owner's campaigns, optionally filtered by status.
// Missing owner_id or an unknown status value produce HTTP 400.
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ownerID := q.Get("owner_id")
	if ownerID == "" {
		http.Error(w, "missing owner_id", http.StatusBadRequest)
		return
	}
	var status *domain.Status
	if s := q.Get("status"); s != "" {
		parsed, err := domain.ParseStatus(s)
		if err != nil {
			http.Error(w, "invalid status filter", http.StatusBadRequest)
			return
		}
		status = &parsed
	}

	campaigns, err := h.svc.ListByOwner(r.Context(), ownerID, status)
	if err != nil {
		h.writeError(w, err)
		return
	}
	out := make([]campaignResponse, 0, len(campaigns))
	for i := range campaigns {
		out = append(out, toCampaignResponse(&campaigns[i]))
	}
	h.writeJSON(w, http.StatusOK, out)
}

type createCampaignRequest struct {
	OwnerID  string `json:"owner_id"`
	Name     string `json:"name"`
	Platform string `json:"platform"`
	Budget   int64  `json:"budget"`
}

// handleCreate inserts a new draft campaign.
func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.OwnerID == "" || req.Name == "" {
		http.Error(w, "owner_id and name are required", http.StatusBadRequest)
		return
	}
	if req.Budget < 0 {
		http.Error(w, "budget must be non-negative", http.StatusBadRequest)
		return
	}
	c, err := h.svc.Create(r.Context(), req.OwnerID, req.Name, req.Platform, req.Budget)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toCampaignResponse(c))
}

type updateCampaignRequest struct {
	Name     string `json:"name"`
	Platform string `json:"platform"`
	Budget   int64  `json:"budget"`
}

// handleUpdate edits descriptive attributes; status is immutable here.
func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	if req.Budget < 0 {
		http.Error(w, "budget must be non-negative", http.StatusBadRequest)
		return
	}
	c, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), req.Name, req.Platform, req.Budget)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

// handleGet returns a single campaign with badge metadata.
func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

// handleDelete soft-deletes a campaign.
func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleInsights returns the platform's latest performance snapshot.
func (h *Handler) handleInsights(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Insights(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, snap)
}
