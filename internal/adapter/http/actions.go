package httpadapter

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adpilot/internal/core/domain"
)

// Lifecycle action endpoints. Every action either clearly succeeds (the
// confirmed campaign is returned) or clearly fails with a mapped error; the
// response never carries a status the gateway has not confirmed.

func (h *Handler) handlePause(w http.ResponseWriter, r *http.Request) {
	h.action(w, r, h.svc.Pause)
}

func (h *Handler) handleResume(w http.ResponseWriter, r *http.Request) {
	h.action(w, r, h.svc.Resume)
}

func (h *Handler) handleRetry(w http.ResponseWriter, r *http.Request) {
	h.action(w, r, h.svc.Retry)
}

func (h *Handler) action(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, id string) (*domain.Campaign, error)) {
	c, err := fn(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

type stopRequestResponse struct {
	ConfirmToken string `json:"confirm_token"`
}

// handleStopRequest starts the two-step stop flow. Nothing changes until
// the token is presented to the confirm endpoint; abandoning the dialog
// lets the token expire with no gateway call made.
func (h *Handler) handleStopRequest(w http.ResponseWriter, r *http.Request) {
	token, err := h.svc.RequestStop(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, stopRequestResponse{ConfirmToken: token})
}

type stopConfirmRequest struct {
	ConfirmToken string `json:"confirm_token"`
}

func (h *Handler) handleStopConfirm(w http.ResponseWriter, r *http.Request) {
	var req stopConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ConfirmToken == "" {
		http.Error(w, "missing confirm_token", http.StatusBadRequest)
		return
	}
	c, err := h.svc.ConfirmStop(r.Context(), chi.URLParam(r, "id"), req.ConfirmToken)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}
