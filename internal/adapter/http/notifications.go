package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"adpilot/internal/core/domain"
)

type notificationListResponse struct {
	Unread  int                   `json:"unread"`
	Entries []domain.Notification `json:"entries"`
}

// handleNotificationList returns all entries newest first together with
// the unread count for the bell badge.
func (h *Handler) handleNotificationList(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, notificationListResponse{
		Unread:  h.center.Unread(),
		Entries: h.center.List(),
	})
}

func (h *Handler) handleNotificationRead(w http.ResponseWriter, r *http.Request) {
	h.center.MarkRead(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleNotificationReadAll(w http.ResponseWriter, _ *http.Request) {
	h.center.MarkAllRead()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleNotificationDismiss(w http.ResponseWriter, r *http.Request) {
	h.center.Dismiss(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}
