package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"adpilot/internal/core/port"
	"adpilot/internal/notification"
	"adpilot/internal/observability"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. Routes are registered on a chi.Router for convenient method
// handling; campaign status is never mutated here, only through the
// usecase.
type Handler struct {
	svc    port.CampaignUseCase
	center *notification.Center
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.CampaignUseCase, center *notification.Center, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, center: center, logger: logger}
	r := chi.NewRouter()

	r.Use(observability.Measure)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", h.handleList)
			r.Post("/", h.handleCreate)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.handleGet)
				r.Patch("/", h.handleUpdate)
				r.Delete("/", h.handleDelete)
				r.Get("/insights", h.handleInsights)
				r.Post("/pause", h.handlePause)
				r.Post("/resume", h.handleResume)
				r.Post("/retry", h.handleRetry)
				r.Post("/stop", h.handleStopRequest)
				r.Post("/stop/confirm", h.handleStopConfirm)
			})
		})
		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", h.handleNotificationList)
			r.Post("/read-all", h.handleNotificationReadAll)
			r.Post("/{id}/read", h.handleNotificationRead)
			r.Delete("/{id}", h.handleNotificationDismiss)
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", observability.MetricsHandler())

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

type errorResponse struct {
	Error string `json:"error"`
	Hint  string `json:"hint,omitempty"`
}

// writeError maps the port error taxonomy onto HTTP status codes and a
// human-readable message with a suggested next step where one exists.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, port.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: "campaign not found"})
	case errors.Is(err, port.ErrInvalidTransition):
		h.writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, port.ErrActionInFlight):
		h.writeJSON(w, http.StatusConflict, errorResponse{
			Error: "another action is still being processed for this campaign",
			Hint:  "wait for it to finish and try again",
		})
	case errors.Is(err, port.ErrConfirmExpired):
		h.writeJSON(w, http.StatusConflict, errorResponse{
			Error: "stop confirmation expired",
			Hint:  "request the stop again",
		})
	case errors.Is(err, port.ErrRemoteUnavailable):
		h.writeJSON(w, http.StatusBadGateway, errorResponse{
			Error: "the advertising platform could not be reached",
			Hint:  "retry in a moment",
		})
	case errors.Is(err, port.ErrUnauthenticated):
		h.writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthenticated"})
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
