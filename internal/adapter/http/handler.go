package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/OluwaGB/billboard-insights/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds a TrackUseCase to execute the attribution pipeline and
// a logger for structured logging. Routes are registered on a chi.Router
// for convenient method handling.
type Handler struct {
	svc    port.TrackUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. The /track
// endpoint is the one printed QR codes point at; OPTIONS is served
// separately so CORS preflights never touch business logic.
func NewHandler(svc port.TrackUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Get("/track", h.handleTrack)
	r.Options("/track", h.handleTrackPreflight)

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
