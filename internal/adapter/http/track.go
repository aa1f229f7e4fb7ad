package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/OluwaGB/billboard-insights/internal/core/port"
)

// handleTrack runs the scan pipeline for GET /track?code=<billboard_code>.
// A missing code yields 400 and an unknown billboard 404, both with JSON
// error bodies. When a campaign is active the scan is recorded and the
// client is redirected to its landing URL; with no active campaign the
// client is redirected to the fallback destination. Internal failures,
// including a failed event write, yield 500 without leaking detail.
func (h *Handler) handleTrack(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	code := r.URL.Query().Get("code")
	if code == "" {
		writeJSONError(w, http.StatusBadRequest, "Missing billboard code")
		return
	}

	req := port.ScanRequest{
		Code:      code,
		UserAgent: r.Header.Get("User-Agent"),
		ClientIP:  clientIP(r),
		Referer:   r.Header.Get("Referer"),
	}

	outcome, err := h.svc.TrackScan(r.Context(), req)
	switch {
	case errors.Is(err, port.ErrMissingCode):
		writeJSONError(w, http.StatusBadRequest, "Missing billboard code")
		return
	case errors.Is(err, port.ErrBillboardNotFound):
		h.logger.Info("unknown billboard code", slog.String("code", code))
		writeJSONError(w, http.StatusNotFound, "Billboard not found")
		return
	case err != nil:
		h.logger.Error("track error", slog.String("code", code), slog.Any("error", err))
		writeJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if outcome.Fallback {
		h.logger.Info("no active campaign", slog.String("code", code))
	}
	http.Redirect(w, r, outcome.RedirectURL, http.StatusFound)
}

// handleTrackPreflight answers CORS preflights with an empty body and no
// business logic.
func (h *Handler) handleTrackPreflight(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)
	w.WriteHeader(http.StatusOK)
}

// clientIP extracts the client address from X-Forwarded-For, using the
// first comma-separated entry. Returns "" when the header is absent; the
// service sits behind a proxy, so RemoteAddr is not a useful fallback.
func clientIP(r *http.Request) string {
	xff := r.Header.Get("X-Forwarded-For")
	if xff == "" {
		return ""
	}
	first, _, _ := strings.Cut(xff, ",")
	return strings.TrimSpace(first)
}
