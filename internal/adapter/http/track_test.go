package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/OluwaGB/billboard-insights/internal/adapter/usecase"
	"github.com/OluwaGB/billboard-insights/internal/core/domain"
	"github.com/OluwaGB/billboard-insights/internal/core/port"
	"github.com/OluwaGB/billboard-insights/internal/core/port/mocks"
)

const testFallbackURL = "https://adtrackng.com"

func newTestHandler(t *testing.T, repo port.ScanRepository) http.Handler {
	t.Helper()
	svc := usecase.NewTrackUseCase(repo, testFallbackURL)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(svc, logger).Router()
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("Content-Type = %q, want application/json", ct)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body["error"]
}

// TestTrackRedirect walks a scan through the whole stack with a mocked
// store: known code, active campaign, one recorded event, 302 to the
// campaign landing URL.
func TestTrackRedirect(t *testing.T) {
	repo := mocks.NewMockScanRepository(t)

	boardID := uuid.New()
	campaignID := uuid.New()
	repo.EXPECT().
		FindBillboardByCode(mock.Anything, "BB-LG-001").
		Return(&domain.Billboard{ID: boardID, Code: "BB-LG-001"}, nil)
	repo.EXPECT().
		FindActiveCampaign(mock.Anything, boardID, mock.AnythingOfType("time.Time")).
		Return(&domain.Campaign{ID: campaignID, BillboardID: boardID, LandingURL: "https://advertiser.example/promo"}, nil)

	repo.EXPECT().
		InsertScanEvent(mock.Anything, mock.AnythingOfType("*domain.ScanEvent")).
		Return(nil)

	handler := newTestHandler(t, repo)

	req := httptest.NewRequest(http.MethodGet, "/track?code=BB-LG-001", nil)
	req.Header.Set("User-Agent", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_4 like Mac OS X)")
	req.Header.Set("X-Forwarded-For", "102.89.34.10, 10.0.0.1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "https://advertiser.example/promo" {
		t.Fatalf("Location = %q, want campaign landing URL", loc)
	}
	if origin := rec.Header().Get("Access-Control-Allow-Origin"); origin != "*" {
		t.Fatalf("Access-Control-Allow-Origin = %q, want *", origin)
	}
}

// TestTrackUnknownBillboard expects 404 with the documented JSON body and
// no event write (the mock asserts the insert is never called).
func TestTrackUnknownBillboard(t *testing.T) {
	repo := mocks.NewMockScanRepository(t)
	repo.EXPECT().
		FindBillboardByCode(mock.Anything, "BB-XX-999").
		Return(nil, nil)

	handler := newTestHandler(t, repo)

	req := httptest.NewRequest(http.MethodGet, "/track?code=BB-XX-999", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if msg := decodeError(t, rec); msg != "Billboard not found" {
		t.Fatalf("error = %q, want %q", msg, "Billboard not found")
	}
}

// TestTrackMissingCode expects 400 before any store access.
func TestTrackMissingCode(t *testing.T) {
	repo := mocks.NewMockScanRepository(t)
	handler := newTestHandler(t, repo)

	req := httptest.NewRequest(http.MethodGet, "/track", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if msg := decodeError(t, rec); msg != "Missing billboard code" {
		t.Fatalf("error = %q, want %q", msg, "Missing billboard code")
	}
}

// TestTrackFallbackRedirect expects 302 to the configured fallback when
// the billboard has no active campaign, with no event written.
func TestTrackFallbackRedirect(t *testing.T) {
	repo := mocks.NewMockScanRepository(t)

	boardID := uuid.New()
	repo.EXPECT().
		FindBillboardByCode(mock.Anything, "BB-LG-003").
		Return(&domain.Billboard{ID: boardID, Code: "BB-LG-003"}, nil)
	repo.EXPECT().
		FindActiveCampaign(mock.Anything, boardID, mock.AnythingOfType("time.Time")).
		Return(nil, nil)

	handler := newTestHandler(t, repo)

	req := httptest.NewRequest(http.MethodGet, "/track?code=BB-LG-003", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != testFallbackURL {
		t.Fatalf("Location = %q, want fallback %q", loc, testFallbackURL)
	}
}

// TestTrackRecordingFailure expects 500 when the event insert fails; the
// user is never silently redirected past a lost attribution row.
func TestTrackRecordingFailure(t *testing.T) {
	repo := mocks.NewMockScanRepository(t)

	boardID := uuid.New()
	campaignID := uuid.New()
	repo.EXPECT().
		FindBillboardByCode(mock.Anything, "BB-LG-001").
		Return(&domain.Billboard{ID: boardID, Code: "BB-LG-001"}, nil)
	repo.EXPECT().
		FindActiveCampaign(mock.Anything, boardID, mock.AnythingOfType("time.Time")).
		Return(&domain.Campaign{ID: campaignID, BillboardID: boardID, LandingURL: "https://advertiser.example/promo"}, nil)
	repo.EXPECT().
		InsertScanEvent(mock.Anything, mock.AnythingOfType("*domain.ScanEvent")).
		Return(errors.New("insert failed"))

	handler := newTestHandler(t, repo)

	req := httptest.NewRequest(http.MethodGet, "/track?code=BB-LG-001", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if msg := decodeError(t, rec); msg != "Internal server error" {
		t.Fatalf("error = %q, want %q", msg, "Internal server error")
	}
	if rec.Header().Get("Location") != "" {
		t.Fatal("redirect issued despite recording failure")
	}
}

// TestTrackPreflight expects OPTIONS to return an empty 200 with the
// permissive CORS headers and to never touch the store.
func TestTrackPreflight(t *testing.T) {
	repo := mocks.NewMockScanRepository(t)
	handler := newTestHandler(t, repo)

	req := httptest.NewRequest(http.MethodOptions, "/track", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if origin := rec.Header().Get("Access-Control-Allow-Origin"); origin != "*" {
		t.Fatalf("Access-Control-Allow-Origin = %q, want *", origin)
	}
	want := "authorization, x-client-info, apikey, content-type"
	if hdrs := rec.Header().Get("Access-Control-Allow-Headers"); hdrs != want {
		t.Fatalf("Access-Control-Allow-Headers = %q, want %q", hdrs, want)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("preflight body = %q, want empty", rec.Body.String())
	}
}
