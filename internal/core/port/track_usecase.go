package port

import (
	"context"
	"errors"

	"github.com/OluwaGB/billboard-insights/internal/core/domain"
)

var (
	// ErrMissingCode means the billboard code was absent or empty.
	ErrMissingCode = errors.New("missing billboard code")
	// ErrBillboardNotFound means no billboard matches the given code.
	ErrBillboardNotFound = errors.New("billboard not found")
)

// TrackUseCase is the primary port into the attribution pipeline. Mock
// implementations can be generated from this interface for testing.
type TrackUseCase interface {
	// TrackScan runs the full pipeline for one scan: resolve the
	// billboard, select the active campaign, classify the client,
	// record the event and decide the redirect destination. It returns
	// ErrMissingCode or ErrBillboardNotFound for client errors; any
	// other error is an internal failure (including a failed event
	// write, which is surfaced rather than swallowed so attribution
	// data is never silently lost).
	TrackScan(ctx context.Context, req ScanRequest) (*ScanOutcome, error)
}

// ScanRequest carries the request data the pipeline consumes. The HTTP
// layer constructs it from the query string and headers.
type ScanRequest struct {
	Code      string
	UserAgent string
	ClientIP  string
	Referer   string
}

// ScanOutcome is the pipeline result. Fallback is true when no campaign
// was active and RedirectURL points at the configured default
// destination; Event is non-nil only when a scan event was recorded.
type ScanOutcome struct {
	RedirectURL string
	Fallback    bool
	Event       *domain.ScanEvent
}
