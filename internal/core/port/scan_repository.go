package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/OluwaGB/billboard-insights/internal/core/domain"
)

// ScanRepository defines the persistence layer for scan attribution. It
// is an outbound port; each method performs exactly one store round-trip.
// Lookup methods return (nil, nil) when no row matches so callers can
// distinguish absence from store failure.
type ScanRepository interface {
	// FindBillboardByCode resolves a billboard by its exact,
	// case-sensitive short code.
	FindBillboardByCode(ctx context.Context, code string) (*domain.Billboard, error)

	// FindActiveCampaign returns the campaign active on the billboard
	// for the given calendar date, or nil when none qualifies. When the
	// data contains more than one match the result is deterministic but
	// which campaign wins is a data-quality problem upstream.
	FindActiveCampaign(ctx context.Context, billboardID uuid.UUID, today time.Time) (*domain.Campaign, error)

	// InsertScanEvent appends one scan event. The store assigns ID and
	// ScannedAt and the implementation fills them in on the passed event.
	InsertScanEvent(ctx context.Context, ev *domain.ScanEvent) error
}
