package domain

import (
	"time"

	"github.com/google/uuid"
)

// ScanEvent is one immutable record of a QR-code scan. CampaignID is nil
// when no campaign could be attributed. IPAddress and Referer are nil
// when the client did not supply them. ID and ScannedAt are assigned by
// the store on insert. Events are append-only; the dashboard aggregates
// over them and nothing ever updates or deletes them.
type ScanEvent struct {
	ID          uuid.UUID
	BillboardID uuid.UUID
	CampaignID  *uuid.UUID
	IPAddress   *string
	UserAgent   string
	Referer     *string
	DeviceType  DeviceType
	IsBot       bool
	ScannedAt   time.Time
}
