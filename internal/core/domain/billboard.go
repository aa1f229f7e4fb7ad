package domain

import (
	"time"

	"github.com/google/uuid"
)

// Billboard is a physical advertising surface. The code is the short
// string printed inside the QR code (e.g. BB-LG-001) and is unique per
// billboard. Records are owned by the dashboard tooling; this service
// only reads them.
type Billboard struct {
	ID        uuid.UUID
	Code      string
	Name      string
	Location  string
	CreatedAt time.Time
}
