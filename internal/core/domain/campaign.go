package domain

import (
	"time"

	"github.com/google/uuid"
)

// Campaign statuses as stored in the campaigns table.
const (
	CampaignStatusActive    = "active"
	CampaignStatusPaused    = "paused"
	CampaignStatusCompleted = "completed"
)

// Campaign is a time-bounded advertising placement on a single billboard.
// StartDate and EndDate are naive calendar dates (no time-of-day): a
// campaign is eligible from the start of StartDate through the end of
// EndDate inclusive.
type Campaign struct {
	ID          uuid.UUID
	BillboardID uuid.UUID
	Name        string
	LandingURL  string
	Status      string
	StartDate   time.Time
	EndDate     time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
