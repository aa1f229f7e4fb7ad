package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/OluwaGB/billboard-insights/internal/core/domain"
)

// ScanRepository implements port.ScanRepository using pgxpool for
// PostgreSQL. Every method is a single round-trip; the store's per-row
// consistency is all the pipeline depends on.
type ScanRepository struct {
	pool *pgxpool.Pool
}

// NewScanRepository returns a new repository instance.
func NewScanRepository(pool *pgxpool.Pool) *ScanRepository {
	return &ScanRepository{pool: pool}
}

// FindBillboardByCode resolves a billboard by its exact code. Returns
// (nil, nil) when no billboard matches.
func (r *ScanRepository) FindBillboardByCode(ctx context.Context, code string) (*domain.Billboard, error) {
	var b domain.Billboard
	err := r.pool.QueryRow(ctx,
		`SELECT id, code, name, location, created_at FROM billboards WHERE code = $1`, code).
		Scan(&b.ID, &b.Code, &b.Name, &b.Location, &b.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// FindActiveCampaign returns the campaign active on the billboard for
// the given calendar date, or (nil, nil) when none qualifies. The data
// model does not enforce at most one active campaign per billboard; when
// several match, ordering by created_at then id makes the pick
// deterministic rather than silently arbitrary.
func (r *ScanRepository) FindActiveCampaign(ctx context.Context, billboardID uuid.UUID, today time.Time) (*domain.Campaign, error) {
	var c domain.Campaign
	err := r.pool.QueryRow(ctx,
		`SELECT id, billboard_id, name, landing_url, status, start_date, end_date, created_at, updated_at
         FROM campaigns
         WHERE billboard_id = $1
           AND status = 'active'
           AND start_date <= $2
           AND end_date >= $2
         ORDER BY created_at, id
         LIMIT 1`, billboardID, today).
		Scan(&c.ID, &c.BillboardID, &c.Name, &c.LandingURL, &c.Status, &c.StartDate, &c.EndDate, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// InsertScanEvent appends one scan event and fills in the store-assigned
// id and timestamp on the passed event.
func (r *ScanRepository) InsertScanEvent(ctx context.Context, ev *domain.ScanEvent) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO scan_events (billboard_id, campaign_id, ip_address, user_agent, referer, device_type, is_bot)
         VALUES ($1,$2,$3,$4,$5,$6,$7)
         RETURNING id, scanned_at`,
		ev.BillboardID, ev.CampaignID, ev.IPAddress, ev.UserAgent, ev.Referer, string(ev.DeviceType), ev.IsBot).
		Scan(&ev.ID, &ev.ScannedAt)
}
