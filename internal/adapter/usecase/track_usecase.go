package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/OluwaGB/billboard-insights/internal/core/domain"
	"github.com/OluwaGB/billboard-insights/internal/core/port"
)

// TrackUseCase runs the scan-attribution pipeline. It is stateless apart
// from the repository handle and the configured fallback URL, so one
// instance serves all requests concurrently.
type TrackUseCase struct {
	repo port.ScanRepository

	// fallbackURL is where scans are sent when the billboard has no
	// active campaign.
	fallbackURL string

	// now is the clock used to derive "today"; overridable in tests.
	now func() time.Time
}

// NewTrackUseCase creates a usecase with the provided repository and
// fallback redirect destination.
func NewTrackUseCase(repo port.ScanRepository, fallbackURL string) *TrackUseCase {
	return &TrackUseCase{repo: repo, fallbackURL: fallbackURL, now: time.Now}
}

// TrackScan resolves the billboard, selects the campaign active today,
// classifies the client and records the scan before returning the
// redirect destination. Resolution failures short-circuit with no writes.
// A write failure after a campaign match is returned as an error rather
// than proceeding to the redirect: losing attribution data defeats the
// purpose of the service, so recording fails closed. The no-campaign
// outcome redirects to the fallback URL and records nothing, as there is
// nothing to attribute to.
func (u *TrackUseCase) TrackScan(ctx context.Context, req port.ScanRequest) (*port.ScanOutcome, error) {
	if req.Code == "" {
		return nil, port.ErrMissingCode
	}

	billboard, err := u.repo.FindBillboardByCode(ctx, req.Code)
	if err != nil {
		return nil, fmt.Errorf("resolve billboard %q: %w", req.Code, err)
	}
	if billboard == nil {
		return nil, port.ErrBillboardNotFound
	}

	campaign, err := u.repo.FindActiveCampaign(ctx, billboard.ID, u.today())
	if err != nil {
		return nil, fmt.Errorf("select campaign for billboard %s: %w", billboard.ID, err)
	}
	if campaign == nil {
		return &port.ScanOutcome{RedirectURL: u.fallbackURL, Fallback: true}, nil
	}

	ev := &domain.ScanEvent{
		BillboardID: billboard.ID,
		CampaignID:  &campaign.ID,
		IPAddress:   optional(req.ClientIP),
		UserAgent:   req.UserAgent,
		Referer:     optional(req.Referer),
		DeviceType:  domain.DetectDevice(req.UserAgent),
		IsBot:       domain.IsBot(req.UserAgent),
	}

	// Detach the write from client cancellation: once the pipeline has
	// committed to recording, a dropped connection must not lose the
	// attribution row.
	if err = u.repo.InsertScanEvent(context.WithoutCancel(ctx), ev); err != nil {
		return nil, fmt.Errorf("record scan for billboard %s: %w", billboard.ID, err)
	}

	return &port.ScanOutcome{RedirectURL: campaign.LandingURL, Event: ev}, nil
}

// today returns the current UTC calendar date with the time-of-day
// stripped. Campaign date bounds are inclusive against this value, so a
// campaign whose end_date equals today is still active.
func (u *TrackUseCase) today() time.Time {
	return u.now().UTC().Truncate(24 * time.Hour)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
