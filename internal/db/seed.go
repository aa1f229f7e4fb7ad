package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo billboards, campaigns and scan events so the
// dashboard has something to chart against a fresh database. It is a
// no-op when any campaign already exists.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	var existing int
	if err := db.QueryRow(ctx, `SELECT count(*) FROM campaigns`).Scan(&existing); err != nil {
		return fmt.Errorf("seed precheck: %w", err)
	}
	if existing > 0 {
		return nil
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	billboards := []struct {
		code, name, location string
	}{
		{"BB-LG-001", "Third Mainland Gantry", "Third Mainland Bridge"},
		{"BB-LG-002", "Lekki Toll Portrait", "Lekki-Epe Expressway"},
		{"BB-LG-003", "Ikorodu Road Unipole", "Ikorodu Road"},
		{"BB-LG-004", "VI Waterfront LED", "Ozumba Mbadiwe Ave"},
		{"BB-AB-001", "Airport Road Gantry", "Airport Road, Abuja"},
		{"BB-AB-002", "Wuse Market Wall", "Wuse Zone 5, Abuja"},
	}

	campaigns := []struct {
		billboardCode, name, landingURL, status string
		startOffset, endOffset                  int // days relative to today
	}{
		{"BB-LG-001", "GTBank Savings Promo", "https://example.com/landing/gtbank-savings", "active", -30, 60},
		{"BB-LG-002", "MTN 5G Launch", "https://example.com/landing/mtn-5g", "active", -14, 90},
		{"BB-LG-003", "Coca-Cola Refresh", "https://example.com/landing/coke-refresh", "paused", -60, 30},
		{"BB-LG-004", "Access Bank DigiSave", "https://example.com/landing/digisave", "active", -7, 80},
		{"BB-AB-001", "Dangote Cement - Build Strong", "https://example.com/landing/dangote", "active", -20, 70},
		{"BB-AB-002", "Glo Unlimited Data", "https://example.com/landing/glo-data", "completed", -120, -30},
	}

	boardIDs := make(map[string]uuid.UUID, len(billboards))
	for _, b := range billboards {
		var id uuid.UUID
		err := db.QueryRow(ctx, `INSERT INTO billboards (code, name, location)
VALUES ($1,$2,$3)
ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name
RETURNING id`, b.code, b.name, b.location).Scan(&id)
		if err != nil {
			return fmt.Errorf("seed billboard %s: %w", b.code, err)
		}
		boardIDs[b.code] = id
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	campaignIDs := make([]uuid.UUID, 0, len(campaigns))
	campaignBoards := make([]uuid.UUID, 0, len(campaigns))
	for _, c := range campaigns {
		var id uuid.UUID
		err := db.QueryRow(ctx, `INSERT INTO campaigns
    (billboard_id, name, landing_url, status, start_date, end_date)
VALUES ($1,$2,$3,$4,$5,$6)
RETURNING id`,
			boardIDs[c.billboardCode], c.name, c.landingURL, c.status,
			today.AddDate(0, 0, c.startOffset), today.AddDate(0, 0, c.endOffset)).Scan(&id)
		if err != nil {
			return fmt.Errorf("seed campaign %s: %w", c.name, err)
		}
		campaignIDs = append(campaignIDs, id)
		campaignBoards = append(campaignBoards, boardIDs[c.billboardCode])
	}

	userAgents := []string{
		"Mozilla/5.0 (iPhone; CPU iPhone OS 17_4 like Mac OS X) AppleWebKit/605.1.15 Mobile/15E148",
		"Mozilla/5.0 (Linux; Android 14; SM-S921B) AppleWebKit/537.36 Mobile Safari/537.36",
		"Mozilla/5.0 (iPad; CPU OS 17_4 like Mac OS X) AppleWebKit/605.1.15",
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Safari/537.36",
		"Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
	}
	deviceFor := []string{"mobile", "mobile", "tablet", "desktop", "desktop"}

	for i := 0; i < 500; i++ {
		pick := r.Intn(len(campaignIDs))
		ua := r.Intn(len(userAgents))
		ip := fmt.Sprintf("102.89.%d.%d", r.Intn(256), r.Intn(256))
		scannedAt := time.Now().UTC().Add(-time.Duration(r.Intn(7*24)) * time.Hour)
		_, err := db.Exec(ctx, `INSERT INTO scan_events
    (billboard_id, campaign_id, ip_address, user_agent, device_type, is_bot, converted, scanned_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
			campaignBoards[pick], campaignIDs[pick], ip, userAgents[ua],
			deviceFor[ua], ua == 4, r.Intn(100) < 7, scannedAt)
		if err != nil {
			return fmt.Errorf("seed scan event: %w", err)
		}
	}
	return nil
}
