package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo vendors, listings and campaigns for local
// development. All inserts use ON CONFLICT DO NOTHING so a re-run
// against a seeded database is harmless.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	categories := []string{"electronics", "furniture", "vehicles", "fashion", "books"}
	campaignTypes := []string{"featured_listing", "banner_ad", "social_boost"}
	// matches the rates installed by the initial migration
	dailyRates := map[string]int64{"featured_listing": 100, "banner_ad": 500, "social_boost": 300}
	goals := []string{"traffic", "calls", "awareness"}

	for i := 1; i <= 5; i++ {
		vendorID := fmt.Sprintf("vendor-%d", i)
		_, err := db.Exec(ctx, `INSERT INTO users
    (id, name, balance, total_spend, created_at, updated_at)
VALUES ($1,$2,$3,0,now(),now()) ON CONFLICT DO NOTHING`,
			vendorID, fmt.Sprintf("Demo Vendor %d", i), int64(10000))
		if err != nil {
			return err
		}

		for j := 1; j <= 4; j++ {
			listingID := fmt.Sprintf("listing-%d-%d", i, j)
			category := categories[r.Intn(len(categories))]
			_, err = db.Exec(ctx, `INSERT INTO listings
    (id, vendor_id, title, image_url, status, is_promoted, created_at, updated_at)
VALUES ($1,$2,$3,$4,'active',false,now(),now()) ON CONFLICT DO NOTHING`,
				listingID, vendorID,
				fmt.Sprintf("Demo %s item %d", category, j),
				fmt.Sprintf("https://example.com/images/%s.jpg", listingID))
			if err != nil {
				return err
			}
		}

		// one pending campaign per vendor so the admin queue is not empty
		campaignID := uuid.NewString()
		txID := uuid.NewString()
		ctype := campaignTypes[r.Intn(len(campaignTypes))]
		goal := goals[r.Intn(len(goals))]
		days := 3 + r.Intn(12)
		cost := dailyRates[ctype] * int64(days)
		_, err = db.Exec(ctx, `INSERT INTO campaigns
    (id, vendor_id, listing_id, listing_title, listing_image, type, goal, status,
     duration_days, total_cost, target_location, priority, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,'pending_approval',$8,$9,'all','normal',now(),now())
ON CONFLICT DO NOTHING`,
			campaignID, vendorID, fmt.Sprintf("listing-%d-1", i),
			fmt.Sprintf("Demo %s item 1", categories[0]),
			fmt.Sprintf("https://example.com/images/listing-%d-1.jpg", i),
			ctype, goal, days, cost)
		if err != nil {
			return err
		}
		_, err = db.Exec(ctx, `INSERT INTO wallet_transactions
    (id, user_id, type, amount, status, description, created_at)
VALUES ($1,$2,'promotion',$3,'completed',$4,now()) ON CONFLICT DO NOTHING`,
			txID, vendorID, cost, fmt.Sprintf("Promotion: %s for %d days", ctype, days))
		if err != nil {
			return err
		}
		_, err = db.Exec(ctx, `UPDATE users SET balance = balance - $1,
    total_spend = total_spend + $1 WHERE id = $2 AND balance >= $1`, cost, vendorID)
		if err != nil {
			return err
		}
	}
	return nil
}
