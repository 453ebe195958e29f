package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bazaar-ads/internal/core/domain"
)

// PricingRepository implements port.PricingRepository on PostgreSQL.
type PricingRepository struct {
	pool *pgxpool.Pool
}

// NewPricingRepository returns a new repository instance.
func NewPricingRepository(pool *pgxpool.Pool) *PricingRepository {
	return &PricingRepository{pool: pool}
}

// GetRates returns the current daily rates per campaign type.
func (r *PricingRepository) GetRates(ctx context.Context) (domain.PriceTable, error) {
	rows, err := r.pool.Query(ctx, `SELECT type, daily_rate FROM ad_pricing`)
	if err != nil {
		return nil, storeErr(err)
	}
	rates := domain.PriceTable{}
	_, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (struct{}, error) {
		var (
			t    domain.CampaignType
			rate int64
		)
		if err := row.Scan(&t, &rate); err != nil {
			return struct{}{}, err
		}
		rates[t] = rate
		return struct{}{}, nil
	})
	if err != nil {
		return nil, storeErr(err)
	}
	return rates, nil
}

// SetRate upserts the daily rate of a campaign type. Already-created
// campaigns keep their frozen total cost.
func (r *PricingRepository) SetRate(ctx context.Context, t domain.CampaignType, dailyRate int64) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO ad_pricing (type, daily_rate, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (type) DO UPDATE SET daily_rate = EXCLUDED.daily_rate, updated_at = EXCLUDED.updated_at`,
		t, dailyRate, time.Now().UTC())
	return storeErr(err)
}
