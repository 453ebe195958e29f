package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bazaar-ads/internal/core/domain"
	"bazaar-ads/internal/core/port"
	"bazaar-ads/internal/metrics"
)

// LedgerRepository implements port.LedgerRepository on PostgreSQL using
// pgxpool. Every mutating operation runs in a single serializable
// transaction; the campaign (or wallet) row is locked with FOR UPDATE so
// the precondition check and the write are atomic with respect to
// concurrent callers. Infrastructure failures surface as
// port.ErrStoreUnavailable after rollback; there is no local fallback.
type LedgerRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewLedgerRepository returns a new repository instance.
func NewLedgerRepository(pool *pgxpool.Pool, logger *slog.Logger) *LedgerRepository {
	return &LedgerRepository{pool: pool, logger: logger}
}

// storeErr wraps an infrastructure error so callers can match it with
// errors.Is(err, port.ErrStoreUnavailable). Precondition errors pass
// through untouched.
func storeErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, port.ErrNotFound),
		errors.Is(err, port.ErrInvalidState),
		errors.Is(err, port.ErrInvalidInput),
		errors.Is(err, port.ErrInsufficientFunds):
		return err
	}
	return fmt.Errorf("%w: %v", port.ErrStoreUnavailable, err)
}

const campaignColumns = `id, vendor_id, COALESCE(listing_id, ''), listing_title, listing_image,
	type, goal, status, start_date, end_date, duration_days, total_cost,
	target_location, priority, impressions, clicks, conversions, created_at, updated_at`

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var (
		c          domain.Campaign
		start, end *time.Time
	)
	err := row.Scan(
		&c.ID, &c.VendorID, &c.ListingID, &c.ListingTitle, &c.ListingImage,
		&c.Type, &c.Goal, &c.Status, &start, &end, &c.DurationDays, &c.TotalCost,
		&c.TargetLocation, &c.Priority, &c.Impressions, &c.Clicks, &c.Conversions,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if start != nil {
		c.StartDate = *start
	}
	if end != nil {
		c.EndDate = *end
	}
	return &c, nil
}

// lockCampaign reads a campaign row under FOR UPDATE inside tx.
func lockCampaign(ctx context.Context, tx pgx.Tx, id string) (*domain.Campaign, error) {
	c, err := scanCampaign(tx.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = $1 FOR UPDATE`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: campaign %s", port.ErrNotFound, id)
	}
	return c, err
}

func insertOutbox(ctx context.Context, tx pgx.Tx, n port.NotificationDraft) error {
	_, err := tx.Exec(ctx, `INSERT INTO notification_outbox
		(id, user_id, title, message, kind, link, status, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,'pending',$7)`,
		n.ID, n.UserID, n.Title, n.Message, n.Kind, n.Link, time.Now().UTC())
	return err
}

// CreateCampaign debits the wallet, appends the promotion transaction
// and inserts the campaign in pending_approval as one transaction. The
// daily rate is read inside the same transaction, so a concurrent price
// change cannot affect a creation already in flight.
func (r *LedgerRepository) CreateCampaign(ctx context.Context, p port.CreateCampaignParams) (_ *domain.Campaign, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return nil, storeErr(err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var dailyRate int64
	err = tx.QueryRow(ctx, `SELECT daily_rate FROM ad_pricing WHERE type = $1`, p.Type).Scan(&dailyRate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: no pricing for type %s", port.ErrInvalidInput, p.Type)
	}
	if err != nil {
		return nil, storeErr(err)
	}
	totalCost := dailyRate * int64(p.DurationDays)

	// lock wallet
	var balance int64
	err = tx.QueryRow(ctx, `SELECT balance FROM users WHERE id = $1 FOR UPDATE`, p.VendorID).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: vendor %s", port.ErrNotFound, p.VendorID)
	}
	if err != nil {
		return nil, storeErr(err)
	}

	var listingTitle, listingImage string
	if p.ListingID != "" {
		var (
			ownerID, status string
			activeCampaign  *string
		)
		err = tx.QueryRow(ctx, `SELECT vendor_id, status, active_campaign_id, title, image_url
			FROM listings WHERE id = $1 FOR UPDATE`, p.ListingID).
			Scan(&ownerID, &status, &activeCampaign, &listingTitle, &listingImage)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: listing %s", port.ErrNotFound, p.ListingID)
		}
		if err != nil {
			return nil, storeErr(err)
		}
		if ownerID != p.VendorID {
			return nil, fmt.Errorf("%w: listing %s does not belong to vendor %s", port.ErrInvalidInput, p.ListingID, p.VendorID)
		}
		if status != "active" {
			return nil, fmt.Errorf("%w: listing %s is %s", port.ErrInvalidState, p.ListingID, status)
		}
		if activeCampaign != nil && *activeCampaign != "" {
			return nil, fmt.Errorf("%w: listing %s already has an active campaign", port.ErrInvalidState, p.ListingID)
		}
	}

	if balance < totalCost {
		metrics.IncInsufficientFunds()
		return nil, fmt.Errorf("%w: balance %d, need %d", port.ErrInsufficientFunds, balance, totalCost)
	}

	now := time.Now().UTC()
	_, err = tx.Exec(ctx, `UPDATE users SET balance = balance - $1, total_spend = total_spend + $1,
		updated_at = $2 WHERE id = $3`, totalCost, now, p.VendorID)
	if err != nil {
		return nil, storeErr(err)
	}
	_, err = tx.Exec(ctx, `INSERT INTO wallet_transactions (id, user_id, type, amount, status, description, created_at)
		VALUES ($1,$2,$3,$4,'completed',$5,$6)`,
		p.TransactionID, p.VendorID, domain.TxPromotion, totalCost, p.Description, now)
	if err != nil {
		return nil, storeErr(err)
	}

	c := &domain.Campaign{
		ID:             p.ID,
		VendorID:       p.VendorID,
		ListingID:      p.ListingID,
		ListingTitle:   listingTitle,
		ListingImage:   listingImage,
		Type:           p.Type,
		Goal:           p.Goal,
		Status:         domain.StatusPendingApproval,
		DurationDays:   p.DurationDays,
		TotalCost:      totalCost,
		TargetLocation: p.TargetLocation,
		Priority:       domain.PriorityNormal,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	_, err = tx.Exec(ctx, `INSERT INTO campaigns
		(id, vendor_id, listing_id, listing_title, listing_image, type, goal, status,
		 duration_days, total_cost, target_location, priority, created_at, updated_at)
		VALUES ($1,$2,NULLIF($3,''),$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$13)`,
		c.ID, c.VendorID, c.ListingID, c.ListingTitle, c.ListingImage, c.Type, c.Goal,
		c.Status, c.DurationDays, c.TotalCost, c.TargetLocation, c.Priority, now)
	if err != nil {
		return nil, storeErr(err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, storeErr(err)
	}
	return c, nil
}

// ApproveCampaign activates a pending campaign, stamps its run window,
// links the listing and enqueues the vendor notification atomically.
// The pending precondition is re-checked under the row lock, so of two
// concurrent approvals exactly one succeeds.
func (r *LedgerRepository) ApproveCampaign(ctx context.Context, campaignID string, now time.Time, notify port.NotificationDraft) (_ *domain.Campaign, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return nil, storeErr(err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	c, err := lockCampaign(ctx, tx, campaignID)
	if err != nil {
		return nil, storeErr(err)
	}
	if c.Status != domain.StatusPendingApproval {
		return nil, fmt.Errorf("%w: campaign %s is %s, not pending_approval", port.ErrInvalidState, campaignID, c.Status)
	}

	now = now.UTC()
	start := now
	end := now.Add(time.Duration(c.DurationDays) * 24 * time.Hour)
	_, err = tx.Exec(ctx, `UPDATE campaigns SET status = $1, start_date = $2, end_date = $3,
		priority = $4, updated_at = $5 WHERE id = $6`,
		domain.StatusActive, start, end, domain.PriorityNormal, now, campaignID)
	if err != nil {
		return nil, storeErr(err)
	}
	if c.ListingID != "" {
		// two pending campaigns can reference the same listing; the slot
		// is claimed here, under the listing lock, by whichever approval
		// commits first
		var activeCampaign *string
		err = tx.QueryRow(ctx, `SELECT active_campaign_id FROM listings WHERE id = $1 FOR UPDATE`,
			c.ListingID).Scan(&activeCampaign)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: listing %s", port.ErrNotFound, c.ListingID)
		}
		if err != nil {
			return nil, storeErr(err)
		}
		if activeCampaign != nil && *activeCampaign != "" && *activeCampaign != campaignID {
			return nil, fmt.Errorf("%w: listing %s is promoted by another campaign", port.ErrInvalidState, c.ListingID)
		}
		_, err = tx.Exec(ctx, `UPDATE listings SET is_promoted = true, active_campaign_id = $1,
			updated_at = $2 WHERE id = $3`, campaignID, now, c.ListingID)
		if err != nil {
			return nil, storeErr(err)
		}
	}
	if err = insertOutbox(ctx, tx, notify); err != nil {
		return nil, storeErr(err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, storeErr(err)
	}
	c.Status = domain.StatusActive
	c.StartDate = start
	c.EndDate = end
	c.Priority = domain.PriorityNormal
	c.UpdatedAt = now
	return c, nil
}

// RejectCampaign rejects a pending campaign and refunds exactly its
// total cost. The pending precondition consumes the state, so a retry
// or a concurrent reject can never refund twice.
func (r *LedgerRepository) RejectCampaign(ctx context.Context, campaignID string, p port.RejectParams) (_ *domain.Campaign, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return nil, storeErr(err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	c, err := lockCampaign(ctx, tx, campaignID)
	if err != nil {
		return nil, storeErr(err)
	}
	if c.Status != domain.StatusPendingApproval {
		return nil, fmt.Errorf("%w: campaign %s is %s, not pending_approval", port.ErrInvalidState, campaignID, c.Status)
	}

	now := time.Now().UTC()
	refund := c.TotalCost

	_, err = tx.Exec(ctx, `UPDATE campaigns SET status = $1, updated_at = $2 WHERE id = $3`,
		domain.StatusRejected, now, campaignID)
	if err != nil {
		return nil, storeErr(err)
	}
	if c.ListingID != "" {
		// guarded: only unlink when the listing still points at this campaign
		_, err = tx.Exec(ctx, `UPDATE listings SET is_promoted = false, active_campaign_id = NULL,
			updated_at = $1 WHERE id = $2 AND active_campaign_id = $3`, now, c.ListingID, campaignID)
		if err != nil {
			return nil, storeErr(err)
		}
	}

	var totalSpend int64
	err = tx.QueryRow(ctx, `SELECT total_spend FROM users WHERE id = $1 FOR UPDATE`, c.VendorID).Scan(&totalSpend)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: vendor %s", port.ErrNotFound, c.VendorID)
	}
	if err != nil {
		return nil, storeErr(err)
	}
	if totalSpend < refund {
		// the clamp below keeps total_spend at zero; an understated
		// counter is worth surfacing rather than silently absorbing
		r.logger.Warn("total_spend below refund, clamping to zero",
			slog.String("vendor_id", c.VendorID),
			slog.Int64("total_spend", totalSpend),
			slog.Int64("refund", refund))
		metrics.IncSpendClamp()
	}
	_, err = tx.Exec(ctx, `UPDATE users SET balance = balance + $1,
		total_spend = GREATEST(total_spend - $1, 0), updated_at = $2 WHERE id = $3`,
		refund, now, c.VendorID)
	if err != nil {
		return nil, storeErr(err)
	}
	_, err = tx.Exec(ctx, `INSERT INTO wallet_transactions (id, user_id, type, amount, status, description, created_at)
		VALUES ($1,$2,$3,$4,'completed',$5,$6)`,
		p.TransactionID, c.VendorID, domain.TxAdjustment, refund, p.Description, now)
	if err != nil {
		return nil, storeErr(err)
	}
	if err = insertOutbox(ctx, tx, p.Notify); err != nil {
		return nil, storeErr(err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, storeErr(err)
	}
	metrics.IncRefund(refund)
	c.Status = domain.StatusRejected
	c.UpdatedAt = now
	return c, nil
}

// StopCampaign completes an active or paused campaign and unlinks the
// listing. No refund: a campaign that already ran keeps its charge.
func (r *LedgerRepository) StopCampaign(ctx context.Context, campaignID string) (_ *domain.Campaign, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return nil, storeErr(err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	c, err := lockCampaign(ctx, tx, campaignID)
	if err != nil {
		return nil, storeErr(err)
	}
	if c.Status != domain.StatusActive && c.Status != domain.StatusPaused {
		return nil, fmt.Errorf("%w: campaign %s is %s, not active or paused", port.ErrInvalidState, campaignID, c.Status)
	}

	now := time.Now().UTC()
	_, err = tx.Exec(ctx, `UPDATE campaigns SET status = $1, updated_at = $2 WHERE id = $3`,
		domain.StatusCompleted, now, campaignID)
	if err != nil {
		return nil, storeErr(err)
	}
	if c.ListingID != "" {
		_, err = tx.Exec(ctx, `UPDATE listings SET is_promoted = false, active_campaign_id = NULL,
			updated_at = $1 WHERE id = $2 AND active_campaign_id = $3`, now, c.ListingID, campaignID)
		if err != nil {
			return nil, storeErr(err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, storeErr(err)
	}
	c.Status = domain.StatusCompleted
	c.UpdatedAt = now
	return c, nil
}

// PauseCampaign pauses an active campaign. The listing's promotion
// fields are cleared so IsPromoted keeps meaning "has an active
// campaign"; the link is restored on resume.
func (r *LedgerRepository) PauseCampaign(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	return r.setRunState(ctx, campaignID, domain.StatusActive, domain.StatusPaused)
}

// ResumeCampaign re-activates a paused campaign. If another campaign
// took the listing's promotion slot while this one was paused, the
// resume fails with ErrInvalidState.
func (r *LedgerRepository) ResumeCampaign(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	return r.setRunState(ctx, campaignID, domain.StatusPaused, domain.StatusActive)
}

func (r *LedgerRepository) setRunState(ctx context.Context, campaignID string, from, to domain.CampaignStatus) (_ *domain.Campaign, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return nil, storeErr(err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	c, err := lockCampaign(ctx, tx, campaignID)
	if err != nil {
		return nil, storeErr(err)
	}
	if c.Status != from {
		return nil, fmt.Errorf("%w: campaign %s is %s, not %s", port.ErrInvalidState, campaignID, c.Status, from)
	}

	now := time.Now().UTC()
	if c.ListingID != "" {
		if to == domain.StatusActive {
			var activeCampaign *string
			err = tx.QueryRow(ctx, `SELECT active_campaign_id FROM listings WHERE id = $1 FOR UPDATE`,
				c.ListingID).Scan(&activeCampaign)
			if err != nil && !errors.Is(err, pgx.ErrNoRows) {
				return nil, storeErr(err)
			}
			if activeCampaign != nil && *activeCampaign != "" && *activeCampaign != campaignID {
				return nil, fmt.Errorf("%w: listing %s is promoted by another campaign", port.ErrInvalidState, c.ListingID)
			}
			_, err = tx.Exec(ctx, `UPDATE listings SET is_promoted = true, active_campaign_id = $1,
				updated_at = $2 WHERE id = $3`, campaignID, now, c.ListingID)
		} else {
			_, err = tx.Exec(ctx, `UPDATE listings SET is_promoted = false, active_campaign_id = NULL,
				updated_at = $1 WHERE id = $2 AND active_campaign_id = $3`, now, c.ListingID, campaignID)
		}
		if err != nil {
			return nil, storeErr(err)
		}
	}
	_, err = tx.Exec(ctx, `UPDATE campaigns SET status = $1, updated_at = $2 WHERE id = $3`,
		to, now, campaignID)
	if err != nil {
		return nil, storeErr(err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, storeErr(err)
	}
	c.Status = to
	c.UpdatedAt = now
	return c, nil
}

// SetCampaignPriority flips placement priority of an active campaign.
func (r *LedgerRepository) SetCampaignPriority(ctx context.Context, campaignID string, p domain.Priority) (_ *domain.Campaign, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return nil, storeErr(err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	c, err := lockCampaign(ctx, tx, campaignID)
	if err != nil {
		return nil, storeErr(err)
	}
	if c.Status != domain.StatusActive {
		return nil, fmt.Errorf("%w: campaign %s is %s, not active", port.ErrInvalidState, campaignID, c.Status)
	}

	now := time.Now().UTC()
	_, err = tx.Exec(ctx, `UPDATE campaigns SET priority = $1, updated_at = $2 WHERE id = $3`, p, now, campaignID)
	if err != nil {
		return nil, storeErr(err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, storeErr(err)
	}
	c.Priority = p
	c.UpdatedAt = now
	return c, nil
}

// RecordEngagement applies counter increments with a single atomic
// update guarded by the active status, so concurrent increments never
// lose an update.
func (r *LedgerRepository) RecordEngagement(ctx context.Context, campaignID string, e port.Engagement) error {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns SET
		impressions = impressions + $1, clicks = clicks + $2, conversions = conversions + $3,
		updated_at = $4 WHERE id = $5 AND status = $6`,
		e.Impressions, e.Clicks, e.Conversions, time.Now().UTC(), campaignID, domain.StatusActive)
	if err != nil {
		return storeErr(err)
	}
	if tag.RowsAffected() == 0 {
		var status domain.CampaignStatus
		err = r.pool.QueryRow(ctx, `SELECT status FROM campaigns WHERE id = $1`, campaignID).Scan(&status)
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: campaign %s", port.ErrNotFound, campaignID)
		}
		if err != nil {
			return storeErr(err)
		}
		return fmt.Errorf("%w: campaign %s is %s, not active", port.ErrInvalidState, campaignID, status)
	}
	return nil
}

// GetCampaign returns a campaign by id, nil when absent.
func (r *LedgerRepository) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return c, nil
}

// ListCampaigns returns campaigns matching the filter, newest first.
func (r *LedgerRepository) ListCampaigns(ctx context.Context, f port.CampaignFilter) ([]domain.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns`
	var (
		where []string
		args  []interface{}
	)
	if f.VendorID != "" {
		args = append(args, f.VendorID)
		where = append(where, fmt.Sprintf("vendor_id = $%d", len(args)))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	for i, w := range where {
		if i == 0 {
			query += " WHERE " + w
		} else {
			query += " AND " + w
		}
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, storeErr(err)
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		c, err := scanCampaign(row)
		if err != nil {
			return domain.Campaign{}, err
		}
		return *c, nil
	})
	if err != nil {
		return nil, storeErr(err)
	}
	return list, nil
}

// GetListing returns a listing by id, nil when absent.
func (r *LedgerRepository) GetListing(ctx context.Context, id string) (*domain.Listing, error) {
	var l domain.Listing
	err := r.pool.QueryRow(ctx, `SELECT id, vendor_id, title, image_url, status, is_promoted,
		COALESCE(active_campaign_id, ''), created_at, updated_at FROM listings WHERE id = $1`, id).
		Scan(&l.ID, &l.VendorID, &l.Title, &l.ImageURL, &l.Status, &l.IsPromoted,
			&l.ActiveCampaignID, &l.CreatedAt, &l.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return &l, nil
}

// GetWallet returns the wallet of a vendor, nil when absent.
func (r *LedgerRepository) GetWallet(ctx context.Context, vendorID string) (*domain.Wallet, error) {
	w := domain.Wallet{VendorID: vendorID}
	err := r.pool.QueryRow(ctx, `SELECT balance, total_spend FROM users WHERE id = $1`, vendorID).
		Scan(&w.Balance, &w.TotalSpend)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return &w, nil
}

// ListTransactions returns a user's ledger entries, newest first.
func (r *LedgerRepository) ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, user_id, type, amount, status, description, created_at
		FROM wallet_transactions WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, storeErr(err)
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Transaction, error) {
		var t domain.Transaction
		err := row.Scan(&t.ID, &t.UserID, &t.Type, &t.Amount, &t.Status, &t.Description, &t.CreatedAt)
		return t, err
	})
	if err != nil {
		return nil, storeErr(err)
	}
	return list, nil
}
