package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bazaar-ads/internal/core/domain"
)

// OutboxRepository reads pending notifications written by ledger
// transactions and persists delivered ones into the notifications
// table. It implements both port.NotificationOutbox and
// port.NotificationSink.
type OutboxRepository struct {
	pool *pgxpool.Pool
}

// NewOutboxRepository returns a new repository instance.
func NewOutboxRepository(pool *pgxpool.Pool) *OutboxRepository {
	return &OutboxRepository{pool: pool}
}

// PendingNotifications returns up to limit undelivered outbox rows,
// oldest first.
func (r *OutboxRepository) PendingNotifications(ctx context.Context, limit int) ([]domain.OutboxNotification, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, user_id, title, message, kind, link, created_at
		FROM notification_outbox WHERE status = $1 ORDER BY created_at LIMIT $2`,
		domain.OutboxPending, limit)
	if err != nil {
		return nil, storeErr(err)
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.OutboxNotification, error) {
		var n domain.OutboxNotification
		n.OutboxStatus = domain.OutboxPending
		err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Kind, &n.Link, &n.CreatedAt)
		return n, err
	})
	if err != nil {
		return nil, storeErr(err)
	}
	return list, nil
}

// MarkDelivered stamps an outbox row as delivered.
func (r *OutboxRepository) MarkDelivered(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `UPDATE notification_outbox SET status = $1, delivered_at = $2 WHERE id = $3`,
		domain.OutboxDelivered, time.Now().UTC(), id)
	return storeErr(err)
}

// Publish inserts a notification for later display.
func (r *OutboxRepository) Publish(ctx context.Context, n domain.Notification) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO notifications (id, user_id, title, message, kind, link, is_read, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,false,$7) ON CONFLICT (id) DO NOTHING`,
		n.ID, n.UserID, n.Title, n.Message, n.Kind, n.Link, n.CreatedAt)
	return storeErr(err)
}
