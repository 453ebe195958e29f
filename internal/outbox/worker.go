// Package outbox delivers notifications enqueued by ledger transactions.
// Rows are written to the outbox table inside the same transaction as
// the wallet mutation, so a notification exists if and only if its
// operation committed. This worker moves them to the user-visible
// notification store afterwards.
package outbox

import (
	"context"
	"log/slog"
	"time"

	"bazaar-ads/internal/core/port"
	"bazaar-ads/internal/metrics"
)

const (
	defaultInterval  = 5 * time.Second
	defaultBatchSize = 50
)

// Worker polls the outbox and publishes pending notifications. Delivery
// is at-least-once: a row is marked delivered only after a successful
// publish, and the sink upserts by id, so a crash between the two steps
// causes a harmless duplicate publish on the next tick.
type Worker struct {
	outbox   port.NotificationOutbox
	sink     port.NotificationSink
	logger   *slog.Logger
	interval time.Duration
	batch    int
}

// Option configures a Worker.
type Option func(*Worker)

// WithInterval sets the polling interval.
func WithInterval(d time.Duration) Option {
	return func(w *Worker) { w.interval = d }
}

// WithBatchSize caps how many notifications one tick delivers.
func WithBatchSize(n int) Option {
	return func(w *Worker) { w.batch = n }
}

// NewWorker creates a delivery worker.
func NewWorker(outbox port.NotificationOutbox, sink port.NotificationSink, logger *slog.Logger, opts ...Option) *Worker {
	w := &Worker{
		outbox:   outbox,
		sink:     sink,
		logger:   logger,
		interval: defaultInterval,
		batch:    defaultBatchSize,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run polls until ctx is cancelled. It always returns ctx.Err().
func (w *Worker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info("outbox worker started", "interval", w.interval, "batch", w.batch)
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("outbox worker stopped")
			return ctx.Err()
		case <-ticker.C:
			if n, err := w.DeliverPending(ctx); err != nil {
				w.logger.Error("outbox delivery pass failed", "error", err)
			} else if n > 0 {
				w.logger.Debug("delivered notifications", "count", n)
			}
		}
	}
}

// DeliverPending publishes one batch of pending notifications and
// returns how many were delivered. Failures on individual rows are
// logged and left pending for the next pass.
func (w *Worker) DeliverPending(ctx context.Context) (int, error) {
	pending, err := w.outbox.PendingNotifications(ctx, w.batch)
	if err != nil {
		return 0, err
	}
	metrics.SetOutboxPending(len(pending))

	delivered := 0
	for _, n := range pending {
		if err := w.sink.Publish(ctx, n.Notification); err != nil {
			w.logger.Warn("notification publish failed, will retry",
				"notification_id", n.ID, "user_id", n.UserID, "error", err)
			metrics.IncNotificationRetry()
			continue
		}
		if err := w.outbox.MarkDelivered(ctx, n.ID); err != nil {
			// the next pass republishes; Publish is idempotent by id
			w.logger.Warn("failed to mark notification delivered",
				"notification_id", n.ID, "error", err)
			continue
		}
		delivered++
	}
	metrics.IncNotificationsDelivered(delivered)
	return delivered, nil
}
