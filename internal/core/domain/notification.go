package domain

import "time"

// NotificationKind mirrors the display style of a user notification.
type NotificationKind string

const (
	KindInfo    NotificationKind = "info"
	KindSuccess NotificationKind = "success"
	KindWarning NotificationKind = "warning"
	KindError   NotificationKind = "error"
)

// Notification is a user-facing message persisted for later display.
type Notification struct {
	ID        string
	UserID    string
	Title     string
	Message   string
	Kind      NotificationKind
	Link      string
	IsRead    bool
	CreatedAt time.Time
}

// OutboxStatus tracks delivery of a notification written through the
// outbox: the row is inserted inside the same transaction as the ledger
// mutation and delivered asynchronously by a worker.
type OutboxStatus string

const (
	OutboxPending   OutboxStatus = "pending"
	OutboxDelivered OutboxStatus = "delivered"
)

// OutboxNotification is a notification awaiting delivery.
type OutboxNotification struct {
	Notification
	OutboxStatus OutboxStatus
	DeliveredAt  time.Time
}
