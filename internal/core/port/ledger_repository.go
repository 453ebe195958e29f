package port

import (
	"context"
	"time"

	"bazaar-ads/internal/core/domain"
)

// NotificationDraft is the user-facing message an operation enqueues
// through the outbox inside the same transaction as its ledger mutation.
// Delivery happens later and independently; a failed delivery never
// rolls the operation back.
type NotificationDraft struct {
	ID      string
	UserID  string
	Title   string
	Message string
	Kind    domain.NotificationKind
	Link    string
}

// CreateCampaignParams carries everything needed to open a campaign.
// The repository reads the price snapshot, locks the wallet, debits it
// and inserts the campaign plus its promotion transaction atomically.
type CreateCampaignParams struct {
	ID             string
	TransactionID  string
	VendorID       string
	ListingID      string // optional
	Type           domain.CampaignType
	Goal           domain.CampaignGoal
	DurationDays   int
	TargetLocation string
	Description    string // wallet transaction description
}

// RejectParams carries the refund transaction and notification written
// when a pending campaign is rejected.
type RejectParams struct {
	TransactionID string
	Reason        string
	Description   string
	Notify        NotificationDraft
}

// Engagement is a batch of monotonic counter increments for an active
// campaign. All deltas are non-negative.
type Engagement struct {
	Impressions int64
	Clicks      int64
	Conversions int64
}

// CampaignFilter selects campaigns on the read side. Zero values match
// everything.
type CampaignFilter struct {
	VendorID string
	Status   domain.CampaignStatus
}

// LedgerRepository is the outbound port to the entity store. Every
// mutating method runs as a single all-or-nothing transaction: the
// precondition check and the write are atomic with respect to other
// callers, so concurrent operations against the same campaign
// serialize. Infrastructure failures are reported as ErrStoreUnavailable
// after full rollback; precondition failures as ErrInvalidState,
// ErrNotFound or ErrInsufficientFunds.
type LedgerRepository interface {
	// CreateCampaign debits the vendor wallet by the snapshot price of
	// the campaign, appends a promotion transaction and inserts the
	// campaign in pending_approval, all atomically.
	CreateCampaign(ctx context.Context, p CreateCampaignParams) (*domain.Campaign, error)

	// ApproveCampaign moves pending_approval to active, stamps the run
	// window starting at now, links the listing and enqueues the
	// notification. A campaign that is not pending fails with
	// ErrInvalidState; the transition consumes the pending state so a
	// second approve cannot succeed. The listing's promotion slot is
	// claimed under its row lock, so approving a second pending campaign
	// on the same listing also fails with ErrInvalidState.
	ApproveCampaign(ctx context.Context, campaignID string, now time.Time, notify NotificationDraft) (*domain.Campaign, error)

	// RejectCampaign moves pending_approval to rejected, refunds exactly
	// the campaign's total cost, appends an adjustment transaction,
	// unlinks the listing when it points at this campaign and enqueues
	// the notification.
	RejectCampaign(ctx context.Context, campaignID string, p RejectParams) (*domain.Campaign, error)

	// StopCampaign moves active or paused to completed and unlinks the
	// listing. No refund.
	StopCampaign(ctx context.Context, campaignID string) (*domain.Campaign, error)

	// PauseCampaign moves active to paused and clears the listing's
	// promotion fields, keeping IsPromoted equal to "has an active
	// campaign".
	PauseCampaign(ctx context.Context, campaignID string) (*domain.Campaign, error)

	// ResumeCampaign moves paused back to active and restores the
	// listing's promotion fields. Fails with ErrInvalidState when
	// another campaign took the listing's promotion slot meanwhile.
	ResumeCampaign(ctx context.Context, campaignID string) (*domain.Campaign, error)

	// SetCampaignPriority changes placement priority of an active
	// campaign. No wallet effect.
	SetCampaignPriority(ctx context.Context, campaignID string, p domain.Priority) (*domain.Campaign, error)

	// RecordEngagement applies monotonic counter increments to an
	// active campaign.
	RecordEngagement(ctx context.Context, campaignID string, e Engagement) error

	// GetCampaign returns a campaign by id, nil when absent.
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	// ListCampaigns returns campaigns matching the filter, newest first.
	ListCampaigns(ctx context.Context, f CampaignFilter) ([]domain.Campaign, error)
	// GetListing returns a listing by id, nil when absent.
	GetListing(ctx context.Context, id string) (*domain.Listing, error)
	// GetWallet returns the wallet of a vendor, nil when absent.
	GetWallet(ctx context.Context, vendorID string) (*domain.Wallet, error)
	// ListTransactions returns a user's ledger entries, newest first.
	ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)
}

// PricingRepository stores the daily rates per campaign type. GetRates
// is a consistent snapshot; a concurrent SetRate never affects a
// campaign creation already in flight.
type PricingRepository interface {
	GetRates(ctx context.Context) (domain.PriceTable, error)
	SetRate(ctx context.Context, t domain.CampaignType, dailyRate int64) error
}

// NotificationOutbox exposes the pending side of the outbox to the
// delivery worker.
type NotificationOutbox interface {
	PendingNotifications(ctx context.Context, limit int) ([]domain.OutboxNotification, error)
	MarkDelivered(ctx context.Context, id string) error
}

// NotificationSink persists a notification for later display. Delivery
// is best-effort from the engine's perspective.
type NotificationSink interface {
	Publish(ctx context.Context, n domain.Notification) error
}
