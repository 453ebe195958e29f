package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"bazaar-ads/internal/core/domain"
	"bazaar-ads/internal/core/port"
)

// LedgerService implements port.LedgerUseCase. It validates input
// before any store access, decides the target transition and delegates
// the atomic multi-entity write to the repository, which re-checks the
// precondition under a row lock. The service never retries and never
// substitutes local state for a failed store write.
type LedgerService struct {
	repo    port.LedgerRepository
	pricing port.PricingRepository
}

// NewLedgerService creates a new ledger service with the provided
// repositories.
func NewLedgerService(repo port.LedgerRepository, pricing port.PricingRepository) *LedgerService {
	return &LedgerService{repo: repo, pricing: pricing}
}

// CreateCampaign opens a campaign in pending_approval, debiting the
// vendor wallet by the snapshot price and appending exactly one
// promotion transaction.
func (s *LedgerService) CreateCampaign(ctx context.Context, in port.CreateCampaignInput) (*domain.Campaign, error) {
	if in.VendorID == "" {
		return nil, fmt.Errorf("%w: vendor id required", port.ErrInvalidInput)
	}
	if !in.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown campaign type %q", port.ErrInvalidInput, in.Type)
	}
	if in.Goal == "" {
		in.Goal = domain.GoalTraffic
	}
	if !in.Goal.Valid() {
		return nil, fmt.Errorf("%w: unknown campaign goal %q", port.ErrInvalidInput, in.Goal)
	}
	if in.DurationDays < 1 {
		return nil, fmt.Errorf("%w: duration must be at least 1 day", port.ErrInvalidInput)
	}
	if in.TargetLocation == "" {
		in.TargetLocation = "all"
	}
	return s.repo.CreateCampaign(ctx, port.CreateCampaignParams{
		ID:             uuid.NewString(),
		TransactionID:  uuid.NewString(),
		VendorID:       in.VendorID,
		ListingID:      in.ListingID,
		Type:           in.Type,
		Goal:           in.Goal,
		DurationDays:   in.DurationDays,
		TargetLocation: in.TargetLocation,
		Description:    fmt.Sprintf("Promotion: %s for %d days", in.Type, in.DurationDays),
	})
}

// Approve activates a pending campaign. Approving twice succeeds at
// most once; the second call gets ErrInvalidState from the consuming
// precondition.
func (s *LedgerService) Approve(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	c, err := s.getCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	return s.repo.ApproveCampaign(ctx, campaignID, time.Now(), port.NotificationDraft{
		ID:      uuid.NewString(),
		UserID:  c.VendorID,
		Title:   "Ad request approved",
		Message: fmt.Sprintf("Your request to promote %q has been approved.", displayName(c)),
		Kind:    domain.KindSuccess,
		Link:    "vendor-dashboard",
	})
}

// Reject rejects a pending campaign and refunds exactly its total cost.
func (s *LedgerService) Reject(ctx context.Context, campaignID, reason string) (*domain.Campaign, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, fmt.Errorf("%w: rejection reason required", port.ErrInvalidInput)
	}
	c, err := s.getCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	return s.repo.RejectCampaign(ctx, campaignID, port.RejectParams{
		TransactionID: uuid.NewString(),
		Reason:        reason,
		Description:   fmt.Sprintf("Refund: ad rejected - %s", reason),
		Notify: port.NotificationDraft{
			ID:      uuid.NewString(),
			UserID:  c.VendorID,
			Title:   "Ad request rejected",
			Message: fmt.Sprintf("Your ad for %q was rejected: %s. Funds refunded.", displayName(c), reason),
			Kind:    domain.KindError,
			Link:    "wallet-history",
		},
	})
}

// Stop completes an active or paused campaign. No refund.
func (s *LedgerService) Stop(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	if campaignID == "" {
		return nil, fmt.Errorf("%w: campaign id required", port.ErrInvalidInput)
	}
	return s.repo.StopCampaign(ctx, campaignID)
}

// TogglePause flips a vendor's campaign between active and paused.
func (s *LedgerService) TogglePause(ctx context.Context, vendorID, campaignID string) (*domain.Campaign, error) {
	if vendorID == "" {
		return nil, fmt.Errorf("%w: vendor id required", port.ErrInvalidInput)
	}
	c, err := s.getCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c.VendorID != vendorID {
		return nil, fmt.Errorf("%w: campaign %s", port.ErrNotFound, campaignID)
	}
	switch c.Status {
	case domain.StatusActive:
		return s.repo.PauseCampaign(ctx, campaignID)
	case domain.StatusPaused:
		return s.repo.ResumeCampaign(ctx, campaignID)
	default:
		return nil, fmt.Errorf("%w: campaign %s is %s, not active or paused", port.ErrInvalidState, campaignID, c.Status)
	}
}

// TogglePriority flips an active campaign between normal and high
// placement priority. No wallet effect.
func (s *LedgerService) TogglePriority(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	c, err := s.getCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	next := domain.PriorityHigh
	if c.Priority == domain.PriorityHigh {
		next = domain.PriorityNormal
	}
	return s.repo.SetCampaignPriority(ctx, campaignID, next)
}

// SetPricing updates the daily rate of a campaign type. Existing
// campaigns keep their frozen total cost.
func (s *LedgerService) SetPricing(ctx context.Context, t domain.CampaignType, dailyRate int64) error {
	if !t.Valid() {
		return fmt.Errorf("%w: unknown campaign type %q", port.ErrInvalidInput, t)
	}
	if dailyRate <= 0 {
		return fmt.Errorf("%w: daily rate must be positive", port.ErrInvalidInput)
	}
	return s.pricing.SetRate(ctx, t, dailyRate)
}

// Rates returns the current price table.
func (s *LedgerService) Rates(ctx context.Context) (domain.PriceTable, error) {
	return s.pricing.GetRates(ctx)
}

// RecordEngagement applies monotonic counter increments to an active
// campaign.
func (s *LedgerService) RecordEngagement(ctx context.Context, campaignID string, e port.Engagement) error {
	if campaignID == "" {
		return fmt.Errorf("%w: campaign id required", port.ErrInvalidInput)
	}
	if e.Impressions < 0 || e.Clicks < 0 || e.Conversions < 0 {
		return fmt.Errorf("%w: engagement counters are monotonic, deltas must be non-negative", port.ErrInvalidInput)
	}
	return s.repo.RecordEngagement(ctx, campaignID, e)
}

// VendorCampaigns returns a vendor's campaigns, newest first.
func (s *LedgerService) VendorCampaigns(ctx context.Context, vendorID string) ([]domain.Campaign, error) {
	if vendorID == "" {
		return nil, fmt.Errorf("%w: vendor id required", port.ErrInvalidInput)
	}
	campaigns, err := s.repo.ListCampaigns(ctx, port.CampaignFilter{VendorID: vendorID})
	if err != nil {
		return nil, err
	}
	return SortByDateDesc(campaigns), nil
}

// Wallet returns a vendor's wallet.
func (s *LedgerService) Wallet(ctx context.Context, vendorID string) (*domain.Wallet, error) {
	w, err := s.repo.GetWallet(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, fmt.Errorf("%w: vendor %s", port.ErrNotFound, vendorID)
	}
	return w, nil
}

// WalletHistory returns a vendor's ledger entries, newest first.
func (s *LedgerService) WalletHistory(ctx context.Context, vendorID string) ([]domain.Transaction, error) {
	if vendorID == "" {
		return nil, fmt.Errorf("%w: vendor id required", port.ErrInvalidInput)
	}
	return s.repo.ListTransactions(ctx, vendorID)
}

// Campaigns returns campaigns matching the filter, newest first.
func (s *LedgerService) Campaigns(ctx context.Context, f port.CampaignFilter) ([]domain.Campaign, error) {
	return s.repo.ListCampaigns(ctx, f)
}

// Overview aggregates campaign totals for the admin dashboard from a
// point-in-time snapshot.
func (s *LedgerService) Overview(ctx context.Context) (*port.Overview, error) {
	campaigns, err := s.repo.ListCampaigns(ctx, port.CampaignFilter{})
	if err != nil {
		return nil, err
	}
	return BuildOverview(campaigns), nil
}

func (s *LedgerService) getCampaign(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	if campaignID == "" {
		return nil, fmt.Errorf("%w: campaign id required", port.ErrInvalidInput)
	}
	c, err := s.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w: campaign %s", port.ErrNotFound, campaignID)
	}
	return c, nil
}

func displayName(c *domain.Campaign) string {
	if c.ListingTitle != "" {
		return c.ListingTitle
	}
	return string(c.Type)
}
