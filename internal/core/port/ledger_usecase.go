package port

import (
	"context"

	"bazaar-ads/internal/core/domain"
)

// CreateCampaignInput is the vendor request to open a campaign.
type CreateCampaignInput struct {
	VendorID       string
	ListingID      string // optional
	Type           domain.CampaignType
	Goal           domain.CampaignGoal
	DurationDays   int
	TargetLocation string
}

// Overview aggregates campaign totals for the admin dashboard. Revenue
// counts every campaign that was ever paid for and not refunded, i.e.
// everything except rejected and still-pending ones.
type Overview struct {
	TotalRevenue  int64
	Pending       int
	Active        int
	Paused        int
	Completed     int
	Rejected      int
	RevenueByType map[domain.CampaignType]int64
}

// LedgerUseCase is the inbound port of the promotion ledger. It groups
// the vendor-facing and admin-facing operations; both share the same
// invariants. Mock implementations are generated from this interface
// for handler tests.
type LedgerUseCase interface {
	// Vendor API.
	CreateCampaign(ctx context.Context, in CreateCampaignInput) (*domain.Campaign, error)
	TogglePause(ctx context.Context, vendorID, campaignID string) (*domain.Campaign, error)
	RecordEngagement(ctx context.Context, campaignID string, e Engagement) error
	VendorCampaigns(ctx context.Context, vendorID string) ([]domain.Campaign, error)
	Wallet(ctx context.Context, vendorID string) (*domain.Wallet, error)
	WalletHistory(ctx context.Context, vendorID string) ([]domain.Transaction, error)

	// Admin API.
	Approve(ctx context.Context, campaignID string) (*domain.Campaign, error)
	Reject(ctx context.Context, campaignID, reason string) (*domain.Campaign, error)
	Stop(ctx context.Context, campaignID string) (*domain.Campaign, error)
	TogglePriority(ctx context.Context, campaignID string) (*domain.Campaign, error)
	SetPricing(ctx context.Context, t domain.CampaignType, dailyRate int64) error
	Rates(ctx context.Context) (domain.PriceTable, error)
	Campaigns(ctx context.Context, f CampaignFilter) ([]domain.Campaign, error)
	Overview(ctx context.Context) (*Overview, error)
}
