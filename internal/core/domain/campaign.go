package domain

import "time"

// CampaignType identifies the promotion product a vendor purchases.
type CampaignType string

const (
	TypeFeaturedListing CampaignType = "featured_listing"
	TypeBannerAd        CampaignType = "banner_ad"
	TypeSocialBoost     CampaignType = "social_boost"
)

// Valid reports whether t is a known campaign type.
func (t CampaignType) Valid() bool {
	switch t {
	case TypeFeaturedListing, TypeBannerAd, TypeSocialBoost:
		return true
	}
	return false
}

// CampaignGoal describes what the vendor wants out of the campaign.
type CampaignGoal string

const (
	GoalTraffic   CampaignGoal = "traffic"
	GoalCalls     CampaignGoal = "calls"
	GoalAwareness CampaignGoal = "awareness"
)

// Valid reports whether g is a known campaign goal.
func (g CampaignGoal) Valid() bool {
	switch g {
	case GoalTraffic, GoalCalls, GoalAwareness:
		return true
	}
	return false
}

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	StatusPendingApproval CampaignStatus = "pending_approval"
	StatusActive          CampaignStatus = "active"
	StatusPaused          CampaignStatus = "paused"
	StatusRejected        CampaignStatus = "rejected"
	StatusCompleted       CampaignStatus = "completed"
)

// Terminal reports whether no further transitions are allowed from s.
func (s CampaignStatus) Terminal() bool {
	return s == StatusRejected || s == StatusCompleted
}

// transitions holds the allowed status transitions. Everything else is
// rejected with ErrInvalidState by the engine.
var transitions = map[CampaignStatus][]CampaignStatus{
	StatusPendingApproval: {StatusActive, StatusRejected},
	StatusActive:          {StatusPaused, StatusCompleted},
	StatusPaused:          {StatusActive, StatusCompleted},
}

// CanTransition reports whether a campaign may move from one status to
// another. Rejected and completed are terminal.
func CanTransition(from, to CampaignStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Priority controls placement ranking of an active campaign.
type Priority string

const (
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

// Campaign is a vendor-purchased promotion of a listing for a fixed
// duration and price. Money is stored in integer units. TotalCost is
// frozen at creation; a later pricing change never affects it.
type Campaign struct {
	ID             string
	VendorID       string
	ListingID      string // empty when the campaign promotes no particular listing
	ListingTitle   string
	ListingImage   string
	Type           CampaignType
	Goal           CampaignGoal
	Status         CampaignStatus
	StartDate      time.Time // zero until approved
	EndDate        time.Time // zero until approved
	DurationDays   int
	TotalCost      int64
	TargetLocation string
	Priority       Priority
	Impressions    int64
	Clicks         int64
	Conversions    int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CTR returns the click-through rate as a percentage, 0 when the
// campaign has no impressions yet.
func (c *Campaign) CTR() float64 {
	if c.Impressions == 0 {
		return 0
	}
	return float64(c.Clicks) / float64(c.Impressions) * 100
}
