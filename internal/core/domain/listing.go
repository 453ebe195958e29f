package domain

import "time"

// Listing is the slice of a marketplace listing the ledger owns.
// IsPromoted must equal "a campaign with status active points at this
// listing", and ActiveCampaignID is that campaign or empty. At most one
// active campaign per listing at any time.
type Listing struct {
	ID               string
	VendorID         string
	Title            string
	ImageURL         string
	Status           string // active, draft, pending, rejected, sold, expired, blocked
	IsPromoted       bool
	ActiveCampaignID string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Promotable reports whether a campaign may be attached to the listing.
func (l *Listing) Promotable() bool {
	return l.Status == "active" && l.ActiveCampaignID == ""
}
