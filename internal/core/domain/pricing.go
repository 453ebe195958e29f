package domain

// PriceTable maps a campaign type to its positive daily rate in integer
// money units. Rates are read as a consistent snapshot when a campaign
// is created; the resulting TotalCost is frozen from then on.
type PriceTable map[CampaignType]int64

// DefaultPriceTable holds the rates applied before an admin configures
// any. Values match the marketplace launch pricing.
func DefaultPriceTable() PriceTable {
	return PriceTable{
		TypeFeaturedListing: 100,
		TypeBannerAd:        500,
		TypeSocialBoost:     300,
	}
}

// Cost returns the total cost of running a campaign of the given type
// for durationDays, or 0 when the type has no configured rate.
func (p PriceTable) Cost(t CampaignType, durationDays int) int64 {
	return p[t] * int64(durationDays)
}
