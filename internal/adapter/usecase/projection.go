package usecase

import (
	"slices"

	"bazaar-ads/internal/core/domain"
	"bazaar-ads/internal/core/port"
)

// Read-side projections. All functions operate on a point-in-time
// snapshot and never mutate their input, so they tolerate concurrent
// updates to the underlying data.

// FilterByVendor returns the campaigns owned by vendorID.
func FilterByVendor(campaigns []domain.Campaign, vendorID string) []domain.Campaign {
	out := make([]domain.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		if c.VendorID == vendorID {
			out = append(out, c)
		}
	}
	return out
}

// FilterByStatus returns the campaigns in the given status.
func FilterByStatus(campaigns []domain.Campaign, status domain.CampaignStatus) []domain.Campaign {
	out := make([]domain.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		if c.Status == status {
			out = append(out, c)
		}
	}
	return out
}

// SortByDateDesc returns a new slice sorted newest first. Campaigns not
// yet activated sort by creation time.
func SortByDateDesc(campaigns []domain.Campaign) []domain.Campaign {
	out := slices.Clone(campaigns)
	slices.SortStableFunc(out, func(a, b domain.Campaign) int {
		ta, tb := a.StartDate, b.StartDate
		if ta.IsZero() {
			ta = a.CreatedAt
		}
		if tb.IsZero() {
			tb = b.CreatedAt
		}
		return tb.Compare(ta)
	})
	return out
}

// RevenueByType sums the total cost of paid campaigns per type.
// Rejected campaigns were refunded and pending ones are not yet earned,
// so both are excluded.
func RevenueByType(campaigns []domain.Campaign) map[domain.CampaignType]int64 {
	out := make(map[domain.CampaignType]int64)
	for _, c := range campaigns {
		if c.Status == domain.StatusRejected || c.Status == domain.StatusPendingApproval {
			continue
		}
		out[c.Type] += c.TotalCost
	}
	return out
}

// BuildOverview tallies a campaign snapshot into the admin overview.
func BuildOverview(campaigns []domain.Campaign) *port.Overview {
	o := &port.Overview{RevenueByType: RevenueByType(campaigns)}
	for _, c := range campaigns {
		switch c.Status {
		case domain.StatusPendingApproval:
			o.Pending++
		case domain.StatusActive:
			o.Active++
		case domain.StatusPaused:
			o.Paused++
		case domain.StatusCompleted:
			o.Completed++
		case domain.StatusRejected:
			o.Rejected++
		}
	}
	for _, v := range o.RevenueByType {
		o.TotalRevenue += v
	}
	return o
}
