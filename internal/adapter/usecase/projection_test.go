package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bazaar-ads/internal/core/domain"
)

func sampleCampaigns() []domain.Campaign {
	day := func(d int) time.Time {
		return time.Date(2025, time.March, d, 12, 0, 0, 0, time.UTC)
	}
	return []domain.Campaign{
		{ID: "a", VendorID: "v1", Type: domain.TypeFeaturedListing, Status: domain.StatusActive, TotalCost: 500, StartDate: day(3)},
		{ID: "b", VendorID: "v2", Type: domain.TypeBannerAd, Status: domain.StatusCompleted, TotalCost: 1500, StartDate: day(1)},
		{ID: "c", VendorID: "v1", Type: domain.TypeSocialBoost, Status: domain.StatusRejected, TotalCost: 900, CreatedAt: day(5)},
		{ID: "d", VendorID: "v1", Type: domain.TypeFeaturedListing, Status: domain.StatusPendingApproval, TotalCost: 300, CreatedAt: day(4)},
		{ID: "e", VendorID: "v2", Type: domain.TypeBannerAd, Status: domain.StatusPaused, TotalCost: 1000, StartDate: day(2)},
	}
}

func TestFilterByVendor(t *testing.T) {
	got := FilterByVendor(sampleCampaigns(), "v1")
	require.Len(t, got, 3)
	for _, c := range got {
		assert.Equal(t, "v1", c.VendorID)
	}
}

func TestFilterByStatus(t *testing.T) {
	got := FilterByStatus(sampleCampaigns(), domain.StatusPendingApproval)
	require.Len(t, got, 1)
	assert.Equal(t, "d", got[0].ID)
}

func TestSortByDateDesc(t *testing.T) {
	in := sampleCampaigns()
	got := SortByDateDesc(in)

	var ids []string
	for _, c := range got {
		ids = append(ids, c.ID)
	}
	// pending and rejected campaigns have no start date and sort by
	// creation time instead
	assert.Equal(t, []string{"c", "d", "a", "e", "b"}, ids)

	// input order untouched
	assert.Equal(t, "a", in[0].ID)
	assert.Equal(t, "e", in[4].ID)
}

func TestRevenueByType(t *testing.T) {
	got := RevenueByType(sampleCampaigns())

	// rejected (refunded) and pending (not yet earned) are excluded
	assert.Equal(t, map[domain.CampaignType]int64{
		domain.TypeFeaturedListing: 500,
		domain.TypeBannerAd:        2500,
	}, got)
}

func TestBuildOverview(t *testing.T) {
	o := BuildOverview(sampleCampaigns())

	assert.Equal(t, int64(3000), o.TotalRevenue)
	assert.Equal(t, 1, o.Pending)
	assert.Equal(t, 1, o.Active)
	assert.Equal(t, 1, o.Paused)
	assert.Equal(t, 1, o.Completed)
	assert.Equal(t, 1, o.Rejected)
}

func TestBuildOverviewEmpty(t *testing.T) {
	o := BuildOverview(nil)
	assert.Zero(t, o.TotalRevenue)
	assert.Empty(t, o.RevenueByType)
}
