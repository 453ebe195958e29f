package domain

import "testing"

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to CampaignStatus }{
		{StatusPendingApproval, StatusActive},
		{StatusPendingApproval, StatusRejected},
		{StatusActive, StatusPaused},
		{StatusActive, StatusCompleted},
		{StatusPaused, StatusActive},
		{StatusPaused, StatusCompleted},
	}
	for _, tr := range allowed {
		if !CanTransition(tr.from, tr.to) {
			t.Errorf("CanTransition(%s, %s) = false, want true", tr.from, tr.to)
		}
	}

	denied := []struct{ from, to CampaignStatus }{
		{StatusPendingApproval, StatusPaused},
		{StatusPendingApproval, StatusCompleted},
		{StatusActive, StatusRejected},
		{StatusActive, StatusPendingApproval},
		{StatusRejected, StatusActive},
		{StatusCompleted, StatusActive},
		{StatusCompleted, StatusPaused},
	}
	for _, tr := range denied {
		if CanTransition(tr.from, tr.to) {
			t.Errorf("CanTransition(%s, %s) = true, want false", tr.from, tr.to)
		}
	}
}

func TestTerminal(t *testing.T) {
	for _, s := range []CampaignStatus{StatusRejected, StatusCompleted} {
		if !s.Terminal() {
			t.Errorf("%s.Terminal() = false, want true", s)
		}
	}
	for _, s := range []CampaignStatus{StatusPendingApproval, StatusActive, StatusPaused} {
		if s.Terminal() {
			t.Errorf("%s.Terminal() = true, want false", s)
		}
	}
}

func TestCTR(t *testing.T) {
	c := Campaign{Impressions: 200, Clicks: 5}
	if got := c.CTR(); got != 2.5 {
		t.Errorf("CTR() = %v, want 2.5", got)
	}

	empty := Campaign{}
	if got := empty.CTR(); got != 0 {
		t.Errorf("CTR() with no impressions = %v, want 0", got)
	}
}

func TestPromotable(t *testing.T) {
	l := Listing{Status: "active"}
	if !l.Promotable() {
		t.Error("active unpromoted listing should be promotable")
	}

	l.ActiveCampaignID = "c1"
	if l.Promotable() {
		t.Error("listing with an active campaign should not be promotable")
	}

	sold := Listing{Status: "sold"}
	if sold.Promotable() {
		t.Error("sold listing should not be promotable")
	}
}

func TestPriceTableCost(t *testing.T) {
	rates := DefaultPriceTable()
	if got := rates.Cost(TypeFeaturedListing, 5); got != 500 {
		t.Errorf("Cost(featured_listing, 5) = %d, want 500", got)
	}
	if got := rates.Cost(TypeBannerAd, 7); got != 3500 {
		t.Errorf("Cost(banner_ad, 7) = %d, want 3500", got)
	}
	if got := rates.Cost(CampaignType("unknown"), 3); got != 0 {
		t.Errorf("Cost(unknown, 3) = %d, want 0", got)
	}
}
