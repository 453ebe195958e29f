package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bazaar-ads/internal/core/domain"
	"bazaar-ads/internal/core/port"
	"bazaar-ads/internal/core/port/mocks"
)

// fakeStore emulates the transactional semantics of the postgres
// repository behind the mock: one mutex per store stands in for the row
// locks, so precondition checks and writes are atomic like in the real
// repository.
type fakeStore struct {
	mu        sync.Mutex
	balance   int64
	spend     int64
	campaigns map[string]*domain.Campaign
	listings  map[string]*domain.Listing
	txs       []domain.Transaction
	notes     []port.NotificationDraft
	rates     domain.PriceTable
}

func newFakeStore(balance int64) *fakeStore {
	return &fakeStore{
		balance:   balance,
		campaigns: map[string]*domain.Campaign{},
		listings:  map[string]*domain.Listing{},
		rates:     domain.DefaultPriceTable(),
	}
}

func (f *fakeStore) createCampaign(_ context.Context, p port.CreateCampaignParams) (*domain.Campaign, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	cost := f.rates.Cost(p.Type, p.DurationDays)
	if f.balance < cost {
		return nil, fmt.Errorf("%w: balance %d, need %d", port.ErrInsufficientFunds, f.balance, cost)
	}
	f.balance -= cost
	f.spend += cost
	f.txs = append(f.txs, domain.Transaction{
		ID: p.TransactionID, UserID: p.VendorID, Type: domain.TxPromotion,
		Amount: cost, Status: "completed", Description: p.Description,
	})
	c := &domain.Campaign{
		ID: p.ID, VendorID: p.VendorID, ListingID: p.ListingID,
		Type: p.Type, Goal: p.Goal, Status: domain.StatusPendingApproval,
		DurationDays: p.DurationDays, TotalCost: cost, Priority: domain.PriorityNormal,
	}
	f.campaigns[c.ID] = c
	cp := *c
	return &cp, nil
}

func (f *fakeStore) approveCampaign(_ context.Context, id string, now time.Time, notify port.NotificationDraft) (*domain.Campaign, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	c, ok := f.campaigns[id]
	if !ok {
		return nil, fmt.Errorf("%w: campaign %s", port.ErrNotFound, id)
	}
	if c.Status != domain.StatusPendingApproval {
		return nil, fmt.Errorf("%w: campaign %s is %s", port.ErrInvalidState, id, c.Status)
	}
	if c.ListingID != "" {
		l, ok := f.listings[c.ListingID]
		if !ok {
			return nil, fmt.Errorf("%w: listing %s", port.ErrNotFound, c.ListingID)
		}
		if l.ActiveCampaignID != "" && l.ActiveCampaignID != id {
			return nil, fmt.Errorf("%w: listing %s is promoted by another campaign", port.ErrInvalidState, c.ListingID)
		}
		l.IsPromoted = true
		l.ActiveCampaignID = id
	}
	c.Status = domain.StatusActive
	c.StartDate = now
	c.EndDate = now.Add(time.Duration(c.DurationDays) * 24 * time.Hour)
	f.notes = append(f.notes, notify)
	cp := *c
	return &cp, nil
}

func (f *fakeStore) rejectCampaign(_ context.Context, id string, p port.RejectParams) (*domain.Campaign, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	c, ok := f.campaigns[id]
	if !ok {
		return nil, fmt.Errorf("%w: campaign %s", port.ErrNotFound, id)
	}
	if c.Status != domain.StatusPendingApproval {
		return nil, fmt.Errorf("%w: campaign %s is %s", port.ErrInvalidState, id, c.Status)
	}
	refund := c.TotalCost
	c.Status = domain.StatusRejected
	f.balance += refund
	f.spend -= refund
	if f.spend < 0 {
		f.spend = 0
	}
	if c.ListingID != "" {
		if l, ok := f.listings[c.ListingID]; ok && l.ActiveCampaignID == id {
			l.IsPromoted = false
			l.ActiveCampaignID = ""
		}
	}
	f.txs = append(f.txs, domain.Transaction{
		ID: p.TransactionID, UserID: c.VendorID, Type: domain.TxAdjustment,
		Amount: refund, Status: "completed", Description: p.Description,
	})
	f.notes = append(f.notes, p.Notify)
	cp := *c
	return &cp, nil
}

func (f *fakeStore) stopCampaign(_ context.Context, id string) (*domain.Campaign, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	c, ok := f.campaigns[id]
	if !ok {
		return nil, fmt.Errorf("%w: campaign %s", port.ErrNotFound, id)
	}
	if c.Status != domain.StatusActive && c.Status != domain.StatusPaused {
		return nil, fmt.Errorf("%w: campaign %s is %s", port.ErrInvalidState, id, c.Status)
	}
	c.Status = domain.StatusCompleted
	if c.ListingID != "" {
		if l, ok := f.listings[c.ListingID]; ok && l.ActiveCampaignID == id {
			l.IsPromoted = false
			l.ActiveCampaignID = ""
		}
	}
	cp := *c
	return &cp, nil
}

func (f *fakeStore) getCampaign(_ context.Context, id string) (*domain.Campaign, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.campaigns[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

// wireFake connects the repository mock to a fakeStore. Calls are
// optional so individual tests exercise only the paths they need.
func wireFake(t *testing.T, f *fakeStore) *mocks.MockLedgerRepository {
	repo := mocks.NewMockLedgerRepository(t)
	repo.EXPECT().CreateCampaign(mock.Anything, mock.Anything).RunAndReturn(f.createCampaign).Maybe()
	repo.EXPECT().ApproveCampaign(mock.Anything, mock.Anything, mock.Anything, mock.Anything).RunAndReturn(f.approveCampaign).Maybe()
	repo.EXPECT().RejectCampaign(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(f.rejectCampaign).Maybe()
	repo.EXPECT().StopCampaign(mock.Anything, mock.Anything).RunAndReturn(f.stopCampaign).Maybe()
	repo.EXPECT().GetCampaign(mock.Anything, mock.Anything).RunAndReturn(f.getCampaign).Maybe()
	return repo
}

func TestCreateCampaignDebitsWallet(t *testing.T) {
	f := newFakeStore(1000)
	svc := NewLedgerService(wireFake(t, f), mocks.NewMockPricingRepository(t))

	c, err := svc.CreateCampaign(context.Background(), port.CreateCampaignInput{
		VendorID:     "v1",
		Type:         domain.TypeFeaturedListing, // 100/day
		DurationDays: 5,
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatusPendingApproval, c.Status)
	require.Equal(t, int64(500), c.TotalCost)

	require.Equal(t, int64(500), f.balance)
	require.Equal(t, int64(500), f.spend)
	require.Len(t, f.txs, 1)
	require.Equal(t, domain.TxPromotion, f.txs[0].Type)
	require.Equal(t, int64(500), f.txs[0].Amount)
}

func TestCreateCampaignInsufficientFunds(t *testing.T) {
	f := newFakeStore(500)
	svc := NewLedgerService(wireFake(t, f), mocks.NewMockPricingRepository(t))

	_, err := svc.CreateCampaign(context.Background(), port.CreateCampaignInput{
		VendorID:     "v1",
		Type:         domain.TypeFeaturedListing,
		DurationDays: 6, // cost 600
	})
	require.ErrorIs(t, err, port.ErrInsufficientFunds)
	require.Equal(t, int64(500), f.balance)
	require.Empty(t, f.campaigns)
	require.Empty(t, f.txs)
}

func TestCreateCampaignValidation(t *testing.T) {
	// no expectations: invalid input must be rejected before any store access
	repo := mocks.NewMockLedgerRepository(t)
	svc := NewLedgerService(repo, mocks.NewMockPricingRepository(t))

	cases := []struct {
		name string
		in   port.CreateCampaignInput
	}{
		{"missing vendor", port.CreateCampaignInput{Type: domain.TypeBannerAd, DurationDays: 3}},
		{"unknown type", port.CreateCampaignInput{VendorID: "v1", Type: "mega_ad", DurationDays: 3}},
		{"zero duration", port.CreateCampaignInput{VendorID: "v1", Type: domain.TypeBannerAd}},
		{"negative duration", port.CreateCampaignInput{VendorID: "v1", Type: domain.TypeBannerAd, DurationDays: -2}},
		{"unknown goal", port.CreateCampaignInput{VendorID: "v1", Type: domain.TypeBannerAd, Goal: "sales", DurationDays: 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateCampaign(context.Background(), tc.in)
			require.ErrorIs(t, err, port.ErrInvalidInput)
		})
	}
}

func TestApproveActivatesAndLinksListing(t *testing.T) {
	f := newFakeStore(1000)
	f.listings["l1"] = &domain.Listing{ID: "l1", VendorID: "v1", Status: "active"}
	svc := NewLedgerService(wireFake(t, f), mocks.NewMockPricingRepository(t))

	c, err := svc.CreateCampaign(context.Background(), port.CreateCampaignInput{
		VendorID: "v1", ListingID: "l1", Type: domain.TypeFeaturedListing, DurationDays: 5,
	})
	require.NoError(t, err)

	approved, err := svc.Approve(context.Background(), c.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusActive, approved.Status)
	require.False(t, approved.StartDate.IsZero())
	require.Equal(t, approved.StartDate.Add(5*24*time.Hour), approved.EndDate)

	require.True(t, f.listings["l1"].IsPromoted)
	require.Equal(t, c.ID, f.listings["l1"].ActiveCampaignID)
	require.Len(t, f.notes, 1)
	require.Equal(t, domain.KindSuccess, f.notes[0].Kind)

	// reject is now illegal: the campaign already left pending_approval
	_, err = svc.Reject(context.Background(), c.ID, "too late")
	require.ErrorIs(t, err, port.ErrInvalidState)
}

// TestApproveRespectsListingSlot covers the one-active-campaign-per-
// listing rule across operation sequences: two pending campaigns may
// reference the same listing, but only the first approval claims the
// slot; the slot opens again once the holder stops.
func TestApproveRespectsListingSlot(t *testing.T) {
	f := newFakeStore(10000)
	f.listings["l1"] = &domain.Listing{ID: "l1", VendorID: "v1", Status: "active"}
	svc := NewLedgerService(wireFake(t, f), mocks.NewMockPricingRepository(t))

	a, err := svc.CreateCampaign(context.Background(), port.CreateCampaignInput{
		VendorID: "v1", ListingID: "l1", Type: domain.TypeFeaturedListing, DurationDays: 5,
	})
	require.NoError(t, err)
	b, err := svc.CreateCampaign(context.Background(), port.CreateCampaignInput{
		VendorID: "v1", ListingID: "l1", Type: domain.TypeSocialBoost, DurationDays: 3,
	})
	require.NoError(t, err)

	_, err = svc.Approve(context.Background(), a.ID)
	require.NoError(t, err)

	// the slot is taken; the second approval must not produce a second
	// active campaign on the listing
	_, err = svc.Approve(context.Background(), b.ID)
	require.ErrorIs(t, err, port.ErrInvalidState)

	require.Equal(t, a.ID, f.listings["l1"].ActiveCampaignID)
	require.True(t, f.listings["l1"].IsPromoted)

	active := 0
	for _, c := range f.campaigns {
		if c.Status == domain.StatusActive {
			active++
		}
	}
	require.Equal(t, 1, active)
	require.Equal(t, domain.StatusPendingApproval, f.campaigns[b.ID].Status)

	// stopping the holder frees the slot for the still-pending campaign
	_, err = svc.Stop(context.Background(), a.ID)
	require.NoError(t, err)
	require.False(t, f.listings["l1"].IsPromoted)
	require.Empty(t, f.listings["l1"].ActiveCampaignID)

	approved, err := svc.Approve(context.Background(), b.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusActive, approved.Status)
	require.Equal(t, b.ID, f.listings["l1"].ActiveCampaignID)
}

func TestRejectRefundsExactly(t *testing.T) {
	f := newFakeStore(1000)
	f.listings["l1"] = &domain.Listing{ID: "l1", VendorID: "v1", Status: "active"}
	svc := NewLedgerService(wireFake(t, f), mocks.NewMockPricingRepository(t))

	c, err := svc.CreateCampaign(context.Background(), port.CreateCampaignInput{
		VendorID: "v1", ListingID: "l1", Type: domain.TypeFeaturedListing, DurationDays: 5,
	})
	require.NoError(t, err)
	require.Equal(t, int64(500), f.balance)

	rejected, err := svc.Reject(context.Background(), c.ID, "poor image quality")
	require.NoError(t, err)
	require.Equal(t, domain.StatusRejected, rejected.Status)

	require.Equal(t, int64(1000), f.balance)
	require.Equal(t, int64(0), f.spend)
	require.False(t, f.listings["l1"].IsPromoted)
	require.Empty(t, f.listings["l1"].ActiveCampaignID)

	require.Len(t, f.txs, 2)
	require.Equal(t, domain.TxAdjustment, f.txs[1].Type)
	require.Equal(t, int64(500), f.txs[1].Amount)
	require.Contains(t, f.txs[1].Description, "poor image quality")

	// a second reject cannot refund again
	_, err = svc.Reject(context.Background(), c.ID, "again")
	require.ErrorIs(t, err, port.ErrInvalidState)
	require.Equal(t, int64(1000), f.balance)
	require.Len(t, f.txs, 2)
}

func TestRejectRequiresReason(t *testing.T) {
	repo := mocks.NewMockLedgerRepository(t)
	svc := NewLedgerService(repo, mocks.NewMockPricingRepository(t))

	_, err := svc.Reject(context.Background(), "c1", "   ")
	require.ErrorIs(t, err, port.ErrInvalidInput)
}

func TestStopKeepsCharge(t *testing.T) {
	f := newFakeStore(1000)
	f.listings["l1"] = &domain.Listing{ID: "l1", VendorID: "v1", Status: "active"}
	svc := NewLedgerService(wireFake(t, f), mocks.NewMockPricingRepository(t))

	c, err := svc.CreateCampaign(context.Background(), port.CreateCampaignInput{
		VendorID: "v1", ListingID: "l1", Type: domain.TypeFeaturedListing, DurationDays: 5,
	})
	require.NoError(t, err)
	_, err = svc.Approve(context.Background(), c.ID)
	require.NoError(t, err)

	stopped, err := svc.Stop(context.Background(), c.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusCompleted, stopped.Status)

	// no retroactive refund for an early stop
	require.Equal(t, int64(500), f.balance)
	require.Equal(t, int64(500), f.spend)
	require.False(t, f.listings["l1"].IsPromoted)
	require.Empty(t, f.listings["l1"].ActiveCampaignID)
}

// TestConcurrentApprove ensures the pending precondition is consuming:
// of two racing approvals exactly one succeeds and exactly one success
// notification is recorded.
func TestConcurrentApprove(t *testing.T) {
	f := newFakeStore(1000)
	svc := NewLedgerService(wireFake(t, f), mocks.NewMockPricingRepository(t))

	c, err := svc.CreateCampaign(context.Background(), port.CreateCampaignInput{
		VendorID: "v1", Type: domain.TypeSocialBoost, DurationDays: 2,
	})
	require.NoError(t, err)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		approved int
		invalid  int
	)
	wg.Add(2)
	for i := 0; i < 2; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.Approve(context.Background(), c.ID)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				approved++
			case errors.Is(err, port.ErrInvalidState):
				invalid++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if approved != 1 || invalid != 1 {
		t.Fatalf("got %d approvals and %d invalid-state errors, want exactly 1 and 1", approved, invalid)
	}
	require.Len(t, f.notes, 1)
}

func TestTogglePause(t *testing.T) {
	repo := mocks.NewMockLedgerRepository(t)
	svc := NewLedgerService(repo, mocks.NewMockPricingRepository(t))

	active := &domain.Campaign{ID: "c1", VendorID: "v1", Status: domain.StatusActive}
	repo.EXPECT().GetCampaign(mock.Anything, "c1").Return(active, nil).Once()
	repo.EXPECT().PauseCampaign(mock.Anything, "c1").
		Return(&domain.Campaign{ID: "c1", VendorID: "v1", Status: domain.StatusPaused}, nil).Once()

	c, err := svc.TogglePause(context.Background(), "v1", "c1")
	require.NoError(t, err)
	require.Equal(t, domain.StatusPaused, c.Status)

	paused := &domain.Campaign{ID: "c1", VendorID: "v1", Status: domain.StatusPaused}
	repo.EXPECT().GetCampaign(mock.Anything, "c1").Return(paused, nil).Once()
	repo.EXPECT().ResumeCampaign(mock.Anything, "c1").
		Return(&domain.Campaign{ID: "c1", VendorID: "v1", Status: domain.StatusActive}, nil).Once()

	c, err = svc.TogglePause(context.Background(), "v1", "c1")
	require.NoError(t, err)
	require.Equal(t, domain.StatusActive, c.Status)
}

func TestTogglePauseForeignCampaign(t *testing.T) {
	repo := mocks.NewMockLedgerRepository(t)
	svc := NewLedgerService(repo, mocks.NewMockPricingRepository(t))

	repo.EXPECT().GetCampaign(mock.Anything, "c1").
		Return(&domain.Campaign{ID: "c1", VendorID: "other", Status: domain.StatusActive}, nil).Once()

	_, err := svc.TogglePause(context.Background(), "v1", "c1")
	require.ErrorIs(t, err, port.ErrNotFound)
}

func TestTogglePriority(t *testing.T) {
	repo := mocks.NewMockLedgerRepository(t)
	svc := NewLedgerService(repo, mocks.NewMockPricingRepository(t))

	repo.EXPECT().GetCampaign(mock.Anything, "c1").
		Return(&domain.Campaign{ID: "c1", Status: domain.StatusActive, Priority: domain.PriorityNormal}, nil).Once()
	repo.EXPECT().SetCampaignPriority(mock.Anything, "c1", domain.PriorityHigh).
		Return(&domain.Campaign{ID: "c1", Status: domain.StatusActive, Priority: domain.PriorityHigh}, nil).Once()

	c, err := svc.TogglePriority(context.Background(), "c1")
	require.NoError(t, err)
	require.Equal(t, domain.PriorityHigh, c.Priority)
}

func TestSetPricing(t *testing.T) {
	repo := mocks.NewMockLedgerRepository(t)
	pricing := mocks.NewMockPricingRepository(t)
	svc := NewLedgerService(repo, pricing)

	require.ErrorIs(t, svc.SetPricing(context.Background(), "mega_ad", 100), port.ErrInvalidInput)
	require.ErrorIs(t, svc.SetPricing(context.Background(), domain.TypeBannerAd, 0), port.ErrInvalidInput)
	require.ErrorIs(t, svc.SetPricing(context.Background(), domain.TypeBannerAd, -5), port.ErrInvalidInput)

	pricing.EXPECT().SetRate(mock.Anything, domain.TypeBannerAd, int64(750)).Return(nil).Once()
	require.NoError(t, svc.SetPricing(context.Background(), domain.TypeBannerAd, 750))
}

func TestRecordEngagementValidation(t *testing.T) {
	repo := mocks.NewMockLedgerRepository(t)
	svc := NewLedgerService(repo, mocks.NewMockPricingRepository(t))

	err := svc.RecordEngagement(context.Background(), "c1", port.Engagement{Clicks: -1})
	require.ErrorIs(t, err, port.ErrInvalidInput)

	repo.EXPECT().RecordEngagement(mock.Anything, "c1", port.Engagement{Impressions: 10, Clicks: 2}).Return(nil).Once()
	require.NoError(t, svc.RecordEngagement(context.Background(), "c1", port.Engagement{Impressions: 10, Clicks: 2}))
}

func TestApproveNotFound(t *testing.T) {
	repo := mocks.NewMockLedgerRepository(t)
	svc := NewLedgerService(repo, mocks.NewMockPricingRepository(t))

	repo.EXPECT().GetCampaign(mock.Anything, "missing").Return(nil, nil).Once()

	_, err := svc.Approve(context.Background(), "missing")
	require.ErrorIs(t, err, port.ErrNotFound)
}
