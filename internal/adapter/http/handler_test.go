package httpadapter

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bazaar-ads/internal/core/domain"
	"bazaar-ads/internal/core/port"
)

// stubUseCase implements port.LedgerUseCase through function fields so
// each test wires only what it exercises.
type stubUseCase struct {
	createCampaign   func(ctx context.Context, in port.CreateCampaignInput) (*domain.Campaign, error)
	togglePause      func(ctx context.Context, vendorID, campaignID string) (*domain.Campaign, error)
	recordEngagement func(ctx context.Context, campaignID string, e port.Engagement) error
	vendorCampaigns  func(ctx context.Context, vendorID string) ([]domain.Campaign, error)
	wallet           func(ctx context.Context, vendorID string) (*domain.Wallet, error)
	walletHistory    func(ctx context.Context, vendorID string) ([]domain.Transaction, error)
	approve          func(ctx context.Context, campaignID string) (*domain.Campaign, error)
	reject           func(ctx context.Context, campaignID, reason string) (*domain.Campaign, error)
	stop             func(ctx context.Context, campaignID string) (*domain.Campaign, error)
	togglePriority   func(ctx context.Context, campaignID string) (*domain.Campaign, error)
	setPricing       func(ctx context.Context, t domain.CampaignType, dailyRate int64) error
	rates            func(ctx context.Context) (domain.PriceTable, error)
	campaigns        func(ctx context.Context, f port.CampaignFilter) ([]domain.Campaign, error)
	overview         func(ctx context.Context) (*port.Overview, error)
}

func (s *stubUseCase) CreateCampaign(ctx context.Context, in port.CreateCampaignInput) (*domain.Campaign, error) {
	return s.createCampaign(ctx, in)
}
func (s *stubUseCase) TogglePause(ctx context.Context, vendorID, campaignID string) (*domain.Campaign, error) {
	return s.togglePause(ctx, vendorID, campaignID)
}
func (s *stubUseCase) RecordEngagement(ctx context.Context, campaignID string, e port.Engagement) error {
	return s.recordEngagement(ctx, campaignID, e)
}
func (s *stubUseCase) VendorCampaigns(ctx context.Context, vendorID string) ([]domain.Campaign, error) {
	return s.vendorCampaigns(ctx, vendorID)
}
func (s *stubUseCase) Wallet(ctx context.Context, vendorID string) (*domain.Wallet, error) {
	return s.wallet(ctx, vendorID)
}
func (s *stubUseCase) WalletHistory(ctx context.Context, vendorID string) ([]domain.Transaction, error) {
	return s.walletHistory(ctx, vendorID)
}
func (s *stubUseCase) Approve(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	return s.approve(ctx, campaignID)
}
func (s *stubUseCase) Reject(ctx context.Context, campaignID, reason string) (*domain.Campaign, error) {
	return s.reject(ctx, campaignID, reason)
}
func (s *stubUseCase) Stop(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	return s.stop(ctx, campaignID)
}
func (s *stubUseCase) TogglePriority(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	return s.togglePriority(ctx, campaignID)
}
func (s *stubUseCase) SetPricing(ctx context.Context, t domain.CampaignType, dailyRate int64) error {
	return s.setPricing(ctx, t, dailyRate)
}
func (s *stubUseCase) Rates(ctx context.Context) (domain.PriceTable, error) {
	return s.rates(ctx)
}
func (s *stubUseCase) Campaigns(ctx context.Context, f port.CampaignFilter) ([]domain.Campaign, error) {
	return s.campaigns(ctx, f)
}
func (s *stubUseCase) Overview(ctx context.Context) (*port.Overview, error) {
	return s.overview(ctx)
}

func newTestHandler(s *stubUseCase) *Handler {
	return NewHandler(s, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCreateCampaignEndpoint(t *testing.T) {
	stub := &stubUseCase{
		createCampaign: func(_ context.Context, in port.CreateCampaignInput) (*domain.Campaign, error) {
			require.Equal(t, "v1", in.VendorID)
			require.Equal(t, domain.TypeFeaturedListing, in.Type)
			return &domain.Campaign{ID: "c1", VendorID: in.VendorID, Type: in.Type,
				Status: domain.StatusPendingApproval, TotalCost: 500}, nil
		},
	}
	h := newTestHandler(stub)

	body := `{"type":"featured_listing","durationDays":5}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/vendor/campaigns", strings.NewReader(body))
	req.Header.Set("X-Vendor-ID", "v1")
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"pending_approval"`)
	assert.Contains(t, rec.Body.String(), `"totalCost":500`)
}

func TestCreateCampaignRequiresVendorHeader(t *testing.T) {
	h := newTestHandler(&stubUseCase{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/vendor/campaigns", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid input", port.ErrInvalidInput, http.StatusBadRequest},
		{"not found", port.ErrNotFound, http.StatusNotFound},
		{"invalid state", port.ErrInvalidState, http.StatusConflict},
		{"insufficient funds", port.ErrInsufficientFunds, http.StatusPaymentRequired},
		{"store down", port.ErrStoreUnavailable, http.StatusServiceUnavailable},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubUseCase{
				approve: func(context.Context, string) (*domain.Campaign, error) {
					return nil, fmt.Errorf("wrapped: %w", tc.err)
				},
			}
			h := newTestHandler(stub)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/campaigns/c1/approve", nil)
			rec := httptest.NewRecorder()
			h.Router().ServeHTTP(rec, req)

			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestRejectEndpointPassesReason(t *testing.T) {
	stub := &stubUseCase{
		reject: func(_ context.Context, id, reason string) (*domain.Campaign, error) {
			require.Equal(t, "c1", id)
			require.Equal(t, "bad creative", reason)
			return &domain.Campaign{ID: id, Status: domain.StatusRejected}, nil
		},
	}
	h := newTestHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/campaigns/c1/reject",
		strings.NewReader(`{"reason":"bad creative"}`))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"rejected"`)
}

func TestTogglePauseUsesCallerIdentity(t *testing.T) {
	stub := &stubUseCase{
		togglePause: func(_ context.Context, vendorID, campaignID string) (*domain.Campaign, error) {
			require.Equal(t, "v9", vendorID)
			require.Equal(t, "c1", campaignID)
			return &domain.Campaign{ID: campaignID, VendorID: vendorID, Status: domain.StatusPaused}, nil
		},
	}
	h := newTestHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/vendor/campaigns/c1/pause", nil)
	req.Header.Set("X-Vendor-ID", "v9")
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"paused"`)
}

func TestEngagementEndpoint(t *testing.T) {
	stub := &stubUseCase{
		recordEngagement: func(_ context.Context, id string, e port.Engagement) error {
			require.Equal(t, "c1", id)
			require.Equal(t, int64(10), e.Impressions)
			require.Equal(t, int64(2), e.Clicks)
			return nil
		},
	}
	h := newTestHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/vendor/campaigns/c1/engagement",
		strings.NewReader(`{"impressions":10,"clicks":2}`))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestOverviewEndpoint(t *testing.T) {
	stub := &stubUseCase{
		overview: func(context.Context) (*port.Overview, error) {
			return &port.Overview{
				TotalRevenue: 3000,
				Active:       2,
				RevenueByType: map[domain.CampaignType]int64{
					domain.TypeBannerAd: 3000,
				},
			}, nil
		},
	}
	h := newTestHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/overview", nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalRevenue":3000`)
	assert.Contains(t, rec.Body.String(), `"banner_ad":3000`)
}
