package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"bazaar-ads/internal/core/domain"
	"bazaar-ads/internal/core/port"
)

type createCampaignRequest struct {
	ListingID      string `json:"listingId"`
	Type           string `json:"type"`
	Goal           string `json:"goal"`
	DurationDays   int    `json:"durationDays"`
	TargetLocation string `json:"targetLocation"`
}

// handleCreateCampaign opens a campaign for the calling vendor. The
// wallet is debited immediately; insufficient balance yields HTTP 402.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	vendorID, ok := h.vendorID(w, r)
	if !ok {
		return
	}
	var req createCampaignRequest
	if !h.decode(w, r, &req) {
		return
	}
	c, err := h.svc.CreateCampaign(r.Context(), port.CreateCampaignInput{
		VendorID:       vendorID,
		ListingID:      req.ListingID,
		Type:           domain.CampaignType(req.Type),
		Goal:           domain.CampaignGoal(req.Goal),
		DurationDays:   req.DurationDays,
		TargetLocation: req.TargetLocation,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toCampaignJSON(c))
}

func (h *Handler) handleVendorCampaigns(w http.ResponseWriter, r *http.Request) {
	vendorID, ok := h.vendorID(w, r)
	if !ok {
		return
	}
	campaigns, err := h.svc.VendorCampaigns(r.Context(), vendorID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignListJSON(campaigns))
}

// handleTogglePause flips the caller's campaign between active and
// paused. A campaign owned by another vendor reads as 404.
func (h *Handler) handleTogglePause(w http.ResponseWriter, r *http.Request) {
	vendorID, ok := h.vendorID(w, r)
	if !ok {
		return
	}
	c, err := h.svc.TogglePause(r.Context(), vendorID, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignJSON(c))
}

type engagementRequest struct {
	Impressions int64 `json:"impressions"`
	Clicks      int64 `json:"clicks"`
	Conversions int64 `json:"conversions"`
}

func (h *Handler) handleRecordEngagement(w http.ResponseWriter, r *http.Request) {
	var req engagementRequest
	if !h.decode(w, r, &req) {
		return
	}
	err := h.svc.RecordEngagement(r.Context(), chi.URLParam(r, "id"), port.Engagement{
		Impressions: req.Impressions,
		Clicks:      req.Clicks,
		Conversions: req.Conversions,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type walletJSON struct {
	VendorID   string `json:"vendorId"`
	Balance    int64  `json:"balance"`
	TotalSpend int64  `json:"totalSpend"`
}

func (h *Handler) handleWallet(w http.ResponseWriter, r *http.Request) {
	vendorID, ok := h.vendorID(w, r)
	if !ok {
		return
	}
	wallet, err := h.svc.Wallet(r.Context(), vendorID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, walletJSON{
		VendorID:   wallet.VendorID,
		Balance:    wallet.Balance,
		TotalSpend: wallet.TotalSpend,
	})
}

func (h *Handler) handleWalletHistory(w http.ResponseWriter, r *http.Request) {
	vendorID, ok := h.vendorID(w, r)
	if !ok {
		return
	}
	txs, err := h.svc.WalletHistory(r.Context(), vendorID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toTransactionListJSON(txs))
}
