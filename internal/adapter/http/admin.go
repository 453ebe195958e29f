package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"bazaar-ads/internal/core/domain"
	"bazaar-ads/internal/core/port"
)

func (h *Handler) handleAdminCampaigns(w http.ResponseWriter, r *http.Request) {
	f := port.CampaignFilter{
		VendorID: r.URL.Query().Get("vendorId"),
		Status:   domain.CampaignStatus(r.URL.Query().Get("status")),
	}
	campaigns, err := h.svc.Campaigns(r.Context(), f)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignListJSON(campaigns))
}

// handleApprove activates a pending campaign. A repeated approve gets
// HTTP 409 from the consuming transition.
func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Approve(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignJSON(c))
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	var req rejectRequest
	if !h.decode(w, r, &req) {
		return
	}
	c, err := h.svc.Reject(r.Context(), chi.URLParam(r, "id"), req.Reason)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignJSON(c))
}

func (h *Handler) handleStop(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Stop(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignJSON(c))
}

func (h *Handler) handleTogglePriority(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.TogglePriority(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignJSON(c))
}

func (h *Handler) handleGetPricing(w http.ResponseWriter, r *http.Request) {
	rates, err := h.svc.Rates(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, rates)
}

type setPricingRequest struct {
	Type      string `json:"type"`
	DailyRate int64  `json:"dailyRate"`
}

// handleSetPricing updates a daily rate. Campaigns already created keep
// their frozen total cost.
func (h *Handler) handleSetPricing(w http.ResponseWriter, r *http.Request) {
	var req setPricingRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.svc.SetPricing(r.Context(), domain.CampaignType(req.Type), req.DailyRate); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type overviewJSON struct {
	TotalRevenue  int64            `json:"totalRevenue"`
	Pending       int              `json:"pending"`
	Active        int              `json:"active"`
	Paused        int              `json:"paused"`
	Completed     int              `json:"completed"`
	Rejected      int              `json:"rejected"`
	RevenueByType map[string]int64 `json:"revenueByType"`
}

func (h *Handler) handleOverview(w http.ResponseWriter, r *http.Request) {
	o, err := h.svc.Overview(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	byType := make(map[string]int64, len(o.RevenueByType))
	for t, v := range o.RevenueByType {
		byType[string(t)] = v
	}
	h.writeJSON(w, http.StatusOK, overviewJSON{
		TotalRevenue:  o.TotalRevenue,
		Pending:       o.Pending,
		Active:        o.Active,
		Paused:        o.Paused,
		Completed:     o.Completed,
		Rejected:      o.Rejected,
		RevenueByType: byType,
	})
}
