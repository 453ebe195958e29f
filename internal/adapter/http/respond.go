package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"bazaar-ads/internal/core/domain"
	"bazaar-ads/internal/core/port"
)

// campaignJSON is the wire representation of a campaign. Run window
// fields are omitted until the campaign is approved.
type campaignJSON struct {
	ID             string  `json:"id"`
	VendorID       string  `json:"vendorId"`
	ListingID      string  `json:"listingId,omitempty"`
	ListingTitle   string  `json:"listingTitle,omitempty"`
	ListingImage   string  `json:"listingImage,omitempty"`
	Type           string  `json:"type"`
	Goal           string  `json:"goal"`
	Status         string  `json:"status"`
	StartDate      string  `json:"startDate,omitempty"`
	EndDate        string  `json:"endDate,omitempty"`
	DurationDays   int     `json:"durationDays"`
	TotalCost      int64   `json:"totalCost"`
	TargetLocation string  `json:"targetLocation"`
	Priority       string  `json:"priority"`
	Impressions    int64   `json:"impressions"`
	Clicks         int64   `json:"clicks"`
	Conversions    int64   `json:"conversions"`
	CTR            float64 `json:"ctr"`
	CreatedAt      string  `json:"createdAt"`
}

func toCampaignJSON(c *domain.Campaign) campaignJSON {
	out := campaignJSON{
		ID:             c.ID,
		VendorID:       c.VendorID,
		ListingID:      c.ListingID,
		ListingTitle:   c.ListingTitle,
		ListingImage:   c.ListingImage,
		Type:           string(c.Type),
		Goal:           string(c.Goal),
		Status:         string(c.Status),
		DurationDays:   c.DurationDays,
		TotalCost:      c.TotalCost,
		TargetLocation: c.TargetLocation,
		Priority:       string(c.Priority),
		Impressions:    c.Impressions,
		Clicks:         c.Clicks,
		Conversions:    c.Conversions,
		CTR:            c.CTR(),
		CreatedAt:      c.CreatedAt.Format(time.RFC3339),
	}
	if !c.StartDate.IsZero() {
		out.StartDate = c.StartDate.Format(time.RFC3339)
	}
	if !c.EndDate.IsZero() {
		out.EndDate = c.EndDate.Format(time.RFC3339)
	}
	return out
}

func toCampaignListJSON(campaigns []domain.Campaign) []campaignJSON {
	out := make([]campaignJSON, 0, len(campaigns))
	for i := range campaigns {
		out = append(out, toCampaignJSON(&campaigns[i]))
	}
	return out
}

type transactionJSON struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	Type        string `json:"type"`
	Amount      int64  `json:"amount"`
	Status      string `json:"status"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
}

func toTransactionListJSON(txs []domain.Transaction) []transactionJSON {
	out := make([]transactionJSON, 0, len(txs))
	for _, t := range txs {
		out = append(out, transactionJSON{
			ID:          t.ID,
			UserID:      t.UserID,
			Type:        string(t.Type),
			Amount:      t.Amount,
			Status:      t.Status,
			Description: t.Description,
			CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		})
	}
	return out
}

type errorJSON struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps the ledger error taxonomy onto HTTP status codes.
// Unknown errors are logged and reported as 500 without detail.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var status int
	switch {
	case errors.Is(err, port.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, port.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, port.ErrInvalidState):
		status = http.StatusConflict
	case errors.Is(err, port.ErrInsufficientFunds):
		status = http.StatusPaymentRequired
	case errors.Is(err, port.ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
	default:
		h.logger.Error("unhandled error", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, errorJSON{Error: "internal error"})
		return
	}
	h.writeJSON(w, status, errorJSON{Error: err.Error()})
}

// vendorID extracts the caller identity. Missing identity is reported
// as 400; there is no anonymous vendor API.
func (h *Handler) vendorID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.Header.Get("X-Vendor-ID")
	if id == "" {
		h.writeJSON(w, http.StatusBadRequest, errorJSON{Error: "missing X-Vendor-ID header"})
		return "", false
	}
	return id, true
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorJSON{Error: "invalid JSON"})
		return false
	}
	return true
}
