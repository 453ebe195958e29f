package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"bazaar-ads/internal/core/port"
	"bazaar-ads/internal/metrics"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds the ledger use case to execute business logic and a
// logger for structured logging. Routes are registered on a chi.Router.
type Handler struct {
	svc    port.LedgerUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. The vendor
// routes identify the caller through the X-Vendor-ID header; the admin
// routes are expected to sit behind an authenticating proxy.
func NewHandler(svc port.LedgerUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/vendor", func(r chi.Router) {
			r.Post("/campaigns", h.handleCreateCampaign)
			r.Get("/campaigns", h.handleVendorCampaigns)
			r.Post("/campaigns/{id}/pause", h.handleTogglePause)
			r.Post("/campaigns/{id}/engagement", h.handleRecordEngagement)
			r.Get("/wallet", h.handleWallet)
			r.Get("/wallet/transactions", h.handleWalletHistory)
		})
		r.Route("/admin", func(r chi.Router) {
			r.Get("/campaigns", h.handleAdminCampaigns)
			r.Post("/campaigns/{id}/approve", h.handleApprove)
			r.Post("/campaigns/{id}/reject", h.handleReject)
			r.Post("/campaigns/{id}/stop", h.handleStop)
			r.Post("/campaigns/{id}/priority", h.handleTogglePriority)
			r.Get("/pricing", h.handleGetPricing)
			r.Put("/pricing", h.handleSetPricing)
			r.Get("/overview", h.handleOverview)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
