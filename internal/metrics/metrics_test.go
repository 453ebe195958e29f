package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNew(t *testing.T) {
	m := New()
	if m == nil {
		t.Fatal("New() returned nil")
	}
	if m.Registry() == nil {
		t.Error("Registry() returned nil")
	}
	if m.LedgerOpsTotal == nil {
		t.Error("LedgerOpsTotal is nil")
	}
	if m.RefundsTotal == nil {
		t.Error("RefundsTotal is nil")
	}
	if m.OutboxPending == nil {
		t.Error("OutboxPending is nil")
	}
	if m.HTTPRequestsTotal == nil {
		t.Error("HTTPRequestsTotal is nil")
	}
}

func TestGlobalHelpersNilSafe(t *testing.T) {
	SetGlobal(nil)

	// none of these may panic without a global instance
	IncLedgerOp("create", "ok")
	IncRefund(500)
	IncSpendClamp()
	IncInsufficientFunds()
	IncNotificationsDelivered(3)
	IncNotificationRetry()
	SetOutboxPending(7)
}

func TestIncRefund(t *testing.T) {
	m := New()
	SetGlobal(m)
	defer SetGlobal(nil)

	IncRefund(500)
	IncRefund(300)

	if got := testutil.ToFloat64(m.RefundsTotal); got != 2 {
		t.Errorf("RefundsTotal = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.RefundUnitsTotal); got != 800 {
		t.Errorf("RefundUnitsTotal = %v, want 800", got)
	}
}

func TestMiddleware(t *testing.T) {
	m := New()
	SetGlobal(m)
	defer SetGlobal(nil)

	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/api/v1/vendor/campaigns", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/vendor/campaigns", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	c, err := m.HTTPRequestsTotal.GetMetricWithLabelValues(http.MethodGet, "/api/v1/vendor/campaigns", "200")
	if err != nil {
		t.Fatalf("failed to get counter: %v", err)
	}
	if got := testutil.ToFloat64(c); got != 1 {
		t.Errorf("HTTPRequestsTotal = %v, want 1", got)
	}
}
