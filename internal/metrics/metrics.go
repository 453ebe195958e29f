package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	globalMetrics *Metrics
	globalMu      sync.RWMutex
)

// Metrics holds all Prometheus metrics for the promotion ledger.
type Metrics struct {
	// Ledger operation counters
	LedgerOpsTotal     *prometheus.CounterVec
	RefundsTotal       prometheus.Counter
	RefundUnitsTotal   prometheus.Counter
	SpendClampTotal    prometheus.Counter
	InsufficientsTotal prometheus.Counter

	// Outbox
	OutboxPending              prometheus.Gauge
	NotificationsDeliveredTotal prometheus.Counter
	NotificationRetriesTotal    prometheus.Counter

	// HTTP metrics
	HTTPRequestsTotal          *prometheus.CounterVec
	HTTPRequestDurationSeconds *prometheus.HistogramVec

	registry *prometheus.Registry
}

// New creates a new Metrics instance with all metrics registered.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		LedgerOpsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ads_ledger_ops_total",
				Help: "Total number of ledger operations by operation and outcome",
			},
			[]string{"op", "outcome"},
		),
		RefundsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "ads_refunds_total",
				Help: "Total number of rejection refunds issued",
			},
		),
		RefundUnitsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "ads_refund_units_total",
				Help: "Total wallet units refunded by rejections",
			},
		),
		SpendClampTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "ads_spend_clamp_total",
				Help: "Total number of refunds where total_spend was clamped at zero",
			},
		),
		InsufficientsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "ads_insufficient_funds_total",
				Help: "Total number of campaign creations declined for insufficient balance",
			},
		),

		OutboxPending: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "ads_outbox_pending",
				Help: "Number of notifications awaiting delivery",
			},
		),
		NotificationsDeliveredTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "ads_notifications_delivered_total",
				Help: "Total number of notifications delivered from the outbox",
			},
		),
		NotificationRetriesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "ads_notification_retries_total",
				Help: "Total number of notification deliveries that failed and were left for retry",
			},
		),

		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ads_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDurationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ads_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),

		registry: reg,
	}

	reg.MustRegister(
		m.LedgerOpsTotal,
		m.RefundsTotal,
		m.RefundUnitsTotal,
		m.SpendClampTotal,
		m.InsufficientsTotal,
		m.OutboxPending,
		m.NotificationsDeliveredTotal,
		m.NotificationRetriesTotal,
		m.HTTPRequestsTotal,
		m.HTTPRequestDurationSeconds,
	)

	return m
}

// Registry returns the Prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// SetGlobal sets the global metrics instance.
func SetGlobal(m *Metrics) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalMetrics = m
}

// Global returns the global metrics instance, nil when unset.
func Global() *Metrics {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalMetrics
}

// IncLedgerOp increments the ledger operation counter.
func IncLedgerOp(op, outcome string) {
	m := Global()
	if m != nil {
		m.LedgerOpsTotal.WithLabelValues(op, outcome).Inc()
	}
}

// IncRefund records a rejection refund of the given amount.
func IncRefund(amount int64) {
	m := Global()
	if m != nil {
		m.RefundsTotal.Inc()
		m.RefundUnitsTotal.Add(float64(amount))
	}
}

// IncSpendClamp increments the total_spend clamp counter.
func IncSpendClamp() {
	m := Global()
	if m != nil {
		m.SpendClampTotal.Inc()
	}
}

// IncInsufficientFunds increments the declined-creation counter.
func IncInsufficientFunds() {
	m := Global()
	if m != nil {
		m.InsufficientsTotal.Inc()
	}
}

// IncNotificationsDelivered adds to the delivered notification counter.
func IncNotificationsDelivered(n int) {
	m := Global()
	if m != nil {
		m.NotificationsDeliveredTotal.Add(float64(n))
	}
}

// IncNotificationRetry increments the failed-delivery counter.
func IncNotificationRetry() {
	m := Global()
	if m != nil {
		m.NotificationRetriesTotal.Inc()
	}
}

// SetOutboxPending sets the pending-notification gauge.
func SetOutboxPending(n int) {
	m := Global()
	if m != nil {
		m.OutboxPending.Set(float64(n))
	}
}

// Middleware records request counts and latencies using the global
// metrics instance. It labels by route pattern, not raw path, to keep
// cardinality bounded.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := Global()
		if m == nil {
			next.ServeHTTP(w, r)
			return
		}
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		path := chi.RouteContext(r.Context()).RoutePattern()
		if path == "" {
			path = "unmatched"
		}
		m.HTTPRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(ww.Status())).Inc()
		m.HTTPRequestDurationSeconds.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	})
}
