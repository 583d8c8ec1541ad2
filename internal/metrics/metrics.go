// Package metrics holds the Prometheus collectors exported on /metrics.
// All recording methods are safe on a nil *Metrics so callers and tests can
// run with metrics disabled.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gestao"

type Metrics struct {
	registry *prometheus.Registry

	salesCreated      *prometheus.CounterVec
	salesCancelled    prometheus.Counter
	saleRevenue       prometheus.Counter
	rejectedDiscounts prometheus.Counter
	idempotentReplays *prometheus.CounterVec
	commissionPayouts prometheus.Counter
	httpDuration      *prometheus.HistogramVec
}

// New registers every collector on a fresh registry
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		salesCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sales_created_total",
			Help:      "Sales persisted, by payment method.",
		}, []string{"payment_method"}),
		salesCancelled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sales_cancelled_total",
			Help:      "Sales cancelled and reversed.",
		}),
		saleRevenue: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sales_revenue_cents_total",
			Help:      "Revenue of created sales in cents.",
		}),
		rejectedDiscounts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejected_discounts_total",
			Help:      "Sale or quotation writes refused because the discount exceeded the subtotal.",
		}),
		idempotentReplays: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "idempotent_replays_total",
			Help:      "Requests answered from a stored idempotency key.",
		}, []string{"endpoint"}),
		commissionPayouts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commission_payouts_total",
			Help:      "Commission payments recorded.",
		}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.salesCreated,
		m.salesCancelled,
		m.saleRevenue,
		m.rejectedDiscounts,
		m.idempotentReplays,
		m.commissionPayouts,
		m.httpDuration,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry, mostly for tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) SaleCreated(paymentMethod string, totalCents int64) {
	if m == nil {
		return
	}
	m.salesCreated.WithLabelValues(paymentMethod).Inc()
	if totalCents > 0 {
		m.saleRevenue.Add(float64(totalCents))
	}
}

func (m *Metrics) SaleCancelled() {
	if m == nil {
		return
	}
	m.salesCancelled.Inc()
}

func (m *Metrics) DiscountRejected() {
	if m == nil {
		return
	}
	m.rejectedDiscounts.Inc()
}

func (m *Metrics) IdempotentReplay(endpoint string) {
	if m == nil {
		return
	}
	m.idempotentReplays.WithLabelValues(endpoint).Inc()
}

func (m *Metrics) CommissionPaid() {
	if m == nil {
		return
	}
	m.commissionPayouts.Inc()
}

func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
