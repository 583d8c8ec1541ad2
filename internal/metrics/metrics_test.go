package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.SaleCreated("Pix", 319990)
	m.SaleCreated("Pix", 10000)
	m.SaleCreated("Dinheiro", 5000)
	m.SaleCancelled()
	m.DiscountRejected()
	m.IdempotentReplay("POST /api/v1/sales")

	if got := testutil.ToFloat64(m.salesCreated.WithLabelValues("Pix")); got != 2 {
		t.Fatalf("pix sales = %v", got)
	}
	if got := testutil.ToFloat64(m.saleRevenue); got != 334990 {
		t.Fatalf("revenue = %v", got)
	}
	if got := testutil.ToFloat64(m.salesCancelled); got != 1 {
		t.Fatalf("cancelled = %v", got)
	}
	if got := testutil.ToFloat64(m.idempotentReplays.WithLabelValues("POST /api/v1/sales")); got != 1 {
		t.Fatalf("replays = %v", got)
	}
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	m.SaleCreated("Pix", 100)
	m.SaleCancelled()
	m.DiscountRejected()
	m.IdempotentReplay("x")
	m.CommissionPaid()
	m.ObserveRequest("GET", "/health", 200, time.Millisecond)
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveRequest("GET", "/api/v1/sales", http.StatusOK, 20*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "gestao_http_request_duration_seconds") {
		t.Fatal("histogram missing from exposition")
	}
}
