package metrics_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/wrtactics/wr-tactics-api/internal/metrics"
)

func TestMetrics_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	onRequest, onWelcome := m.Hooks()

	onRequest(http.MethodGet, "/", http.StatusOK, 3*time.Millisecond)
	onRequest(http.MethodGet, "/", http.StatusOK, 5*time.Millisecond)
	onRequest(http.MethodGet, "unmatched", http.StatusNotFound, time.Millisecond)
	onWelcome()
	onWelcome()

	if got := testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/", "200")); got != 2 {
		t.Fatalf("expected 2 root requests, got %v", got)
	}
	if got := testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "unmatched", "404")); got != 1 {
		t.Fatalf("expected 1 unmatched request, got %v", got)
	}
	if got := testutil.ToFloat64(m.WelcomesServed); got != 2 {
		t.Fatalf("expected 2 welcomes served, got %v", got)
	}
	if n := testutil.CollectAndCount(m.RequestDuration); n != 2 {
		t.Fatalf("expected 2 latency series, got %d", n)
	}
}

func TestMetrics_RegistersOnCustomRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.New(reg)

	defer func() {
		if recover() == nil {
			t.Fatal("expected duplicate registration to panic")
		}
	}()
	metrics.New(reg)
}
