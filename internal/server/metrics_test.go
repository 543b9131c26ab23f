package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/agbru/chunkbench/internal/logging"
	"github.com/agbru/chunkbench/internal/metrics"
)

// TestNew tests the MetricsServer constructor.
func TestNew(t *testing.T) {
	m := metrics.NewTrialMetrics()
	s := New(":0", m.Registry(), logging.NopLogger{})

	if s == nil {
		t.Fatal("New returned nil")
	}
	if s.Handler() == nil {
		t.Error("Handler() should be initialized")
	}
}

// TestMetricsEndpoint tests that recorded trials appear in the exposition
// output.
func TestMetricsEndpoint(t *testing.T) {
	m := metrics.NewTrialMetrics()
	m.ObserverFor("Container").ObserveTrial(4, 100*time.Microsecond)
	s := New(":0", m.Registry(), logging.NopLogger{})

	req := httptest.NewRequest("GET", "/metrics", http.NoBody)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /metrics status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "chunkbench_trials_total") {
		t.Errorf("exposition missing chunkbench_trials_total, got:\n%s", body)
	}
	if !strings.Contains(body, `strategy="Container"`) {
		t.Errorf("exposition missing strategy label, got:\n%s", body)
	}
}

// TestUnknownPath tests that non-metrics paths 404.
func TestUnknownPath(t *testing.T) {
	m := metrics.NewTrialMetrics()
	s := New(":0", m.Registry(), logging.NopLogger{})

	req := httptest.NewRequest("GET", "/debug", http.NoBody)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("GET /debug status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
