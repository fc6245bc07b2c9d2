package httpapi

import (
	"net/http/httptest"
	"testing"

	"github.com/XavierBriggs/pricedge/internal/matcher"
	"github.com/XavierBriggs/pricedge/internal/pipeline"
)

func TestHealthzReportsUnreadyBeforeMarkReady(t *testing.T) {
	o := pipeline.NewOrchestrator(pipeline.DefaultConfig(), matcher.DefaultConfig(), nil, nil, nil)
	s := New(o)

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != 503 {
		t.Fatalf("expected 503 before MarkReady, got %d", w.Code)
	}
}

func TestHealthzReportsReadyAfterMarkReady(t *testing.T) {
	o := pipeline.NewOrchestrator(pipeline.DefaultConfig(), matcher.DefaultConfig(), nil, nil, nil)
	s := New(o)
	s.MarkReady()

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != 200 {
		t.Fatalf("expected 200 after MarkReady, got %d", w.Code)
	}
}

func TestMetricsReportsOrchestratorCounters(t *testing.T) {
	o := pipeline.NewOrchestrator(pipeline.DefaultConfig(), matcher.DefaultConfig(), nil, nil, nil)
	s := New(o)

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if body == "" {
		t.Fatal("expected a non-empty metrics body")
	}
}
