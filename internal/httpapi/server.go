// Package httpapi exposes the optional status surface from SPEC_FULL §6:
// /healthz and /metrics, for operators embedding this core in a long-running
// service rather than a one-shot CLI invocation. Grounded on api-gateway's
// and kelly-calculator's go-chi/chi + go-chi/cors mux setup.
package httpapi

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/XavierBriggs/pricedge/internal/pipeline"
)

// Server is the tiny status mux; it carries no business logic, only reading
// the orchestrator's counters.
type Server struct {
	orchestrator *pipeline.Orchestrator
	ready        bool
}

func New(o *pipeline.Orchestrator) *Server {
	return &Server{orchestrator: o}
}

// MarkReady flips the health check on, once the orchestrator has completed
// its first pass.
func (s *Server) MarkReady() { s.ready = true }

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET"},
	}))

	r.Get("/healthz", s.handleHealthz)
	r.Get("/metrics", s.handleMetrics)

	return r
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if !s.ready {
		w.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprintln(w, "not ready")
		return
	}
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	scraped, errors := s.orchestrator.Metrics()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "pricedge_scraped_total %d\n", scraped)
	fmt.Fprintf(w, "pricedge_scrape_errors_total %d\n", errors)
}
