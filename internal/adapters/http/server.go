// Package http exposes blueprint storage and registry introspection as a
// small JSON API, for editor integrations and build farm tooling.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dkealton/rigforge/pkg/blueprint"
	"github.com/dkealton/rigforge/pkg/loader"
	"github.com/dkealton/rigforge/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server holds the handler dependencies.
type Server struct {
	store    ports.Store
	reg      *blueprint.Registry
	defs     []loader.Def
	log      *slog.Logger
	requests *prometheus.CounterVec
}

// NewHandler builds the chi router for the API. Metrics are registered
// on a per-handler prometheus registry so tests can construct handlers
// freely.
func NewHandler(store ports.Store, reg *blueprint.Registry, defs []loader.Def, log *slog.Logger) http.Handler {
	s := &Server{
		store: store,
		reg:   reg,
		defs:  defs,
		log:   log,
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rigforge_http_requests_total",
				Help: "Total HTTP requests served, by route, method and status.",
			},
			[]string{"route", "method", "status"},
		),
	}

	promReg := prometheus.NewRegistry()
	promReg.MustRegister(s.requests)

	r := chi.NewRouter()
	r.Use(s.countRequests)

	r.Get("/healthz", s.health)
	r.Get("/actions", s.listActions)
	r.Get("/blueprints", s.listBlueprints)
	r.Get("/blueprints/{name}", s.getBlueprint)
	r.Put("/blueprints/{name}", s.putBlueprint)
	r.Delete("/blueprints/{name}", s.deleteBlueprint)

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(promReg, promhttp.HandlerOpts{}))

	return r
}

// countRequests records one counter increment per served request.
func (s *Server) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		s.requests.WithLabelValues(route, r.Method, fmt.Sprintf("%d", rec.status)).Inc()
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) listActions(w http.ResponseWriter, r *http.Request) {
	defs := s.defs
	if defs == nil {
		defs = []loader.Def{}
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"actions": defs})
}

func (s *Server) listBlueprints(w http.ResponseWriter, r *http.Request) {
	names, err := s.store.List(r.Context())
	if err != nil {
		s.fail(w, http.StatusInternalServerError, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"blueprints": names})
}

func (s *Server) getBlueprint(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	b, err := s.store.Load(r.Context(), name)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			s.fail(w, http.StatusNotFound, err)
			return
		}
		s.fail(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, b.Serialize())
}

func (s *Server) putBlueprint(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var doc map[string]any
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		s.fail(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	// Rebuilding through the registry validates the document before it
	// is persisted.
	b, err := blueprint.FromData(s.reg, doc)
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}

	if err := s.store.Save(r.Context(), name, b); err != nil {
		s.fail(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, b.Serialize())
}

func (s *Server) deleteBlueprint(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
		s.fail(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error("encode response", "error", err)
	}
}

func (s *Server) fail(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed", "status", status, "error", err)
	}
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}
