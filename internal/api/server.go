// Package api exposes the results of a pipeline run over HTTP
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"olymstats/app"
	"olymstats/domain/views"
	"olymstats/internal"
)

// Server serves the views and cleaning log of the most recent run
type Server struct {
	result *app.Result
	log    *internal.Logger
}

// NewServer creates a server over one run result
func NewServer(result *app.Result, log *internal.Logger) *Server {
	if log == nil {
		log = internal.DefaultLogger
	}
	return &Server{result: result, log: log}
}

// Router builds the HTTP routing table
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/run", s.handleRun)
		r.Get("/views", s.handleListViews)
		r.Get("/views/{name}", s.handleGetView)
	})
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"run_id":      s.result.RunID.String(),
		"started_at":  s.result.Report.StartedAt,
		"finished_at": s.result.Report.FinishedAt,
		"log":         s.result.Report.Lines,
	})
}

func (s *Server) handleListViews(w http.ResponseWriter, r *http.Request) {
	names := make([]string, 0, len(s.result.Views))
	for _, v := range s.result.Views {
		names = append(names, v.ViewName())
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{"views": names})
}

func (s *Server) handleGetView(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	for _, v := range s.result.Views {
		if v.ViewName() == name {
			s.respondJSON(w, http.StatusOK, viewEnvelope(v))
			return
		}
	}
	s.respondError(w, http.StatusNotFound, "view not found")
}

func viewEnvelope(v views.View) map[string]interface{} {
	return map[string]interface{}{
		"name": v.ViewName(),
		"kind": v.ViewKind(),
		"data": v,
	}
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error("encode response: %v", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
