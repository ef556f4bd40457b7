package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/skingem1/agent-reputation-dashboard/internal/observability/tracing"
)

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(traceMiddleware)

	r.Get("/healthcheck", s.handleHealthcheck)
	r.Get("/agents", s.handleGetAgents)
	r.Get("/agents/{id}", s.handleGetAgentByID)
	r.Get("/agents/top/{n}", s.handleGetTopAgents)
	r.Get("/stats", s.handleGetStats)
	r.Post("/internal/invalidate-cache", s.handleInvalidateCache)

	return r
}

// traceMiddleware gives each request a correlated context logger.
func traceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := tracing.InjectTraceID(r.Context())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
