package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/skingem1/agent-reputation-dashboard/internal/db"
)

type response struct {
	Data any `json:"data"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealthcheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGetAgents(w http.ResponseWriter, r *http.Request) {
	agents, err := s.service.GetAllAgents(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, response{Data: agents})
}

func (s *Server) handleGetAgentByID(w http.ResponseWriter, r *http.Request) {
	agent, err := s.service.GetAgentByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, response{Data: agent})
}

func (s *Server) handleGetTopAgents(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(chi.URLParam(r, "n"))
	if err != nil || n <= 0 {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "n must be a positive integer"})
		return
	}
	agents, err := s.service.GetTopAgents(r.Context(), n)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, response{Data: agents})
}

func (s *Server) handleGetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.service.GetEcosystemStats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, response{Data: stats})
}

func (s *Server) handleInvalidateCache(w http.ResponseWriter, r *http.Request) {
	s.service.InvalidateCache(r.Context())
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "invalidated"})
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if db.IsNotFoundError(err) {
		writeJSON(w, r, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}
	log.Ctx(r.Context()).Error().Err(err).Msg("Request failed")
	writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to encode response")
	}
}
