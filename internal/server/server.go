package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/skingem1/agent-reputation-dashboard/internal/config"
	"github.com/skingem1/agent-reputation-dashboard/internal/services"
)

// Server is the read-only HTTP API over the scored registry.
type Server struct {
	cfg     *config.ServerConfig
	service *services.Service
}

func New(cfg *config.ServerConfig, service *services.Service) *Server {
	return &Server{
		cfg:     cfg,
		service: service,
	}
}

// Start blocks serving the API until the listener fails or the context
// is cancelled.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.routes(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	go func() {
		<-ctx.Done()
		log.Info().Msg("Shutting down API server")
		if err := srv.Shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("API server shutdown failed")
		}
	}()

	log.Info().Msgf("Starting API server on %s", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("API server failed: %w", err)
	}
	return nil
}
