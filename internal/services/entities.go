package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/skingem1/agent-reputation-dashboard/internal/db"
)

// GetAllAgents returns every scored agent, sorted by overall score
// descending.
func (s *Service) GetAllAgents(ctx context.Context) ([]*ScoredAgent, error) {
	snap, err := s.getSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.agents, nil
}

// GetAgentByID returns one scored agent or a typed not-found error.
func (s *Service) GetAgentByID(ctx context.Context, id string) (*ScoredAgent, error) {
	snap, err := s.getSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	agent, ok := snap.byID[id]
	if !ok {
		return nil, &db.NotFoundError{
			Key:     id,
			Message: "agent not found",
		}
	}
	return agent, nil
}

// GetTopAgents returns the n highest-scored agents. n larger than the
// registry returns the whole registry.
func (s *Service) GetTopAgents(ctx context.Context, n int) ([]*ScoredAgent, error) {
	snap, err := s.getSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, nil
	}
	if n > len(snap.agents) {
		n = len(snap.agents)
	}
	return snap.agents[:n], nil
}

// InvalidateCache forces the next read to rebuild instead of serving
// the cached snapshot.
func (s *Service) InvalidateCache(ctx context.Context) {
	s.cache.Invalidate()
	log.Ctx(ctx).Info().Msg("Score snapshot cache invalidated")
}
