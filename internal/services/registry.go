package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/skingem1/agent-reputation-dashboard/internal/catalog"
	"github.com/skingem1/agent-reputation-dashboard/internal/types"
)

// resolveRegistry merges the static catalog seed with user submissions
// from the store. A store failure degrades to the catalog-only set so
// scoring keeps working while the database is down.
func (s *Service) resolveRegistry(ctx context.Context) []types.Agent {
	agents := catalog.KnownAgents()

	docs, err := s.db.ListSubmittedAgents(ctx)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("Failed to list submitted agents, serving catalog only")
		return agents
	}

	for _, doc := range docs {
		agents = append(agents, doc.ToAgent())
	}

	log.Ctx(ctx).Debug().
		Int("catalog_count", len(agents)-len(docs)).
		Int("submitted_count", len(docs)).
		Msg("Resolved agent registry")

	return agents
}
