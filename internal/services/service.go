package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/skingem1/agent-reputation-dashboard/internal/cache"
	"github.com/skingem1/agent-reputation-dashboard/internal/clients/evmclient"
	"github.com/skingem1/agent-reputation-dashboard/internal/config"
	"github.com/skingem1/agent-reputation-dashboard/internal/db"
	"github.com/skingem1/agent-reputation-dashboard/internal/observability/metrics"
	"github.com/skingem1/agent-reputation-dashboard/internal/reputation"
	"github.com/skingem1/agent-reputation-dashboard/internal/types"
)

// ScoredAgent is the fully built output record for one agent: identity,
// derived status, the composed score and the synthesized metrics behind
// it. A new record replaces the old one on every snapshot rebuild.
type ScoredAgent struct {
	ID            string                        `json:"id"`
	Name          string                        `json:"name"`
	ProtocolID    string                        `json:"protocol_id"`
	ProtocolName  string                        `json:"protocol_name,omitempty"`
	WalletAddress string                        `json:"wallet_address,omitempty"`
	Chains        []string                      `json:"chains"`
	Skills        []string                      `json:"skills"`
	CreatedAt     time.Time                     `json:"created_at"`
	Source        types.AgentSource             `json:"source"`
	Status        types.AgentStatus             `json:"status"`
	Score         reputation.Score              `json:"score"`
	Metrics       reputation.PerformanceMetrics `json:"metrics"`
	TotalTxCount  uint64                        `json:"total_tx_count"`
	Balance       float64                       `json:"balance"`
}

// snapshot is the atomically swapped result of one full registry build.
type snapshot struct {
	agents  []*ScoredAgent
	byID    map[string]*ScoredAgent
	builtAt time.Time
}

type Service struct {
	cfg    *config.Config
	db     db.DbInterface
	evm    evmclient.EvmInterface
	cache  *cache.Cache[*snapshot]
	params reputation.Params

	// buildMu serializes rebuilds so a cache miss under load triggers
	// one build, not one per caller.
	buildMu sync.Mutex
}

func NewService(
	cfg *config.Config,
	db db.DbInterface,
	evm evmclient.EvmInterface,
) *Service {
	return &Service{
		cfg:    cfg,
		db:     db,
		evm:    evm,
		cache:  cache.New[*snapshot](cfg.Cache.TTL),
		params: reputation.DefaultParams(),
	}
}

// getSnapshot returns the current snapshot, rebuilding when the cache
// is stale. A failed rebuild falls back to the previous snapshot when
// one exists, so readers see stale data rather than errors.
func (s *Service) getSnapshot(ctx context.Context) (*snapshot, error) {
	if snap, ok := s.cache.Get(); ok {
		return snap, nil
	}

	s.buildMu.Lock()
	defer s.buildMu.Unlock()

	// another caller may have rebuilt while we waited on the lock
	if snap, ok := s.cache.Get(); ok {
		return snap, nil
	}

	snap, err := s.buildSnapshot(ctx)
	if err != nil {
		if stale, ok := s.cache.Stale(); ok {
			log.Ctx(ctx).Warn().Err(err).Msg("Snapshot rebuild failed, serving stale data")
			return stale, nil
		}
		return nil, fmt.Errorf("failed to build score snapshot: %w", err)
	}

	s.cache.Set(snap)
	return snap, nil
}

// buildSnapshot resolves the registry and builds every agent with a
// bounded fan-out. Individual build failures drop the agent from the
// result set; the build as a whole fails only when the registry itself
// cannot be resolved.
func (s *Service) buildSnapshot(ctx context.Context) (*snapshot, error) {
	startTime := time.Now()
	agents := s.resolveRegistry(ctx)
	if len(agents) == 0 {
		return nil, fmt.Errorf("registry resolved to zero agents")
	}

	scored := s.buildAll(ctx, agents)
	if len(scored) == 0 {
		return nil, fmt.Errorf("all %d agent builds failed", len(agents))
	}

	sortByOverallDesc(scored)

	byID := make(map[string]*ScoredAgent, len(scored))
	var scoreSum int
	for _, sa := range scored {
		byID[sa.ID] = sa
		scoreSum += sa.Score.Overall
	}

	buildDuration := time.Since(startTime)
	avgScore := float64(scoreSum) / float64(len(scored))
	metrics.RecordSnapshot(len(scored), avgScore, buildDuration)

	log.Ctx(ctx).Info().
		Int("agent_count", len(scored)).
		Int("dropped", len(agents)-len(scored)).
		Float64("average_score", avgScore).
		Dur("build_duration", buildDuration).
		Msg("Built score snapshot")

	return &snapshot{
		agents:  scored,
		byID:    byID,
		builtAt: startTime,
	}, nil
}

func sortByOverallDesc(agents []*ScoredAgent) {
	// stable ordering for equal scores keeps API pagination sane
	sort.Slice(agents, func(i, j int) bool {
		if agents[i].Score.Overall != agents[j].Score.Overall {
			return agents[i].Score.Overall > agents[j].Score.Overall
		}
		return agents[i].ID < agents[j].ID
	})
}
