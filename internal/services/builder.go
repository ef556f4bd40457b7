package services

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"

	"github.com/skingem1/agent-reputation-dashboard/internal/catalog"
	"github.com/skingem1/agent-reputation-dashboard/internal/observability/metrics"
	"github.com/skingem1/agent-reputation-dashboard/internal/reputation"
	"github.com/skingem1/agent-reputation-dashboard/internal/types"
)

// seedOffsetSuccessRate decorrelates the synthetic tx success rate from
// the score and metric noise streams.
const seedOffsetSuccessRate = 6

// buildAll scores the whole registry with a bounded fan-out. A panic or
// failure in one agent's build drops that agent from the result set and
// never fails the batch.
func (s *Service) buildAll(ctx context.Context, agents []types.Agent) []*ScoredAgent {
	var (
		mu     sync.Mutex
		scored []*ScoredAgent
	)

	p := pool.New().WithMaxGoroutines(s.cfg.Cache.BuildBatchSize)
	for i := range agents {
		agent := &agents[i]
		p.Go(func() {
			sa, ok := s.buildScoredAgent(ctx, agent)
			if !ok {
				metrics.RecordBuildFailure()
				return
			}
			mu.Lock()
			scored = append(scored, sa)
			mu.Unlock()
		})
	}
	p.Wait()

	return scored
}

// buildScoredAgent runs the full pipeline for one agent: on-chain
// signals, synthesized metrics, composed score, derived status. The
// fetch stage is the only impure part; everything after it is a pure
// function of the agent and the signals.
func (s *Service) buildScoredAgent(ctx context.Context, agent *types.Agent) (sa *ScoredAgent, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Ctx(ctx).Error().
				Interface("panic", r).
				Str("agent_id", agent.ID).
				Msg("Agent build panicked, dropping agent from batch")
			sa, ok = nil, false
		}
	}()

	now := time.Now().UTC()
	seedBase := reputation.HashString(agent.ID)

	signals := s.fetchOnChainSignals(ctx, agent)

	// synthetic stand-in for telemetry the system does not yet collect
	successRate := float64(reputation.RandInt(85, 98, seedBase+seedOffsetSuccessRate))

	perfMetrics := reputation.SynthesizeMetrics(reputation.MetricInputs{
		ProtocolBaseScore: reputation.BaseScore(agent, s.params),
		TotalTxCount:      signals.TotalTxCount,
		Balance:           signals.Balance,
		AgeMonths:         agent.AgeMonths(now),
		SuccessRate:       successRate,
		Walletless:        agent.Walletless(),
		UserSubmitted:     agent.Source == types.SourceUserSubmitted,
		SeedBase:          seedBase,
	}, s.params)

	score := reputation.Compose(agent, signals, perfMetrics, now, s.params)
	status := reputation.DeriveStatus(agent, signals, now, s.params)

	var protocolName string
	if prot, found := catalog.ProtocolByID(agent.ProtocolID); found {
		protocolName = prot.Name
	}

	return &ScoredAgent{
		ID:            agent.ID,
		Name:          agent.Name,
		ProtocolID:    agent.ProtocolID,
		ProtocolName:  protocolName,
		WalletAddress: agent.WalletAddress,
		Chains:        agent.Chains,
		Skills:        agent.Skills,
		CreatedAt:     agent.CreatedAt,
		Source:        agent.Source,
		Status:        status,
		Score:         score,
		Metrics:       perfMetrics,
		TotalTxCount:  signals.TotalTxCount,
		Balance:       signals.Balance,
	}, true
}
