package services

import (
	"context"

	"github.com/skingem1/agent-reputation-dashboard/internal/reputation"
	"github.com/skingem1/agent-reputation-dashboard/internal/types"
)

const dailyTxDays = 30

// scoreBuckets are the histogram boundaries; bucket i covers
// [scoreBuckets[i], scoreBuckets[i+1]).
var scoreBuckets = []int{20, 36, 52, 68, 84, 100}

// EcosystemStats is a read-only aggregate over the scored registry.
type EcosystemStats struct {
	TotalAgents    int            `json:"total_agents"`
	ActiveAgents   int            `json:"active_agents"`
	AverageScore   float64        `json:"average_score"`
	TotalTxCount   uint64         `json:"total_tx_count"`
	AgentsByChain  map[string]int `json:"agents_by_chain"`
	AgentsBySkill  map[string]int `json:"agents_by_skill"`
	ScoreHistogram []ScoreBucket  `json:"score_histogram"`
	DailyTxLast30  []uint64       `json:"daily_tx_last_30_days"`
}

type ScoreBucket struct {
	Min   int `json:"min"`
	Max   int `json:"max"`
	Count int `json:"count"`
}

// GetEcosystemStats derives the aggregate snapshot from the current
// scored set. The daily series is synthetic but seeded off the observed
// totals, so it is stable for a given snapshot.
func (s *Service) GetEcosystemStats(ctx context.Context) (*EcosystemStats, error) {
	snap, err := s.getSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	stats := &EcosystemStats{
		TotalAgents:   len(snap.agents),
		AgentsByChain: make(map[string]int),
		AgentsBySkill: make(map[string]int),
	}

	var scoreSum int
	for _, agent := range snap.agents {
		scoreSum += agent.Score.Overall
		stats.TotalTxCount += agent.TotalTxCount
		if agent.Status == types.StatusActive {
			stats.ActiveAgents++
		}
		for _, chain := range agent.Chains {
			stats.AgentsByChain[chain]++
		}
		for _, skill := range agent.Skills {
			stats.AgentsBySkill[skill]++
		}
	}
	if stats.TotalAgents > 0 {
		stats.AverageScore = float64(scoreSum) / float64(stats.TotalAgents)
	}

	stats.ScoreHistogram = scoreHistogram(snap.agents)
	stats.DailyTxLast30 = dailyTxSeries(stats.TotalTxCount)

	return stats, nil
}

func scoreHistogram(agents []*ScoredAgent) []ScoreBucket {
	buckets := make([]ScoreBucket, len(scoreBuckets)-1)
	for i := range buckets {
		buckets[i] = ScoreBucket{Min: scoreBuckets[i], Max: scoreBuckets[i+1] - 1}
	}
	for _, agent := range agents {
		for i := range buckets {
			if agent.Score.Overall >= buckets[i].Min && agent.Score.Overall <= buckets[i].Max {
				buckets[i].Count++
				break
			}
		}
	}
	return buckets
}

// dailyTxSeries spreads the observed aggregate tx count over a
// synthetic 30-day activity curve, oldest first. Seeded off the total,
// so identical observed activity always draws the same curve.
func dailyTxSeries(totalTx uint64) []uint64 {
	series := make([]uint64, dailyTxDays)
	if totalTx == 0 {
		return series
	}
	base := float64(totalTx) / dailyTxDays
	seed := int64(totalTx % (1 << 31))
	for day := range series {
		// each day swings between 70% and 130% of the flat average
		factor := 0.7 + reputation.Seeded(seed+int64(day))*0.6
		series[day] = uint64(base * factor)
	}
	return series
}
