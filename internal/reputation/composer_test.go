package reputation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skingem1/agent-reputation-dashboard/internal/types"
)

var scoreRefTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func catalogAgent(id, protocolID string, ageMonths int, chains, skills int) *types.Agent {
	allChains := []string{"ethereum", "base", "arbitrum", "optimism", "polygon"}
	allSkills := []string{"trading", "social", "auditing", "oracles", "defi"}
	return &types.Agent{
		ID:            id,
		Name:          id,
		ProtocolID:    protocolID,
		WalletAddress: "0x4fC35b1cdcAd8Ff45bcb3E19d0Eb2A6b3b2c9e11",
		Chains:        allChains[:chains],
		Skills:        allSkills[:skills],
		CreatedAt:     scoreRefTime.AddDate(0, -ageMonths, 0),
		Source:        types.SourceCatalog,
	}
}

func strongSignals(chains []string) OnChainSignals {
	byChain := make(map[string]uint64, len(chains))
	for i, c := range chains {
		byChain[c] = uint64(300 + i*50)
	}
	var total uint64
	for _, v := range byChain {
		total += v
	}
	return OnChainSignals{
		TotalTxCount:   total,
		Balance:        50,
		TxCountByChain: byChain,
		TransferCount:  15,
		LastTransferAt: scoreRefTime.Add(-2 * 24 * time.Hour),
	}
}

func composeFor(agent *types.Agent, signals OnChainSignals, successRate float64, p Params) Score {
	metrics := SynthesizeMetrics(MetricInputs{
		ProtocolBaseScore: BaseScore(agent, p),
		TotalTxCount:      signals.TotalTxCount,
		Balance:           signals.Balance,
		AgeMonths:         agent.AgeMonths(scoreRefTime),
		SuccessRate:       successRate,
		Walletless:        agent.Walletless(),
		UserSubmitted:     agent.Source == types.SourceUserSubmitted,
		SeedBase:          HashString(agent.ID),
	}, p)
	return Compose(agent, signals, metrics, scoreRefTime, p)
}

func TestCompose_Deterministic(t *testing.T) {
	p := DefaultParams()
	agent := catalogAgent("determinism-probe", "eliza", 10, 3, 4)
	signals := strongSignals(agent.Chains)

	first := composeFor(agent, signals, 90, p)
	second := composeFor(agent, signals, 90, p)

	assert.Equal(t, first, second)
}

func TestCompose_Bounds(t *testing.T) {
	p := DefaultParams()

	cases := []struct {
		name    string
		agent   *types.Agent
		signals OnChainSignals
	}{
		{"strong catalog agent", catalogAgent("bounds-strong", "virtuals", 40, 5, 5), strongSignals([]string{"ethereum", "base", "arbitrum"})},
		{"bare catalog agent", catalogAgent("bounds-bare", "arc", 0, 1, 1), OnChainSignals{}},
		{"unknown protocol", catalogAgent("bounds-unknown", "no-such-protocol", 6, 2, 2), OnChainSignals{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			score := composeFor(tc.agent, tc.signals, 80, p)

			for _, sub := range []int{score.Reliability, score.Accuracy, score.Speed, score.Trust} {
				require.GreaterOrEqual(t, sub, p.SubScoreMin)
				require.LessOrEqual(t, sub, p.SubScoreMax)
			}
			require.GreaterOrEqual(t, score.Overall, p.OverallMin)
			require.LessOrEqual(t, score.Overall, p.OverallMax)
			require.Len(t, score.History, p.HistoryDays)
			for _, v := range score.History {
				require.GreaterOrEqual(t, v, p.HistoryFloor)
				require.LessOrEqual(t, v, p.HistoryCeil)
			}
		})
	}
}

func TestCompose_ActivityMonotonicity(t *testing.T) {
	p := DefaultParams()
	agent := catalogAgent("monotonic-probe", "morpheus", 12, 2, 3)

	idle := composeFor(agent, OnChainSignals{}, 85, p)
	active := composeFor(agent, OnChainSignals{
		TotalTxCount:   500,
		TxCountByChain: map[string]uint64{"ethereum": 500},
	}, 85, p)

	// same agent id means identical noise streams: adding transactions
	// can only add non-negative terms
	assert.GreaterOrEqual(t, active.Reliability, idle.Reliability)
	assert.GreaterOrEqual(t, active.Overall, idle.Overall)
}

func TestCompose_WalletlessPenalty(t *testing.T) {
	p := DefaultParams()

	verified := catalogAgent("gap-probe", "morpheus", 12, 2, 2)
	walletless := catalogAgent("gap-probe", "morpheus", 12, 2, 2)
	walletless.WalletAddress = ""

	verifiedScore := composeFor(verified, strongSignals(verified.Chains), 90, p)
	walletlessScore := composeFor(walletless, OnChainSignals{}, 90, p)

	activity, balance, chainActivity := OnChainBonus(OnChainSignals{}, p)
	assert.Zero(t, activity+balance+chainActivity)

	assert.GreaterOrEqual(t, verifiedScore.Overall-walletlessScore.Overall, 15)
}

func TestCompose_ProtocolBaseOrdering(t *testing.T) {
	p := DefaultParams()

	higher := catalogAgent("ordering-probe", "virtuals", 8, 2, 3)
	lower := catalogAgent("ordering-probe", "arc", 8, 2, 3)
	signals := strongSignals(higher.Chains)

	assert.GreaterOrEqual(t,
		composeFor(higher, signals, 85, p).Overall,
		composeFor(lower, signals, 85, p).Overall,
	)
}

func TestCompose_UserSubmittedBaseFloor(t *testing.T) {
	p := DefaultParams()

	submitted := catalogAgent("floor-probe", "virtuals", 8, 2, 3)
	submitted.Source = types.SourceUserSubmitted

	// claimed protocol tier is ignored until the agent is verified
	assert.Equal(t, p.UnverifiedBaseScore, BaseScore(submitted, p))
}

func TestCompose_ScenarioTier1(t *testing.T) {
	p := DefaultParams()
	agent := catalogAgent("scenario-tier1", "virtuals", 36, 3, 5)
	signals := OnChainSignals{
		TotalTxCount:   1000,
		Balance:        50,
		TxCountByChain: map[string]uint64{"ethereum": 400, "base": 350, "arbitrum": 250},
		TransferCount:  15,
		LastTransferAt: scoreRefTime.Add(-24 * time.Hour),
	}

	score := composeFor(agent, signals, 95, p)

	upperHalf := (p.SubScoreMin + p.SubScoreMax) / 2
	assert.GreaterOrEqual(t, score.Reliability, upperHalf)
	assert.GreaterOrEqual(t, score.Trust, upperHalf)
	assert.GreaterOrEqual(t, score.Overall, 70)

	// reproducible across runs with the same id
	assert.Equal(t, score, composeFor(agent, signals, 95, p))
}

func TestCompose_ScenarioFreshSubmission(t *testing.T) {
	p := DefaultParams()
	agent := &types.Agent{
		ID:        "scenario-fresh",
		Name:      "scenario-fresh",
		Chains:    []string{"base"},
		Skills:    []string{"social"},
		CreatedAt: scoreRefTime.Add(-24 * time.Hour),
		Source:    types.SourceUserSubmitted,
	}

	score := composeFor(agent, OnChainSignals{}, 60, p)

	assert.GreaterOrEqual(t, score.Overall, p.OverallMin)
	assert.LessOrEqual(t, score.Overall, 45)
	assert.Equal(t, types.StatusUnderReview, DeriveStatus(agent, OnChainSignals{}, scoreRefTime, p))
}
