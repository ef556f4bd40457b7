package reputation

import (
	"math"
	"time"

	"github.com/skingem1/agent-reputation-dashboard/internal/catalog"
	"github.com/skingem1/agent-reputation-dashboard/internal/types"
)

// Seed offsets deriving decorrelated noise streams from one agent seed.
const (
	seedOffsetReliability = 1
	seedOffsetAccuracy    = 2
	seedOffsetSpeed       = 3
	seedOffsetTrust       = 4
	seedOffsetOverall     = 5
)

// BaseScore resolves the protocol maturity floor for an agent. Unknown
// protocols fall back to the default tier; user-submitted agents always
// get the lowest band value regardless of claimed protocol, which keeps
// them unverified until proven.
func BaseScore(agent *types.Agent, p Params) int {
	if agent.Source == types.SourceUserSubmitted {
		return p.UnverifiedBaseScore
	}
	if prot, ok := catalog.ProtocolByID(agent.ProtocolID); ok {
		return prot.BaseScore
	}
	return p.DefaultBaseScore
}

// OnChainBonus sums the activity, balance and chain-activity terms. All
// terms are zero for walletless agents or when nothing was observed, so
// a missing signal degrades the score instead of erroring.
func OnChainBonus(signals OnChainSignals, p Params) (activity, balance, chainActivity float64) {
	if signals.TotalTxCount > 0 {
		activity = math.Min(p.ActivityBonusCap, math.Log1p(float64(signals.TotalTxCount))*p.ActivityLogScale)
	}
	if signals.Balance > 0 {
		balance = math.Min(p.BalanceBonusCap, math.Log1p(signals.Balance)*p.BalanceLogScale)
	}
	chainActivity = math.Min(p.ChainActivityCap, float64(signals.ActiveChains())*p.ChainActivityPerChain)
	return activity, balance, chainActivity
}

// Compose combines the protocol base, structural bonuses, on-chain bonus
// and synthesized metrics into the four sub-scores and the overall
// score, then attaches the synthetic 30-day history and trend. Pure:
// the same agent, signals, metrics and reference time always produce a
// byte-identical Score.
func Compose(
	agent *types.Agent,
	signals OnChainSignals,
	metrics PerformanceMetrics,
	now time.Time,
	p Params,
) Score {
	base := float64(BaseScore(agent, p))
	seedBase := HashString(agent.ID)

	ageMonths := agent.AgeMonths(now)
	ageBonus := math.Min(p.AgeBonusCap, ageMonths*p.AgeBonusPerMonth)
	multiChainBonus := math.Min(p.MultiChainBonusCap, float64(len(agent.Chains))*p.MultiChainPerChain)
	skillBonus := math.Min(p.SkillBonusCap, float64(len(agent.Skills))*p.SkillPerSkill)

	activityTerm, balanceTerm, chainActivityTerm := OnChainBonus(signals, p)
	onChainBonus := activityTerm + balanceTerm + chainActivityTerm

	reliability := Clamp(
		base+ageBonus+multiChainBonus-5+
			noise(seedBase+seedOffsetReliability, p.SubScoreNoise)+
			activityTerm+metrics.Robustness/10+metrics.DeliveryRate/10,
		p.SubScoreMin, p.SubScoreMax,
	)
	accuracy := Clamp(
		base+skillBonus-3+
			noise(seedBase+seedOffsetAccuracy, p.SubScoreNoise)+
			metrics.TaskSuccessRate/10+metrics.VerifiableExec/10,
		p.SubScoreMin, p.SubScoreMax,
	)
	speed := Clamp(
		base-5+multiChainBonus+
			noise(seedBase+seedOffsetSpeed, p.SubScoreNoise)+
			(1-metrics.Latency)*10+metrics.Efficiency/10,
		p.SubScoreMin, p.SubScoreMax,
	)
	trust := Clamp(
		base+ageBonus+
			noise(seedBase+seedOffsetTrust, p.SubScoreNoise)+
			balanceTerm+metrics.Safety/10+metrics.Transparency/10+metrics.UserFeedback/10,
		p.SubScoreMin, p.SubScoreMax,
	)

	// The on-chain bonus already fed the sub-scores; counting it again
	// here widens the gap between verified and unverified agents.
	onChainWeight := p.OnChainWeightCatalog
	if agent.Source == types.SourceUserSubmitted {
		onChainWeight = p.OnChainWeightUnverified
	}
	overall := Clamp(
		float64(reliability)*p.WeightReliability+
			float64(accuracy)*p.WeightAccuracy+
			float64(speed)*p.WeightSpeed+
			float64(trust)*p.WeightTrust+
			onChainBonus*onChainWeight+
			noise(seedBase+seedOffsetOverall, p.OverallNoise),
		p.OverallMin, p.OverallMax,
	)

	history, trend := GenerateHistory(overall, seedBase, p)

	return Score{
		Overall:     overall,
		Reliability: reliability,
		Accuracy:    accuracy,
		Speed:       speed,
		Trust:       trust,
		Trend:       trend,
		History:     history,
	}
}
