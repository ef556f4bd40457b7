package reputation

import (
	"time"

	"github.com/skingem1/agent-reputation-dashboard/internal/types"
)

const (
	recentTransferWindow = 30 * 24 * time.Hour
	reviewAgeWindow      = 30 * 24 * time.Hour
	matureBaseThreshold  = 27
	inactiveAgeMonths    = 12
)

// DeriveStatus classifies an agent as active, inactive or under-review.
// Not part of the numeric score, but a pure function of the same
// inputs: transfer recency first, then protocol maturity, then age.
func DeriveStatus(agent *types.Agent, signals OnChainSignals, now time.Time, p Params) types.AgentStatus {
	if !signals.LastTransferAt.IsZero() && now.Sub(signals.LastTransferAt) <= recentTransferWindow {
		return types.StatusActive
	}
	if agent.Source == types.SourceUserSubmitted && now.Sub(agent.CreatedAt) < reviewAgeWindow {
		return types.StatusUnderReview
	}
	if BaseScore(agent, p) >= matureBaseThreshold {
		return types.StatusActive
	}
	if agent.AgeMonths(now) >= inactiveAgeMonths && signals.TotalTxCount == 0 {
		return types.StatusInactive
	}
	return types.StatusUnderReview
}
