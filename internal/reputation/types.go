package reputation

import (
	"time"

	"github.com/skingem1/agent-reputation-dashboard/internal/types"
)

// OnChainSignals is the per-agent signal bundle observed on chain.
// A walletless agent, or one whose fetches all failed, carries the zero
// value: every downstream term then contributes nothing instead of
// branching into an error path.
type OnChainSignals struct {
	// TotalTxCount is the transaction count summed across chains.
	TotalTxCount uint64
	// Balance is the aggregate native balance in display units (ETH-equivalent).
	Balance float64
	// TxCountByChain holds per-chain transaction counts; chains that
	// failed to answer are absent.
	TxCountByChain map[string]uint64
	// TransferCount is the number of recent transfers observed (≤15).
	TransferCount int
	// LastTransferAt is the timestamp of the newest observed transfer,
	// zero when none were seen.
	LastTransferAt time.Time
}

// ActiveChains counts chains with nonzero observed transactions.
func (s *OnChainSignals) ActiveChains() int {
	n := 0
	for _, c := range s.TxCountByChain {
		if c > 0 {
			n++
		}
	}
	return n
}

// PerformanceMetrics are the nine synthetic behavioral indicators.
// All are 0–100 percentages except Latency, which is a multiplier in
// [0.05, 0.95] where lower is better.
type PerformanceMetrics struct {
	TaskSuccessRate float64 `json:"task_success_rate"`
	Robustness      float64 `json:"robustness"`
	DeliveryRate    float64 `json:"delivery_rate"`
	Latency         float64 `json:"latency"`
	Efficiency      float64 `json:"efficiency"`
	Safety          float64 `json:"safety"`
	Transparency    float64 `json:"transparency"`
	UserFeedback    float64 `json:"user_feedback"`
	VerifiableExec  float64 `json:"verifiable_exec"`
}

// Score is the composed reputation output. A new Score replaces the old
// one on every rebuild; it is never mutated in place.
type Score struct {
	Overall     int         `json:"overall"`
	Reliability int         `json:"reliability"`
	Accuracy    int         `json:"accuracy"`
	Speed       int         `json:"speed"`
	Trust       int         `json:"trust"`
	Trend       types.Trend `json:"trend"`
	// History holds the synthetic last-30-days overall series, oldest first.
	History []int `json:"history_last_30_days"`
}
