package services

import (
	"context"
	"math/big"

	sdkmath "cosmossdk.io/math"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"

	"github.com/skingem1/agent-reputation-dashboard/internal/catalog"
	"github.com/skingem1/agent-reputation-dashboard/internal/observability/metrics"
	"github.com/skingem1/agent-reputation-dashboard/internal/reputation"
	"github.com/skingem1/agent-reputation-dashboard/internal/types"
)

var weiPerEther = new(big.Float).SetFloat64(1e18)

type chainSignals struct {
	txCount uint64
	balance sdkmath.Int
}

// fetchOnChainSignals queries every supported EVM chain the agent
// claims, concurrently. Each chain is failure-isolated: an RPC error or
// timeout zeroes that chain's contribution instead of failing the
// bundle. Walletless agents short-circuit to the zero bundle.
func (s *Service) fetchOnChainSignals(ctx context.Context, agent *types.Agent) reputation.OnChainSignals {
	if agent.Walletless() {
		return reputation.OnChainSignals{}
	}

	chains := catalog.FilterEVMChains(agent.Chains)
	if len(chains) == 0 {
		return reputation.OnChainSignals{}
	}

	results := make([]chainSignals, len(chains))
	p := pool.New()
	for i, chain := range chains {
		p.Go(func() {
			results[i] = s.fetchChainSignals(ctx, chain, agent.WalletAddress)
		})
	}
	p.Wait()

	signals := reputation.OnChainSignals{
		TxCountByChain: make(map[string]uint64, len(chains)),
	}
	totalBalance := sdkmath.ZeroInt()
	for i, chain := range chains {
		signals.TotalTxCount += results[i].txCount
		signals.TxCountByChain[chain] = results[i].txCount
		totalBalance = totalBalance.Add(results[i].balance)
	}
	signals.Balance = weiToEther(totalBalance)

	// transfers are one batched call; any failure degrades to none
	transfers, err := s.evm.GetRecentTransfers(ctx, agent.WalletAddress, chains)
	if err != nil {
		log.Ctx(ctx).Debug().Err(err).Str("agent_id", agent.ID).Msg("Transfer fetch failed, treating as none")
		transfers = nil
	}
	signals.TransferCount = len(transfers)
	if len(transfers) > 0 {
		signals.LastTransferAt = transfers[0].Timestamp
	}

	return signals
}

// fetchChainSignals gets tx count and balance for one chain. Failures
// zero the affected field and bump the chain fetch failure counter.
func (s *Service) fetchChainSignals(ctx context.Context, chain, address string) chainSignals {
	out := chainSignals{balance: sdkmath.ZeroInt()}

	txCount, err := s.evm.GetTransactionCount(ctx, chain, address)
	if err != nil {
		log.Ctx(ctx).Debug().Err(err).Str("chain", chain).Msg("Tx count fetch failed, treating as zero")
		metrics.RecordChainFetchFailure(chain)
	} else {
		out.txCount = txCount
	}

	balance, err := s.evm.GetBalance(ctx, chain, address)
	if err != nil {
		log.Ctx(ctx).Debug().Err(err).Str("chain", chain).Msg("Balance fetch failed, treating as zero")
		metrics.RecordChainFetchFailure(chain)
	} else {
		out.balance = balance
	}

	return out
}

// weiToEther converts an aggregate base-unit balance into the display
// unit used by the scoring formulas.
func weiToEther(wei sdkmath.Int) float64 {
	if !wei.IsPositive() {
		return 0
	}
	ether, _ := new(big.Float).Quo(new(big.Float).SetInt(wei.BigInt()), weiPerEther).Float64()
	return ether
}
