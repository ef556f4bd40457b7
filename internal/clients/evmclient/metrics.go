package evmclient

import (
	"context"
	"time"

	sdkmath "cosmossdk.io/math"

	"github.com/skingem1/agent-reputation-dashboard/internal/observability/metrics"
)

type evmClientWithMetrics struct {
	evm EvmInterface
}

func NewEvmClientWithMetrics(evm EvmInterface) *evmClientWithMetrics {
	return &evmClientWithMetrics{evm: evm}
}

func (e *evmClientWithMetrics) GetBalance(ctx context.Context, chain, address string) (sdkmath.Int, error) {
	return runEvmClientMethodWithMetrics("GetBalance", chain, func() (sdkmath.Int, error) {
		return e.evm.GetBalance(ctx, chain, address)
	})
}

func (e *evmClientWithMetrics) GetTransactionCount(ctx context.Context, chain, address string) (uint64, error) {
	return runEvmClientMethodWithMetrics("GetTransactionCount", chain, func() (uint64, error) {
		return e.evm.GetTransactionCount(ctx, chain, address)
	})
}

func (e *evmClientWithMetrics) GetRecentTransfers(ctx context.Context, address string, chains []string) ([]Transfer, error) {
	return runEvmClientMethodWithMetrics("GetRecentTransfers", "all", func() ([]Transfer, error) {
		return e.evm.GetRecentTransfers(ctx, address, chains)
	})
}

func runEvmClientMethodWithMetrics[T any](method, chain string, f func() (T, error)) (T, error) {
	startTime := time.Now()
	v, err := f()
	duration := time.Since(startTime)

	metrics.RecordEvmClientLatency(duration, method, chain, err != nil)
	return v, err
}
