package evmclient

import (
	"context"

	sdkmath "cosmossdk.io/math"
)

// EvmInterface is the transport boundary of the on-chain signal
// fetcher. Implementations must distinguish a failed call (error) from
// a zero result; the caller decides that failures degrade to zero.
type EvmInterface interface {
	// GetBalance returns the native balance in base units (wei).
	GetBalance(ctx context.Context, chain, address string) (sdkmath.Int, error)
	// GetTransactionCount returns the outgoing transaction count.
	GetTransactionCount(ctx context.Context, chain, address string) (uint64, error)
	// GetRecentTransfers returns up to MaxRecentTransfers transfers
	// touching the address across the given chains, newest first.
	GetRecentTransfers(ctx context.Context, address string, chains []string) ([]Transfer, error)
}

// MaxRecentTransfers caps the batched transfer query.
const MaxRecentTransfers = 15
