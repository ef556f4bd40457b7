package config

import (
	"fmt"
	"time"
)

const (
	defaultRPCTimeout     = 8 * time.Second
	defaultTransferWindow = uint64(50_000)
)

// EVMConfig defines the RPC endpoints for the supported EVM chains,
// keyed by chain id (ethereum, base, ...). Per-call failures on one
// chain never affect the others, so a partially configured or partially
// degraded endpoint set still produces scores.
type EVMConfig struct {
	// Endpoints maps chain id to an RPC URL.
	Endpoints map[string]string `mapstructure:"endpoints"`
	// RPCTimeout bounds every individual RPC call. Calls past the
	// timeout count as failed; they are never retried.
	RPCTimeout time.Duration `mapstructure:"rpc-timeout"`
	// TransferLookbackBlocks is the block window scanned for recent
	// ERC-20 transfers.
	TransferLookbackBlocks uint64 `mapstructure:"transfer-lookback-blocks"`
}

func (cfg *EVMConfig) Validate() error {
	if len(cfg.Endpoints) == 0 {
		return fmt.Errorf("at least one EVM endpoint is required")
	}
	for chain, url := range cfg.Endpoints {
		if url == "" {
			return fmt.Errorf("empty RPC url for chain %s", chain)
		}
	}
	if cfg.RPCTimeout == 0 {
		cfg.RPCTimeout = defaultRPCTimeout
	}
	if cfg.TransferLookbackBlocks == 0 {
		cfg.TransferLookbackBlocks = defaultTransferWindow
	}
	return nil
}
