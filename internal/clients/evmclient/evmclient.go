package evmclient

import (
	"context"
	"fmt"
	"math/big"
	"sort"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog/log"

	"github.com/skingem1/agent-reputation-dashboard/internal/config"
)

// transferTopic is keccak256("Transfer(address,address,uint256)").
var transferTopic = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))

type EvmClient struct {
	cfg     *config.EVMConfig
	clients map[string]*ethclient.Client
}

// NewEvmClient dials every configured chain endpoint. A chain that
// fails to dial is logged and skipped; calls against it later fail per
// call, which the fetcher degrades to zero.
func NewEvmClient(ctx context.Context, cfg *config.EVMConfig) (*EvmClient, error) {
	clients := make(map[string]*ethclient.Client, len(cfg.Endpoints))
	for chain, url := range cfg.Endpoints {
		client, err := ethclient.DialContext(ctx, url)
		if err != nil {
			log.Ctx(ctx).Warn().Err(err).Str("chain", chain).Msg("failed to dial EVM endpoint, chain skipped")
			continue
		}
		clients[chain] = client
	}
	if len(clients) == 0 {
		return nil, fmt.Errorf("no EVM endpoint could be dialed")
	}
	return &EvmClient{cfg: cfg, clients: clients}, nil
}

func (c *EvmClient) chainClient(chain string) (*ethclient.Client, error) {
	client, ok := c.clients[chain]
	if !ok {
		return nil, fmt.Errorf("no client for chain %s", chain)
	}
	return client, nil
}

func (c *EvmClient) GetBalance(ctx context.Context, chain, address string) (sdkmath.Int, error) {
	client, err := c.chainClient(chain)
	if err != nil {
		return sdkmath.ZeroInt(), err
	}

	callCtx, cancel := context.WithTimeout(ctx, c.cfg.RPCTimeout)
	defer cancel()

	balance, err := client.BalanceAt(callCtx, common.HexToAddress(address), nil)
	if err != nil {
		return sdkmath.ZeroInt(), fmt.Errorf("failed to get balance on %s: %w", chain, err)
	}
	return sdkmath.NewIntFromBigInt(balance), nil
}

func (c *EvmClient) GetTransactionCount(ctx context.Context, chain, address string) (uint64, error) {
	client, err := c.chainClient(chain)
	if err != nil {
		return 0, err
	}

	callCtx, cancel := context.WithTimeout(ctx, c.cfg.RPCTimeout)
	defer cancel()

	count, err := client.NonceAt(callCtx, common.HexToAddress(address), nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get tx count on %s: %w", chain, err)
	}
	return count, nil
}

// GetRecentTransfers scans a recent block window on every requested
// chain for ERC-20 Transfer events touching the address. Per-chain
// failures shrink the result instead of failing the batch.
func (c *EvmClient) GetRecentTransfers(ctx context.Context, address string, chains []string) ([]Transfer, error) {
	addrTopic := common.HexToHash(common.HexToAddress(address).Hex())

	var transfers []Transfer
	for _, chain := range chains {
		chainTransfers, err := c.transfersOnChain(ctx, chain, addrTopic)
		if err != nil {
			log.Ctx(ctx).Debug().Err(err).Str("chain", chain).Msg("transfer scan failed, chain skipped")
			continue
		}
		transfers = append(transfers, chainTransfers...)
	}

	sort.Slice(transfers, func(i, j int) bool {
		if transfers[i].Timestamp.Equal(transfers[j].Timestamp) {
			return transfers[i].BlockNumber > transfers[j].BlockNumber
		}
		return transfers[i].Timestamp.After(transfers[j].Timestamp)
	})
	if len(transfers) > MaxRecentTransfers {
		transfers = transfers[:MaxRecentTransfers]
	}
	return transfers, nil
}

func (c *EvmClient) transfersOnChain(ctx context.Context, chain string, addrTopic common.Hash) ([]Transfer, error) {
	client, err := c.chainClient(chain)
	if err != nil {
		return nil, err
	}

	callCtx, cancel := context.WithTimeout(ctx, c.cfg.RPCTimeout)
	defer cancel()

	head, err := client.BlockNumber(callCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to get head block on %s: %w", chain, err)
	}
	fromBlock := uint64(0)
	if head > c.cfg.TransferLookbackBlocks {
		fromBlock = head - c.cfg.TransferLookbackBlocks
	}

	// incoming and outgoing transfers are separate topic positions
	queries := []ethereum.FilterQuery{
		{
			FromBlock: new(big.Int).SetUint64(fromBlock),
			Topics:    [][]common.Hash{{transferTopic}, {addrTopic}},
		},
		{
			FromBlock: new(big.Int).SetUint64(fromBlock),
			Topics:    [][]common.Hash{{transferTopic}, nil, {addrTopic}},
		},
	}

	var transfers []Transfer
	timestamps := make(map[uint64]int64)
	for _, query := range queries {
		logs, err := client.FilterLogs(callCtx, query)
		if err != nil {
			return nil, fmt.Errorf("failed to filter transfer logs on %s: %w", chain, err)
		}
		for _, lg := range logs {
			if len(lg.Topics) < 3 {
				continue
			}
			ts, err := c.blockTimestamp(callCtx, client, lg.BlockNumber, timestamps)
			if err != nil {
				return nil, err
			}
			transfers = append(transfers, Transfer{
				Chain:       chain,
				TxHash:      lg.TxHash.Hex(),
				Token:       lg.Address.Hex(),
				From:        common.HexToAddress(lg.Topics[1].Hex()).Hex(),
				To:          common.HexToAddress(lg.Topics[2].Hex()).Hex(),
				BlockNumber: lg.BlockNumber,
				Timestamp:   time.Unix(ts, 0).UTC(),
			})
		}
	}
	return transfers, nil
}

func (c *EvmClient) blockTimestamp(ctx context.Context, client *ethclient.Client, blockNumber uint64, cache map[uint64]int64) (int64, error) {
	if ts, ok := cache[blockNumber]; ok {
		return ts, nil
	}
	header, err := client.HeaderByNumber(ctx, new(big.Int).SetUint64(blockNumber))
	if err != nil {
		return 0, fmt.Errorf("failed to get header for block %d: %w", blockNumber, err)
	}
	ts := int64(header.Time)
	cache[blockNumber] = ts
	return ts, nil
}
