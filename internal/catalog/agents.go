package catalog

import (
	"time"

	"github.com/skingem1/agent-reputation-dashboard/internal/types"
)

// knownAgents is the static seed of agents tracked by the dashboard.
// User-submitted agents are merged in from the database at resolve time.
var knownAgents = []types.Agent{
	{
		ID:            "aixbt",
		Name:          "AIXBT",
		ProtocolID:    "virtuals",
		WalletAddress: "0x4fC35b1cdcAd8Ff45bcb3E19d0Eb2A6b3b2c9e11",
		Chains:        []string{"base", "ethereum"},
		Skills:        []string{"market-analysis", "social", "alpha-signals"},
		CreatedAt:     time.Date(2024, 11, 8, 0, 0, 0, 0, time.UTC),
		Source:        types.SourceCatalog,
	},
	{
		ID:            "luna-virtuals",
		Name:          "Luna",
		ProtocolID:    "virtuals",
		WalletAddress: "0x9a1E3f27bD51837Ce57f1A6d0cf34e89D21b42a7",
		Chains:        []string{"base"},
		Skills:        []string{"entertainment", "social", "streaming"},
		CreatedAt:     time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC),
		Source:        types.SourceCatalog,
	},
	{
		ID:            "degenai",
		Name:          "DegenSpartanAI",
		ProtocolID:    "eliza",
		WalletAddress: "0x7bD30F2a8C9e41B6c03D5a67BdE19F02a4e8c355",
		Chains:        []string{"ethereum", "base", "solana"},
		Skills:        []string{"trading", "market-analysis", "social"},
		CreatedAt:     time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC),
		Source:        types.SourceCatalog,
	},
	{
		ID:            "olas-trader",
		Name:          "Olas Predict Trader",
		ProtocolID:    "autonolas",
		WalletAddress: "0x2E8c1fAe90B3Dd26743C37e1bC84f60fA47c5D19",
		Chains:        []string{"gnosis", "ethereum", "polygon"},
		Skills:        []string{"prediction-markets", "trading", "autonomous-execution"},
		CreatedAt:     time.Date(2023, 7, 20, 0, 0, 0, 0, time.UTC),
		Source:        types.SourceCatalog,
	},
	{
		ID:            "fetch-delivery",
		Name:          "Fetch Delivery Agent",
		ProtocolID:    "fetch-ai",
		WalletAddress: "0xC14D92e07Ba6FAe8325E1cD9131755aB5D4f8D63",
		Chains:        []string{"ethereum", "bsc"},
		Skills:        []string{"logistics", "negotiation"},
		CreatedAt:     time.Date(2023, 3, 2, 0, 0, 0, 0, time.UTC),
		Source:        types.SourceCatalog,
	},
	{
		ID:            "morpheus-coder",
		Name:          "Morpheus Code Assistant",
		ProtocolID:    "morpheus",
		WalletAddress: "0x61a0F5B3dDcEb28177E2b7C4F93a618cA055E12B",
		Chains:        []string{"arbitrum", "ethereum"},
		Skills:        []string{"code-generation", "smart-contracts", "auditing"},
		CreatedAt:     time.Date(2024, 2, 11, 0, 0, 0, 0, time.UTC),
		Source:        types.SourceCatalog,
	},
	{
		ID:            "phala-oracle",
		Name:          "Phala Oracle Agent",
		ProtocolID:    "phala",
		WalletAddress: "0x8F4e2D90C3bA57e613f09B8cD2aF1e6604D7cB28",
		Chains:        []string{"ethereum"},
		Skills:        []string{"oracles", "data-feeds", "tee-execution"},
		CreatedAt:     time.Date(2023, 11, 30, 0, 0, 0, 0, time.UTC),
		Source:        types.SourceCatalog,
	},
	{
		ID:            "griffain-concierge",
		Name:          "Griffain Concierge",
		ProtocolID:    "griffain",
		Chains:        []string{"solana"},
		Skills:        []string{"wallet-automation", "defi"},
		CreatedAt:     time.Date(2024, 12, 5, 0, 0, 0, 0, time.UTC),
		Source:        types.SourceCatalog,
	},
}

// KnownAgents returns a copy of the static agent seed.
func KnownAgents() []types.Agent {
	out := make([]types.Agent, len(knownAgents))
	copy(out, knownAgents)
	return out
}
