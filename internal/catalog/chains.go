package catalog

// evmChains is the set of chain identifiers the EVM client can query.
// Agents may claim additional chains (e.g. solana); those still count
// toward multi-chain structural bonuses but are excluded from balance
// and transaction-count queries.
var evmChains = map[string]struct{}{
	"ethereum": {},
	"base":     {},
	"arbitrum": {},
	"optimism": {},
	"polygon":  {},
	"gnosis":   {},
	"bsc":      {},
}

// IsEVMChain reports whether the chain id belongs to the supported EVM set.
func IsEVMChain(chain string) bool {
	_, ok := evmChains[chain]
	return ok
}

// FilterEVMChains returns the subset of chains that can be queried over RPC.
func FilterEVMChains(chains []string) []string {
	out := make([]string, 0, len(chains))
	for _, c := range chains {
		if IsEVMChain(c) {
			out = append(out, c)
		}
	}
	return out
}
