package catalog

// Protocol is a static catalog entry describing an agent framework or
// launchpad. BaseScore is the protocol maturity floor used by the
// reputation composer; values span a narrow band so that on-chain and
// structural signals, not protocol affiliation, dominate the final score.
type Protocol struct {
	ID        string
	Name      string
	Chains    []string
	BaseScore int
}

var protocols = map[string]Protocol{
	"virtuals": {
		ID:        "virtuals",
		Name:      "Virtuals Protocol",
		Chains:    []string{"base", "ethereum"},
		BaseScore: 31,
	},
	"eliza": {
		ID:        "eliza",
		Name:      "ElizaOS",
		Chains:    []string{"ethereum", "base", "solana"},
		BaseScore: 29,
	},
	"autonolas": {
		ID:        "autonolas",
		Name:      "Autonolas (Olas)",
		Chains:    []string{"ethereum", "gnosis", "polygon"},
		BaseScore: 28,
	},
	"fetch-ai": {
		ID:        "fetch-ai",
		Name:      "Fetch.ai",
		Chains:    []string{"ethereum", "bsc"},
		BaseScore: 27,
	},
	"morpheus": {
		ID:        "morpheus",
		Name:      "Morpheus",
		Chains:    []string{"ethereum", "arbitrum"},
		BaseScore: 25,
	},
	"phala": {
		ID:        "phala",
		Name:      "Phala Network",
		Chains:    []string{"ethereum"},
		BaseScore: 24,
	},
	"griffain": {
		ID:        "griffain",
		Name:      "Griffain",
		Chains:    []string{"solana"},
		BaseScore: 22,
	},
	"arc": {
		ID:        "arc",
		Name:      "Arc Agents",
		Chains:    []string{"solana", "base"},
		BaseScore: 20,
	},
}

// ProtocolByID looks up a protocol catalog entry.
func ProtocolByID(id string) (Protocol, bool) {
	p, ok := protocols[id]
	return p, ok
}

// Protocols returns all catalog entries.
func Protocols() []Protocol {
	out := make([]Protocol, 0, len(protocols))
	for _, p := range protocols {
		out = append(out, p)
	}
	return out
}
