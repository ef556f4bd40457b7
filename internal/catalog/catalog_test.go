package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skingem1/agent-reputation-dashboard/internal/types"
)

func TestProtocols(t *testing.T) {
	t.Run("base scores stay in band", func(t *testing.T) {
		for _, p := range Protocols() {
			assert.GreaterOrEqual(t, p.BaseScore, 19, "protocol %s", p.ID)
			assert.LessOrEqual(t, p.BaseScore, 31, "protocol %s", p.ID)
		}
	})

	t.Run("lookup", func(t *testing.T) {
		p, ok := ProtocolByID("virtuals")
		require.True(t, ok)
		assert.Equal(t, 31, p.BaseScore)

		_, ok = ProtocolByID("no-such-protocol")
		assert.False(t, ok)
	})
}

func TestEVMChains(t *testing.T) {
	assert.True(t, IsEVMChain("ethereum"))
	assert.True(t, IsEVMChain("base"))
	assert.False(t, IsEVMChain("solana"))

	filtered := FilterEVMChains([]string{"solana", "base", "ethereum", "near"})
	assert.Equal(t, []string{"base", "ethereum"}, filtered)
}

func TestKnownAgents(t *testing.T) {
	agents := KnownAgents()
	require.NotEmpty(t, agents)

	seen := make(map[string]struct{}, len(agents))
	walletless := false
	for _, a := range agents {
		_, dup := seen[a.ID]
		assert.False(t, dup, "duplicate agent id %s", a.ID)
		seen[a.ID] = struct{}{}

		assert.NotEmpty(t, a.Chains, "agent %s", a.ID)
		assert.NotEmpty(t, a.Skills, "agent %s", a.ID)
		assert.Equal(t, types.SourceCatalog, a.Source, "agent %s", a.ID)
		if a.Walletless() {
			walletless = true
		}
	}
	// the seed intentionally carries a walletless agent to keep that
	// scoring path exercised end to end
	assert.True(t, walletless)
}

func TestKnownAgentsReturnsCopy(t *testing.T) {
	first := KnownAgents()
	first[0].ID = "mutated"
	assert.NotEqual(t, "mutated", KnownAgents()[0].ID)
}
