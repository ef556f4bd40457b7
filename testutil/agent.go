package testutil

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/require"

	"github.com/skingem1/agent-reputation-dashboard/internal/db/model"
	"github.com/skingem1/agent-reputation-dashboard/internal/types"
)

// RandomAlphaNum generates random alphanumeric string
// in case length <= 0 it returns empty string
func RandomAlphaNum(length int) (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	if length <= 0 {
		return "", fmt.Errorf("length must be greater than 0")
	}

	randomString := make([]byte, length)
	for i := range randomString {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		randomString[i] = charset[num.Int64()]
	}

	return string(randomString), nil
}

// RandomSubmittedAgent builds a plausible submission document with a
// unique id.
func RandomSubmittedAgent(t *testing.T) *model.SubmittedAgentDocument {
	t.Helper()

	suffix, err := RandomAlphaNum(8)
	require.NoError(t, err)

	return &model.SubmittedAgentDocument{
		ID:            "agent-" + suffix,
		Name:          gofakeit.AppName(),
		ProtocolID:    gofakeit.RandomString([]string{"virtuals", "eliza", "arc", "unlisted"}),
		WalletAddress: gofakeit.HexUint(160),
		Chains:        []string{gofakeit.RandomString([]string{"ethereum", "base", "arbitrum"})},
		Skills:        []string{gofakeit.RandomString([]string{"trading", "social", "defi"})},
		CreatedAt:     time.Now().UTC().Truncate(time.Millisecond),
	}
}

// RandomAgent builds a registry agent for scoring tests.
func RandomAgent(t *testing.T, source types.AgentSource) *types.Agent {
	t.Helper()

	doc := RandomSubmittedAgent(t)
	agent := doc.ToAgent()
	agent.Source = source
	return &agent
}
