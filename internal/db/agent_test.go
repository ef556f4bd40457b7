//go:build integration

package db_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skingem1/agent-reputation-dashboard/internal/db"
	"github.com/skingem1/agent-reputation-dashboard/internal/db/model"
	"github.com/skingem1/agent-reputation-dashboard/testutil"
)

func TestSubmittedAgents(t *testing.T) {
	ctx := t.Context()
	t.Cleanup(func() {
		resetDatabase(t)
	})

	t.Run("not found", func(t *testing.T) {
		doc, err := testDB.GetSubmittedAgentByID(ctx, "no-such-agent")
		assert.True(t, db.IsNotFoundError(err))
		assert.Nil(t, doc)
	})

	t.Run("save and get", func(t *testing.T) {
		doc := testutil.RandomSubmittedAgent(t)
		err := testDB.SaveSubmittedAgent(ctx, doc)
		require.NoError(t, err)

		found, err := testDB.GetSubmittedAgentByID(ctx, doc.ID)
		require.NoError(t, err)
		assert.Equal(t, doc.ID, found.ID)
		assert.Equal(t, doc.Chains, found.Chains)
		assert.Equal(t, doc.Skills, found.Skills)
	})

	t.Run("malformed wallet address rejected", func(t *testing.T) {
		doc := testutil.RandomSubmittedAgent(t)
		doc.WalletAddress = "not-an-address"

		err := testDB.SaveSubmittedAgent(ctx, doc)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid EVM address")
	})

	t.Run("duplicate submission rejected", func(t *testing.T) {
		doc := testutil.RandomSubmittedAgent(t)
		require.NoError(t, testDB.SaveSubmittedAgent(ctx, doc))

		err := testDB.SaveSubmittedAgent(ctx, doc)
		assert.True(t, db.IsDuplicateKeyError(err))
	})

	t.Run("list sorted by creation time", func(t *testing.T) {
		resetDatabase(t)

		older := testutil.RandomSubmittedAgent(t)
		older.CreatedAt = time.Now().UTC().Add(-48 * time.Hour).Truncate(time.Millisecond)
		newer := testutil.RandomSubmittedAgent(t)
		newer.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)

		require.NoError(t, testDB.SaveSubmittedAgent(ctx, newer))
		require.NoError(t, testDB.SaveSubmittedAgent(ctx, older))

		docs, err := testDB.ListSubmittedAgents(ctx)
		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, older.ID, docs[0].ID)
		assert.Equal(t, newer.ID, docs[1].ID)
	})

	t.Run("delete", func(t *testing.T) {
		doc := testutil.RandomSubmittedAgent(t)
		require.NoError(t, testDB.SaveSubmittedAgent(ctx, doc))
		require.NoError(t, testDB.DeleteSubmittedAgent(ctx, doc.ID))

		err := testDB.DeleteSubmittedAgent(ctx, doc.ID)
		assert.True(t, db.IsNotFoundError(err))
	})
}

func TestConvertSubmittedAgent(t *testing.T) {
	doc := &model.SubmittedAgentDocument{
		ID:         "converted",
		Name:       "Converted",
		ProtocolID: "arc",
		Chains:     []string{"base"},
		Skills:     []string{"social"},
		CreatedAt:  time.Now().UTC(),
	}
	agent := doc.ToAgent()
	assert.Equal(t, "converted", agent.ID)
	assert.True(t, agent.Walletless())

	back := model.FromAgent(&agent)
	assert.Equal(t, doc.ID, back.ID)
}
