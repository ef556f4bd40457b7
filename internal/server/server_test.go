package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skingem1/agent-reputation-dashboard/internal/catalog"
	"github.com/skingem1/agent-reputation-dashboard/internal/clients/evmclient"
	"github.com/skingem1/agent-reputation-dashboard/internal/config"
	"github.com/skingem1/agent-reputation-dashboard/internal/db"
	"github.com/skingem1/agent-reputation-dashboard/internal/db/model"
	"github.com/skingem1/agent-reputation-dashboard/internal/observability/metrics"
	"github.com/skingem1/agent-reputation-dashboard/internal/services"
)

type stubDb struct {
	db.DbInterface
}

func (s *stubDb) ListSubmittedAgents(ctx context.Context) ([]*model.SubmittedAgentDocument, error) {
	return nil, nil
}

type stubEvm struct{}

func (s *stubEvm) GetBalance(ctx context.Context, chain, address string) (sdkmath.Int, error) {
	return sdkmath.NewInt(1_000_000_000_000_000_000), nil
}

func (s *stubEvm) GetTransactionCount(ctx context.Context, chain, address string) (uint64, error) {
	return 50, nil
}

func (s *stubEvm) GetRecentTransfers(ctx context.Context, address string, chains []string) ([]evmclient.Transfer, error) {
	return nil, nil
}

func testHandler(t *testing.T) http.Handler {
	t.Helper()
	metrics.Init(9999)

	cfg := &config.Config{
		Cache: config.CacheConfig{
			TTL:            time.Minute,
			BuildBatchSize: 5,
		},
	}
	service := services.NewService(cfg, &stubDb{}, &stubEvm{})
	srv := New(&cfg.Server, service)
	return srv.routes()
}

func doRequest(t *testing.T, handler http.Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHealthcheck(t *testing.T) {
	rec := doRequest(t, testHandler(t), http.MethodGet, "/healthcheck")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetAgents(t *testing.T) {
	rec := doRequest(t, testHandler(t), http.MethodGet, "/agents")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []services.ScoredAgent `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, len(catalog.KnownAgents()))

	for i := 1; i < len(body.Data); i++ {
		assert.GreaterOrEqual(t, body.Data[i-1].Score.Overall, body.Data[i].Score.Overall)
	}
}

func TestGetAgentByID(t *testing.T) {
	handler := testHandler(t)
	known := catalog.KnownAgents()[0]

	t.Run("known agent", func(t *testing.T) {
		rec := doRequest(t, handler, http.MethodGet, "/agents/"+known.ID)
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data services.ScoredAgent `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, known.ID, body.Data.ID)
	})

	t.Run("unknown agent is 404", func(t *testing.T) {
		rec := doRequest(t, handler, http.MethodGet, "/agents/no-such-agent")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestGetTopAgents(t *testing.T) {
	handler := testHandler(t)

	t.Run("top n", func(t *testing.T) {
		rec := doRequest(t, handler, http.MethodGet, "/agents/top/3")
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data []services.ScoredAgent `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Len(t, body.Data, 3)
	})

	t.Run("non-numeric n is 400", func(t *testing.T) {
		rec := doRequest(t, handler, http.MethodGet, "/agents/top/abc")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("zero n is 400", func(t *testing.T) {
		rec := doRequest(t, handler, http.MethodGet, "/agents/top/0")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetStats(t *testing.T) {
	rec := doRequest(t, testHandler(t), http.MethodGet, "/stats")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data services.EcosystemStats `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, len(catalog.KnownAgents()), body.Data.TotalAgents)
	assert.Len(t, body.Data.ScoreHistogram, 5)
	assert.Len(t, body.Data.DailyTxLast30, 30)
}

func TestInvalidateCache(t *testing.T) {
	rec := doRequest(t, testHandler(t), http.MethodPost, "/internal/invalidate-cache")
	assert.Equal(t, http.StatusOK, rec.Code)
}
