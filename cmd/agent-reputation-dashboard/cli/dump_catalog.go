package cli

import (
	"context"
	"encoding/json"
	"os"

	sdkmath "cosmossdk.io/math"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/skingem1/agent-reputation-dashboard/internal/clients/evmclient"
	"github.com/skingem1/agent-reputation-dashboard/internal/config"
	"github.com/skingem1/agent-reputation-dashboard/internal/db/model"
	"github.com/skingem1/agent-reputation-dashboard/internal/observability/metrics"
	"github.com/skingem1/agent-reputation-dashboard/internal/services"
)

func DumpCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump-catalog",
		Short: "Scores the catalog seed offline and writes it as JSON",
		Args:  cobra.ExactArgs(0),
		RunE:  dumpCatalog,
	}

	cmd.Flags().String("output", "catalog.json", "Path of the output file")

	return cmd
}

// dumpCatalog builds the catalog-only registry with zeroed on-chain
// signals, so the output is the deterministic metadata-only baseline.
// Useful for eyeballing score changes after tuning.
func dumpCatalog(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	metrics.Init(metricsOfflinePort)

	cfg := &config.Config{}
	if err := cfg.Cache.Validate(); err != nil {
		return err
	}

	service := services.NewService(cfg, offlineStore{}, offlineEvm{})
	agents, err := service.GetAllAgents(ctx)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(agents, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return err
	}

	log.Ctx(ctx).Info().Int("agent_count", len(agents)).Str("output", output).Msg("Dumped scored catalog")
	return nil
}

const metricsOfflinePort = 2113

// offlineStore serves the offline path: no submissions, no mongo.
type offlineStore struct{}

func (offlineStore) Ping(ctx context.Context) error { return nil }

func (offlineStore) SaveSubmittedAgent(ctx context.Context, doc *model.SubmittedAgentDocument) error {
	return nil
}

func (offlineStore) ListSubmittedAgents(ctx context.Context) ([]*model.SubmittedAgentDocument, error) {
	return nil, nil
}

func (offlineStore) GetSubmittedAgentByID(ctx context.Context, id string) (*model.SubmittedAgentDocument, error) {
	return nil, nil
}

func (offlineStore) DeleteSubmittedAgent(ctx context.Context, id string) error { return nil }

// offlineEvm zeroes every signal, the walletless-equivalent baseline.
type offlineEvm struct{}

func (offlineEvm) GetBalance(ctx context.Context, chain, address string) (sdkmath.Int, error) {
	return sdkmath.ZeroInt(), nil
}

func (offlineEvm) GetTransactionCount(ctx context.Context, chain, address string) (uint64, error) {
	return 0, nil
}

func (offlineEvm) GetRecentTransfers(ctx context.Context, address string, chains []string) ([]evmclient.Transfer, error) {
	return nil, nil
}
