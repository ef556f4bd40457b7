package cli

import (
	"fmt"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/skingem1/agent-reputation-dashboard/internal/clients/evmclient"
	"github.com/skingem1/agent-reputation-dashboard/internal/config"
	"github.com/skingem1/agent-reputation-dashboard/internal/db"
	dbmodel "github.com/skingem1/agent-reputation-dashboard/internal/db/model"
	"github.com/skingem1/agent-reputation-dashboard/internal/observability/metrics"
	"github.com/skingem1/agent-reputation-dashboard/internal/observability/tracing"
	"github.com/skingem1/agent-reputation-dashboard/internal/server"
	"github.com/skingem1/agent-reputation-dashboard/internal/services"
)

func StartServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-server",
		Short: "Starts the agent reputation dashboard server",
		Args:  cobra.ExactArgs(0),
		RunE:  startServer,
	}

	return cmd
}

func startServer(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	ctx = tracing.InjectTraceID(ctx)
	log := log.Ctx(ctx)

	cfgPath := GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg(fmt.Sprintf("error while loading config file: %s", cfgPath))
	}

	err = dbmodel.Setup(ctx, &cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up db model")
	}

	var dbClient db.DbInterface
	dbClient, err = db.New(ctx, cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating db client")
	}

	// mongo may still be coming up when we start; retry the first ping
	err = retry.Do(
		func() error { return dbClient.Ping(ctx) },
		retry.Attempts(5),
		retry.Context(ctx),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error while pinging db")
	}
	dbClient = db.NewDbWithMetrics(dbClient)

	var evmClient evmclient.EvmInterface
	evmClient, err = evmclient.NewEvmClient(ctx, &cfg.EVM)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating evm client")
	}
	evmClient = evmclient.NewEvmClientWithMetrics(evmClient)

	metricsPort := cfg.Metrics.GetMetricsPort()
	metrics.Init(metricsPort)

	service := services.NewService(cfg, dbClient, evmClient)
	service.StartRefreshPoller(ctx)

	apiServer := server.New(&cfg.Server, service)
	return apiServer.Start(ctx)
}
