package model

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/skingem1/agent-reputation-dashboard/internal/config"
)

// Setup connects to the database and creates the indexes the queries
// rely on. Idempotent; safe to run on every start.
func Setup(ctx context.Context, cfg *config.DbConfig) error {
	credential := options.Credential{
		Username: cfg.Username,
		Password: cfg.Password,
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Address).SetAuth(credential))
	if err != nil {
		return fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	defer func() {
		_ = client.Disconnect(ctx)
	}()

	database := client.Database(cfg.DbName)

	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "wallet_address", Value: 1}},
		Options: options.Index().SetName("wallet_address_idx").SetSparse(true),
	}
	if _, err := database.Collection(SubmittedAgentCollection).Indexes().CreateOne(ctx, index); err != nil {
		return fmt.Errorf("failed to create submitted agent indexes: %w", err)
	}

	return nil
}
