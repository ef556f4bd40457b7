package db

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/skingem1/agent-reputation-dashboard/internal/db/model"
	"github.com/skingem1/agent-reputation-dashboard/pkg"
)

// SaveSubmittedAgent persists a user submission. Submitting the same id
// twice yields a DuplicateKeyError.
func (db *Database) SaveSubmittedAgent(ctx context.Context, doc *model.SubmittedAgentDocument) error {
	if err := pkg.ValidateWalletAddress(doc.WalletAddress); err != nil {
		return err
	}
	_, err := db.collection(model.SubmittedAgentCollection).InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return &DuplicateKeyError{
				Key:     doc.ID,
				Message: "submitted agent already exists",
			}
		}
		return fmt.Errorf("failed to save submitted agent: %w", err)
	}
	return nil
}

// ListSubmittedAgents returns every persisted submission, oldest first.
func (db *Database) ListSubmittedAgents(ctx context.Context) ([]*model.SubmittedAgentDocument, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := db.collection(model.SubmittedAgentCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list submitted agents: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []*model.SubmittedAgentDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode submitted agents: %w", err)
	}
	return docs, nil
}

// GetSubmittedAgentByID fetches one submission; unknown ids surface a
// typed NotFoundError rather than a raw driver error.
func (db *Database) GetSubmittedAgentByID(ctx context.Context, id string) (*model.SubmittedAgentDocument, error) {
	res := db.collection(model.SubmittedAgentCollection).FindOne(ctx, bson.M{"_id": id})

	var doc model.SubmittedAgentDocument
	if err := res.Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     id,
				Message: "submitted agent not found",
			}
		}
		return nil, err
	}
	return &doc, nil
}

// DeleteSubmittedAgent removes a submission, reporting whether it existed.
func (db *Database) DeleteSubmittedAgent(ctx context.Context, id string) error {
	res, err := db.collection(model.SubmittedAgentCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete submitted agent: %w", err)
	}
	if res.DeletedCount == 0 {
		return &NotFoundError{
			Key:     id,
			Message: "submitted agent not found",
		}
	}
	return nil
}
