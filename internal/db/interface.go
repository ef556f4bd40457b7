package db

import (
	"context"

	"github.com/skingem1/agent-reputation-dashboard/internal/db/model"
)

type DbInterface interface {
	Ping(ctx context.Context) error
	SaveSubmittedAgent(ctx context.Context, doc *model.SubmittedAgentDocument) error
	ListSubmittedAgents(ctx context.Context) ([]*model.SubmittedAgentDocument, error)
	GetSubmittedAgentByID(ctx context.Context, id string) (*model.SubmittedAgentDocument, error)
	DeleteSubmittedAgent(ctx context.Context, id string) error
}
