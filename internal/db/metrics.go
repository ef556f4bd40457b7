package db

import (
	"context"
	"time"

	"github.com/skingem1/agent-reputation-dashboard/internal/db/model"
	"github.com/skingem1/agent-reputation-dashboard/internal/observability/metrics"
)

type DbWithMetrics struct {
	db DbInterface
}

func NewDbWithMetrics(db DbInterface) *DbWithMetrics {
	return &DbWithMetrics{db: db}
}

func (d *DbWithMetrics) Ping(ctx context.Context) error {
	return d.db.Ping(ctx)
}

func (d *DbWithMetrics) SaveSubmittedAgent(ctx context.Context, doc *model.SubmittedAgentDocument) error {
	return d.run("SaveSubmittedAgent", func() error {
		return d.db.SaveSubmittedAgent(ctx, doc)
	})
}

func (d *DbWithMetrics) ListSubmittedAgents(ctx context.Context) (result []*model.SubmittedAgentDocument, err error) {
	//nolint:errcheck
	d.run("ListSubmittedAgents", func() error {
		result, err = d.db.ListSubmittedAgents(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) GetSubmittedAgentByID(ctx context.Context, id string) (result *model.SubmittedAgentDocument, err error) {
	//nolint:errcheck
	d.run("GetSubmittedAgentByID", func() error {
		result, err = d.db.GetSubmittedAgentByID(ctx, id)
		return err
	})
	return
}

func (d *DbWithMetrics) DeleteSubmittedAgent(ctx context.Context, id string) error {
	return d.run("DeleteSubmittedAgent", func() error {
		return d.db.DeleteSubmittedAgent(ctx, id)
	})
}

func (d *DbWithMetrics) run(method string, f func() error) error {
	start := time.Now()
	err := f()
	metrics.RecordDbLatency(time.Since(start), method, err != nil)
	return err
}
