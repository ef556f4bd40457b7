package services

import (
	"context"

	"github.com/skingem1/agent-reputation-dashboard/internal/observability/metrics"
	"github.com/skingem1/agent-reputation-dashboard/internal/utils/poller"
)

// StartRefreshPoller rebuilds the score snapshot on a fixed interval
// so API reads rarely pay builds themselves. The poller interval is
// independent of the cache TTL; an interval shorter than the TTL keeps
// the cache warm continuously.
func (s *Service) StartRefreshPoller(ctx context.Context) {
	refreshPoller := poller.NewPoller(
		s.cfg.Poller.RefreshInterval,
		metrics.RecordPollerDuration("score_refresh", s.refreshSnapshot),
	)
	go refreshPoller.Start(ctx)
}

// refreshSnapshot rebuilds unconditionally and swaps the cache on
// success. A failed rebuild leaves the previous snapshot in place for
// serve-stale reads.
func (s *Service) refreshSnapshot(ctx context.Context) error {
	s.buildMu.Lock()
	defer s.buildMu.Unlock()

	snap, err := s.buildSnapshot(ctx)
	if err != nil {
		return err
	}
	s.cache.Set(snap)
	return nil
}
