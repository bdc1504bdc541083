package catalog

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Refresher drives background pagination: on a fixed interval it loads the
// next page of every stream that still has one. A tick is skipped whenever
// a fetch is already in flight, keeping concurrent request growth bounded.
type Refresher struct {
	orchestrator *Orchestrator
	interval     time.Duration
	logger       zerolog.Logger
}

// NewRefresher creates a refresher driving the given orchestrator.
func NewRefresher(orchestrator *Orchestrator, interval time.Duration, logger zerolog.Logger) *Refresher {
	return &Refresher{
		orchestrator: orchestrator,
		interval:     interval,
		logger:       logger,
	}
}

// Start runs the refresh loop until ctx is cancelled.
func (r *Refresher) Start(ctx context.Context) error {
	r.logger.Info().Dur("interval", r.interval).Msg("Refresher started")

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info().Msg("Refresher stopped")
			return ctx.Err()
		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

func (r *Refresher) tick(ctx context.Context) {
	if r.orchestrator.Store().Loading() {
		r.logger.Debug().Msg("Fetch in flight, skipping refresh tick")
		return
	}
	if !r.orchestrator.AnyHasMore() {
		r.logger.Debug().Msg("All streams exhausted, skipping refresh tick")
		return
	}

	if err := r.orchestrator.LoadMoreAll(ctx); err != nil {
		r.logger.Warn().Err(err).Msg("Refresh tick failed")
	}
}
