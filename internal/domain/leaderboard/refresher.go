package leaderboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/habitpet/habitpet/internal/config"
	"github.com/habitpet/habitpet/internal/logger"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Refresher keeps a fixed set of snapshots warm in the background so
// readers rarely pay for a recompute.
type Refresher struct {
	cache    *Cache
	limits   []int
	interval time.Duration
	sem      *semaphore.Weighted
}

func NewRefresher(cache *Cache, limits []int, interval time.Duration) *Refresher {
	return &Refresher{
		cache:    cache,
		limits:   limits,
		interval: interval,
		sem:      semaphore.NewWeighted(config.MaxConcurrentRefresh),
	}
}

// Start refreshes once, then on every tick until ctx is done.
func (r *Refresher) Start(ctx context.Context) {
	go func() {
		if err := r.RefreshAll(ctx); err != nil {
			logger.LogError("Leaderboard refresh failed", err)
		}

		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := r.RefreshAll(ctx); err != nil {
					logger.LogError("Leaderboard refresh failed", err)
				}
			}
		}
	}()
}

// RefreshAll recomputes every configured limit, a few at a time, plus the
// rank window used by RankOf.
func (r *Refresher) RefreshAll(ctx context.Context) error {
	start := time.Now()
	limits := append([]int{r.cache.Window()}, r.limits...)

	g, gctx := errgroup.WithContext(ctx)
	for _, limit := range limits {
		g.Go(func() error {
			if err := r.sem.Acquire(gctx, 1); err != nil {
				return err
			}
			defer r.sem.Release(1)

			_, err := r.cache.Refresh(gctx, limit)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	logger.LogSystem("Leaderboard refreshed",
		slog.Int("snapshots", len(limits)),
		slog.Duration("took", time.Since(start)))
	return nil
}
