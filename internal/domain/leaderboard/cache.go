package leaderboard

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"time"

	"github.com/habitpet/habitpet/internal/config"
	"golang.org/x/sync/singleflight"
)

// Cache serves rankings from snapshots that live for ttl. An expired or
// missing snapshot is recomputed on the next read; concurrent readers of
// the same limit share one recomputation.
type Cache struct {
	source Source
	store  SnapshotStore
	ttl    time.Duration
	window int
	now    func() time.Time
	group  singleflight.Group
}

type CacheOption func(*Cache)

func WithTTL(ttl time.Duration) CacheOption {
	return func(c *Cache) { c.ttl = ttl }
}

// WithRankWindow sets how many entries RankOf looks through.
func WithRankWindow(n int) CacheOption {
	return func(c *Cache) { c.window = n }
}

func WithClock(now func() time.Time) CacheOption {
	return func(c *Cache) { c.now = now }
}

func NewCache(source Source, store SnapshotStore, opts ...CacheOption) *Cache {
	c := &Cache{
		source: source,
		store:  store,
		ttl:    config.LeaderboardTTL,
		window: config.RankWindow,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TopUsers returns up to limit ranked entries as of the last refresh.
func (c *Cache) TopUsers(ctx context.Context, limit int) ([]Entry, error) {
	snap, err := c.snapshot(ctx, c.clamp(limit))
	if err != nil {
		return nil, err
	}
	return slices.Clone(snap.Entries), nil
}

// RankOf finds userID in the cached rank window. The position reflects
// the last refresh, not live state; ok is false when the user is outside
// the window or has no alive companion.
func (c *Cache) RankOf(ctx context.Context, userID int64) (int, bool, error) {
	snap, err := c.snapshot(ctx, c.window)
	if err != nil {
		return 0, false, err
	}
	pos := snap.Position(userID)
	return pos, pos > 0, nil
}

// Refresh recomputes the snapshot for limit regardless of its age.
func (c *Cache) Refresh(ctx context.Context, limit int) (*Snapshot, error) {
	return c.recompute(ctx, c.clamp(limit))
}

func (c *Cache) Invalidate(ctx context.Context, limit int) error {
	return c.store.Delete(ctx, c.clamp(limit))
}

func (c *Cache) Window() int {
	return c.window
}

func (c *Cache) clamp(limit int) int {
	if limit <= 0 {
		return min(config.DefaultTopLimit, c.window)
	}
	return min(limit, c.window)
}

func (c *Cache) snapshot(ctx context.Context, limit int) (*Snapshot, error) {
	snap, ok, err := c.store.Get(ctx, limit)
	if err != nil {
		slog.Warn("Leaderboard snapshot read failed, recomputing",
			slog.String("type", "sys"),
			slog.Int("limit", limit),
			slog.Any("error", err))
	}
	if ok && !snap.expired(c.now(), c.ttl) {
		return snap, nil
	}
	return c.recompute(ctx, limit)
}

// recompute runs detached from the caller's cancellation, since other
// readers may have joined the same flight. A caller that goes away stops
// waiting but does not abort the shared work.
func (c *Cache) recompute(ctx context.Context, limit int) (*Snapshot, error) {
	ch := c.group.DoChan(strconv.Itoa(limit), func() (any, error) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), config.DefaultQueryTimeout)
		defer cancel()

		start := time.Now()
		entries, err := c.source.Standings(ctx, limit)
		if err != nil {
			return nil, fmt.Errorf("failed to load standings: %w", err)
		}

		ranked := Rank(entries)
		if len(ranked) > limit {
			ranked = ranked[:limit]
		}
		snap := &Snapshot{Limit: limit, Entries: ranked, ComputedAt: c.now()}
		if err := c.store.Put(ctx, snap); err != nil {
			slog.Warn("Leaderboard snapshot write failed",
				slog.String("type", "sys"),
				slog.Int("limit", limit),
				slog.Any("error", err))
		}

		slog.Debug("Leaderboard recomputed",
			slog.String("type", "sys"),
			slog.Int("limit", limit),
			slog.Int("entries", len(ranked)),
			slog.Duration("took", time.Since(start)))
		return snap, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Snapshot), nil
	}
}
