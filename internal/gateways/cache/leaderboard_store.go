// Package cache holds redis-backed stores shared between API instances.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/habitpet/habitpet/internal/domain/leaderboard"
	"github.com/redis/go-redis/v9"
)

const snapshotKeyPrefix = "habitpet:leaderboard:"

// LeaderboardStore keeps snapshots in redis so every instance serves the
// same ranking. Keys expire a little after the snapshot ttl; freshness is
// still decided by the snapshot's own timestamp.
type LeaderboardStore struct {
	client *redis.Client
	expiry time.Duration
}

func NewLeaderboardStore(client *redis.Client, ttl time.Duration) *LeaderboardStore {
	return &LeaderboardStore{client: client, expiry: 2 * ttl}
}

func snapshotKey(limit int) string {
	return snapshotKeyPrefix + strconv.Itoa(limit)
}

func (s *LeaderboardStore) Get(ctx context.Context, limit int) (*leaderboard.Snapshot, bool, error) {
	raw, err := s.client.Get(ctx, snapshotKey(limit)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get snapshot %d: %w", limit, err)
	}

	var snap leaderboard.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, false, fmt.Errorf("decode snapshot %d: %w", limit, err)
	}
	return &snap, true, nil
}

// Put overwrites the key with a single SET, so readers see either the old
// snapshot or the new one.
func (s *LeaderboardStore) Put(ctx context.Context, snap *leaderboard.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot %d: %w", snap.Limit, err)
	}
	if err := s.client.Set(ctx, snapshotKey(snap.Limit), raw, s.expiry).Err(); err != nil {
		return fmt.Errorf("redis set snapshot %d: %w", snap.Limit, err)
	}
	return nil
}

func (s *LeaderboardStore) Delete(ctx context.Context, limit int) error {
	return s.client.Del(ctx, snapshotKey(limit)).Err()
}
